package play

import (
	"time"

	"starmath/internal/specialmove"
)

// frameTickMsg drives motion and the countdown at frame rate.
type frameTickMsg time.Time

// entryDoneMsg fires after the question entry delay: motion and the
// countdown begin.
type entryDoneMsg struct {
	Epoch int
}

// resolveDoneMsg fires after the correct/time-up feedback delay and
// moves on to the next question.
type resolveDoneMsg struct {
	Epoch int
}

// reopenInputMsg fires after the wrong-answer delay and reopens input
// on the same question.
type reopenInputMsg struct {
	Epoch int
}

// hintResetMsg clears the hint highlight.
type hintResetMsg struct {
	Epoch int
}

// cueClearMsg clears the transient status line.
type cueClearMsg struct {
	Epoch int
}

// moveExpiredMsg ends a durational special move. The token is checked
// by the controller, so a stale expiry lands as a no-op.
type moveExpiredMsg struct {
	Move  specialmove.Move
	Token int
}
