package specialmove

import (
	"time"

	"starmath/internal/config"
)

// Move identifies one of the special abilities the player can spend
// gauge on.
type Move int

const (
	// MoveTimeStop freezes the countdown and all button motion.
	MoveTimeStop Move = iota
	// MoveSlowMotion halves the speed of the countdown and motion.
	MoveSlowMotion
	// MoveHint briefly reveals the correct answer button.
	MoveHint
)

// String returns the move's display name.
func (m Move) String() string {
	switch m {
	case MoveTimeStop:
		return "time stop"
	case MoveSlowMotion:
		return "slow motion"
	case MoveHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Cost returns the gauge cost of the move under the given config.
func (m Move) Cost(cfg config.Config) int {
	switch m {
	case MoveTimeStop:
		return cfg.TimeStopCost
	case MoveSlowMotion:
		return cfg.SlowMotionCost
	case MoveHint:
		return cfg.HintCost
	default:
		return 0
	}
}

// Duration returns how long the move stays active. Hint does not block
// gameplay, but it holds its active flag for the short reset delay so
// it cannot be re-bought within the same reveal.
func (m Move) Duration(cfg config.Config) time.Duration {
	switch m {
	case MoveTimeStop:
		return cfg.TimeStopDuration
	case MoveSlowMotion:
		return cfg.SlowMotionDuration
	case MoveHint:
		return cfg.HintResetDelay
	default:
		return 0
	}
}
