package play

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"starmath/internal/audio"
	"starmath/internal/config"
	"starmath/internal/game"
	"starmath/internal/problemgen"
	"starmath/internal/specialmove"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen() *PlayScreen {
	cfg := config.Default()
	return New(cfg, audio.NullPlayer{}, []problemgen.Operator{problemgen.OpAdd})
}

// readyScreen returns a screen with a question up and input open, the
// state a player sees once the entry delay has passed.
func readyScreen(t *testing.T) *PlayScreen {
	t.Helper()
	s := testScreen()
	s.startQuestion()
	s.handleEntryDone(entryDoneMsg{Epoch: s.epoch})
	require.Equal(t, game.PhaseAwaitingAnswer, s.state.Phase)
	require.False(t, s.state.IsAnswering)
	return s
}

func correctIndex(s *PlayScreen) int {
	for i, v := range s.state.Options {
		if v == s.state.Question.Answer {
			return i
		}
	}
	return -1
}

func wrongIndex(s *PlayScreen) int {
	for i, v := range s.state.Options {
		if v != s.state.Question.Answer {
			return i
		}
	}
	return -1
}

func fillGauge(s *PlayScreen) {
	for !s.moves.Full() {
		s.moves.Charge(10)
	}
}

func TestSubmitCorrect(t *testing.T) {
	s := readyScreen(t)

	_, cmd := s.submit(correctIndex(s))
	require.NotNil(t, cmd)

	require.Equal(t, 1, s.state.Combo)
	require.Equal(t, 10, s.state.Score)
	require.Equal(t, game.PhaseResolving, s.state.Phase)
	require.True(t, s.pad.Submitted)
	require.True(t, s.pad.IsCorrect())
	require.False(t, s.countdown.Running())
}

func TestSubmitWrongKeepsQuestion(t *testing.T) {
	s := readyScreen(t)
	before := s.state.Question

	_, cmd := s.submit(wrongIndex(s))
	require.NotNil(t, cmd)

	require.Equal(t, 0, s.state.Combo)
	require.Equal(t, 0, s.state.Score)
	require.Same(t, before, s.state.Question)
	require.True(t, s.pad.WrongFlash)
	require.False(t, s.pad.Submitted, "wrong answer must not reveal the correct button")

	// The wrong-answer delay reopens input on the same question.
	s.handleReopenInput(reopenInputMsg{Epoch: s.epoch})
	require.True(t, game.CanAnswer(s.state))
	require.False(t, s.pad.WrongFlash)
	require.Same(t, before, s.state.Question)
}

func TestWrongThenCorrectRetry(t *testing.T) {
	s := readyScreen(t)

	s.submit(wrongIndex(s))
	s.handleReopenInput(reopenInputMsg{Epoch: s.epoch})
	s.submit(correctIndex(s))

	require.Equal(t, 1, s.state.Combo)
	require.Equal(t, 10, s.state.Score)
}

func TestTimeUpResetsCombo(t *testing.T) {
	s := readyScreen(t)
	s.state.Combo = 3
	s.state.Score = 60

	cmd := s.handleTimeUp()
	require.NotNil(t, cmd)

	require.Equal(t, 0, s.state.Combo)
	require.Equal(t, 60, s.state.Score)
	require.Equal(t, game.PhaseResolving, s.state.Phase)
	require.True(t, s.pad.Submitted)
}

func TestStartQuestionResetsSpecialMoves(t *testing.T) {
	s := readyScreen(t)
	fillGauge(s)

	s.activate(specialmove.MoveTimeStop)
	require.True(t, s.moves.Active(specialmove.MoveTimeStop))
	require.True(t, s.countdown.Paused())

	s.startQuestion()

	require.False(t, s.moves.Active(specialmove.MoveTimeStop))
	require.False(t, s.countdown.Paused())
	require.Equal(t, float64(1), s.timeScale)
}

func TestStaleResolveDoneIgnored(t *testing.T) {
	s := readyScreen(t)
	stale := s.epoch

	s.startQuestion()
	before := s.state.Question

	s.handleResolveDone(resolveDoneMsg{Epoch: stale})
	require.Same(t, before, s.state.Question)
}

func TestStaleReopenInputIgnored(t *testing.T) {
	s := readyScreen(t)
	s.submit(wrongIndex(s))
	stale := s.epoch

	s.startQuestion()
	s.handleEntryDone(entryDoneMsg{Epoch: s.epoch})
	s.submit(correctIndex(s))

	// A leftover wrong-answer tick from the previous question must not
	// reopen input on the resolved one.
	s.handleReopenInput(reopenInputMsg{Epoch: stale})
	require.Equal(t, game.PhaseResolving, s.state.Phase)
	require.False(t, game.CanAnswer(s.state))
}

func TestStaleMoveExpiryIgnored(t *testing.T) {
	s := readyScreen(t)
	fillGauge(s)

	dur, token, ok := s.moves.Activate(specialmove.MoveTimeStop)
	require.True(t, ok)
	require.Greater(t, dur, time.Duration(0))

	s.startQuestion()
	s.handleEntryDone(entryDoneMsg{Epoch: s.epoch})
	fillGauge(s)
	s.activate(specialmove.MoveTimeStop)

	s.Update(moveExpiredMsg{Move: specialmove.MoveTimeStop, Token: token})
	require.True(t, s.moves.Active(specialmove.MoveTimeStop), "stale token must not end the new activation")
}

func TestSlowMotionScalesCountdown(t *testing.T) {
	s := readyScreen(t)
	fillGauge(s)

	s.activate(specialmove.MoveSlowMotion)
	require.Equal(t, s.cfg.SlowMotionScale, s.timeScale)

	s.moves.ForceResetAll()
	require.Equal(t, float64(1), s.timeScale)
}

func TestHintHighlightAndReset(t *testing.T) {
	s := readyScreen(t)
	fillGauge(s)

	s.activate(specialmove.MoveHint)
	require.True(t, s.pad.HintActive)

	s.Update(hintResetMsg{Epoch: s.epoch})
	require.False(t, s.pad.HintActive)
}

func TestAnswerKeysIgnoredWhileResolving(t *testing.T) {
	s := readyScreen(t)
	s.submit(correctIndex(s))

	score := s.state.Score
	s.Update(keyPress('1'))
	require.Equal(t, score, s.state.Score)
	require.Equal(t, 1, s.state.Combo)
}

func TestLevelEntryJump(t *testing.T) {
	s := readyScreen(t)

	// Drain some of the countdown so a refill would be visible.
	s.countdown.Tick(time.Now().Add(3 * time.Second))
	remaining := s.countdown.Remaining()
	generation := s.choreo.Generation()

	s.Update(keyPress('l'))
	require.True(t, s.levelEntry)

	s.Update(keyPress('1'))
	s.Update(keyPress('5'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	require.False(t, s.levelEntry)
	require.Equal(t, 15, s.state.Level)
	require.Equal(t, game.ExpRequiredFor(s.cfg, 15), s.state.ExpRequired)

	// The jump re-applies choreography but leaves the countdown alone.
	require.Greater(t, s.choreo.Generation(), generation)
	require.Equal(t, remaining, s.countdown.Remaining())
}

func TestLevelEntryClampsToMax(t *testing.T) {
	s := readyScreen(t)

	s.Update(keyPress('l'))
	s.Update(keyPress('9'))
	s.Update(keyPress('9'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	require.Equal(t, s.cfg.MaxLevel, s.state.Level)
}

func TestCompleteAndRestart(t *testing.T) {
	s := readyScreen(t)
	s.state.Level = s.cfg.MaxLevel + 1

	s.handleResolveDone(resolveDoneMsg{Epoch: s.epoch})
	require.Equal(t, game.PhaseComplete, s.state.Phase)

	_, cmd := s.Update(keyPress('r'))
	require.NotNil(t, cmd)
	require.Equal(t, 1, s.state.Level)
	require.Equal(t, 0, s.state.Score)
	require.NotNil(t, s.state.Question)
}

func TestStatusReportsLevelAndScore(t *testing.T) {
	s := readyScreen(t)
	s.state.Level = 7
	s.state.Score = 420

	level, score := s.Status()
	require.Equal(t, 7, level)
	require.Equal(t, 420, score)
}

func TestViewRenders(t *testing.T) {
	s := readyScreen(t)
	view := s.View(80, 24)
	require.NotEmpty(t, view)
	require.Contains(t, view, s.state.Question.Text())
}

func TestViewCompleteShowsFinalScore(t *testing.T) {
	s := readyScreen(t)
	s.state.Score = 1234
	s.state.Level = s.cfg.MaxLevel + 1
	s.handleResolveDone(resolveDoneMsg{Epoch: s.epoch})

	view := s.View(80, 24)
	require.Contains(t, view, "1234")
	require.Contains(t, view, "GAME CLEAR")
}
