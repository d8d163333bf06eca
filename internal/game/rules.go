package game

import (
	"math"

	"github.com/samber/lo"

	"starmath/internal/config"
	"starmath/internal/problemgen"
)

// Resolution describes what a correct answer triggered, for the screen
// to turn into cues and scheduled follow-ups.
type Resolution struct {
	ScoreGain int
	ExpGain   int
	LeveledUp bool
	// ExpAtGain is the exp total right after the gain, before any
	// level-up reset. The exp bar animates past full with it.
	ExpAtGain int
}

// ExpRequiredFor returns the exp needed to clear the given level. The
// requirement grows sub-linearly so later levels stay reachable.
func ExpRequiredFor(cfg config.Config, level int) int {
	return int(math.Floor(float64(cfg.ExpBase) + float64(level)*cfg.ExpGrowth))
}

// ExpGainFor maps a combo to the exp earned by one correct answer. It
// steps up with combo and plateaus at 8 from combo 21 on.
func ExpGainFor(combo int) int {
	switch {
	case combo <= 1:
		return 1
	case combo <= 3:
		return 2
	case combo <= 5:
		return 3
	case combo <= 8:
		return 4
	case combo <= 12:
		return 5
	case combo <= 16:
		return 6
	case combo <= 20:
		return 7
	default:
		return 8
	}
}

// StartQuestion installs a new question and opens input.
func StartQuestion(s *State, q problemgen.Question, options []int) {
	s.Question = &q
	s.Options = options
	s.Phase = PhaseAwaitingAnswer
	s.LastOutcome = OutcomeNone
	s.IsAnswering = false
}

// CanAnswer reports whether input is accepted right now.
func CanAnswer(s *State) bool {
	return s.Phase == PhaseAwaitingAnswer && !s.IsAnswering && s.Question != nil
}

// ApplyCorrect resolves a correct answer: combo and score grow, exp is
// earned by the combo step and a level-up fires when the bar fills.
// Input stays locked until the screen reopens it after the feedback
// delay.
func ApplyCorrect(s *State) Resolution {
	s.IsAnswering = true
	s.Phase = PhaseResolving
	s.LastOutcome = OutcomeCorrect
	s.TotalQuestions++
	s.TotalCorrect++

	s.Combo++
	if s.Combo > s.BestCombo {
		s.BestCombo = s.Combo
	}

	res := Resolution{
		ScoreGain: s.Config.BaseScore * s.Combo,
		ExpGain:   ExpGainFor(s.Combo),
	}
	s.Score += res.ScoreGain
	s.Exp += res.ExpGain
	res.ExpAtGain = s.Exp

	if s.Exp >= s.ExpRequired {
		levelUp(s)
		res.LeveledUp = true
	}
	return res
}

// ApplyWrong resolves a wrong answer: the combo resets, score and exp
// are untouched, and the same question stays current for another try.
func ApplyWrong(s *State) {
	s.IsAnswering = true
	s.Phase = PhaseResolving
	s.LastOutcome = OutcomeWrong
	s.TotalQuestions++
	s.Combo = 0
}

// ApplyTimeout resolves an expired countdown. It counts as a wrong
// answer for the combo, but the round is over: the next question is
// scheduled instead of a retry.
func ApplyTimeout(s *State) {
	s.IsAnswering = true
	s.Phase = PhaseResolving
	s.LastOutcome = OutcomeTimeout
	s.TotalQuestions++
	s.Combo = 0
}

// ReopenInput unlocks answering after the wrong-answer delay, keeping
// the current question.
func ReopenInput(s *State) {
	s.IsAnswering = false
	if s.Phase == PhaseResolving {
		s.Phase = PhaseAwaitingAnswer
	}
}

// Completed reports whether the session has cleared the final level.
func Completed(s *State) bool {
	return s.Level > s.Config.MaxLevel
}

// MarkComplete moves the session into its terminal phase.
func MarkComplete(s *State) {
	s.Phase = PhaseComplete
	s.Question = nil
	s.Options = nil
}

// levelUp advances the level, resets the exp bar and recomputes the
// next requirement from the new level.
func levelUp(s *State) {
	s.Level++
	s.Exp = 0
	s.ExpRequired = ExpRequiredFor(s.Config, s.Level)
	s.Phase = PhaseLevelingUp
}

// ForceSetLevel overwrites the level directly, recomputing the derived
// exp requirement. No score, combo or exp side effects: this is the
// debug override path.
func ForceSetLevel(s *State, level int) {
	s.Level = lo.Clamp(level, 1, s.Config.MaxLevel)
	s.ExpRequired = ExpRequiredFor(s.Config, s.Level)
}

// Restart resets the session to a fresh run, keeping the operator
// selection and session identity.
func Restart(s *State) {
	s.Level = 1
	s.Score = 0
	s.Combo = 0
	s.BestCombo = 0
	s.Exp = 0
	s.ExpRequired = ExpRequiredFor(s.Config, 1)
	s.Question = nil
	s.Options = nil
	s.Phase = PhaseIdle
	s.LastOutcome = OutcomeNone
	s.IsAnswering = false
	s.TotalQuestions = 0
	s.TotalCorrect = 0
}
