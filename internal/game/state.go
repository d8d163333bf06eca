package game

import (
	"time"

	"github.com/google/uuid"

	"starmath/internal/config"
	"starmath/internal/problemgen"
)

// Phase represents the current phase of a play session.
type Phase int

const (
	PhaseIdle           Phase = iota // No question on screen yet
	PhaseAwaitingAnswer              // Question shown, input live
	PhaseResolving                   // Feedback playing, input locked
	PhaseLevelingUp                  // Level-up banner on top of feedback
	PhaseComplete                    // Final level cleared
)

// Outcome records how the most recent question round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeWrong
	OutcomeTimeout
)

// State tracks the runtime state of one play session.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Config holds the balance constants the rules read.
	Config config.Config

	// Operators are the operator kinds the player selected for this run.
	Operators []problemgen.Operator

	// Level is the current difficulty level, starting at 1.
	Level int

	// Score is the accumulated score.
	Score int

	// Combo is the current run of consecutive correct answers.
	Combo int

	// BestCombo is the longest combo reached this session.
	BestCombo int

	// Exp is the progress toward the next level.
	Exp int

	// ExpRequired is the exp needed to reach the next level.
	ExpRequired int

	// Question is the active question (nil before the first one).
	Question *problemgen.Question

	// Options are the four answer choices for the active question.
	Options []int

	// Phase is the current session phase.
	Phase Phase

	// LastOutcome records how the last round resolved.
	LastOutcome Outcome

	// IsAnswering locks out input while feedback plays.
	IsAnswering bool

	// TotalQuestions and TotalCorrect feed the completion summary.
	TotalQuestions int
	TotalCorrect   int

	// StartTime is when the session began.
	StartTime time.Time
}

// NewState creates a fresh session at level 1 with the given operator
// selection. An empty selection falls back to addition only.
func NewState(cfg config.Config, operators []problemgen.Operator) *State {
	if len(operators) == 0 {
		operators = []problemgen.Operator{problemgen.OpAdd}
	}
	return &State{
		SessionID:   uuid.NewString(),
		Config:      cfg,
		Operators:   operators,
		Level:       1,
		ExpRequired: ExpRequiredFor(cfg, 1),
		Phase:       PhaseIdle,
		StartTime:   time.Now(),
	}
}
