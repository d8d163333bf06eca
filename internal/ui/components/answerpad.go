package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"starmath/internal/motion"
	"starmath/internal/ui/theme"
)

// motionRange is the transform offset, in grid cells, that maps to the
// edge of a quadrant. Matches the widest choreography amplitudes.
const motionRange = 16.0

// AnswerPad renders the four answer buttons in a 2x2 play area. Button
// positions come from the choreographer's transforms, so the pad stays
// a dumb view: the play screen owns selection and submission state.
type AnswerPad struct {
	Options      []int
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
	HintActive   bool
	// WrongFlash marks the chosen button red without revealing the
	// correct one, for retryable wrong answers.
	WrongFlash bool
}

// NewAnswerPad creates a pad for one question's options.
func NewAnswerPad(options []int, correctIndex int) AnswerPad {
	return AnswerPad{
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// View renders the pad at the given size, positioning each button in
// its quadrant according to its transform.
func (a AnswerPad) View(width, height int, transforms [4]motion.Transform) string {
	if len(a.Options) == 0 {
		return ""
	}

	qw := width / 2
	qh := height / 2
	if qw < 12 {
		qw = 12
	}
	if qh < 3 {
		qh = 3
	}

	quads := make([]string, 4)
	for i := range quads {
		if i >= len(a.Options) {
			quads[i] = lipgloss.NewStyle().Width(qw).Height(qh).Render("")
			continue
		}
		box := a.renderButton(i, transforms[i].Scale)
		px, py := placement(transforms[i])
		quads[i] = lipgloss.Place(qw, qh, px, py, box)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, quads[0], quads[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, quads[2], quads[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// placement maps a transform offset onto lipgloss positions, with the
// quadrant center as the rest position.
func placement(t motion.Transform) (lipgloss.Position, lipgloss.Position) {
	px := 0.5 + t.X/motionRange
	// Terminal cells are about twice as tall as wide, so vertical
	// offsets are halved to keep motion visually square.
	py := 0.5 + t.Y/(motionRange*2)

	if px < 0 {
		px = 0
	}
	if px > 1 {
		px = 1
	}
	if py < 0 {
		py = 0
	}
	if py > 1 {
		py = 1
	}
	return lipgloss.Position(px), lipgloss.Position(py)
}

func (a AnswerPad) renderButton(i int, scale float64) string {
	label := fmt.Sprintf("%d│ %d", i+1, a.Options[i])

	pad := 2
	switch {
	case scale > 0 && scale < 0.78:
		pad = 0
	case scale > 0 && scale < 0.92:
		pad = 1
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, pad)

	switch {
	case a.Submitted && i == a.CorrectIndex:
		style = style.
			BorderForeground(theme.Success).
			Foreground(theme.Success).
			Bold(true)

	case a.Submitted && i == a.ChosenIndex:
		style = style.
			BorderForeground(theme.Error).
			Foreground(theme.Error).
			Bold(true)

	case a.Submitted:
		style = style.Foreground(theme.TextDim)

	case a.WrongFlash && i == a.ChosenIndex:
		style = style.
			BorderForeground(theme.Error).
			Foreground(theme.Error).
			Bold(true)

	case a.HintActive && i == a.CorrectIndex:
		style = style.
			BorderForeground(theme.ArcadeYellow).
			Foreground(theme.ArcadeYellow).
			Bold(true)

	case a.HintActive:
		style = style.Foreground(theme.TextDim).BorderForeground(theme.Border)

	case i == a.Selected:
		style = style.
			BorderForeground(theme.Primary).
			Foreground(theme.Primary).
			Bold(true)
	}

	return style.Render(label)
}

// IsCorrect reports whether the chosen option is the correct one.
func (a AnswerPad) IsCorrect() bool {
	return a.Submitted && a.ChosenIndex == a.CorrectIndex
}
