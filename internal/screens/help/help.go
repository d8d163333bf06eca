package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"starmath/internal/screen"
	"starmath/internal/ui/components"
	"starmath/internal/ui/layout"
	"starmath/internal/ui/theme"
)

// HelpScreen explains the rules and the special moves.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates the help screen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "How to Play"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	head := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := []string{
		head.Render("THE GAME"),
		body.Render("Pick the right answer with keys 1-4 before the timer runs out."),
		body.Render("Correct answers build your combo: more score, more exp,"),
		body.Render("and a faster-filling special gauge."),
		"",
		head.Render("WATCH OUT"),
		body.Render("From level 2 the answer buttons start moving, and every"),
		body.Render("level they get faster. A wrong answer resets your combo."),
		"",
		head.Render("SPECIAL MOVES"),
		body.Render("T  Time Stop   freezes the timer and the buttons"),
		body.Render("S  Slow Motion everything at half speed for a while"),
		body.Render("H  Hint        lights up the right answer for a moment"),
		dim.Render("   each costs gauge, earned by answering correctly"),
		"",
		dim.Render("Clear level 20 to finish the game. Good luck!"),
	}

	cw := components.ContentWidth(width)
	card := components.ArcadeCard(strings.Join(lines, "\n"), cw)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
