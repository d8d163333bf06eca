package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"starmath/internal/audio"
	"starmath/internal/config"
	"starmath/internal/problemgen"
	"starmath/internal/router"
	"starmath/internal/screen"
	"starmath/internal/screens/help"
	playscreen "starmath/internal/screens/play"
	"starmath/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	cfg        config.Config
	player     audio.Player
	menu       components.Menu
	menuLabels []string
	operators  map[problemgen.Operator]bool
	variant    MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(cfg config.Config, player audio.Player) *HomeScreen {
	h := &HomeScreen{
		cfg:    cfg,
		player: player,
		operators: map[problemgen.Operator]bool{
			problemgen.OpAdd: true,
		},
		variant: MascotIdle,
	}

	h.menuLabels = []string{"START GAME", "HOW TO PLAY", "EXIT GAME"}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			ops := h.selectedOperators()
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: playscreen.New(cfg, player, ops),
				}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: help.New()}
			}
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// selectedOperators returns the toggled operators in display order.
func (h *HomeScreen) selectedOperators() []problemgen.Operator {
	var ops []problemgen.Operator
	for _, op := range []problemgen.Operator{problemgen.OpAdd, problemgen.OpSubtract, problemgen.OpMultiply} {
		if h.operators[op] {
			ops = append(ops, op)
		}
	}
	return ops
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "1":
			h.toggle(problemgen.OpAdd)
			return h, nil
		case "2":
			h.toggle(problemgen.OpSubtract)
			return h, nil
		case "3":
			h.toggle(problemgen.OpMultiply)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// toggle flips one operator, keeping at least one enabled.
func (h *HomeScreen) toggle(op problemgen.Operator) {
	if h.operators[op] && len(h.selectedOperators()) == 1 {
		return
	}
	h.operators[op] = !h.operators[op]
	if len(h.selectedOperators()) == 3 {
		h.variant = MascotExcited
	} else {
		h.variant = MascotIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.variant, cw))
	}

	sections = append(sections, renderOperatorBar(h.operators, cw, compact))

	sections = append(sections, renderArcadeMenu(
		h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
