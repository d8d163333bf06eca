package play

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"starmath/internal/game"
	"starmath/internal/motion"
	"starmath/internal/specialmove"
	"starmath/internal/ui/components"
	"starmath/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.state.Phase == game.PhaseComplete {
		return s.renderComplete(width, height)
	}

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, s.renderScoreboard(cw))
	sections = append(sections, s.renderQuestion(cw))
	sections = append(sections, s.renderTimer(cw))
	sections = append(sections, s.renderPad(cw, height))
	sections = append(sections, s.renderGauge(cw))
	sections = append(sections, s.renderStatusLine(cw))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderScoreboard shows level, score, combo and the exp bar.
func (s *PlayScreen) renderScoreboard(cw int) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	comboStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	combo := dimStyle.Render("combo -")
	if s.state.Combo > 0 {
		combo = comboStyle.Render(fmt.Sprintf("combo x%d", s.state.Combo))
	}

	top := fmt.Sprintf("%s   %s   %s",
		levelStyle.Render(fmt.Sprintf("Lv %d/%d", s.state.Level, s.cfg.MaxLevel)),
		scoreStyle.Render(fmt.Sprintf("★ %d", s.state.Score)),
		combo,
	)

	expPercent := 0.0
	if s.state.ExpRequired > 0 {
		expPercent = float64(s.state.Exp) / float64(s.state.ExpRequired)
	}
	expLabel := fmt.Sprintf("exp %d/%d", s.state.Exp, s.state.ExpRequired)
	if s.state.Phase == game.PhaseLevelingUp && s.expOverflow > 0 {
		// Show the overflowed bar during the level-up pause before it
		// resets to zero.
		expPercent = 1
		expLabel = fmt.Sprintf("exp %d MAX!", s.expOverflow)
	}
	bar := components.NewProgressBar(expLabel, expPercent, false, cw-8)

	return components.ArcadeCard(top+"\n"+bar.View(), cw)
}

// renderQuestion shows the current problem.
func (s *PlayScreen) renderQuestion(cw int) string {
	if s.state.Question == nil {
		return components.ArcadeCard(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("..."), cw)
	}

	q := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(s.state.Question.Text())

	return components.ArcadeCard(q, cw)
}

// renderTimer shows the countdown bar, turning red when time is short.
func (s *PlayScreen) renderTimer(cw int) string {
	if !s.countdown.Enabled() {
		return ""
	}

	frac := s.countdown.Fraction()
	secs := s.countdown.Remaining().Round(100 * time.Millisecond).Seconds()

	label := fmt.Sprintf("time %4.1fs", secs)
	bar := components.NewProgressBar(label, frac, false, cw-8)
	if frac < 0.3 {
		bar.FillColor = theme.Error
	} else if frac < 0.6 {
		bar.FillColor = theme.Accent
	}

	line := bar.View()
	if s.countdown.Paused() {
		line += " " + lipgloss.NewStyle().Foreground(theme.SkyBlue).Bold(true).Render("❚❚")
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(line)
}

// renderPad draws the moving answer buttons.
func (s *PlayScreen) renderPad(cw, height int) string {
	padHeight := height - 18
	if padHeight < 8 {
		padHeight = 8
	}
	if padHeight > 14 {
		padHeight = 14
	}

	var transforms [4]motion.Transform
	for i := range transforms {
		transforms[i] = s.choreo.Transform(i)
	}

	return s.pad.View(cw, padHeight, transforms)
}

// renderGauge shows the special gauge and the three move keys with
// their affordability.
func (s *PlayScreen) renderGauge(cw int) string {
	bar := components.NewProgressBar(
		fmt.Sprintf("gauge %3d", s.moves.Gauge()),
		s.moves.Fraction(), false, cw-8)
	bar.FillColor = theme.ArcadeYellow

	entry := func(key string, m specialmove.Move, cost int) string {
		label := fmt.Sprintf("[%s] %s %d", key, m, cost)
		switch {
		case s.moves.Active(m):
			return lipgloss.NewStyle().Foreground(theme.SkyBlue).Bold(true).Render(label + " ●")
		case s.moves.CanUse(m):
			return lipgloss.NewStyle().Foreground(theme.Text).Render(label)
		default:
			return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
		}
	}

	movesLine := strings.Join([]string{
		entry("T", specialmove.MoveTimeStop, s.cfg.TimeStopCost),
		entry("S", specialmove.MoveSlowMotion, s.cfg.SlowMotionCost),
		entry("H", specialmove.MoveHint, s.cfg.HintCost),
	}, "   ")

	block := bar.View() + "\n" +
		lipgloss.NewStyle().Width(cw-8).Align(lipgloss.Center).Render(movesLine)
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(block)
}

// renderStatusLine shows the transient cue, the debug level prompt, or
// the level's tip.
func (s *PlayScreen) renderStatusLine(cw int) string {
	var line string
	switch {
	case s.levelEntry:
		line = lipgloss.NewStyle().Foreground(theme.Text).Render("jump to level: ") +
			s.levelInput.View()
	case s.cueText != "":
		line = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(s.cueText)
	default:
		line = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(tipForLevel(s.state.Level))
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(line)
}

// renderComplete shows the final screen after clearing the last level.
func (s *PlayScreen) renderComplete(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("🎉 GAME CLEAR! 🎉")

	stats := []string{
		fmt.Sprintf("final score   %d", s.state.Score),
		fmt.Sprintf("best combo    x%d", s.state.BestCombo),
		fmt.Sprintf("questions     %d/%d correct", s.state.TotalCorrect, s.state.TotalQuestions),
	}
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(stats, "\n"))

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press R to play again")

	cw := components.ContentWidth(width)
	card := components.ArcadeCard(title+"\n\n"+body+"\n\n"+hint, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// tipForLevel gives the kid a one-line heads-up about what the level
// throws at them.
func tipForLevel(level int) string {
	switch {
	case level <= 1:
		return "warm up! the buttons stay still for now"
	case level <= 4:
		return "the buttons are waking up... aim carefully"
	case level <= 7:
		return "they dance in loops now, watch the rhythm"
	case level <= 10:
		return "full chaos! combos charge your gauge faster"
	case level <= 15:
		return "buttons shrink up here, specials help a lot"
	default:
		return "the final stretch, trust your combo!"
	}
}
