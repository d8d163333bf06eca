package play

import (
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"starmath/internal/audio"
	"starmath/internal/config"
	"starmath/internal/game"
	"starmath/internal/motion"
	"starmath/internal/problemgen"
	"starmath/internal/screen"
	"starmath/internal/specialmove"
	"starmath/internal/timer"
	"starmath/internal/ui/components"
	"starmath/internal/ui/layout"
)

// frameInterval drives motion and the countdown. 20 fps is plenty for
// terminal cells.
const frameInterval = 50 * time.Millisecond

// cueDuration is how long a transient status line stays up.
const cueDuration = 1500 * time.Millisecond

// PlayScreen runs one game session: questions, motion, countdown,
// combo scoring and special moves.
type PlayScreen struct {
	cfg    config.Config
	player audio.Player

	state     *game.State
	gen       *problemgen.Generator
	choreo    *motion.Choreographer
	countdown *timer.Countdown
	moves     *specialmove.Controller

	pad        components.AnswerPad
	levelInput components.TextInput
	levelEntry bool

	// epoch invalidates delayed messages from earlier questions. Every
	// question transition bumps it; stale ticks are dropped on receipt.
	epoch     int
	timeScale float64
	cueText   string
	track     audio.Track

	// expOverflow holds the pre-reset exp total during the level-up
	// pause, so the bar can show the overflow before zeroing.
	expOverflow int
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ specialmove.Effects = (*PlayScreen)(nil)

// New creates a PlayScreen for the given operator selection.
func New(cfg config.Config, player audio.Player, operators []problemgen.Operator) *PlayScreen {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	s := &PlayScreen{
		cfg:       cfg,
		player:    player,
		state:     game.NewState(cfg, operators),
		gen:       problemgen.New(cfg, rng),
		choreo:    motion.NewChoreographer(rng),
		timeScale: 1,
	}
	s.countdown = timer.New(cfg.TimeLimitEnabled, func() float64 { return s.timeScale })
	s.moves = specialmove.NewController(cfg, s)
	return s
}

func (s *PlayScreen) Title() string {
	return "Play"
}

// Status feeds the header's live level and score numbers.
func (s *PlayScreen) Status() (int, int) {
	return s.state.Level, s.state.Score
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.levelEntry {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Set level"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.state.Phase == game.PhaseComplete {
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "T/S/H", Description: "Special move"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(s.startQuestion(), s.frameTick())
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameTickMsg:
		return s.handleFrame(time.Time(msg))

	case entryDoneMsg:
		return s.handleEntryDone(msg)

	case resolveDoneMsg:
		return s.handleResolveDone(msg)

	case reopenInputMsg:
		return s.handleReopenInput(msg)

	case hintResetMsg:
		if msg.Epoch == s.epoch {
			s.pad.HintActive = false
		}
		return s, nil

	case cueClearMsg:
		if msg.Epoch == s.epoch {
			s.cueText = ""
		}
		return s, nil

	case moveExpiredMsg:
		s.moves.Expire(msg.Move, msg.Token)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.levelEntry {
		var cmd tea.Cmd
		s.levelInput, cmd = s.levelInput.Update(msg)
		return s, cmd
	}

	return s, nil
}

// startQuestion resets per-question machinery, generates the next
// question and schedules the entry delay. Active special moves are
// force reset first so their effects never bleed across questions.
func (s *PlayScreen) startQuestion() tea.Cmd {
	s.epoch++
	s.moves.ForceResetAll()
	s.choreo.StopAll()
	s.countdown.Stop()
	s.cueText = ""
	s.expOverflow = 0

	q := s.gen.Generate(s.state.Level, s.state.Operators)
	options := s.gen.GenerateOptions(q.Answer)
	correct := 0
	for i, v := range options {
		if v == q.Answer {
			correct = i
			break
		}
	}

	game.StartQuestion(s.state, q, options)
	s.pad = components.NewAnswerPad(options, correct)
	s.ensureTrack()

	epoch := s.epoch
	return tea.Tick(s.cfg.EntryDelay, func(time.Time) tea.Msg {
		return entryDoneMsg{Epoch: epoch}
	})
}

func (s *PlayScreen) frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func (s *PlayScreen) handleFrame(now time.Time) (screen.Screen, tea.Cmd) {
	s.choreo.Advance(now)

	if s.countdown.Tick(now) {
		return s, tea.Batch(s.frameTick(), s.handleTimeUp())
	}
	return s, s.frameTick()
}

// handleTimeUp resolves an expired countdown: combo resets and the
// next question comes without user interaction.
func (s *PlayScreen) handleTimeUp() tea.Cmd {
	if !game.CanAnswer(s.state) {
		return nil
	}

	game.ApplyTimeout(s.state)
	s.choreo.StopAll()
	s.pad.Submitted = true
	s.player.PlayOneShot(audio.EffectTimeUp)
	s.cueText = "TIME UP!"

	epoch := s.epoch
	return tea.Tick(s.cfg.TimeUpDelay, func(time.Time) tea.Msg {
		return resolveDoneMsg{Epoch: epoch}
	})
}

func (s *PlayScreen) handleEntryDone(msg entryDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.epoch || s.state.Phase != game.PhaseAwaitingAnswer {
		return s, nil
	}
	s.choreo.ApplyLevelMotion(s.state.Level, len(s.state.Options))
	s.countdown.Start(s.cfg.TimeLimitFor(s.state.Level), time.Now())
	return s, nil
}

func (s *PlayScreen) handleResolveDone(msg resolveDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.epoch {
		return s, nil
	}

	if game.Completed(s.state) {
		game.MarkComplete(s.state)
		s.moves.ForceResetAll()
		s.choreo.StopAll()
		s.countdown.Stop()
		s.player.PlayOneShot(audio.EffectComplete)
		s.ensureTrack()
		return s, nil
	}

	return s, s.startQuestion()
}

func (s *PlayScreen) handleReopenInput(msg reopenInputMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.epoch {
		return s, nil
	}
	s.pad.WrongFlash = false
	s.pad.ChosenIndex = -1
	game.ReopenInput(s.state)
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.levelEntry {
		switch key {
		case "enter":
			return s.applyLevelEntry()
		case "esc":
			s.levelEntry = false
			return s, nil
		}
		var cmd tea.Cmd
		s.levelInput, cmd = s.levelInput.Update(msg)
		return s, cmd
	}

	switch key {
	case "1", "2", "3", "4":
		return s.submit(int(key[0] - '1'))

	case "t":
		return s, s.activate(specialmove.MoveTimeStop)

	case "s":
		return s, s.activate(specialmove.MoveSlowMotion)

	case "h":
		return s, s.activate(specialmove.MoveHint)

	case "l":
		s.levelEntry = true
		s.levelInput = components.NewTextInput("1-20", true, 2)
		return s, s.levelInput.Init()

	case "r":
		if s.state.Phase == game.PhaseComplete {
			game.Restart(s.state)
			return s, s.startQuestion()
		}
	}

	return s, nil
}

// submit answers the question with option i.
func (s *PlayScreen) submit(i int) (screen.Screen, tea.Cmd) {
	if !game.CanAnswer(s.state) || i >= len(s.state.Options) {
		return s, nil
	}

	s.pad.Selected = i
	s.pad.HintActive = false

	if s.state.Options[i] != s.state.Question.Answer {
		// The round is not over, so only flash the chosen button:
		// revealing the correct one would spoil the retry.
		s.pad.ChosenIndex = i
		s.pad.WrongFlash = true
		game.ApplyWrong(s.state)
		s.player.PlayOneShot(audio.EffectWrong)
		s.cueText = "Not quite... try again!"

		epoch := s.epoch
		return s, tea.Tick(s.cfg.WrongDelay, func(time.Time) tea.Msg {
			return reopenInputMsg{Epoch: epoch}
		})
	}

	s.pad.Submitted = true
	s.pad.ChosenIndex = i
	res := game.ApplyCorrect(s.state)
	s.countdown.Stop()
	s.choreo.StopAll()
	s.playComboCue(res)

	if s.moves.Charge(s.state.Combo) {
		s.player.PlayOneShot(audio.EffectGaugeFull)
		s.cueText = "GAUGE MAX! Special moves ready!"
	}

	delay := s.cfg.CorrectDelay
	if res.LeveledUp {
		delay = s.cfg.LevelUpDelay
		s.expOverflow = res.ExpAtGain
		s.player.PlayOneShot(audio.EffectLevelUp)
		s.cueText = fmt.Sprintf("LEVEL UP! Welcome to Lv %d!", s.state.Level)
		s.ensureTrack()
	}

	epoch := s.epoch
	return s, tea.Tick(delay, func(time.Time) tea.Msg {
		return resolveDoneMsg{Epoch: epoch}
	})
}

// playComboCue picks the correct-answer cue, escalating at combo
// milestones.
func (s *PlayScreen) playComboCue(res game.Resolution) {
	combo := s.state.Combo
	switch {
	case combo == 5:
		s.player.PlayOneShot(audio.EffectCombo5)
		s.cueText = "COMBO x5! Keep it up!"
	case combo >= 10 && combo%10 == 0:
		s.player.PlayOneShot(audio.EffectCombo10)
		s.cueText = fmt.Sprintf("COMBO x%d! Incredible!", combo)
	default:
		s.player.PlayOneShot(audio.EffectCorrect)
		s.cueText = fmt.Sprintf("Correct! +%d", res.ScoreGain)
	}
}

// activate triggers a special move and schedules its expiry. A failed
// activation is silent.
func (s *PlayScreen) activate(m specialmove.Move) tea.Cmd {
	dur, token, ok := s.moves.Activate(m)
	if !ok {
		return nil
	}

	cmds := []tea.Cmd{s.clearCueLater()}

	if m == specialmove.MoveHint {
		epoch := s.epoch
		cmds = append(cmds, tea.Tick(s.cfg.HintResetDelay, func(time.Time) tea.Msg {
			return hintResetMsg{Epoch: epoch}
		}))
	}

	if dur > 0 {
		cmds = append(cmds, tea.Tick(dur, func(time.Time) tea.Msg {
			return moveExpiredMsg{Move: m, Token: token}
		}))
	}

	return tea.Batch(cmds...)
}

func (s *PlayScreen) applyLevelEntry() (screen.Screen, tea.Cmd) {
	s.levelEntry = false
	level, err := s.levelInput.NumericValue()
	if err != nil {
		return s, nil
	}

	game.ForceSetLevel(s.state, level)
	s.ensureTrack()
	if s.state.Phase == game.PhaseAwaitingAnswer {
		// Pure state overwrite: re-apply choreography for the new level
		// but leave the in-flight countdown untouched.
		s.choreo.ApplyLevelMotion(s.state.Level, len(s.state.Options))
	}
	return s, nil
}

// clearCueLater schedules the status line to clear.
func (s *PlayScreen) clearCueLater() tea.Cmd {
	epoch := s.epoch
	return tea.Tick(cueDuration, func(time.Time) tea.Msg {
		return cueClearMsg{Epoch: epoch}
	})
}

// ensureTrack keeps the background music on the right track for the
// current level band and game state.
func (s *PlayScreen) ensureTrack() {
	want := audio.TrackForLevel(s.state.Level)
	if s.moves.Active(specialmove.MoveSlowMotion) {
		want = audio.TrackSlowMotion
	}
	if s.state.Phase == game.PhaseComplete {
		want = audio.TrackComplete
	}
	if want != s.track {
		s.track = want
		s.player.PlayBackgroundTrack(want)
	}
}

// TimeStopBegin freezes the countdown, all motion and the music.
func (s *PlayScreen) TimeStopBegin() {
	s.countdown.Pause()
	s.choreo.PauseAll()
	s.player.PauseBackground()
	s.player.PlayOneShot(audio.EffectTimeStop)
	s.cueText = "TIME STOP!"
}

// TimeStopEnd resumes everything the time stop froze.
func (s *PlayScreen) TimeStopEnd() {
	s.countdown.Resume(time.Now())
	s.choreo.ResumeAll()
	s.player.ResumeBackground()
}

// SlowMotionBegin scales the countdown and motion clocks down.
func (s *PlayScreen) SlowMotionBegin(scale float64) {
	s.timeScale = scale
	s.choreo.SetTimeScale(scale)
	s.player.PlayOneShot(audio.EffectSlowMotion)
	s.player.PlayBackgroundTrack(audio.TrackSlowMotion)
	s.track = audio.TrackSlowMotion
	s.cueText = "SLOW MOTION!"
}

// SlowMotionEnd restores real time and the level's track.
func (s *PlayScreen) SlowMotionEnd() {
	s.timeScale = 1
	s.choreo.SetTimeScale(1)
	s.ensureTrack()
}

// HintShow lights up the correct answer button.
func (s *PlayScreen) HintShow() {
	s.pad.HintActive = true
	s.player.PlayOneShot(audio.EffectHint)
	s.cueText = "Psst... over there!"
}
