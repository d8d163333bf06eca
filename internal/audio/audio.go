// Package audio defines the sound surface of the game. The core emits
// semantic track and effect identifiers; a Player decides how, or
// whether, to make noise. The default build ships the silent player,
// keeping the cue wiring testable without an audio backend.
package audio

// Track identifies a looping background piece.
type Track int

const (
	TrackNone Track = iota
	TrackEarly      // levels 1 through 5
	TrackMid        // levels 6 through 10
	TrackHigh       // levels 11 through 15
	TrackFinal      // levels 16 and up
	TrackSlowMotion
	TrackComplete
)

// Effect identifies a one-shot sound cue.
type Effect int

const (
	EffectCorrect Effect = iota
	EffectCombo5
	EffectCombo10
	EffectWrong
	EffectTimeUp
	EffectLevelUp
	EffectGaugeFull
	EffectTimeStop
	EffectSlowMotion
	EffectHint
	EffectComplete
)

// Player plays background tracks and one-shot effects. Implementations
// must tolerate redundant calls: pausing a paused player or stopping a
// stopped one is a no-op.
type Player interface {
	PlayBackgroundTrack(t Track)
	PauseBackground()
	ResumeBackground()
	StopBackground()
	PlayOneShot(e Effect)
}

// TrackForLevel maps a level to its background track band.
func TrackForLevel(level int) Track {
	switch {
	case level <= 5:
		return TrackEarly
	case level <= 10:
		return TrackMid
	case level <= 15:
		return TrackHigh
	default:
		return TrackFinal
	}
}

// NullPlayer is the silent Player.
type NullPlayer struct{}

func (NullPlayer) PlayBackgroundTrack(Track) {}
func (NullPlayer) PauseBackground()          {}
func (NullPlayer) ResumeBackground()         {}
func (NullPlayer) StopBackground()           {}
func (NullPlayer) PlayOneShot(Effect)        {}
