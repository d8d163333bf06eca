package motion

import "time"

// Kind selects a motion program for one button.
type Kind int

const (
	// KindStatic keeps the button at rest.
	KindStatic Kind = iota
	// KindPulse breathes scale and a small horizontal sway.
	KindPulse
	// KindOscillate sways between rest and a fixed offset.
	KindOscillate
	// KindWaypoints loops through a fixed path of offsets.
	KindWaypoints
	// KindRandomWalk chains short tweens to random targets forever.
	KindRandomWalk
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPulse:
		return "pulse"
	case KindOscillate:
		return "oscillate"
	case KindWaypoints:
		return "waypoints"
	case KindRandomWalk:
		return "random-walk"
	default:
		return "static"
	}
}

// Descriptor describes one button's motion program for a level. The
// per-level tables below replace what would otherwise be a long
// conditional ladder in the choreographer.
type Descriptor struct {
	Kind Kind

	// Pulse / oscillate.
	AmpX   float64
	AmpY   float64
	RotAmp float64
	Period time.Duration
	Phase  time.Duration

	// Waypoint loops. SegmentDur is the time per leg.
	Waypoints  []Vec
	SegmentDur time.Duration

	// Random walk.
	Radius  float64
	StepMin time.Duration
	StepMax time.Duration

	// Button size while the program runs. 1 means full size; the top
	// tiers shrink buttons to offset the visual crowding.
	BaseScale   float64
	ScaleJitter float64
}

// ForLevel returns the four per-button motion descriptors for a level.
// Amplitudes are in play-area grid cells and grow with level: static at
// level 1, gentle sway at the low levels, waypoint loops in the middle
// band, and ever-faster random walks with shrinking buttons at the top.
func ForLevel(level int) [4]Descriptor {
	switch {
	case level <= 1:
		return fill(Descriptor{Kind: KindStatic, BaseScale: 1})

	case level == 2:
		return [4]Descriptor{
			pulse(1, 1000*time.Millisecond, 0),
			pulse(-1, 1300*time.Millisecond, 200*time.Millisecond),
			pulse(1, 800*time.Millisecond, 400*time.Millisecond),
			pulse(-1, 1100*time.Millisecond, 600*time.Millisecond),
		}

	case level == 3:
		// Cardinal directions, one per button.
		return [4]Descriptor{
			osc(0, -3, 0, 1400*time.Millisecond, 0),
			osc(3, 0, 0, 1400*time.Millisecond, 150*time.Millisecond),
			osc(0, 3, 0, 1400*time.Millisecond, 300*time.Millisecond),
			osc(-3, 0, 0, 1400*time.Millisecond, 450*time.Millisecond),
		}

	case level == 4:
		// Diagonals, slightly wider and faster.
		return [4]Descriptor{
			osc(-4, -4, 0, 1200*time.Millisecond, 0),
			osc(4, -4, 0, 1200*time.Millisecond, 100*time.Millisecond),
			osc(-4, 4, 0, 1200*time.Millisecond, 200*time.Millisecond),
			osc(4, 4, 0, 1200*time.Millisecond, 300*time.Millisecond),
		}

	case level == 5:
		return [4]Descriptor{
			osc(0, -5, 0, 1100*time.Millisecond, 0),
			osc(5, 0, 0, 1300*time.Millisecond, 0),
			square(4, 400*time.Millisecond),
			osc(5, -3, 0, 900*time.Millisecond, 0),
		}

	case level == 6:
		// Rotation joins in.
		return [4]Descriptor{
			osc(0, -5, 20, 1000*time.Millisecond, 0),
			osc(5, -5, -20, 1200*time.Millisecond, 0),
			square(4, 500*time.Millisecond),
			osc(-5, 0, 25, 1100*time.Millisecond, 0),
		}

	case level == 7:
		return [4]Descriptor{
			path([]Vec{{4, -3}, {0, 0}, {-4, 3}, {0, 0}}, 500*time.Millisecond),
			path([]Vec{{6, 0}, {6, 3}, {0, 3}, {0, 0}}, 450*time.Millisecond),
			path([]Vec{{4, -4}, {-4, -4}, {4, 4}, {0, 0}}, 450*time.Millisecond),
			path(spiralPath(8, 1.5, 0.4), 250*time.Millisecond),
		}

	case level == 8:
		return [4]Descriptor{
			path([]Vec{{6, -5}, {-5, -6}, {-6, 5}, {0, 0}}, 550*time.Millisecond),
			path(starPath(7), 250*time.Millisecond),
			path([]Vec{{-4, -4}, {0, -5}, {4, -4}, {0, 4}, {0, 0}}, 350*time.Millisecond),
			walk(6, 700*time.Millisecond, 700*time.Millisecond, 45, 1, 0),
		}

	case level == 9:
		return fill(walk(8, 600*time.Millisecond, 600*time.Millisecond, 60, 1, 0))

	case level == 10:
		return fill(walk(9, 500*time.Millisecond, 500*time.Millisecond, 90, 1, 0.05))

	case level <= 15:
		// Buttons shrink from 0.97 down to 0.85 while the walk widens.
		scale := 1.0 - float64(level-10)*0.03
		return fill(walk(10, 400*time.Millisecond, 700*time.Millisecond, 90, scale, 0.05))

	default:
		// Top tier: shrink toward 0.70 with the wildest walks.
		scale := 0.85 - float64(level-15)*0.03
		if scale < 0.70 {
			scale = 0.70
		}
		return fill(walk(14, 250*time.Millisecond, 500*time.Millisecond, 180, scale, 0.08))
	}
}

func fill(d Descriptor) [4]Descriptor {
	return [4]Descriptor{d, d, d, d}
}

func pulse(dir float64, period, phase time.Duration) Descriptor {
	return Descriptor{
		Kind:        KindPulse,
		AmpX:        dir,
		Period:      period,
		Phase:       phase,
		BaseScale:   1,
		ScaleJitter: 0.07,
	}
}

func osc(ampX, ampY, rot float64, period, phase time.Duration) Descriptor {
	return Descriptor{
		Kind:      KindOscillate,
		AmpX:      ampX,
		AmpY:      ampY,
		RotAmp:    rot,
		Period:    period,
		Phase:     phase,
		BaseScale: 1,
	}
}

func path(points []Vec, segmentDur time.Duration) Descriptor {
	return Descriptor{
		Kind:       KindWaypoints,
		Waypoints:  points,
		SegmentDur: segmentDur,
		BaseScale:  1,
	}
}

func walk(radius float64, stepMin, stepMax time.Duration, rotAmp, scale, jitter float64) Descriptor {
	return Descriptor{
		Kind:        KindRandomWalk,
		Radius:      radius,
		StepMin:     stepMin,
		StepMax:     stepMax,
		RotAmp:      rotAmp,
		BaseScale:   scale,
		ScaleJitter: jitter,
	}
}

// square is a four-corner waypoint loop of the given half-width.
func square(r float64, segmentDur time.Duration) Descriptor {
	return path([]Vec{{r, 0}, {r, r}, {0, r}, {0, 0}}, segmentDur)
}
