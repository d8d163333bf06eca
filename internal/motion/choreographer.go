package motion

import (
	"math"
	"math/rand"
	"time"
)

// Choreographer drives per-button motion programs for one question at a
// time. Every call to ApplyLevelMotion opens a new generation: handles
// created under an older generation refuse to schedule further random
// walk steps, so a stale program can never run alongside a fresh one.
//
// All methods are driven from the single UI goroutine; Advance is called
// once per frame tick with the current wall clock.
type Choreographer struct {
	rng *rand.Rand

	generation int
	handles    []*handle
	paused     bool
	timeScale  float64

	lastAdvance time.Time
	anchored    bool
}

// NewChoreographer creates a choreographer using the given RNG for
// random walk targets.
func NewChoreographer(rng *rand.Rand) *Choreographer {
	return &Choreographer{rng: rng, timeScale: 1}
}

// ApplyLevelMotion cancels any running programs and starts the given
// level's choreography for buttonCount buttons. Cancel-before-create:
// the old generation is fully stopped before new handles exist.
func (c *Choreographer) ApplyLevelMotion(level, buttonCount int) {
	c.StopAll()
	c.generation++

	if buttonCount <= 0 {
		return
	}
	if buttonCount > 4 {
		buttonCount = 4
	}

	descs := ForLevel(level)
	for i := 0; i < buttonCount; i++ {
		c.handles = append(c.handles, newHandle(descs[i], c.generation))
	}
}

// StopAll cancels every running program and resets every transform to
// rest. Safe to call when nothing is running.
func (c *Choreographer) StopAll() {
	for _, h := range c.handles {
		h.stop()
	}
	c.handles = nil
	c.paused = false
	c.anchored = false
}

// PauseAll freezes all programs in place, preserving their progress.
func (c *Choreographer) PauseAll() {
	c.paused = true
}

// ResumeAll continues paused programs from their frozen progress.
func (c *Choreographer) ResumeAll() {
	c.paused = false
}

// Paused reports whether motion is currently frozen.
func (c *Choreographer) Paused() bool { return c.paused }

// Active reports whether any program is attached.
func (c *Choreographer) Active() bool { return len(c.handles) > 0 }

// Generation returns the current choreography generation token.
func (c *Choreographer) Generation() int { return c.generation }

// SetTimeScale scales motion speed for every running program. 1 is
// real time; slow motion uses a sub-1 factor.
func (c *Choreographer) SetTimeScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.timeScale = scale
}

// TimeScale returns the current motion time scale.
func (c *Choreographer) TimeScale() float64 { return c.timeScale }

// Advance steps every program to now. While paused, the wall clock is
// consumed without advancing program clocks, so motion resumes exactly
// where it froze.
func (c *Choreographer) Advance(now time.Time) {
	if !c.anchored {
		c.lastAdvance = now
		c.anchored = true
		return
	}
	dt := now.Sub(c.lastAdvance)
	c.lastAdvance = now
	if dt < 0 {
		dt = 0
	}
	if c.paused {
		return
	}
	dt = time.Duration(float64(dt) * c.timeScale)
	for _, h := range c.handles {
		h.advance(dt, c)
	}
}

// Transform returns the current transform of button i, or Rest when no
// program targets it.
func (c *Choreographer) Transform(i int) Transform {
	if i < 0 || i >= len(c.handles) {
		return Rest
	}
	return c.handles[i].current
}

// handle owns one button's running program.
type handle struct {
	desc       Descriptor
	generation int
	clock      time.Duration
	current    Transform

	// Random walk tween state.
	stepFrom  Transform
	stepTo    Transform
	stepStart time.Duration
	stepEnd   time.Duration
	walking   bool
}

func newHandle(desc Descriptor, generation int) *handle {
	return &handle{desc: desc, generation: generation, current: restFor(desc)}
}

func restFor(desc Descriptor) Transform {
	return Transform{Scale: desc.BaseScale}
}

// stop resets the handle's transform to the global rest values.
func (h *handle) stop() {
	h.current = Rest
	h.walking = false
}

func (h *handle) advance(dt time.Duration, c *Choreographer) {
	h.clock += dt

	switch h.desc.Kind {
	case KindStatic:
		// At rest by construction.

	case KindPulse:
		w := h.wave()
		h.current = Transform{
			X:     h.desc.AmpX * w,
			Scale: h.desc.BaseScale + h.desc.ScaleJitter*w,
		}

	case KindOscillate:
		w := h.wave()
		h.current = Transform{
			X:        h.desc.AmpX * w,
			Y:        h.desc.AmpY * w,
			Rotation: h.desc.RotAmp * w,
			Scale:    h.desc.BaseScale,
		}

	case KindWaypoints:
		h.current = h.waypointAt()

	case KindRandomWalk:
		h.advanceWalk(c)
	}
}

// wave returns the looping away-and-back progress for pulse and
// oscillate programs.
func (h *handle) wave() float64 {
	return wave(float64(h.clock+h.desc.Phase), float64(h.desc.Period))
}

// waypointAt interpolates the looping waypoint path at the current
// clock. The path implicitly starts at rest and each leg eases.
func (h *handle) waypointAt() Transform {
	points := h.desc.Waypoints
	if len(points) == 0 || h.desc.SegmentDur <= 0 {
		return restFor(h.desc)
	}

	total := h.desc.SegmentDur * time.Duration(len(points))
	t := h.clock % total
	leg := int(t / h.desc.SegmentDur)
	p := float64(t%h.desc.SegmentDur) / float64(h.desc.SegmentDur)

	from := Vec{}
	if leg > 0 {
		from = points[leg-1]
	}
	to := points[leg]

	rot := float64(leg+1) / float64(len(points)) * h.desc.RotAmp
	prevRot := float64(leg) / float64(len(points)) * h.desc.RotAmp

	eased := easeSineInOut(p)
	return lerp(
		Transform{X: from.X, Y: from.Y, Rotation: prevRot, Scale: h.desc.BaseScale},
		Transform{X: to.X, Y: to.Y, Rotation: rot, Scale: h.desc.BaseScale},
		eased,
	)
}

// advanceWalk progresses the current random step and, on completion,
// schedules the next one, but only while this handle's generation is
// still the choreographer's current one. A stale handle terminates
// instead of rescheduling.
func (h *handle) advanceWalk(c *Choreographer) {
	if !h.walking {
		h.startStep(c, h.clock)
		if !h.walking {
			return
		}
	}

	for h.clock >= h.stepEnd {
		h.current = h.stepTo
		if h.generation != c.generation {
			h.walking = false
			return
		}
		h.startStep(c, h.stepEnd)
	}

	span := h.stepEnd - h.stepStart
	if span <= 0 {
		return
	}
	p := float64(h.clock-h.stepStart) / float64(span)
	h.current = lerp(h.stepFrom, h.stepTo, easePowerInOut(p))
}

// startStep begins a new tween toward a random target within the
// level's radius.
func (h *handle) startStep(c *Choreographer, at time.Duration) {
	if h.generation != c.generation {
		h.walking = false
		return
	}

	angle := c.rng.Float64() * 2 * math.Pi
	dist := h.desc.Radius * (0.8 + 0.2*c.rng.Float64())
	rot := (c.rng.Float64()*2 - 1) * h.desc.RotAmp
	scale := h.desc.BaseScale
	if h.desc.ScaleJitter > 0 {
		scale += (c.rng.Float64()*2 - 1) * h.desc.ScaleJitter
	}

	dur := h.desc.StepMin
	if h.desc.StepMax > h.desc.StepMin {
		dur += time.Duration(c.rng.Int63n(int64(h.desc.StepMax - h.desc.StepMin)))
	}
	if dur <= 0 {
		dur = 250 * time.Millisecond
	}

	h.stepFrom = h.current
	h.stepTo = Transform{
		X:        math.Cos(angle) * dist,
		Y:        math.Sin(angle) * dist,
		Rotation: rot,
		Scale:    scale,
	}
	h.stepStart = at
	h.stepEnd = at + dur
	h.walking = true
}
