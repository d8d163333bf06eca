package timer

import (
	"time"

	"github.com/samber/lo"
)

// State is the countdown lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateExpired
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateExpired:
		return "expired"
	default:
		return "idle"
	}
}

// Countdown is a wall-clock-driven per-question timer with pause/resume
// and a dynamic time-scale hook for slow motion. Operations called from
// an invalid state are silent no-ops; nothing here ever errors.
type Countdown struct {
	state     State
	enabled   bool
	maxTime   time.Duration
	remaining time.Duration
	lastTick  time.Time

	// timeScale is read every tick so slow motion can begin or end
	// mid-countdown. Nil means real time.
	timeScale func() float64
}

// New creates a Countdown. When enabled is false, Start is a no-op and
// the timer never runs.
func New(enabled bool, timeScale func() float64) *Countdown {
	return &Countdown{enabled: enabled, timeScale: timeScale}
}

// Start begins a fresh countdown from maxTime. Restarting while running
// replaces the previous countdown.
func (c *Countdown) Start(maxTime time.Duration, now time.Time) {
	if !c.enabled {
		return
	}
	c.maxTime = maxTime
	c.remaining = maxTime
	c.lastTick = now
	c.state = StateRunning
}

// Pause freezes the countdown. No-op unless running.
func (c *Countdown) Pause() {
	if c.state != StateRunning {
		return
	}
	c.state = StatePaused
}

// Resume continues a paused countdown from its frozen remaining time.
// No-op unless paused.
func (c *Countdown) Resume(now time.Time) {
	if c.state != StatePaused {
		return
	}
	c.lastTick = now
	c.state = StateRunning
}

// Stop halts the countdown from any state and returns it to idle.
func (c *Countdown) Stop() {
	c.state = StateIdle
	c.remaining = 0
	c.maxTime = 0
}

// Tick advances the countdown to now and reports whether it expired on
// this tick. Expiry is reported exactly once per countdown; ticks in
// any state but running are no-ops.
func (c *Countdown) Tick(now time.Time) bool {
	if c.state != StateRunning {
		return false
	}

	dt := now.Sub(c.lastTick)
	c.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if c.timeScale != nil {
		scale := c.timeScale()
		if scale > 0 && scale < 1 {
			dt = time.Duration(float64(dt) * scale)
		}
	}

	c.remaining = lo.Clamp(c.remaining-dt, 0, c.maxTime)
	if c.remaining == 0 {
		c.state = StateExpired
		return true
	}
	return false
}

// Remaining returns the time left on the countdown.
func (c *Countdown) Remaining() time.Duration { return c.remaining }

// Max returns the countdown's full duration.
func (c *Countdown) Max() time.Duration { return c.maxTime }

// State returns the current lifecycle state.
func (c *Countdown) State() State { return c.state }

// Running reports whether the countdown is actively draining.
func (c *Countdown) Running() bool { return c.state == StateRunning }

// Paused reports whether the countdown is frozen.
func (c *Countdown) Paused() bool { return c.state == StatePaused }

// Enabled reports whether the time-limit feature is on at all.
func (c *Countdown) Enabled() bool { return c.enabled }

// Fraction returns remaining/max in [0,1], or 0 when idle.
func (c *Countdown) Fraction() float64 {
	if c.maxTime <= 0 {
		return 0
	}
	return float64(c.remaining) / float64(c.maxTime)
}
