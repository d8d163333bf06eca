package specialmove

import (
	"time"

	"github.com/samber/lo"

	"starmath/internal/config"
)

// Effects receives the world-side consequences of special moves. The
// game screen implements this against the timer, the choreographer and
// the audio player.
type Effects interface {
	TimeStopBegin()
	TimeStopEnd()
	SlowMotionBegin(scale float64)
	SlowMotionEnd()
	HintShow()
}

// Controller owns the special move gauge and the lifecycle of active
// moves. Every activation carries an epoch token: the expiry that
// comes back from a scheduled tick only lands when its token still
// matches, so a force reset or re-activation silently invalidates
// stale expiries.
type Controller struct {
	cfg     config.Config
	effects Effects

	gauge         int
	fullAnnounced bool

	active map[Move]bool
	epoch  map[Move]int
}

// NewController creates a controller with an empty gauge.
func NewController(cfg config.Config, effects Effects) *Controller {
	return &Controller{
		cfg:     cfg,
		effects: effects,
		active:  make(map[Move]bool),
		epoch:   make(map[Move]int),
	}
}

// Gauge returns the current gauge value.
func (c *Controller) Gauge() int { return c.gauge }

// Fraction returns the gauge fill ratio in [0,1].
func (c *Controller) Fraction() float64 {
	if c.cfg.GaugeMax <= 0 {
		return 0
	}
	return float64(c.gauge) / float64(c.cfg.GaugeMax)
}

// Full reports whether the gauge is at its maximum.
func (c *Controller) Full() bool { return c.gauge >= c.cfg.GaugeMax }

// Charge adds gauge for a correct answer at the given combo. The
// charge grows with combo up to a cap. Returns true exactly once per
// fill, when the gauge reaches maximum, so the caller can play the
// gauge-full cue a single time.
func (c *Controller) Charge(combo int) bool {
	amount := lo.Clamp(c.cfg.ChargeBase+c.cfg.ChargePerCombo*combo, 0, c.cfg.ChargeCap)
	c.gauge = lo.Clamp(c.gauge+amount, 0, c.cfg.GaugeMax)

	if c.Full() && !c.fullAnnounced {
		c.fullAnnounced = true
		return true
	}
	return false
}

// CanUse reports whether the move could be activated right now.
func (c *Controller) CanUse(m Move) bool {
	return !c.active[m] && c.gauge >= m.Cost(c.cfg)
}

// Active reports whether a move is currently running.
func (c *Controller) Active(m Move) bool { return c.active[m] }

// Activate spends gauge and starts the move. Returns the effect
// duration, the expiry token to hand back to Expire, and whether the
// activation happened. Insufficient gauge or an already-running move
// is a silent no-op.
func (c *Controller) Activate(m Move) (time.Duration, int, bool) {
	if !c.CanUse(m) {
		return 0, 0, false
	}
	c.gauge -= m.Cost(c.cfg)
	if !c.Full() {
		c.fullAnnounced = false
	}

	c.active[m] = true
	c.epoch[m]++

	switch m {
	case MoveTimeStop:
		c.effects.TimeStopBegin()
	case MoveSlowMotion:
		c.effects.SlowMotionBegin(c.cfg.SlowMotionScale)
	case MoveHint:
		c.effects.HintShow()
	}

	return m.Duration(c.cfg), c.epoch[m], true
}

// Expire ends a move when the token is still current. A stale token,
// or a move that already ended, is a silent no-op.
func (c *Controller) Expire(m Move, token int) {
	if !c.active[m] || c.epoch[m] != token {
		return
	}
	c.end(m)
}

// ForceResetAll ends every active move immediately and invalidates
// their pending expiries. Used when a question resolves while an
// effect is still running.
func (c *Controller) ForceResetAll() {
	for _, m := range []Move{MoveTimeStop, MoveSlowMotion, MoveHint} {
		if c.active[m] {
			c.epoch[m]++
			c.end(m)
		}
	}
}

// end clears the active flag and undoes the move's world effects. Hint
// has nothing to undo: its highlight decays on the screen's own clock.
func (c *Controller) end(m Move) {
	c.active[m] = false
	switch m {
	case MoveTimeStop:
		c.effects.TimeStopEnd()
	case MoveSlowMotion:
		c.effects.SlowMotionEnd()
	}
}
