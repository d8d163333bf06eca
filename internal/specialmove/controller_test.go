package specialmove

import (
	"testing"

	"starmath/internal/config"
)

// recorder captures effect calls in order.
type recorder struct {
	calls []string
}

func (r *recorder) TimeStopBegin()                { r.calls = append(r.calls, "timestop-begin") }
func (r *recorder) TimeStopEnd()                  { r.calls = append(r.calls, "timestop-end") }
func (r *recorder) SlowMotionBegin(scale float64) { r.calls = append(r.calls, "slowmo-begin") }
func (r *recorder) SlowMotionEnd()                { r.calls = append(r.calls, "slowmo-end") }
func (r *recorder) HintShow()                     { r.calls = append(r.calls, "hint") }

func (r *recorder) last() string {
	if len(r.calls) == 0 {
		return ""
	}
	return r.calls[len(r.calls)-1]
}

func newTestController() (*Controller, *recorder) {
	rec := &recorder{}
	return NewController(config.Default(), rec), rec
}

func TestCharge_GrowsWithComboUpToCap(t *testing.T) {
	tests := []struct {
		combo int
		want  int
	}{
		{0, 5},
		{1, 6},
		{5, 10},
		{10, 15},
		{11, 15},
		{50, 15},
	}
	for _, tt := range tests {
		c, _ := newTestController()
		c.Charge(tt.combo)
		if c.Gauge() != tt.want {
			t.Errorf("combo %d: gauge = %d, want %d", tt.combo, c.Gauge(), tt.want)
		}
	}
}

func TestCharge_ClampsAtMaxAndAnnouncesFullOnce(t *testing.T) {
	c, _ := newTestController()

	announced := 0
	for i := 0; i < 20; i++ {
		if c.Charge(10) {
			announced++
		}
	}

	if c.Gauge() != 100 {
		t.Errorf("gauge = %d, want 100", c.Gauge())
	}
	if announced != 1 {
		t.Errorf("gauge-full announced %d times, want once", announced)
	}
}

func TestCharge_FullCueRepeatsAfterSpending(t *testing.T) {
	c, _ := newTestController()
	for i := 0; i < 20; i++ {
		c.Charge(10)
	}

	if _, _, ok := c.Activate(MoveHint); !ok {
		t.Fatal("hint activation failed with a full gauge")
	}
	refilled := false
	for i := 0; i < 20; i++ {
		if c.Charge(10) {
			refilled = true
		}
	}
	if !refilled {
		t.Error("gauge-full cue not replayed after spend and refill")
	}
}

func TestActivate_InsufficientGaugeIsNoOp(t *testing.T) {
	c, rec := newTestController()
	c.Charge(0) // gauge 5, below every cost

	for _, m := range []Move{MoveTimeStop, MoveSlowMotion, MoveHint} {
		if _, _, ok := c.Activate(m); ok {
			t.Errorf("%v activated with gauge %d", m, c.Gauge())
		}
	}
	if len(rec.calls) != 0 {
		t.Errorf("effects invoked without activation: %v", rec.calls)
	}
	if c.Gauge() != 5 {
		t.Errorf("gauge = %d, want unchanged 5", c.Gauge())
	}
}

func TestActivate_SpendsGaugeAndFiresEffect(t *testing.T) {
	c, rec := newTestController()
	for i := 0; i < 10; i++ {
		c.Charge(10)
	}

	dur, token, ok := c.Activate(MoveTimeStop)
	if !ok {
		t.Fatal("time stop did not activate")
	}
	if dur != config.Default().TimeStopDuration {
		t.Errorf("duration = %v, want %v", dur, config.Default().TimeStopDuration)
	}
	if c.Gauge() != 80 {
		t.Errorf("gauge = %d, want 80", c.Gauge())
	}
	if rec.last() != "timestop-begin" {
		t.Errorf("last effect = %q, want timestop-begin", rec.last())
	}
	if !c.Active(MoveTimeStop) {
		t.Error("time stop not marked active")
	}

	c.Expire(MoveTimeStop, token)
	if c.Active(MoveTimeStop) {
		t.Error("time stop still active after expiry")
	}
	if rec.last() != "timestop-end" {
		t.Errorf("last effect = %q, want timestop-end", rec.last())
	}
}

func TestActivate_WhileActiveIsNoOp(t *testing.T) {
	c, _ := newTestController()
	for i := 0; i < 20; i++ {
		c.Charge(10)
	}

	if _, _, ok := c.Activate(MoveSlowMotion); !ok {
		t.Fatal("first activation failed")
	}
	gauge := c.Gauge()
	if _, _, ok := c.Activate(MoveSlowMotion); ok {
		t.Error("slow motion re-activated while running")
	}
	if c.Gauge() != gauge {
		t.Errorf("gauge = %d, want unchanged %d", c.Gauge(), gauge)
	}
}

func TestExpire_StaleTokenIsNoOp(t *testing.T) {
	c, rec := newTestController()
	for i := 0; i < 20; i++ {
		c.Charge(10)
	}

	_, token, _ := c.Activate(MoveTimeStop)
	c.ForceResetAll()
	if rec.last() != "timestop-end" {
		t.Fatalf("last effect = %q, want timestop-end from force reset", rec.last())
	}

	ends := len(rec.calls)
	c.Expire(MoveTimeStop, token)
	if len(rec.calls) != ends {
		t.Error("stale expiry invoked effects after force reset")
	}
}

func TestForceResetAll_EndsEveryActiveMove(t *testing.T) {
	c, rec := newTestController()
	for i := 0; i < 20; i++ {
		c.Charge(10)
	}

	c.Activate(MoveTimeStop)
	c.Activate(MoveSlowMotion)
	c.ForceResetAll()

	if c.Active(MoveTimeStop) || c.Active(MoveSlowMotion) {
		t.Error("moves still active after force reset")
	}
	got := map[string]bool{}
	for _, call := range rec.calls {
		got[call] = true
	}
	if !got["timestop-end"] || !got["slowmo-end"] {
		t.Errorf("missing end effects: %v", rec.calls)
	}

	// Nothing active means a second reset does nothing.
	n := len(rec.calls)
	c.ForceResetAll()
	if len(rec.calls) != n {
		t.Error("idle force reset invoked effects")
	}
}

func TestHint_ArmsForResetDelay(t *testing.T) {
	c, rec := newTestController()
	for i := 0; i < 3; i++ {
		c.Charge(10)
	}

	dur, token, ok := c.Activate(MoveHint)
	if !ok {
		t.Fatal("hint did not activate")
	}
	if dur != config.Default().HintResetDelay {
		t.Errorf("hint duration = %v, want %v", dur, config.Default().HintResetDelay)
	}
	if !c.Active(MoveHint) {
		t.Error("hint not marked active during its reset window")
	}
	if rec.last() != "hint" {
		t.Errorf("last effect = %q, want hint", rec.last())
	}
	if c.Gauge() != 30 {
		t.Errorf("gauge = %d, want 30", c.Gauge())
	}

	// A second press inside the reset window must not spend again.
	if _, _, ok := c.Activate(MoveHint); ok {
		t.Error("hint re-activated within its reset window")
	}
	if c.Gauge() != 30 {
		t.Errorf("gauge = %d after double press, want 30", c.Gauge())
	}

	// After the reset lands, the hint can be bought again.
	c.Expire(MoveHint, token)
	if c.Active(MoveHint) {
		t.Error("hint still active after reset")
	}
	if _, _, ok := c.Activate(MoveHint); !ok {
		t.Error("hint not re-activatable after reset")
	}
	if c.Gauge() != 15 {
		t.Errorf("gauge = %d, want 15", c.Gauge())
	}
}

func TestForceResetAll_ClearsArmedHint(t *testing.T) {
	c, _ := newTestController()
	for i := 0; i < 3; i++ {
		c.Charge(10)
	}

	_, token, _ := c.Activate(MoveHint)
	c.ForceResetAll()
	if c.Active(MoveHint) {
		t.Error("hint still active after force reset")
	}

	// The pending expiry from before the reset is stale now.
	c.Expire(MoveHint, token)
	if c.Active(MoveHint) {
		t.Error("stale hint expiry changed state")
	}
}
