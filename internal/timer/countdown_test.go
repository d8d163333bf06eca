package timer

import (
	"testing"
	"time"
)

func TestStartAndTickDrains(t *testing.T) {
	now := time.Now()
	c := New(true, nil)
	c.Start(10*time.Second, now)

	if !c.Running() {
		t.Fatal("expected running after Start")
	}
	if c.Remaining() != 10*time.Second {
		t.Errorf("remaining = %v, want 10s", c.Remaining())
	}

	expired := c.Tick(now.Add(3 * time.Second))
	if expired {
		t.Error("unexpected expiry")
	}
	if c.Remaining() != 7*time.Second {
		t.Errorf("remaining = %v, want 7s", c.Remaining())
	}
}

func TestExpiryFiresOnce(t *testing.T) {
	now := time.Now()
	c := New(true, nil)
	c.Start(2*time.Second, now)

	if !c.Tick(now.Add(3 * time.Second)) {
		t.Fatal("expected expiry")
	}
	if c.State() != StateExpired {
		t.Errorf("state = %v, want expired", c.State())
	}
	// Further ticks must not report expiry again.
	if c.Tick(now.Add(4 * time.Second)) {
		t.Error("expiry reported twice")
	}
}

func TestPauseResumeFreezesRemaining(t *testing.T) {
	now := time.Now()
	c := New(true, nil)
	c.Start(10*time.Second, now)
	c.Tick(now.Add(2 * time.Second))

	c.Pause()
	if !c.Paused() {
		t.Fatal("expected paused")
	}

	// Ticks while paused do nothing.
	c.Tick(now.Add(30 * time.Second))
	if c.Remaining() != 8*time.Second {
		t.Errorf("remaining = %v, want 8s while paused", c.Remaining())
	}

	// Resume re-anchors: only time after resume counts.
	c.Resume(now.Add(60 * time.Second))
	c.Tick(now.Add(61 * time.Second))
	if c.Remaining() != 7*time.Second {
		t.Errorf("remaining = %v, want 7s after resume", c.Remaining())
	}
}

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	now := time.Now()
	c := New(true, nil)

	// Pause/resume/tick before start.
	c.Pause()
	c.Resume(now)
	if c.Tick(now) {
		t.Error("tick on idle timer expired")
	}
	if c.State() != StateIdle {
		t.Errorf("state = %v, want idle", c.State())
	}

	// Double pause and resume-while-running.
	c.Start(5*time.Second, now)
	c.Pause()
	c.Pause()
	c.Resume(now.Add(time.Second))
	c.Resume(now.Add(time.Second))
	if !c.Running() {
		t.Error("expected running after resume")
	}

	// Stop from any state.
	c.Stop()
	if c.State() != StateIdle {
		t.Errorf("state = %v, want idle after stop", c.State())
	}
	c.Stop()
}

func TestDisabledTimerNeverRuns(t *testing.T) {
	c := New(false, nil)
	c.Start(10*time.Second, time.Now())
	if c.State() != StateIdle {
		t.Errorf("disabled timer state = %v, want idle", c.State())
	}
}

func TestRemainingNeverIncreasesOrGoesNegative(t *testing.T) {
	now := time.Now()
	c := New(true, nil)
	c.Start(5*time.Second, now)

	prev := c.Remaining()
	steps := []time.Duration{1 * time.Second, 500 * time.Millisecond, 0, 2 * time.Second, 10 * time.Second}
	elapsed := time.Duration(0)
	for _, step := range steps {
		elapsed += step
		c.Tick(now.Add(elapsed))
		r := c.Remaining()
		if r > prev {
			t.Fatalf("remaining increased: %v -> %v", prev, r)
		}
		if r < 0 {
			t.Fatalf("remaining negative: %v", r)
		}
		prev = r

		c.Pause()
		c.Resume(now.Add(elapsed))
	}
}

func TestClockGoingBackwardsIsClamped(t *testing.T) {
	now := time.Now()
	c := New(true, nil)
	c.Start(5*time.Second, now)
	c.Tick(now.Add(time.Second))
	c.Tick(now.Add(500 * time.Millisecond)) // clock stepped back
	if c.Remaining() != 4*time.Second {
		t.Errorf("remaining = %v, want 4s", c.Remaining())
	}
}

func TestSlowMotionScaleReadDynamically(t *testing.T) {
	now := time.Now()
	scale := 1.0
	c := New(true, func() float64 { return scale })
	c.Start(10*time.Second, now)

	c.Tick(now.Add(2 * time.Second))
	if c.Remaining() != 8*time.Second {
		t.Fatalf("remaining = %v, want 8s at normal scale", c.Remaining())
	}

	// Slow motion engages mid-countdown: 2 real seconds drain 1.
	scale = 0.5
	c.Tick(now.Add(4 * time.Second))
	if c.Remaining() != 7*time.Second {
		t.Errorf("remaining = %v, want 7s under slow motion", c.Remaining())
	}

	// And disengages again.
	scale = 1.0
	c.Tick(now.Add(5 * time.Second))
	if c.Remaining() != 6*time.Second {
		t.Errorf("remaining = %v, want 6s back at normal scale", c.Remaining())
	}
}

func TestFraction(t *testing.T) {
	now := time.Now()
	c := New(true, nil)
	if c.Fraction() != 0 {
		t.Errorf("idle fraction = %v, want 0", c.Fraction())
	}
	c.Start(10*time.Second, now)
	c.Tick(now.Add(5 * time.Second))
	if c.Fraction() != 0.5 {
		t.Errorf("fraction = %v, want 0.5", c.Fraction())
	}
}
