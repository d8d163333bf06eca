package motion

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func newTestChoreographer() *Choreographer {
	return NewChoreographer(rand.New(rand.NewSource(1)))
}

// run anchors the choreographer and advances it in fixed steps.
func run(c *Choreographer, start time.Time, steps int, step time.Duration) time.Time {
	now := start
	c.Advance(now)
	for i := 0; i < steps; i++ {
		now = now.Add(step)
		c.Advance(now)
	}
	return now
}

func TestApplyLevelMotion_LevelOneStaysAtRest(t *testing.T) {
	c := newTestChoreographer()
	c.ApplyLevelMotion(1, 4)
	run(c, time.Unix(0, 0), 20, 50*time.Millisecond)

	for i := 0; i < 4; i++ {
		if got := c.Transform(i); got != Rest {
			t.Errorf("button %d: transform = %+v, want rest", i, got)
		}
	}
}

func TestApplyLevelMotion_HighLevelMoves(t *testing.T) {
	c := newTestChoreographer()
	c.ApplyLevelMotion(10, 4)
	run(c, time.Unix(0, 0), 20, 50*time.Millisecond)

	moved := false
	for i := 0; i < 4; i++ {
		tr := c.Transform(i)
		if tr.X != 0 || tr.Y != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("no button moved after a second of level 10 choreography")
	}
}

func TestStopAll_ResetsToRestAndIsIdempotent(t *testing.T) {
	c := newTestChoreographer()
	c.ApplyLevelMotion(12, 4)
	run(c, time.Unix(0, 0), 10, 50*time.Millisecond)

	c.StopAll()
	c.StopAll()

	if c.Active() {
		t.Error("choreographer still active after StopAll")
	}
	for i := 0; i < 4; i++ {
		if got := c.Transform(i); got != Rest {
			t.Errorf("button %d: transform = %+v, want rest", i, got)
		}
	}
}

func TestPauseAll_FreezesTransforms(t *testing.T) {
	c := newTestChoreographer()
	c.ApplyLevelMotion(9, 4)
	now := run(c, time.Unix(0, 0), 10, 50*time.Millisecond)

	c.PauseAll()
	var frozen [4]Transform
	for i := range frozen {
		frozen[i] = c.Transform(i)
	}

	now = run(c, now, 10, 50*time.Millisecond)
	for i := range frozen {
		if got := c.Transform(i); got != frozen[i] {
			t.Errorf("button %d moved while paused: %+v != %+v", i, got, frozen[i])
		}
	}

	c.ResumeAll()
	run(c, now, 10, 50*time.Millisecond)
	moved := false
	for i := range frozen {
		if c.Transform(i) != frozen[i] {
			moved = true
		}
	}
	if !moved {
		t.Error("no button moved after ResumeAll")
	}
}

func TestSetTimeScale_SlowsProgress(t *testing.T) {
	fast := newTestChoreographer()
	slow := newTestChoreographer()
	fast.ApplyLevelMotion(3, 1)
	slow.ApplyLevelMotion(3, 1)
	slow.SetTimeScale(0.5)

	run(fast, time.Unix(0, 0), 7, 50*time.Millisecond)
	run(slow, time.Unix(0, 0), 7, 50*time.Millisecond)

	f := fast.Transform(0)
	s := slow.Transform(0)
	if math.Abs(s.Y) >= math.Abs(f.Y) {
		t.Errorf("slow motion offset %v not below full speed %v", s.Y, f.Y)
	}
}

func TestApplyLevelMotion_ReplacesOldGeneration(t *testing.T) {
	c := newTestChoreographer()
	c.ApplyLevelMotion(9, 4)
	gen := c.Generation()

	c.ApplyLevelMotion(10, 4)
	if c.Generation() == gen {
		t.Error("generation not bumped by re-apply")
	}
	if len(c.handles) != 4 {
		t.Fatalf("handle count = %d, want 4", len(c.handles))
	}
	for i, h := range c.handles {
		if h.generation != c.Generation() {
			t.Errorf("handle %d carries stale generation %d", i, h.generation)
		}
	}
}

func TestStaleWalkHandle_StopsRescheduling(t *testing.T) {
	c := newTestChoreographer()
	c.ApplyLevelMotion(9, 1)
	run(c, time.Unix(0, 0), 5, 50*time.Millisecond)

	h := c.handles[0]
	// Orphan the handle by moving the choreographer ahead a generation.
	c.generation++

	// Let the current step run out.
	for i := 0; i < 40; i++ {
		h.advance(50*time.Millisecond, c)
	}
	if h.walking {
		t.Error("stale handle still scheduling walk steps")
	}
}

func TestTransform_OutOfRangeIsRest(t *testing.T) {
	c := newTestChoreographer()
	if got := c.Transform(0); got != Rest {
		t.Errorf("transform with no handles = %+v, want rest", got)
	}
	c.ApplyLevelMotion(5, 4)
	if got := c.Transform(7); got != Rest {
		t.Errorf("transform out of range = %+v, want rest", got)
	}
	if got := c.Transform(-1); got != Rest {
		t.Errorf("transform negative index = %+v, want rest", got)
	}
}

func TestAdvance_BackwardsClockIsIgnored(t *testing.T) {
	c := newTestChoreographer()
	c.ApplyLevelMotion(9, 1)
	now := run(c, time.Unix(0, 0), 10, 50*time.Millisecond)
	before := c.Transform(0)

	c.Advance(now.Add(-time.Second))
	if got := c.Transform(0); got != before {
		t.Errorf("backwards clock changed transform: %+v != %+v", got, before)
	}
}
