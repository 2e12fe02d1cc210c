package core

import (
	"testing"
	"time"
)

func TestFixedIntervalGatesSteps(t *testing.T) {
	fs := NewFixedInterval(175 * time.Millisecond)
	start := time.Unix(0, 0)

	if !fs.Advance(0, start) {
		t.Fatal("first advance should fire immediately")
	}
	if fs.Advance(100*time.Millisecond, start.Add(100*time.Millisecond)) {
		t.Fatal("advance before interval elapsed should not fire")
	}
	if !fs.Advance(80*time.Millisecond, start.Add(180*time.Millisecond)) {
		t.Fatal("advance past interval should fire")
	}
	// A long stall reports a single tick and drops the backlog.
	if !fs.Advance(time.Second, start.Add(1180*time.Millisecond)) {
		t.Fatal("stalled frame should fire once")
	}
	if fs.Advance(0, start.Add(1180*time.Millisecond)) {
		t.Fatal("backlog should not replay")
	}
}

func TestFixedStepClock(t *testing.T) {
	now := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep should fire")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("ShouldStep fired early")
	}
	now = now.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("ShouldStep should fire after 110ms at 10 TPS")
	}

	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("ShouldStep should fire right after Reset")
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 1, 9)
	g.Set(-1, 0, 9)
	if got := g.At(2, 1); got != 7 {
		t.Fatalf("At(2,1) = %d, want 7", got)
	}
	if g.In(3, 0) || g.In(0, 2) || !g.In(0, 0) {
		t.Fatal("In reports wrong bounds")
	}
	for i, v := range g.Cells() {
		if v != 0 && i != g.Index(2, 1) {
			t.Fatalf("unexpected write at %d", i)
		}
	}
	g.Clear()
	if g.At(2, 1) != 0 {
		t.Fatal("Clear did not zero the grid")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 16; i++ {
		if a.IntN(100) != b.IntN(100) {
			t.Fatal("same seed produced different sequences")
		}
	}
	if got := a.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d", got)
	}
	for i := 0; i < 100; i++ {
		j := a.Jitter(4)
		if j < -2 || j >= 2 {
			t.Fatalf("Jitter(4) = %f out of range", j)
		}
	}
}
