package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newPlaying(t *testing.T, size int) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Size = size
	g := New(cfg)
	g.Reset(7)
	if g.Status() != StatusPlaying {
		t.Fatalf("status after Reset = %s, want playing", g.Status())
	}
	return g
}

func TestResetPlacesHeadAtCentre(t *testing.T) {
	g := newPlaying(t, 11)
	if diff := cmp.Diff([]Cell{{5, 5}}, g.Body()); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
	if g.Score() != 0 || g.Facing() != Right {
		t.Fatalf("score=%d facing=%s, want 0 right", g.Score(), g.Facing())
	}
	if g.Food() == g.Head() {
		t.Fatal("food spawned on the head")
	}
	if cells := g.Cells(); cells[5*11+5] != cellHead {
		t.Fatalf("display head cell = %d", cells[5*11+5])
	}
}

func TestStepShiftsBody(t *testing.T) {
	g := newPlaying(t, 11)
	g.food = Cell{0, 0}

	if ev := g.Advance(); ev != EventMoved {
		t.Fatalf("event = %d, want moved", ev)
	}
	if diff := cmp.Diff([]Cell{{6, 5}}, g.Body()); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
	if g.Score() != 0 {
		t.Fatalf("score = %d, want 0", g.Score())
	}
}

func TestStepOntoFoodGrows(t *testing.T) {
	g := newPlaying(t, 11)
	g.food = Cell{6, 5}

	if ev := g.Advance(); ev != EventAte {
		t.Fatalf("event = %d, want ate", ev)
	}
	if diff := cmp.Diff([]Cell{{6, 5}, {5, 5}}, g.Body()); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
	if g.Score() != 1 {
		t.Fatalf("score = %d, want 1", g.Score())
	}
	food := g.Food()
	if food.X < 0 || food.Y < 0 || food.X >= 11 || food.Y >= 11 {
		t.Fatalf("food %v off the board", food)
	}
	for _, b := range g.Body() {
		if b == food {
			t.Fatalf("food relocated onto body cell %v", b)
		}
	}
}

func TestStepOutOfBoundsEndsGame(t *testing.T) {
	g := newPlaying(t, 11)
	g.body = []Cell{{10, 5}}
	g.food = Cell{0, 0}

	if ev := g.Advance(); ev != EventDied {
		t.Fatalf("event = %d, want died", ev)
	}
	if g.Status() != StatusOver {
		t.Fatalf("status = %s, want game over", g.Status())
	}
	if ev := g.Advance(); ev != EventNone {
		t.Fatalf("step after game over returned %d", ev)
	}
	if diff := cmp.Diff([]Cell{{10, 5}}, g.Body()); diff != "" {
		t.Fatalf("body changed after death (-want +got):\n%s", diff)
	}

	up := newPlaying(t, 11)
	up.body = []Cell{{3, 0}}
	up.food = Cell{9, 9}
	up.Turn(Up)
	if ev := up.Advance(); ev != EventDied {
		t.Fatalf("moving off the top returned %d", ev)
	}
}

func TestStepIntoBodyEndsGame(t *testing.T) {
	g := newPlaying(t, 11)
	g.body = []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}
	g.dir, g.next = Left, Left
	g.food = Cell{0, 0}
	g.Turn(Down)

	if ev := g.Advance(); ev != EventDied {
		t.Fatalf("event = %d, want died", ev)
	}

	// The tail cell counts as occupied too.
	tail := newPlaying(t, 11)
	tail.body = []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	tail.dir, tail.next = Up, Up
	tail.food = Cell{0, 0}
	tail.Turn(Right)
	if ev := tail.Advance(); ev != EventDied {
		t.Fatalf("moving into the tail returned %d, want died", ev)
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	g := newPlaying(t, 11)
	g.food = Cell{0, 0}
	g.Turn(Left)
	g.Advance()
	if g.Head() != (Cell{6, 5}) {
		t.Fatalf("head = %v, reversal should have been ignored", g.Head())
	}

	g.Steer(0, 1)
	g.Advance()
	if g.Head() != (Cell{6, 6}) || g.Facing() != Down {
		t.Fatalf("head=%v facing=%s after steering down", g.Head(), g.Facing())
	}
}

func TestFillingBoardWins(t *testing.T) {
	g := newPlaying(t, 3)
	g.body = []Cell{{1, 2}, {0, 2}, {0, 1}, {0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 0}}
	g.dir, g.next = Right, Right
	g.food = Cell{2, 2}

	if ev := g.Advance(); ev != EventWon {
		t.Fatalf("event = %d, want won", ev)
	}
	if g.Status() != StatusWon {
		t.Fatalf("status = %s, want won", g.Status())
	}
	if g.Score() != 1 || len(g.Body()) != 9 {
		t.Fatalf("score=%d len=%d", g.Score(), len(g.Body()))
	}
	for _, v := range g.Cells() {
		if v == cellFood || v == cellEmpty {
			t.Fatalf("won board should be all snake, found %d", v)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	a := newPlaying(t, 17)
	b := newPlaying(t, 17)
	if a.Food() != b.Food() {
		t.Fatalf("same seed produced food %v and %v", a.Food(), b.Food())
	}
	a.Advance()
	a.Reset(7)
	if diff := cmp.Diff(b.Body(), a.Body()); diff != "" {
		t.Fatalf("Reset did not restore body (-want +got):\n%s", diff)
	}
	if a.Food() != b.Food() {
		t.Fatal("Reset did not restore food placement")
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"preset": "medium", "interval_ms": "90", "seed": "12"})
	want := Config{Size: SizeMedium, Interval: 90 * time.Millisecond, Seed: 12}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if got := FromMap(map[string]string{"size": "1"}).Size; got != minSize {
		t.Fatalf("size clamp = %d, want %d", got, minSize)
	}
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("nil map = %+v", got)
	}
}

func TestSetIntParameterResizes(t *testing.T) {
	g := newPlaying(t, 11)
	if !g.SetIntParameter("size", 15) {
		t.Fatal("size should be adjustable")
	}
	if g.Size().W != 15 || len(g.Cells()) != 15*15 {
		t.Fatalf("size=%v cells=%d", g.Size(), len(g.Cells()))
	}
	if g.Head() != (Cell{7, 7}) {
		t.Fatalf("head after resize = %v", g.Head())
	}
	if g.SetIntParameter("size", 1) {
		t.Fatal("undersized board accepted")
	}
	if !g.SetIntParameter("interval_ms", 100) || g.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %s", g.Interval())
	}
}

func TestStatusLine(t *testing.T) {
	g := New(Config{Size: SizeSmall, Interval: DefaultInterval, Seed: 3})
	g.Reset(0)
	if got, want := g.StatusLine(), "score 0/120"; got != want {
		t.Fatalf("StatusLine = %q, want %q", got, want)
	}
	g.Turn(Up)
	for i := 0; i < SizeSmall && g.Status() == StatusPlaying; i++ {
		g.Advance()
	}
	if g.Status() != StatusOver {
		t.Fatalf("expected game over after running into the top wall, got %v", g.Status())
	}
	if got := g.StatusLine(); !strings.HasPrefix(got, "game over") {
		t.Fatalf("StatusLine = %q, want game over prefix", got)
	}
}
