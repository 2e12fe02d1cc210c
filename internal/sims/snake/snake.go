package snake

import (
	"fmt"
	"image/color"
	"time"

	"railsnake/internal/core"
)

// Cell addresses a square on the board. X grows right, Y grows down.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell { return Cell{c.X + d.X, c.Y + d.Y} }

// Direction is a unit move on the board.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Delta returns the cell offset for one move in d.
func (d Direction) Delta() Cell {
	switch d {
	case Right:
		return Cell{1, 0}
	case Down:
		return Cell{0, 1}
	case Left:
		return Cell{-1, 0}
	case Up:
		return Cell{0, -1}
	}
	return Cell{}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return "unknown"
}

// Status is the lifecycle state of a game.
type Status uint8

const (
	StatusReady Status = iota
	StatusPlaying
	StatusOver
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusOver:
		return "game over"
	case StatusWon:
		return "won"
	}
	return "unknown"
}

// Event describes what a single tick did.
type Event uint8

const (
	EventNone Event = iota
	EventMoved
	EventAte
	EventDied
	EventWon
)

// Game holds the full state of one Snake round.
type Game struct {
	cfg Config

	body   []Cell
	dir    Direction
	next   Direction
	food   Cell
	score  int
	status Status

	rng     *core.RNG
	display *core.ByteGrid
	palette []color.RGBA
}

// New returns a game in the Ready state. Call Reset to start playing.
func New(cfg Config) *Game {
	cfg = cfg.normalized()
	g := &Game{
		cfg:     cfg,
		rng:     core.NewRNG(cfg.Seed),
		display: core.NewByteGrid(cfg.Size, cfg.Size),
	}
	g.palette = basePalette()
	return g
}

// Name returns the simulation identifier.
func (g *Game) Name() string { return "snake" }

// Size reports the board dimensions in cells.
func (g *Game) Size() core.Size { return core.Size{W: g.cfg.Size, H: g.cfg.Size} }

// Interval reports the time between moves.
func (g *Game) Interval() time.Duration { return g.cfg.Interval }

// Body returns the snake cells, head first.
func (g *Game) Body() []Cell { return g.body }

// Head returns the head cell.
func (g *Game) Head() Cell {
	if len(g.body) == 0 {
		return Cell{}
	}
	return g.body[0]
}

// Food returns the food cell. It is meaningless once the game is won.
func (g *Game) Food() Cell { return g.food }

// Score returns the number of food items eaten.
func (g *Game) Score() int { return g.score }

// MaxScore is the score at which the board is full.
func (g *Game) MaxScore() int { return g.cfg.Size*g.cfg.Size - 1 }

// Status reports the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Facing returns the direction of the last move.
func (g *Game) Facing() Direction { return g.dir }


// StatusLine summarises the round for display.
func (g *Game) StatusLine() string {
	switch g.status {
	case StatusOver:
		return fmt.Sprintf("game over  score %d  (R to restart)", g.score)
	case StatusWon:
		return fmt.Sprintf("board cleared  score %d", g.score)
	}
	return fmt.Sprintf("score %d/%d", g.score, g.MaxScore())
}

// Reset starts a new round. A zero seed reuses the configured seed.
func (g *Game) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = g.cfg.Seed
	}
	g.rng = core.NewRNG(effective)
	if g.display.W != g.cfg.Size {
		g.display = core.NewByteGrid(g.cfg.Size, g.cfg.Size)
	}

	mid := g.cfg.Size / 2
	g.body = append(g.body[:0], Cell{mid, mid})
	g.dir = Right
	g.next = Right
	g.score = 0
	g.status = StatusPlaying
	if !g.spawnFood() {
		g.status = StatusWon
	}
	g.rebuildDisplay()
}

// Turn buffers a direction change for the next tick. Reversing onto the
// current facing is ignored.
func (g *Game) Turn(d Direction) {
	if d > Up || d == g.dir.Opposite() {
		return
	}
	g.next = d
}

// Steer maps a screen-space delta onto Turn.
func (g *Game) Steer(dx, dy int) {
	switch {
	case dx > 0:
		g.Turn(Right)
	case dx < 0:
		g.Turn(Left)
	case dy > 0:
		g.Turn(Down)
	case dy < 0:
		g.Turn(Up)
	}
}

// Step advances one tick.
func (g *Game) Step() { g.Advance() }

// Advance moves the snake one cell and reports what happened. It is a no-op
// unless the game is playing.
func (g *Game) Advance() Event {
	if g.status != StatusPlaying || len(g.body) == 0 {
		return EventNone
	}
	g.dir = g.next
	head := g.body[0].Add(g.dir.Delta())

	if !g.inBounds(head) || g.occupied(head) {
		g.status = StatusOver
		return g.finish(EventDied)
	}

	g.body = append(g.body, Cell{})
	copy(g.body[1:], g.body)
	g.body[0] = head

	if head == g.food {
		g.score++
		if !g.spawnFood() {
			g.status = StatusWon
			return g.finish(EventWon)
		}
		return g.finish(EventAte)
	}
	g.body = g.body[:len(g.body)-1]
	return g.finish(EventMoved)
}

func (g *Game) finish(ev Event) Event {
	g.rebuildDisplay()
	return ev
}

func (g *Game) inBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.cfg.Size && c.Y < g.cfg.Size
}

func (g *Game) occupied(c Cell) bool {
	for _, b := range g.body {
		if b == c {
			return true
		}
	}
	return false
}

// spawnFood places food on a uniformly chosen free cell. It reports false
// when the body covers the whole board.
func (g *Game) spawnFood() bool {
	n := g.cfg.Size
	taken := make([]bool, n*n)
	for _, b := range g.body {
		taken[b.Y*n+b.X] = true
	}
	free := make([]Cell, 0, n*n-len(g.body))
	for i, t := range taken {
		if !t {
			free = append(free, Cell{i % n, i / n})
		}
	}
	if len(free) == 0 {
		return false
	}
	g.food = free[g.rng.IntN(len(free))]
	g.palette[cellFood] = foodColor(g.rng.Float64())
	return true
}
