package core

import (
	"image/color"
	"time"
)

// Size describes the logical dimensions of a simulation. Grid sims report
// cells, scene sims report canvas units.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract every demo must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}

// CellSource is implemented by sims whose state is one byte per grid cell.
// Cell values index into Palette.
type CellSource interface {
	Cells() []uint8
	Palette() []color.RGBA
}

// Paced is implemented by sims that advance on their own interval rather
// than once per frame.
type Paced interface {
	Interval() time.Duration
}

// Steerable accepts a direction from arrow or WASD input.
type Steerable interface {
	Steer(dx, dy int)
}

// Draggable accepts pointer input in sim coordinates.
type Draggable interface {
	Press(x, y float64)
	Drag(x, y float64)
	Release()
	Insert(x, y float64)
	Remove(x, y float64)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
