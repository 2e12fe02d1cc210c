package snake

import (
	"image/color"
	"math"
)

const (
	cellEmpty uint8 = iota
	cellBody
	cellHead
	cellFood
)

func basePalette() []color.RGBA {
	return []color.RGBA{
		cellEmpty: {R: 26, G: 26, B: 26, A: 255},
		cellBody:  {R: 46, G: 204, B: 113, A: 255},
		cellHead:  {R: 30, G: 150, B: 80, A: 255},
		cellFood:  {R: 230, G: 60, B: 60, A: 255},
	}
}

// Cells exposes the display buffer: 0 empty, 1 body, 2 head, 3 food.
func (g *Game) Cells() []uint8 { return g.display.Cells() }

// Palette maps display values to colors. The food entry changes hue every
// time food is placed.
func (g *Game) Palette() []color.RGBA { return g.palette }

func (g *Game) rebuildDisplay() {
	g.display.Clear()
	if g.status != StatusWon {
		g.display.Set(g.food.X, g.food.Y, cellFood)
	}
	for i, b := range g.body {
		v := cellBody
		if i == 0 {
			v = cellHead
		}
		g.display.Set(b.X, b.Y, v)
	}
}

// foodColor picks a saturated fruit color for the given hue in [0, 1).
func foodColor(hue float64) color.RGBA {
	r, gr, b := hslToRGB(hue, 0.8, 0.5)
	return color.RGBA{R: r, G: gr, B: b, A: 255}
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h, 1) * 6
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return toByte(r + m), toByte(g + m), toByte(b + m)
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
