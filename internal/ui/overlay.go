//go:build ebiten

package ui

import (
	"image/color"
	"math"
	"strconv"

	"railsnake/internal/core"
	"railsnake/internal/sims/train"
	"railsnake/pkg/spline"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type trackProvider interface {
	Track() *spline.Track
}

type carProvider interface {
	Cars() []train.Car
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim          core.Sim
	scale        int
	showSamples  bool
	showGrid     bool
	showHeadings bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSamples = !o.showSamples
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showHeadings = !o.showHeadings
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showGrid {
		if _, ok := o.sim.(core.CellSource); ok {
			o.drawGrid(screen, size, scale)
		}
	}
	if o.showSamples {
		if provider, ok := o.sim.(trackProvider); ok {
			o.drawSamples(screen, provider.Track(), float64(scale))
		}
	}
	if o.showHeadings {
		cars, ok := o.sim.(carProvider)
		track, hasTrack := o.sim.(trackProvider)
		if ok && hasTrack {
			o.drawHeadings(screen, track.Track(), cars.Cars(), float64(scale))
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size, scale int) {
	col := color.RGBA{R: 60, G: 60, B: 70, A: 160}
	w := float64(size.W * scale)
	h := float64(size.H * scale)
	for x := 0; x <= size.W; x++ {
		fx := float64(x * scale)
		o.drawLine(screen, fx, 0, fx, h, 1, col)
	}
	for y := 0; y <= size.H; y++ {
		fy := float64(y * scale)
		o.drawLine(screen, 0, fy, w, fy, 1, col)
	}
}

// drawSamples marks every tenth arc-table entry and numbers the control
// points so the spacing of the parameterisation is visible.
func (o *Overlay) drawSamples(screen *ebiten.Image, track *spline.Track, scale float64) {
	if track == nil || !track.Valid() {
		return
	}
	const stride = 10
	table := track.Table()
	for i := 0; i < table.Len(); i += stride {
		s := table.At(i)
		pos, _ := track.Eval(s.Param)
		t := 0.0
		if total := table.Total(); total > 0 {
			t = s.Length / total
		}
		o.drawPoint(screen, pos.X*scale, pos.Y*scale, 3, interpolateColor(t))
	}

	face := basicfont.Face7x13
	for i, p := range track.Points() {
		text.Draw(screen, strconv.Itoa(i), face, int(p.X*scale)+6, int(p.Y*scale)-6, color.RGBA{R: 255, G: 255, B: 255, A: 230})
	}
}

func (o *Overlay) drawHeadings(screen *ebiten.Image, track *spline.Track, cars []train.Car, scale float64) {
	const (
		length     = 30.0
		headLength = 8.0
		headAngle  = math.Pi / 6
	)
	col := color.RGBA{R: 250, G: 220, B: 90, A: 220}
	for _, car := range cars {
		dir := car.Tangent.Normalize()
		if dir.Len() == 0 {
			continue
		}
		sx, sy := car.Pos.X*scale, car.Pos.Y*scale
		tipX := sx + dir.X*length
		tipY := sy + dir.Y*length
		o.drawLine(screen, sx, sy, tipX, tipY, 1.5, col)

		angle := math.Atan2(dir.Y, dir.X)
		leftX := tipX - math.Cos(angle+headAngle)*headLength
		leftY := tipY - math.Sin(angle+headAngle)*headLength
		rightX := tipX - math.Cos(angle-headAngle)*headLength
		rightY := tipY - math.Sin(angle-headAngle)*headLength
		o.drawLine(screen, tipX, tipY, leftX, leftY, 1.5, col)
		o.drawLine(screen, tipX, tipY, rightX, rightY, 1.5, col)

		n := track.Normal(car.Param)
		o.drawLine(screen, sx, sy, sx+n.X*length*0.5, sy+n.Y*length*0.5, 1, color.RGBA{R: 120, G: 200, B: 255, A: 200})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

// interpolateColor runs from blue at the start of the loop to red at the end.
func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(math.Round(60 + 190*t)),
		G: uint8(math.Round(140 - 80*t)),
		B: uint8(math.Round(230 - 170*t)),
		A: 220,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
