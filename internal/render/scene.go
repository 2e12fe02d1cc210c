//go:build ebiten

package render

import (
	"image/color"
	"math"

	"railsnake/internal/sims/train"
	"railsnake/pkg/spline"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	grassColor   = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	horizonColor = color.RGBA{R: 105, G: 105, B: 105, A: 255}
	railColor    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	tieColor     = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	curveColor   = color.RGBA{A: 255}
	pointColor   = color.RGBA{R: 255, A: 255}
	grabColor    = color.RGBA{R: 255, G: 220, A: 255}
	smokeColor   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	outlineColor = color.RGBA{A: 255}
	windowColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	locoColor    = color.RGBA{R: 169, G: 169, B: 169, A: 255}
	noseColor    = color.RGBA{R: 255, G: 215, A: 255}
	firstColor   = color.RGBA{B: 255, A: 255}
	carColor     = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	petalColor   = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	ringColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	centreColor  = color.RGBA{R: 255, G: 255, A: 255}
)

// curveSteps is how finely the bare Bezier curve is flattened in simple mode.
const curveSteps = 64

// ScenePainter draws the train scene with vector primitives.
type ScenePainter struct {
	pixel *ebiten.Image
}

// NewScenePainter constructs a painter.
func NewScenePainter() *ScenePainter {
	p := &ScenePainter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// Draw renders the full scene at the given scale.
func (p *ScenePainter) Draw(dst *ebiten.Image, t *train.Train, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	size := t.Size()
	w := float32(float64(size.W) * scale)
	h := float32(float64(size.H) * scale)
	vector.DrawFilledRect(dst, 0, 0, w, h, grassColor, false)
	vector.StrokeLine(dst, 0, h*0.7, w, h*0.7, 1, horizonColor, false)

	track := t.Track()
	if !track.Valid() {
		p.drawPoints(dst, track.Points(), t.Dragging(), scale)
		return
	}

	params := t.Params()
	if params.SimpleTrack {
		p.drawCurve(dst, track.Segments(), scale)
	} else {
		rails := t.Rails()
		for _, rail := range rails {
			p.drawPolyline(dst, rail, true, 3, railColor, scale)
		}
		for _, tie := range t.Ties() {
			p.line(dst, tie.A, tie.B, 5, tieColor, scale)
		}
		for _, f := range t.Flowers() {
			p.drawFlower(dst, f, scale)
		}
	}

	cars := t.Cars()
	for i := len(cars) - 1; i >= 0; i-- {
		p.drawCar(dst, cars[i], params, scale)
	}
	p.drawPoints(dst, track.Points(), t.Dragging(), scale)

	for _, s := range t.Smoke() {
		vector.DrawFilledCircle(dst, f32(s.Pos.X*scale), f32(s.Pos.Y*scale), f32(s.Size*scale), scaleAlpha(smokeColor, s.Opacity), true)
	}
}

func (p *ScenePainter) drawCurve(dst *ebiten.Image, segs []spline.Bezier, scale float64) {
	pts := make([]spline.Vec2, 0, len(segs)*curveSteps+1)
	for i, seg := range segs {
		start := 1
		if i == 0 {
			start = 0
		}
		for j := start; j <= curveSteps; j++ {
			pts = append(pts, seg.Point(float64(j)/curveSteps))
		}
	}
	p.drawPolyline(dst, pts, false, 3, curveColor, scale)
}

func (p *ScenePainter) drawPolyline(dst *ebiten.Image, pts []spline.Vec2, closed bool, width float32, clr color.Color, scale float64) {
	for i := 1; i < len(pts); i++ {
		p.line(dst, pts[i-1], pts[i], width, clr, scale)
	}
	if closed && len(pts) > 2 {
		p.line(dst, pts[len(pts)-1], pts[0], width, clr, scale)
	}
}

func (p *ScenePainter) line(dst *ebiten.Image, a, b spline.Vec2, width float32, clr color.Color, scale float64) {
	vector.StrokeLine(dst, f32(a.X*scale), f32(a.Y*scale), f32(b.X*scale), f32(b.Y*scale), width*float32(scale), clr, true)
}

func (p *ScenePainter) drawPoints(dst *ebiten.Image, pts []spline.Vec2, grabbed int, scale float64) {
	for i, pt := range pts {
		clr := pointColor
		if i == grabbed {
			clr = grabColor
		}
		vector.DrawFilledCircle(dst, f32(pt.X*scale), f32(pt.Y*scale), f32(5*scale), clr, true)
	}
}

func (p *ScenePainter) drawFlower(dst *ebiten.Image, at spline.Vec2, scale float64) {
	x, y := f32(at.X*scale), f32(at.Y*scale)
	s := float32(scale)
	vector.DrawFilledCircle(dst, x, y, 8*s, petalColor, true)
	vector.DrawFilledCircle(dst, x, y, 5*s, ringColor, true)
	vector.DrawFilledCircle(dst, x, y, 3*s, centreColor, true)
}

// drawCar paints a car body as a rotated rectangle with a window, or a nose
// cone for the locomotive.
func (p *ScenePainter) drawCar(dst *ebiten.Image, car train.Car, params train.Params, scale float64) {
	length := params.CarLength
	width := params.CarWidth
	body := carColor
	switch car.Index {
	case 0:
		body = locoColor
	case 1:
		body = firstColor
	}
	p.rect(dst, car, -length/2-1, -width/2-1, length+2, width+2, outlineColor, scale)
	p.rect(dst, car, -length/2, -width/2, length, width, body, scale)

	if car.Index == 0 {
		half := length / 2
		p.triangle(dst, car, scale, noseColor,
			spline.V(half, 0), spline.V(half-10, -width/2), spline.V(half-10, width/2))
		return
	}
	p.rect(dst, car, -length/2+5, -width/2+4, length-10, width-8, windowColor, scale)
}

// rect draws an axis-aligned rectangle in car-local space, rotated and
// translated onto the car.
func (p *ScenePainter) rect(dst *ebiten.Image, car train.Car, x, y, w, h float64, clr color.RGBA, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Rotate(car.Angle)
	op.GeoM.Translate(car.Pos.X, car.Pos.Y)
	op.GeoM.Scale(scale, scale)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(p.pixel, op)
}

func (p *ScenePainter) triangle(dst *ebiten.Image, car train.Car, scale float64, clr color.RGBA, pts ...spline.Vec2) {
	var path vector.Path
	sin, cos := math.Sincos(car.Angle)
	for i, q := range pts {
		x := (car.Pos.X + q.X*cos - q.Y*sin) * scale
		y := (car.Pos.Y + q.X*sin + q.Y*cos) * scale
		if i == 0 {
			path.MoveTo(f32(x), f32(y))
			continue
		}
		path.LineTo(f32(x), f32(y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, p.pixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func f32(v float64) float32 { return float32(v) }
