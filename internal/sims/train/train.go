package train

import (
	"math"

	"railsnake/internal/core"
	"railsnake/pkg/spline"
)

// pickRadius is how close a press must land to grab a control point.
const pickRadius = 10

// Car is one placed train car. Index 0 is the locomotive.
type Car struct {
	Index   int
	Param   float64
	Pos     spline.Vec2
	Tangent spline.Vec2
	Angle   float64
}

// Tie is a rail sleeper drawn across the track.
type Tie struct {
	A, B spline.Vec2
}

// Train drives a set of cars around a closed cardinal-spline loop.
type Train struct {
	cfg   Config
	track *spline.Track
	drive float64

	cars  []Car
	smoke []Particle
	rng   *core.RNG

	rails   [2][]spline.Vec2
	ties    []Tie
	flowers []spline.Vec2

	dragging int
}

// New returns a train scene with the default configuration at the given size.
func New(w, h int) *Train {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a train scene configured from the provided options.
func NewWithConfig(cfg Config) *Train {
	t := &Train{
		cfg:      cfg,
		track:    spline.NewTrack(cfg.Points, cfg.Params.Tension),
		rng:      core.NewRNG(cfg.Seed),
		dragging: -1,
	}
	t.track.SetResolution(cfg.Params.Samples)
	t.trackChanged()
	return t
}

// Name returns the simulation identifier.
func (t *Train) Name() string { return "train" }

// Size reports the canvas dimensions.
func (t *Train) Size() core.Size { return core.Size{W: t.cfg.Width, H: t.cfg.Height} }

// Track exposes the underlying spline loop.
func (t *Train) Track() *spline.Track { return t.track }

// Drive returns the slider position in [0, number of points).
func (t *Train) Drive() float64 { return t.drive }

// SetDrive moves the train to a slider position, wrapping around the loop.
func (t *Train) SetDrive(v float64) {
	t.drive = t.track.WrapParam(v)
	t.placeCars()
}

// Cars returns the placed cars from the most recent update.
func (t *Train) Cars() []Car { return t.cars }

// Smoke returns the live smoke particles.
func (t *Train) Smoke() []Particle { return t.smoke }

// Rails returns the left and right rail polylines. Both are empty in simple
// mode or when the track is invalid.
func (t *Train) Rails() [2][]spline.Vec2 { return t.rails }

// Ties returns the sleepers spaced evenly by arc length.
func (t *Train) Ties() []Tie { return t.ties }

// Flowers returns flower positions beside the track.
func (t *Train) Flowers() []spline.Vec2 { return t.flowers }

// Params returns the active parameters.
func (t *Train) Params() Params { return t.cfg.Params }

// Reset restores the configured track and clears the smoke. A zero seed
// reuses the configured seed.
func (t *Train) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = t.cfg.Seed
	}
	t.rng = core.NewRNG(effective)
	t.track.SetPoints(t.cfg.Points)
	t.track.SetTension(t.cfg.Params.Tension)
	t.drive = 0
	t.smoke = t.smoke[:0]
	t.dragging = -1
	t.trackChanged()
}

// Step advances the drive parameter and updates cars and smoke.
func (t *Train) Step() {
	if !t.track.Valid() {
		t.cars = t.cars[:0]
		t.smoke = t.smoke[:0]
		return
	}
	t.drive = t.track.WrapParam(t.drive + t.cfg.Params.Speed)
	t.placeCars()
	t.emitSmoke()
	t.updateSmoke(1)
}

// trackChanged refreshes everything derived from the control points.
func (t *Train) trackChanged() {
	t.drive = t.track.WrapParam(t.drive)
	t.buildScenery()
	t.placeCars()
}

// placeCars positions every car for the current drive value.
func (t *Train) placeCars() {
	t.cars = t.cars[:0]
	if !t.track.Valid() {
		return
	}
	p := t.cfg.Params
	n := float64(t.track.Len())
	total := t.track.Total()
	arc := p.ArcLength && total > 0

	lead := t.drive
	leadLength := 0.0
	if arc {
		leadLength = math.Mod(t.drive, n) / n * total
	}

	for i := 0; i < p.Cars; i++ {
		var param float64
		if arc {
			want := leadLength - float64(i)*p.CarSeparation
			param = t.track.ParamAtLength(want, true)
		} else {
			offset := 0.0
			if total > 0 {
				offset = float64(i) * p.CarSeparation / total * n
			}
			param = t.track.WrapParam(lead - offset)
		}
		pos, tan := t.track.Eval(param)
		t.cars = append(t.cars, Car{
			Index:   i,
			Param:   param,
			Pos:     pos,
			Tangent: tan,
			Angle:   tan.Angle(),
		})
	}
}

// buildScenery recomputes rails, ties and flowers.
func (t *Train) buildScenery() {
	t.rails = [2][]spline.Vec2{}
	t.ties = t.ties[:0]
	t.flowers = t.flowers[:0]
	if !t.track.Valid() || t.cfg.Params.SimpleTrack {
		return
	}
	p := t.cfg.Params

	steps := p.RailSteps
	if steps <= 0 {
		steps = 200
	}
	segs := t.track.Segments()
	for side := range t.rails {
		offset := -p.RailSeparation
		if side == 1 {
			offset = p.RailSeparation
		}
		line := make([]spline.Vec2, 0, len(segs)*steps+1)
		for si, seg := range segs {
			start := 1
			if si == 0 {
				start = 0
			}
			for j := start; j <= steps; j++ {
				pos, tan := seg.Eval(float64(j) / float64(steps))
				normal := tan.Normalize().Perp()
				line = append(line, pos.Add(normal.Scale(offset)))
			}
		}
		t.rails[side] = line
	}

	total := t.track.Total()
	if total <= 0 {
		return
	}
	if p.TieSpacing > 0 {
		half := p.RailSeparation + p.TieOverhang
		for l := 0.0; l < total; l += p.TieSpacing {
			if total-l < p.TieSpacing && l > 0 {
				break
			}
			param := t.track.ParamAtLength(l, false)
			pos, _ := t.track.Eval(param)
			d := t.track.Normal(param).Scale(half)
			t.ties = append(t.ties, Tie{A: pos.Sub(d), B: pos.Add(d)})
		}
	}
	if p.FlowerSpacing > 0 {
		for l := 0.0; l < total; l += p.FlowerSpacing {
			pos, tan := t.track.AtLength(l)
			normal := tan.Normalize().Perp()
			t.flowers = append(t.flowers, pos.Add(normal.Scale(p.FlowerOffset)))
		}
	}
}

// Press grabs the control point under (x, y), if any.
func (t *Train) Press(x, y float64) {
	t.dragging = t.track.NearestPoint(spline.V(x, y), pickRadius)
}

// Drag moves the grabbed control point.
func (t *Train) Drag(x, y float64) {
	if t.dragging < 0 {
		return
	}
	if t.track.MovePoint(t.dragging, spline.V(x, y)) {
		t.trackChanged()
	}
}

// Release drops the grabbed control point.
func (t *Train) Release() { t.dragging = -1 }

// Dragging returns the index of the grabbed control point or -1.
func (t *Train) Dragging() int { return t.dragging }

// Insert adds a control point at (x, y) right after the nearest existing one.
func (t *Train) Insert(x, y float64) {
	p := spline.V(x, y)
	at := 0
	if t.track.Len() > 0 {
		at = t.track.NearestPoint(p, math.Inf(1)) + 1
	}
	if t.track.InsertPoint(at, p) {
		t.trackChanged()
	}
}

// Remove deletes the control point under (x, y), if any.
func (t *Train) Remove(x, y float64) {
	i := t.track.NearestPoint(spline.V(x, y), pickRadius)
	if i < 0 {
		return
	}
	if t.track.RemovePoint(i) {
		t.dragging = -1
		t.trackChanged()
	}
}

func init() {
	core.Register("train", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
