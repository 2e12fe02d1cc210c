package spline

import "math"

// Track is a closed cardinal-spline loop through an ordered list of control
// points. Segments and the arc-length table are rebuilt on every mutation.
type Track struct {
	points  []Vec2
	tension float64
	samples int

	segments []Bezier
	table    ArcTable
}

// NewTrack copies points and builds the loop with the given tension.
func NewTrack(points []Vec2, tension float64) *Track {
	t := &Track{tension: tension, samples: DefaultSamplesPerSegment}
	t.points = append([]Vec2(nil), points...)
	t.rebuild()
	return t
}

// SetResolution changes the number of arc-length samples per segment.
func (t *Track) SetResolution(samplesPerSegment int) {
	if samplesPerSegment <= 0 {
		samplesPerSegment = DefaultSamplesPerSegment
	}
	if samplesPerSegment == t.samples {
		return
	}
	t.samples = samplesPerSegment
	t.rebuild()
}

func (t *Track) rebuild() {
	t.segments = ClosedSegments(t.points, t.tension)
	t.table = BuildArcTable(t.segments, t.samples)
}

// Valid reports whether the track has enough points to be drawn.
func (t *Track) Valid() bool { return len(t.points) >= 2 }

// Points returns the control points. Callers must not modify the slice;
// use MovePoint and friends so derived data stays in sync.
func (t *Track) Points() []Vec2 { return t.points }

// Len returns the number of control points, which equals the segment count.
func (t *Track) Len() int { return len(t.points) }

// Tension returns the current cardinal tension.
func (t *Track) Tension() float64 { return t.tension }

// Segments returns the Bezier segments of the loop.
func (t *Track) Segments() []Bezier { return t.segments }

// Table returns the arc-length table.
func (t *Track) Table() ArcTable { return t.table }

// Total returns the loop length.
func (t *Track) Total() float64 { return t.table.Total() }

// SetTension updates the tension and rebuilds.
func (t *Track) SetTension(tension float64) {
	if tension == t.tension {
		return
	}
	t.tension = tension
	t.rebuild()
}

// SetPoints replaces all control points.
func (t *Track) SetPoints(points []Vec2) {
	t.points = append(t.points[:0], points...)
	t.rebuild()
}

// MovePoint repositions control point i. Out-of-range indices are ignored.
func (t *Track) MovePoint(i int, p Vec2) bool {
	if i < 0 || i >= len(t.points) {
		return false
	}
	t.points[i] = p
	t.rebuild()
	return true
}

// InsertPoint inserts p so that it becomes point i.
func (t *Track) InsertPoint(i int, p Vec2) bool {
	if i < 0 || i > len(t.points) {
		return false
	}
	t.points = append(t.points, Vec2{})
	copy(t.points[i+1:], t.points[i:])
	t.points[i] = p
	t.rebuild()
	return true
}

// RemovePoint deletes control point i.
func (t *Track) RemovePoint(i int) bool {
	if i < 0 || i >= len(t.points) {
		return false
	}
	t.points = append(t.points[:i], t.points[i+1:]...)
	t.rebuild()
	return true
}

// NearestPoint returns the index of the control point closest to p within
// radius, or -1.
func (t *Track) NearestPoint(p Vec2, radius float64) int {
	best := -1
	bestDist := radius
	for i, q := range t.points {
		if d := q.Dist(p); d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// WrapParam folds a global parameter into [0, Len()).
func (t *Track) WrapParam(param float64) float64 {
	n := float64(len(t.points))
	if n == 0 {
		return 0
	}
	param = math.Mod(param, n)
	if param < 0 {
		param += n
	}
	return param
}

// Eval returns position and tangent at the global parameter. The parameter
// wraps around the loop. An invalid track returns zero vectors.
func (t *Track) Eval(param float64) (pos, tangent Vec2) {
	if !t.Valid() {
		return Vec2{}, Vec2{}
	}
	param = t.WrapParam(param)
	idx := int(math.Floor(param))
	u := param - float64(idx)
	idx %= len(t.segments)
	return t.segments[idx].Eval(u)
}

// ParamAtLength converts an arc length to a global parameter. With wrap set,
// lengths outside [0, Total()] are folded back onto the loop; otherwise they
// are clamped to its ends.
func (t *Track) ParamAtLength(length float64, wrap bool) float64 {
	total := t.table.Total()
	if total == 0 || !t.Valid() {
		return 0
	}
	if wrap {
		length = math.Mod(length, total)
		if length < 0 {
			length += total
		}
	} else if length < 0 {
		length = 0
	} else if length > total {
		length = total
	}
	return t.table.ParamAt(length)
}

// AtLength evaluates the loop at an arc length, wrapping around.
func (t *Track) AtLength(length float64) (pos, tangent Vec2) {
	return t.Eval(t.ParamAtLength(length, true))
}

// Normal returns the unit left-hand normal at the global parameter.
func (t *Track) Normal(param float64) Vec2 {
	_, tan := t.Eval(param)
	return tan.Normalize().Perp()
}
