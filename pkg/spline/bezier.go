package spline

// Bezier holds the four control points of a cubic Bezier segment.
type Bezier [4]Vec2

// CardinalToBezier converts the cardinal segment running from p1 to p2 into
// an equivalent cubic Bezier. p0 and p3 are the neighbouring control points
// that shape the end tangents. Tension 0 yields a Catmull-Rom segment and
// tension 1 collapses the tangents to zero. The tension is not range checked.
func CardinalToBezier(p0, p1, p2, p3 Vec2, tension float64) Bezier {
	s := (1 - tension) / 2
	m1 := p2.Sub(p0).Scale(s)
	m2 := p3.Sub(p1).Scale(s)
	return Bezier{
		p1,
		p1.Add(m1.Scale(1.0 / 3)),
		p2.Sub(m2.Scale(1.0 / 3)),
		p2,
	}
}

// Eval returns the position and first derivative of the segment at the local
// parameter u in [0, 1]. Positions come from repeated interpolation, so
// coincident control points evaluate to exactly that point.
func (b Bezier) Eval(u float64) (pos, tangent Vec2) {
	q0, q1, q2 := lerp(b[0], b[1], u), lerp(b[1], b[2], u), lerp(b[2], b[3], u)
	r0, r1 := lerp(q0, q1, u), lerp(q1, q2, u)
	return lerp(r0, r1, u), r1.Sub(r0).Scale(3)
}

// Point returns only the position at u.
func (b Bezier) Point(u float64) Vec2 {
	p, _ := b.Eval(u)
	return p
}

// lerp is exact at both ends and returns a unchanged when a == b.
func lerp(a, b Vec2, u float64) Vec2 {
	return Vec2{lerp1(a.X, b.X, u), lerp1(a.Y, b.Y, u)}
}

func lerp1(a, b, u float64) float64 {
	if a == b {
		return a
	}
	return a*(1-u) + b*u
}

// ClosedSegments builds one Bezier per control point for a closed loop.
// Segment i runs from points[i] to points[i+1], wrapping at the end. Fewer
// than two points produce no segments.
func ClosedSegments(points []Vec2, tension float64) []Bezier {
	n := len(points)
	if n < 2 {
		return nil
	}
	segs := make([]Bezier, n)
	for i := 0; i < n; i++ {
		p0 := points[(i-1+n)%n]
		p1 := points[i]
		p2 := points[(i+1)%n]
		p3 := points[(i+2)%n]
		segs[i] = CardinalToBezier(p0, p1, p2, p3, tension)
	}
	return segs
}
