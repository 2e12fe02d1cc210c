package spline

import "math"

// Vec2 is a point or direction in the plane.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Len returns the Euclidean length of a.
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// Dist returns the Euclidean distance between a and b.
func (a Vec2) Dist(b Vec2) float64 { return b.Sub(a).Len() }

// Normalize returns a unit vector in the direction of a. The zero vector
// normalizes to itself.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Perp returns a rotated a quarter turn counter-clockwise (in y-down screen
// space this points to the left of travel).
func (a Vec2) Perp() Vec2 { return Vec2{-a.Y, a.X} }

// Angle returns atan2(Y, X).
func (a Vec2) Angle() float64 { return math.Atan2(a.Y, a.X) }
