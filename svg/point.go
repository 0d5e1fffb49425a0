package svg

import (
	"fmt"
	"math"

	"github.com/mindera-gaming/go-math/vector2"
)

// Point is a pair of coordinates in document units.
// It shares its layout with vector2.Point so callers can convert freely.
type Point vector2.Point

// Pt returns the point (x, y)
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vector returns p as a go-math vector
func (p Point) Vector() vector2.Point {
	return vector2.Point(p)
}

func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y

	return p
}

func (p Point) Sub(other Point) Point {
	p.X -= other.X
	p.Y -= other.Y

	return p
}

// Mul scales both coordinates by f
func (p Point) Mul(f float64) Point {
	p.X *= f
	p.Y *= f

	return p
}

// Lerp linearly interpolates between p and other
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + t*(other.X-p.X),
		Y: p.Y + t*(other.Y-p.Y),
	}
}

// Midpoint returns the point halfway between p and other
func (p Point) Midpoint(other Point) Point {
	return Point{
		X: 0.5 * (p.X + other.X),
		Y: 0.5 * (p.Y + other.Y),
	}
}

// Reflect mirrors p through the given center
func (p Point) Reflect(center Point) Point {
	return Point{
		X: 2*center.X - p.X,
		Y: 2*center.Y - p.Y,
	}
}

// Distance returns the euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// segmentDistance returns the distance from p to the segment [a, b].
// Inside the segment's span this is the perpendicular distance to the chord.
func segmentDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	length2 := d.X*d.X + d.Y*d.Y
	if length2 == 0 {
		return p.Distance(a)
	}

	v := p.Sub(a)
	t := (v.X*d.X + v.Y*d.Y) / length2
	switch {
	case t <= 0:
		return p.Distance(a)
	case t >= 1:
		return p.Distance(b)
	}

	return math.Abs(d.X*v.Y-d.Y*v.X) / math.Sqrt(length2)
}
