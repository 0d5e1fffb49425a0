package svg

import (
	"math"
	"testing"

	"github.com/mindera-gaming/go-math/vector2"
	"github.com/stretchr/testify/assert"
)

func TestPointVector(t *testing.T) {
	p := Pt(1.5, -2)
	v := p.Vector()

	assert.Equal(t, 1.5, v.X)
	assert.Equal(t, -2.0, v.Y)
	assert.Equal(t, p, Point(vector2.Point{X: 1.5, Y: -2}))
}

func TestPointArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)

	assert.Equal(t, Pt(5, 8), a.Add(b))
	assert.Equal(t, Pt(3, 4), b.Sub(a))
	assert.Equal(t, Pt(2, 4), a.Mul(2))
	assert.Equal(t, Pt(2.5, 4), a.Midpoint(b))
	assert.Equal(t, Pt(7, 10), a.Reflect(b))
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, "(1, 2)", a.String())
}

func TestSegmentDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(5, 3), 3},
		{Pt(5, -3), 3},
		{Pt(0, 0), 0},
		{Pt(-3, 4), 5},
		{Pt(13, 4), 5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, segmentDistance(tt.p, a, b), 1e-12, "%s", tt.p)
	}

	// degenerate chord
	assert.InDelta(t, math.Sqrt2, segmentDistance(Pt(1, 1), a, a), 1e-12)
}
