package svg

import "math"

// cubicBez is a cubic Bézier segment with explicit start point
type cubicBez struct {
	P0, P1, P2, P3 Point
}

// raiseQuad returns the cubic that traces exactly the same curve as the
// quadratic (p0, c, p2)
func raiseQuad(p0, c, p2 Point) cubicBez {
	return cubicBez{
		P0: p0,
		P1: p0.Lerp(c, 2.0/3.0),
		P2: p2.Lerp(c, 2.0/3.0),
		P3: p2,
	}
}

// Eval evaluates the curve at t using the Bernstein form
func (c cubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t

	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// subdivide splits the curve at t = 0.5 with de Casteljau's algorithm
func (c cubicBez) subdivide() (cubicBez, cubicBez) {
	p01 := c.P0.Midpoint(c.P1)
	p12 := c.P1.Midpoint(c.P2)
	p23 := c.P2.Midpoint(c.P3)
	p012 := p01.Midpoint(p12)
	p123 := p12.Midpoint(p23)
	mid := p012.Midpoint(p123)

	return cubicBez{c.P0, p01, p012, mid}, cubicBez{mid, p123, p23, c.P3}
}

// flatness bounds the distance between the curve and its chord.
// The curve lies in the convex hull of its control points, so the
// farthest control point bounds every point of the curve.
func (c cubicBez) flatness() float64 {
	return math.Max(
		segmentDistance(c.P1, c.P0, c.P3),
		segmentDistance(c.P2, c.P0, c.P3),
	)
}

// quarterArcError is the relative radial error of the cubic approximating a
// quarter of a unit circle. The error shrinks with the sixth power of the
// angle spanned.
const quarterArcError = 2.73e-4

// maxArcSegments bounds the number of cubics of a single arc
const maxArcSegments = 1024

// arcToCubics converts an endpoint-parameterized elliptical arc starting at
// from into cubic Béziers, each spanning no more than a quarter turn. See
// the SVG implementation notes, sections F.6.5 and F.6.6.
//
// Small arcs take at most four cubics. Large radii get the quarter pieces
// halved until every cubic stays within tolerance/2 of the ellipse.
//
// It returns ok == false when the arc degrades to a straight line because
// one of its radii is zero. Coincident endpoints produce no segments.
func arcToCubics(from Point, arc ArcTo, tolerance float64) (segments []cubicBez, ok bool) {
	if from == arc.To {
		return nil, true
	}

	rx := math.Abs(arc.RX)
	ry := math.Abs(arc.RY)
	if rx == 0 || ry == 0 {
		return nil, false
	}

	sinPhi, cosPhi := math.Sincos(arc.Rotation * math.Pi / 180)

	// step 1: compute (x1', y1')
	dx2 := 0.5 * (from.X - arc.To.X)
	dy2 := 0.5 * (from.Y - arc.To.Y)
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	// scale the radii up if no ellipse can reach both endpoints
	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// step 2: compute (cx', cy')
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	var coef float64
	if den != 0 {
		coef = math.Sqrt(math.Max(0, num/den))
	}
	if arc.LargeArc == arc.Sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	// step 3: compute (cx, cy) from (cx', cy')
	center := Point{
		X: cosPhi*cx1 - sinPhi*cy1 + 0.5*(from.X+arc.To.X),
		Y: sinPhi*cx1 + cosPhi*cy1 + 0.5*(from.Y+arc.To.Y),
	}

	// step 4: compute the start angle and the sweep
	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !arc.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if arc.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2) - 1e-9))
	n = min(max(n, 1), 4)
	// halve the pieces until the cubics are close enough to the ellipse
	radial := quarterArcError * max(rx, ry)
	for n*2 <= maxArcSegments && radial*math.Pow(math.Abs(delta)/float64(n)/(math.Pi/2), 6) > tolerance/2 {
		n *= 2
	}
	step := delta / float64(n)
	arm := 4.0 / 3.0 * math.Tan(step/4)

	// maps a point of the unit circle onto the ellipse
	ellipse := func(x, y float64) Point {
		return Point{
			X: center.X + rx*cosPhi*x - ry*sinPhi*y,
			Y: center.Y + rx*sinPhi*x + ry*cosPhi*y,
		}
	}

	segments = make([]cubicBez, 0, n)
	p0 := from
	for i := 0; i < n; i++ {
		a0 := theta + float64(i)*step
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)

		p3 := ellipse(cos1, sin1)
		if i == n-1 {
			p3 = arc.To
		}
		segments = append(segments, cubicBez{
			P0: p0,
			P1: ellipse(cos0-arm*sin0, sin0+arm*cos0),
			P2: ellipse(cos1+arm*sin1, sin1-arm*cos1),
			P3: p3,
		})
		p0 = p3
	}

	return segments, true
}
