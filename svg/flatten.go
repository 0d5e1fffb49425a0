package svg

import (
	"fmt"
	"iter"
	"slices"
)

// Polyline is one continuous pen-down stroke. It always holds at least two
// points and consecutive points are distinct.
type Polyline []Point

// Closed reports whether the polyline ends where it starts
func (l Polyline) Closed() bool {
	return len(l) > 2 && l[0] == l[len(l)-1]
}

// FlattenPathData parses path data and flattens it into polylines
func FlattenPathData(data string, opts ...Option) ([]Polyline, error) {
	return Flatten(Commands(data), opts...)
}

// Flatten converts a command sequence into polylines, subdividing curves
// until each segment lies within the configured tolerance of the curve.
//
// An error in the sequence aborts flattening; no partial output is
// returned.
func Flatten(cmds iter.Seq2[PathCommand, error], opts ...Option) ([]Polyline, error) {
	s := newFlattenState(newOptions(opts))
	for cmd, err := range cmds {
		if err != nil {
			return nil, err
		}
		s.apply(cmd)
	}

	return s.finish(), nil
}

// FlattenCommands flattens already built commands. Commands are absolute,
// so this cannot fail.
func FlattenCommands(cmds []PathCommand, opts ...Option) []Polyline {
	s := newFlattenState(newOptions(opts))
	for _, cmd := range cmds {
		s.apply(cmd)
	}

	return s.finish()
}

// flattenState is the per-path accumulator: cursor, subpath start, the
// polyline being built and the finished output
type flattenState struct {
	opts    options
	current Point
	initial Point
	line    Polyline
	lines   []Polyline

	// cappedCurves counts curves that hit the depth cap
	cappedCurves int
}

func newFlattenState(opts options) *flattenState {
	return &flattenState{opts: opts}
}

// apply interprets one command
func (s *flattenState) apply(cmd PathCommand) {
	switch c := cmd.(type) {
	case MoveTo:
		s.flush()
		s.current = c.To
		s.initial = c.To
		s.line = Polyline{c.To}
	case LineTo:
		s.lineTo(c.To)
	case CurveTo:
		s.curveTo(cubicBez{s.current, c.Control1, c.Control2, c.To})
	case QuadCurveTo:
		s.curveTo(raiseQuad(s.current, c.Control, c.To))
	case ArcTo:
		s.arcTo(c)
	case ClosePath:
		s.lineTo(s.initial)
		s.flush()
		// a drawing command after ClosePath continues from the subpath start
		s.line = Polyline{s.initial}
	default:
		panic(fmt.Sprintf("svg: unknown path command %T", cmd))
	}
}

// begin makes sure the current polyline starts at the cursor
func (s *flattenState) begin() {
	if len(s.line) == 0 {
		s.line = Polyline{s.current}
	}
}

// push appends p unless it repeats the last point
func (s *flattenState) push(p Point) {
	if n := len(s.line); n > 0 && s.line[n-1] == p {
		return
	}
	s.line = append(s.line, p)
}

func (s *flattenState) lineTo(p Point) {
	s.begin()
	s.push(p)
	s.current = p
}

// curveTo adaptively subdivides the curve. Pieces wait on an explicit
// stack, right half below left half, so accepted end points come out in
// curve order.
func (s *flattenState) curveTo(curve cubicBez) {
	type piece struct {
		curve cubicBez
		depth int
	}

	s.begin()
	capped := false
	stack := []piece{{curve: curve}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.curve.flatness() <= s.opts.tolerance {
			s.push(p.curve.P3)
			continue
		}
		if p.depth >= s.opts.maxDepth {
			capped = true
			s.push(p.curve.P3)
			continue
		}

		left, right := p.curve.subdivide()
		stack = append(stack, piece{right, p.depth + 1}, piece{left, p.depth + 1})
	}
	// the last piece ends on the exact end point already
	s.current = curve.P3

	if capped {
		s.cappedCurves++
	}
}

func (s *flattenState) arcTo(arc ArcTo) {
	segments, ok := arcToCubics(s.current, arc, s.opts.tolerance)
	if !ok {
		s.lineTo(arc.To)
		return
	}
	for _, seg := range segments {
		s.curveTo(seg)
	}
}

// flush moves the current polyline to the output if it has a segment.
// Single points are dropped.
func (s *flattenState) flush() {
	line := s.line
	if s.opts.simplify > 0 && len(line) > 2 {
		line = Simplify(line, s.opts.simplify)
	}
	if len(line) >= 2 {
		s.lines = append(s.lines, line)
	}
	s.line = nil
}

// finish flushes the pending polyline and returns the output
func (s *flattenState) finish() []Polyline {
	s.flush()
	if s.cappedCurves > 0 {
		Logger().Warn("curve subdivision hit the depth cap",
			"curves", s.cappedCurves, "maxDepth", s.opts.maxDepth)
	}
	Logger().Debug("flattened path",
		"polylines", len(s.lines), "points", countPoints(s.lines))

	return slices.Clip(s.lines)
}

func countPoints(lines []Polyline) int {
	n := 0
	for _, l := range lines {
		n += len(l)
	}
	return n
}
