package svg

import "fmt"

// PathCommand is one drawing command with absolute coordinates.
//
// The set of commands is closed: MoveTo, LineTo, CurveTo, QuadCurveTo,
// ArcTo and ClosePath are the only implementations.
type PathCommand interface {
	fmt.Stringer
	isPathCommand()
}

// MoveTo starts a new subpath at To
type MoveTo struct {
	To Point
}

// LineTo draws a straight line from the cursor to To
type LineTo struct {
	To Point
}

// CurveTo draws a cubic Bézier from the cursor to To
type CurveTo struct {
	Control1, Control2 Point
	To                 Point
}

// QuadCurveTo draws a quadratic Bézier from the cursor to To
type QuadCurveTo struct {
	Control Point
	To      Point
}

// ArcTo draws an elliptical arc from the cursor to To.
// Rotation is the x-axis rotation in degrees, as written in path data.
type ArcTo struct {
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	To       Point
}

// ClosePath draws a line back to the start of the current subpath
type ClosePath struct{}

func (MoveTo) isPathCommand()      {}
func (LineTo) isPathCommand()      {}
func (CurveTo) isPathCommand()     {}
func (QuadCurveTo) isPathCommand() {}
func (ArcTo) isPathCommand()       {}
func (ClosePath) isPathCommand()   {}

func (c MoveTo) String() string { return fmt.Sprintf("MoveTo%s", c.To) }
func (c LineTo) String() string { return fmt.Sprintf("LineTo%s", c.To) }

func (c CurveTo) String() string {
	return fmt.Sprintf("CurveTo(%s, %s, %s)", c.Control1, c.Control2, c.To)
}

func (c QuadCurveTo) String() string {
	return fmt.Sprintf("QuadCurveTo(%s, %s)", c.Control, c.To)
}

func (c ArcTo) String() string {
	return fmt.Sprintf("ArcTo(%g, %g, %g, %t, %t, %s)", c.RX, c.RY, c.Rotation, c.LargeArc, c.Sweep, c.To)
}

func (ClosePath) String() string { return "ClosePath" }
