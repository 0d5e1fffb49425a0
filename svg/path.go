package svg

// For more information on the "d" attribute:
// - https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute/d
// - https://www.w3.org/TR/SVG11/paths.html#PathDataBNF

import (
	"iter"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// argumentCount is the number of numeric arguments each command takes
var argumentCount = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6,
	'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

// Commands returns a lazy sequence of the drawing commands in the given
// path data, with every coordinate resolved to absolute form.
//
// The sequence stops at the first malformed token, yielding a
// *MalformedPathDataError as its last element.
func Commands(data string) iter.Seq2[PathCommand, error] {
	return func(yield func(PathCommand, error) bool) {
		b := newCommandBuilder(data)
		for {
			cmd, err := b.next()
			if err != nil {
				yield(nil, err)
				return
			}
			if cmd == nil {
				return
			}
			if !yield(cmd, nil) {
				return
			}
		}
	}
}

// ParseCommands parses the whole path data, returning either every command
// or the first error
func ParseCommands(data string) ([]PathCommand, error) {
	var cmds []PathCommand
	for cmd, err := range Commands(data) {
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}

// commandBuilder tokenizes path data and tracks the cursor state needed to
// resolve relative coordinates and implicit commands
type commandBuilder struct {
	data []byte
	pos  int

	// command is the letter of the command being repeated
	command byte
	// afterArguments is set once a command consumed its arguments,
	// allowing a comma before the next implicit group
	afterArguments bool

	current, initial Point

	// control is the last control point of the previous command, used to
	// reflect the first control point of S/s and T/t
	control Point
	// previous is the upper-case letter of the previous command
	previous byte
}

func newCommandBuilder(data string) *commandBuilder {
	return &commandBuilder{
		data: []byte(data),
	}
}

// next returns the next command, nil at the end of the data
func (b *commandBuilder) next() (PathCommand, error) {
	b.skipSpaces()
	if b.afterArguments && b.pos < len(b.data) && b.data[b.pos] == ',' {
		comma := b.pos
		b.pos++
		b.skipSpaces()
		if b.pos >= len(b.data) || !isNumberStart(b.data[b.pos]) {
			return nil, newMalformedPathDataError(ErrUnexpectedCharacter, b.command, comma)
		}
	}
	if b.pos >= len(b.data) {
		return nil, nil
	}

	c := b.data[b.pos]
	switch {
	case isCommand(c):
		if b.command == 0 && c != 'M' && c != 'm' {
			return nil, newMalformedPathDataError(ErrMissingMoveTo, c, b.pos)
		}
		b.command = c
		b.pos++
	case isNumberStart(c):
		// implicit repetition of the previous command
		switch b.command {
		case 0:
			return nil, newMalformedPathDataError(ErrMissingMoveTo, 0, b.pos)
		case 'Z', 'z':
			return nil, newMalformedPathDataError(ErrUnexpectedCharacter, b.command, b.pos)
		case 'M':
			b.command = 'L'
		case 'm':
			b.command = 'l'
		}
	default:
		return nil, newMalformedPathDataError(ErrUnexpectedCharacter, b.command, b.pos)
	}

	return b.parseCommand()
}

// parseCommand reads the arguments of the current command and builds it
func (b *commandBuilder) parseCommand() (PathCommand, error) {
	command := b.command
	absolute := isUpper(command)
	upper := toUpper(command)

	if upper == 'Z' {
		b.afterArguments = false
		b.current = b.initial
		b.setPrevious(upper, b.current)

		return ClosePath{}, nil
	}

	var args [7]float64
	n := argumentCount[upper]
	for i := 0; i < n; i++ {
		var err error
		if upper == 'A' && (i == 3 || i == 4) {
			args[i], err = b.parseFlag(i > 0)
		} else {
			args[i], err = b.parseNumber(i > 0)
		}
		if err != nil {
			return nil, err
		}
	}
	b.afterArguments = true

	// origin is added to relative coordinates
	var origin Point
	if !absolute {
		origin = b.current
	}
	point := func(i int) Point {
		return Point{X: args[i], Y: args[i+1]}.Add(origin)
	}

	var cmd PathCommand
	switch upper {
	case 'M':
		b.current = point(0)
		b.initial = b.current
		b.setPrevious(upper, b.current)
		cmd = MoveTo{To: b.current}
	case 'L':
		b.current = point(0)
		b.setPrevious(upper, b.current)
		cmd = LineTo{To: b.current}
	case 'H':
		b.current.X = args[0] + origin.X
		b.setPrevious(upper, b.current)
		cmd = LineTo{To: b.current}
	case 'V':
		b.current.Y = args[0] + origin.Y
		b.setPrevious(upper, b.current)
		cmd = LineTo{To: b.current}
	case 'C':
		curve := CurveTo{Control1: point(0), Control2: point(2), To: point(4)}
		b.current = curve.To
		b.setPrevious(upper, curve.Control2)
		cmd = curve
	case 'S':
		// the first control point is the reflection of the previous
		// cubic's second control point, or the cursor itself
		control1 := b.current
		if b.previous == 'C' || b.previous == 'S' {
			control1 = b.control.Reflect(b.current)
		}
		curve := CurveTo{Control1: control1, Control2: point(0), To: point(2)}
		b.current = curve.To
		b.setPrevious(upper, curve.Control2)
		cmd = curve
	case 'Q':
		curve := QuadCurveTo{Control: point(0), To: point(2)}
		b.current = curve.To
		b.setPrevious(upper, curve.Control)
		cmd = curve
	case 'T':
		control := b.current
		if b.previous == 'Q' || b.previous == 'T' {
			control = b.control.Reflect(b.current)
		}
		curve := QuadCurveTo{Control: control, To: point(0)}
		b.current = curve.To
		b.setPrevious(upper, curve.Control)
		cmd = curve
	case 'A':
		arc := ArcTo{
			RX:       args[0],
			RY:       args[1],
			Rotation: args[2],
			LargeArc: args[3] != 0,
			Sweep:    args[4] != 0,
			To:       point(5),
		}
		b.current = arc.To
		b.setPrevious(upper, b.current)
		cmd = arc
	}

	return cmd, nil
}

func (b *commandBuilder) setPrevious(command byte, control Point) {
	b.previous = command
	b.control = control
}

// parseNumber reads one number, optionally preceded by a comma separator
func (b *commandBuilder) parseNumber(separated bool) (float64, error) {
	if err := b.skipSeparator(separated); err != nil {
		return 0, err
	}

	f, n := strconv.ParseFloat(b.data[b.pos:])
	if n == 0 {
		return 0, b.argumentError()
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, newMalformedPathDataError(ErrNumberOutOfRange, b.command, b.pos)
	}
	b.pos += n

	return f, nil
}

// parseFlag reads a single-digit arc flag, which may be directly followed
// by the next argument
func (b *commandBuilder) parseFlag(separated bool) (float64, error) {
	if err := b.skipSeparator(separated); err != nil {
		return 0, err
	}

	if b.pos >= len(b.data) || isCommand(b.data[b.pos]) {
		return 0, newMalformedPathDataError(ErrMissingArgument, b.command, b.pos)
	}
	switch b.data[b.pos] {
	case '0':
		b.pos++
		return 0, nil
	case '1':
		b.pos++
		return 1, nil
	}

	return 0, newMalformedPathDataError(ErrInvalidFlag, b.command, b.pos)
}

// argumentError classifies a position where a number was expected
func (b *commandBuilder) argumentError() error {
	if b.pos >= len(b.data) || isCommand(b.data[b.pos]) {
		return newMalformedPathDataError(ErrMissingArgument, b.command, b.pos)
	}

	return newMalformedPathDataError(ErrUnexpectedCharacter, b.command, b.pos)
}

// skipSeparator skips white space and, between arguments, a single comma
func (b *commandBuilder) skipSeparator(separated bool) error {
	b.skipSpaces()
	if b.pos < len(b.data) && b.data[b.pos] == ',' {
		if !separated {
			return newMalformedPathDataError(ErrUnexpectedCharacter, b.command, b.pos)
		}
		b.pos++
		b.skipSpaces()
	}

	return nil
}

func (b *commandBuilder) skipSpaces() {
	for b.pos < len(b.data) && isSpace(b.data[b.pos]) {
		b.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'
}

func isCommand(c byte) bool {
	_, ok := argumentCount[toUpper(c)]
	return ok
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
