package svg

import (
	"errors"
	"fmt"
)

// Kinds of malformed path data, matched with errors.Is
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrMissingArgument     = errors.New("missing argument")
	ErrMissingMoveTo       = errors.New("path data must begin with a move command")
	ErrInvalidFlag         = errors.New("arc flag must be 0 or 1")
	ErrNumberOutOfRange    = errors.New("number out of range")
)

// MalformedPathDataError is the only error the path core reports.
// It locates the defect inside the path data and, when known, the
// document element the data came from.
type MalformedPathDataError struct {
	// Element identifies the path element, filled in by the document walker
	Element string
	// Offset is the byte offset of the offending token
	Offset int
	// Command is the command letter being parsed, or 0 before the first one
	Command byte
	// Kind is one of the Err* sentinels
	Kind error
}

func newMalformedPathDataError(kind error, command byte, offset int) *MalformedPathDataError {
	return &MalformedPathDataError{
		Offset:  offset,
		Command: command,
		Kind:    kind,
	}
}

func (e *MalformedPathDataError) Error() string {
	msg := fmt.Sprintf("malformed path data at offset %d", e.Offset)
	if e.Command != 0 {
		msg += fmt.Sprintf(" in %q command", e.Command)
	}
	if e.Element != "" {
		msg = e.Element + ": " + msg
	}

	return msg + ": " + e.Kind.Error()
}

func (e *MalformedPathDataError) Unwrap() error {
	return e.Kind
}

// DocumentError reports a document that could not be decoded at all
type DocumentError struct {
	Err error
}

func (e DocumentError) Error() string {
	return fmt.Sprintf("unable to decode svg document: %v", e.Err)
}

func (e DocumentError) Unwrap() error {
	return e.Err
}
