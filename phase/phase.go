package phase

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid traffic light phase")

// Phase is the state of a traffic light.
// The zero value is Red.
type Phase int32

const (
	Red Phase = iota
	Green
)

func (p Phase) String() string {
	switch p {
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("phase(%d)", int32(p))
	}
}

// Valid reports whether p is Red or Green.
func (p Phase) Valid() bool {
	return p == Red || p == Green
}

// Next returns the phase that follows p.
// It panics with an *InvalidError if p is neither Red nor Green,
// since the light's state machine can no longer be trusted.
func (p Phase) Next() Phase {
	switch p {
	case Red:
		return Green
	case Green:
		return Red
	default:
		panic(&InvalidError{Phase: p})
	}
}

// InvalidError reports a phase value outside of {Red, Green}.
type InvalidError struct {
	Phase Phase
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalid, int32(e.Phase))
}

func (e *InvalidError) Unwrap() error {
	return ErrInvalid
}
