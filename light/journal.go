package light

import (
	"context"
	"time"

	"github.com/quintans/go-trafficlight/phase"
)

// Journal represents the store for the transitions committed by a Controller.
type Journal interface {
	// Append records a transition
	Append(context.Context, Transition) error
	// List returns the recorded transitions, oldest first
	List(context.Context) ([]Transition, error)
	// Clear all the transitions
	Clear(context.Context) error
}

// Transition is a committed phase change.
type Transition struct {
	ID   string // controller id
	Seq  int64
	From phase.Phase
	To   phase.Phase
	At   time.Time
	// Held is how long From was held before the toggle.
	Held time.Duration
}
