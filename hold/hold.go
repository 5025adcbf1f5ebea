package hold

import (
	"errors"
	"fmt"
	"time"

	"github.com/quintans/go-trafficlight/phase"
)

var (
	ErrInvalidRange = errors.New("invalid hold range")
	ErrExhausted    = errors.New("hold plan has no further firing time")
	ErrMissingPlan  = errors.New("missing hold plan")
)

// Plan is the Plans interface.
// Plans decide how long a light holds a phase before toggling.
type Plan interface {
	// Next returns how long the phase p, which started at start, is to be held.
	Next(start time.Time, p phase.Phase) (time.Duration, error)

	// Description returns a Plan description.
	Description() string
}

// Fixed implements the hold.Plan interface; every phase is held for the same duration.
type Fixed struct {
	Duration time.Duration
}

// NewFixed returns a new Fixed plan.
func NewFixed(d time.Duration) *Fixed {
	return &Fixed{d}
}

func (f *Fixed) Next(time.Time, phase.Phase) (time.Duration, error) {
	return f.Duration, nil
}

func (f *Fixed) Description() string {
	return fmt.Sprintf("Fixed hold of %s.", f.Duration)
}

// Split implements the hold.Plan interface, delegating to a different Plan per phase.
type Split struct {
	Red   Plan
	Green Plan
}

// NewSplit returns a new Split plan.
func NewSplit(red, green Plan) (*Split, error) {
	if red == nil || green == nil {
		return nil, fmt.Errorf("split hold: %w", ErrMissingPlan)
	}
	return &Split{Red: red, Green: green}, nil
}

func (s *Split) Next(start time.Time, p phase.Phase) (time.Duration, error) {
	if !p.Valid() {
		return 0, &phase.InvalidError{Phase: p}
	}
	plan := s.Red
	if p == phase.Green {
		plan = s.Green
	}
	if plan == nil {
		return 0, fmt.Errorf("split hold for %s: %w", p, ErrMissingPlan)
	}
	return plan.Next(start, p)
}

func (s *Split) Description() string {
	return fmt.Sprintf("Split hold (red: %s green: %s)", describe(s.Red), describe(s.Green))
}

func describe(p Plan) string {
	if p == nil {
		return "none"
	}
	return p.Description()
}
