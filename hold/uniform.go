package hold

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/quintans/go-trafficlight/phase"
)

const (
	DefaultMin = 4 * time.Second
	DefaultMax = 6 * time.Second
)

// Uniform implements the hold.Plan interface; holds are drawn uniformly from [min, max).
type Uniform struct {
	min time.Duration
	max time.Duration

	mu  sync.Mutex // guards rnd, *rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

type UniformOption func(*Uniform)

// WithRand makes the draws come from r instead of the global source.
func WithRand(r *rand.Rand) UniformOption {
	return func(u *Uniform) {
		u.rnd = r
	}
}

// NewUniform returns a new Uniform plan.
func NewUniform(lo, hi time.Duration, options ...UniformOption) (*Uniform, error) {
	if lo <= 0 || hi <= lo {
		return nil, fmt.Errorf("uniform hold [%s, %s): %w", lo, hi, ErrInvalidRange)
	}
	u := &Uniform{
		min: lo,
		max: hi,
	}
	for _, o := range options {
		o(u)
	}
	return u, nil
}

// Default returns the standard [4s, 6s) plan.
func Default() *Uniform {
	return &Uniform{
		min: DefaultMin,
		max: DefaultMax,
	}
}

func (u *Uniform) Next(time.Time, phase.Phase) (time.Duration, error) {
	return u.Draw(), nil
}

// Draw returns a duration in [min, max).
func (u *Uniform) Draw() time.Duration {
	span := u.max - u.min
	d := u.min + time.Duration(u.float64()*float64(span))
	// float rounding must never reach the open end of the range
	if d >= u.max {
		d = u.max - 1
	}
	return d
}

func (u *Uniform) float64() float64 {
	if u.rnd == nil {
		return rand.Float64()
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rnd.Float64()
}

func (u *Uniform) Description() string {
	return fmt.Sprintf("Uniform hold in [%s, %s).", u.min, u.max)
}
