package light

import (
	"time"

	"github.com/quintans/go-trafficlight/hold"
)

const DefaultPollInterval = time.Millisecond

type Option func(*Controller)

// WithHold sets the plan used to draw hold durations. Defaults to uniform [4s, 6s).
func WithHold(plan hold.Plan) Option {
	return func(c *Controller) {
		c.plan = plan
	}
}

// WithPollInterval sets how often the cycling loop checks the elapsed hold time.
// Non-positive values are ignored.
func WithPollInterval(poll time.Duration) Option {
	return func(c *Controller) {
		if poll > 0 {
			c.poll = poll
		}
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithJournal records every committed transition in j.
func WithJournal(j Journal) Option {
	return func(c *Controller) {
		c.journal = j
	}
}

// WithID overrides the generated controller id.
func WithID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}
