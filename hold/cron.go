package hold

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/quintans/go-trafficlight/phase"
)

// Cron implements the hold.Plan interface; a phase is held until the next time
// the cron expression fires, which allows time-of-day signal plans.
type Cron struct {
	expr     string
	schedule cron.Schedule
}

// NewCron returns a new Cron plan.
func NewCron(expr string) (*Cron, error) {
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cron expression: %w", err)
	}

	return &Cron{expr: expr, schedule: schedule}, nil
}

func (c *Cron) Next(start time.Time, _ phase.Phase) (time.Duration, error) {
	next := c.schedule.Next(start)
	if next.IsZero() {
		return 0, fmt.Errorf("cron '%s' after %s: %w", c.expr, start, ErrExhausted)
	}
	return next.Sub(start), nil
}

func (c *Cron) Description() string {
	return fmt.Sprintf("Cron hold '%s'.", c.expr)
}
