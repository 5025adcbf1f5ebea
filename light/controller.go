// Package light drives a single traffic light whose phase toggles between red and green
// on a background goroutine, and lets callers block until it turns green.
package light

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/quintans/go-trafficlight/hold"
	"github.com/quintans/go-trafficlight/internal/lib"
	"github.com/quintans/go-trafficlight/mailbox"
	"github.com/quintans/go-trafficlight/phase"
)

var ErrStopped = errors.New("traffic light stopped")

type state int

const (
	idle state = iota
	running
	stopped
)

// Controller owns the phase of a traffic light.
// The phase is only ever changed by the cycling goroutine launched by Start.
type Controller struct {
	id       string
	plan     hold.Plan
	fallback *hold.Uniform
	poll     time.Duration
	logger   Logger
	journal  Journal

	current atomic.Int32
	seq     int64 // owned by the cycling loop
	phases  *mailbox.Mailbox[phase.Phase]
	changed *lib.Waiter

	mu     sync.Mutex
	state  state
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a red, not yet started, Controller.
func New(options ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		plan:     hold.Default(),
		fallback: hold.Default(),
		poll:     DefaultPollInterval,
		logger:   myLogger{},
		phases:   mailbox.New[phase.Phase](),
		changed:  lib.NewWaiter(),
	}
	for _, f := range options {
		f(c)
	}
	c.current.Store(int32(phase.Red))

	return c
}

func (c *Controller) ID() string {
	return c.id
}

// Start launches the cycling loop and returns immediately.
// The loop runs until ctx is done or Stop is called.
// Once the loop has ended because ctx was done, Start resumes cycling from the current phase.
// Calling Start on a running or stopped Controller does nothing.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case running:
		select {
		case <-c.done:
			// the loop ended with its context, it can be started again
			c.cancel()
		default:
			c.logger.Warn("[%s] traffic light already started", c.id)
			return
		}
	case stopped:
		c.logger.Warn("[%s] traffic light was stopped and cannot be restarted", c.id)
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	c.state = running

	c.logger.Info("[%s] Starting traffic light. %s", c.id, c.plan.Description())
	go c.cycleThroughPhases(ctx, c.done)
}

// Stop ends the cycling loop, waits for it to exit and closes the phase mailbox.
// Callers blocked in WaitForGreenContext get ErrStopped.
// Stop is idempotent and may be called on a Controller that was never started.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stopped {
		return
	}
	wasRunning := c.state == running
	c.state = stopped

	if wasRunning {
		c.cancel()
		<-c.done
	}
	c.phases.Close()
}

// CurrentPhase returns the last committed phase.
func (c *Controller) CurrentPhase() phase.Phase {
	return phase.Phase(c.current.Load())
}

// WaitForGreen blocks until a green phase is received, discarding red ones.
//
// Phase changes are consumed: with several concurrent callers, each change is
// seen by only one of them. Use Changed to observe every change.
// WaitForGreen must not be called after Stop; it panics with mailbox.ErrClosed.
func (c *Controller) WaitForGreen() {
	for {
		if c.phases.Receive() == phase.Green {
			return
		}
	}
}

// WaitForGreenContext is like WaitForGreen but returns ctx.Err() when ctx is done
// and ErrStopped once the controller is stopped.
func (c *Controller) WaitForGreenContext(ctx context.Context) error {
	for {
		p, err := c.phases.ReceiveContext(ctx)
		if errors.Is(err, mailbox.ErrClosed) {
			return fmt.Errorf("wait for green on '%s': %w", c.id, ErrStopped)
		}
		if err != nil {
			return err
		}
		if p == phase.Green {
			return nil
		}
	}
}

// Changed returns a channel that is closed on the next phase change.
// Unlike WaitForGreen, every holder of the channel is notified.
func (c *Controller) Changed() <-chan struct{} {
	return c.changed.Wait()
}

func (c *Controller) cycleThroughPhases(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()

	current := c.CurrentPhase()
	start := time.Now()
	target := c.nextHold(start, current)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("[%s] Exit the cycling loop.", c.id)
			return
		case <-ticker.C:
		}

		now := time.Now()
		held := now.Sub(start)
		if held < target {
			continue
		}

		next := current.Next()
		c.current.Store(int32(next))
		c.seq++
		c.record(ctx, Transition{
			ID:   c.id,
			Seq:  c.seq,
			From: current,
			To:   next,
			At:   now,
			Held: held,
		})

		current = next
		start = now
		target = c.nextHold(start, current)

		c.phases.Send(next)
		c.changed.Poke()
	}
}

func (c *Controller) nextHold(start time.Time, p phase.Phase) time.Duration {
	d, err := c.plan.Next(start, p)
	if err == nil && d > 0 {
		return d
	}
	if err == nil {
		err = fmt.Errorf("non positive hold %s", d)
	}
	c.logger.Warn("[%s] failed to plan %s hold, falling back to %s: %+v", c.id, p, c.fallback.Description(), err)

	return c.fallback.Draw()
}

func (c *Controller) record(ctx context.Context, t Transition) {
	if c.journal == nil {
		return
	}
	err := c.journal.Append(ctx, t)
	if err != nil {
		c.logger.Error("[%s] failed to record transition #%d: %+v", c.id, t.Seq, err)
	}
}
