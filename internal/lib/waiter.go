package lib

import (
	"sync"
)

// Waiter is a small broadcast primitive:
//   - Wait(): return a channel that will be closed by the next Poke().
//   - Poke(): release (close) the current channel, if anyone asked for it.
//
// Unlike a condition variable, every holder of the channel is released by a single Poke.
type Waiter struct {
	mu     sync.Mutex
	waiter chan struct{} // non-nil when there is an active waiter to be signalled
}

// NewWaiter creates a Waiter with no active waiter.
func NewWaiter() *Waiter {
	return &Waiter{}
}

// Wait returns a receive-only channel that will be closed by the next Poke().
// If Wait is called multiple times before a Poke, the same channel is returned.
func (p *Waiter) Wait() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	// create a waiter channel if none exists yet
	if p.waiter == nil {
		p.waiter = make(chan struct{})
	}

	return p.waiter
}

// Poke releases the current waiters, if any.
// Later calls to Wait get a fresh channel.
func (p *Waiter) Poke() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.waiter == nil {
		return
	}
	close(p.waiter)
	p.waiter = nil
}
