// Package mailbox provides an unbounded, point-to-point FIFO queue
// whose receivers block until a value is available.
//
// Every value passed to Send is delivered to exactly one receive call,
// in the order it was sent. It is not a broadcast.
package mailbox

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("mailbox is closed")

// Mailbox is a condition-gated FIFO queue.
// A Mailbox must not be copied after first use.
type Mailbox[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []T
	closed bool
}

// New returns an empty, open Mailbox.
func New[T any]() *Mailbox[T] {
	m := &Mailbox[T]{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Send appends v to the tail of the queue and wakes one blocked receiver, if any.
// Send never blocks beyond lock contention.
// Sending on a closed mailbox panics with ErrClosed.
func (m *Mailbox[T]) Send(v T) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		panic(ErrClosed)
	}
	m.queue = append(m.queue, v)
	m.mu.Unlock()

	m.cond.Signal()
}

// Receive removes and returns the head of the queue, blocking while the queue is empty.
//
// The mailbox must outlive its receivers: once the mailbox is closed and drained,
// Receive panics with ErrClosed instead of returning a value that was never sent.
// Use ReceiveContext to get an error instead.
func (m *Mailbox[T]) Receive() T {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.queue) == 0 {
		if m.closed {
			panic(ErrClosed)
		}
		m.cond.Wait()
	}
	return m.pop()
}

// ReceiveContext is like Receive but gives up when ctx is done or when the mailbox
// is closed and drained, returning ctx.Err() or ErrClosed.
// A queued value is always preferred over an error.
func (m *Mailbox[T]) ReceiveContext(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, func() {
		// taking the lock guarantees the receiver is either inside Wait or
		// has not yet checked ctx, so the broadcast cannot be missed
		m.mu.Lock()
		defer m.mu.Unlock()
		m.cond.Broadcast()
	})
	defer stop()

	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.queue) == 0 {
		if m.closed {
			var zero T
			return zero, ErrClosed
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		m.cond.Wait()
	}
	return m.pop(), nil
}

// Close marks the mailbox as closed and wakes every blocked receiver.
// Values already queued can still be received. Close is idempotent.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	m.cond.Broadcast()
}

// Len returns the number of queued values.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.queue)
}

// pop must be called with mu held and a non-empty queue.
func (m *Mailbox[T]) pop() T {
	v := m.queue[0]
	var zero T
	m.queue[0] = zero
	m.queue = m.queue[1:]
	if len(m.queue) == 0 {
		// release the backing array once drained
		m.queue = nil
	}
	return v
}
