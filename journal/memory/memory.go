package memory

import (
	"context"
	"sync"

	"github.com/quintans/go-trafficlight/light"
)

const DefaultCapacity = 1024

// MemJournal keeps the most recent transitions in a fixed size ring.
// Older transitions are overwritten once the ring is full.
type MemJournal struct {
	mu    sync.Mutex
	ring  []light.Transition
	next  int // slot for the next append
	count int
}

type Option func(*MemJournal)

// WithCapacity sets how many transitions are kept. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(j *MemJournal) {
		if n > 0 {
			j.ring = make([]light.Transition, n)
		}
	}
}

func New(options ...Option) *MemJournal {
	j := &MemJournal{
		ring: make([]light.Transition, DefaultCapacity),
	}
	for _, o := range options {
		o(j)
	}
	return j
}

func (j *MemJournal) Append(_ context.Context, t light.Transition) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.ring[j.next] = t
	j.next = (j.next + 1) % len(j.ring)
	if j.count < len(j.ring) {
		j.count++
	}

	return nil
}

func (j *MemJournal) List(context.Context) ([]light.Transition, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]light.Transition, 0, j.count)
	first := (j.next - j.count + len(j.ring)) % len(j.ring)
	for i := range j.count {
		out = append(out, j.ring[(first+i)%len(j.ring)])
	}

	return out, nil
}

func (j *MemJournal) Clear(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	clear(j.ring)
	j.next = 0
	j.count = 0

	return nil
}
