package latency

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Simulator injects the artificial network delay the demo services carry.
// A disabled simulator returns immediately, which is what tests use.
type Simulator struct {
	enabled bool
	min     time.Duration
	max     time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a simulator waiting between min and max per call
func New(enabled bool, min, max time.Duration) *Simulator {
	if max < min {
		max = min
	}
	return &Simulator{
		enabled: enabled,
		min:     min,
		max:     max,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Disabled returns a simulator that never waits
func Disabled() *Simulator {
	return New(false, 0, 0)
}

// Wait blocks for a random duration within the configured bounds or until
// the context is done, whichever comes first
func (s *Simulator) Wait(ctx context.Context) error {
	if !s.enabled {
		return ctx.Err()
	}

	s.mu.Lock()
	d := s.min
	if span := s.max - s.min; span > 0 {
		d += time.Duration(s.rng.Int63n(int64(span)))
	}
	s.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
