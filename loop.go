package kinetic

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the Loop tick interval when none is set (~60 FPS).
const DefaultInterval = 16 * time.Millisecond

// Clock supplies the time a Loop derives elapsed milliseconds from.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock returns a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Loop drives a Provider from a Clock.
type Loop struct {
	Provider *Provider
	// Clock defaults to SystemClock.
	Clock Clock
	// Interval between ticks in Run. Defaults to DefaultInterval.
	Interval time.Duration

	// OnTick is called with the state after every tick. Returning an error
	// stops Run.
	OnTick func(s Snapshot) error
	// OnError receives the skipped pair errors of a tick. They never stop Run.
	// It is optional: with a nil OnError the errors are only reported through
	// the Provider's Logger.
	OnError func(err error)

	last time.Time
}

// Step runs one tick. The first tick after creation sees zero elapsed time.
func (l *Loop) Step() error {
	now := l.clock().Now()
	var elapsedMs float64
	if !l.last.IsZero() {
		elapsedMs = float64(now.Sub(l.last)) / float64(time.Millisecond)
	}
	l.last = now

	if err := l.Provider.Update(elapsedMs); err != nil {
		if l.OnError != nil {
			l.OnError(err)
		} else {
			l.Provider.logger().Printf("tick %d: %d pairs skipped", l.Provider.ticks, countErrors(err))
		}
	}
	if l.OnTick != nil {
		return l.OnTick(l.Provider.Snapshot())
	}
	return nil
}

// Run calls Step every Interval until ctx is done or OnTick fails.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := l.Step(); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) clock() Clock {
	if l.Clock == nil {
		return SystemClock{}
	}
	return l.Clock
}

func (l *Loop) interval() time.Duration {
	if l.Interval <= 0 {
		return DefaultInterval
	}
	return l.Interval
}

// countErrors returns the number of errors joined in err.
func countErrors(err error) int {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}
