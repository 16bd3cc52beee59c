package app

import (
	"time"
)

// TickLimiter paces the frame loop to a fixed rate using absolute deadlines,
// so sleep overshoot does not accumulate into drift.
type TickLimiter struct {
	rate  func() int
	now   func() time.Time
	sleep func(time.Duration)

	next time.Time
}

// NewTickLimiter creates a limiter that reads its rate (ticks per second) on
// every Wait, so rate changes apply from the next tick.
func NewTickLimiter(rate func() int) *TickLimiter {
	return &TickLimiter{
		rate:  rate,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Wait blocks until the next tick is due. A non-positive rate disables pacing.
func (f *TickLimiter) Wait() {
	limit := f.rate()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	if remaining := f.next.Sub(f.now()); remaining > 0 {
		f.sleep(remaining)
	}

	// If we're significantly late (e.g., hitch), resync to avoid a burst of catch-up frames
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}

// Next returns the deadline of the tick most recently waited for.
func (f *TickLimiter) Next() time.Time {
	return f.next
}
