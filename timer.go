package ll

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Advertising interval bounds [Vol 6, Part B, 4.4.2.2].
const (
	MinAdvInterval = 20 * time.Millisecond
	MaxAdvInterval = 10485759375 * time.Microsecond
)

// maxAdvDelay bounds the pseudo-random delay added to each advertising event.
const maxAdvDelay = 10 * time.Millisecond

// AdvertisingTimer schedules the start of successive advertising events. Each
// event begins advInterval plus a pseudo-random 0-10ms advDelay after the
// previous one; the schedule accumulates from the first event rather than
// being recomputed from the current time, so a late transmission does not
// shift every event after it.
type AdvertisingTimer struct {
	rng      *rand.Rand
	interval time.Duration
	event    time.Time
}

// NewAdvertisingTimer returns a timer whose first event is due immediately.
// The interval must lie within [MinAdvInterval, MaxAdvInterval].
func NewAdvertisingTimer(rng *rand.Rand, interval time.Duration) (*AdvertisingTimer, error) {
	if interval < MinAdvInterval || interval > MaxAdvInterval {
		return nil, errors.Wrapf(ErrInvalidInterval, "advertising interval %s", interval)
	}
	return &AdvertisingTimer{
		rng:      rng,
		interval: interval,
		event:    time.Now(),
	}, nil
}

// NextEvent returns the start time of the pending advertising event and
// schedules the one after it.
func (t *AdvertisingTimer) NextEvent() time.Time {
	event := t.event
	t.event = event.Add(t.interval + time.Duration(t.rng.Int63n(int64(maxAdvDelay))))
	return event
}
