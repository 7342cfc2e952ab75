package clock

import "time"

// Clock is the single source of timestamps for services: session creation and
// update stamps, subscription and completion times all flow through it, so
// tests can pin them.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Stored timestamps are always UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
