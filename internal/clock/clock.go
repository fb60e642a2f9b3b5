package clock

import "time"

// Clock supplies the current time. Payment and invoice timestamps depend on
// wall-clock time, so services take a Clock instead of calling time.Now
// directly and tests can pin deterministic timestamps.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns a Clock backed by the system clock, in UTC.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}
