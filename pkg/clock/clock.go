package clock

import "time"

// Clock supplies the calendar date stamped onto new sale records. Injecting
// it keeps record creation deterministic and testable.
type Clock interface {
	// Today returns the current calendar date at midnight UTC.
	Today() time.Time
}

type systemClock struct{}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

func (systemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type fixedClock struct {
	day time.Time
}

// Fixed returns a Clock pinned to the given date, for tests.
func Fixed(day time.Time) Clock {
	return fixedClock{day: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)}
}

func (c fixedClock) Today() time.Time {
	return c.day
}
