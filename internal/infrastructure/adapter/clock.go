package adapter

import "time"

// SystemClock implements port.Clock over the wall clock.
type SystemClock struct{}

// NewSystemClock creates the production clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Today returns the current UTC calendar date at midnight.
func (SystemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
