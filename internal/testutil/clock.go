// Package testutil provides shared test helpers.
package testutil

import "time"

// FixedClock implements domain.Clock returning a fixed time.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.Time
}
