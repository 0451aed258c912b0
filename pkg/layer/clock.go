// Copyright 2025 Certen Protocol

package layer

import "time"

// TimestampLayout is the UTC, millisecond-precision ISO-8601 layout
// migration timestamps use.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Clock returns the current time; migration managers accept one so
// tests can inject a fixed value.
type Clock func() time.Time

func nowString(c Clock) string {
	if c == nil {
		c = time.Now
	}
	return c().UTC().Format(TimestampLayout)
}
