// Copyright 2025 Certen Protocol

package celalg

import "time"

// TimestampLayout is the UTC, millisecond-precision ISO-8601 layout
// event data timestamps use.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Clock returns the current time; algorithms accept one so tests can
// inject a fixed value, per the spec's design notes on deterministic
// timestamps.
type Clock func() time.Time

func clockOrDefault(c Clock) Clock {
	if c != nil {
		return c
	}
	return time.Now
}

func nowString(c Clock) string {
	return clockOrDefault(c)().UTC().Format(TimestampLayout)
}
