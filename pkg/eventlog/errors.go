// Copyright 2025 Certen Protocol
//
// Sentinel errors for event-log append-time invariant violations.

package eventlog

import "errors"

var (
	// ErrEmptyLog is returned when an operation that requires an
	// existing log is given one with zero events.
	ErrEmptyLog = errors.New("eventlog: log has no events")

	// ErrNotCreateFirst is returned when the first event of a log is
	// not a create event.
	ErrNotCreateFirst = errors.New("eventlog: first event must be type create")

	// ErrSealed is returned when appending after a deactivate event.
	ErrSealed = errors.New("eventlog: log is sealed, last event is deactivate")

	// ErrMissingProof is returned when an entry has zero proofs at
	// append time.
	ErrMissingProof = errors.New("eventlog: entry must carry at least one proof")

	// ErrPreviousEventMismatch is returned when an appended entry's
	// previousEvent does not match the digest of the current last entry.
	ErrPreviousEventMismatch = errors.New("eventlog: previousEvent does not match digest of prior entry")

	// ErrUnexpectedPreviousEvent is returned when the first entry of an
	// empty log carries a previousEvent.
	ErrUnexpectedPreviousEvent = errors.New("eventlog: first entry must not carry previousEvent")
)
