// Copyright 2025 Certen Protocol

package eventlog

import "fmt"

// AppendEntry returns a new EventLog with entry appended after
// enforcing invariants 1-4 of the data model: the first event must be
// create with no previousEvent, every entry must chain to the digest
// of its predecessor, every entry must carry at least one proof, and
// nothing may follow a deactivate event. l is never mutated.
func AppendEntry(l EventLog, entry EventEntry) (EventLog, error) {
	if len(entry.Proof) == 0 {
		return EventLog{}, ErrMissingProof
	}

	if len(l.Events) == 0 {
		if entry.Type != EventCreate {
			return EventLog{}, ErrNotCreateFirst
		}
		if entry.PreviousEvent != "" {
			return EventLog{}, ErrUnexpectedPreviousEvent
		}
		out := l.Clone()
		out.Events = append(out.Events, entry.Clone())
		return out, nil
	}

	last := l.Events[len(l.Events)-1]
	if last.Type == EventDeactivate {
		return EventLog{}, ErrSealed
	}

	want, err := PreviousDigestOf(last)
	if err != nil {
		return EventLog{}, fmt.Errorf("eventlog: digest prior entry: %w", err)
	}
	if entry.PreviousEvent != want {
		return EventLog{}, ErrPreviousEventMismatch
	}

	out := l.Clone()
	out.Events = append(out.Events, entry.Clone())
	return out, nil
}
