// Copyright 2025 Certen Protocol

package celalg

import (
	"context"

	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/eventlog"
)

// DeactivateOptions configures Deactivate. A nil *DeactivateOptions
// uses defaults.
type DeactivateOptions struct {
	Now    Clock
	Reason string
}

// Deactivate appends a terminal deactivate entry per §4.E.3, sealing
// log against further appends. Unlike create/update, a deactivate
// proof may use either eddsa-jcs-2022 or eddsa-rdfc-2022.
func Deactivate(ctx context.Context, signer capability.Signer, log eventlog.EventLog, opts *DeactivateOptions) (eventlog.EventLog, error) {
	if len(log.Events) == 0 {
		return eventlog.EventLog{}, eventlog.ErrEmptyLog
	}
	last := log.Events[len(log.Events)-1]
	if last.Type == eventlog.EventDeactivate {
		return eventlog.EventLog{}, ErrAlreadyDeactivated
	}

	var now Clock
	var reason string
	if opts != nil {
		now = opts.Now
		reason = opts.Reason
	}

	previousEvent, err := eventlog.PreviousDigestOf(last)
	if err != nil {
		return eventlog.EventLog{}, err
	}

	data := map[string]interface{}{"deactivatedAt": nowString(now)}
	if reason != "" {
		data["reason"] = reason
	}

	entry := eventlog.EventEntry{
		Type:          eventlog.EventDeactivate,
		Data:          data,
		PreviousEvent: previousEvent,
	}

	proof, err := signEntry(ctx, signer, entry)
	if err != nil {
		return eventlog.EventLog{}, err
	}
	entry.Proof = []eventlog.Proof{proof}

	return eventlog.AppendEntry(log, entry)
}
