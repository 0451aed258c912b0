// Copyright 2025 Certen Protocol

package celalg

import (
	"context"

	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/eventlog"
)

// UpdateOptions configures Update. A nil *UpdateOptions uses defaults.
type UpdateOptions struct {
	Now Clock
}

// Update appends a new update entry to log per §4.E.2: chain to the
// current last entry, stamp updatedAt, sign, and require the
// eddsa-jcs-2022 cryptosuite.
func Update(ctx context.Context, signer capability.Signer, log eventlog.EventLog, data interface{}, opts *UpdateOptions) (eventlog.EventLog, error) {
	if len(log.Events) == 0 {
		return eventlog.EventLog{}, eventlog.ErrEmptyLog
	}
	last := log.Events[len(log.Events)-1]

	var now Clock
	if opts != nil {
		now = opts.Now
	}

	previousEvent, err := eventlog.PreviousDigestOf(last)
	if err != nil {
		return eventlog.EventLog{}, err
	}

	normalized := normalizePayload(data)
	normalized["operation"] = OperationResourceUpdated
	normalized["updatedAt"] = nowString(now)

	entry := eventlog.EventEntry{
		Type:          eventlog.EventUpdate,
		Data:          normalized,
		PreviousEvent: previousEvent,
	}

	proof, err := signEntry(ctx, signer, entry)
	if err != nil {
		return eventlog.EventLog{}, err
	}
	if err := requireCryptosuite(proof); err != nil {
		return eventlog.EventLog{}, err
	}
	entry.Proof = []eventlog.Proof{proof}

	return eventlog.AppendEntry(log, entry)
}
