// Copyright 2025 Certen Protocol

package celalg

import (
	"context"

	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/eventlog"
)

// Create builds a new single-entry EventLog per §4.E.1: normalize the
// payload, sign it, and require the eddsa-jcs-2022 cryptosuite.
func Create(ctx context.Context, signer capability.Signer, data interface{}) (eventlog.EventLog, error) {
	normalized := normalizePayload(data)
	normalized["operation"] = OperationResourceAdded

	entry := eventlog.EventEntry{Type: eventlog.EventCreate, Data: normalized}

	proof, err := signEntry(ctx, signer, entry)
	if err != nil {
		return eventlog.EventLog{}, err
	}
	if err := requireCryptosuite(proof); err != nil {
		return eventlog.EventLog{}, err
	}
	entry.Proof = []eventlog.Proof{proof}

	return eventlog.AppendEntry(eventlog.EventLog{}, entry)
}
