// Copyright 2025 Certen Protocol

package celalg

import (
	"context"
	"fmt"

	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/eventlog"
)

// WitnessEvent countersigns the entry at index per §4.E.4: it digests
// the entry's current canonical bytes (proof array included), passes
// that digest to witness, validates the returned proof carries type,
// cryptosuite, proofValue and witnessedAt, and appends it to the entry's proof array. log is not
// mutated; a new EventLog is returned.
func WitnessEvent(ctx context.Context, witness capability.Witness, log eventlog.EventLog, index int) (eventlog.EventLog, error) {
	if witness == nil {
		return eventlog.EventLog{}, fmt.Errorf("%w: witness", ErrNilCapability)
	}
	if index < 0 || index >= len(log.Events) {
		return eventlog.EventLog{}, ErrEntryIndexOutOfRange
	}

	target := log.Events[index]
	if len(target.Proof) == 0 {
		return eventlog.EventLog{}, ErrMissingControllerProof
	}

	digestStr, err := eventlog.PreviousDigestOf(target)
	if err != nil {
		return eventlog.EventLog{}, err
	}

	proof, err := witness.Witness(ctx, digestStr)
	if err != nil {
		return eventlog.EventLog{}, fmt.Errorf("celalg: witness entry: %w", err)
	}
	if proof.Type == "" || proof.Cryptosuite == "" || proof.ProofValue == "" || !proof.IsWitness() {
		return eventlog.EventLog{}, ErrInvalidWitnessProof
	}

	out := log.Clone()
	witnessed := out.Events[index].Clone()
	witnessed.Proof = append(witnessed.Proof, proof)
	out.Events[index] = witnessed

	return out, nil
}
