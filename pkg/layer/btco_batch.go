// Copyright 2025 Certen Protocol

package layer

import (
	"context"
	"fmt"

	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/checkpoint"
	"github.com/certen/cel-go/pkg/eventlog"
)

// MigrateManyToBTCO migrates every log in logs from webvh to btco under
// a single Bitcoin inscription: each log's tentative migration digest
// becomes a leaf of a pkg/checkpoint Merkle batch, the witness inscribes
// only the batch root, and each finished entry records batchRoot,
// batchIndex and batchSize in its data alongside the shared txid and
// inscriptionId. The Merkle path of the inclusion proof is not stored
// in the entry. This amortizes inscription cost across the batch
// instead of paying one Bitcoin transaction per asset.
func MigrateManyToBTCO(ctx context.Context, signer capability.Signer, logs []eventlog.EventLog, witness capability.Witness, now Clock) ([]eventlog.EventLog, error) {
	if witness == nil {
		return nil, fmt.Errorf("layer: bitcoin witness is nil")
	}
	if len(logs) == 0 {
		return nil, fmt.Errorf("layer: cannot batch-migrate an empty set of logs")
	}

	type pending struct {
		sourceDid       string
		previousEvent   string
		tentative       eventlog.EventEntry
		controllerProof eventlog.Proof
	}

	migratedAt := nowString(now)
	pendings := make([]pending, len(logs))
	digests := make([]string, len(logs))

	for i, log := range logs {
		if len(log.Events) == 0 {
			return nil, eventlog.ErrEmptyLog
		}
		last := log.Events[len(log.Events)-1]
		if last.Type == eventlog.EventDeactivate {
			return nil, eventlog.ErrSealed
		}

		state, err := CurrentState(log)
		if err != nil {
			return nil, err
		}
		if state.Layer != LayerWebVH {
			return nil, fmt.Errorf("%w: log %d: migrate to btco requires layer webvh, got %s", ErrIllegalTransition, i, state.Layer)
		}

		previousEvent, err := eventlog.PreviousDigestOf(last)
		if err != nil {
			return nil, err
		}

		tentative := eventlog.EventEntry{
			Type: eventlog.EventUpdate,
			Data: map[string]interface{}{
				"sourceDid":  state.DID,
				"layer":      string(LayerBTCO),
				"migratedAt": migratedAt,
			},
			PreviousEvent: previousEvent,
		}

		signable, err := eventlog.SignableBytes(tentative)
		if err != nil {
			return nil, err
		}
		controllerProof, err := signer.Sign(ctx, signable)
		if err != nil {
			return nil, fmt.Errorf("layer: sign migration entry for log %d: %w", i, err)
		}
		if controllerProof.Type == "" || controllerProof.Cryptosuite == "" || controllerProof.ProofValue == "" {
			return nil, fmt.Errorf("layer: signer returned an invalid proof for log %d", i)
		}
		if controllerProof.Cryptosuite != eventlog.CryptosuiteEdDSAJCS2022 {
			return nil, fmt.Errorf("layer: migration of log %d requires the eddsa-jcs-2022 cryptosuite, got %q", i, controllerProof.Cryptosuite)
		}
		tentative.Proof = []eventlog.Proof{controllerProof}

		leafDigest, err := eventlog.PreviousDigestOf(tentative)
		if err != nil {
			return nil, err
		}

		digests[i] = leafDigest
		pendings[i] = pending{sourceDid: state.DID, previousEvent: previousEvent, tentative: tentative, controllerProof: controllerProof}
	}

	batch, err := checkpoint.Build(digests)
	if err != nil {
		return nil, fmt.Errorf("layer: build batch checkpoint: %w", err)
	}
	root, err := batch.Root()
	if err != nil {
		return nil, err
	}

	witnessProof, err := witness.Witness(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("layer: inscribe batch attestation: %w", err)
	}
	if !witnessProof.IsWitness() || !witnessProof.IsBitcoinWitness() {
		return nil, fmt.Errorf("layer: bitcoin witness returned an invalid proof")
	}

	out := make([]eventlog.EventLog, len(logs))
	for i, log := range logs {
		p := pendings[i]
		inclusion, err := batch.ProveInclusion(i)
		if err != nil {
			return nil, err
		}

		targetDid := deriveBTCODID(witnessProof.InscriptionID, witnessProof.TxID, p.sourceDid)

		finalData := map[string]interface{}{
			"sourceDid":     p.sourceDid,
			"targetDid":     targetDid,
			"layer":         string(LayerBTCO),
			"migratedAt":    migratedAt,
			"txid":          witnessProof.TxID,
			"inscriptionId": witnessProof.InscriptionID,
			"satoshi":       witnessProof.Satoshi,
			"batchRoot":     root,
			"batchIndex":    inclusion.LeafIndex,
			"batchSize":     inclusion.BatchSize,
		}
		if witnessProof.BlockHeight != nil {
			finalData["blockHeight"] = *witnessProof.BlockHeight
		}

		final := eventlog.EventEntry{
			Type:          eventlog.EventUpdate,
			Data:          finalData,
			PreviousEvent: p.previousEvent,
			Proof:         []eventlog.Proof{p.controllerProof, witnessProof},
		}

		migrated, err := eventlog.AppendEntry(log, final)
		if err != nil {
			return nil, fmt.Errorf("layer: append migration for log %d: %w", i, err)
		}
		out[i] = migrated
	}

	return out, nil
}
