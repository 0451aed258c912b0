// Copyright 2025 Certen Protocol

package layer

import (
	"context"
	"fmt"

	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/eventlog"
)

// MigrateToBTCO implements the webvh→btco transition of §4.F: build a
// tentative migration entry, have the Bitcoin witness inscribe an
// attestation of its digest, finalize targetDid from the inscription
// result, replace the entry's data with the enriched payload, and
// append the single finished entry carrying both the controller proof
// and the BitcoinWitnessProof. log is not mutated.
//
// witness is expected to be a Bitcoin-anchoring capability.Witness
// (e.g. btcinscriber.Witness) whose returned proof carries txid,
// inscriptionId, satoshi, and optionally blockHeight.
func MigrateToBTCO(ctx context.Context, signer capability.Signer, log eventlog.EventLog, witness capability.Witness, now Clock) (eventlog.EventLog, error) {
	if witness == nil {
		return eventlog.EventLog{}, fmt.Errorf("layer: bitcoin witness is nil")
	}
	if len(log.Events) == 0 {
		return eventlog.EventLog{}, eventlog.ErrEmptyLog
	}

	last := log.Events[len(log.Events)-1]
	if last.Type == eventlog.EventDeactivate {
		return eventlog.EventLog{}, eventlog.ErrSealed
	}

	state, err := CurrentState(log)
	if err != nil {
		return eventlog.EventLog{}, err
	}
	if state.Layer != LayerWebVH {
		return eventlog.EventLog{}, fmt.Errorf("%w: migrate to btco requires layer webvh, got %s", ErrIllegalTransition, state.Layer)
	}

	sourceDid := state.DID
	previousEvent, err := eventlog.PreviousDigestOf(last)
	if err != nil {
		return eventlog.EventLog{}, err
	}

	migratedAt := nowString(now)
	tentativeData := map[string]interface{}{
		"sourceDid":  sourceDid,
		"layer":      string(LayerBTCO),
		"migratedAt": migratedAt,
	}
	tentative := eventlog.EventEntry{Type: eventlog.EventUpdate, Data: tentativeData, PreviousEvent: previousEvent}

	signable, err := eventlog.SignableBytes(tentative)
	if err != nil {
		return eventlog.EventLog{}, err
	}
	controllerProof, err := signer.Sign(ctx, signable)
	if err != nil {
		return eventlog.EventLog{}, fmt.Errorf("layer: sign migration entry: %w", err)
	}
	if controllerProof.Type == "" || controllerProof.Cryptosuite == "" || controllerProof.ProofValue == "" {
		return eventlog.EventLog{}, fmt.Errorf("layer: signer returned an invalid proof")
	}
	if controllerProof.Cryptosuite != eventlog.CryptosuiteEdDSAJCS2022 {
		return eventlog.EventLog{}, fmt.Errorf("layer: migration requires the eddsa-jcs-2022 cryptosuite, got %q", controllerProof.Cryptosuite)
	}
	tentative.Proof = []eventlog.Proof{controllerProof}

	attestationDigest, err := eventlog.PreviousDigestOf(tentative)
	if err != nil {
		return eventlog.EventLog{}, err
	}

	witnessProof, err := witness.Witness(ctx, attestationDigest)
	if err != nil {
		return eventlog.EventLog{}, fmt.Errorf("layer: inscribe migration attestation: %w", err)
	}
	if !witnessProof.IsWitness() || !witnessProof.IsBitcoinWitness() {
		return eventlog.EventLog{}, fmt.Errorf("layer: bitcoin witness returned an invalid proof")
	}

	targetDid := deriveBTCODID(witnessProof.InscriptionID, witnessProof.TxID, sourceDid)

	finalData := map[string]interface{}{
		"sourceDid":     sourceDid,
		"targetDid":     targetDid,
		"layer":         string(LayerBTCO),
		"migratedAt":    migratedAt,
		"txid":          witnessProof.TxID,
		"inscriptionId": witnessProof.InscriptionID,
		"satoshi":       witnessProof.Satoshi,
	}
	if witnessProof.BlockHeight != nil {
		finalData["blockHeight"] = *witnessProof.BlockHeight
	}

	final := eventlog.EventEntry{
		Type:          eventlog.EventUpdate,
		Data:          finalData,
		PreviousEvent: previousEvent,
		Proof:         []eventlog.Proof{controllerProof, witnessProof},
	}

	return eventlog.AppendEntry(log, final)
}
