// Copyright 2025 Certen Protocol
//
// Package btcinscriber provides a reference capability.Inscriber and
// the capability.Witness that wraps it to produce bitcoin-ordinals-2024
// witness proofs, per §4.I and §6.2.
package btcinscriber

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/certen/cel-go/pkg/canonical"
	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/eventlog"
)

// inscriptionPostage is the dust-limit-sized satoshi amount a real
// ordinals inscription output carries; the reference inscriber reports
// this as its Satoshi value.
const inscriptionPostage = btcutil.Amount(546)

// StubInscriber is a deterministic, offline stand-in for a Bitcoin
// ordinals inscription client: it derives a txid from the SHA-256 of
// the inscribed payload via chainhash, so the same payload always
// inscribes to the same reference transaction, which keeps tests
// reproducible without a live Bitcoin node.
type StubInscriber struct {
	Clock func() time.Time
}

func (s *StubInscriber) clock() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// InscribeData implements capability.Inscriber.
func (s *StubInscriber) InscribeData(_ context.Context, payload []byte, _ string, _ *float64) (capability.InscriptionResult, error) {
	sum := sha256.Sum256(payload)
	txHash, err := chainhash.NewHash(sum[:])
	if err != nil {
		return capability.InscriptionResult{}, fmt.Errorf("btcinscriber: derive txid from payload: %w", err)
	}
	txid := txHash.String()
	height := uint64(0)
	return capability.InscriptionResult{
		TxID:          txid,
		InscriptionID: txid + "i0",
		Satoshi:       strconv.FormatInt(int64(inscriptionPostage), 10),
		BlockHeight:   &height,
	}, nil
}

// Witness wraps an Inscriber into a capability.Witness that builds the
// §6.2 attestation payload, inscribes it, and returns a
// bitcoin-ordinals-2024 WitnessProof carrying the resulting anchoring
// fields.
type Witness struct {
	Inscriber capability.Inscriber
	FeeRate   *float64
	Signer    capability.Signer // signs the attestation payload for proofValue
	Clock     func() time.Time
}

func (w *Witness) clock() time.Time {
	if w.Clock != nil {
		return w.Clock()
	}
	return time.Now()
}

// Witness implements capability.Witness.
func (w *Witness) Witness(ctx context.Context, digestMultibase string) (eventlog.Proof, error) {
	now := w.clock().UTC().Format(capability.TimestampLayout)
	attestation := map[string]interface{}{
		"@context":        "https://w3id.org/cel/v1",
		"type":            "BitcoinWitnessAttestation",
		"digestMultibase": digestMultibase,
		"witnessedAt":     now,
	}
	payload, err := canonical.Marshal(attestation)
	if err != nil {
		return eventlog.Proof{}, fmt.Errorf("btcinscriber: canonicalize attestation: %w", err)
	}

	result, err := w.Inscriber.InscribeData(ctx, payload, "application/json", w.FeeRate)
	if err != nil {
		return eventlog.Proof{}, fmt.Errorf("%w: inscribe attestation: %v", capability.ErrWitnessUnavailable, err)
	}

	proof, err := w.Signer.Sign(ctx, payload)
	if err != nil {
		return eventlog.Proof{}, fmt.Errorf("btcinscriber: sign attestation: %w", err)
	}
	proof.Cryptosuite = eventlog.CryptosuiteBitcoinOrdinals
	proof.WitnessedAt = now
	proof.TxID = result.TxID
	proof.InscriptionID = result.InscriptionID
	proof.Satoshi = result.Satoshi
	proof.BlockHeight = result.BlockHeight
	return proof, nil
}
