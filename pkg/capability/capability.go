// Copyright 2025 Certen Protocol
//
// Package capability defines the narrow interfaces the core algorithms
// consume for signing, witnessing, and blockchain inscription, plus
// reference implementations used by tests and small deployments. The
// core never depends on a concrete key manager, HTTP stack, or
// blockchain client directly — only on these interfaces.
package capability

import (
	"context"
	"errors"

	"github.com/certen/cel-go/pkg/eventlog"
)

// ErrWitnessUnavailable is the sentinel wrapped by witness
// implementations on timeout, transport failure, non-2xx response, or
// malformed response body.
var ErrWitnessUnavailable = errors.New("capability: witness unavailable")

// Signer produces a controller proof over the canonical bytes of an
// entry under construction. Implementations must be deterministic over
// their input for reproducible tests when given a fixed key.
type Signer interface {
	Sign(ctx context.Context, signableBytes []byte) (eventlog.Proof, error)
}

// Witness countersigns a previously-sealed entry, identified by its
// digest, and returns a WitnessProof.
type Witness interface {
	Witness(ctx context.Context, digestMultibase string) (eventlog.Proof, error)
}

// InscriptionResult is what an Inscriber returns after committing
// payload to an external ledger.
type InscriptionResult struct {
	TxID          string
	InscriptionID string
	Satoshi       string
	BlockHeight   *uint64
}

// Inscriber commits data to an external ledger (e.g. a Bitcoin
// ordinals inscription) and returns anchoring metadata. Consumed by
// the Bitcoin witness, not called directly by core algorithms.
type Inscriber interface {
	InscribeData(ctx context.Context, payload []byte, contentType string, feeRate *float64) (InscriptionResult, error)
}
