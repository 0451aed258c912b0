// Copyright 2025 Certen Protocol

package celalg

import (
	"context"
	"fmt"
	"time"

	"github.com/certen/cel-go/pkg/eventlog"
)

// fakeSigner returns a fixed, valid-shaped controller proof regardless
// of input, so algorithm tests can focus on chaining/normalization
// rather than real cryptography.
type fakeSigner struct {
	cryptosuite string
	fail        error
}

func (s fakeSigner) Sign(_ context.Context, _ []byte) (eventlog.Proof, error) {
	if s.fail != nil {
		return eventlog.Proof{}, s.fail
	}
	cs := s.cryptosuite
	if cs == "" {
		cs = eventlog.CryptosuiteEdDSAJCS2022
	}
	return eventlog.Proof{
		Type:               eventlog.ProofType,
		Cryptosuite:        cs,
		Created:            "2026-01-01T00:00:00.000Z",
		VerificationMethod: "did:peer:abc#key-1",
		ProofPurpose:       "assertionMethod",
		ProofValue:         "z3sig",
	}, nil
}

// fakeWitness returns a fixed witness proof for any digest.
type fakeWitness struct {
	fail error
}

func (w fakeWitness) Witness(_ context.Context, digest string) (eventlog.Proof, error) {
	if w.fail != nil {
		return eventlog.Proof{}, w.fail
	}
	return eventlog.Proof{
		Type:               eventlog.ProofType,
		Cryptosuite:        eventlog.CryptosuiteEdDSARDFC2022,
		Created:            "2026-01-01T00:05:00.000Z",
		VerificationMethod: "did:peer:witness#key-1",
		ProofPurpose:       "assertionMethod",
		ProofValue:         "zwitness",
		WitnessedAt:        "2026-01-01T00:05:00.000Z",
	}, nil
}

func fixedClock() time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}

var errBoom = fmt.Errorf("boom")
