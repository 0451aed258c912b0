// Copyright 2025 Certen Protocol

package celalg

import (
	"context"
	"fmt"

	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/eventlog"
)

// signEntry computes the signable bytes of entry-under-construction
// and invokes signer, validating the returned proof's required fields
// before handing it back (§4.E.1 steps 3-4).
func signEntry(ctx context.Context, signer capability.Signer, entry eventlog.EventEntry) (eventlog.Proof, error) {
	if signer == nil {
		return eventlog.Proof{}, fmt.Errorf("%w: signer", ErrNilCapability)
	}
	signable, err := eventlog.SignableBytes(entry)
	if err != nil {
		return eventlog.Proof{}, fmt.Errorf("celalg: canonicalize entry for signing: %w", err)
	}
	proof, err := signer.Sign(ctx, signable)
	if err != nil {
		return eventlog.Proof{}, fmt.Errorf("celalg: sign entry: %w", err)
	}
	if err := validateControllerProof(proof); err != nil {
		return eventlog.Proof{}, err
	}
	return proof, nil
}

func validateControllerProof(p eventlog.Proof) error {
	if p.Type == "" || p.Cryptosuite == "" || p.ProofValue == "" {
		return ErrInvalidProof
	}
	return nil
}

// requireCryptosuite enforces invariant 5: required v1.1 events
// (create, and update that changes provenance) must carry the
// eddsa-jcs-2022 cryptosuite.
func requireCryptosuite(p eventlog.Proof) error {
	if p.Cryptosuite != eventlog.CryptosuiteEdDSAJCS2022 {
		return fmt.Errorf("%w: got %q", ErrCryptosuiteRequired, p.Cryptosuite)
	}
	return nil
}
