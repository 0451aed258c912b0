// Copyright 2025 Certen Protocol

package capability

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/certen/cel-go/pkg/eventlog"
)

// TimestampLayout is the UTC, millisecond-precision ISO-8601 layout
// every timestamp this module emits uses.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Ed25519Signer is the reference controller Signer: it signs the
// entry's canonical bytes directly with an Ed25519 key and encodes the
// signature as a 'z'-prefixed base58btc proofValue, the convention
// eddsa-jcs-2022 data-integrity proofs use.
type Ed25519Signer struct {
	PrivateKey         ed25519.PrivateKey
	VerificationMethod string
	Cryptosuite        string // defaults to eventlog.CryptosuiteEdDSAJCS2022
	Clock              func() time.Time
}

// NewEd25519Signer constructs a signer with the required-by-default
// eddsa-jcs-2022 cryptosuite.
func NewEd25519Signer(key ed25519.PrivateKey, verificationMethod string) *Ed25519Signer {
	return &Ed25519Signer{
		PrivateKey:         key,
		VerificationMethod: verificationMethod,
		Cryptosuite:        eventlog.CryptosuiteEdDSAJCS2022,
	}
}

func (s *Ed25519Signer) clock() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Sign implements Signer.
func (s *Ed25519Signer) Sign(_ context.Context, signableBytes []byte) (eventlog.Proof, error) {
	if len(s.PrivateKey) != ed25519.PrivateKeySize {
		return eventlog.Proof{}, fmt.Errorf("capability: invalid ed25519 private key size: got %d, want %d", len(s.PrivateKey), ed25519.PrivateKeySize)
	}
	cryptosuite := s.Cryptosuite
	if cryptosuite == "" {
		cryptosuite = eventlog.CryptosuiteEdDSAJCS2022
	}
	sig := ed25519.Sign(s.PrivateKey, signableBytes)
	return eventlog.Proof{
		Type:               eventlog.ProofType,
		Cryptosuite:        cryptosuite,
		Created:            s.clock().UTC().Format(TimestampLayout),
		VerificationMethod: s.VerificationMethod,
		ProofPurpose:       "assertionMethod",
		ProofValue:         eventlog.EncodeProofValueBase58(sig),
	}, nil
}

// VerifyEd25519Proof returns a pluggable cryptographic proof checker,
// shaped to match verify.ProofVerifier, that callers can hand to the
// verification engine (§4.H) when they want actual signature checking
// instead of the default structural one. It resolves the verification
// method out-of-band by requiring the caller to supply the matching
// public key.
func VerifyEd25519Proof(publicKey ed25519.PublicKey) func(signableBytes []byte, p eventlog.Proof) (bool, error) {
	return func(signableBytes []byte, p eventlog.Proof) (bool, error) {
		if p.Cryptosuite != eventlog.CryptosuiteEdDSAJCS2022 && p.Cryptosuite != eventlog.CryptosuiteEdDSARDFC2022 {
			return false, nil
		}
		sig, err := eventlog.DecodeProofValue(p.ProofValue)
		if err != nil {
			return false, fmt.Errorf("capability: decode proofValue: %w", err)
		}
		return ed25519.Verify(publicKey, signableBytes, sig), nil
	}
}
