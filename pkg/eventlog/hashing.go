// Copyright 2025 Certen Protocol

package eventlog

import (
	"fmt"

	"github.com/certen/cel-go/pkg/canonical"
	"github.com/certen/cel-go/pkg/digest"
)

// SignableBytes returns the canonical bytes a proof is computed over:
// {type, data, previousEvent?}, explicitly excluding the proof field
// itself. This is both the signer's input (§6.2) and the bytes a
// pluggable verifier checks a proof against (§4.E.5).
func SignableBytes(e EventEntry) ([]byte, error) {
	b, err := canonical.Marshal(e.SignableValue())
	if err != nil {
		return nil, fmt.Errorf("eventlog: canonicalize signable entry: %w", err)
	}
	return b, nil
}

// CanonicalBytes returns the canonical bytes of the complete entry,
// proof array included. This is the value previousEvent links to, and
// the value a witness attaches its countersignature to.
func CanonicalBytes(e EventEntry) ([]byte, error) {
	b, err := canonical.Marshal(e.ToValue())
	if err != nil {
		return nil, fmt.Errorf("eventlog: canonicalize entry: %w", err)
	}
	return b, nil
}

// PreviousDigestOf returns digest(canonical(entry)) — the value the
// entry that follows e must carry as its previousEvent, and the value
// a witness call digests against.
func PreviousDigestOf(e EventEntry) (string, error) {
	b, err := CanonicalBytes(e)
	if err != nil {
		return "", err
	}
	return digest.Digest(b), nil
}
