// Copyright 2025 Certen Protocol

package layer

import (
	"context"
	"testing"
	"time"

	"github.com/certen/cel-go/pkg/eventlog"
)

type fakeSigner struct {
	cryptosuite string
}

func (s fakeSigner) Sign(_ context.Context, _ []byte) (eventlog.Proof, error) {
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

type fakeWitness struct {
	bitcoin bool
}

func (w fakeWitness) Witness(_ context.Context, _ string) (eventlog.Proof, error) {
	p := eventlog.Proof{
		Type:               eventlog.ProofType,
		Created:            "2026-01-01T00:05:00.000Z",
		VerificationMethod: "did:peer:witness#key-1",
		ProofPurpose:       "assertionMethod",
		ProofValue:         "zwitness",
		WitnessedAt:        "2026-01-01T00:05:00.000Z",
	}
	if w.bitcoin {
		p.Cryptosuite = eventlog.CryptosuiteBitcoinOrdinals
		p.TxID = "abc123"
		p.InscriptionID = "abc123i0"
		p.Satoshi = "1234567890"
		h := uint64(800000)
		p.BlockHeight = &h
	} else {
		p.Cryptosuite = eventlog.CryptosuiteEdDSARDFC2022
	}
	return p, nil
}

func fixedClock() time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}

func peerLog(t *testing.T, did string) eventlog.EventLog {
	t.Helper()
	entry := eventlog.EventEntry{
		Type: eventlog.EventCreate,
		Data: map[string]interface{}{"did": did, "name": "Test Asset", "operation": "ResourceAdded"},
	}
	signable, err := eventlog.SignableBytes(entry)
	if err != nil {
		t.Fatalf("signable: %v", err)
	}
	proof, err := fakeSigner{}.Sign(context.Background(), signable)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	entry.Proof = []eventlog.Proof{proof}
	log, err := eventlog.AppendEntry(eventlog.EventLog{}, entry)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	return log
}

func TestCurrentStateSeedsFromCreate(t *testing.T) {
	log := peerLog(t, "did:peer:4zQabc")
	state, err := CurrentState(log)
	if err != nil {
		t.Fatalf("CurrentState: %v", err)
	}
	if state.DID != "did:peer:4zQabc" {
		t.Errorf("expected DID to be seeded, got %q", state.DID)
	}
	if state.Layer != LayerPeer {
		t.Errorf("expected layer peer, got %q", state.Layer)
	}
	if state.Name != "Test Asset" {
		t.Errorf("expected name seeded, got %q", state.Name)
	}
}

func TestCurrentStateRejectsEmptyLog(t *testing.T) {
	if _, err := CurrentState(eventlog.EventLog{}); err != eventlog.ErrEmptyLog {
		t.Fatalf("expected ErrEmptyLog, got %v", err)
	}
}
