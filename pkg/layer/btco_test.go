// Copyright 2025 Certen Protocol

package layer

import (
	"context"
	"errors"
	"testing"

	"github.com/certen/cel-go/pkg/eventlog"
)

func webvhLog(t *testing.T) eventlog.EventLog {
	t.Helper()
	log := peerLog(t, "did:peer:4zQabc")
	out, err := MigrateToWebVH(context.Background(), fakeSigner{}, log, "gallery.example.com", nil, fixedClock)
	if err != nil {
		t.Fatalf("MigrateToWebVH: %v", err)
	}
	return out
}

func TestMigrateToBTCORejectsDirectFromPeer(t *testing.T) {
	log := peerLog(t, "did:peer:4zQabc")
	if _, err := MigrateToBTCO(context.Background(), fakeSigner{}, log, fakeWitness{bitcoin: true}, fixedClock); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestMigrateToBTCOFromWebVH(t *testing.T) {
	log := webvhLog(t)

	out, err := MigrateToBTCO(context.Background(), fakeSigner{}, log, fakeWitness{bitcoin: true}, fixedClock)
	if err != nil {
		t.Fatalf("MigrateToBTCO: %v", err)
	}
	if len(out.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(out.Events))
	}

	third := out.Events[2]
	if third.Data["layer"] != string(LayerBTCO) {
		t.Errorf("expected layer=btco, got %v", third.Data["layer"])
	}
	if third.Data["targetDid"] != "did:btco:abc123i0" {
		t.Errorf("expected targetDid=did:btco:abc123i0, got %v", third.Data["targetDid"])
	}
	if third.Data["txid"] != "abc123" {
		t.Errorf("expected txid=abc123, got %v", third.Data["txid"])
	}

	bitcoinProofs := 0
	for _, p := range third.Proof {
		if p.IsBitcoinWitness() {
			bitcoinProofs++
			if p.WitnessedAt == "" {
				t.Error("expected bitcoin witness proof to carry witnessedAt")
			}
		}
	}
	if bitcoinProofs != 1 {
		t.Fatalf("expected exactly 1 bitcoin-ordinals-2024 proof, got %d", bitcoinProofs)
	}

	state, err := CurrentState(out)
	if err != nil {
		t.Fatalf("CurrentState: %v", err)
	}
	if state.Layer != LayerBTCO {
		t.Errorf("expected state layer btco, got %q", state.Layer)
	}
}

func TestMigrateToBTCORejectsNilWitness(t *testing.T) {
	log := webvhLog(t)
	if _, err := MigrateToBTCO(context.Background(), fakeSigner{}, log, nil, fixedClock); err == nil {
		t.Fatal("expected an error for a nil bitcoin witness")
	}
}

func TestMigrateToBTCORejectsSealedLog(t *testing.T) {
	log := webvhLog(t)
	sealed, err := eventlog.AppendEntry(log, eventlog.EventEntry{
		Type:          eventlog.EventDeactivate,
		Data:          map[string]interface{}{"deactivatedAt": "2026-01-01T00:00:00.000Z"},
		PreviousEvent: mustPrevDigest(t, log),
		Proof:         []eventlog.Proof{{Type: eventlog.ProofType, Cryptosuite: eventlog.CryptosuiteEdDSAJCS2022, ProofValue: "zsig"}},
	})
	if err != nil {
		t.Fatalf("append deactivate: %v", err)
	}
	if _, err := MigrateToBTCO(context.Background(), fakeSigner{}, sealed, fakeWitness{bitcoin: true}, fixedClock); err != eventlog.ErrSealed {
		t.Fatalf("expected ErrSealed, got %v", err)
	}
}

func mustPrevDigest(t *testing.T, log eventlog.EventLog) string {
	t.Helper()
	d, err := eventlog.PreviousDigestOf(log.Events[len(log.Events)-1])
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	return d
}
