package httpwitness

import (
	"context"
	"crypto/ed25519"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/certen/cel-go/pkg/capability"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestClientWitnessRoundTrip(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}
	signer := capability.NewEd25519Signer(priv, "did:peer:witness#key-1")
	signer.Clock = fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	handler := &Handler{Signer: signer, Clock: fixedClock(time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC))}
	srv := httptest.NewServer(handler)
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	proof, err := client.Witness(context.Background(), "udigest-value")
	if err != nil {
		t.Fatalf("witness call failed: %v", err)
	}
	if proof.WitnessedAt == "" {
		t.Fatalf("expected witnessedAt to be set")
	}
	if proof.Cryptosuite != "eddsa-jcs-2022" {
		t.Fatalf("unexpected cryptosuite %q", proof.Cryptosuite)
	}
}

func TestClientWitnessNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Witness(context.Background(), "udigest-value")
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	werr, ok := err.(*WitnessError)
	if !ok {
		t.Fatalf("expected *WitnessError, got %T", err)
	}
	if werr.StatusCode != 404 {
		t.Fatalf("expected status 404, got %d", werr.StatusCode)
	}
}
