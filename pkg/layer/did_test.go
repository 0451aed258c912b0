// Copyright 2025 Certen Protocol

package layer

import "testing"

func TestDeriveWebVHDIDFormat(t *testing.T) {
	got := deriveWebVHDID("did:peer:4zQabc123", "gallery.example.com")
	want := "did:webvh:gallery.example.com:4zQabc123"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDeriveWebVHDIDStripsPunctuation(t *testing.T) {
	got := deriveWebVHDID("did:peer:4zQ-abc_def", "example.com")
	want := "did:webvh:example.com:4zQabcdef"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDeriveBTCODIDPrefersInscriptionID(t *testing.T) {
	got := deriveBTCODID("abc123i0", "abc123", "did:webvh:example.com:x")
	if got != "did:btco:abc123i0" {
		t.Errorf("got %q", got)
	}
}

func TestDeriveBTCODIDFallsBackToTxID(t *testing.T) {
	got := deriveBTCODID("", "abc123", "did:webvh:example.com:x")
	if got != "did:btco:abc123" {
		t.Errorf("got %q", got)
	}
}

func TestDeriveBTCODIDFallsBackToHash(t *testing.T) {
	got := deriveBTCODID("", "", "did:webvh:example.com:x")
	if len(got) <= len("did:btco:") {
		t.Errorf("expected a non-empty hash-derived id, got %q", got)
	}

	again := deriveBTCODID("", "", "did:webvh:example.com:x")
	if got != again {
		t.Errorf("expected hash derivation to be deterministic, got %q then %q", got, again)
	}
}

func TestDeriveWebVHDIDTruncatesLongIDs(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "a"
	}
	got := deriveWebVHDID("did:peer:"+long, "example.com")
	want := "did:webvh:example.com:" + long[:maxWebVHIDLength]
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSanitizeAlnumTruncates(t *testing.T) {
	got := sanitizeAlnum("abcdefghij", 5)
	if got != "abcde" {
		t.Errorf("got %q, want %q", got, "abcde")
	}
}
