package digest

import "testing"

func TestDigestDeterministic(t *testing.T) {
	d1 := Digest([]byte("hello"))
	d2 := Digest([]byte("hello"))
	if d1 != d2 {
		t.Fatalf("digest not deterministic: %q vs %q", d1, d2)
	}
	if d1[0] != 'u' {
		t.Fatalf("expected 'u' prefix, got %q", d1)
	}
	if len(d1) != 44 {
		t.Fatalf("expected 44-char digest, got %d chars (%q)", len(d1), d1)
	}
}

func TestVerify(t *testing.T) {
	d := Digest([]byte("content"))
	if !Verify([]byte("content"), d) {
		t.Fatalf("expected verify to succeed")
	}
	if Verify([]byte("content!"), d) {
		t.Fatalf("expected verify to fail for mutated content")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	raw, err := Decode(Digest([]byte("round trip")))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(raw) != Size {
		t.Fatalf("expected %d bytes, got %d", Size, len(raw))
	}
}

func TestDecodeRejectsOtherPrefix(t *testing.T) {
	// 'b' is multibase base32, not the 'u' this package emits.
	if _, err := Decode("bnbswy3dp"); err == nil {
		t.Fatalf("expected decode to reject non-'u' prefix")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode("not-a-multibase-string"); err == nil {
		t.Fatalf("expected decode to fail on garbage input")
	}
}

func TestEmptyContentIsStable(t *testing.T) {
	d1 := Digest(nil)
	d2 := Digest([]byte{})
	if d1 != d2 {
		t.Fatalf("expected empty-content digest to be stable: %q vs %q", d1, d2)
	}
}
