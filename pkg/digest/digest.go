// Copyright 2025 Certen Protocol
//
// Package digest computes and decodes the content-addressed digests
// used to chain event-log entries together. Every digest is a SHA-256
// hash encoded as multibase base64url-nopad with the 'u' prefix.
package digest

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/multiformats/go-multibase"
)

// Size is the length in bytes of a decoded digest (SHA-256 output).
const Size = sha256.Size

// ErrUnsupportedEncoding is returned when a digest string does not use
// the base64url-nopad ('u') multibase prefix this package produces.
var ErrUnsupportedEncoding = errors.New("digest: unsupported multibase encoding")

// ErrInvalidLength is returned when a decoded digest is not 32 bytes.
var ErrInvalidLength = errors.New("digest: decoded value is not a SHA-256 digest")

// Digest returns the multibase base64url-nopad ('u'-prefixed) encoding
// of SHA-256(data).
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	encoded, err := multibase.Encode(multibase.Base64url, sum[:])
	if err != nil {
		// Base64url encoding of a fixed 32-byte input never fails.
		panic(fmt.Sprintf("digest: unexpected multibase encode error: %v", err))
	}
	return encoded
}

// Verify reports whether digestString is the digest of data.
func Verify(data []byte, digestString string) bool {
	return Digest(data) == digestString
}

// EncodeRaw multibase-encodes a value that is already a 32-byte SHA-256
// digest (a Merkle root, for instance) instead of hashing its input
// first, so a derived digest uses the same wire representation as a
// directly computed one.
func EncodeRaw(raw []byte) (string, error) {
	if len(raw) != Size {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(raw))
	}
	encoded, err := multibase.Encode(multibase.Base64url, raw)
	if err != nil {
		return "", fmt.Errorf("digest: encode: %w", err)
	}
	return encoded, nil
}

// Decode strips the multibase prefix from digestString and returns the
// raw 32-byte SHA-256 value. It fails on any prefix other than 'u' or
// on a decoded length other than 32 bytes.
func Decode(digestString string) ([]byte, error) {
	enc, raw, err := multibase.Decode(digestString)
	if err != nil {
		return nil, fmt.Errorf("digest: decode %q: %w", digestString, err)
	}
	if enc != multibase.Base64url {
		return nil, fmt.Errorf("%w: got encoding %q", ErrUnsupportedEncoding, string(rune(enc)))
	}
	if len(raw) != Size {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(raw))
	}
	return raw, nil
}
