// Copyright 2025 Certen Protocol
//
// Package externalref builds and verifies content-addressed references
// to out-of-band resources (images, documents, arbitrary blobs) that an
// event log can point at without embedding. The core never fetches
// these URLs; it only commits to and checks a digest.
package externalref

import (
	"crypto/subtle"

	"github.com/certen/cel-go/pkg/digest"
)

// ExternalReference is a content-addressed pointer to an out-of-band
// resource.
type ExternalReference struct {
	DigestMultibase string   `json:"digestMultibase"`
	MediaType       string   `json:"mediaType,omitempty"`
	URL             []string `json:"url,omitempty"`
}

// Create builds an ExternalReference over content. urls is copied and
// only attached when non-empty.
func Create(content []byte, mediaType string, urls []string) ExternalReference {
	ref := ExternalReference{
		DigestMultibase: digest.Digest(content),
		MediaType:       mediaType,
	}
	if len(urls) > 0 {
		ref.URL = append([]string(nil), urls...)
	}
	return ref
}

// Verify recomputes the digest of content and compares it against
// ref.DigestMultibase in constant time, returning false on any
// mismatch or malformed reference.
func Verify(ref ExternalReference, content []byte) bool {
	if ref.DigestMultibase == "" {
		return false
	}
	want := digest.Digest(content)
	return subtle.ConstantTimeCompare([]byte(want), []byte(ref.DigestMultibase)) == 1
}
