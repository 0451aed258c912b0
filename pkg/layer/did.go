// Copyright 2025 Certen Protocol

package layer

import (
	"hash/fnv"
	"strconv"
	"strings"
)

const (
	maxWebVHIDLength = 32
	maxBTCOIDLength  = 64
)

// sanitizeAlnum keeps only ASCII alphanumerics from s and truncates
// the result to max characters.
func sanitizeAlnum(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= max {
			break
		}
	}
	return b.String()
}

// methodSpecificID extracts the portion of a DID after its method
// name, e.g. "did:peer:4zQ..." -> "4zQ...".
func methodSpecificID(did string) string {
	parts := strings.SplitN(did, ":", 3)
	if len(parts) < 3 {
		return did
	}
	return parts[2]
}

// deriveWebVHDID implements §4.F.1's webvh derivation: extract the
// method-specific identifier from sourceDid, keep only alphanumerics,
// truncate to 32 chars, and emit did:webvh:<domain>:<id>.
func deriveWebVHDID(sourceDid, domain string) string {
	id := sanitizeAlnum(methodSpecificID(sourceDid), maxWebVHIDLength)
	return "did:webvh:" + domain + ":" + id
}

// deriveBTCODID implements §4.F.1's btco derivation: prefer a
// sanitized inscriptionId, fall back to a sanitized txid, and finally
// to a stable non-cryptographic hash of sourceDid reduced to base36.
func deriveBTCODID(inscriptionID, txid, sourceDid string) string {
	if id := sanitizeAlnum(inscriptionID, maxBTCOIDLength); id != "" {
		return "did:btco:" + id
	}
	if id := sanitizeAlnum(txid, maxBTCOIDLength); id != "" {
		return "did:btco:" + id
	}
	return "did:btco:" + hashDerivedID(sourceDid)
}

// hashDerivedID is the documented fallback for btco DID derivation: an
// FNV-1a hash of sourceDid, rendered in base36. It is explicitly
// non-cryptographic and collision-prone; it exists only so a migration
// without usable inscription metadata still produces a deterministic
// identifier.
func hashDerivedID(sourceDid string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(sourceDid))
	return strconv.FormatUint(h.Sum64(), 36)
}
