// Copyright 2025 Certen Protocol

package eventlog

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ErrUnsupportedProofValuePrefix is returned when a proofValue string
// does not start with one of the two multibase prefixes this package
// understands ('z' base58btc, 'u' base64url-nopad).
var ErrUnsupportedProofValuePrefix = errors.New("eventlog: proofValue must be prefixed 'z' or 'u'")

// EncodeProofValueBase58 encodes sig as a 'z'-prefixed base58btc
// multibase string, the convention eddsa-jcs-2022 data-integrity
// proofs use.
func EncodeProofValueBase58(sig []byte) string {
	return "z" + base58.Encode(sig)
}

// EncodeProofValueBase64url encodes sig as a 'u'-prefixed
// base64url-nopad multibase string.
func EncodeProofValueBase64url(sig []byte) string {
	return "u" + base64.RawURLEncoding.EncodeToString(sig)
}

// DecodeProofValue decodes a proofValue string produced by either of
// the Encode functions above back into raw signature bytes.
func DecodeProofValue(proofValue string) ([]byte, error) {
	if len(proofValue) < 2 {
		return nil, ErrUnsupportedProofValuePrefix
	}
	switch proofValue[0] {
	case 'z':
		raw, err := base58.Decode(proofValue[1:])
		if err != nil {
			return nil, fmt.Errorf("eventlog: decode base58btc proofValue: %w", err)
		}
		return raw, nil
	case 'u':
		raw, err := base64.RawURLEncoding.DecodeString(proofValue[1:])
		if err != nil {
			return nil, fmt.Errorf("eventlog: decode base64url proofValue: %w", err)
		}
		return raw, nil
	default:
		return nil, ErrUnsupportedProofValuePrefix
	}
}
