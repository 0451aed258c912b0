// Copyright 2025 Certen Protocol

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/certen/cel-go/pkg/canonical"
	"github.com/certen/cel-go/pkg/eventlog"
)

var (
	cborEncMode  cbor.EncMode
	cborDecMode  cbor.DecMode
	cborModeErr  error
	cborModeOnce sync.Once
)

// deterministicCBORModes builds the encode/decode modes used for every
// CBOR operation: canonical (RFC 7049 §3.9) encoding so output is
// deterministic and comparable byte-for-byte, and a decode mode that
// unmarshals CBOR maps into map[string]interface{} so the same
// generic-value parser in parse.go handles both formats.
func deterministicCBORModes() (cbor.EncMode, cbor.DecMode, error) {
	cborModeOnce.Do(func() {
		cborEncMode, cborModeErr = cbor.CanonicalEncOptions().EncMode()
		if cborModeErr != nil {
			return
		}
		decOpts := cbor.DecOptions{
			DefaultMapType: reflect.TypeOf(map[string]interface{}{}),
			DupMapKey:      cbor.DupMapKeyEnforcedAPF,
			IndefLength:    cbor.IndefLengthForbidden,
			TagsMd:         cbor.TagsForbidden,
		}
		cborDecMode, cborModeErr = decOpts.DecMode()
	})
	return cborEncMode, cborDecMode, cborModeErr
}

// MarshalCBOR produces a deterministic CBOR encoding of log, derived
// from the same canonical JSON value tree MarshalJSON uses so both
// wire formats stay semantically isomorphic (§4.G).
func MarshalCBOR(log eventlog.EventLog) ([]byte, error) {
	enc, _, err := deterministicCBORModes()
	if err != nil {
		return nil, fmt.Errorf("wire: build cbor encoder: %w", err)
	}

	jsonBytes, err := canonical.Marshal(log.ToValue())
	if err != nil {
		return nil, fmt.Errorf("wire: canonicalize for cbor: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(jsonBytes))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("wire: decode intermediate json: %w", err)
	}

	b, err := enc.Marshal(convertNumbers(v))
	if err != nil {
		return nil, fmt.Errorf("wire: marshal cbor: %w", err)
	}
	return b, nil
}

// ParseCBOR decodes data into an EventLog, applying the same
// structural validation as ParseJSON.
func ParseCBOR(data []byte) (eventlog.EventLog, error) {
	_, dec, err := deterministicCBORModes()
	if err != nil {
		return eventlog.EventLog{}, fmt.Errorf("wire: build cbor decoder: %w", err)
	}

	var v interface{}
	if err := dec.Unmarshal(data, &v); err != nil {
		return eventlog.EventLog{}, fmt.Errorf("%w: %v", ErrMalformedLog, err)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return eventlog.EventLog{}, fmt.Errorf("%w: top level must be a CBOR map", ErrMalformedLog)
	}
	return logFromValue(m)
}
