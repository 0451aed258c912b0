// Copyright 2025 Certen Protocol

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/certen/cel-go/pkg/canonical"
	"github.com/certen/cel-go/pkg/eventlog"
)

// MarshalJSON produces the canonical JSON encoding of log: object
// members in ascending key order at every depth, per §6.1. This is
// the same value-tree path pkg/eventlog uses for hashing, so the wire
// bytes and the hashed bytes never diverge for a given log value.
func MarshalJSON(log eventlog.EventLog) ([]byte, error) {
	b, err := canonical.Marshal(log.ToValue())
	if err != nil {
		return nil, fmt.Errorf("wire: marshal json: %w", err)
	}
	return b, nil
}

// ParseJSON decodes data into an EventLog, validating the §4.G
// structural schema. Numbers are decoded with json.Number precision so
// large block heights are never silently rounded.
func ParseJSON(data []byte) (eventlog.EventLog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return eventlog.EventLog{}, fmt.Errorf("%w: %v", ErrMalformedLog, err)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return eventlog.EventLog{}, fmt.Errorf("%w: top level must be a JSON object", ErrMalformedLog)
	}
	return logFromValue(m)
}
