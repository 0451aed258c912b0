// Copyright 2025 Certen Protocol

package wire

import "encoding/json"

// toUint64 accepts the numeric shapes a value tree may carry a
// blockHeight as: json.Number from the JSON decoder, or native
// integer/float types from the CBOR decoder.
func toUint64(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 0 {
			return 0, false
		}
		return uint64(i), true
	case uint64:
		return n, true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	default:
		return 0, false
	}
}

// convertNumbers walks a value tree produced by a json.Number-aware
// JSON decode and rewrites every json.Number into a native int64 or
// float64, so the CBOR encoder emits proper CBOR integers instead of
// text strings.
func convertNumbers(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(vv))
		for k, e := range vv {
			out[k] = convertNumbers(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(vv))
		for i, e := range vv {
			out[i] = convertNumbers(e)
		}
		return out
	case json.Number:
		if i, err := vv.Int64(); err == nil {
			return i
		}
		if f, err := vv.Float64(); err == nil {
			return f
		}
		return vv.String()
	default:
		return vv
	}
}
