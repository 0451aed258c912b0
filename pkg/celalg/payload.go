// Copyright 2025 Certen Protocol

package celalg

// Operation tags stamped onto normalized create/update payloads per
// invariant 5 of the data model.
const (
	OperationResourceAdded   = "ResourceAdded"
	OperationResourceUpdated = "ResourceUpdated"
)

// normalizePayload copies data into a fresh map if it is already one,
// otherwise wraps it as {"value": data}, per §4.E.1 step 1.
func normalizePayload(data interface{}) map[string]interface{} {
	if m, ok := data.(map[string]interface{}); ok {
		cp := make(map[string]interface{}, len(m)+2)
		for k, v := range m {
			cp[k] = v
		}
		return cp
	}
	return map[string]interface{}{"value": data}
}
