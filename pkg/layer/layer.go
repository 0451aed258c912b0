// Copyright 2025 Certen Protocol
//
// Package layer implements the trust-layer state machine (§4.F): state
// replay over an EventLog, and the peer→webvh and webvh→btco migration
// managers. It owns deterministic DID derivation and the layer
// monotonicity invariant; it never inspects cryptographic material
// directly, delegating signing and witnessing to pkg/capability.
package layer

import (
	"github.com/certen/cel-go/pkg/eventlog"
)

// Layer is a trust tier an identifier resides at.
type Layer string

const (
	LayerPeer  Layer = "peer"
	LayerWebVH Layer = "webvh"
	LayerBTCO  Layer = "btco"
)

// AssetState is the derived, never-persisted-authoritatively view of
// an asset produced by folding an EventLog (§4.F.2). It is always
// rebuilt from the log, never stored as a source of truth.
type AssetState struct {
	DID         string
	Name        string
	Layer       Layer
	Resources   []interface{}
	Creator     string
	CreatedAt   string
	UpdatedAt   string
	Deactivated bool
	Metadata    map[string]interface{}
}

// CurrentState folds log's entries into an AssetState per §4.F.2.
func CurrentState(log eventlog.EventLog) (AssetState, error) {
	if len(log.Events) == 0 {
		return AssetState{}, eventlog.ErrEmptyLog
	}
	first := log.Events[0]
	if first.Type != eventlog.EventCreate {
		return AssetState{}, eventlog.ErrNotCreateFirst
	}

	state := AssetState{
		Layer:    LayerPeer,
		Metadata: map[string]interface{}{},
	}
	seedFromCreate(&state, first.Data)

	for _, e := range log.Events[1:] {
		switch e.Type {
		case eventlog.EventUpdate:
			applyUpdate(&state, e.Data)
		case eventlog.EventDeactivate:
			applyDeactivate(&state, e.Data)
		}
	}
	return state, nil
}

func seedFromCreate(state *AssetState, data map[string]interface{}) {
	if did, ok := data["did"].(string); ok {
		state.DID = did
	}
	if name, ok := data["name"].(string); ok {
		state.Name = name
	}
	if creator, ok := data["creator"].(string); ok {
		state.Creator = creator
	}
	if createdAt, ok := data["createdAt"].(string); ok {
		state.CreatedAt = createdAt
	}
	if resources, ok := data["resources"].([]interface{}); ok {
		state.Resources = resources
	}
	for k, v := range data {
		switch k {
		case "did", "name", "creator", "createdAt", "resources", "operation":
		default:
			state.Metadata[k] = v
		}
	}
}

func applyUpdate(state *AssetState, data map[string]interface{}) {
	targetDid, hasTarget := data["targetDid"].(string)
	newLayer, hasLayer := data["layer"].(string)
	if hasTarget && hasLayer {
		applyMigration(state, data, targetDid, Layer(newLayer))
		return
	}

	if did, ok := data["did"].(string); ok {
		state.DID = did
	}
	if name, ok := data["name"].(string); ok {
		state.Name = name
	}
	if resources, ok := data["resources"].([]interface{}); ok {
		state.Resources = resources
	}
	if updatedAt, ok := data["updatedAt"].(string); ok {
		state.UpdatedAt = updatedAt
	}
	for k, v := range data {
		switch k {
		case "did", "name", "resources", "updatedAt", "operation":
		default:
			state.Metadata[k] = v
		}
	}
}

func applyMigration(state *AssetState, data map[string]interface{}, targetDid string, newLayer Layer) {
	state.DID = targetDid
	state.Layer = newLayer
	if migratedAt, ok := data["migratedAt"].(string); ok {
		state.UpdatedAt = migratedAt
	}
	state.Metadata["sourceDid"] = data["sourceDid"]
	if domain, ok := data["domain"]; ok {
		state.Metadata["domain"] = domain
	}
	for _, k := range []string{"txid", "inscriptionId", "satoshi", "blockHeight"} {
		if v, ok := data[k]; ok {
			state.Metadata[k] = v
		}
	}
}

func applyDeactivate(state *AssetState, data map[string]interface{}) {
	state.Deactivated = true
	if deactivatedAt, ok := data["deactivatedAt"].(string); ok {
		state.UpdatedAt = deactivatedAt
	}
	if reason, ok := data["reason"]; ok {
		state.Metadata["deactivationReason"] = reason
	}
}
