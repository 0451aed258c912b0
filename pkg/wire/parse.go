// Copyright 2025 Certen Protocol
//
// Package wire implements the JSON and CBOR codecs of §4.G/§6.1: both
// formats share this file's generic-value-tree parser and validator,
// so the structural schema is enforced identically regardless of
// transport. Encoding is likewise routed through a single generic
// value tree (pkg/eventlog's ToValue methods) so hashing and wire
// transport never diverge.
package wire

import (
	"fmt"

	"github.com/certen/cel-go/pkg/eventlog"
)

func logFromValue(v map[string]interface{}) (eventlog.EventLog, error) {
	eventsRaw, ok := v["events"].([]interface{})
	if !ok {
		return eventlog.EventLog{}, fmt.Errorf("%w: top-level \"events\" must be an array", ErrMalformedLog)
	}

	events := make([]eventlog.EventEntry, len(eventsRaw))
	for i, er := range eventsRaw {
		em, ok := er.(map[string]interface{})
		if !ok {
			return eventlog.EventLog{}, fmt.Errorf("%w: events[%d] must be an object", ErrMalformedLog, i)
		}
		entry, err := entryFromValue(em)
		if err != nil {
			return eventlog.EventLog{}, fmt.Errorf("events[%d]: %w", i, err)
		}
		events[i] = entry
	}

	log := eventlog.EventLog{Events: events}
	if pl, ok := v["previousLog"]; ok {
		s, ok := pl.(string)
		if !ok {
			return eventlog.EventLog{}, fmt.Errorf("%w: previousLog must be a string", ErrMalformedLog)
		}
		log.PreviousLog = s
	}
	return log, nil
}

func entryFromValue(em map[string]interface{}) (eventlog.EventEntry, error) {
	typeStr, ok := em["type"].(string)
	if !ok {
		return eventlog.EventEntry{}, fmt.Errorf("%w: missing or non-string \"type\"", ErrMalformedLog)
	}
	t := eventlog.EventType(typeStr)
	switch t {
	case eventlog.EventCreate, eventlog.EventUpdate, eventlog.EventDeactivate:
	default:
		return eventlog.EventEntry{}, fmt.Errorf("%w: unknown event type %q", ErrMalformedLog, typeStr)
	}

	data, ok := em["data"].(map[string]interface{})
	if !ok {
		return eventlog.EventEntry{}, fmt.Errorf("%w: missing or non-object \"data\"", ErrMalformedLog)
	}

	proofsRaw, ok := em["proof"].([]interface{})
	if !ok {
		return eventlog.EventEntry{}, fmt.Errorf("%w: missing or non-array \"proof\"", ErrMalformedLog)
	}
	proofs := make([]eventlog.Proof, len(proofsRaw))
	for i, pr := range proofsRaw {
		pm, ok := pr.(map[string]interface{})
		if !ok {
			return eventlog.EventEntry{}, fmt.Errorf("%w: proof[%d] must be an object", ErrMalformedLog, i)
		}
		proof, err := proofFromValue(pm)
		if err != nil {
			return eventlog.EventEntry{}, fmt.Errorf("proof[%d]: %w", i, err)
		}
		proofs[i] = proof
	}

	entry := eventlog.EventEntry{Type: t, Data: data, Proof: proofs}
	if pe, ok := em["previousEvent"]; ok {
		s, ok := pe.(string)
		if !ok {
			return eventlog.EventEntry{}, fmt.Errorf("%w: previousEvent must be a string", ErrMalformedLog)
		}
		entry.PreviousEvent = s
	}
	return entry, nil
}

var requiredProofFields = []string{"type", "cryptosuite", "created", "verificationMethod", "proofPurpose", "proofValue"}

func proofFromValue(pm map[string]interface{}) (eventlog.Proof, error) {
	fields := make(map[string]string, len(requiredProofFields))
	for _, f := range requiredProofFields {
		s, ok := pm[f].(string)
		if !ok || s == "" {
			return eventlog.Proof{}, fmt.Errorf("%w: missing required field %q", ErrMalformedLog, f)
		}
		fields[f] = s
	}

	proof := eventlog.Proof{
		Type:               fields["type"],
		Cryptosuite:        fields["cryptosuite"],
		Created:            fields["created"],
		VerificationMethod: fields["verificationMethod"],
		ProofPurpose:       fields["proofPurpose"],
		ProofValue:         fields["proofValue"],
	}
	if wa, ok := pm["witnessedAt"]; ok {
		s, ok := wa.(string)
		if !ok {
			return eventlog.Proof{}, fmt.Errorf("%w: witnessedAt must be a string", ErrMalformedLog)
		}
		proof.WitnessedAt = s
	}
	if txid, ok := pm["txid"].(string); ok {
		proof.TxID = txid
	}
	if iid, ok := pm["inscriptionId"].(string); ok {
		proof.InscriptionID = iid
	}
	if sat, ok := pm["satoshi"].(string); ok {
		proof.Satoshi = sat
	}
	if bh, ok := pm["blockHeight"]; ok {
		u, ok := toUint64(bh)
		if !ok {
			return eventlog.Proof{}, fmt.Errorf("%w: blockHeight must be an integer", ErrMalformedLog)
		}
		proof.BlockHeight = &u
	}
	return proof, nil
}
