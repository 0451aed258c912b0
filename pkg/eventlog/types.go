// Copyright 2025 Certen Protocol
//
// Package eventlog owns the Cryptographic Event Log data model: the
// EventEntry/EventLog/Proof types, the canonical byte forms used for
// signing and chaining, and the append-time invariant checks. It holds
// no opinion about signing, witnessing, or layer policy — those are
// capabilities and algorithms layered on top.
package eventlog

// EventType identifies the three kinds of event an entry can carry.
type EventType string

const (
	EventCreate     EventType = "create"
	EventUpdate     EventType = "update"
	EventDeactivate EventType = "deactivate"
)

// Cryptosuite names recognized by this package. create/update events
// require EdDSAJCS2022; witness and deactivate proofs may also use
// EdDSARDFC2022 or, for Bitcoin witnesses, BitcoinOrdinals2024.
const (
	CryptosuiteEdDSAJCS2022    = "eddsa-jcs-2022"
	CryptosuiteEdDSARDFC2022   = "eddsa-rdfc-2022"
	CryptosuiteBitcoinOrdinals = "bitcoin-ordinals-2024"
)

// ProofType is the single proof type this package emits and accepts.
const ProofType = "DataIntegrityProof"

// Proof is the controller-proof shape, widened with the optional
// witness and Bitcoin-anchoring fields so a single struct can carry
// every proof variant described in the spec §3 data model. WitnessedAt
// non-empty marks a proof as a witness proof rather than a controller
// proof.
type Proof struct {
	Type               string `json:"type"`
	Cryptosuite        string `json:"cryptosuite"`
	Created            string `json:"created"`
	VerificationMethod string `json:"verificationMethod"`
	ProofPurpose       string `json:"proofPurpose"`
	ProofValue         string `json:"proofValue"`

	// Witness fields. WitnessedAt present marks this as a WitnessProof.
	WitnessedAt string `json:"witnessedAt,omitempty"`

	// Bitcoin-anchoring fields, present only when Cryptosuite is
	// bitcoin-ordinals-2024.
	TxID          string  `json:"txid,omitempty"`
	InscriptionID string  `json:"inscriptionId,omitempty"`
	Satoshi       string  `json:"satoshi,omitempty"`
	BlockHeight   *uint64 `json:"blockHeight,omitempty"`
}

// IsWitness reports whether this proof carries a witnessedAt marker.
func (p Proof) IsWitness() bool { return p.WitnessedAt != "" }

// IsBitcoinWitness reports whether this is a bitcoin-ordinals-2024 witness proof.
func (p Proof) IsBitcoinWitness() bool { return p.Cryptosuite == CryptosuiteBitcoinOrdinals }

// Clone returns a deep-enough copy of p (BlockHeight is copied by value).
func (p Proof) Clone() Proof {
	cp := p
	if p.BlockHeight != nil {
		h := *p.BlockHeight
		cp.BlockHeight = &h
	}
	return cp
}

// ToValue converts p to the generic JSON-value-tree representation
// used by the canonical serializer and the wire codecs.
func (p Proof) ToValue() map[string]interface{} {
	v := map[string]interface{}{
		"type":               p.Type,
		"cryptosuite":        p.Cryptosuite,
		"created":            p.Created,
		"verificationMethod": p.VerificationMethod,
		"proofPurpose":       p.ProofPurpose,
		"proofValue":         p.ProofValue,
	}
	if p.WitnessedAt != "" {
		v["witnessedAt"] = p.WitnessedAt
	}
	if p.TxID != "" {
		v["txid"] = p.TxID
	}
	if p.InscriptionID != "" {
		v["inscriptionId"] = p.InscriptionID
	}
	if p.Satoshi != "" {
		v["satoshi"] = p.Satoshi
	}
	if p.BlockHeight != nil {
		v["blockHeight"] = *p.BlockHeight
	}
	return v
}

// EventEntry is the atomic, append-only unit of a Cryptographic Event Log.
type EventEntry struct {
	Type          EventType
	Data          map[string]interface{}
	PreviousEvent string // empty only on the first entry of a log
	Proof         []Proof
}

// Clone returns a deep copy of e; callers may freely mutate the result
// without affecting e or any log that holds it.
func (e EventEntry) Clone() EventEntry {
	cp := EventEntry{
		Type:          e.Type,
		PreviousEvent: e.PreviousEvent,
		Data:          deepCopyMap(e.Data),
	}
	if e.Proof != nil {
		cp.Proof = make([]Proof, len(e.Proof))
		for i, p := range e.Proof {
			cp.Proof[i] = p.Clone()
		}
	}
	return cp
}

// ToValue converts e (excluding no fields) to its generic JSON-value
// representation, used by both the canonical hashing path and the wire
// codecs.
func (e EventEntry) ToValue() map[string]interface{} {
	v := map[string]interface{}{
		"type": string(e.Type),
		"data": e.Data,
	}
	if e.PreviousEvent != "" {
		v["previousEvent"] = e.PreviousEvent
	}
	proofs := make([]interface{}, len(e.Proof))
	for i, p := range e.Proof {
		proofs[i] = p.ToValue()
	}
	v["proof"] = proofs
	return v
}

// SignableValue returns the generic value tree signed over by a
// proof: {type, data, previousEvent?} — explicitly excluding the proof
// field, since a proof cannot sign itself.
func (e EventEntry) SignableValue() map[string]interface{} {
	v := map[string]interface{}{
		"type": string(e.Type),
		"data": e.Data,
	}
	if e.PreviousEvent != "" {
		v["previousEvent"] = e.PreviousEvent
	}
	return v
}

// EventLog is an ordered, append-only, hash-chained sequence of events.
type EventLog struct {
	Events      []EventEntry
	PreviousLog string // empty if this is not a continuation chunk
}

// Clone returns a deep copy of l.
func (l EventLog) Clone() EventLog {
	cp := EventLog{PreviousLog: l.PreviousLog}
	if l.Events != nil {
		cp.Events = make([]EventEntry, len(l.Events))
		for i, e := range l.Events {
			cp.Events[i] = e.Clone()
		}
	}
	return cp
}

// ToValue converts l to its generic JSON-value representation.
func (l EventLog) ToValue() map[string]interface{} {
	events := make([]interface{}, len(l.Events))
	for i, e := range l.Events {
		events[i] = e.ToValue()
	}
	v := map[string]interface{}{"events": events}
	if l.PreviousLog != "" {
		v["previousLog"] = l.PreviousLog
	}
	return v
}

func deepCopyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	cp := make(map[string]interface{}, len(m))
	for k, v := range m {
		cp[k] = deepCopyValue(v)
	}
	return cp
}

func deepCopyValue(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(vv)
	case []interface{}:
		cp := make([]interface{}, len(vv))
		for i, e := range vv {
			cp[i] = deepCopyValue(e)
		}
		return cp
	default:
		return vv
	}
}
