// Copyright 2025 Certen Protocol

package layer

import (
	"context"
	"fmt"
	"regexp"

	"github.com/certen/cel-go/pkg/capability"
	"github.com/certen/cel-go/pkg/eventlog"
)

// domainPattern is an RFC-1123-style hostname validator: labels of
// alphanumerics and hyphens (not leading/trailing with a hyphen),
// joined by dots.
var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// ValidateDomain reports ErrInvalidDomain if domain fails hostname
// validation. MigrateToWebVH calls it before any other check.
func ValidateDomain(domain string) error {
	if domain == "" || !domainPattern.MatchString(domain) {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	return nil
}

// MigrateToWebVH implements the peer→webvh transition of §4.F: it
// builds a migration update event carrying {sourceDid, targetDid,
// layer, domain, migratedAt}, signs it, has each witness in order
// countersign it, and appends the finished entry. log is not mutated.
func MigrateToWebVH(ctx context.Context, signer capability.Signer, log eventlog.EventLog, domain string, witnesses []capability.Witness, now Clock) (eventlog.EventLog, error) {
	if err := ValidateDomain(domain); err != nil {
		return eventlog.EventLog{}, err
	}
	if len(log.Events) == 0 {
		return eventlog.EventLog{}, eventlog.ErrEmptyLog
	}

	last := log.Events[len(log.Events)-1]
	if last.Type == eventlog.EventDeactivate {
		return eventlog.EventLog{}, eventlog.ErrSealed
	}

	state, err := CurrentState(log)
	if err != nil {
		return eventlog.EventLog{}, err
	}
	if state.Layer != LayerPeer {
		return eventlog.EventLog{}, fmt.Errorf("%w: migrate to webvh requires layer peer, got %s", ErrIllegalTransition, state.Layer)
	}

	sourceDid := state.DID
	targetDid := deriveWebVHDID(sourceDid, domain)

	previousEvent, err := eventlog.PreviousDigestOf(last)
	if err != nil {
		return eventlog.EventLog{}, err
	}

	data := map[string]interface{}{
		"sourceDid":  sourceDid,
		"targetDid":  targetDid,
		"layer":      string(LayerWebVH),
		"domain":     domain,
		"migratedAt": nowString(now),
	}

	entry := eventlog.EventEntry{Type: eventlog.EventUpdate, Data: data, PreviousEvent: previousEvent}

	signable, err := eventlog.SignableBytes(entry)
	if err != nil {
		return eventlog.EventLog{}, err
	}
	controllerProof, err := signer.Sign(ctx, signable)
	if err != nil {
		return eventlog.EventLog{}, fmt.Errorf("layer: sign migration entry: %w", err)
	}
	if controllerProof.Type == "" || controllerProof.Cryptosuite == "" || controllerProof.ProofValue == "" {
		return eventlog.EventLog{}, fmt.Errorf("layer: signer returned an invalid proof")
	}
	if controllerProof.Cryptosuite != eventlog.CryptosuiteEdDSAJCS2022 {
		return eventlog.EventLog{}, fmt.Errorf("layer: migration requires the eddsa-jcs-2022 cryptosuite, got %q", controllerProof.Cryptosuite)
	}
	entry.Proof = []eventlog.Proof{controllerProof}

	for _, w := range witnesses {
		if w == nil {
			return eventlog.EventLog{}, fmt.Errorf("layer: nil witness in configured witness list")
		}
		d, err := eventlog.PreviousDigestOf(entry)
		if err != nil {
			return eventlog.EventLog{}, err
		}
		proof, err := w.Witness(ctx, d)
		if err != nil {
			return eventlog.EventLog{}, fmt.Errorf("layer: witness migration entry: %w", err)
		}
		if !proof.IsWitness() {
			return eventlog.EventLog{}, fmt.Errorf("layer: witness returned an invalid proof")
		}
		entry.Proof = append(entry.Proof, proof)
	}

	return eventlog.AppendEntry(log, entry)
}
