// Copyright 2025 Certen Protocol
//
// Package verify implements the verification engine (§4.H): it walks
// an EventLog end to end, checking the hash chain and the structural
// shape of every proof, and never stops at the first failure — it
// accumulates a diagnostic per entry so a caller can see exactly where
// a log diverges. Cryptographic signature checking is a pluggable
// ProofVerifier; the bundled DefaultVerifier only checks structure.
package verify

import (
	"fmt"

	"github.com/certen/cel-go/pkg/eventlog"
)

// ProofVerifier cryptographically checks a single proof against the
// signable bytes it was computed over. Implementations wrap a
// concrete signature scheme; core verification never assumes one.
type ProofVerifier func(signableBytes []byte, proof eventlog.Proof) (bool, error)

// Options configures Run. A nil *Options uses DefaultVerifier and
// requires no witnesses.
type Options struct {
	// Crypto, if non-nil, is invoked for every controller and witness
	// proof in the log. If nil, DefaultVerifier is used, which checks
	// only the proof's structure, not its signature.
	Crypto ProofVerifier

	// RequireWitness marks every entry as needing at least one witness
	// proof to be considered fully valid.
	RequireWitness bool
}

// EntryReport is the per-entry outcome of Run.
type EntryReport struct {
	Index        int
	Type         eventlog.EventType
	ChainValid   bool
	ProofValid   bool
	WitnessValid bool
	HasWitness   bool
	Diagnostics  []string
}

// Report is the outcome of verifying a whole EventLog.
type Report struct {
	Entries []EntryReport
	Valid   bool
}

// DefaultVerifier reports a proof structurally valid per §4.E.5: type
// must be exactly DataIntegrityProof, cryptosuite must be one of the
// recognized suites (bitcoin-ordinals-2024 only on a witness proof),
// verificationMethod and proofPurpose must be populated, and proofValue
// must decode under its multibase prefix. It performs no cryptographic
// check.
func DefaultVerifier(_ []byte, proof eventlog.Proof) (bool, error) {
	if proof.Type != eventlog.ProofType {
		return false, nil
	}

	switch proof.Cryptosuite {
	case eventlog.CryptosuiteEdDSAJCS2022, eventlog.CryptosuiteEdDSARDFC2022:
	case eventlog.CryptosuiteBitcoinOrdinals:
		if !proof.IsWitness() {
			return false, nil
		}
	default:
		return false, nil
	}

	if proof.VerificationMethod == "" || proof.ProofPurpose == "" {
		return false, nil
	}

	if _, err := eventlog.DecodeProofValue(proof.ProofValue); err != nil {
		return false, nil
	}

	return true, nil
}

// Run verifies every entry of log in order per §4.H: structural
// invariants (first-event-is-create, chain linkage, sealing) are
// checked directly; proof validity is delegated to opts.Crypto (or
// DefaultVerifier). No check short-circuits another; every entry
// always receives a report.
func Run(log eventlog.EventLog, opts *Options) Report {
	crypto := DefaultVerifier
	requireWitness := false
	if opts != nil {
		if opts.Crypto != nil {
			crypto = opts.Crypto
		}
		requireWitness = opts.RequireWitness
	}

	report := Report{Entries: make([]EntryReport, len(log.Events)), Valid: true}

	var prev *eventlog.EventEntry
	for i := range log.Events {
		entry := log.Events[i]
		er := EntryReport{Index: i, Type: entry.Type}

		er.ChainValid = verifyChain(i, entry, prev, &er)
		er.ProofValid = verifyProofs(entry, crypto, &er)
		er.HasWitness = hasWitnessProof(entry)
		er.WitnessValid = !requireWitness || er.HasWitness
		if requireWitness && !er.HasWitness {
			er.Diagnostics = append(er.Diagnostics, "no witness proof present")
		}

		if !er.ChainValid || !er.ProofValid || !er.WitnessValid {
			report.Valid = false
		}
		report.Entries[i] = er

		e := entry
		prev = &e
	}

	if len(log.Events) == 0 {
		report.Valid = false
	} else if log.Events[0].Type != eventlog.EventCreate {
		report.Valid = false
		if len(report.Entries) > 0 {
			report.Entries[0].ChainValid = false
			report.Entries[0].Diagnostics = append(report.Entries[0].Diagnostics, "log does not open with a create event")
		}
	}

	return report
}

func verifyChain(index int, entry eventlog.EventEntry, prev *eventlog.EventEntry, er *EntryReport) bool {
	if index == 0 {
		if entry.PreviousEvent != "" {
			er.Diagnostics = append(er.Diagnostics, "first entry carries a previousEvent")
			return false
		}
		return true
	}

	if prev != nil && prev.Type == eventlog.EventDeactivate {
		er.Diagnostics = append(er.Diagnostics, "entry follows a deactivate event")
		return false
	}

	want, err := eventlog.PreviousDigestOf(*prev)
	if err != nil {
		er.Diagnostics = append(er.Diagnostics, fmt.Sprintf("digest prior entry: %v", err))
		return false
	}
	if entry.PreviousEvent != want {
		er.Diagnostics = append(er.Diagnostics, "previousEvent does not match digest of prior entry")
		return false
	}
	return true
}

func verifyProofs(entry eventlog.EventEntry, crypto ProofVerifier, er *EntryReport) bool {
	if len(entry.Proof) == 0 {
		er.Diagnostics = append(er.Diagnostics, "entry carries no proof")
		return false
	}

	signable, err := eventlog.SignableBytes(entry)
	if err != nil {
		er.Diagnostics = append(er.Diagnostics, fmt.Sprintf("canonicalize entry: %v", err))
		return false
	}

	controllerOK := false
	allOK := true
	for _, p := range entry.Proof {
		ok, err := crypto(signable, p)
		if err != nil {
			er.Diagnostics = append(er.Diagnostics, fmt.Sprintf("proof check: %v", err))
			allOK = false
			continue
		}
		if !ok {
			er.Diagnostics = append(er.Diagnostics, fmt.Sprintf("proof failed structural/cryptographic check (witness=%v)", p.IsWitness()))
			allOK = false
			continue
		}
		if !p.IsWitness() {
			controllerOK = true
		}
	}
	if !controllerOK {
		er.Diagnostics = append(er.Diagnostics, "no valid controller proof present")
		allOK = false
	}
	return allOK
}

func hasWitnessProof(entry eventlog.EventEntry) bool {
	for _, p := range entry.Proof {
		if p.IsWitness() {
			return true
		}
	}
	return false
}
