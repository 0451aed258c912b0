// Copyright 2025 Certen Protocol
//
// Sentinel errors for the §4.E algorithms. Each corresponds to a row
// of the §7 error taxonomy.

package celalg

import "errors"

var (
	// ErrInvalidProof is raised when a signer returns a proof missing
	// one of type, cryptosuite, or proofValue.
	ErrInvalidProof = errors.New("celalg: signer returned an invalid proof")

	// ErrCryptosuiteRequired is raised when create/update produces a
	// proof whose cryptosuite is not eddsa-jcs-2022.
	ErrCryptosuiteRequired = errors.New("celalg: create/update events require the eddsa-jcs-2022 cryptosuite")

	// ErrInvalidWitnessProof is raised when a witness returns a proof
	// missing a required field, including witnessedAt.
	ErrInvalidWitnessProof = errors.New("celalg: witness returned an invalid proof")

	// ErrMissingControllerProof is raised when witnessEvent is given an
	// entry with no existing proofs.
	ErrMissingControllerProof = errors.New("celalg: target entry has no controller proof")

	// ErrNilCapability is raised when a required signer or witness
	// capability is nil.
	ErrNilCapability = errors.New("celalg: required capability is nil")

	// ErrAlreadyDeactivated is raised when deactivate is called on a
	// log whose last event is already a deactivate event. Update on
	// such a log fails with eventlog.ErrSealed instead.
	ErrAlreadyDeactivated = errors.New("celalg: log is already deactivated")

	// ErrEntryIndexOutOfRange is raised when witnessEvent is given an
	// index outside the log's events.
	ErrEntryIndexOutOfRange = errors.New("celalg: entry index out of range")
)
