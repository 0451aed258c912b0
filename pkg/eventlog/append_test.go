package eventlog

import "testing"

func validProof() Proof {
	return Proof{
		Type:               ProofType,
		Cryptosuite:        CryptosuiteEdDSAJCS2022,
		Created:            "2026-01-01T00:00:00.000Z",
		VerificationMethod: "did:peer:abc#key-1",
		ProofPurpose:       "assertionMethod",
		ProofValue:         "z3sig",
	}
}

func TestAppendEntryRequiresCreateFirst(t *testing.T) {
	var log EventLog
	entry := EventEntry{Type: EventUpdate, Data: map[string]interface{}{}, Proof: []Proof{validProof()}}
	if _, err := AppendEntry(log, entry); err != ErrNotCreateFirst {
		t.Fatalf("expected ErrNotCreateFirst, got %v", err)
	}
}

func TestAppendEntryRequiresProof(t *testing.T) {
	var log EventLog
	entry := EventEntry{Type: EventCreate, Data: map[string]interface{}{}}
	if _, err := AppendEntry(log, entry); err != ErrMissingProof {
		t.Fatalf("expected ErrMissingProof, got %v", err)
	}
}

func TestAppendEntryChains(t *testing.T) {
	var log EventLog
	create := EventEntry{Type: EventCreate, Data: map[string]interface{}{"name": "x"}, Proof: []Proof{validProof()}}
	log, err := AppendEntry(log, create)
	if err != nil {
		t.Fatalf("append create failed: %v", err)
	}

	prevDigest, err := PreviousDigestOf(log.Events[0])
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}

	update := EventEntry{Type: EventUpdate, Data: map[string]interface{}{"name": "y"}, PreviousEvent: prevDigest, Proof: []Proof{validProof()}}
	log, err = AppendEntry(log, update)
	if err != nil {
		t.Fatalf("append update failed: %v", err)
	}
	if len(log.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(log.Events))
	}
}

func TestAppendEntryRejectsMismatchedPreviousEvent(t *testing.T) {
	var log EventLog
	create := EventEntry{Type: EventCreate, Data: map[string]interface{}{}, Proof: []Proof{validProof()}}
	log, _ = AppendEntry(log, create)

	update := EventEntry{Type: EventUpdate, Data: map[string]interface{}{}, PreviousEvent: "uwrong", Proof: []Proof{validProof()}}
	if _, err := AppendEntry(log, update); err != ErrPreviousEventMismatch {
		t.Fatalf("expected ErrPreviousEventMismatch, got %v", err)
	}
}

func TestAppendEntryRejectsAfterSeal(t *testing.T) {
	var log EventLog
	create := EventEntry{Type: EventCreate, Data: map[string]interface{}{}, Proof: []Proof{validProof()}}
	log, _ = AppendEntry(log, create)

	prevDigest, _ := PreviousDigestOf(log.Events[0])
	deactivate := EventEntry{Type: EventDeactivate, Data: map[string]interface{}{"reason": "r"}, PreviousEvent: prevDigest, Proof: []Proof{validProof()}}
	log, err := AppendEntry(log, deactivate)
	if err != nil {
		t.Fatalf("append deactivate failed: %v", err)
	}

	prevDigest2, _ := PreviousDigestOf(log.Events[1])
	another := EventEntry{Type: EventUpdate, Data: map[string]interface{}{}, PreviousEvent: prevDigest2, Proof: []Proof{validProof()}}
	if _, err := AppendEntry(log, another); err != ErrSealed {
		t.Fatalf("expected ErrSealed, got %v", err)
	}
}

func TestAppendEntryDoesNotMutateInput(t *testing.T) {
	var log EventLog
	create := EventEntry{Type: EventCreate, Data: map[string]interface{}{"name": "x"}, Proof: []Proof{validProof()}}
	log, _ = AppendEntry(log, create)
	before := len(log.Events)

	prevDigest, _ := PreviousDigestOf(log.Events[0])
	update := EventEntry{Type: EventUpdate, Data: map[string]interface{}{}, PreviousEvent: prevDigest, Proof: []Proof{validProof()}}
	if _, err := AppendEntry(log, update); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if len(log.Events) != before {
		t.Fatalf("expected input log unmutated, had %d events, now %d", before, len(log.Events))
	}
}
