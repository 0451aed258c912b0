// Copyright 2025 Certen Protocol

package celalg

import (
	"context"
	"testing"

	"github.com/certen/cel-go/pkg/eventlog"
)

func TestDeactivateSealsLog(t *testing.T) {
	log, err := Create(context.Background(), fakeSigner{}, map[string]interface{}{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	log, err = Deactivate(context.Background(), fakeSigner{}, log, &DeactivateOptions{Now: fixedClock, Reason: "superseded"})
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	last := log.Events[len(log.Events)-1]
	if last.Type != eventlog.EventDeactivate {
		t.Fatalf("expected deactivate event, got %v", last.Type)
	}
	if last.Data["reason"] != "superseded" {
		t.Errorf("expected reason=superseded, got %v", last.Data["reason"])
	}
	if _, ok := last.Data["deactivatedAt"].(string); !ok {
		t.Errorf("expected deactivatedAt to be stamped, got %v", last.Data["deactivatedAt"])
	}

	if _, err := Update(context.Background(), fakeSigner{}, log, map[string]interface{}{}, nil); err != eventlog.ErrSealed {
		t.Fatalf("expected subsequent update to fail with ErrSealed, got %v", err)
	}
}

func TestDeactivateAcceptsRDFCCryptosuite(t *testing.T) {
	log, err := Create(context.Background(), fakeSigner{}, map[string]interface{}{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := Deactivate(context.Background(), fakeSigner{cryptosuite: eventlog.CryptosuiteEdDSARDFC2022}, log, nil); err != nil {
		t.Fatalf("expected eddsa-rdfc-2022 deactivate proof to be accepted, got %v", err)
	}
}

func TestDeactivateRejectsAlreadyDeactivated(t *testing.T) {
	log, _ := Create(context.Background(), fakeSigner{}, map[string]interface{}{})
	log, _ = Deactivate(context.Background(), fakeSigner{}, log, nil)
	if _, err := Deactivate(context.Background(), fakeSigner{}, log, nil); err != ErrAlreadyDeactivated {
		t.Fatalf("expected ErrAlreadyDeactivated, got %v", err)
	}
}
