// Copyright 2025 Certen Protocol

package celalg

import (
	"context"
	"testing"

	"github.com/certen/cel-go/pkg/eventlog"
)

func TestUpdateChainsOntoLastEntry(t *testing.T) {
	log, err := Create(context.Background(), fakeSigner{}, map[string]interface{}{"name": "widget"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	log, err = Update(context.Background(), fakeSigner{}, log, map[string]interface{}{"name": "widget-2"}, &UpdateOptions{Now: fixedClock})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(log.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(log.Events))
	}

	second := log.Events[1]
	if second.Type != eventlog.EventUpdate {
		t.Errorf("expected update event, got %v", second.Type)
	}
	if second.Data["operation"] != OperationResourceUpdated {
		t.Errorf("expected operation=%q, got %v", OperationResourceUpdated, second.Data["operation"])
	}
	if _, ok := second.Data["updatedAt"].(string); !ok {
		t.Errorf("expected updatedAt to be stamped as a string, got %v", second.Data["updatedAt"])
	}

	wantPrev, err := eventlog.PreviousDigestOf(log.Events[0])
	if err != nil {
		t.Fatalf("digest: %v", err)
	}
	if second.PreviousEvent != wantPrev {
		t.Errorf("expected previousEvent %q, got %q", wantPrev, second.PreviousEvent)
	}
}

func TestUpdateRejectsEmptyLog(t *testing.T) {
	if _, err := Update(context.Background(), fakeSigner{}, eventlog.EventLog{}, map[string]interface{}{}, nil); err != eventlog.ErrEmptyLog {
		t.Fatalf("expected ErrEmptyLog, got %v", err)
	}
}

func TestUpdateRejectsDeactivatedLog(t *testing.T) {
	log, _ := Create(context.Background(), fakeSigner{}, map[string]interface{}{})
	log, err := Deactivate(context.Background(), fakeSigner{}, log, &DeactivateOptions{Now: fixedClock})
	if err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if _, err := Update(context.Background(), fakeSigner{}, log, map[string]interface{}{}, nil); err != eventlog.ErrSealed {
		t.Fatalf("expected ErrSealed, got %v", err)
	}
}
