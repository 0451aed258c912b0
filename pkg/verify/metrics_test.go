// Copyright 2025 Certen Protocol

package verify

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCountsFailures(t *testing.T) {
	log, _ := newSignedLog(t)
	broken := log.Events[1]
	broken.PreviousEvent = "u-wrong"
	log.Events[1] = broken

	r := NewRecorder()
	report := r.Run(log, nil)
	if report.Valid {
		t.Fatal("expected an invalid report for a broken chain link")
	}

	if got := testutil.ToFloat64(r.verifyTotal); got != 1 {
		t.Errorf("expected verifyTotal=1, got %v", got)
	}
	if got := testutil.ToFloat64(r.chainBreaksTotal); got != 1 {
		t.Errorf("expected chainBreaksTotal=1, got %v", got)
	}
}

func TestRecorderHandlerServesMetrics(t *testing.T) {
	r := NewRecorder()
	if r.Handler() == nil {
		t.Fatal("expected a non-nil metrics handler")
	}
	if r.Registry() == nil {
		t.Fatal("expected a non-nil registry")
	}
}
