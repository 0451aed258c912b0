// Copyright 2025 Certen Protocol

package celalg

import (
	"github.com/certen/cel-go/pkg/eventlog"
	"github.com/certen/cel-go/pkg/verify"
)

// Verify runs the verification engine over log and returns its report.
// It is a thin convenience wrapper so callers that already import
// celalg for create/update/deactivate/witness don't need a second
// import just to check a log's validity.
func Verify(log eventlog.EventLog, opts *verify.Options) verify.Report {
	return verify.Run(log, opts)
}
