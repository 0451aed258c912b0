// Copyright 2025 Certen Protocol

package verify

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/certen/cel-go/pkg/eventlog"
)

// Recorder wraps Run with Prometheus counters, off by default and opt-in
// so a verification-only CLI invocation never pays the registration cost.
type Recorder struct {
	registry             *prometheus.Registry
	verifyTotal          prometheus.Counter
	proofFailuresTotal   prometheus.Counter
	chainBreaksTotal     prometheus.Counter
	witnessFailuresTotal prometheus.Counter
}

// NewRecorder builds a Recorder with its own Prometheus registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		verifyTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cel_verify_total",
			Help: "Total number of EventLog verification runs.",
		}),
		proofFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cel_verify_proof_failures_total",
			Help: "Total number of entries whose proof failed verification.",
		}),
		chainBreaksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cel_verify_chain_breaks_total",
			Help: "Total number of entries whose hash-chain linkage failed verification.",
		}),
		witnessFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cel_verify_witness_failures_total",
			Help: "Total number of entries missing a required witness proof.",
		}),
	}
	reg.MustRegister(r.verifyTotal, r.proofFailuresTotal, r.chainBreaksTotal, r.witnessFailuresTotal)
	return r
}

// Run verifies log exactly like the package-level Run, recording counters
// for the outcome before returning the same Report.
func (r *Recorder) Run(log eventlog.EventLog, opts *Options) Report {
	report := Run(log, opts)
	r.verifyTotal.Inc()
	for _, er := range report.Entries {
		if !er.ChainValid {
			r.chainBreaksTotal.Inc()
		}
		if !er.ProofValid {
			r.proofFailuresTotal.Inc()
		}
		if !er.WitnessValid {
			r.witnessFailuresTotal.Inc()
		}
	}
	return report
}

// Handler exposes the recorder's registry for an HTTP /metrics endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
