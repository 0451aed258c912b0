// Copyright 2025 Certen Protocol

package capability

import (
	"context"
	"time"

	"github.com/certen/cel-go/pkg/eventlog"
)

// Ed25519Witness is a reference in-process Witness: it signs the
// digest it is handed with an Ed25519 key and stamps witnessedAt. It
// exercises the witness attachment protocol (§4.E.4) without requiring
// an HTTP round trip.
type Ed25519Witness struct {
	Signer *Ed25519Signer
	Clock  func() time.Time
}

func (w *Ed25519Witness) clock() time.Time {
	if w.Clock != nil {
		return w.Clock()
	}
	return time.Now()
}

// Witness implements Witness.
func (w *Ed25519Witness) Witness(ctx context.Context, digestMultibase string) (eventlog.Proof, error) {
	proof, err := w.Signer.Sign(ctx, []byte(digestMultibase))
	if err != nil {
		return eventlog.Proof{}, err
	}
	proof.WitnessedAt = w.clock().UTC().Format(TimestampLayout)
	return proof, nil
}
