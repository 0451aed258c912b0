// Copyright 2025 Certen Protocol

package wire

import "errors"

// ErrMalformedLog is returned by ParseJSON/ParseCBOR when the input
// does not satisfy the §4.G structural schema: a top-level events
// array, valid event types, a proof array per entry, and required
// string fields on every proof.
var ErrMalformedLog = errors.New("wire: malformed event log")
