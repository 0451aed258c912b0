// Copyright 2025 Certen Protocol

package layer

import "errors"

var (
	// ErrIllegalTransition is raised when migrate is attempted from a
	// layer that does not permit it: webvh migration from any layer but
	// peer, or btco migration from any layer but webvh (so peer→btco
	// directly, and anything from btco, are rejected).
	ErrIllegalTransition = errors.New("layer: illegal layer transition")

	// ErrInvalidDomain is raised when a webvh migration's domain fails
	// hostname validation.
	ErrInvalidDomain = errors.New("layer: invalid domain")
)
