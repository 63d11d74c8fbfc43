package pen

import "errors"

// Package errors for the pen engine.
var (
	// ErrNoSnapshot is returned when the host renderer cannot provide a
	// target's rendered appearance for stamping.
	ErrNoSnapshot = errors.New("pen: target snapshot unavailable")

	// ErrUnknownTarget is returned by operations that require existing
	// pen state when none was ever created for the target.
	ErrUnknownTarget = errors.New("pen: no pen state for target")
)
