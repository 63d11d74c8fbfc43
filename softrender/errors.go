// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package softrender

import "errors"

// Package errors for the software renderer.
var (
	// ErrUnknownLayer is returned when updating a layer that was never
	// created or was already destroyed.
	ErrUnknownLayer = errors.New("softrender: unknown layer")

	// ErrNoProvider is returned when no appearance provider is
	// registered for a snapshot target.
	ErrNoProvider = errors.New("softrender: no appearance provider for target")

	// ErrBadSVG is returned when layer content cannot be parsed.
	ErrBadSVG = errors.New("softrender: unparsable svg content")
)
