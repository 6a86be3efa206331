// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

import "github.com/pkg/errors"

// Error taxonomy, per spec.md §7. Lost CAS attempts, encountered
// in-flight descriptors, and other contention are expected control flow
// handled internally; they are never surfaced as errors.
var (
	// ErrCapacityExceeded is returned by AddTarget when a descriptor
	// already holds MaxTargets entries.
	ErrCapacityExceeded = errors.New("mwcas: descriptor is at capacity")

	// ErrTagCollision is returned by AddTarget, when DebugChecks is
	// enabled, if a registered payload has one of the reserved tag
	// bits set (invariant D-2).
	ErrTagCollision = errors.New("mwcas: payload collides with reserved tag bits")

	// ErrUseAfterCommit is returned by AddTarget once Commit has been
	// called on the descriptor; registering further targets after
	// commit has started is a programming error.
	ErrUseAfterCommit = errors.New("mwcas: add_target called after commit")
)
