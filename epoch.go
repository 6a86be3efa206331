// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

import (
	"sync"
	"sync/atomic"
)

// Reclaimer is the contract the core needs from an external safe-memory
// reclamation scheme (spec.md §4.5, out of scope for the core proper): a
// descriptor handed to Retire must not be freed until no thread that
// entered an epoch before that call can still be executing inside the
// core. Callers with their own epoch- or hazard-pointer-based reclaimer
// may implement this interface instead of using the bundled one.
type Reclaimer interface {
	// BeginEpoch marks the calling goroutine as active; it must call
	// End on the returned guard when it leaves the core.
	BeginEpoch() EpochGuard
	// Retire records desc as garbage no longer reachable from new
	// operations, to be freed once every guard active at the time of
	// the call has ended.
	Retire(desc *Descriptor)
}

// EpochGuard scopes a single thread's participation in the reclaimer's
// epoch.
type EpochGuard interface {
	End()
}

// AfterCommit forwards desc to r once the caller no longer needs it,
// per the external interface table in spec.md §6. Manager.MwCAS calls
// this internally; callers driving NewDescriptor/AddTarget/Commit by
// hand should call it themselves once Commit returns.
func AfterCommit(r Reclaimer, desc *Descriptor) {
	r.Retire(desc)
}

// epochReclaimer is a minimal epoch-based Reclaimer satisfying exactly
// the contract above: a global epoch counter, a per-epoch active-guard
// count, and a garbage list per epoch that is only freed once its epoch
// has no active guards and every earlier epoch has already drained.
// This is the default Reclaimer a Manager uses when none is supplied.
type epochReclaimer struct {
	mu      sync.Mutex
	epoch   atomic.Uint64
	active  map[uint64]int64
	garbage map[uint64][]*Descriptor
}

// NewEpochReclaimer constructs the bundled epoch-based reclaimer.
func NewEpochReclaimer() Reclaimer {
	return &epochReclaimer{
		active:  make(map[uint64]int64),
		garbage: make(map[uint64][]*Descriptor),
	}
}

type epochGuard struct {
	r *epochReclaimer
	e uint64
}

func (g *epochGuard) End() {
	g.r.endEpoch(g.e)
}

func (r *epochReclaimer) BeginEpoch() EpochGuard {
	r.mu.Lock()
	e := r.epoch.Load()
	r.active[e]++
	r.mu.Unlock()
	return &epochGuard{r: r, e: e}
}

func (r *epochReclaimer) endEpoch(e uint64) {
	r.mu.Lock()
	r.active[e]--
	if r.active[e] <= 0 {
		delete(r.active, e)
	}
	r.reclaimLocked()
	r.mu.Unlock()
}

func (r *epochReclaimer) Retire(desc *Descriptor) {
	r.mu.Lock()
	e := r.epoch.Load()
	r.garbage[e] = append(r.garbage[e], desc)
	r.epoch.Add(1)
	r.reclaimLocked()
	r.mu.Unlock()
}

// reclaimLocked drops garbage belonging to every epoch strictly below
// the oldest epoch that still has an active guard; those descriptors
// can no longer be observed by any thread inside the core. Caller must
// hold r.mu.
func (r *epochReclaimer) reclaimLocked() {
	var oldestActive uint64 = ^uint64(0)
	for e := range r.active {
		if e < oldestActive {
			oldestActive = e
		}
	}
	for e := range r.garbage {
		if e < oldestActive {
			// Descriptors here are unreachable from target words (they
			// already finalized in Commit) and no guard entered before
			// their retirement is still active: safe to drop.
			delete(r.garbage, e)
		}
	}
}
