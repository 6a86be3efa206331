// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

import "sync/atomic"

// Status values for a Descriptor's status word (spec.md §3). Undecided
// is the zero value of the status word; NewDescriptor also stores it
// explicitly.
const (
	wordUndecided  = TaggedWord(0)
	wordSuccessful = TaggedWord(1)
	wordFailed     = TaggedWord(2)
)

// cacheLineSize is the padding unit used to keep a Descriptor's hot
// fields (status, finished) from false-sharing a cache line with
// whatever follows it in memory (spec.md §5: "MwCAS descriptors should
// be cache-line-aligned (64 bytes ...) and target entries arranged so
// that hot fields do not false-share"). Go has no alignas; padding
// bytes are the idiomatic substitute.
const cacheLineSize = 64

// Descriptor is the outer MwCAS operation: an atomic status word plus
// an ordered list of target entries (spec.md §3/§4.3). Create one with
// NewDescriptor, populate it with AddTarget, then call Commit exactly
// once.
type Descriptor struct {
	status   AtomicWord
	finished atomic.Bool // set once Commit has started; guards AddTarget
	_        [cacheLineSize]byte // pad so cfg/entries below don't share a line with the hot fields above

	cfg     Config
	entries []Entry
}

// NewDescriptor allocates an empty Descriptor. opts override the
// construction-time defaults (MaxTargets, RetryBound, ShortSleep,
// DebugChecks).
func NewDescriptor(opts ...Option) *Descriptor {
	cfg := buildConfig(opts...)
	if cfg.MaxTargets <= 0 {
		cfg.MaxTargets = DefaultMaxTargets
	}
	d := &Descriptor{
		cfg:     cfg,
		entries: make([]Entry, 0, cfg.MaxTargets),
	}
	d.status.Store(wordUndecided)
	return d
}

// Size returns the number of registered entries.
func (d *Descriptor) Size() int {
	return len(d.entries)
}

// AddTarget registers a new MwCAS target: addr is expected to presently
// hold oldVal and will be moved to newVal if Commit succeeds. Returns
// ErrCapacityExceeded once MaxTargets entries are registered, and
// ErrUseAfterCommit if called after Commit has started. Every address
// registered on a single Descriptor must be distinct (invariant D-1);
// violating this is undefined behavior, not detected here.
func AddTarget[T any](d *Descriptor, addr *AtomicWord, oldVal, newVal T, _ ...Ordering) error {
	if d.finished.Load() {
		return ErrUseAfterCommit
	}
	if len(d.entries) == cap(d.entries) {
		return ErrCapacityExceeded
	}
	oldWord := FromPayload(oldVal)
	newWord := FromPayload(newVal)
	if d.cfg.DebugChecks && (oldWord.hasTagBits() || newWord.hasTagBits()) {
		return ErrTagCollision
	}
	d.entries = append(d.entries, Entry{
		addr:   addr,
		oldVal: oldWord,
		newVal: newWord,
		rdcss: RDCSSDescriptor{
			controlAddr:     &d.status,
			controlExpected: wordUndecided,
			targetAddr:      addr,
			targetExpected:  oldWord,
			targetNew:       FromMwCASPtr(d),
		},
	})
	return nil
}

// Commit performs the MwCAS operation over every registered entry and
// returns true iff it linearized as Successful. Commit is idempotent
// and safe to call concurrently by any thread that encounters this
// descriptor while helping (spec.md §4.3): a descriptor that has
// already decided skips straight to Phase 3 (finalize) instead of
// re-running Phase 1/2.
func (d *Descriptor) Commit() bool {
	d.finished.Store(true)

	if d.status.Load() == wordUndecided {
		decision := wordSuccessful

	embed:
		for i := range d.entries {
			entry := &d.entries[i]
			for {
				observed := rdcss(&d.cfg, &entry.rdcss)
				if observed.IsMwCAS() {
					foreign := observed.mwcasPointer()
					if foreign == d {
						// Already embedded by another helper racing on
						// this same entry; move on to the next target.
						break
					}
					foreign.Commit()
					continue
				}
				if observed != entry.oldVal {
					decision = wordFailed
					break embed
				}
				break
			}
		}

		d.status.CompareAndSwap(wordUndecided, decision)
	}

	success := d.status.Load() == wordSuccessful
	descWord := FromMwCASPtr(d)
	for i := range d.entries {
		entry := &d.entries[i]
		final := entry.oldVal
		if success {
			final = entry.newVal
		}
		// A no-op if this entry was never actually embedded (its
		// current value won't be descWord); safe to attempt
		// unconditionally, which is what lets an already-decided
		// descriptor finalize without replaying Phase 1.
		entry.addr.CompareAndSwap(descWord, final)
	}

	return success
}
