// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

import "runtime"

// RDCSSDescriptor describes a restricted double-compare single-swap: a
// conditional single-word swap on targetAddr that commits only if
// controlAddr still holds controlExpected at the moment of completion.
// Immutable once published (installed into a target word); embedded
// inside a Descriptor's Entry and never constructed standalone by
// clients.
type RDCSSDescriptor struct {
	controlAddr     *AtomicWord
	controlExpected TaggedWord
	targetAddr      *AtomicWord
	targetExpected  TaggedWord
	targetNew       TaggedWord
}

// rdcss attempts the conditional swap described by desc and returns the
// plain payload that was in *targetAddr immediately before the
// linearization point. The returned word is never RDCSS-tagged.
func rdcss(cfg *Config, desc *RDCSSDescriptor) TaggedWord {
	observed := installRDCSS(cfg, desc)
	if observed == desc.targetExpected {
		desc.helpComplete()
	}
	return observed
}

// installRDCSS performs the install phase (spec.md §4.2 step 1): loop
// CASing targetAddr from targetExpected to a pointer to desc, helping
// any foreign RDCSS descriptor encountered along the way.
func installRDCSS(cfg *Config, desc *RDCSSDescriptor) TaggedWord {
	descWord := FromRDCSSPtr(desc)
	spins := 0
	for {
		cur := desc.targetAddr.Load()
		if cur == desc.targetExpected {
			if desc.targetAddr.CompareAndSwap(cur, descWord) {
				return desc.targetExpected
			}
			// The CAS is a strong CAS, so a failure means the target
			// changed between the load and the CAS: back off, reload
			// and retry.
			spinOrSleep(cfg, &spins)
			continue
		}
		if cur.IsRDCSS() {
			cur.rdcssPointer().helpComplete()
			continue
		}
		// Target moved to something else entirely: installation
		// failed, no commit occurs.
		return cur
	}
}

// helpComplete is the idempotent completion step (spec.md §4.2): any
// thread that observes an RDCSS-tagged word pointing at desc may call
// this safely and concurrently.
func (desc *RDCSSDescriptor) helpComplete() {
	v := desc.controlAddr.Load() // at least acquire
	replacement := desc.targetExpected
	if v == desc.controlExpected {
		replacement = desc.targetNew
	}
	descWord := FromRDCSSPtr(desc)
	desc.targetAddr.CompareAndSwap(descWord, replacement) // ignore result: idempotent
}

// spinOrSleep implements the bounded-spin-then-short-sleep backoff used
// throughout the core (spec.md §4.3 Retry discipline, §4.4 Read Path).
func spinOrSleep(cfg *Config, spins *int) {
	*spins++
	if cfg.RetryBound <= 0 || *spins < cfg.RetryBound {
		runtime.Gosched()
		return
	}
	*spins = 0
	sleepShort(cfg)
}
