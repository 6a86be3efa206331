// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

// Entry is a registered (addr, old, new) triple inside a Descriptor,
// plus the pre-built RDCSSDescriptor used to embed this Descriptor onto
// addr during commit (spec.md §3, invariant D-4).
//
// Entry's fields already sum to 64 bytes (one *AtomicWord word, two
// TaggedWord words, and the embedded 40-byte RDCSSDescriptor), so each
// element of a Descriptor's entries slice already occupies a full cache
// line on its own; no extra padding field is needed to keep adjacent
// entries from false-sharing (spec.md §5).
type Entry struct {
	addr   *AtomicWord
	oldVal TaggedWord
	newVal TaggedWord
	rdcss  RDCSSDescriptor
}
