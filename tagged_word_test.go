// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

import "testing"

type tstpayload struct {
	value int64
}

func TestFromPayloadRoundTrip(t *testing.T) {
	const sval = 8
	w := FromPayload(uint64(sval))
	if w.IsRDCSS() || w.IsMwCAS() {
		t.Fatal("assertion failed, expected untagged word.")
	}
	got := AsPayload[uint64](w)
	if got != sval {
		t.Fatal("assertion failed, expected equal.", got)
	}
}

func TestFromPayloadPointer(t *testing.T) {
	s := &tstpayload{value: 64}
	w := FromPayload(s)
	if w.IsRDCSS() || w.IsMwCAS() {
		t.Fatal("assertion failed, expected untagged word.")
	}
	got := AsPayload[*tstpayload](w)
	if got != s || got.value != 64 {
		t.Fatal("assertion failed, expected pointer round-trip.")
	}
}

func TestFromRDCSSPtrTag(t *testing.T) {
	desc := &RDCSSDescriptor{}
	w := FromRDCSSPtr(desc)
	if !w.IsRDCSS() {
		t.Fatal("assertion failed, expected RDCSS tag set.")
	}
	if w.IsMwCAS() {
		t.Fatal("assertion failed, expected MWCAS tag clear.")
	}
	if w.rdcssPointer() != desc {
		t.Fatal("assertion failed, expected pointer round-trip.")
	}
}

func TestFromMwCASPtrTag(t *testing.T) {
	desc := NewDescriptor()
	w := FromMwCASPtr(desc)
	if !w.IsMwCAS() {
		t.Fatal("assertion failed, expected MWCAS tag set.")
	}
	if w.IsRDCSS() {
		t.Fatal("assertion failed, expected RDCSS tag clear.")
	}
	if w.mwcasPointer() != desc {
		t.Fatal("assertion failed, expected pointer round-trip.")
	}
}

// TestTagExclusivity is property P-3: no Tagged Word ever has both tag
// bits set.
func TestTagExclusivity(t *testing.T) {
	rdcssWord := FromRDCSSPtr(&RDCSSDescriptor{})
	mwcasWord := FromMwCASPtr(NewDescriptor())
	payloadWord := FromPayload(uint64(0x3FFFFFFFFFFFFFFF))

	for _, w := range []TaggedWord{rdcssWord, mwcasWord, payloadWord} {
		if uint64(w)&rdcssTagBit != 0 && uint64(w)&mwcasTagBit != 0 {
			t.Fatal("assertion failed, both tag bits set.", w)
		}
	}
}

func TestAtomicWordLoadStoreCAS(t *testing.T) {
	a := NewAtomicWord(uint64(10))
	if got := AsPayload[uint64](a.Load()); got != 10 {
		t.Fatal("assertion failed, expected 10.", got)
	}
	if !a.CompareAndSwap(FromPayload(uint64(10)), FromPayload(uint64(20))) {
		t.Fatal("assertion failed, expected CAS to succeed.")
	}
	if got := AsPayload[uint64](a.Load()); got != 20 {
		t.Fatal("assertion failed, expected 20.", got)
	}
	if a.CompareAndSwap(FromPayload(uint64(10)), FromPayload(uint64(30))) {
		t.Fatal("assertion failed, expected stale CAS to fail.")
	}
}
