// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

import "testing"

func BenchmarkCommitTwoTargets(b *testing.B) {
	a := NewAtomicWord(uint64(0))
	bb := NewAtomicWord(uint64(0))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		desc := NewDescriptor()
		_ = AddTarget(desc, a, uint64(i), uint64(i+1))
		_ = AddTarget(desc, bb, uint64(i), uint64(i+1))
		desc.Commit()
	}
}

func BenchmarkRead(b *testing.B) {
	a := NewAtomicWord(uint64(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Read[uint64](a)
	}
}
