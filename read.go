// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

// Read loads addr's current value, helping any in-flight RDCSS or
// MwCAS descriptor it encounters along the way until a plain payload
// can be returned (spec.md §4.4). Every MwCAS target must be read
// through this function rather than loaded directly (invariant W-1).
func Read[T any](addr *AtomicWord, opts ...Option) T {
	cfg := buildConfig(opts...)
	return ReadWithConfig[T](&cfg, addr)
}

// ReadWithConfig is Read with an explicit, pre-built Config, avoiding
// the per-call Option allocation when a caller already holds one (e.g.
// a Manager reading through its own configuration).
func ReadWithConfig[T any](cfg *Config, addr *AtomicWord) T {
	spins := 0
	for {
		w := addr.Load()
		switch {
		case w.IsRDCSS():
			w.rdcssPointer().helpComplete()
			spinOrSleep(cfg, &spins)
		case w.IsMwCAS():
			w.mwcasPointer().Commit()
			spinOrSleep(cfg, &spins)
		default:
			return AsPayload[T](w)
		}
	}
}
