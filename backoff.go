// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

import "time"

// sleepShort is the fallback once a caller's spin count has crossed
// RetryBound; mirrors the teacher's spin-threshold-then-yield shape
// (cRDSCHDTHRESHOLD/cWRSCHDTHRESHOLD in the ring-buffer reference),
// generalized from runtime.Gosched into a short, bounded sleep per
// spec.md's RETRY_BOUND/SHORT_SLEEP_MICROS knobs.
func sleepShort(cfg *Config) {
	d := cfg.ShortSleep
	if d <= 0 {
		d = DefaultShortSleepMicros * time.Microsecond
	}
	time.Sleep(d)
}
