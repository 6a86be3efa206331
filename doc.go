// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

// Package mwcas implements a lock-free multi-word compare-and-swap
// (MwCAS) primitive: it atomically updates an arbitrary fixed-size set
// of word-sized memory locations as if by a single compare-and-swap,
// built entirely on top of the hardware's single-word CAS.
//
// The algorithm follows Harris, Fraser & Pratt, "A Practical Multi-Word
// Compare-and-Swap Operation" (2002): an inner restricted
// double-compare single-swap (RDCSS) splices descriptors onto target
// words atomically with respect to an outer MwCAS descriptor's status
// word, and the outer MwCAS protocol uses RDCSS to embed, decide, and
// finalize a descriptor across every target.
//
// Safe reclamation of retired descriptors, application-level
// allocation, and any CLI/config/logging layer around the primitive are
// out of scope for the core; see Reclaimer for the reclamation contract.
package mwcas
