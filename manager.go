// Copyright (c) Database Group, Nagoya University. All rights reserved.
// Licensed under the MIT license.

package mwcas

// Manager bundles configuration and a Reclaimer into the single
// entry point original_source's MwCASManager exposes: begin an epoch,
// build and commit a descriptor, retire it. Using Manager is optional —
// callers that want direct control over descriptor lifetime can call
// NewDescriptor/AddTarget/Commit themselves and drive their own
// Reclaimer.
type Manager struct {
	cfg Config
	gc  Reclaimer
}

// ManagerOption configures a Manager at construction time.
type ManagerOption func(*Manager)

// WithReclaimer overrides the bundled epoch-based Reclaimer.
func WithReclaimer(r Reclaimer) ManagerOption {
	return func(m *Manager) { m.gc = r }
}

// WithDescriptorOptions applies Descriptor-construction Options to
// every descriptor the Manager builds.
func WithDescriptorOptions(opts ...Option) ManagerOption {
	return func(m *Manager) { m.cfg = buildConfig(opts...) }
}

// NewManager constructs a Manager with the bundled epoch-based
// reclaimer unless WithReclaimer overrides it.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg: defaultConfig(),
		gc:  NewEpochReclaimer(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MwCAS begins an epoch guard, builds a fresh Descriptor via build,
// commits it, retires it to the Manager's Reclaimer, and returns
// whether the commit succeeded.
func (m *Manager) MwCAS(build func(*Descriptor)) bool {
	guard := m.gc.BeginEpoch()
	defer guard.End()

	desc := NewDescriptor(descriptorOptions(m.cfg)...)
	build(desc)
	success := desc.Commit()
	AfterCommit(m.gc, desc)

	return success
}

// ReadManaged reads addr through m's configured backoff parameters,
// helping through any descriptor it encounters. A free function rather
// than a method, since Go methods cannot carry their own type
// parameters.
func ReadManaged[T any](m *Manager, addr *AtomicWord) T {
	return ReadWithConfig[T](&m.cfg, addr)
}

func descriptorOptions(cfg Config) []Option {
	return []Option{
		WithMaxTargets(cfg.MaxTargets),
		WithRetryBound(cfg.RetryBound),
		WithShortSleep(cfg.ShortSleep),
		WithDebugChecks(cfg.DebugChecks),
	}
}
