/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package actx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/builder"
	"dirpx.dev/actx/config"
	"dirpx.dev/actx/contexts"
	"dirpx.dev/actx/ctxfield"
	"dirpx.dev/actx/resolve"
)

// statics serves the built-in contexts. They are always available, need
// no registration, and resolve after application providers so an
// application can shadow a built-in name.
var statics = resolve.NewStaticStrategy(
	contexts.VTID(),
	contexts.VPID(),
	contexts.Procname(),
	contexts.CPUID(),
	contexts.Timestamp(nil),
	contexts.NamespaceInode(contexts.CgroupNS),
	contexts.NamespaceInode(contexts.IPCNS),
	contexts.NamespaceInode(contexts.MntNS),
	contexts.NamespaceInode(contexts.NetNS),
	contexts.NamespaceInode(contexts.PIDNS),
	contexts.NamespaceInode(contexts.TimeNS),
	contexts.NamespaceInode(contexts.UserNS),
	contexts.NamespaceInode(contexts.UTSNS),
)

// init initializes the global actx state.
func init() {
	// Initialize state with default cfg, binding sets and reg.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.session = b.BuildBindings(s.cfg, nil, nil)
	s.notifier = b.BuildBindings(s.cfg, nil, nil)
	s.reg = b.BuildRegistry(s.cfg, nil, s.session, s.notifier, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("actx: builder returned nil registry")
	// ErrNilBindings is returned when a builder returns a nil binding set.
	ErrNilBindings = errors.New("actx: builder returned nil binding set")
)

// Register adds p to the global reg and pushes its callbacks into both
// global binding sets, rebinding any matching enabled context fields.
// This is a convenience wrapper around the global reg.
func Register(p apis.Provider) error {
	return st.Load().reg.Register(p)
}

// Unregister removes p from the global reg, resetting both global
// binding sets for its name. Best-effort under contention.
// This is a convenience wrapper around the global reg.
func Unregister(p apis.Provider) {
	st.Load().reg.Unregister(p)
}

// Lookup finds the provider matching name's prefix in the global reg.
// This is a convenience wrapper around the global reg.
func Lookup(name string) (apis.Provider, bool) {
	return st.Load().reg.Lookup(name)
}

// AddApplicationContext enables the application context named name on
// arr. The name resolves through the global reg first, then the built-in
// static contexts; when nothing matches the field binds to the no-op
// stand-in until a provider registers.
func AddApplicationContext(name string, arr *ctxfield.Array) error {
	s := st.Load()
	return ctxfield.AddApplicationContext(name, s.resolver(), arr)
}

// Resolver returns the name resolution chain for the current snapshot.
func Resolver() ctxfield.Lookuper {
	return st.Load().resolver()
}

func (s *state) resolver() resolve.Chain {
	return resolve.New(s.cfg, resolve.NewRegistryStrategy(s.reg), statics)
}

// NewSessionArray creates a context field array attached to the global
// session binding set, so later provider (un)registrations rebind its
// fields.
func NewSessionArray() *ctxfield.Array {
	return newAttachedArray(st.Load(), func(s *state) apis.BindingSet { return s.session })
}

// NewEventNotifierArray creates a context field array attached to the
// global event notifier binding set.
func NewEventNotifierArray() *ctxfield.Array {
	return newAttachedArray(st.Load(), func(s *state) apis.BindingSet { return s.notifier })
}

func newAttachedArray(s *state, pick func(*state) apis.BindingSet) *ctxfield.Array {
	arr := ctxfield.NewArray(s.cfg)
	if b, ok := pick(s).(*ctxfield.Bindings); ok {
		b.Attach(arr)
	}
	return arr
}

// SessionBindings returns the global session-scope binding set.
func SessionBindings() apis.BindingSet {
	return st.Load().session
}

// NotifierBindings returns the global event-notifier-scope binding set.
func NotifierBindings() apis.BindingSet {
	return st.Load().notifier
}

// SetAll explicitly sets all global actx state components.
//
// Nil arguments leave the corresponding component unchanged or rebuilt,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, session, notifier apis.BindingSet, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Binding sets
	nsession := session
	if nsession == nil {
		nsession = nbld.BuildBindings(ncfg, old.session, next)
	}
	nnotifier := notifier
	if nnotifier == nil {
		nnotifier = nbld.BuildBindings(ncfg, old.notifier, next)
	}

	// Registry
	nreg := reg
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, nsession, nnotifier, next)
	}

	// Ensure non-nil reg and binding sets.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nsession == nil || nnotifier == nil {
		panic(ErrNilBindings)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:      ncfg,
			ext:      next,
			reg:      nreg,
			session:  nsession,
			notifier: nnotifier,
			bld:      nbld,
		},
	)
}

// Config returns the global actx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global actx configuration to cfg.
// It rebuilds the global binding sets and reg using the new
// configuration; registered providers migrate into the new reg.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new binding sets and reg based on the new cfg and old state.
	nsession := b.BuildBindings(cfg, old.session, old.ext)
	nnotifier := b.BuildBindings(cfg, old.notifier, old.ext)
	nreg := b.BuildRegistry(cfg, old.reg, nsession, nnotifier, old.ext)

	// Ensure non-nil reg and binding sets.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nsession == nil || nnotifier == nil {
		panic(ErrNilBindings)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:      cfg,
			ext:      old.ext,
			reg:      nreg,
			session:  nsession,
			notifier: nnotifier,
			bld:      b,
		},
	)
}

// Registry returns the global actx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global actx reg to reg.
// The global binding sets are kept; reg is expected to be wired to them.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:      old.cfg,
			ext:      old.ext,
			reg:      reg,
			session:  old.session,
			notifier: old.notifier,
			bld:      old.bld,
		},
	)
}

// Builder returns the global actx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global actx bld to b.
// It rebuilds the global binding sets and reg using the new builder.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new binding sets and reg based on the new bld and old state.
	nsession := b.BuildBindings(old.cfg, old.session, old.ext)
	nnotifier := b.BuildBindings(old.cfg, old.notifier, old.ext)
	nreg := b.BuildRegistry(old.cfg, old.reg, nsession, nnotifier, old.ext)

	// Ensure non-nil reg and binding sets.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nsession == nil || nnotifier == nil {
		panic(ErrNilBindings)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:      old.cfg,
			ext:      old.ext,
			reg:      nreg,
			session:  nsession,
			notifier: nnotifier,
			bld:      b,
		},
	)
}

// SetExt replaces the extension config and rebuilds the layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new binding sets and reg based on the new ext and old state.
	nsession := b.BuildBindings(old.cfg, old.session, ext)
	nnotifier := b.BuildBindings(old.cfg, old.notifier, ext)
	nreg := b.BuildRegistry(old.cfg, old.reg, nsession, nnotifier, ext)

	// Ensure non-nil reg and binding sets.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nsession == nil || nnotifier == nil {
		panic(ErrNilBindings)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:      old.cfg,
			ext:      ext,
			reg:      nreg,
			session:  nsession,
			notifier: nnotifier,
			bld:      b,
		},
	)
}

// ExtAs returns the global actx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global actx state.
var st atomic.Pointer[state]

// state is the global actx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global actx configuration.
	cfg apis.Config
	// ext is the global actx extension configuration.
	ext any
	// reg is the global actx reg.
	reg apis.Registry
	// session is the session-scope binding set.
	session apis.BindingSet
	// notifier is the event-notifier-scope binding set.
	notifier apis.BindingSet
	// bld is the global actx bld.
	bld apis.Builder
}
