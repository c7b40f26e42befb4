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

package registry

import (
	"errors"
	"strings"
	"sync"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/config"
	"dirpx.dev/actx/logging"
)

var (
	// ErrInvalidName is returned when a provider name lacks the reserved
	// application prefix or contains the separator character.
	ErrInvalidName = errors.New("actx(registry): invalid provider name")
	// ErrBusy is returned on serialization-lock contention and on name
	// collision alike. It is transient from the caller's point of view:
	// try later, possibly after the competing registration is gone.
	ErrBusy = errors.New("actx(registry): registry busy")
	// ErrNilProvider is returned when a nil provider is passed.
	ErrNilProvider = errors.New("actx(registry): nil provider provided")
)

// New constructs a Registry validating names against cfg and pushing
// default bindings into the given session- and event-notifier-group-scoped
// sets. Either set may be nil when that scope is not in use.
func New(cfg apis.Config, session, notifier apis.BindingSet) apis.Registry {
	if cfg.AppPrefix == "" {
		cfg.AppPrefix = config.DefaultAppPrefix
	}
	if cfg.Separator == 0 {
		cfg.Separator = config.DefaultSeparator
	}
	return &registry{cfg: cfg, session: session, notifier: notifier}
}

// registry indexes providers by bare name. Reads go through a sync.Map
// and never block; writes serialize on a fallible mutex so the recording
// path can never be stalled behind a registration.
type registry struct {
	// cfg holds the name validation knobs.
	cfg apis.Config
	// session and notifier receive default bindings on (un)registration.
	session  apis.BindingSet
	notifier apis.BindingSet
	// mu serializes writes; acquisition failure surfaces as ErrBusy.
	mu sync.Mutex
	// m maps bare provider name to apis.Provider.
	m sync.Map
	// count tracks the number of registered providers, guarded by mu.
	count int
}

// Register validates p's name, then inserts it and pushes its callbacks
// into both binding-set scopes. Lock contention and name collision both
// surface as ErrBusy. No partial registration is observable: the index
// entry and the binding pushes happen under the same critical section.
func (r *registry) Register(p apis.Provider) error {
	if p == nil {
		return ErrNilProvider
	}
	name := p.Name()

	// Provider name starts with the application prefix.
	if !strings.HasPrefix(name, r.cfg.AppPrefix) {
		return ErrInvalidName
	}
	// Provider name cannot contain the separator character.
	if strings.IndexByte(name, r.cfg.Separator) >= 0 {
		return ErrInvalidName
	}

	if !r.mu.TryLock() {
		return ErrBusy
	}
	defer r.mu.Unlock()

	if _, ok := r.m.Load(name); ok {
		return ErrBusy
	}
	r.m.Store(name, p)
	r.count++

	if r.session != nil {
		r.session.SetProvider(name, p)
	}
	if r.notifier != nil {
		r.notifier.SetProvider(name, p)
	}

	logging.Global().Debug("registered context provider", "name", name)
	return nil
}

// Unregister resets the default bindings for p's name to the no-op
// stand-in and unlinks p. Best-effort: when the lock cannot be taken the
// provider stays registered and no retry is scheduled. This is a
// deliberate tradeoff for a rare, non-fatal teardown race.
func (r *registry) Unregister(p apis.Provider) {
	if p == nil {
		return
	}
	if !r.mu.TryLock() {
		logging.Global().Debug("skipped provider unregistration, registry busy",
			"name", p.Name())
		return
	}
	defer r.mu.Unlock()

	name := p.Name()
	if r.session != nil {
		r.session.ResetProvider(name)
	}
	if r.notifier != nil {
		r.notifier.ResetProvider(name)
	}

	// Unlink only the instance that was registered under this name.
	if cur, ok := r.m.Load(name); ok && cur.(apis.Provider) == p {
		r.m.Delete(name)
		r.count--
	}

	logging.Global().Debug("unregistered context provider", "name", name)
}

// Lookup matches everything before the first separator character as the
// key, so a qualified name like "provider:instance" matches the bare
// "provider" registration. Reads are lock-free over a stable snapshot.
func (r *registry) Lookup(name string) (apis.Provider, bool) {
	key := name
	if i := strings.IndexByte(name, r.cfg.Separator); i >= 0 {
		key = name[:i]
	}
	if v, ok := r.m.Load(key); ok {
		return v.(apis.Provider), true
	}
	return nil, false
}

// Providers returns a snapshot for diagnostics and migration (order is
// unspecified).
func (r *registry) Providers() []apis.Provider {
	out := make([]apis.Provider, 0, r.Count())
	r.m.Range(func(_, value any) bool {
		out = append(out, value.(apis.Provider))
		return true
	})
	return out
}

// Count returns the number of registered providers.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
