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

package ctxfield

import (
	"strings"
	"sync"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/logging"
)

// Bindings is one scope's set of default provider bindings. The tracer
// keeps two instances: one for the session scope and one for the
// event-notifier-group scope. The provider registry pushes callbacks here
// on registration and resets them on unregistration.
//
// Setting a binding also rebinds every already-published field whose
// name-prefix matches, which is what makes late binding work: a context
// field enabled before its provider loads starts on the no-op stand-in
// and switches to the live callbacks the moment the provider registers.
type Bindings struct {
	cfg apis.Config

	// defaults maps a bare provider name to its current callbacks;
	// reads are lock-free.
	defaults sync.Map // string -> apis.Callbacks

	// mu guards arrays. Rebinds already serialize on the registry lock;
	// this only protects Attach/Detach racing a rebind.
	mu     sync.Mutex
	arrays []*Array
}

// NewBindings constructs an empty binding set for one scope.
func NewBindings(cfg apis.Config) *Bindings {
	return &Bindings{cfg: cfg}
}

// Ensure Bindings implements apis.BindingSet.
var _ apis.BindingSet = (*Bindings)(nil)

// Attach adds a context array to the scope so future (re)bindings reach
// its fields.
func (b *Bindings) Attach(a *Array) {
	if a == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.arrays = append(b.arrays, a)
}

// Detach removes a context array from the scope at teardown.
func (b *Bindings) Detach(a *Array) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, cur := range b.arrays {
		if cur == a {
			b.arrays = append(b.arrays[:i], b.arrays[i+1:]...)
			return
		}
	}
}

// SetProvider binds name to cb as the scope default and rebinds every
// published field whose name-prefix matches name.
func (b *Bindings) SetProvider(name string, cb apis.Callbacks) {
	if cb == nil {
		cb = apis.Noop{}
	}
	b.defaults.Store(name, cb)
	b.rebind(name, cb)
}

// ResetProvider rebinds name, and all matching published fields, back to
// the no-op stand-in.
func (b *Bindings) ResetProvider(name string) {
	b.defaults.Delete(name)
	b.rebind(name, apis.Noop{})
}

// Binding returns the current default callbacks for a (possibly
// qualified) name, or the no-op stand-in when none is bound.
func (b *Bindings) Binding(name string) apis.Callbacks {
	key := prefixOf(name, b.cfg.Separator)
	if cb, ok := b.defaults.Load(key); ok {
		return cb.(apis.Callbacks)
	}
	return apis.Noop{}
}

// rebind swaps the callback cell of every attached field whose
// name-prefix matches name.
func (b *Bindings) rebind(name string, cb apis.Callbacks) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, a := range b.arrays {
		for _, f := range a.Fields() {
			if prefixOf(f.Name(), b.cfg.Separator) == name {
				f.rebind(cb)
				n++
			}
		}
	}
	if n > 0 {
		logging.Global().Debug("rebound context fields",
			"name", name, "fields", n)
	}
}

// prefixOf returns the substring of name preceding the first separator.
func prefixOf(name string, sep byte) string {
	if i := strings.IndexByte(name, sep); i >= 0 {
		return name[:i]
	}
	return name
}
