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

package apis

// Registry indexes registered context providers by name.
// Keep it minimal so implementations can offer lock-free reads with
// mutex-serialized writes.
type Registry interface {
	// Register adds p to the index and pushes its callbacks into the
	// default binding sets. It fails with an invalid-name error when the
	// name is malformed, and with a busy error on lock contention or when
	// the name is already taken. No partial registration is observable.
	Register(p Provider) error

	// Unregister resets the default binding sets for p's name to the
	// no-op stand-in and unlinks p from the index. It is best-effort: if
	// the serialization lock cannot be taken the provider stays
	// registered and no retry is scheduled.
	Unregister(p Provider)

	// Lookup matches the substring of name preceding the first separator
	// character against registered provider names, so a qualified name
	// like "provider:instance" matches the bare "provider" registration.
	Lookup(name string) (Provider, bool)

	// Providers returns a snapshot for diagnostics and state migration
	// (order is unspecified).
	Providers() []Provider

	// Count returns the number of registered providers.
	Count() int
}

// BindingSet is one scope's set of default provider bindings (the tracer
// keeps one per session scope and one per event-notifier-group scope).
// The registry pushes callbacks into both sets on registration and resets
// them to the no-op stand-in on unregistration.
type BindingSet interface {
	// SetProvider binds name to cb and rebinds any already-published
	// context field whose name-prefix matches name.
	SetProvider(name string, cb Callbacks)

	// ResetProvider rebinds name, and any matching published field, back
	// to the no-op stand-in.
	ResetProvider(name string)
}
