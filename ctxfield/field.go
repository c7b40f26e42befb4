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

// Package ctxfield holds the context-field machinery of the tracer: the
// Field type, the growable concurrently-readable Array it is published
// into, the scoped default-binding sets, and the application-context
// builder.
package ctxfield

import (
	"sync/atomic"

	"dirpx.dev/actx/apis"
)

// Field is one published, serializable element of an event's extra
// context data. Its descriptor is immutable after publication; only the
// callback cell may be swapped, and only by a BindingSet whose writes are
// serialized externally. Readers load the cell without locking.
type Field struct {
	desc apis.FieldDesc
	cb   atomic.Pointer[apis.Callbacks]
}

// newField binds desc to cb. cb must be non-nil (use apis.Noop{}).
func newField(desc apis.FieldDesc, cb apis.Callbacks) *Field {
	f := &Field{desc: desc}
	f.cb.Store(&cb)
	return f
}

// Name returns the field's qualified name.
func (f *Field) Name() string {
	return f.desc.Name
}

// Descriptor returns the field's immutable descriptor.
func (f *Field) Descriptor() apis.FieldDesc {
	return f.desc
}

// Callbacks returns the currently bound callback triple.
func (f *Field) Callbacks() apis.Callbacks {
	return *f.cb.Load()
}

// Size returns the number of bytes Record will write for the current event.
func (f *Field) Size() int {
	return f.Callbacks().Size()
}

// Record serializes the field's current value to sink. Hot path.
func (f *Field) Record(sink apis.Sink) {
	f.Callbacks().Record(sink)
}

// Value returns a side-effect-free snapshot of the field's current value.
func (f *Field) Value() apis.Value {
	return f.Callbacks().Value()
}

// rebind swaps the callback cell. Callers serialize writes externally.
func (f *Field) rebind(cb apis.Callbacks) {
	f.cb.Store(&cb)
}
