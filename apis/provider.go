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

// Sink receives the serialized bytes of a context field on the hot
// recording path. Implementations must not block; multi-byte quantities
// use the host byte order.
type Sink interface {
	// AppendByte appends a single byte.
	AppendByte(b byte)
	// AppendUint appends the low size bytes of v in host byte order.
	// size must be 1, 2, 4 or 8.
	AppendUint(v uint64, size int)
	// AppendString appends the bytes of s followed by a NUL terminator.
	AppendString(s string)
}

// Callbacks is the capability triple bound to a context field. A live
// provider implements it with real callbacks; Noop is the stand-in used
// before registration, after unregistration, and for unmatched fields.
type Callbacks interface {
	// Size returns exactly the number of bytes Record will write for the
	// current event. It may depend on per-event state (e.g. the length of
	// a string at this call site).
	Size() int

	// Record writes exactly Size() bytes to sink. It runs on the hot
	// recording path and must not allocate, block, or fail.
	Record(sink Sink)

	// Value returns a side-effect-free snapshot of the current value.
	// It may be called zero or more times without affecting trace output.
	Value() Value
}

// Provider is an application-supplied source of one named context value.
// Its name must start with the reserved application prefix and must not
// contain the separator character. The registry holds a non-owning
// reference to the provider for the duration of its registration.
type Provider interface {
	Callbacks

	// Name returns the provider's registration name.
	Name() string
}

// Noop is the no-op Callbacks stand-in: zero size, empty record, absent
// value. Fields bound to it remain declared in the schema but emit no
// payload, keeping the trace forward and backward compatible.
type Noop struct{}

// Size always returns 0.
func (Noop) Size() int { return 0 }

// Record writes nothing.
func (Noop) Record(Sink) {}

// Value returns the absent value.
func (Noop) Value() Value { return NoneValue() }

// Ensure Noop implements Callbacks.
var _ Callbacks = Noop{}
