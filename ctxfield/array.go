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
	"errors"
	"sync/atomic"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/config"
)

var (
	// ErrTooManyFields is returned by Append when the array has reached
	// its configured MaxFields bound.
	ErrTooManyFields = errors.New("actx(ctxfield): too many context fields")
)

// Array is the growable, ordered sequence of context fields consumed by
// the recording path. It is append-only during normal operation; removal
// is a rare teardown-only path.
//
// Concurrency: one writer at a time (serialized externally) and any
// number of lock-free readers. Every mutation builds a fresh slice and
// publishes it atomically, so a reader observes a fully-formed array of
// length N or N+1, never a partially constructed element. Replaced
// slices are reclaimed by the garbage collector once no reader can still
// reference them.
type Array struct {
	max    int
	fields atomic.Pointer[[]*Field]
}

// NewArray constructs an empty context array bounded by cfg.MaxFields.
func NewArray(cfg apis.Config) *Array {
	max := cfg.MaxFields
	if max <= 0 {
		max = config.DefaultMaxFields
	}
	a := &Array{max: max}
	empty := make([]*Field, 0)
	a.fields.Store(&empty)
	return a
}

// Fields returns the current snapshot in publication order. The backing
// slice is shared with the array and must not be modified.
func (a *Array) Fields() []*Field {
	return *a.fields.Load()
}

// Len returns the current number of published fields.
func (a *Array) Len() int {
	return len(*a.fields.Load())
}

// Find returns the field with the given qualified name, if present.
// It performs no allocation.
func (a *Array) Find(name string) (*Field, bool) {
	for _, f := range *a.fields.Load() {
		if f.desc.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Append publishes f as the last element via copy-and-replace growth:
// allocate a new slice of length N+1, copy the N existing entries, place
// f last, and atomically publish. Nothing is observable on failure.
// Callers serialize Append/Remove externally.
func (a *Array) Append(f *Field) error {
	old := *a.fields.Load()
	if len(old) >= a.max {
		return ErrTooManyFields
	}
	next := make([]*Field, len(old)+1)
	copy(next, old)
	next[len(old)] = f
	a.fields.Store(&next)
	return nil
}

// Remove unlinks the field with the given name, publishing a copy without
// it. Teardown-only; a no-op when the name is absent. Callers serialize
// Append/Remove externally.
func (a *Array) Remove(name string) {
	old := *a.fields.Load()
	idx := -1
	for i, f := range old {
		if f.desc.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next := make([]*Field, 0, len(old)-1)
	next = append(next, old[:idx]...)
	next = append(next, old[idx+1:]...)
	a.fields.Store(&next)
}

// BlockSize returns the total byte size of the array's context block for
// the current event, walking fields in publication order.
func (a *Array) BlockSize() int {
	n := 0
	for _, f := range *a.fields.Load() {
		n += f.Size()
	}
	return n
}

// RecordBlock serializes the whole context block to sink in publication
// order. Hot path.
func (a *Array) RecordBlock(sink apis.Sink) {
	for _, f := range *a.fields.Load() {
		f.Record(sink)
	}
}
