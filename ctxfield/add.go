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

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/logging"
)

var (
	// ErrExists is returned when the array already contains a field with
	// the requested name.
	ErrExists = errors.New("actx(ctxfield): context field already exists")
)

// Lookuper is the subset of apis.Registry a new field is resolved
// against. A registry satisfies it directly; so does a resolver chain.
type Lookuper interface {
	Lookup(name string) (apis.Provider, bool)
}

// AddApplicationContext constructs a runtime-typed context field named
// name and publishes it into arr. Always performed before tracing starts,
// since it extends the metadata describing the context.
//
// The field's callbacks are resolved against reg at this moment and
// captured by value: a provider (un)registered later under the same name
// reaches this field only through the binding sets, never through the
// registry. When no provider matches, the field is added anyway, bound to
// the no-op stand-in, and will emit an empty payload until a provider
// appears.
//
// The duplicate check happens before any allocation, and a failed append
// publishes nothing, so no partial state survives any exit path.
func AddApplicationContext(name string, reg Lookuper, arr *Array) error {
	if _, ok := arr.Find(name); ok {
		return ErrExists
	}
	var cb apis.Callbacks = apis.Noop{}
	if reg != nil {
		if p, ok := reg.Lookup(name); ok {
			cb = p
		}
	}
	f := newField(apis.FieldDesc{Name: name, Type: apis.DynamicType{}}, cb)
	if err := arr.Append(f); err != nil {
		return err
	}
	logging.Global().Debug("added application context field", "name", name)
	return nil
}
