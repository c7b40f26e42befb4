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

package builder

import (
	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/ctxfield"
	"dirpx.dev/actx/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildBindings builds one scope's binding set for the provided configuration.
// The previous set is not migrated: defaults are repopulated when providers
// are re-registered through BuildRegistry.
func (b *builder) BuildBindings(cfg apis.Config, _ apis.BindingSet, _ any) apis.BindingSet {
	return ctxfield.NewBindings(cfg)
}

// BuildRegistry builds and returns a new apis.Registry wired to the given
// binding sets. If a pre-existing registry is provided, its providers are
// re-registered into the new registry, which also repopulates the binding
// sets' defaults.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry, session, notifier apis.BindingSet, _ any) apis.Registry {
	nreg := registry.New(cfg, session, notifier)
	if prev != nil {
		for _, p := range prev.Providers() {
			_ = nreg.Register(p)
		}
	}
	return nreg
}
