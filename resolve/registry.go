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

package resolve

import (
	"dirpx.dev/actx/apis"
)

// NewRegistryStrategy creates a Strategy that consults an apis.Registry.
func NewRegistryStrategy(reg apis.Registry) Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy defers to the registry's own prefix matching, so a
// qualified "provider:instance" name resolves to the bare registration.
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements Strategy.
var _ Strategy = (*registryStrategy)(nil)

// TryResolve looks name up in the registry.
func (s *registryStrategy) TryResolve(name string, _ apis.Config) (apis.Provider, bool) {
	if name == "" || s.reg == nil {
		return nil, false
	}
	return s.reg.Lookup(name)
}
