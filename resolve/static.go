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
	"strings"

	"dirpx.dev/actx/apis"
)

// NewStaticStrategy creates a Strategy over a fixed set of providers,
// indexed once by name. Nil providers are ignored. Static contexts are
// always available, so they need no registration and no rebinding.
func NewStaticStrategy(providers ...apis.Provider) Strategy {
	m := make(map[string]apis.Provider, len(providers))
	for _, p := range providers {
		if p != nil {
			m[p.Name()] = p
		}
	}
	return &staticStrategy{providers: m}
}

// staticStrategy matches the name's provider prefix against its fixed
// index, using the same prefix rule as the registry.
type staticStrategy struct {
	providers map[string]apis.Provider
}

// Ensure staticStrategy implements Strategy.
var _ Strategy = (*staticStrategy)(nil)

// TryResolve matches the substring of name preceding the first separator
// against the static provider names.
func (s *staticStrategy) TryResolve(name string, cfg apis.Config) (apis.Provider, bool) {
	if name == "" {
		return nil, false
	}
	key := name
	if i := strings.IndexByte(name, cfg.Separator); i >= 0 {
		key = name[:i]
	}
	p, ok := s.providers[key]
	return p, ok
}
