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

// Package resolve turns context field names into providers by trying an
// ordered set of strategies: typically the application provider registry
// first, then the built-in static contexts. Enabling a context field goes
// through one resolver so every attach path agrees on precedence.
package resolve

import (
	"dirpx.dev/actx/apis"
)

// Strategy is one rule for resolving a context field name to a provider.
type Strategy interface {
	// TryResolve reports the provider serving name, if this strategy
	// recognizes it.
	TryResolve(name string, cfg apis.Config) (apis.Provider, bool)
}

// New constructs a resolver chain that tries the given strategies in order.
// Nil strategies are ignored. The returned chain is safe for concurrent use
// provided strategies themselves are safe for concurrent TryResolve calls.
func New(cfg apis.Config, strategies ...Strategy) Chain {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return Chain{cfg: cfg, strats: out}
}

// Chain is an immutable, order-preserving resolver over a set of strategies.
type Chain struct {
	cfg    apis.Config
	strats []Strategy
}

// Lookup runs strategies in order until one resolves the name.
// Returns (nil, false) if no strategy produced a provider.
func (c Chain) Lookup(name string) (apis.Provider, bool) {
	for _, s := range c.strats {
		if p, ok := s.TryResolve(name, c.cfg); ok {
			return p, true
		}
	}
	return nil, false
}
