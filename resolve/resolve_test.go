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

package resolve_test

import (
	"testing"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/config"
	"dirpx.dev/actx/registry"
	"dirpx.dev/actx/resolve"
)

// fixedProvider is a minimal provider for resolver tests.
type fixedProvider struct {
	name string
}

func (p *fixedProvider) Name() string { return p.name }

func (p *fixedProvider) Size() int { return 0 }

func (p *fixedProvider) Record(apis.Sink) {}

func (p *fixedProvider) Value() apis.Value { return apis.NoneValue() }

// missStrategy never resolves; hitStrategy always resolves to p.
type missStrategy struct{ calls int }

func (s *missStrategy) TryResolve(string, apis.Config) (apis.Provider, bool) {
	s.calls++
	return nil, false
}

type hitStrategy struct{ p apis.Provider }

func (s *hitStrategy) TryResolve(string, apis.Config) (apis.Provider, bool) {
	return s.p, true
}

func TestChain_OrderAndMiss(t *testing.T) {
	cfg := config.DefaultConfig()
	first := &fixedProvider{name: "$app.first"}
	second := &fixedProvider{name: "$app.second"}

	miss := &missStrategy{}
	c := resolve.New(cfg, miss, &hitStrategy{p: first}, &hitStrategy{p: second})
	if p, ok := c.Lookup("$app.x"); !ok || p != apis.Provider(first) {
		t.Fatalf("Lookup = (%v,%v), want first strategy hit", p, ok)
	}
	if miss.calls != 1 {
		t.Fatalf("miss strategy called %d times, want 1", miss.calls)
	}

	empty := resolve.New(cfg, miss)
	if _, ok := empty.Lookup("$app.x"); ok {
		t.Fatalf("all-miss chain resolved")
	}
}

func TestChain_IgnoresNilStrategies(t *testing.T) {
	cfg := config.DefaultConfig()
	p := &fixedProvider{name: "$app.p"}
	c := resolve.New(cfg, nil, &hitStrategy{p: p}, nil)
	if got, ok := c.Lookup("$app.p"); !ok || got != apis.Provider(p) {
		t.Fatalf("chain with nils failed to resolve")
	}
}

func TestRegistryStrategy_WithRealRegistry(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg, nil, nil)
	p := &fixedProvider{name: "$app.myprov"}
	if err := reg.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}

	s := resolve.NewRegistryStrategy(reg)
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"bare", "$app.myprov", true},
		{"qualified", "$app.myprov:instanceA", true},
		{"unknown", "$app.other", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolve(tc.in, cfg)
			if ok != tc.want {
				t.Fatalf("TryResolve(%q) = (%v,%v), want ok=%v", tc.in, got, ok, tc.want)
			}
			if ok && got != apis.Provider(p) {
				t.Fatalf("TryResolve(%q) resolved wrong provider", tc.in)
			}
		})
	}

	if _, ok := resolve.NewRegistryStrategy(nil).TryResolve("$app.myprov", cfg); ok {
		t.Fatalf("nil-registry strategy resolved")
	}
}

func TestStaticStrategy_PrefixMatch(t *testing.T) {
	cfg := config.DefaultConfig()
	vtid := &fixedProvider{name: "$app.vtid"}
	s := resolve.NewStaticStrategy(vtid, nil)

	if got, ok := s.TryResolve("$app.vtid", cfg); !ok || got != apis.Provider(vtid) {
		t.Fatalf("bare static lookup failed")
	}
	if got, ok := s.TryResolve("$app.vtid:worker", cfg); !ok || got != apis.Provider(vtid) {
		t.Fatalf("qualified static lookup failed")
	}
	if _, ok := s.TryResolve("$app.unknown", cfg); ok {
		t.Fatalf("unknown static name resolved")
	}
}

func TestStaticStrategy_CustomSeparator(t *testing.T) {
	cfg := config.NewConfig(config.WithSeparator('/'))
	p := &fixedProvider{name: "$app.p"}
	s := resolve.NewStaticStrategy(p)

	if _, ok := s.TryResolve("$app.p/inst", cfg); !ok {
		t.Fatalf("custom separator prefix not matched")
	}
	// The default separator is now part of the provider segment.
	if _, ok := s.TryResolve("$app.p:inst", cfg); ok {
		t.Fatalf("default separator split despite custom config")
	}
}
