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

package builder_test

import (
	"testing"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/builder"
	"dirpx.dev/actx/config"
	"dirpx.dev/actx/ctxfield"
)

// fixedProvider is a minimal provider for builder tests.
type fixedProvider struct {
	name string
}

func (p *fixedProvider) Name() string { return p.name }

func (p *fixedProvider) Size() int { return 1 }

func (p *fixedProvider) Record(s apis.Sink) { s.AppendByte(1) }

func (p *fixedProvider) Value() apis.Value { return apis.Uint8Value(1) }

// TestBuildRegistry_Basic asserts that BuildRegistry returns a non-nil,
// working Registry that supports Register/Lookup/Providers/Count.
func TestBuildRegistry_Basic(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	// prev may be nil; this must still produce a valid registry.
	reg := b.BuildRegistry(cfg, nil, nil, nil, nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}
	if err := reg.Register(&fixedProvider{name: "$app.p"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, ok := reg.Lookup("$app.p:x"); !ok {
		t.Fatalf("Lookup missed after Register")
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

// TestBuildRegistry_MigratesProviders verifies that providers registered
// in a previous registry survive a rebuild and repopulate the new
// binding sets.
func TestBuildRegistry_MigratesProviders(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	old := b.BuildRegistry(cfg, nil, nil, nil, nil)
	p := &fixedProvider{name: "$app.migrated"}
	if err := old.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}

	session := b.BuildBindings(cfg, nil, nil)
	next := b.BuildRegistry(cfg, old, session, nil, nil)

	if _, ok := next.Lookup("$app.migrated"); !ok {
		t.Fatalf("provider not migrated")
	}
	// The migration re-registration repopulated the new binding set.
	sb, ok := session.(*ctxfield.Bindings)
	if !ok {
		t.Fatalf("BuildBindings returned %T", session)
	}
	if cb := sb.Binding("$app.migrated:x"); cb.Size() != 1 {
		t.Fatalf("binding defaults not repopulated")
	}
}

// TestBuildBindings_Basic asserts that the built set rebinds fields of
// attached arrays.
func TestBuildBindings_Basic(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	set := b.BuildBindings(cfg, nil, nil)
	sb, ok := set.(*ctxfield.Bindings)
	if !ok {
		t.Fatalf("BuildBindings returned %T", set)
	}

	arr := ctxfield.NewArray(cfg)
	sb.Attach(arr)
	if err := ctxfield.AddApplicationContext("$app.x:inst", nil, arr); err != nil {
		t.Fatalf("add: %v", err)
	}
	set.SetProvider("$app.x", &fixedProvider{name: "$app.x"})

	f, _ := arr.Find("$app.x:inst")
	if f.Size() != 1 {
		t.Fatalf("attached field not rebound by built set")
	}
}
