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

// Package actx provides a global, process-wide application context service
// for a userspace tracer.
//
// actx lets application code publish named context providers (for example
// "$app.myprov") whose values are captured and serialized into every
// recorded event, without the hot recording path ever taking a lock.
// Trace control code independently enables context fields by name; a field
// enabled before its provider loads simply serializes as empty until the
// provider registers.
//
// # Design
//
// The core of actx is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Config: naming rules for application contexts (the required name
//     prefix, the provider/instance separator, and the per-array field
//     limit).
//
//   - Registry: a process-wide index from provider names to callback
//     triples (size, record, value). Reads are lock-free; writes take a
//     non-blocking mutex and fail fast with a busy error rather than
//     waiting.
//
//   - Two BindingSets: the per-scope default bindings (session scope and
//     event notifier scope). The registry pushes provider callbacks into
//     both sets on registration and resets them on unregistration; each
//     set rebinds the already-enabled fields of its attached arrays.
//
//   - Builder: a pluggable factory that constructs Registry and BindingSet
//     instances for a given Config (and optional extension data), and can
//     migrate providers from previous instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means provider lookups and event recording are lock-free on the
// hot path:
//
//	p, ok := actx.Lookup("$app.myprov:instanceA")
//	arr.RecordBlock(sink)
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     Lookup(name string) (apis.Provider, bool)
//     Resolver() ctxfield.Lookuper
//     Registry() apis.Registry
//     SessionBindings() apis.BindingSet
//     NotifierBindings() apis.BindingSet
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     Register(p apis.Provider) error
//     Unregister(p apis.Provider)
//     AddApplicationContext(name string, arr *ctxfield.Array) error
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetAll(...)
//
//     Register/Unregister mutate the registry in place (its index is
//     internally synchronized). The Set* helpers acquire an internal
//     build lock, derive a new snapshot (rebuilding or reusing layers as
//     needed), and then atomically publish that snapshot. Registered
//     providers migrate across rebuilds.
//
//     SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Registry and both BindingSets in one shot.
//     This is mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Introspection:
//
//     Config() apis.Config
//     Builder() apis.Builder
//     ExtAs[T]() (T, bool)
//     // plus Registry().Providers(), Registry().Count(), etc.
//
// # Concurrency model
//
// Reads (Lookup, Registry, SessionBindings, NotifierBindings, and all
// field recording) are wait-free: they load the current *state atomically
// and never take locks. The Registry and BindingSets inside the state are
// themselves concurrency-safe for reads.
//
// Registry writes use a try-lock: a Register racing another writer fails
// with a busy error instead of blocking, and an Unregister racing a
// writer is skipped. This keeps provider registration safe to call from
// constrained contexts such as library constructors.
//
// State writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetAll) take
// a short build mutex, assemble a brand-new state struct, and publish it
// via an atomic pointer swap.
//
// # Context fields
//
// Trace control enables contexts per array (one array per tracing scope):
//
//	arr := actx.NewSessionArray()
//	err := actx.AddApplicationContext("$app.myprov:instanceA", arr)
//
// A field name resolves through a strategy chain: application providers
// from the registry first, then the built-in static contexts (vtid,
// vpid, procname, cpu id, timestamp, namespace inodes). When nothing
// matches the field binds to a no-op stand-in that serializes as zero
// bytes. Arrays
// created through NewSessionArray/NewEventNotifierArray stay attached to
// the corresponding binding set, so later registrations and
// unregistrations rebind their fields in place.
//
// # Extension config
//
// The snapshot also carries an "ext" field. This is an opaque any value
// owned by the embedding binary. actx does not interpret ext. The active
// Builder receives ext on each rebuild, so out-of-tree builders can
// inject custom policy without hacking the actx core.
//
// # Scope
//
// actx is intentionally small. It does not implement trace transport,
// buffering, or session management. It only solves one job:
//
//	"Let applications publish named value providers, and let the tracer
//	 capture those values into events safely and without blocking."
//
// Everything else belongs to higher layers.
package actx
