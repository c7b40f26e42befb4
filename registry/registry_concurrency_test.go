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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"dirpx.dev/actx/config"
	"dirpx.dev/actx/registry"
)

// TestConcurrentSameNameRegistration verifies that of N racing
// registrations under one name exactly one wins and every loser observes
// ErrBusy, whether it lost to the lock or to the collision check.
func TestConcurrentSameNameRegistration(t *testing.T) {
	reg := registry.New(config.DefaultConfig(), nil, nil)

	const racers = 8
	var (
		wins   atomic.Int32
		busies atomic.Int32
		start  = make(chan struct{})
		wg     sync.WaitGroup
	)

	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			<-start
			// Spin until the outcome is definitive: a transient lock-
			// contention ErrBusy is indistinguishable from a collision
			// ErrBusy by design, so retry until the winner is in place.
			for {
				err := reg.Register(&stubProvider{name: "$app.race"})
				if err == nil {
					wins.Add(1)
					return
				}
				if err != registry.ErrBusy {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if reg.Count() == 1 {
					busies.Add(1)
					return
				}
			}
		}()
	}
	close(start)
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("winners = %d, want exactly 1", wins.Load())
	}
	if busies.Load() != racers-1 {
		t.Fatalf("busy losers = %d, want %d", busies.Load(), racers-1)
	}
}

// TestConcurrentLookupDuringWrites hammers lock-free readers while
// writers register and unregister distinct providers. Readers must always
// observe either a fully registered provider or a clean miss.
func TestConcurrentLookupDuringWrites(t *testing.T) {
	reg := registry.New(config.DefaultConfig(), nil, nil)

	// A stable provider that is never unregistered.
	stable := &stubProvider{name: "$app.stable"}
	if err := reg.Register(stable); err != nil {
		t.Fatalf("register stable: %v", err)
	}

	workers := runtime.GOMAXPROCS(0) * 2
	var wg sync.WaitGroup

	// Readers: the stable provider must never disappear, and a matched
	// provider must always be fully formed.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				p, ok := reg.Lookup("$app.stable:inst")
				if !ok || p.Name() != "$app.stable" {
					t.Errorf("stable provider lost: ok=%v", ok)
					return
				}
				if p, ok := reg.Lookup("$app.churn:inst"); ok && p.Name() != "$app.churn" {
					t.Errorf("partially formed provider observed")
					return
				}
			}
		}()
	}

	// Writers: churn registration of one name; ErrBusy is an accepted
	// transient outcome under TryLock semantics.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				p := &stubProvider{name: "$app.churn"}
				if err := reg.Register(p); err == nil {
					reg.Unregister(p)
				}
			}
		}()
	}

	wg.Wait()
}

// TestConcurrentDistinctNames registers distinct names from many
// goroutines, retrying over transient lock contention, and verifies the
// final index holds all of them.
func TestConcurrentDistinctNames(t *testing.T) {
	reg := registry.New(config.DefaultConfig(), nil, nil)

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			name := fmt.Sprintf("$app.prov%03d", id)
			for {
				err := reg.Register(&stubProvider{name: name})
				if err == nil {
					return
				}
				if err != registry.ErrBusy {
					t.Errorf("register %s: %v", name, err)
					return
				}
				runtime.Gosched()
			}
		}(i)
	}
	wg.Wait()

	if reg.Count() != n {
		t.Fatalf("Count() = %d, want %d", reg.Count(), n)
	}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("$app.prov%03d", i)
		if _, ok := reg.Lookup(name); !ok {
			t.Fatalf("Lookup(%s) missed after concurrent registration", name)
		}
	}
}
