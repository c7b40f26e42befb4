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

// Package contexts provides ready-made context providers for common
// process-level values (thread id, pid, process name, cpu, namespaces)
// plus adapters for building custom providers from plain functions.
//
// All stock providers use the tagged runtime encoding, so they can be
// registered and attached to context fields like any application
// provider. On platforms where a source is unavailable the provider
// reports the absent value, which serializes as an empty payload rather
// than failing.
package contexts

import (
	"os"
	"path/filepath"

	"github.com/zoobzio/clockz"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/dyntype"
)

// funcsProvider adapts three plain functions into an apis.Provider.
type funcsProvider struct {
	name   string
	size   func() int
	record func(apis.Sink)
	value  func() apis.Value
}

// NewProvider builds a provider from explicit size/record/value
// callbacks. Nil callbacks degrade to the no-op behavior for that
// operation.
func NewProvider(name string, size func() int, record func(apis.Sink), value func() apis.Value) apis.Provider {
	return &funcsProvider{name: name, size: size, record: record, value: value}
}

// NewValueProvider builds a provider from a single value snapshot
// function; Size and Record derive from the tagged encoding, so the
// invariant "Record writes exactly Size() bytes" holds by construction.
func NewValueProvider(name string, fn func() apis.Value) apis.Provider {
	return NewProvider(name,
		func() int { return dyntype.TaggedSize(fn()) },
		func(sink apis.Sink) { dyntype.AppendTagged(sink, fn()) },
		fn,
	)
}

func (p *funcsProvider) Name() string {
	return p.name
}

func (p *funcsProvider) Size() int {
	if p.size == nil {
		return 0
	}
	return p.size()
}

func (p *funcsProvider) Record(sink apis.Sink) {
	if p.record != nil {
		p.record(sink)
	}
}

func (p *funcsProvider) Value() apis.Value {
	if p.value == nil {
		return apis.NoneValue()
	}
	return p.value()
}

// Ensure funcsProvider implements apis.Provider.
var _ apis.Provider = (*funcsProvider)(nil)

// VPID returns a provider reporting the process id, named "$app.vpid".
func VPID() apis.Provider {
	return NewValueProvider("$app.vpid", func() apis.Value {
		return apis.Int32Value(int32(os.Getpid()))
	})
}

// Procname returns a provider reporting the process name, named
// "$app.procname".
func Procname() apis.Provider {
	return NewValueProvider("$app.procname", func() apis.Value {
		return apis.StringValue(filepath.Base(os.Args[0]))
	})
}

// Timestamp returns a provider reporting wall-clock nanoseconds, named
// "$app.timestamp". A nil clock uses the real clock; tests inject a fake.
func Timestamp(clock clockz.Clock) apis.Provider {
	if clock == nil {
		clock = clockz.RealClock
	}
	return NewValueProvider("$app.timestamp", func() apis.Value {
		return apis.Int64Value(clock.Now().UnixNano())
	})
}

// VTID returns a provider reporting the calling thread's kernel id,
// named "$app.vtid". Unavailable off Linux; it then reports the absent
// value.
func VTID() apis.Provider {
	return NewValueProvider("$app.vtid", vtidValue)
}

// CPUID returns a provider reporting the current cpu number, named
// "$app.cpu_id". Unavailable off Linux; it then reports the absent value.
func CPUID() apis.Provider {
	return NewValueProvider("$app.cpu_id", cpuValue)
}

// Namespace identifies one of the kernel namespace kinds whose inode
// can be exposed as a context value.
type Namespace string

const (
	CgroupNS Namespace = "cgroup"
	IPCNS    Namespace = "ipc"
	MntNS    Namespace = "mnt"
	NetNS    Namespace = "net"
	PIDNS    Namespace = "pid"
	TimeNS   Namespace = "time"
	UserNS   Namespace = "user"
	UTSNS    Namespace = "uts"
)

// NamespaceInode returns a provider reporting the inode of the calling
// process's ns namespace, named "$app.<ns>_ns". Unavailable off Linux;
// it then reports the absent value.
func NamespaceInode(ns Namespace) apis.Provider {
	return NewValueProvider("$app."+string(ns)+"_ns", func() apis.Value {
		return nsInodeValue(ns)
	})
}
