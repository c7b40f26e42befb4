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

package contexts

import (
	"golang.org/x/sys/unix"

	"dirpx.dev/actx/apis"
)

// vtidValue reads the calling thread's kernel task id.
func vtidValue() apis.Value {
	return apis.Int32Value(int32(unix.Gettid()))
}

// cpuValue reads the cpu the calling thread runs on. The value is only
// a snapshot: the scheduler may migrate the thread immediately after.
func cpuValue() apis.Value {
	cpu, _, err := unix.Getcpu()
	if err != nil {
		return apis.NoneValue()
	}
	return apis.Int32Value(int32(cpu))
}

// nsInodeValue reads the inode backing /proc/self/ns/<ns>, which
// uniquely identifies the namespace while it has members.
func nsInodeValue(ns Namespace) apis.Value {
	var st unix.Stat_t
	if err := unix.Stat("/proc/self/ns/"+string(ns), &st); err != nil {
		return apis.NoneValue()
	}
	return apis.Uint64Value(st.Ino)
}
