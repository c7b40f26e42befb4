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

//go:build !linux

package contexts

import (
	"dirpx.dev/actx/apis"
)

// Thread ids, cpu numbers and namespace inodes are Linux concepts; other
// platforms report the absent value, which serializes as an empty payload.

func vtidValue() apis.Value {
	return apis.NoneValue()
}

func cpuValue() apis.Value {
	return apis.NoneValue()
}

func nsInodeValue(Namespace) apis.Value {
	return apis.NoneValue()
}
