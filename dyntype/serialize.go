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

package dyntype

import (
	"dirpx.dev/actx/apis"
)

// tagSize is the wire size of the discriminant (one-byte container).
const tagSize = 1

// payloadSizes is indexed by apis.Kind; -1 marks variable-length kinds.
var payloadSizes = [apis.NumKinds]int{
	apis.KindNone:    0,
	apis.KindInt8:    1,
	apis.KindInt16:   2,
	apis.KindInt32:   4,
	apis.KindInt64:   8,
	apis.KindUint8:   1,
	apis.KindUint16:  2,
	apis.KindUint32:  4,
	apis.KindUint64:  8,
	apis.KindFloat32: 4,
	apis.KindFloat64: 8,
	apis.KindString:  -1,
}

// TaggedSize returns the number of bytes AppendTagged will write for v:
// the discriminant plus the payload. Invalid kinds size as KindNone.
func TaggedSize(v apis.Value) int {
	k := v.Kind()
	if !k.Valid() {
		return tagSize
	}
	if k == apis.KindString {
		// Payload is the string plus its NUL terminator.
		return tagSize + len(v.Str()) + 1
	}
	return tagSize + payloadSizes[k]
}

// AppendTagged serializes v to sink as a discriminant/payload pair in host
// byte order. It writes exactly TaggedSize(v) bytes and never fails;
// invalid kinds degrade to a bare KindNone discriminant.
func AppendTagged(sink apis.Sink, v apis.Value) {
	k := v.Kind()
	if !k.Valid() {
		sink.AppendByte(byte(apis.KindNone))
		return
	}
	sink.AppendByte(byte(k))
	switch k {
	case apis.KindNone:
		// Empty payload.
	case apis.KindString:
		sink.AppendString(v.Str())
	default:
		sink.AppendUint(v.Bits(), payloadSizes[k])
	}
}
