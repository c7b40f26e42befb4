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

package apis

import "math"

// Kind enumerates the runtime value kinds a dynamically-typed context
// field can carry. The concrete kind of such a field is only known at
// record time, so it is serialized as a discriminant preceding the payload.
type Kind uint8

const (
	// KindNone marks an absent value; it serializes with an empty payload.
	KindNone Kind = iota
	// KindInt8 .. KindUint64 are fixed-width integer kinds.
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	// KindFloat32 and KindFloat64 are IEEE-754 floating point kinds.
	KindFloat32
	KindFloat64
	// KindString is a NUL-terminated UTF-8 string.
	KindString

	// NumKinds bounds the valid ordinal range of Kind.
	NumKinds
)

// kindNames is indexed by Kind; order must match the constants above.
var kindNames = [NumKinds]string{
	"none", "int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float", "double", "string",
}

// Valid reports whether k is within the valid ordinal range.
func (k Kind) Valid() bool {
	return k < NumKinds
}

// String returns the canonical kind name, or "invalid" out of range.
func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return kindNames[k]
}

// Value is a tagged runtime value: a Kind plus the raw payload bits.
// Scalar payloads are packed into a single uint64 (floats via their IEEE
// bit patterns); strings are carried alongside. The zero Value has
// KindNone, which serializers must treat as "emit nothing", not an error.
type Value struct {
	kind Kind
	num  uint64
	str  string
}

// NoneValue returns the absent value.
func NoneValue() Value {
	return Value{}
}

// Int8Value returns a KindInt8 value.
func Int8Value(v int8) Value {
	return Value{kind: KindInt8, num: uint64(int64(v))}
}

// Int16Value returns a KindInt16 value.
func Int16Value(v int16) Value {
	return Value{kind: KindInt16, num: uint64(int64(v))}
}

// Int32Value returns a KindInt32 value.
func Int32Value(v int32) Value {
	return Value{kind: KindInt32, num: uint64(int64(v))}
}

// Int64Value returns a KindInt64 value.
func Int64Value(v int64) Value {
	return Value{kind: KindInt64, num: uint64(v)}
}

// Uint8Value returns a KindUint8 value.
func Uint8Value(v uint8) Value {
	return Value{kind: KindUint8, num: uint64(v)}
}

// Uint16Value returns a KindUint16 value.
func Uint16Value(v uint16) Value {
	return Value{kind: KindUint16, num: uint64(v)}
}

// Uint32Value returns a KindUint32 value.
func Uint32Value(v uint32) Value {
	return Value{kind: KindUint32, num: uint64(v)}
}

// Uint64Value returns a KindUint64 value.
func Uint64Value(v uint64) Value {
	return Value{kind: KindUint64, num: v}
}

// Float32Value returns a KindFloat32 value.
func Float32Value(v float32) Value {
	return Value{kind: KindFloat32, num: uint64(math.Float32bits(v))}
}

// Float64Value returns a KindFloat64 value.
func Float64Value(v float64) Value {
	return Value{kind: KindFloat64, num: math.Float64bits(v)}
}

// StringValue returns a KindString value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// Kind returns the discriminant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Bits returns the raw payload bits for scalar kinds.
// For KindNone and KindString the result is zero.
func (v Value) Bits() uint64 {
	return v.num
}

// Int64 interprets the payload as a signed integer.
func (v Value) Int64() int64 {
	return int64(v.num)
}

// Uint64 interprets the payload as an unsigned integer.
func (v Value) Uint64() uint64 {
	return v.num
}

// Float32 interprets the payload as a float32 bit pattern.
func (v Value) Float32() float32 {
	return math.Float32frombits(uint32(v.num))
}

// Float64 interprets the payload as a float64 bit pattern.
func (v Value) Float64() float64 {
	return math.Float64frombits(v.num)
}

// Str returns the string payload; empty for non-string kinds.
func (v Value) Str() string {
	return v.str
}
