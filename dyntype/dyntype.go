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

// Package dyntype is the dynamic type table: a process-wide, immutable,
// bijective mapping from apis.Kind ordinals to field descriptors, plus the
// single tag descriptor that discriminates a runtime-typed payload.
//
// Runtime-typed values serialize as [discriminant][payload]. The tag
// enumeration entries are the canonical source of truth for which kind
// name corresponds to which ordinal; the schema generator consumes them
// once, the serializer once per event.
package dyntype

import (
	"dirpx.dev/actx/apis"
)

// TagEnumName is the schema name of the discriminant enumeration.
const TagEnumName = "dynamic_type_enum"

// choices maps each kind ordinal to its immutable field descriptor.
// Built once at init, never reallocated.
var choices = [apis.NumKinds]apis.FieldDesc{
	apis.KindNone:    {Name: "none", Type: apis.StructType{}},
	apis.KindInt8:    {Name: "int8", Type: apis.IntegerType{Bits: 8, Signed: true, Base: 10}},
	apis.KindInt16:   {Name: "int16", Type: apis.IntegerType{Bits: 16, Signed: true, Base: 10}},
	apis.KindInt32:   {Name: "int32", Type: apis.IntegerType{Bits: 32, Signed: true, Base: 10}},
	apis.KindInt64:   {Name: "int64", Type: apis.IntegerType{Bits: 64, Signed: true, Base: 10}},
	apis.KindUint8:   {Name: "uint8", Type: apis.IntegerType{Bits: 8, Base: 10}},
	apis.KindUint16:  {Name: "uint16", Type: apis.IntegerType{Bits: 16, Base: 10}},
	apis.KindUint32:  {Name: "uint32", Type: apis.IntegerType{Bits: 32, Base: 10}},
	apis.KindUint64:  {Name: "uint64", Type: apis.IntegerType{Bits: 64, Base: 10}},
	apis.KindFloat32: {Name: "float", Type: apis.FloatType{ExpDig: 8, MantDig: 24}},
	apis.KindFloat64: {Name: "double", Type: apis.FloatType{ExpDig: 11, MantDig: 53}},
	apis.KindString:  {Name: "string", Type: apis.StringType{}},
}

// tagEntries labels each kind ordinal for the discriminant enumeration.
var tagEntries = [apis.NumKinds]apis.EnumEntry{
	apis.KindNone:    {Label: "_none", Start: 0, End: 0},
	apis.KindInt8:    {Label: "_int8", Start: 1, End: 1},
	apis.KindInt16:   {Label: "_int16", Start: 2, End: 2},
	apis.KindInt32:   {Label: "_int32", Start: 3, End: 3},
	apis.KindInt64:   {Label: "_int64", Start: 4, End: 4},
	apis.KindUint8:   {Label: "_uint8", Start: 5, End: 5},
	apis.KindUint16:  {Label: "_uint16", Start: 6, End: 6},
	apis.KindUint32:  {Label: "_uint32", Start: 7, End: 7},
	apis.KindUint64:  {Label: "_uint64", Start: 8, End: 8},
	apis.KindFloat32: {Label: "_float", Start: 9, End: 9},
	apis.KindFloat64: {Label: "_double", Start: 10, End: 10},
	apis.KindString:  {Label: "_string", Start: 11, End: 11},
}

// tagField is the single discriminant descriptor: a named enumeration with
// one entry per kind over a one-byte container.
var tagField = apis.FieldDesc{
	Type: apis.EnumType{
		Name:      TagEnumName,
		Entries:   tagEntries[:],
		Container: apis.IntegerType{Bits: 8, Signed: true, Base: 10},
	},
}

// FieldFor returns the immutable field descriptor for the given kind
// ordinal, or (nil, false) if kind is outside the valid range. The lookup
// is total, deterministic, and bijective over the valid range. Callers
// must not modify the returned descriptor.
func FieldFor(kind int64) (*apis.FieldDesc, bool) {
	if kind < 0 || kind >= int64(apis.NumKinds) {
		return nil, false
	}
	return &choices[kind], true
}

// Choices returns the complete list of valid field descriptors in ordinal
// order, for one-time schema generation. The result is a fresh slice; the
// descriptors themselves are shared and immutable.
func Choices() []apis.FieldDesc {
	out := make([]apis.FieldDesc, len(choices))
	copy(out, choices[:])
	return out
}

// TagField returns the discriminant descriptor used to encode "which kind
// is present" ahead of a runtime-typed payload.
func TagField() apis.FieldDesc {
	return tagField
}
