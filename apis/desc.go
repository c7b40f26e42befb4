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

// FieldDesc describes one named, typed event field as it appears in the
// trace schema. Descriptors are immutable once published; consumers must
// treat them as read-only.
type FieldDesc struct {
	// Name is the field name as emitted in the schema.
	Name string
	// Type describes the field's wire type.
	Type TypeDesc
}

// TypeDesc is the closed set of field type descriptors. The set is sealed:
// only the variants below implement it.
type TypeDesc interface {
	isTypeDesc()
}

// IntegerType describes a fixed-width integer field.
type IntegerType struct {
	// Bits is the width in bits (8, 16, 32 or 64).
	Bits int
	// Signed selects two's-complement interpretation.
	Signed bool
	// Base is the preferred display base (10 or 16).
	Base int
}

// FloatType describes an IEEE-754 floating point field by its exponent
// and mantissa digit counts (8/24 for float32, 11/53 for float64).
type FloatType struct {
	ExpDig  int
	MantDig int
}

// StringType describes a NUL-terminated UTF-8 string field.
type StringType struct{}

// StructType describes an inline structure; an empty Fields slice is the
// empty struct used as the "none" payload.
type StructType struct {
	Fields []FieldDesc
}

// EnumType describes a named enumeration over an integer container.
type EnumType struct {
	// Name is the enumeration's schema name.
	Name string
	// Entries maps labels to value ranges, in ordinal order.
	Entries []EnumEntry
	// Container is the integer type carrying the enumeration on the wire.
	Container IntegerType
}

// EnumEntry is a single label/value-range pair of an EnumType.
type EnumEntry struct {
	// Label is the entry's schema label.
	Label string
	// Start and End bound the value range (inclusive); equal for a
	// single-value entry.
	Start int64
	End   int64
}

// DynamicType marks a field whose concrete kind is determined per event at
// record time and serialized as a discriminant/payload pair.
type DynamicType struct{}

func (IntegerType) isTypeDesc() {}
func (FloatType) isTypeDesc()   {}
func (StringType) isTypeDesc()  {}
func (StructType) isTypeDesc()  {}
func (EnumType) isTypeDesc()    {}
func (DynamicType) isTypeDesc() {}
