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

// Package metadata renders field descriptors into the textual trace
// schema. The renderer consumes descriptors exactly as published by the
// dynamic type table, so the schema and the serializer can never
// disagree on kind ordinals or payload shapes.
package metadata

import (
	"fmt"
	"io"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/dyntype"
)

// writer wraps an io.Writer with a sticky error so the renderers can
// chain prints without checking every call.
type writer struct {
	w   io.Writer
	err error
}

func (mw *writer) printf(format string, args ...any) {
	if mw.err != nil {
		return
	}
	_, mw.err = fmt.Fprintf(mw.w, format, args...)
}

// WriteFieldDesc renders one named field declaration at the given
// indentation depth, terminated by a newline.
func WriteFieldDesc(w io.Writer, desc apis.FieldDesc, indent int) error {
	mw := &writer{w: w}
	mw.field(desc, indent)
	return mw.err
}

// WriteDynamic renders the schema of a runtime-typed field named name:
// the discriminant enumeration followed by a variant with one branch per
// kind, in ordinal order.
func WriteDynamic(w io.Writer, name string, indent int) error {
	mw := &writer{w: w}

	tag := dyntype.TagField().Type.(apis.EnumType)
	tagName := "_" + name + "_tag"

	mw.indent(indent)
	mw.enumType(tag, indent)
	mw.printf(" %s;\n", tagName)

	mw.indent(indent)
	mw.printf("variant <%s> {\n", tagName)
	for i, choice := range dyntype.Choices() {
		mw.field(apis.FieldDesc{Name: tag.Entries[i].Label, Type: choice.Type}, indent+1)
	}
	mw.indent(indent)
	mw.printf("} %s;\n", name)
	return mw.err
}

func (mw *writer) field(desc apis.FieldDesc, indent int) {
	mw.indent(indent)
	mw.typeDesc(desc.Type, indent)
	mw.printf(" %s;\n", desc.Name)
}

func (mw *writer) typeDesc(t apis.TypeDesc, indent int) {
	switch t := t.(type) {
	case apis.IntegerType:
		mw.integerType(t)
	case apis.FloatType:
		mw.printf("floating_point { exp_dig = %d; mant_dig = %d; align = 8; }", t.ExpDig, t.MantDig)
	case apis.StringType:
		mw.printf("string")
	case apis.StructType:
		if len(t.Fields) == 0 {
			mw.printf("struct {}")
			return
		}
		mw.printf("struct {\n")
		for _, f := range t.Fields {
			mw.field(f, indent+1)
		}
		mw.indent(indent)
		mw.printf("}")
	case apis.EnumType:
		mw.enumType(t, indent)
	case apis.DynamicType:
		// Runtime-typed fields are rendered through WriteDynamic, which
		// needs the field name for the tag reference.
		mw.err = fmt.Errorf("actx(metadata): dynamic type requires WriteDynamic")
	default:
		mw.err = fmt.Errorf("actx(metadata): unknown type descriptor %T", t)
	}
}

func (mw *writer) integerType(t apis.IntegerType) {
	signed := 0
	if t.Signed {
		signed = 1
	}
	mw.printf("integer { size = %d; align = 8; signed = %d; base = %d; }", t.Bits, signed, t.Base)
}

func (mw *writer) enumType(t apis.EnumType, indent int) {
	mw.printf("enum %s : ", t.Name)
	mw.integerType(t.Container)
	mw.printf(" {\n")
	for _, e := range t.Entries {
		mw.indent(indent + 1)
		if e.Start == e.End {
			mw.printf("%q = %d,\n", e.Label, e.Start)
		} else {
			mw.printf("%q = %d ... %d,\n", e.Label, e.Start, e.End)
		}
	}
	mw.indent(indent)
	mw.printf("}")
}

func (mw *writer) indent(n int) {
	for i := 0; i < n; i++ {
		mw.printf("\t")
	}
}
