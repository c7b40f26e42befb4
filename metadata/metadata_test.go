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

package metadata_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/actx/apis"
	"dirpx.dev/actx/metadata"
)

func TestWriteFieldDesc_Integer(t *testing.T) {
	var sb strings.Builder
	err := metadata.WriteFieldDesc(&sb, apis.FieldDesc{
		Name: "count",
		Type: apis.IntegerType{Bits: 32, Signed: true, Base: 10},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, "\tinteger { size = 32; align = 8; signed = 1; base = 10; } count;\n", sb.String())
}

func TestWriteFieldDesc_Float(t *testing.T) {
	var sb strings.Builder
	err := metadata.WriteFieldDesc(&sb, apis.FieldDesc{
		Name: "ratio",
		Type: apis.FloatType{ExpDig: 8, MantDig: 24},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, "floating_point { exp_dig = 8; mant_dig = 24; align = 8; } ratio;\n", sb.String())
}

func TestWriteFieldDesc_String(t *testing.T) {
	var sb strings.Builder
	err := metadata.WriteFieldDesc(&sb, apis.FieldDesc{
		Name: "msg",
		Type: apis.StringType{},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, "string msg;\n", sb.String())
}

func TestWriteFieldDesc_NestedStruct(t *testing.T) {
	var sb strings.Builder
	err := metadata.WriteFieldDesc(&sb, apis.FieldDesc{
		Name: "pair",
		Type: apis.StructType{Fields: []apis.FieldDesc{
			{Name: "a", Type: apis.IntegerType{Bits: 8, Base: 10}},
			{Name: "b", Type: apis.StringType{}},
		}},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, "struct {\n\tinteger { size = 8; align = 8; signed = 0; base = 10; } a;\n\tstring b;\n} pair;\n", sb.String())
}

func TestWriteFieldDesc_EmptyStruct(t *testing.T) {
	var sb strings.Builder
	err := metadata.WriteFieldDesc(&sb, apis.FieldDesc{
		Name: "nothing",
		Type: apis.StructType{},
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, "struct {} nothing;\n", sb.String())
}

func TestWriteFieldDesc_DynamicRejected(t *testing.T) {
	var sb strings.Builder
	err := metadata.WriteFieldDesc(&sb, apis.FieldDesc{
		Name: "dyn",
		Type: apis.DynamicType{},
	}, 0)
	require.Error(t, err)
}

func TestWriteDynamic(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, metadata.WriteDynamic(&sb, "ctx", 0))
	out := sb.String()

	// The discriminant enumeration carries every kind label in ordinal
	// order, over a one-byte container.
	assert.Contains(t, out, "enum dynamic_type_enum : integer { size = 8; align = 8; signed = 1; base = 10; } {")
	for _, label := range []string{
		"_none", "_int8", "_int16", "_int32", "_int64",
		"_uint8", "_uint16", "_uint32", "_uint64",
		"_float", "_double", "_string",
	} {
		assert.Contains(t, out, "\""+label+"\"")
	}
	assert.Less(t, strings.Index(out, "\"_none\" = 0"), strings.Index(out, "\"_string\" = 11"))

	// The variant references the tag and names every branch.
	assert.Contains(t, out, "} _ctx_tag;\n")
	assert.Contains(t, out, "variant <_ctx_tag> {")
	assert.Contains(t, out, "struct {} _none;")
	assert.Contains(t, out, "integer { size = 8; align = 8; signed = 1; base = 10; } _int8;")
	assert.Contains(t, out, "floating_point { exp_dig = 11; mant_dig = 53; align = 8; } _double;")
	assert.Contains(t, out, "string _string;")
	assert.Contains(t, out, "} ctx;\n")
}

// errWriter fails after n bytes to exercise the sticky error path.
type errWriter struct {
	left int
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.left <= 0 {
		return 0, errors.New("full")
	}
	w.left -= len(p)
	return len(p), nil
}

func TestWriteDynamic_PropagatesWriteError(t *testing.T) {
	err := metadata.WriteDynamic(&errWriter{left: 10}, "ctx", 0)
	require.Error(t, err)
}
