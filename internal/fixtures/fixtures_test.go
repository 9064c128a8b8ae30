// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonkingfr/uccgo/ast"
)

func TestDecodePlainInt(t *testing.T) {
	// "int x;"
	doc := []byte(`{"specs": {"op": "int"}, "decl": {"op": "id", "spelling": "x"}}`)
	decl, err := Decode(doc)
	require.NoError(t, err)

	require.NotNil(t, decl.Specs)
	assert.Equal(t, ast.Int, decl.Specs.Op)
	require.NotNil(t, decl.Decl)
	assert.Equal(t, ast.ID, decl.Decl.Op)
	assert.Equal(t, "x", decl.Decl.Spelling)
}

func TestDecodeArrayOfPointersDeclarator(t *testing.T) {
	// "int *a[10];"
	doc := []byte(`{
		"specs": {"op": "int"},
		"decl": {
			"op": "id", "spelling": "a",
			"child": {"op": "subscript", "hasSize": true, "child": {"op": "star"}}
		}
	}`)
	decl, err := Decode(doc)
	require.NoError(t, err)

	require.NotNil(t, decl.Decl.Child)
	assert.Equal(t, ast.Subscript, decl.Decl.Child.Op)
	assert.True(t, decl.Decl.Child.Size != nil)
	require.NotNil(t, decl.Decl.Child.Child)
	assert.Equal(t, ast.Star, decl.Decl.Child.Child.Op)
}

func TestDecodeFunctionParams(t *testing.T) {
	// "int f(int a, char b);"
	doc := []byte(`{
		"specs": {"op": "int"},
		"decl": {
			"op": "id", "spelling": "f",
			"child": {
				"op": "function",
				"params": [
					{"specs": {"op": "int"}, "decl": {"op": "id", "spelling": "a"}},
					{"specs": {"op": "char"}, "decl": {"op": "id", "spelling": "b"}}
				]
			}
		}
	}`)
	decl, err := Decode(doc)
	require.NoError(t, err)

	fn := decl.Decl.Child
	require.NotNil(t, fn.Params)
	assert.Equal(t, 2, fn.Params.Len())
	assert.Equal(t, "a", fn.Params.Decl.Decl.Spelling)
	assert.Equal(t, "b", fn.Params.Next.Decl.Decl.Spelling)
}

func TestDecodeRejectsUnknownOpcode(t *testing.T) {
	_, err := Decode([]byte(`{"specs": {"op": "bogus"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown opcode")
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	assert.Error(t, err)
}

func TestDecodeDeclListParsesMembers(t *testing.T) {
	doc := []byte(`[
		{"specs": {"op": "int"}, "decl": {"op": "id", "spelling": "m1"}},
		{"specs": {"op": "char"}, "decl": {"op": "id", "spelling": "m2"}}
	]`)
	members, err := DecodeDeclList(doc)
	require.NoError(t, err)
	assert.Equal(t, 2, members.Len())
	assert.Equal(t, "m1", members.Decl.Decl.Spelling)
	assert.Equal(t, "m2", members.Next.Decl.Decl.Spelling)
}

func TestEncodeRoundTripsPlainDeclaration(t *testing.T) {
	decl := &ast.Declaration{
		Specs: &ast.TypeExp{Op: ast.Int},
		Decl:  &ast.TypeExp{Op: ast.ID, Spelling: "x"},
	}
	data, err := Encode(decl)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, ast.Int, back.Specs.Op)
	assert.Equal(t, ast.ID, back.Decl.Op)
	assert.Equal(t, "x", back.Decl.Spelling)
}

func TestEncodeRoundTripsQualifiedPointer(t *testing.T) {
	decl := &ast.Declaration{
		Specs: &ast.TypeExp{Op: ast.Int},
		Decl: &ast.TypeExp{Op: ast.ID, Spelling: "p", Child: &ast.TypeExp{
			Op:   ast.Star,
			Qual: &ast.TypeExp{Op: ast.Const},
		}},
	}
	data, err := Encode(decl)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	require.NotNil(t, back.Decl.Child)
	assert.Equal(t, ast.Star, back.Decl.Child.Op)
	require.NotNil(t, back.Decl.Child.Qual)
	assert.Equal(t, ast.Const, back.Decl.Child.Qual.Op)
}

func TestEncodeNilDeclaratorOmitsField(t *testing.T) {
	decl := &ast.Declaration{Specs: &ast.TypeExp{Op: ast.Int}}
	data, err := Encode(decl)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"decl"`)
}
