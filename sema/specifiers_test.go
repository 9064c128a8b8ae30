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

package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonkingfr/uccgo/ast"
)

// chain builds a specifier chain from opcodes in source order.
func chain(ops ...ast.Opcode) *ast.TypeExp {
	var head, tail *ast.TypeExp
	for _, op := range ops {
		n := &ast.TypeExp{Op: op}
		if head == nil {
			head = n
		} else {
			tail.Child = n
		}
		tail = n
	}
	return head
}

func specOps(head *ast.TypeExp) []ast.Opcode {
	var ops []ast.Opcode
	for e := head; e != nil; e = e.Child {
		ops = append(ops, e.Op)
	}
	return ops
}

func TestAnalyzeDeclSpecsUnsignedShortInt(t *testing.T) {
	// unsigned short int x; -> canonicalizes to a single UnsignedShort node.
	c := NewContext()
	head := chain(ast.Unsigned, ast.Short, ast.Int)
	require.NoError(t, c.AnalyzeDeclSpecs(head))
	assert.Equal(t, []ast.Opcode{ast.UnsignedShort}, specOps(head))
}

func TestAnalyzeDeclSpecsPlainInt(t *testing.T) {
	c := NewContext()
	head := chain(ast.Int)
	require.NoError(t, c.AnalyzeDeclSpecs(head))
	assert.Equal(t, []ast.Opcode{ast.Int}, specOps(head))
}

func TestAnalyzeDeclSpecsSignedRewritesToInt(t *testing.T) {
	c := NewContext()
	head := chain(ast.Signed)
	require.NoError(t, c.AnalyzeDeclSpecs(head))
	assert.Equal(t, []ast.Opcode{ast.Int}, specOps(head))
}

func TestAnalyzeDeclSpecsUnsignedChar(t *testing.T) {
	c := NewContext()
	head := chain(ast.Char, ast.Unsigned)
	require.NoError(t, c.AnalyzeDeclSpecs(head))
	assert.Equal(t, []ast.Opcode{ast.UnsignedChar}, specOps(head))
}

func TestAnalyzeDeclSpecsLongLongIsRejected(t *testing.T) {
	// this module targets C89/C99: a second LONG in the SIZE state is an error,
	// not a silent acceptance of C99's "long long".
	c := NewContext()
	head := chain(ast.Long, ast.Long)
	assert.Error(t, c.AnalyzeDeclSpecs(head))
}

func TestAnalyzeDeclSpecsMissingTypeSpecifier(t *testing.T) {
	c := NewContext()
	head := chain(ast.Static)
	assert.Error(t, c.AnalyzeDeclSpecs(head))
}

func TestAnalyzeDeclSpecsDuplicateStorageClass(t *testing.T) {
	c := NewContext()
	head := chain(ast.Static, ast.Extern, ast.Int)
	assert.Error(t, c.AnalyzeDeclSpecs(head))
}

func TestAnalyzeDeclSpecsMergesDuplicateQualifiers(t *testing.T) {
	c := NewContext()
	head := chain(ast.Const, ast.Const, ast.Int)
	require.NoError(t, c.AnalyzeDeclSpecs(head))
	qual := ast.GetTypeQual(head)
	require.NotNil(t, qual)
	assert.Equal(t, ast.Const, qual.Op)
}

func TestAnalyzeDeclSpecsMixedQualifiersPromoteToConstVolatile(t *testing.T) {
	c := NewContext()
	head := chain(ast.Const, ast.Volatile, ast.Int)
	require.NoError(t, c.AnalyzeDeclSpecs(head))
	qual := ast.GetTypeQual(head)
	require.NotNil(t, qual)
	assert.Equal(t, ast.ConstVolatile, qual.Op)
}

func TestAnalyzeDeclSpecsIdempotent(t *testing.T) {
	c := NewContext()
	head := chain(ast.Unsigned, ast.Long)
	require.NoError(t, c.AnalyzeDeclSpecs(head))
	first := specOps(head)

	require.NoError(t, c.AnalyzeDeclSpecs(head))
	assert.Equal(t, first, specOps(head))
}
