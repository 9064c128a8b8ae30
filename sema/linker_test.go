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
	"github.com/neonkingfr/uccgo/extern"
)

func TestAnalyzeInitDeclaratorFirstSightingIsTentative(t *testing.T) {
	// A plain object declaration at file scope, with no initializer and no
	// extern, is a tentative definition until something else defines it.
	c := NewContext()
	specs := &ast.TypeExp{Op: ast.Int}
	decl := &ast.TypeExp{Op: ast.ID, Spelling: "x"}
	require.NoError(t, c.AnalyzeInitDeclarator(specs, decl, false))

	id := c.Externs.Lookup("x")
	require.NotNil(t, id)
	assert.Equal(t, extern.Tentative, id.Status)
}

func TestAnalyzeInitDeclaratorArrayCompletionSharesSize(t *testing.T) {
	// extern int a[]; int a[10]; : the second declaration drops "extern" and
	// supplies the array's size, so its Subscript node's size expression is
	// composed onto the first declaration's. The second declaration is a
	// bare object declaration following an extern one, with no initializer
	// and no function body, so the identifier's
	// linkage status settles on Tentative, not Defined: only an initializer
	// or a function body would promote it.
	c := NewContext()
	specs1 := &ast.TypeExp{Op: ast.Extern, Child: &ast.TypeExp{Op: ast.Int}}
	decl1 := &ast.TypeExp{Op: ast.ID, Spelling: "a", Child: &ast.TypeExp{Op: ast.Subscript}}
	require.NoError(t, c.AnalyzeInitDeclarator(specs1, decl1, false))
	assert.Equal(t, extern.Referenced, c.Externs.Lookup("a").Status)

	size := new(int)
	specs2 := &ast.TypeExp{Op: ast.Int}
	decl2 := &ast.TypeExp{Op: ast.ID, Spelling: "a", Child: &ast.TypeExp{Op: ast.Subscript, Size: size}}
	require.NoError(t, c.AnalyzeInitDeclarator(specs2, decl2, false))

	assert.Same(t, decl1.Child.Size, decl2.Child.Size)
	assert.Equal(t, extern.Tentative, c.Externs.Lookup("a").Status)
}

func TestAnalyzeInitDeclaratorStaticFollowsNonStaticIsError(t *testing.T) {
	// int x; static int x; : a static declaration cannot follow a prior
	// non-static declaration of the same external identifier.
	c := NewContext()
	specs1 := &ast.TypeExp{Op: ast.Int}
	decl1 := &ast.TypeExp{Op: ast.ID, Spelling: "x"}
	require.NoError(t, c.AnalyzeInitDeclarator(specs1, decl1, false))

	specs2 := &ast.TypeExp{Op: ast.Static, Child: &ast.TypeExp{Op: ast.Int}}
	decl2 := &ast.TypeExp{Op: ast.ID, Spelling: "x"}
	assert.Error(t, c.AnalyzeInitDeclarator(specs2, decl2, false))
}

func TestAnalyzeInitDeclaratorBlockScopeBareRedeclarationAfterExternIsNotItselfChecked(t *testing.T) {
	// { extern int y; int y; } : block scope's own linkage check only fires
	// for extern or function redeclarations; a bare no-linkage redeclaration
	// following an extern one is rejected by scope.Install (reached through
	// AnalyzeDeclarator), not by AnalyzeInitDeclarator.
	c := NewContext()
	require.NoError(t, c.PushScope())

	specs1 := &ast.TypeExp{Op: ast.Extern, Child: &ast.TypeExp{Op: ast.Int}}
	decl1 := &ast.TypeExp{Op: ast.ID, Spelling: "y"}
	require.NoError(t, c.AnalyzeInitDeclarator(specs1, decl1, false))

	specs2 := &ast.TypeExp{Op: ast.Int}
	decl2 := &ast.TypeExp{Op: ast.ID, Spelling: "y"}
	assert.NoError(t, c.AnalyzeInitDeclarator(specs2, decl2, false),
		"block scope does not itself reject a bare redeclaration; the no-linkage check lives in scope.Install")
}

func TestAnalyzeInitDeclaratorRedefinitionIsError(t *testing.T) {
	c := NewContext()
	specs := &ast.TypeExp{Op: ast.Int}
	decl1 := &ast.TypeExp{Op: ast.ID, Spelling: "x", Init: "0"}
	require.NoError(t, c.AnalyzeInitDeclarator(specs, decl1, false))

	decl2 := &ast.TypeExp{Op: ast.ID, Spelling: "x", Init: "1"}
	err := c.AnalyzeInitDeclarator(specs, decl2, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redefinition of 'x'")
}

func TestAnalyzeInitDeclaratorRejectsFileScopeAutoAndRegister(t *testing.T) {
	c := NewContext()
	specs := &ast.TypeExp{Op: ast.Auto, Child: &ast.TypeExp{Op: ast.Int}}
	decl := &ast.TypeExp{Op: ast.ID, Spelling: "x"}
	assert.Error(t, c.AnalyzeInitDeclarator(specs, decl, false))

	specs = &ast.TypeExp{Op: ast.Register, Child: &ast.TypeExp{Op: ast.Int}}
	decl = &ast.TypeExp{Op: ast.ID, Spelling: "r"}
	assert.Error(t, c.AnalyzeInitDeclarator(specs, decl, false))
}

func TestAnalyzeInitDeclaratorRejectsInitializingFunctionType(t *testing.T) {
	c := NewContext()
	specs := &ast.TypeExp{Op: ast.Int}
	decl := &ast.TypeExp{Op: ast.ID, Spelling: "f", Init: "0", Child: &ast.TypeExp{Op: ast.Function}}
	assert.Error(t, c.AnalyzeInitDeclarator(specs, decl, false))
}

func TestAnalyzeInitDeclaratorRejectsInitializingTypedef(t *testing.T) {
	c := NewContext()
	specs := &ast.TypeExp{Op: ast.Typedef, Child: &ast.TypeExp{Op: ast.Int}}
	decl := &ast.TypeExp{Op: ast.ID, Spelling: "T", Init: "0"}
	assert.Error(t, c.AnalyzeInitDeclarator(specs, decl, false))
}

func TestAnalyzeInitDeclaratorBlockScopeExternInitializerIsError(t *testing.T) {
	c := NewContext()
	require.NoError(t, c.PushScope())

	specs := &ast.TypeExp{Op: ast.Extern, Child: &ast.TypeExp{Op: ast.Int}}
	decl := &ast.TypeExp{Op: ast.ID, Spelling: "z", Init: "0"}
	assert.Error(t, c.AnalyzeInitDeclarator(specs, decl, false))
}

func TestAnalyzeInitDeclaratorBlockScopeFunctionStorageClassRestricted(t *testing.T) {
	c := NewContext()
	require.NoError(t, c.PushScope())

	specs := &ast.TypeExp{Op: ast.Static, Child: &ast.TypeExp{Op: ast.Int}}
	decl := &ast.TypeExp{Op: ast.ID, Spelling: "f", Child: &ast.TypeExp{Op: ast.Function}}
	assert.Error(t, c.AnalyzeInitDeclarator(specs, decl, false))
}
