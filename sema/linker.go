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
	"github.com/neonkingfr/uccgo/ast"
	"github.com/neonkingfr/uccgo/diag"
	"github.com/neonkingfr/uccgo/extern"
	"github.com/neonkingfr/uccgo/scope"
)

// AnalyzeInitDeclarator runs the external-identifier linkage rules against
// one init-declarator: classifying a file-scope identifier's linkage
// status, catching illegal re-linkage (e.g. static following a prior
// non-static declaration), and enforcing type compatibility against
// whatever declaration of the same external identifier has already been
// seen. isFuncDef is true only when called for the declarator of a function
// definition.
func (c *Context) AnalyzeInitDeclarator(specs, decl *ast.TypeExp, isFuncDef bool) error {
	isFuncDecl := decl.Child != nil && decl.Child.Op == ast.Function
	isInitialized := decl.Init != nil
	scs := ast.GetStorageClassSpec(specs)

	if isInitialized && isFuncDecl {
		return diag.Errorf(decl.Child.Pos, "trying to initialize function type")
	}
	if scs != nil && scs.Op == ast.Typedef {
		if isInitialized {
			return diag.Errorf(decl.Pos, "trying to initialize typedef")
		}
		return nil
	}

	if c.Scope.Level() == scope.FileScope {
		return c.linkFileScope(specs, decl, scs, isFuncDecl, isInitialized, isFuncDef)
	}
	return c.linkBlockScope(specs, decl, scs, isFuncDecl, isInitialized)
}

func (c *Context) linkFileScope(specs, decl, scs *ast.TypeExp, isFuncDecl, isInitialized, isFuncDef bool) error {
	if scs != nil && (scs.Op == ast.Auto || scs.Op == ast.Register) {
		return diag.Errorf(scs.Pos, "file-scope declaration of '%s' specifies '%s'", decl.Spelling, scs.Op)
	}

	prev := c.Externs.Lookup(decl.Spelling)
	if prev == nil {
		switch {
		case isInitialized || isFuncDef:
			c.Externs.Install(specs, decl, extern.Defined)
		case isFuncDecl || (scs != nil && scs.Op == ast.Extern):
			c.Externs.Install(specs, decl, extern.Referenced)
		default:
			c.Externs.Install(specs, decl, extern.Tentative)
		}
		return nil
	}

	if isInitialized || isFuncDef {
		if prev.Status == extern.Defined {
			return diag.Errorf(decl.Pos, "redefinition of '%s'", decl.Spelling)
		}
		prev.Status = extern.Defined
	}

	prevSCS := ast.GetStorageClassSpec(prev.Specs)
	switch {
	case prevSCS == nil:
		if scs != nil && scs.Op == ast.Static {
			return diag.Errorf(decl.Pos, "static declaration of '%s' follows non-static declaration", decl.Spelling)
		}
	case prevSCS.Op == ast.Extern:
		switch {
		case scs != nil:
			if scs.Op == ast.Static {
				return diag.Errorf(decl.Pos, "static declaration of '%s' follows non-static declaration", decl.Spelling)
			}
		case !isFuncDecl && prev.Status != extern.Defined:
			prev.Status = extern.Tentative
		}
	case prevSCS.Op == ast.Static:
		if scs == nil && !isFuncDecl {
			return diag.Errorf(decl.Pos, "non-static declaration of '%s' follows static declaration", decl.Spelling)
		}
	}

	return c.enforceTypeCompatibility(prev.Specs, prev.Decl, specs, decl)
}

func (c *Context) linkBlockScope(specs, decl, scs *ast.TypeExp, isFuncDecl, isInitialized bool) error {
	if isFuncDecl && scs != nil && scs.Op != ast.Typedef && scs.Op != ast.Extern {
		return diag.Errorf(decl.Child.Pos,
			"function '%s' declared in block scope cannot have '%s' storage class", decl.Spelling, scs.Op)
	}

	if (scs != nil && scs.Op == ast.Extern) || isFuncDecl {
		if isInitialized {
			return diag.Errorf(decl.Pos, "'extern' variable cannot have an initializer")
		}
		prev := c.Externs.Lookup(decl.Spelling)
		if prev == nil {
			c.Externs.Install(specs, decl, extern.Referenced)
			return nil
		}
		return c.enforceTypeCompatibility(prev.Specs, prev.Decl, specs, decl)
	}
	return nil
}
