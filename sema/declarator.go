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
)

// examineDeclarator walks a declarator chain rejecting the derived-type
// combinations 6.7.5.2#1 and 6.7.5.3#1 forbid: an array of functions, an
// array whose element type is incomplete, a function returning a function,
// and a function returning an array.
func (c *Context) examineDeclarator(specs *ast.TypeExp, d *ast.TypeExp) error {
	if d == nil {
		return nil
	}

	switch d.Op {
	case ast.Subscript:
		if d.Child != nil {
			switch {
			case d.Child.Op == ast.Function:
				return diag.Errorf(d.Pos, "array of functions")
			case d.Child.Op == ast.Subscript && d.Child.Size == nil:
				return diag.Errorf(d.Pos, "array has incomplete element type")
			}
		} else {
			ts := ast.GetTypeSpec(specs)
			if ts.Op == ast.Void || (ast.IsStructUnionEnum(ts.Op) && !c.isComplete(ts.Spelling)) {
				return diag.Errorf(d.Pos, "array has incomplete element type")
			}
		}
	case ast.Function:
		if d.Child != nil {
			switch d.Child.Op {
			case ast.Function:
				return diag.Errorf(d.Pos, "function returning a function")
			case ast.Subscript:
				return diag.Errorf(d.Pos, "function returning an array")
			}
		}
	}
	return c.examineDeclarator(specs, d.Child)
}

// AnalyzeDeclarator runs typedef splicing and declarator validation on one
// declaration, then, if instSym is true, installs it in the current scope.
func (c *Context) AnalyzeDeclarator(specs *ast.TypeExp, d *ast.TypeExp, instSym bool) error {
	decl := &ast.Declaration{Specs: specs, Decl: d}
	c.replaceTypedefName(decl)

	if err := c.examineDeclarator(specs, d); err != nil {
		return err
	}
	if instSym {
		return c.Scope.Install(specs, d)
	}
	return nil
}

// AnalyzeParameterDeclaration validates one function-parameter declaration
// and performs the array-to-pointer and function-to-pointer-to-function
// adjustments 6.7.5.3#7-8 require. decl.Decl may be nil for an unnamed
// parameter in a function type that isn't part of a definition.
func (c *Context) AnalyzeParameterDeclaration(decl *ast.Declaration) error {
	if scs := ast.GetStorageClassSpec(decl.Specs); scs != nil && scs.Op != ast.Register {
		return diag.Errorf(scs.Pos, "invalid storage class specifier in parameter declaration")
	}

	c.replaceTypedefName(decl)
	if decl.Decl == nil {
		return nil
	}

	if err := c.examineDeclarator(decl.Specs, decl.Decl); err != nil {
		return err
	}

	var outer *ast.TypeExp
	if decl.Decl.Op == ast.ID {
		outer = decl.Decl.Child
		if err := c.Scope.Install(decl.Specs, decl.Decl); err != nil {
			return err
		}
	} else {
		outer = decl.Decl
	}

	if outer == nil {
		return nil
	}
	switch outer.Op {
	case ast.Subscript:
		outer.Op = ast.Star
		outer.Size = nil
		outer.Qual = nil
	case ast.Function:
		inner := *outer
		outer.Child = &inner
		outer.Op = ast.Star
		outer.Qual = nil
		outer.Params = nil
	}
	return nil
}

// AnalyzeFunctionDefinition validates a function definition's header: that
// it really is a function declarator, that its storage class is legal, that
// its return type is complete, and that its parameter list is well formed
// (each parameter has a name, except for the sole "(void)" case).
func (c *Context) AnalyzeFunctionDefinition(specs, header *ast.TypeExp) error {
	if header.Child == nil || header.Child.Op != ast.Function {
		return diag.Errorf(header.Pos, "declarator of function definition does not specify a function type")
	}

	// The parser has already pushed the parameter list's scope by the time a
	// definition is analyzed, but the function name itself is always
	// file-scope: install and link it there, not at the current level.
	if err := c.Scope.AtFileScope(func() error {
		if err := c.AnalyzeDeclarator(specs, header, true); err != nil {
			return err
		}
		return c.AnalyzeInitDeclarator(specs, header, true)
	}); err != nil {
		return err
	}

	if scs := ast.GetStorageClassSpec(specs); scs != nil && scs.Op != ast.Extern && scs.Op != ast.Static {
		return diag.Errorf(scs.Pos, "invalid storage class '%s' in function definition", scs.Op)
	}

	if header.Child.Child == nil {
		ts := ast.GetTypeSpec(specs)
		if ast.IsStructUnionEnum(ts.Op) && !c.isComplete(ts.Spelling) {
			return diag.Errorf(ts.Pos, "return type is an incomplete type")
		}
	}

	params := header.Child.Params
	if params == nil {
		return nil
	}
	if ast.GetTypeSpec(params.Decl.Specs).Op == ast.Void {
		if params.Decl.Decl == nil {
			if params.Next != nil {
				return diag.Errorf(params.Decl.Specs.Pos, "'void' must be the first and only parameter")
			}
			return nil // foo(void)
		}
	}
	for p := params; p != nil; p = p.Next {
		if p.Decl.Decl != nil && p.Decl.Decl.Op == ast.Ellipsis {
			// a trailing ellipsis is not itself a named parameter
			break
		}
		if p.Decl.Decl == nil || p.Decl.Decl.Op != ast.ID {
			return diag.Errorf(p.Decl.Specs.Pos, "missing parameter name in function definition")
		}
		if p.Decl.Decl.Child == nil {
			ts := ast.GetTypeSpec(p.Decl.Specs)
			if ts.Op == ast.Void || (ast.IsStructUnionEnum(ts.Op) && !c.isComplete(ts.Spelling)) {
				return diag.Errorf(p.Decl.Decl.Pos, "parameter '%s' has incomplete type", p.Decl.Decl.Spelling)
			}
		}
	}
	return nil
}
