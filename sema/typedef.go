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

// replaceTypedefName splices a used typedef name's own type into the
// declaration that names it. If decl.Specs doesn't name a typedef, it is a
// no-op.
//
// The type-specifier node carrying the TypedefName opcode is rewritten in
// place to the typedef's own canonical type-specifier opcode. A copy of the
// typedef's own declarator, if it has one, is appended to the end of the
// use site's declarator chain, a copy and not the original, since later
// completing an array through this splice must never retroactively modify
// the typedef definition every other use of the name shares. Finally any
// qualifier written directly on this declaration is migrated onto whichever
// node the typedef name itself denotes, per 6.7.3#8.
func (c *Context) replaceTypedefName(decl *ast.Declaration) {
	ts := ast.GetTypeSpec(decl.Specs)
	if ts.Op != ast.TypedefName {
		return
	}

	sym := c.Scope.Lookup(ts.Spelling, true)
	defSpecs := sym.Specs
	defDecl := sym.Decl

	child := ts.Child
	*ts = *ast.GetTypeSpec(defSpecs)
	ts.Child = child

	// target is the node the qualifier-migration step below must act on:
	// the use site's own declarator if the typedef contributes no
	// declarator of its own, or the freshly appended copy of the
	// typedef's declarator otherwise, appended after the use site's
	// existing chain so a typedef'd pointer nested inside more pointers
	// written at the use site still binds the qualifier to the right
	// level.
	target := decl.Decl
	if defDecl.Child != nil {
		if target != nil {
			tail := target
			for tail.Child != nil {
				tail = tail.Child
			}
			tail.Child = ast.DupDeclarator(defDecl.Child)
			target = tail.Child
		} else {
			target = ast.DupDeclarator(defDecl.Child)
			decl.Decl = target
		}
	}

	c.migrateQualifier(decl.Specs, target, defSpecs, sym.Decl.Spelling)
}

// migrateQualifier moves a qualifier written directly on specs onto target
// (the pointer or function node the typedef name denotes), then merges in
// whatever qualifier the typedef's own definition already carried. name is
// the typedef's own spelling, used only for the function-qualifier
// warning's message.
func (c *Context) migrateQualifier(specs *ast.TypeExp, target *ast.TypeExp, defSpecs *ast.TypeExp, name string) {
	own := ast.GetTypeQual(specs)

	if own != nil && target != nil {
		qualifyTarget := target
		switch target.Op {
		case ast.Star, ast.Function:
			// qualifyTarget already correct.
		case ast.Subscript:
			// 6.7.3#8: an array's qualifier qualifies its element
			// type, not the array itself. Walk past every
			// Subscript layer to find it.
			for qualifyTarget != nil && qualifyTarget.Op == ast.Subscript {
				qualifyTarget = qualifyTarget.Child
			}
		default:
			qualifyTarget = nil
		}

		if qualifyTarget != nil {
			if qualifyTarget.Op == ast.Function {
				c.warn(diag.Warningf(qualifyTarget.Pos,
					"qualifier on function type '%s' has undefined behavior", name))
				own.Op = 0
			} else if qualifyTarget.Op == ast.Star {
				if qualifyTarget.Qual == nil {
					qualifyTarget.Qual = &ast.TypeExp{Op: own.Op}
				} else if qualifyTarget.Qual.Op != own.Op {
					qualifyTarget.Qual.Op = ast.ConstVolatile
				}
				own.Op = 0
			}
		}
	}

	defQual := ast.GetTypeQual(defSpecs)
	if defQual == nil {
		return
	}
	if own != nil {
		if own.Op == 0 {
			own.Op = defQual.Op
		} else if own.Op != defQual.Op {
			own.Op = ast.ConstVolatile
		}
		return
	}
	tail := specs
	for tail.Child != nil {
		tail = tail.Child
	}
	tail.Child = &ast.TypeExp{Op: defQual.Op}
}
