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
	"github.com/neonkingfr/uccgo/printer"
)

// compareDeclSpecs reports whether two specifier chains name the same type:
// the same canonical type-specifier opcode (and, for a tagged type, the
// same tag spelling), and, when qualified is true, the same type
// qualifier.
func compareDeclSpecs(ds1, ds2 *ast.TypeExp, qualified bool) bool {
	ts1, ts2 := ast.GetTypeSpec(ds1), ast.GetTypeSpec(ds2)
	if ts1.Op != ts2.Op || (ast.IsStructUnionEnum(ts1.Op) && ts1.Spelling != ts2.Spelling) {
		return false
	}

	if qualified {
		tq1, tq2 := ast.GetTypeQual(ds1), ast.GetTypeQual(ds2)
		if (tq1 == nil) != (tq2 == nil) || (tq1 != nil && tq1.Op != tq2.Op) {
			return false
		}
	}
	return true
}

// compareAndCompose reports whether the two types (ds1, dct1) and (ds2,
// dct2) are compatible, completing an incomplete array size on either side
// from the other in the process: the one place outside a scope stack that
// mutates shared state as a side effect of a query, matching how array
// completion is defined to happen at the moment of comparison.
func compareAndCompose(ds1, dct1, ds2, dct2 *ast.TypeExp, qualified bool) bool {
	if dct1 != nil && dct1.Op == ast.ID {
		dct1 = dct1.Child
	}
	if dct2 != nil && dct2.Op == ast.ID {
		dct2 = dct2.Child
	}

	if dct1 == nil || dct2 == nil {
		if dct1 != dct2 {
			return false
		}
		return compareDeclSpecs(ds1, ds2, qualified)
	}

	if dct1.Op != dct2.Op {
		return false
	}

	switch dct1.Op {
	case ast.Ellipsis:
		return true
	case ast.Star:
		if qualified {
			if (dct1.Qual == nil) != (dct2.Qual == nil) {
				return false
			}
			if dct1.Qual != nil && dct1.Qual.Op != dct2.Qual.Op {
				return false
			}
		}
	case ast.Subscript:
		// Complete whichever side is missing a size from the other;
		// 6.7.5.2 leaves the composite array type's size to be
		// resolved this way across a tentative and a completing
		// declaration.
		switch {
		case dct1.Size == nil && dct2.Size != nil:
			dct1.Size = dct2.Size
		case dct2.Size == nil && dct1.Size != nil:
			dct2.Size = dct1.Size
		}
	case ast.Function:
		p1, p2 := dct1.Params, dct2.Params
		for p1 != nil && p2 != nil {
			// 6.7.6#15: parameters are compared with any
			// qualifier on their own declared type stripped.
			if !compareAndCompose(p1.Decl.Specs, p1.Decl.Decl, p2.Decl.Specs, p2.Decl.Decl, false) {
				return false
			}
			p1, p2 = p1.Next, p2.Next
		}
		if p1 != p2 {
			return false
		}
	}

	return compareAndCompose(ds1, dct1.Child, ds2, dct2.Child, true)
}

// isComplete reports whether the struct/union/enum named tag is complete
// (has a member list or enumerator list) at the point of the query. An
// anonymous tag (empty spelling) is always considered complete, since it
// can only ever refer to the definition it was introduced with.
func (c *Context) isComplete(tag string) bool {
	if tag == "" {
		return true
	}
	t := c.Scope.LookupTag(tag, true)
	if t == nil {
		panic("sema: isComplete: tag '" + tag + "' not found (was it installed first?)")
	}
	if t.Type.Op == ast.Enum {
		return t.Type.Enum != nil
	}
	return t.Type.Members != nil
}

// enforceTypeCompatibility checks that a redeclaration is compatible with
// the declaration an external identifier already carries, returning the
// spec's fixed "conflicting types" diagnostic (naming the printed previous
// and new types) if it is not.
func (c *Context) enforceTypeCompatibility(prevSpecs, prevDecl, specs, decl *ast.TypeExp) error {
	if compareAndCompose(prevSpecs, prevDecl, specs, decl, true) {
		return nil
	}
	return diag.ConflictingTypes(decl.Pos, decl.Spelling,
		printer.Print(prevSpecs, prevDecl), printer.Print(specs, decl))
}
