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

// AnalyzeStructDeclarator validates one struct/union member declarator:
// 6.7.2.1#2 forbids an incomplete or function member type (so a struct
// cannot contain an instance of itself, though it may contain a pointer to
// one), and an array member's size cannot be missing.
func (c *Context) AnalyzeStructDeclarator(specs, decl *ast.TypeExp) error {
	if err := c.AnalyzeDeclarator(specs, decl, false); err != nil {
		return err
	}

	switch {
	case decl.Child == nil:
		ts := ast.GetTypeSpec(specs)
		if ast.IsStructUnionEnum(ts.Op) && !c.isComplete(ts.Spelling) {
			return diag.Errorf(decl.Pos, "member '%s' has incomplete type", decl.Spelling)
		}
	case decl.Child.Op == ast.Subscript:
		if decl.Child.Size == nil {
			return diag.Errorf(decl.Pos, "member '%s' has incomplete type", decl.Spelling)
		}
	case decl.Child.Op == ast.Function:
		return diag.Errorf(decl.Pos, "member '%s' declared as a function", decl.Spelling)
	}
	return nil
}

// CheckForDupMember reports an error if any two struct-declarators across
// the member list d name the same identifier.
func CheckForDupMember(d *ast.DeclList) error {
	seen := map[string]bool{}
	for ; d != nil; d = d.Next {
		for dct := d.Decl.Decl; dct != nil; dct = dct.Sibling {
			if seen[dct.Spelling] {
				return diag.Errorf(dct.Pos, "duplicate member '%s'", dct.Spelling)
			}
			seen[dct.Spelling] = true
		}
	}
	return nil
}
