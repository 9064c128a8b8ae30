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

package scope

import (
	"github.com/neonkingfr/uccgo/ast"
	"github.com/neonkingfr/uccgo/diag"
)

// InstallTag prepends a tag node to the current scope level. There is
// deliberately no same-scope collision check here: installation happens
// unconditionally, relying on the parser's grammar context to have already
// resolved whether a tag occurrence is a reference or a redeclaration.
func (s *Stack) InstallTag(t *ast.TypeExp) {
	s.consumePendingPop()
	s.tags[hash(t.Spelling)][s.level] = &Tag{Type: t, next: s.tags[hash(t.Spelling)][s.level]}
}

// Install installs an ordinary identifier. It returns a fatal diagnostic
// instead of installing when the new declaration clashes with one already
// present in the current scope.
func (s *Stack) Install(specs, decl *ast.TypeExp) error {
	s.consumePendingPop()

	name := decl.Spelling
	prev := findSymbol(s.ordinary[hash(name)][s.level], name)
	if prev == nil {
		s.ordinary[hash(name)][s.level] = &Symbol{
			Specs: specs, Decl: decl,
			next: s.ordinary[hash(name)][s.level],
		}
		return nil
	}

	currSCS := storageClassOp(specs)
	prevSCS := storageClassOp(prev.Specs)

	diffKind := func() error {
		return diag.Errorf(decl.Pos, "'%s' redeclared as different kind of symbol", name)
	}

	switch {
	case decl.Op == ast.EnumConst || currSCS == ast.Typedef:
		switch {
		case decl.Op == ast.EnumConst && prev.Decl.Op == ast.EnumConst:
			return diag.Errorf(decl.Pos, "redeclaration of enumerator '%s'", name)
		case currSCS == ast.Typedef && prevSCS == ast.Typedef:
			return diag.Errorf(decl.Pos, "redefinition of typedef '%s'", name)
		default:
			return diffKind()
		}
	case prev.Decl.Op == ast.EnumConst || prevSCS == ast.Typedef:
		return diffKind()
	case s.level != FileScope:
		isCurrFunc := ast.IsFunctionDeclarator(decl)
		isPrevFunc := ast.IsFunctionDeclarator(prev.Decl)
		if isCurrFunc || isPrevFunc {
			if isCurrFunc != isPrevFunc {
				return diffKind()
			}
			return nil // both functions: OK by now
		}

		haveCurrExtern := currSCS == ast.Extern
		havePrevExtern := prevSCS == ast.Extern
		if !haveCurrExtern {
			if !havePrevExtern {
				return diag.Errorf(decl.Pos, "redeclaration of '%s' with no linkage", name)
			}
			return diag.Errorf(decl.Pos, "declaration of '%s' with no linkage follows extern declaration", name)
		}
		if !havePrevExtern {
			return diag.Errorf(decl.Pos, "extern declaration of '%s' follows declaration with no linkage", name)
		}
	}
	return nil
}

func storageClassOp(specs *ast.TypeExp) ast.Opcode {
	if scs := ast.GetStorageClassSpec(specs); scs != nil {
		return scs.Op
	}
	return 0
}

// IsTypedefName reports whether name currently names a typedef, searching
// all enclosing scopes. This is the query the parser makes at every
// identifier token to decide whether it denotes a type or an ordinary
// identifier.
func (s *Stack) IsTypedefName(name string) bool {
	sym := s.Lookup(name, true)
	return sym != nil && storageClassOp(sym.Specs) == ast.Typedef
}
