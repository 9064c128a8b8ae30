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

// Package printer renders a declaration's specifier and declarator chains
// back into a C type string, for use in diagnostics such as "conflicting
// types for 'x'". The output is meant to read naturally to a programmer, not
// to be a parseable round-trip of the original source.
package printer

import (
	"strings"

	"github.com/neonkingfr/uccgo/ast"
)

// Print renders the type a specifier chain (specs) plus an optional
// declarator chain (decl) describe, in ordinary C declaration syntax (e.g.
// "int *[]", "struct point", "char *(*)(int)"). Array sizes are not
// rendered: every array layer prints as "[]".
func Print(specs *ast.TypeExp, decl *ast.TypeExp) string {
	return writeSpecs(specs, decl) + writeDeclarator(decl)
}

// String renders a whole Declaration the same way Print renders its two
// halves. Diagnostics that hold a *ast.Declaration (rather than a bare
// specs/decl pair) go through this instead of unpacking the fields at the
// call site.
func String(d *ast.Declaration) string {
	return Print(d.Specs, d.Decl)
}

func writeSpecs(specs *ast.TypeExp, decl *ast.TypeExp) string {
	var b strings.Builder
	for e := specs; e != nil; e = e.Child {
		if e.Op == 0 {
			continue
		}
		b.WriteString(e.Op.String())
		if ast.IsStructUnionEnum(e.Op) {
			b.WriteString(" ")
			b.WriteString(e.Spelling)
		}
		if e.Child != nil {
			b.WriteString(" ")
		} else if decl != nil && !(decl.Op == ast.ID && decl.Child == nil) {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// writeDeclarator builds the declarator suffix outside-in: function and
// array constructors append to the right of whatever has already been
// built, while a pointer layer wraps what came before it in parentheses
// when what it points to is itself a function or array (so that "pointer
// to function" prints as "(*)(...)" and not the very different "*()(...)").
func writeDeclarator(d *ast.TypeExp) string {
	out := ""
	for e := d; e != nil; e = e.Child {
		switch e.Op {
		case ast.Function:
			var params []string
			for p := e.Params; p != nil; p = p.Next {
				params = append(params, Print(p.Decl.Specs, p.Decl.Decl))
			}
			out += "(" + strings.Join(params, ", ") + ")"
		case ast.Subscript:
			out += "[]"
		case ast.Star:
			star := "*"
			if e.Qual != nil {
				star += e.Qual.Op.String()
				if out != "" {
					star += " "
				}
			}
			if e.Child != nil && (e.Child.Op == ast.Subscript || e.Child.Op == ast.Function) {
				out = "(" + star + out + ")"
			} else {
				out = star + out
			}
		case ast.Ellipsis:
			out = "..."
		}
	}
	return out
}
