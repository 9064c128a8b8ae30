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

package ast

// NewParamDecl builds a single-entry DeclList node, as used for both
// function parameters and struct/union members.
func NewParamDecl(specs, decl *TypeExp) *DeclList {
	return &DeclList{Decl: &Declaration{Specs: specs, Decl: decl}}
}

// DupDeclarator deep-copies the declarator chain rooted at d, including the
// qualifier node of any Star and the parameter lists of any Function node it
// passes through (each parameter's declarator is copied; its specifier chain
// is shared with the original). Typedef splicing
// grafts a copy of the typedef's declarator onto the user's declarator
// rather than the original: completing an array through type composition
// must not retroactively modify the typedef definition that every other use
// of the same typedef name shares.
func DupDeclarator(d *TypeExp) *TypeExp {
	if d == nil {
		return nil
	}
	cp := *d
	if d.Qual != nil {
		q := *d.Qual
		cp.Qual = &q
	}
	if d.Op == Function && d.Params != nil {
		cp.Params = dupDeclList(d.Params)
	}
	cp.Child = DupDeclarator(d.Child)
	return &cp
}

func dupDeclList(l *DeclList) *DeclList {
	if l == nil {
		return nil
	}
	head := NewParamDecl(l.Decl.Specs, DupDeclarator(l.Decl.Decl))
	tail := head
	for l = l.Next; l != nil; l = l.Next {
		tail.Next = NewParamDecl(l.Decl.Specs, DupDeclarator(l.Decl.Decl))
		tail = tail.Next
	}
	return head
}
