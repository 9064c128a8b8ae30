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

// Package fixtures builds ast.Declaration trees from a small JSON shape, so
// the CLI harness and tests can describe a declaration as a JSON literal
// instead of hand-assembling TypeExp pointer chains node by node.
package fixtures

import (
	"encoding/json"
	"fmt"

	"github.com/neonkingfr/uccgo/ast"
	"github.com/neonkingfr/uccgo/diag"
)

// node is the on-the-wire shape of one TypeExp layer. Only the fields
// meaningful for Op need to be set; presence of Size/Init (rather than their
// contents, which the core never interprets) is all that matters, so they
// are carried as booleans.
type node struct {
	Op       string  `json:"op"`
	Spelling string  `json:"spelling,omitempty"`
	Child    *node   `json:"child,omitempty"`
	Qual     *node   `json:"qual,omitempty"`
	HasSize  bool    `json:"hasSize,omitempty"`
	HasInit  bool    `json:"hasInit,omitempty"`
	Params   []param `json:"params,omitempty"`
	Members  []param `json:"members,omitempty"`
	Enum     []*node `json:"enum,omitempty"`
}

// param is one entry of a parameter or member list: a specifier chain paired
// with an (optional) declarator chain.
type param struct {
	Specs *node `json:"specs"`
	Decl  *node `json:"decl,omitempty"`
}

// Declaration is the JSON document a fixture file or CLI input holds: a
// specifier chain and an optional declarator chain, the same pairing
// ast.Declaration models.
type Declaration struct {
	Specs *node `json:"specs"`
	Decl  *node `json:"decl,omitempty"`
}

var opcodes = map[string]ast.Opcode{
	"typedef": ast.Typedef, "extern": ast.Extern, "static": ast.Static,
	"auto": ast.Auto, "register": ast.Register,
	"const": ast.Const, "volatile": ast.Volatile, "const_volatile": ast.ConstVolatile,
	"char": ast.Char, "short": ast.Short, "int": ast.Int, "long": ast.Long,
	"signed": ast.Signed, "unsigned": ast.Unsigned,
	"signed_char": ast.SignedChar, "unsigned_char": ast.UnsignedChar,
	"unsigned_short": ast.UnsignedShort, "unsigned_long": ast.UnsignedLong,
	"void": ast.Void, "struct": ast.Struct, "union": ast.Union, "enum": ast.Enum,
	"typedef_name": ast.TypedefName,
	"star":         ast.Star, "subscript": ast.Subscript, "function": ast.Function,
	"id": ast.ID, "ellipsis": ast.Ellipsis, "enum_const": ast.EnumConst,
	"atomic": ast.Atomic,
}

var opcodeWords = func() map[ast.Opcode]string {
	m := make(map[ast.Opcode]string, len(opcodes))
	for word, op := range opcodes {
		m[op] = word
	}
	return m
}()

// sizeMarker and initMarker stand in for the size/initializer expressions
// this module never interprets; only their presence is ever observed.
type sizeMarker struct{}
type initMarker struct{}

// Decode parses a JSON fixture into an ast.Declaration ready to hand to the
// sema entry points.
func Decode(data []byte) (*ast.Declaration, error) {
	var doc Declaration
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixtures: decoding declaration: %w", err)
	}
	specs, err := toTypeExp(doc.Specs)
	if err != nil {
		return nil, err
	}
	decl, err := toTypeExp(doc.Decl)
	if err != nil {
		return nil, err
	}
	return &ast.Declaration{Specs: specs, Decl: decl}, nil
}

// DecodeDeclList parses a JSON array of {specs, decl} pairs into an
// ast.DeclList, used for function-parameter and struct-member fixtures.
func DecodeDeclList(data []byte) (*ast.DeclList, error) {
	var entries []param
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("fixtures: decoding declaration list: %w", err)
	}
	return paramsToDeclList(entries)
}

func paramsToDeclList(entries []param) (*ast.DeclList, error) {
	var head, tail *ast.DeclList
	for _, p := range entries {
		specs, err := toTypeExp(p.Specs)
		if err != nil {
			return nil, err
		}
		decl, err := toTypeExp(p.Decl)
		if err != nil {
			return nil, err
		}
		next := ast.NewParamDecl(specs, decl)
		if head == nil {
			head = next
		} else {
			tail.Next = next
		}
		tail = next
	}
	return head, nil
}

func toTypeExp(n *node) (*ast.TypeExp, error) {
	if n == nil {
		return nil, nil
	}
	op, ok := opcodes[n.Op]
	if !ok {
		return nil, fmt.Errorf("fixtures: unknown opcode %q", n.Op)
	}
	e := &ast.TypeExp{Op: op, Spelling: n.Spelling, Pos: diag.Position{File: "fixture"}}

	child, err := toTypeExp(n.Child)
	if err != nil {
		return nil, err
	}
	e.Child = child

	qual, err := toTypeExp(n.Qual)
	if err != nil {
		return nil, err
	}
	e.Qual = qual

	if n.HasSize {
		e.Size = sizeMarker{}
	}
	if n.HasInit {
		e.Init = initMarker{}
	}
	if n.Params != nil {
		params, err := paramsToDeclList(n.Params)
		if err != nil {
			return nil, err
		}
		e.Params = params
	}
	if n.Members != nil {
		members, err := paramsToDeclList(n.Members)
		if err != nil {
			return nil, err
		}
		e.Members = members
	}
	for _, ec := range n.Enum {
		enumerator, err := toTypeExp(ec)
		if err != nil {
			return nil, err
		}
		e.Enum = append(e.Enum, enumerator)
	}
	return e, nil
}

// Encode renders an ast.Declaration back into the JSON shape Decode accepts,
// for tools that want to echo a post-analysis tree (the CLI harness prints
// it after every successful run).
func Encode(d *ast.Declaration) ([]byte, error) {
	doc := Declaration{Specs: fromTypeExp(d.Specs), Decl: fromTypeExp(d.Decl)}
	return json.MarshalIndent(doc, "", "  ")
}

func fromTypeExp(e *ast.TypeExp) *node {
	if e == nil {
		return nil
	}
	n := &node{Op: opcodeWords[e.Op], Spelling: e.Spelling}
	n.Child = fromTypeExp(e.Child)
	n.Qual = fromTypeExp(e.Qual)
	n.HasSize = e.Size != nil
	n.HasInit = e.Init != nil
	n.Params = declListToParams(e.Params)
	n.Members = declListToParams(e.Members)
	for _, ec := range e.Enum {
		n.Enum = append(n.Enum, fromTypeExp(ec))
	}
	return n
}

func declListToParams(l *ast.DeclList) []param {
	var out []param
	for ; l != nil; l = l.Next {
		out = append(out, param{Specs: fromTypeExp(l.Decl.Specs), Decl: fromTypeExp(l.Decl.Decl)})
	}
	return out
}
