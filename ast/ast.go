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

// Package ast holds the in-memory representation of C declarations handed
// down from the parser: specifier chains, declarator chains, parameter and
// member lists. Semantic passes mutate these nodes in place (merging
// qualifiers, splicing typedefs, completing array sizes) rather than
// lowering them into a second, immutable tree.
package ast

import "github.com/neonkingfr/uccgo/diag"

// Opcode identifies the role of a TypeExp node.
type Opcode int

const (
	// Storage-class specifiers.
	Typedef Opcode = iota + 1
	Extern
	Static
	Auto
	Register

	// Type qualifiers, plus the synthetic merge of both.
	Const
	Volatile
	ConstVolatile

	// Arithmetic type-specifier tokens as the parser emits them. The
	// specifier canonicalizer rewrites combinations of these (and folds
	// SIGNED away) into exactly one canonical opcode: Char, Short, Int,
	// Long or Unsigned itself, or one of the multi-word opcodes below.
	Char
	Short
	Int
	Long
	Signed
	Unsigned

	// Canonical multi-word arithmetic type specifiers. After specifier
	// canonicalization runs, every specifier chain carries exactly one
	// opcode from CanonicalTypeSpecifiers: one of this group, one of
	// Char/Short/Int/Long/Unsigned, or one of
	// Void/Struct/Union/Enum/TypedefName.
	SignedChar
	UnsignedChar
	UnsignedShort
	UnsignedLong

	// Type specifiers that need no canonicalization.
	Void
	Struct
	Union
	Enum
	TypedefName

	// Derived-type constructors and declarator-chain bookkeeping.
	Star
	Subscript
	Function
	ID
	Ellipsis
	EnumConst

	// Atomic type specifier, present for C11-shaped input but otherwise
	// treated like any other non-qualifier, non-storage-class token; C89/99
	// front ends never see it in valid input.
	Atomic
)

//go:generate stringer -type=Opcode

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return "?"
}

var opcodeNames = map[Opcode]string{
	Typedef:       "typedef",
	Extern:        "extern",
	Static:        "static",
	Auto:          "auto",
	Register:      "register",
	Const:         "const",
	Volatile:      "volatile",
	ConstVolatile: "const volatile",
	Char:          "char",
	Short:         "short",
	Int:           "int",
	Long:          "long",
	Signed:        "signed",
	Unsigned:      "unsigned",
	SignedChar:    "signed char",
	UnsignedChar:  "unsigned char",
	UnsignedShort: "unsigned short",
	UnsignedLong:  "unsigned long",
	Void:          "void",
	Struct:        "struct",
	Union:         "union",
	Enum:          "enum",
	TypedefName:   "typedef-name",
	Star:          "*",
	Subscript:     "[]",
	Function:      "()",
	ID:            "identifier",
	Ellipsis:      "...",
	EnumConst:     "enum-const",
	Atomic:        "_Atomic",
}

// CanonicalTypeSpecifiers is the set every specifier chain's single
// remaining type-specifier opcode must belong to once specifier
// canonicalization has run. TypedefName is only legal before the typedef
// splicer runs; downstream passes never see it.
var CanonicalTypeSpecifiers = map[Opcode]bool{
	Void: true, Char: true, SignedChar: true, UnsignedChar: true,
	Short: true, UnsignedShort: true, Int: true, Unsigned: true,
	Long: true, UnsignedLong: true, Struct: true, Union: true, Enum: true,
	TypedefName: true,
}

// Expr is an opaque handle to a size or initializer expression. The analyzer
// only ever tests an Expr for presence/absence and copies the reference
// when completing an array, never interprets it.
type Expr interface{}

// TypeExp is one layer of a C type: a node in the singly-linked chain the
// parser builds for a declaration's specifiers or declarator. Attributes
// that in the C source live inside a tagged union are plain fields here,
// guarded by Op exactly as the union tag would be: only one of Qual, Size,
// Params, Members/Enumerators is ever meaningful for a given Op.
type TypeExp struct {
	Op       Opcode
	Spelling string       // identifier, tag, or typedef-name spelling
	Pos      diag.Position
	Child    *TypeExp // the next-outer layer
	Sibling  *TypeExp // next struct-declarator in a struct-declarator-list

	Qual    *TypeExp   // Star: optional pointer qualifier node
	Size    Expr       // Subscript: optional size expression (nil ⇒ incomplete/unsized)
	Init    Expr       // ID: optional initializer (nil ⇒ not initialized)
	Params  *DeclList  // Function: parameter declarations
	Members *DeclList  // Struct/Union: member declarations (nil ⇒ incomplete)
	Enum    []*TypeExp // Enum: enumerator list (nil ⇒ incomplete)
}

// Declaration pairs a specifier chain with a (possibly absent, for abstract
// declarators) declarator chain.
type Declaration struct {
	Specs *TypeExp
	Decl  *TypeExp
}

// DeclList is an ordered list of Declarations: function parameters or
// aggregate members, where ordering is semantically significant.
type DeclList struct {
	Decl *Declaration
	Next *DeclList
}

// Len returns the number of entries in the list.
func (l *DeclList) Len() int {
	n := 0
	for ; l != nil; l = l.Next {
		n++
	}
	return n
}

// IsStorageClassSpec reports whether op is one of the five storage-class
// specifiers.
func IsStorageClassSpec(op Opcode) bool {
	switch op {
	case Typedef, Extern, Static, Auto, Register:
		return true
	}
	return false
}

// IsTypeSpec reports whether op is a type-specifier token the
// specifier-canonicalization scan is driven by: the pre-canonical tokens
// plus the canonical multi-word opcodes a prior canonicalization pass may
// already have produced, so a second pass over an already-canonical chain
// still recognizes its type specifier instead of walking past it.
func IsTypeSpec(op Opcode) bool {
	switch op {
	case Void, Char, Short, Int, Long, Signed, Unsigned,
		Struct, Union, Enum, TypedefName,
		SignedChar, UnsignedChar, UnsignedShort, UnsignedLong:
		return true
	}
	return false
}

// IsCanonicalTypeSpec reports whether op is a type-specifier token that can
// appear after canonicalization.
func IsCanonicalTypeSpec(op Opcode) bool {
	switch op {
	case Void, Char, SignedChar, UnsignedChar, Short, UnsignedShort,
		Int, Unsigned, Long, UnsignedLong,
		Struct, Union, Enum, TypedefName:
		return true
	}
	return false
}

// IsTypeQualifier reports whether op is const, volatile, or the synthetic
// merge of both.
func IsTypeQualifier(op Opcode) bool {
	return op == Const || op == Volatile || op == ConstVolatile
}

// IsStructUnionEnum reports whether op names a tagged composite type.
func IsStructUnionEnum(op Opcode) bool {
	return op == Struct || op == Union || op == Enum
}

// GetStorageClassSpec returns the storage-class node in the chain starting
// at d, or nil.
func GetStorageClassSpec(d *TypeExp) *TypeExp {
	for ; d != nil; d = d.Child {
		if IsStorageClassSpec(d.Op) {
			return d
		}
	}
	return nil
}

// GetTypeSpec returns the (canonical) type-specifier node in the chain
// starting at d. Every specifier chain that has passed canonicalization
// carries exactly one, so a nil chain here indicates a bug in the caller,
// not malformed input.
func GetTypeSpec(d *TypeExp) *TypeExp {
	for ; d != nil; d = d.Child {
		if IsCanonicalTypeSpec(d.Op) {
			return d
		}
	}
	panic("ast: GetTypeSpec: no type specifier in chain (was it canonicalized?)")
}

// GetTypeQual returns the (possibly merged) type-qualifier node in the
// chain starting at d, or nil.
func GetTypeQual(d *TypeExp) *TypeExp {
	for ; d != nil; d = d.Child {
		if IsTypeQualifier(d.Op) {
			return d
		}
	}
	return nil
}

// IsFunctionDeclarator reports whether d's outermost derived constructor is
// a function, i.e. d is the identifier node of a function declarator.
func IsFunctionDeclarator(d *TypeExp) bool {
	return d != nil && d.Child != nil && d.Child.Op == Function
}
