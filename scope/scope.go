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

// Package scope implements the two hash-chained namespaces (ordinary
// identifiers and tags) stacked over block-scope nesting, with the
// "delayed pop" rule that keeps a just-popped scope queryable for exactly
// one further operation.
package scope

import (
	"github.com/neonkingfr/uccgo/ast"
	"github.com/neonkingfr/uccgo/diag"
)

const (
	// hashSize is the number of hash buckets per namespace per level.
	hashSize = 101
	// MaxNestLevel bounds block-nesting depth; exceeding it is a fatal,
	// unrecoverable error.
	MaxNestLevel = 16
	// FileScope is level 0: every identifier outside any block.
	FileScope = 0
)

// Symbol is an ordinary identifier installed in a scope: the pairing of the
// specifier chain and declarator chain it was declared with.
type Symbol struct {
	Specs *ast.TypeExp
	Decl  *ast.TypeExp
	next  *Symbol
}

// Tag is a struct/union/enum tag installed in a scope.
type Tag struct {
	Type *ast.TypeExp
	next *Tag
}

// Stack is the scope environment for one translation unit: level 0 is file
// scope, and levels increase with block nesting. The zero value is ready to
// use.
type Stack struct {
	level      int
	pendingPop bool
	ordinary   [hashSize][MaxNestLevel + 1]*Symbol
	tags       [hashSize][MaxNestLevel + 1]*Tag
}

func hash(name string) int {
	// FNV-1a-shaped, but the exact distribution doesn't matter: any stable
	// hash does, since only chain order (not bucket identity) is observable.
	var h uint32 = 2166136261
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= 16777619
	}
	return int(h % hashSize)
}

// consumePendingPop implements the one-step lookahead: every public
// operation begins by observing and, if set, discharging a pending delayed
// pop before doing its own work.
func (s *Stack) consumePendingPop() {
	if s.pendingPop {
		s.deleteScope()
	}
}

func (s *Stack) deleteScope() {
	if s.level < 0 {
		panic("scope: underflow in deleteScope")
	}
	for i := 0; i < hashSize; i++ {
		s.ordinary[i][s.level] = nil
		s.tags[i][s.level] = nil
	}
	s.level--
	s.pendingPop = false
}

// Level returns the current nesting level (0 is file scope).
func (s *Stack) Level() int {
	s.consumePendingPop()
	return s.level
}

// Push enters a new, deeper scope.
func (s *Stack) Push() error {
	s.consumePendingPop()
	if s.level+1 == MaxNestLevel {
		return &diag.Diagnostic{Severity: diag.Error, Message: "too many nested scopes"}
	}
	s.level++
	return nil
}

// Pop marks the current scope for delayed deletion: the scope remains
// queryable until the next scope-modifying or lookup operation, which is
// exactly the one-token lookahead the parser needs to ask "is this a
// typedef-name?" while consuming the token that follows a block's closing
// brace.
func (s *Stack) Pop() {
	s.consumePendingPop()
	s.pendingPop = true
}

// Restore cancels a pending delayed deletion: used when the parser re-enters
// the same scope to parse a function body after having already parsed (and
// provisionally popped) its parameter list.
func (s *Stack) Restore() {
	s.pendingPop = false
}

// AtFileScope runs fn with the stack temporarily pinned to file scope,
// restoring the current level once fn returns. By the time a function
// definition's header is analyzed, the parameter list's scope is already
// pushed, but the function's own name always has file-scope linkage, so
// installing and linking it runs here rather than at the current level.
func (s *Stack) AtFileScope(fn func() error) error {
	s.consumePendingPop()
	saved := s.level
	s.level = FileScope
	err := fn()
	s.level = saved
	return err
}

// Lookup searches for name in the ordinary-identifier namespace. If all is
// true the search walks from the current level down to file scope,
// returning the innermost match; otherwise only the current level is
// consulted.
func (s *Stack) Lookup(name string, all bool) *Symbol {
	s.consumePendingPop()
	if all {
		for n := s.level; n >= 0; n-- {
			if sym := findSymbol(s.ordinary[hash(name)][n], name); sym != nil {
				return sym
			}
		}
		return nil
	}
	return findSymbol(s.ordinary[hash(name)][s.level], name)
}

func findSymbol(head *Symbol, name string) *Symbol {
	for n := head; n != nil; n = n.next {
		if n.Decl.Spelling == name {
			return n
		}
	}
	return nil
}

// LookupTag searches for name in the tag namespace, with the same all-levels
// semantics as Lookup.
func (s *Stack) LookupTag(name string, all bool) *Tag {
	s.consumePendingPop()
	if all {
		for n := s.level; n >= 0; n-- {
			if tag := findTag(s.tags[hash(name)][n], name); tag != nil {
				return tag
			}
		}
		return nil
	}
	return findTag(s.tags[hash(name)][s.level], name)
}

func findTag(head *Tag, name string) *Tag {
	for n := head; n != nil; n = n.next {
		if n.Type.Spelling == name {
			return n
		}
	}
	return nil
}
