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

// Package extern implements the external-identifier linker: a process-wide
// (per translation unit) table tracking, for every file-scope identifier
// ever sighted, its declaration status and linkage history.
package extern

import "github.com/neonkingfr/uccgo/ast"

// Status is the declaration status of an external identifier.
type Status int

const (
	// Referenced means only `extern int x;` or a function declaration has
	// been seen: no storage has been requested yet.
	Referenced Status = iota
	// Tentative means a bare `int x;` has been seen: a tentative
	// definition, promoted to Defined if no real definition follows by the
	// end of the translation unit.
	Tentative
	// Defined means an initializer or function body has been seen.
	Defined
)

func (s Status) String() string {
	switch s {
	case Referenced:
		return "referenced"
	case Tentative:
		return "tentative"
	case Defined:
		return "defined"
	default:
		return "unknown"
	}
}

// ID is one entry of the external-identifier table: the specifier and
// declarator chain of the declaration that (currently) best describes the
// identifier, plus its resolved status. ID entries are never removed during
// a translation unit.
type ID struct {
	Specs  *ast.TypeExp
	Decl   *ast.TypeExp
	Status Status
}

// Table is the process-wide (per translation unit) table of external
// identifiers, keyed by spelling. Unlike the block-scope Symbol/Tag chains
// in package scope, it has no notion of nesting level: a plain map is the
// direct and idiomatic choice, since there is only ever one level to
// search.
type Table struct {
	entries map[string]*ID
}

// NewTable returns an empty external-identifier table.
func NewTable() *Table {
	return &Table{entries: map[string]*ID{}}
}

// Lookup returns the entry for name, or nil if name has not been sighted.
func (t *Table) Lookup(name string) *ID {
	return t.entries[name]
}

// Install records a fresh external identifier. Install panics if called
// twice for the same name: callers must Lookup first, since installation
// is only ever reached from the "not found" branch of init-declarator
// analysis.
func (t *Table) Install(specs, decl *ast.TypeExp, status Status) *ID {
	if _, ok := t.entries[decl.Spelling]; ok {
		panic("extern: Install called for an already-known identifier: " + decl.Spelling)
	}
	id := &ID{Specs: specs, Decl: decl, Status: status}
	t.entries[decl.Spelling] = id
	return id
}
