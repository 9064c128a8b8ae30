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

// Package sema is the declaration-semantics core: it validates, canonicalizes
// and cross-checks the declaration trees a parser hands it, through a single
// analysis object threading a scope stack and a few small pieces of
// resolution state through the public Analyze* entry points.
package sema

import (
	"github.com/neonkingfr/uccgo/diag"
	"github.com/neonkingfr/uccgo/extern"
	"github.com/neonkingfr/uccgo/scope"
)

// Context hides the process-wide tables (the scope stack and the external-
// identifier table) behind one value created per translation unit, so the
// core is re-entrant: nothing in this package is a package-level global, and
// a fresh Context is all a caller needs to reset state between translation
// units.
//
// A Context is not safe for concurrent use by multiple goroutines. Analysis
// is single-threaded and synchronous end to end, so this type holds to that
// exactly rather than adding locking nothing exercises.
type Context struct {
	Scope    *scope.Stack
	Externs  *extern.Table
	Warnings diag.List
}

// NewContext returns a Context ready to analyze one translation unit.
func NewContext() *Context {
	return &Context{
		Scope:   &scope.Stack{},
		Externs: extern.NewTable(),
	}
}

// PushScope enters a new nested scope.
func (c *Context) PushScope() error { return c.Scope.Push() }

// PopScope leaves the current scope, subject to the delayed-pop rule.
func (c *Context) PopScope() { c.Scope.Pop() }

// RestoreScope cancels a pending delayed pop.
func (c *Context) RestoreScope() { c.Scope.Restore() }

// IsTypedefName reports whether name currently denotes a typedef.
func (c *Context) IsTypedefName(name string) bool { return c.Scope.IsTypedefName(name) }

func (c *Context) warn(d *diag.Diagnostic) {
	c.Warnings = append(c.Warnings, d)
}
