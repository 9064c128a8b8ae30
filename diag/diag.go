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

// Package diag holds the diagnostic types shared across the declaration
// semantics core: source positions and the two-shape "file:line:col:
// error|warning: message" formatting every diagnostic uses. This package has
// no lexer/reader of its own, only the position and formatting vocabulary
// downstream code shares.
package diag

import (
	"fmt"
	"strings"
)

// Position is a source location. The parser is assumed to stamp one onto
// every AST node it builds; this module never constructs a Position from
// raw source text itself.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	file := p.File
	if file == "" {
		file = "-"
	}
	return fmt.Sprintf("%s:%d:%d", file, p.Line, p.Column)
}

// Severity distinguishes a fatal diagnostic from one execution can continue
// past.
type Severity int

const (
	// Error diagnostics are fatal: the translation unit stops being
	// processed the moment one is produced.
	Error Severity = iota
	// Warning diagnostics are printed and execution continues. The only
	// warning this module emits is "qualifier on function type has
	// undefined behavior".
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single positioned error or warning.
type Diagnostic struct {
	Pos      Position
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Errorf builds a fatal Diagnostic.
func Errorf(pos Position, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Pos: pos, Severity: Error, Message: fmt.Sprintf(format, args...)}
}

// Warningf builds a non-fatal Diagnostic.
func Warningf(pos Position, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Pos: pos, Severity: Warning, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface, so a *Diagnostic can be returned
// directly from any Analyze* entry point the moment a fatal condition is
// found, as a returned error rather than a process exit, so the core stays
// callable as a library.
func (d *Diagnostic) Error() string { return d.String() }

// ConflictingTypes formats the multi-line "conflicting types" diagnostic:
// the error header, followed by two lines naming the previous and new
// printed types.
func ConflictingTypes(pos Position, name, prevType, newType string) *Diagnostic {
	msg := fmt.Sprintf("conflicting types for '%s'\n"+
		"=> previously declared with type '%s'\n"+
		"=> now declared with type '%s'", name, prevType, newType)
	return Errorf(pos, "%s", msg)
}

// List accumulates non-fatal diagnostics (warnings) collected over the
// course of analyzing a translation unit. A fatal diagnostic is never added
// to a List: it is returned immediately instead, ending analysis on the
// spot, so a List only ever holds warnings a caller may want to print
// alongside a successful result.
type List []*Diagnostic

// Error implements the error interface by joining every diagnostic on its
// own line, so a non-empty List can itself be returned or wrapped as an
// error when a caller wants to treat accumulated warnings as failures.
func (l List) Error() string {
	var b strings.Builder
	for i, d := range l {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(d.String())
	}
	return b.String()
}
