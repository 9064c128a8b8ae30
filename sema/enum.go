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

import "github.com/neonkingfr/uccgo/ast"

// AnalyzeEnumerator installs an enumeration constant's identifier as an
// ordinary identifier of type int (6.7.2.2#3: every enumeration constant
// has type int). e must be the TypeExp::ID node the parser built for the
// enumerator's name.
func (c *Context) AnalyzeEnumerator(e *ast.TypeExp) error {
	e.Op = ast.EnumConst
	intSpec := &ast.TypeExp{Op: ast.Int, Pos: e.Pos}
	return c.Scope.Install(intSpec, e)
}
