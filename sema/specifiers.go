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

import (
	"github.com/neonkingfr/uccgo/ast"
	"github.com/neonkingfr/uccgo/diag"
)

// specState is the state of the type-specifier scan: which specifiers have
// been seen so far and what may legally follow.
type specState int

const (
	stStart specState = iota
	stChar
	stSize
	stSign
	stInt
	stSizeSign
	stSignSize
	stSizeInt
	stIntSize
	stSignInt
	stIntSign
	stEnd
)

// AnalyzeDeclSpecs canonicalizes a specifier chain in place (component C):
// duplicate type-qualifier nodes are merged into one (promoted to
// ConstVolatile when the collected set is neither {Const} nor {Volatile}),
// at most one storage-class node is accepted, and the interleaved
// type-specifier tokens are reduced, via a small state machine, to exactly
// one canonical opcode on the chain's first type-specifier node.
// Every other type-specifier token is excised from the chain as it is
// consumed.
func (c *Context) AnalyzeDeclSpecs(head *ast.TypeExp) error {
	d := head
	var scs *ast.TypeExp
	var firstTQ *ast.TypeExp
	var firstTS *ast.TypeExp
	var prev *ast.TypeExp // last retained node immediately preceding d
	state := stStart

	for {
		for d != nil && !ast.IsTypeSpec(d.Op) {
			delNode := false
			switch {
			case ast.IsStorageClassSpec(d.Op):
				if scs == nil {
					scs = d
				} else {
					return diag.Errorf(d.Pos, "more than one storage class specifier")
				}
			case ast.IsTypeQualifier(d.Op):
				if firstTQ == nil {
					firstTQ = d
				} else {
					if firstTQ.Op != d.Op {
						firstTQ.Op = ast.ConstVolatile
					}
					delNode = true
				}
			}
			if delNode {
				// prev is always non-nil here: a qualifier can only be a
				// duplicate if a first occurrence was already retained,
				// and the first occurrence always falls into the "else"
				// branch below, which sets prev.
				prev.Child = d.Child
				d = d.Child
			} else {
				prev = d
				d = d.Child
			}
		}

		if d == nil {
			if state == stStart {
				return diag.Errorf(head.Pos, "missing type specifier")
			}
			return nil
		}

		switch state {
		case stStart:
			switch d.Op {
			case ast.Char:
				state = stChar
			case ast.Short, ast.Long:
				state = stSize
			case ast.Signed, ast.Unsigned:
				state = stSign
				if d.Op == ast.Signed {
					d.Op = ast.Int
				}
			case ast.Int:
				state = stInt
			case ast.Void, ast.Union, ast.Struct, ast.Enum, ast.TypedefName,
				ast.SignedChar, ast.UnsignedChar, ast.UnsignedShort, ast.UnsignedLong:
				// Already-canonical multi-word specifiers: nothing more of
				// type-specifier kind may legally follow, so a re-run over
				// one of these is a no-op rather than an error.
				state = stEnd
			}
			firstTS = d
			prev = d
			d = d.Child
			continue

		case stChar:
			switch d.Op {
			case ast.Signed:
				state, firstTS.Op = stEnd, ast.SignedChar
			case ast.Unsigned:
				state, firstTS.Op = stEnd, ast.UnsignedChar
			default:
				return diag.Errorf(d.Pos, "more than one type specifier")
			}

		case stSize:
			switch d.Op {
			case ast.Signed, ast.Unsigned:
				state = stSizeSign
				if d.Op == ast.Unsigned {
					firstTS.Op = shortOrLong(firstTS.Op, ast.UnsignedShort, ast.UnsignedLong)
				}
			case ast.Int:
				state = stSizeInt
			default:
				return diag.Errorf(d.Pos, "more than one type specifier")
			}

		case stSign:
			switch d.Op {
			case ast.Short, ast.Long:
				state = stSignSize
				if firstTS.Op == ast.Unsigned {
					firstTS.Op = shortOrLong(d.Op, ast.UnsignedShort, ast.UnsignedLong)
				} else {
					firstTS.Op = d.Op
				}
			case ast.Int:
				state = stSignInt
			case ast.Char:
				state = stEnd
				if firstTS.Op == ast.Unsigned {
					firstTS.Op = ast.UnsignedChar
				} else {
					firstTS.Op = ast.SignedChar
				}
			default:
				return diag.Errorf(d.Pos, "more than one type specifier")
			}

		case stInt:
			switch d.Op {
			case ast.Signed, ast.Unsigned:
				state = stIntSign
				if d.Op == ast.Unsigned {
					firstTS.Op = ast.Unsigned
				}
			case ast.Short, ast.Long:
				state, firstTS.Op = stIntSize, d.Op
			default:
				return diag.Errorf(d.Pos, "more than one type specifier")
			}

		case stSizeSign, stSignSize:
			if d.Op == ast.Int {
				state = stEnd
			} else {
				return diag.Errorf(d.Pos, "more than one type specifier")
			}

		case stSizeInt, stIntSize:
			switch d.Op {
			case ast.Signed:
				state = stEnd
			case ast.Unsigned:
				state = stEnd
				firstTS.Op = shortOrLong(firstTS.Op, ast.UnsignedShort, ast.UnsignedLong)
			default:
				return diag.Errorf(d.Pos, "more than one type specifier")
			}

		case stSignInt, stIntSign:
			switch d.Op {
			case ast.Short, ast.Long:
				state = stEnd
				if firstTS.Op == ast.Unsigned {
					firstTS.Op = shortOrLong(d.Op, ast.UnsignedShort, ast.UnsignedLong)
				} else {
					firstTS.Op = d.Op
				}
			default:
				return diag.Errorf(d.Pos, "more than one type specifier")
			}

		case stEnd:
			return diag.Errorf(d.Pos, "more than one type specifier")
		}

		prev.Child = d.Child
		d = prev.Child
	}
}

// shortOrLong picks whichShort or whichLong depending on whether op is
// Short.
func shortOrLong(op ast.Opcode, whichShort, whichLong ast.Opcode) ast.Opcode {
	if op == ast.Short {
		return whichShort
	}
	return whichLong
}
