// Copyright 2016-2026, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bytecode defines the instructions of the stack machine, the units that hold compiled functions, and the
// static analysis of their stack traffic.
package bytecode

import (
	"fmt"

	"github.com/pulumi/rune/pkg/tokens"
)

// Inst is a single machine instruction.  The set of instructions is closed; consumers switch over the concrete types.
type Inst interface {
	fmt.Stringer
	// Effect returns how many values the instruction pops and pushes when control falls through it.  For branches
	// this describes the fall-through edge; the taken edge is described by the branch itself.
	Effect() (pop int, push int)
	inst()
}

// Operator is a binary operator applied by Op.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Rem
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
)

var operatorStrings = [...]string{
	Add: "add", Sub: "sub", Mul: "mul", Div: "div", Rem: "rem",
	Eq: "eq", Neq: "neq", Lt: "lt", Lte: "lte", Gt: "gt", Gte: "gte",
}

func (op Operator) String() string { return operatorStrings[op] }

type (
	// Unit pushes the unit value.
	Unit struct{}
	// Pop discards the top of the stack.
	Pop struct{}
	// PopN discards the top Count values.
	PopN struct{ Count int }
	// Clean keeps the top of the stack while discarding the Count values beneath it.
	Clean struct{ Count int }
	// Integer pushes an integer constant.
	Integer struct{ Value int64 }
	// Bool pushes a boolean constant.
	Bool struct{ Value bool }
	// String pushes a string constant.
	String struct{ Value string }
	// Copy pushes a copy of the value in the given frame slot.
	Copy struct{ Offset int }
	// Replace pops the top of the stack and stores it in the given frame slot.
	Replace struct{ Offset int }
	// Op pops two operands and pushes the result of the operator.
	Op struct{ Op Operator }
	// Not pops a boolean and pushes its negation.
	Not struct{}
	// Neg pops a number and pushes its negation.
	Neg struct{}
	// Call pops Args arguments, calls the function identified by Hash, and pushes its result.
	Call struct {
		Hash tokens.Hash
		Args int
	}
	// TypedTuple pops Count values and pushes an instance of the struct identified by Hash.
	TypedTuple struct {
		Hash  tokens.Hash
		Count int
	}
	// IndexGet pops an index and a target and pushes the element.
	IndexGet struct{}
	// IndexSet pops a target, an index and a value, and stores the value in the target.
	IndexSet struct{}
	// Await pops a future, suspends until it completes, and pushes its result.
	Await struct{}
	// Vec pops Count values and pushes a vector of them.
	Vec struct{ Count int }
	// Tuple pops Count values and pushes a tuple of them.
	Tuple struct{ Count int }
	// Return pops the top of the stack and returns it, discarding the frame.
	Return struct{}
	// ReturnUnit returns unit, discarding the frame.
	ReturnUnit struct{}
	// Panic aborts execution.
	Panic struct{ Reason string }
	// Jump transfers control by a relative offset from the next instruction.
	Jump struct{ Offset int }
	// JumpIf pops a boolean and jumps if it is true.
	JumpIf struct{ Offset int }
	// JumpIfNot pops a boolean and jumps if it is false.
	JumpIfNot struct{ Offset int }
	// JumpIfBranch pops the top of the stack and jumps if it equals Branch; otherwise the value stays in place.
	JumpIfBranch struct {
		Branch int64
		Offset int
	}
	// PopAndJumpIf pops a boolean; if it is true, it also pops Count values and jumps.
	PopAndJumpIf struct {
		Count  int
		Offset int
	}
	// PopAndJumpIfNot pops a boolean; if it is false, it also pops Count values and jumps.
	PopAndJumpIfNot struct {
		Count  int
		Offset int
	}
)

func (Unit) Effect() (int, int)            { return 0, 1 }
func (Pop) Effect() (int, int)             { return 1, 0 }
func (i PopN) Effect() (int, int)          { return i.Count, 0 }
func (i Clean) Effect() (int, int)         { return i.Count + 1, 1 }
func (Integer) Effect() (int, int)         { return 0, 1 }
func (Bool) Effect() (int, int)            { return 0, 1 }
func (String) Effect() (int, int)          { return 0, 1 }
func (Copy) Effect() (int, int)            { return 0, 1 }
func (Replace) Effect() (int, int)         { return 1, 0 }
func (Op) Effect() (int, int)              { return 2, 1 }
func (Not) Effect() (int, int)             { return 1, 1 }
func (Neg) Effect() (int, int)             { return 1, 1 }
func (i Call) Effect() (int, int)          { return i.Args, 1 }
func (i TypedTuple) Effect() (int, int)    { return i.Count, 1 }
func (IndexGet) Effect() (int, int)        { return 2, 1 }
func (IndexSet) Effect() (int, int)        { return 3, 0 }
func (Await) Effect() (int, int)           { return 1, 1 }
func (i Vec) Effect() (int, int)           { return i.Count, 1 }
func (i Tuple) Effect() (int, int)         { return i.Count, 1 }
func (Return) Effect() (int, int)          { return 1, 0 }
func (ReturnUnit) Effect() (int, int)      { return 0, 0 }
func (Panic) Effect() (int, int)           { return 0, 0 }
func (Jump) Effect() (int, int)            { return 0, 0 }
func (JumpIf) Effect() (int, int)          { return 1, 0 }
func (JumpIfNot) Effect() (int, int)       { return 1, 0 }
func (JumpIfBranch) Effect() (int, int)    { return 0, 0 }
func (PopAndJumpIf) Effect() (int, int)    { return 1, 0 }
func (PopAndJumpIfNot) Effect() (int, int) { return 1, 0 }

func (Unit) String() string         { return "unit" }
func (Pop) String() string          { return "pop" }
func (i PopN) String() string       { return fmt.Sprintf("pop-n %d", i.Count) }
func (i Clean) String() string      { return fmt.Sprintf("clean %d", i.Count) }
func (i Integer) String() string    { return fmt.Sprintf("integer %d", i.Value) }
func (i Bool) String() string       { return fmt.Sprintf("bool %t", i.Value) }
func (i String) String() string     { return fmt.Sprintf("string %q", i.Value) }
func (i Copy) String() string       { return fmt.Sprintf("copy %d", i.Offset) }
func (i Replace) String() string    { return fmt.Sprintf("replace %d", i.Offset) }
func (i Op) String() string         { return fmt.Sprintf("op %v", i.Op) }
func (Not) String() string          { return "not" }
func (Neg) String() string          { return "neg" }
func (i Call) String() string       { return fmt.Sprintf("call %v, %d", i.Hash, i.Args) }
func (i TypedTuple) String() string { return fmt.Sprintf("typed-tuple %v, %d", i.Hash, i.Count) }
func (IndexGet) String() string     { return "index-get" }
func (IndexSet) String() string     { return "index-set" }
func (Await) String() string        { return "await" }
func (i Vec) String() string        { return fmt.Sprintf("vec %d", i.Count) }
func (i Tuple) String() string      { return fmt.Sprintf("tuple %d", i.Count) }
func (Return) String() string       { return "return" }
func (ReturnUnit) String() string   { return "return-unit" }
func (i Panic) String() string      { return fmt.Sprintf("panic %q", i.Reason) }
func (i Jump) String() string       { return fmt.Sprintf("jump %+d", i.Offset) }
func (i JumpIf) String() string     { return fmt.Sprintf("jump-if %+d", i.Offset) }
func (i JumpIfNot) String() string  { return fmt.Sprintf("jump-if-not %+d", i.Offset) }
func (i JumpIfBranch) String() string {
	return fmt.Sprintf("jump-if-branch %d, %+d", i.Branch, i.Offset)
}
func (i PopAndJumpIf) String() string {
	return fmt.Sprintf("pop-and-jump-if %d, %+d", i.Count, i.Offset)
}
func (i PopAndJumpIfNot) String() string {
	return fmt.Sprintf("pop-and-jump-if-not %d, %+d", i.Count, i.Offset)
}

func (Unit) inst()            {}
func (Pop) inst()             {}
func (PopN) inst()            {}
func (Clean) inst()           {}
func (Integer) inst()         {}
func (Bool) inst()            {}
func (String) inst()          {}
func (Copy) inst()            {}
func (Replace) inst()         {}
func (Op) inst()              {}
func (Not) inst()             {}
func (Neg) inst()             {}
func (Call) inst()            {}
func (TypedTuple) inst()      {}
func (IndexGet) inst()        {}
func (IndexSet) inst()        {}
func (Await) inst()           {}
func (Vec) inst()             {}
func (Tuple) inst()           {}
func (Return) inst()          {}
func (ReturnUnit) inst()      {}
func (Panic) inst()           {}
func (Jump) inst()            {}
func (JumpIf) inst()          {}
func (JumpIfNot) inst()       {}
func (JumpIfBranch) inst()    {}
func (PopAndJumpIf) inst()    {}
func (PopAndJumpIfNot) inst() {}

// IsTerminator is true for instructions after which control never falls through.
func IsTerminator(i Inst) bool {
	switch i.(type) {
	case Return, ReturnUnit, Panic, Jump:
		return true
	}
	return false
}
