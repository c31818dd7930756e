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

package codegen

import (
	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/asm"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
	"github.com/pulumi/rune/pkg/util/contract"
)

// local is a named slot in the frame.
type local struct {
	Name tokens.Name
	Slot int
}

// locals is the stack of variables visible at the current point of a function.  Inner declarations shadow outer ones.
type locals struct {
	vars []local
}

func (l *locals) declare(name tokens.Name, slot int) {
	l.vars = append(l.vars, local{Name: name, Slot: slot})
}

func (l *locals) lookup(name tokens.Name) (int, bool) {
	for i := len(l.vars) - 1; i >= 0; i-- {
		if l.vars[i].Name == name {
			return l.vars[i].Slot, true
		}
	}
	return 0, false
}

// mark returns a point that truncate can later return to, dropping every variable declared since.
func (l *locals) mark() int { return len(l.vars) }

func (l *locals) truncate(mark int) {
	contract.Assert(mark <= len(l.vars))
	l.vars = l.vars[:mark]
}

// loop records what a `break` needs to leave the innermost loop.
type loop struct {
	End   asm.Label
	Depth int // the stack depth outside of the loop.
}

// fnCompiler compiles the body of one function into its own assembly.  It tracks the stack depth the emitted code
// will have at the current point, so that locals can be addressed by slot and breaks can unwind to their loop.
type fnCompiler struct {
	unit   *Compiler
	asm    *asm.Assembly
	locals locals
	loops  []loop
	depth  int
}

func newFnCompiler(unit *Compiler, a *asm.Assembly, entry int) *fnCompiler {
	return &fnCompiler{unit: unit, asm: a, depth: entry}
}

// push emits a raw instruction and applies its stack effect to the tracked depth.
func (fc *fnCompiler) push(inst bytecode.Inst, span diag.Span) {
	fc.asm.Push(inst, span)
	fc.apply(inst)
}

func (fc *fnCompiler) pushWithComment(inst bytecode.Inst, span diag.Span, comment string) {
	fc.asm.PushWithComment(inst, span, comment)
	fc.apply(inst)
}

func (fc *fnCompiler) apply(inst bytecode.Inst) {
	pop, push := inst.Effect()
	contract.Assertf(fc.depth >= pop, "%v pops %d values but only %d are tracked", inst, pop, fc.depth)
	fc.depth += push - pop
}

// The jump helpers track the depth along the fall-through edge.

func (fc *fnCompiler) jump(l asm.Label, span diag.Span) {
	fc.asm.Jump(l, span)
}

func (fc *fnCompiler) jumpIf(l asm.Label, span diag.Span) {
	fc.asm.JumpIf(l, span)
	fc.depth--
}

func (fc *fnCompiler) jumpIfNot(l asm.Label, span diag.Span) {
	fc.asm.JumpIfNot(l, span)
	fc.depth--
}

func (fc *fnCompiler) jumpIfBranch(branch int64, l asm.Label, span diag.Span) {
	fc.asm.JumpIfBranch(branch, l, span)
}

func (fc *fnCompiler) popAndJumpIfNot(count int, l asm.Label, span diag.Span) {
	fc.asm.PopAndJumpIfNot(count, l, span)
	fc.depth--
}

func (fc *fnCompiler) label(l asm.Label) error {
	_, err := fc.asm.Label(l)
	return err
}

// clean removes count values from beneath the top of the stack, keeping the top if a value is needed.
func (fc *fnCompiler) clean(count int, needs Needs, span diag.Span) {
	if count == 0 {
		return
	}
	if needs.Value() {
		fc.push(bytecode.Clean{Count: count}, span)
	} else {
		fc.push(bytecode.PopN{Count: count}, span)
	}
}

// produce satisfies the caller of an expression that has no value of its own.
func (fc *fnCompiler) produce(needs Needs, span diag.Span) {
	if needs.Value() {
		fc.push(bytecode.Unit{}, span)
	}
}

// discard drops the value an expression produced if its caller does not need it.
func (fc *fnCompiler) discard(needs Needs, span diag.Span) {
	if !needs.Value() {
		fc.push(bytecode.Pop{}, span)
	}
}
