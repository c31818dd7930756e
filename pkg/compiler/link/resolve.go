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

// Package link turns assemblies into resolved functions and checks that the functions of a unit only call functions
// that will exist at runtime.
package link

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/asm"
	"github.com/pulumi/rune/pkg/compiler/codegen"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/util/contract"
)

// Resolve replaces every symbolic jump of the function's assembly with a machine jump by relative offset, carries the
// spans, comments and labels over into debug information, and analyzes the stack of the result.  Every jump target
// must have been placed; each label that was not is reported once, at its first jump.
func Resolve(fn *codegen.Function) (*bytecode.Function, error) {
	contract.Require(fn != nil && fn.Asm != nil, "fn")

	a := fn.Asm
	src := a.Instructions()
	insts := make([]bytecode.Inst, len(src))
	debug := make([]bytecode.DebugInst, len(src))

	var result *multierror.Error
	missing := mapset.NewThreadUnsafeSet[asm.Label]()
	for pos, inst := range src {
		debug[pos] = bytecode.DebugInst{
			Span:     inst.Span,
			Comments: a.CommentsAt(pos),
			Labels:   labelNames(a.LabelsAt(pos)),
		}
		if !inst.IsJump() {
			insts[pos] = inst.Raw
			continue
		}
		target, has := a.Offset(inst.Label)
		if !has {
			if missing.Add(inst.Label) {
				result = multierror.Append(result, errors.New(errors.ErrorMissingLabel, inst.Span, inst.Label))
			}
			continue
		}
		insts[pos] = jumpInst(inst, target-(pos+1))
	}
	if err := flatten(result); err != nil {
		return nil, err
	}

	info, err := bytecode.AnalyzeStack(insts, fn.Args)
	if err != nil {
		span := fn.Span
		if serr, ok := err.(*bytecode.StackError); ok && serr.Offset < len(debug) {
			span = debug[serr.Offset].Span
		}
		return nil, errors.New(errors.ErrorStackImbalance, span, fn.Name, err)
	}
	if info.Exit != -1 {
		return nil, errors.New(errors.ErrorStackImbalance, fn.Span, fn.Name, "control falls off the end")
	}

	if glog.V(7) {
		glog.V(7).Infof("Resolved fn %v: %d instructions, max stack %d", fn.Name, len(insts), info.Max)
	}
	return &bytecode.Function{
		Hash:  fn.Hash,
		Name:  fn.Name,
		Args:  fn.Args,
		Insts: insts,
		Debug: debug,
		Stack: info,
		Span:  fn.Span,
	}, nil
}

func jumpInst(inst asm.Inst, offset int) bytecode.Inst {
	switch inst.Kind {
	case asm.Jump:
		return bytecode.Jump{Offset: offset}
	case asm.JumpIf:
		return bytecode.JumpIf{Offset: offset}
	case asm.JumpIfNot:
		return bytecode.JumpIfNot{Offset: offset}
	case asm.JumpIfBranch:
		return bytecode.JumpIfBranch{Branch: inst.Branch, Offset: offset}
	case asm.PopAndJumpIf:
		return bytecode.PopAndJumpIf{Count: inst.Count, Offset: offset}
	case asm.PopAndJumpIfNot:
		return bytecode.PopAndJumpIfNot{Count: inst.Count, Offset: offset}
	default:
		contract.Failf("Unrecognized jump kind %v", inst.Kind)
		return nil
	}
}

func labelNames(labels []asm.Label) []string {
	if len(labels) == 0 {
		return nil
	}
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.String()
	}
	return names
}

// flatten returns nil for no errors and the error itself for exactly one, so that single diagnostics can be matched
// directly.
func flatten(result *multierror.Error) error {
	if result == nil || len(result.Errors) == 0 {
		return nil
	}
	if len(result.Errors) == 1 {
		return result.Errors[0]
	}
	return result
}
