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

// Package asm implements the instruction buffer that a function body is compiled into.  Control flow is emitted
// against symbolic labels, so that a jump can be written before its target exists; the buffer is later handed to the
// resolver, which replaces every label with a relative offset.
package asm

import (
	"fmt"
	"sort"

	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
)

// Label is a symbolic jump target.  Labels are plain values; they carry no offset of their own.
type Label struct {
	Name string
	ID   int
}

func (l Label) String() string {
	return fmt.Sprintf("%s_%d", l.Name, l.ID)
}

// JumpKind enumerates the symbolic control flow instructions.
type JumpKind int

const (
	Jump JumpKind = iota
	JumpIf
	JumpIfNot
	JumpIfBranch
	PopAndJumpIf
	PopAndJumpIfNot
)

var jumpKindStrings = [...]string{
	Jump:            "jump",
	JumpIf:          "jump-if",
	JumpIfNot:       "jump-if-not",
	JumpIfBranch:    "jump-if-branch",
	PopAndJumpIf:    "pop-and-jump-if",
	PopAndJumpIfNot: "pop-and-jump-if-not",
}

func (k JumpKind) String() string { return jumpKindStrings[k] }

// Inst is one entry of the buffer: either a symbolic jump to a label or a raw machine instruction.
type Inst struct {
	Raw    bytecode.Inst // the instruction, if this is not a jump.
	Kind   JumpKind      // the kind of jump, if Raw is nil.
	Label  Label         // the target of the jump, if Raw is nil.
	Branch int64         // the value compared against by JumpIfBranch.
	Count  int           // the number of extra values popped by the PopAndJump kinds.
	Span   diag.Span
}

// IsJump returns true if the entry is a symbolic jump that still needs resolving.
func (i Inst) IsJump() bool { return i.Raw == nil }

func (i Inst) String() string {
	if i.Raw != nil {
		return i.Raw.String()
	}
	switch i.Kind {
	case JumpIfBranch:
		return fmt.Sprintf("%v %d, %v", i.Kind, i.Branch, i.Label)
	case PopAndJumpIf, PopAndJumpIfNot:
		return fmt.Sprintf("%v %d, %v", i.Kind, i.Count, i.Label)
	}
	return fmt.Sprintf("%v %v", i.Kind, i.Label)
}

// Assembly is the instruction buffer of a single function body.  It is owned by one compilation pass at a time.
type Assembly struct {
	labels            map[Label]int
	labelsRev         map[int][]Label
	instructions      []Inst
	comments          map[int][]string
	labelCount        int
	requiredFunctions map[tokens.Hash][]diag.Span
}

// New creates an empty assembly whose labels are numbered starting at labelCount, so that labels stay unique across
// the functions of a unit when the count is threaded from one assembly to the next.
func New(labelCount int) *Assembly {
	return &Assembly{
		labels:            make(map[Label]int),
		labelsRev:         make(map[int][]Label),
		comments:          make(map[int][]string),
		labelCount:        labelCount,
		requiredFunctions: make(map[tokens.Hash][]diag.Span),
	}
}

// NewLabel allocates a fresh label.  It is not placed until passed to Label.
func (a *Assembly) NewLabel(name string) Label {
	label := Label{Name: name, ID: a.labelCount}
	a.labelCount++
	return label
}

// Label places the label at the current end of the buffer.  A label may only be placed once.
func (a *Assembly) Label(label Label) (Label, error) {
	offset := len(a.instructions)
	if prev, has := a.labels[label]; has {
		return label, errors.New(errors.ErrorDuplicateLabel, a.spanAt(prev), label)
	}
	a.labels[label] = offset
	a.labelsRev[offset] = append(a.labelsRev[offset], label)
	if glog.V(7) {
		glog.V(7).Infof("Placed label %v at %d", label, offset)
	}
	return label, nil
}

// spanAt returns the span of the instruction at offset, if there is one yet.
func (a *Assembly) spanAt(offset int) diag.Span {
	if offset < len(a.instructions) {
		return a.instructions[offset].Span
	}
	return diag.EmptySpan
}

// Jump adds an unconditional jump to the label.
func (a *Assembly) Jump(label Label, span diag.Span) {
	a.pushJump(Inst{Kind: Jump, Label: label, Span: span})
}

// JumpIf adds a jump to the label taken when the popped value is true.
func (a *Assembly) JumpIf(label Label, span diag.Span) {
	a.pushJump(Inst{Kind: JumpIf, Label: label, Span: span})
}

// JumpIfNot adds a jump to the label taken when the popped value is false.
func (a *Assembly) JumpIfNot(label Label, span diag.Span) {
	a.pushJump(Inst{Kind: JumpIfNot, Label: label, Span: span})
}

// JumpIfBranch adds a jump to the label taken, popping the value, when the top of the stack equals branch.
func (a *Assembly) JumpIfBranch(branch int64, label Label, span diag.Span) {
	a.pushJump(Inst{Kind: JumpIfBranch, Label: label, Branch: branch, Span: span})
}

// PopAndJumpIf adds a jump to the label taken when the popped value is true, also popping count values.
func (a *Assembly) PopAndJumpIf(count int, label Label, span diag.Span) {
	a.pushJump(Inst{Kind: PopAndJumpIf, Label: label, Count: count, Span: span})
}

// PopAndJumpIfNot adds a jump to the label taken when the popped value is false, also popping count values.
func (a *Assembly) PopAndJumpIfNot(count int, label Label, span diag.Span) {
	a.pushJump(Inst{Kind: PopAndJumpIfNot, Label: label, Count: count, Span: span})
}

func (a *Assembly) pushJump(inst Inst) {
	if glog.V(7) {
		glog.V(7).Infof("%04d = %v", len(a.instructions), inst)
	}
	a.instructions = append(a.instructions, inst)
}

// Push adds a raw instruction.  Calls record their span under the callee's hash, so that the linker can later check
// that every called function exists.
func (a *Assembly) Push(raw bytecode.Inst, span diag.Span) {
	if call, ok := raw.(bytecode.Call); ok {
		a.requiredFunctions[call.Hash] = append(a.requiredFunctions[call.Hash], span)
	}
	if glog.V(7) {
		glog.V(7).Infof("%04d = %v", len(a.instructions), raw)
	}
	a.instructions = append(a.instructions, Inst{Raw: raw, Span: span})
}

// PushWithComment adds a raw instruction annotated with a comment.
func (a *Assembly) PushWithComment(raw bytecode.Inst, span diag.Span, comment string) {
	pos := len(a.instructions)
	a.comments[pos] = append(a.comments[pos], comment)
	a.Push(raw, span)
}

// Len returns the number of instructions in the buffer, which is also the offset the next label is placed at.
func (a *Assembly) Len() int { return len(a.instructions) }

// LabelCount returns the number of labels allocated so far, including those of earlier assemblies.
func (a *Assembly) LabelCount() int { return a.labelCount }

// Instructions returns the buffer contents.  The slice must not be modified.
func (a *Assembly) Instructions() []Inst { return a.instructions }

// Offset returns the offset a label was placed at.
func (a *Assembly) Offset(label Label) (int, bool) {
	offset, has := a.labels[label]
	return offset, has
}

// LabelsAt returns every label placed at the offset, in placement order.
func (a *Assembly) LabelsAt(offset int) []Label {
	return a.labelsRev[offset]
}

// LabelAt returns the label most recently placed at the offset.
func (a *Assembly) LabelAt(offset int) (Label, bool) {
	labels := a.labelsRev[offset]
	if len(labels) == 0 {
		return Label{}, false
	}
	return labels[len(labels)-1], true
}

// CommentsAt returns the comments attached to the instruction at the offset.
func (a *Assembly) CommentsAt(offset int) []string {
	return a.comments[offset]
}

// RequiredFunctions returns the hashes of every called function, each with the spans of its call sites in emission
// order.
func (a *Assembly) RequiredFunctions() map[tokens.Hash][]diag.Span {
	return a.requiredFunctions
}

// RequiredHashes returns the called hashes in ascending order, for deterministic reporting.
func (a *Assembly) RequiredHashes() []tokens.Hash {
	hashes := make([]tokens.Hash, 0, len(a.requiredFunctions))
	for h := range a.requiredFunctions {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })
	return hashes
}
