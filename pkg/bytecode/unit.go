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

package bytecode

import (
	"fmt"
	"io"
	"strings"

	"github.com/blang/semver"

	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
	"github.com/pulumi/rune/pkg/util/contract"
)

// FormatVersion is the version of the instruction encoding produced by this package.  Consumers should refuse units
// whose major version differs from their own.
var FormatVersion = semver.MustParse("0.3.0")

// DebugInst carries the source information of one instruction.
type DebugInst struct {
	Span     diag.Span
	Comments []string // annotations attached when the instruction was emitted.
	Labels   []string // labels placed at this instruction, in placement order.
}

// Function is a compiled, fully resolved function.
type Function struct {
	Hash  tokens.Hash
	Name  tokens.Item
	Args  int
	Insts []Inst
	Debug []DebugInst // parallel to Insts.
	Stack StackInfo
	Span  diag.Span
}

// StructKind distinguishes the three shapes of struct declaration.
type StructKind int

const (
	EmptyStruct StructKind = iota
	TupleStruct
	NamedStruct
)

func (k StructKind) String() string {
	switch k {
	case EmptyStruct:
		return "empty"
	case TupleStruct:
		return "tuple"
	case NamedStruct:
		return "named"
	}
	return fmt.Sprintf("StructKind(%d)", int(k))
}

// Struct describes a declared struct type.
type Struct struct {
	Hash   tokens.Hash
	Name   tokens.Item
	Kind   StructKind
	Fields []tokens.Name
	Span   diag.Span
}

// CompilationUnit is the output of compiling one source file.
type CompilationUnit struct {
	Version   semver.Version
	Functions map[tokens.Hash]*Function
	Structs   map[tokens.Hash]*Struct
	Order     []tokens.Hash // functions in declaration order.
}

// NewCompilationUnit creates an empty unit stamped with the current format version.
func NewCompilationUnit() *CompilationUnit {
	return &CompilationUnit{
		Version:   FormatVersion,
		Functions: make(map[tokens.Hash]*Function),
		Structs:   make(map[tokens.Hash]*Struct),
	}
}

// AddFunction registers a function.  It returns false, leaving the unit unchanged, if the hash is already taken.
func (u *CompilationUnit) AddFunction(fn *Function) bool {
	contract.Require(fn != nil, "fn")
	if _, has := u.Functions[fn.Hash]; has {
		return false
	}
	u.Functions[fn.Hash] = fn
	u.Order = append(u.Order, fn.Hash)
	return true
}

// AddStruct registers a struct type.  It returns false, leaving the unit unchanged, if the hash is already taken.
func (u *CompilationUnit) AddStruct(st *Struct) bool {
	contract.Require(st != nil, "st")
	if _, has := u.Structs[st.Hash]; has {
		return false
	}
	u.Structs[st.Hash] = st
	return true
}

// Lookup finds a function by its item path.
func (u *CompilationUnit) Lookup(name tokens.Item) (*Function, bool) {
	fn, has := u.Functions[tokens.FunctionHash(name)]
	return fn, has
}

// IsCompatible returns true if a consumer built for the given format version can run this unit.
func (u *CompilationUnit) IsCompatible(consumer semver.Version) bool {
	return u.Version.Major == consumer.Major && u.Version.LTE(consumer)
}

// Dump writes a listing of every function in declaration order.
func (u *CompilationUnit) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "; unit v%v\n", u.Version); err != nil {
		return err
	}
	for _, hash := range u.Order {
		if err := u.Functions[hash].Dump(w); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes a listing of the function with its labels and comments.
func (fn *Function) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "fn %v (%v) args=%d max-stack=%d:\n", fn.Name, fn.Hash, fn.Args, fn.Stack.Max); err != nil {
		return err
	}
	for i, inst := range fn.Insts {
		var dbg DebugInst
		if i < len(fn.Debug) {
			dbg = fn.Debug[i]
		}
		for _, label := range dbg.Labels {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return err
			}
		}
		line := fmt.Sprintf("  %04d = %v", i, inst)
		if len(dbg.Comments) > 0 {
			line = fmt.Sprintf("%-40s ; %s", line, strings.Join(dbg.Comments, ", "))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
