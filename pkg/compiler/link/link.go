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

package link

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/codegen"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
	"github.com/pulumi/rune/pkg/util/contract"
)

// maxSuggestionDistance bounds how different a known name may be from a missing one to be suggested in its place.
const maxSuggestionDistance = 3

// MissingFunctionError reports a called function that exists neither in the unit nor among the externs.  It carries
// every call site; the diagnostic itself points at the first.
type MissingFunctionError struct {
	Err   *errors.Error
	Hash  tokens.Hash
	Name  string
	Spans []diag.Span
}

func (e *MissingFunctionError) Error() string { return e.Err.Error() }

// Cause returns the underlying diagnostic, so that it can be matched with errors.Is.
func (e *MissingFunctionError) Cause() error { return e.Err }

// Required merges the required functions of several assemblies.  Spans stay in function order, then call order.
func Required(fns []*codegen.Function) map[tokens.Hash][]diag.Span {
	required := make(map[tokens.Hash][]diag.Span)
	for _, fn := range fns {
		for hash, spans := range fn.Asm.RequiredFunctions() {
			required[hash] = append(required[hash], spans...)
		}
	}
	return required
}

// ResolveAll resolves every function of the output into a new unit and registers its structs.  The unit is not yet
// linked.
func ResolveAll(out *codegen.Output) (*bytecode.CompilationUnit, error) {
	contract.Require(out != nil, "out")

	unit := bytecode.NewCompilationUnit()
	for _, st := range out.Structs {
		contract.Assertf(unit.AddStruct(st), "struct %v added twice", st.Name)
	}
	for _, fn := range out.Functions {
		resolved, err := Resolve(fn)
		if err != nil {
			return nil, err
		}
		contract.Assertf(unit.AddFunction(resolved), "function %v added twice", fn.Name)
	}
	return unit, nil
}

// Unit resolves every function of the output and links the result against the externs.
func Unit(out *codegen.Output, externs []tokens.Item) (*bytecode.CompilationUnit, error) {
	unit, err := ResolveAll(out)
	if err != nil {
		return nil, err
	}
	if err := Link(unit, Required(out.Functions), externs); err != nil {
		return nil, err
	}
	return unit, nil
}

// Link checks every required function against the functions of the unit and the externs.  Each missing hash is
// reported once with all of its call sites; calls to functions of the unit must also pass the declared number of
// arguments.  All problems are returned together.
func Link(unit *bytecode.CompilationUnit, required map[tokens.Hash][]diag.Span, externs []tokens.Item) error {
	contract.Require(unit != nil, "unit")

	var result *multierror.Error
	known := mapset.NewThreadUnsafeSet[tokens.Hash]()
	for hash := range unit.Functions {
		known.Add(hash)
	}
	for _, extern := range externs {
		hash := tokens.FunctionHash(extern)
		if fn, has := unit.Functions[hash]; has {
			result = multierror.Append(result, errors.New(errors.ErrorDuplicateExtern, fn.Span, extern))
			continue
		}
		known.Add(hash)
	}

	names := calleeNames(unit)
	hashes := make([]tokens.Hash, 0, len(required))
	for hash := range required {
		hashes = append(hashes, hash)
	}
	sort.Slice(hashes, func(i, j int) bool { return hashes[i] < hashes[j] })

	for _, hash := range hashes {
		if known.Contains(hash) {
			continue
		}
		spans := required[hash]
		contract.Assert(len(spans) > 0)
		name, has := names[hash]
		if !has {
			name = hash.String()
		}
		suggestion := ""
		if match := closest(name, candidates(unit, externs)); match != "" {
			suggestion = fmt.Sprintf("; did you mean '%v'?", match)
		}
		result = multierror.Append(result, &MissingFunctionError{
			Err:   errors.New(errors.ErrorMissingFunction, spans[0], name, len(spans), suggestion),
			Hash:  hash,
			Name:  name,
			Spans: spans,
		})
	}

	result = checkArity(unit, result)
	err := flatten(result)
	if glog.V(5) {
		glog.V(5).Infof("Linked %d function(s) against %d extern(s): err=%v", len(unit.Functions), len(externs), err)
	}
	return err
}

// checkArity appends an error for every call within the unit that passes the wrong number of arguments.
func checkArity(unit *bytecode.CompilationUnit, result *multierror.Error) *multierror.Error {
	for _, hash := range unit.Order {
		fn := unit.Functions[hash]
		for pos, inst := range fn.Insts {
			call, ok := inst.(bytecode.Call)
			if !ok {
				continue
			}
			callee, has := unit.Functions[call.Hash]
			if !has || callee.Args == call.Args {
				continue
			}
			result = multierror.Append(result, errors.New(errors.ErrorArgumentCountMismatch,
				debugSpan(fn, pos), callee.Name, callee.Args, call.Args))
		}
	}
	return result
}

// calleeNames recovers the item names of called functions from the comments that annotate each call.
func calleeNames(unit *bytecode.CompilationUnit) map[tokens.Hash]string {
	names := make(map[tokens.Hash]string)
	for _, fn := range unit.Functions {
		for pos, inst := range fn.Insts {
			if call, ok := inst.(bytecode.Call); ok && pos < len(fn.Debug) && len(fn.Debug[pos].Comments) > 0 {
				names[call.Hash] = fn.Debug[pos].Comments[0]
			}
		}
	}
	return names
}

func candidates(unit *bytecode.CompilationUnit, externs []tokens.Item) []string {
	var names []string
	for _, fn := range unit.Functions {
		names = append(names, fn.Name.String())
	}
	for _, extern := range externs {
		names = append(names, extern.String())
	}
	sort.Strings(names)
	return names
}

// closest returns the candidate nearest to name, if any is within maxSuggestionDistance.  Ties go to the first
// candidate in sorted order.
func closest(name string, sorted []string) string {
	match := ""
	best := maxSuggestionDistance + 1
	for _, candidate := range sorted {
		d := levenshtein.DistanceForStrings(
			[]rune(strings.ToLower(name)),
			[]rune(strings.ToLower(candidate)),
			levenshtein.DefaultOptionsWithSub,
		)
		if d < best {
			best = d
			match = candidate
		}
	}
	return match
}

func debugSpan(fn *bytecode.Function, pos int) diag.Span {
	if pos < len(fn.Debug) {
		return fn.Debug[pos].Span
	}
	return fn.Span
}
