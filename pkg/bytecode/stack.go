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

	"github.com/golang/glog"
)

// StackInfo summarizes the stack traffic of an instruction sequence.
type StackInfo struct {
	Max  int // the deepest the stack gets, including the entry depth.
	Exit int // the depth when control falls off the end, or -1 if it never does.
}

// StackError describes an instruction whose stack effect cannot be satisfied.
type StackError struct {
	Offset int
	Reason string
}

func (e *StackError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Reason)
}

func stackErrorf(offset int, msg string, args ...interface{}) *StackError {
	return &StackError{Offset: offset, Reason: fmt.Sprintf(msg, args...)}
}

// AnalyzeStack simulates the stack depth along every control flow path through insts, starting at the given entry depth
// (the number of arguments in the frame).  Every offset must be reached at a single consistent depth; no instruction
// may pop more than is on the stack or address a slot that does not exist; and every jump must land inside the
// sequence or directly past its end.
func AnalyzeStack(insts []Inst, entry int) (StackInfo, error) {
	// depths[i] is the depth before executing insts[i]; the extra slot is the depth when falling off the end.
	depths := make([]int, len(insts)+1)
	for i := range depths {
		depths[i] = -1
	}

	var work []int
	reach := func(from, to, depth int) error {
		if to < 0 || to > len(insts) {
			return stackErrorf(from, "jump to offset %d is outside of the function", to)
		}
		if depths[to] == -1 {
			depths[to] = depth
			work = append(work, to)
		} else if depths[to] != depth {
			return stackErrorf(from, "offset %d is reached with depth %d and %d", to, depths[to], depth)
		}
		return nil
	}
	need := func(pos, depth, n int, inst Inst) error {
		if depth < n {
			return stackErrorf(pos, "%v needs %d values but the stack holds %d", inst, n, depth)
		}
		return nil
	}

	if err := reach(0, 0, entry); err != nil {
		return StackInfo{}, err
	}
	for len(work) > 0 {
		pos := work[len(work)-1]
		work = work[:len(work)-1]
		if pos == len(insts) {
			continue
		}

		depth := depths[pos]
		var err error
		switch inst := insts[pos].(type) {
		case Jump:
			err = reach(pos, pos+1+inst.Offset, depth)
		case JumpIf, JumpIfNot:
			if err = need(pos, depth, 1, inst); err == nil {
				target := pos + 1 + jumpOffset(inst)
				if err = reach(pos, pos+1, depth-1); err == nil {
					err = reach(pos, target, depth-1)
				}
			}
		case JumpIfBranch:
			if err = need(pos, depth, 1, inst); err == nil {
				if err = reach(pos, pos+1, depth); err == nil {
					err = reach(pos, pos+1+inst.Offset, depth-1)
				}
			}
		case PopAndJumpIf:
			err = popAndJump(pos, depth, inst.Count, inst.Offset, inst, need, reach)
		case PopAndJumpIfNot:
			err = popAndJump(pos, depth, inst.Count, inst.Offset, inst, need, reach)
		case Return:
			err = need(pos, depth, 1, inst)
		case ReturnUnit, Panic:
			// The path ends here.
		default:
			pop, push := inst.Effect()
			if err = need(pos, depth, pop, inst); err != nil {
				break
			}
			switch slot := inst.(type) {
			case Copy:
				if slot.Offset < 0 || slot.Offset >= depth {
					err = stackErrorf(pos, "%v addresses a slot outside of the %d on the stack", inst, depth)
				}
			case Replace:
				if slot.Offset < 0 || slot.Offset >= depth-1 {
					err = stackErrorf(pos, "%v addresses a slot outside of the %d beneath the value", inst, depth-1)
				}
			}
			if err == nil {
				err = reach(pos, pos+1, depth-pop+push)
			}
		}
		if err != nil {
			return StackInfo{}, err
		}
	}

	info := StackInfo{Max: entry, Exit: depths[len(insts)]}
	for _, d := range depths {
		if d > info.Max {
			info.Max = d
		}
	}
	if glog.V(7) {
		glog.V(7).Infof("Analyzed stack of %d instructions: max=%d exit=%d", len(insts), info.Max, info.Exit)
	}
	return info, nil
}

func jumpOffset(inst Inst) int {
	switch j := inst.(type) {
	case JumpIf:
		return j.Offset
	case JumpIfNot:
		return j.Offset
	}
	return 0
}

func popAndJump(pos, depth, count, offset int, inst Inst,
	need func(pos, depth, n int, inst Inst) error, reach func(from, to, depth int) error) error {
	if err := need(pos, depth, 1+count, inst); err != nil {
		return err
	}
	if err := reach(pos, pos+1, depth-1); err != nil {
		return err
	}
	return reach(pos, pos+1+offset, depth-1-count)
}
