// Copyright 2025 Google LLC
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

package omega

import "errors"

var errUnknownOpcode = errors.New("unknown opcode")

// Instruction is one decoded packed-math instruction: the opcode, the vector
// register indices of its destination and sources, and the clamp modifier
// selecting saturating semantics. Unused source slots are ignored.
type Instruction struct {
	Op    Opcode
	Dst   int
	Src0  int
	Src1  int
	Src2  int
	Clamp bool
}

// Execute runs one instruction across all active lanes of the wavefront,
// reading sources from and writing the destination to regs. Lanes whose EXEC
// bit is clear are left untouched. The call is a pure function of its
// inputs: identical register and mask state produces identical results.
func Execute(inst Instruction, wf ExecMask, regs RegisterFile) error {
	if inst.Op < 0 || inst.Op >= numOpcodes {
		return errUnknownOpcode
	}
	def := &operations[inst.Op]
	switch def.kind {
	case opKindPacked:
		executePacked(def, inst, wf, regs)
	case opKindDot:
		executeDot(def, inst, wf, regs)
	case opKindMove:
		executeMove(inst, wf, regs)
	default:
		panic("unreachable")
	}
	return nil
}

// readLanes snapshots every lane of a source register. All sources are read
// before any destination lane is written, so an instruction may name the
// same register as source and destination.
func readLanes(regs RegisterFile, reg, lanes int) []uint32 {
	values := make([]uint32, lanes)
	for lane := range values {
		values[lane] = regs.ReadLane(reg, lane)
	}
	return values
}

func executePacked(def *operation, inst Instruction, wf ExecMask, regs RegisterFile) {
	lanes := wf.Size()
	s0 := readLanes(regs, inst.Src0, lanes)
	s1 := readLanes(regs, inst.Src1, lanes)
	var s2 []uint32
	if def.operands == 3 {
		s2 = readLanes(regs, inst.Src2, lanes)
	}

	for lane := range lanes {
		if !wf.IsActive(lane) {
			continue
		}
		e0 := splitLane(s0[lane], def.width)
		e1 := splitLane(s1[lane], def.width)
		var e2 []uint32
		if s2 != nil {
			e2 = splitLane(s2[lane], def.width)
		}

		result := make([]uint32, len(e0))
		for i := range e0 {
			var c uint32
			if e2 != nil {
				c = e2[i]
			}
			result[i] = def.elem(e0[i], e1[i], c, inst.Clamp)
		}
		regs.WriteLane(inst.Dst, lane, joinLane(result, def.width))
	}
}

// executeMove copies source lanes to destination lanes unchanged. The
// accvgpr transfers use this path.
func executeMove(inst Instruction, wf ExecMask, regs RegisterFile) {
	lanes := wf.Size()
	src := readLanes(regs, inst.Src0, lanes)
	for lane := range lanes {
		if wf.IsActive(lane) {
			regs.WriteLane(inst.Dst, lane, src[lane])
		}
	}
}
