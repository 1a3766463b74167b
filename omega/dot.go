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

import "math"

// executeDot runs a reduction instruction: per active lane, both source
// lanes decompose into elements, the per-element products accumulate into
// one scalar, and the accumulator operand is added once at the end. The
// accumulator register is not decomposed.
func executeDot(def *operation, inst Instruction, wf ExecMask, regs RegisterFile) {
	lanes := wf.Size()
	s0 := readLanes(regs, inst.Src0, lanes)
	s1 := readLanes(regs, inst.Src1, lanes)
	s2 := readLanes(regs, inst.Src2, lanes)

	for lane := range lanes {
		if !wf.IsActive(lane) {
			continue
		}
		regs.WriteLane(inst.Dst, lane, def.dot(s0[lane], s1[lane], s2[lane], inst.Clamp))
	}
}

// dotSigned builds the signed integer reduction for the given element width.
// Each product is computed on sign-extended elements and individually
// reduced to the source element width before it joins the sum: clamped when
// saturating, truncated and re-sign-extended otherwise. That keeps one
// element's overflow from corrupting the whole reduction. The running sum
// itself wraps per normal 32-bit arithmetic; elements are summed in
// ascending order.
func dotSigned(width uint) dotFunc {
	return func(s0, s1, s2 uint32, clamp bool) uint32 {
		e0 := splitLane(s0, width)
		e1 := splitLane(s1, width)

		var sum int32
		for i := range e0 {
			product := signExtend(e0[i], width) * signExtend(e1[i], width)
			sum += clampSigned(product, width, clamp)
		}
		sum += int32(s2)
		return uint32(sum)
	}
}

// dotUnsigned builds the unsigned reduction. When saturating, each product
// is clamped to its element width before joining the sum; without the
// modifier the raw 32-bit products flow into the sum unchanged.
func dotUnsigned(width uint) dotFunc {
	return func(s0, s1, s2 uint32, clamp bool) uint32 {
		e0 := splitLane(s0, width)
		e1 := splitLane(s1, width)

		var sum uint32
		for i := range e0 {
			product := e0[i] * e1[i]
			if clamp {
				product = clampUnsigned(product, width, true)
			}
			sum += product
		}
		return sum + s2
	}
}

// dotF32F16 is the mixed-precision reduction: half-precision products,
// single-precision sum. Each product is computed through a fresh context,
// widened to float32 (exact), and clamped to [0, 1] when saturating before
// it joins the sum, so no single element can blow up the accumulation. The
// float32 accumulator operand is added last.
func dotF32F16(s0, s1, s2 uint32, clamp bool) uint32 {
	e0 := splitLane(s0, elemWidth16)
	e1 := splitLane(s1, elemWidth16)

	var sum float32
	for i := range e0 {
		product := NewFPContext().MulF16(Float16(e0[i]), Float16(e1[i]))
		widened := NewFPContext().ConvertF16ToF32(product)
		sum += clampF32(widened, clamp)
	}
	sum += math.Float32frombits(s2)
	return math.Float32bits(sum)
}
