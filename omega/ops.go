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

// Opcode identifies one packed-math instruction.
type Opcode int

const (
	OpPkMadI16 Opcode = iota
	OpPkMulLoU16
	OpPkAddI16
	OpPkSubI16
	OpPkLshlrevB16
	OpPkLshrrevB16
	OpPkAshrrevB16
	OpPkMaxI16
	OpPkMinI16
	OpPkMadU16
	OpPkAddU16
	OpPkSubU16
	OpPkMaxU16
	OpPkMinU16
	OpPkFmaF16
	OpPkAddF16
	OpPkMulF16
	OpPkMinF16
	OpPkMaxF16
	OpDot2F32F16
	OpDot2I32I16
	OpDot2U32U16
	OpDot4I32I8
	OpDot4U32U8
	OpDot8I32I4
	OpDot8U32U4
	OpAccVGPRRead
	OpAccVGPRWrite

	numOpcodes
)

// String returns the ISA mnemonic.
func (op Opcode) String() string {
	if op < 0 || op >= numOpcodes {
		return "v_invalid"
	}
	return operations[op].mnemonic
}

// LookupOpcode resolves an ISA mnemonic such as "v_pk_add_i16".
func LookupOpcode(mnemonic string) (Opcode, bool) {
	op, ok := opcodeByMnemonic[mnemonic]
	return op, ok
}

// elemFunc computes one element of a packed instruction. Operands and result
// travel as the low bits of a uint32; the function interprets them at the
// operation's element width.
type elemFunc func(s0, s1, s2 uint32, clamp bool) uint32

// dotFunc computes a whole-lane reduction: both source lanes are decomposed
// into elements inside the function and one scalar comes back.
type dotFunc func(s0, s1, s2 uint32, clamp bool) uint32

type opKind int

const (
	opKindPacked opKind = iota
	opKindDot
	opKindMove
)

// operation carries everything the drivers need to run one opcode: element
// width, source operand count, and the element-level (or lane-level) formula.
type operation struct {
	mnemonic string
	kind     opKind
	width    uint
	operands int
	elem     elemFunc
	dot      dotFunc
}

var operations = [numOpcodes]operation{
	OpPkMadI16:     {mnemonic: "v_pk_mad_i16", kind: opKindPacked, width: elemWidth16, operands: 3, elem: pkMadI16},
	OpPkMulLoU16:   {mnemonic: "v_pk_mul_lo_u16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkMulLoU16},
	OpPkAddI16:     {mnemonic: "v_pk_add_i16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkAddI16},
	OpPkSubI16:     {mnemonic: "v_pk_sub_i16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkSubI16},
	OpPkLshlrevB16: {mnemonic: "v_pk_lshlrev_b16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkLshlrevB16},
	OpPkLshrrevB16: {mnemonic: "v_pk_lshrrev_b16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkLshrrevB16},
	OpPkAshrrevB16: {mnemonic: "v_pk_ashrrev_b16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkAshrrevB16},
	OpPkMaxI16:     {mnemonic: "v_pk_max_i16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkMaxI16},
	OpPkMinI16:     {mnemonic: "v_pk_min_i16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkMinI16},
	OpPkMadU16:     {mnemonic: "v_pk_mad_u16", kind: opKindPacked, width: elemWidth16, operands: 3, elem: pkMadU16},
	OpPkAddU16:     {mnemonic: "v_pk_add_u16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkAddU16},
	OpPkSubU16:     {mnemonic: "v_pk_sub_u16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkSubU16},
	OpPkMaxU16:     {mnemonic: "v_pk_max_u16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkMaxU16},
	OpPkMinU16:     {mnemonic: "v_pk_min_u16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkMinU16},
	OpPkFmaF16:     {mnemonic: "v_pk_fma_f16", kind: opKindPacked, width: elemWidth16, operands: 3, elem: pkFmaF16},
	OpPkAddF16:     {mnemonic: "v_pk_add_f16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkAddF16},
	OpPkMulF16:     {mnemonic: "v_pk_mul_f16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkMulF16},
	OpPkMinF16:     {mnemonic: "v_pk_min_f16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkMinF16},
	OpPkMaxF16:     {mnemonic: "v_pk_max_f16", kind: opKindPacked, width: elemWidth16, operands: 2, elem: pkMaxF16},
	OpDot2F32F16:   {mnemonic: "v_dot2_f32_f16", kind: opKindDot, width: elemWidth16, operands: 3, dot: dotF32F16},
	OpDot2I32I16:   {mnemonic: "v_dot2_i32_i16", kind: opKindDot, width: elemWidth16, operands: 3, dot: dotSigned(elemWidth16)},
	OpDot2U32U16:   {mnemonic: "v_dot2_u32_u16", kind: opKindDot, width: elemWidth16, operands: 3, dot: dotUnsigned(elemWidth16)},
	OpDot4I32I8:    {mnemonic: "v_dot4_i32_i8", kind: opKindDot, width: elemWidth8, operands: 3, dot: dotSigned(elemWidth8)},
	OpDot4U32U8:    {mnemonic: "v_dot4_u32_u8", kind: opKindDot, width: elemWidth8, operands: 3, dot: dotUnsigned(elemWidth8)},
	OpDot8I32I4:    {mnemonic: "v_dot8_i32_i4", kind: opKindDot, width: elemWidth4, operands: 3, dot: dotSigned(elemWidth4)},
	OpDot8U32U4:    {mnemonic: "v_dot8_u32_u4", kind: opKindDot, width: elemWidth4, operands: 3, dot: dotUnsigned(elemWidth4)},
	// The separate accumulator register file is gone on this hardware
	// generation, so the accvgpr transfers degenerate to whole-lane moves.
	OpAccVGPRRead:  {mnemonic: "v_accvgpr_read", kind: opKindMove, width: 32, operands: 1},
	OpAccVGPRWrite: {mnemonic: "v_accvgpr_write", kind: opKindMove, width: 32, operands: 1},
}

var opcodeByMnemonic = func() map[string]Opcode {
	m := make(map[string]Opcode, numOpcodes)
	for i := range operations {
		m[operations[i].mnemonic] = Opcode(i)
	}
	return m
}()

// pkBinI16 adapts a signed 16-bit binary formula to the raw element calling
// convention.
func pkBinI16(op func(a, b int16, clamp bool) int16) elemFunc {
	return func(s0, s1, _ uint32, clamp bool) uint32 {
		return uint32(uint16(op(int16(s0), int16(s1), clamp)))
	}
}

func pkTernI16(op func(a, b, c int16, clamp bool) int16) elemFunc {
	return func(s0, s1, s2 uint32, clamp bool) uint32 {
		return uint32(uint16(op(int16(s0), int16(s1), int16(s2), clamp)))
	}
}

func pkBinU16(op func(a, b uint16, clamp bool) uint16) elemFunc {
	return func(s0, s1, _ uint32, clamp bool) uint32 {
		return uint32(op(uint16(s0), uint16(s1), clamp))
	}
}

func pkTernU16(op func(a, b, c uint16, clamp bool) uint16) elemFunc {
	return func(s0, s1, s2 uint32, clamp bool) uint32 {
		return uint32(op(uint16(s0), uint16(s1), uint16(s2), clamp))
	}
}

func pkBinF16(op func(a, b Float16, clamp bool) Float16) elemFunc {
	return func(s0, s1, _ uint32, clamp bool) uint32 {
		return uint32(op(Float16(s0), Float16(s1), clamp).Bits())
	}
}

func pkTernF16(op func(a, b, c Float16, clamp bool) Float16) elemFunc {
	return func(s0, s1, s2 uint32, clamp bool) uint32 {
		return uint32(op(Float16(s0), Float16(s1), Float16(s2), clamp).Bits())
	}
}

var pkMadI16 = pkTernI16(func(a, b, c int16, clamp bool) int16 {
	return clampI16(int32(a)*int32(b)+int32(c), clamp)
})

var pkMulLoU16 = pkBinU16(func(a, b uint16, _ bool) uint16 {
	// Only the low 16 bits of the 32-bit product survive. This operation
	// cannot clamp.
	return uint16(uint32(a) * uint32(b))
})

var pkAddI16 = pkBinI16(func(a, b int16, clamp bool) int16 {
	return clampI16(int32(a)+int32(b), clamp)
})

var pkSubI16 = pkBinI16(func(a, b int16, clamp bool) int16 {
	return clampI16(int32(a)-int32(b), clamp)
})

var pkLshlrevB16 = pkBinU16(func(a, b uint16, _ bool) uint16 {
	// The shift amount rides in the low 4 bits of the first operand.
	// Shifts do not clamp.
	return b << (a & 0xF)
})

var pkLshrrevB16 = pkBinU16(func(a, b uint16, _ bool) uint16 {
	return b >> (a & 0xF)
})

var pkAshrrevB16 = pkBinI16(func(a, b int16, _ bool) int16 {
	// Sign-extend before shifting so sign bits are not lost, then truncate
	// back to 16 bits.
	return int16(int32(b) >> (uint16(a) & 0xF))
})

var pkMaxI16 = pkBinI16(func(a, b int16, clamp bool) int16 {
	return clampI16(int32(max(a, b)), clamp)
})

var pkMinI16 = pkBinI16(func(a, b int16, clamp bool) int16 {
	return clampI16(int32(min(a, b)), clamp)
})

var pkMadU16 = pkTernU16(func(a, b, c uint16, clamp bool) uint16 {
	return clampU16(uint32(a)*uint32(b)+uint32(c), clamp)
})

var pkAddU16 = pkBinU16(func(a, b uint16, clamp bool) uint16 {
	return clampU16(uint32(a)+uint32(b), clamp)
})

var pkSubU16 = pkBinU16(func(a, b uint16, clamp bool) uint16 {
	// A borrow wraps the 32-bit intermediate to a huge value, which the
	// clamp then pins at the top of the range, not at zero.
	return clampU16(uint32(a)-uint32(b), clamp)
})

var pkMaxU16 = pkBinU16(func(a, b uint16, clamp bool) uint16 {
	return clampU16(uint32(max(a, b)), clamp)
})

var pkMinU16 = pkBinU16(func(a, b uint16, clamp bool) uint16 {
	return clampU16(uint32(min(a, b)), clamp)
})

var pkFmaF16 = pkTernF16(func(a, b, c Float16, clamp bool) Float16 {
	ctx := NewFPContext()
	return clampF16(ctx.MulAddF16(c, a, b), clamp)
})

var pkAddF16 = pkBinF16(func(a, b Float16, clamp bool) Float16 {
	ctx := NewFPContext()
	return clampF16(ctx.AddF16(a, b), clamp)
})

var pkMulF16 = pkBinF16(func(a, b Float16, clamp bool) Float16 {
	ctx := NewFPContext()
	return clampF16(ctx.MulF16(a, b), clamp)
})

var pkMinF16 = pkBinF16(func(a, b Float16, clamp bool) Float16 {
	ctx := NewFPContext()
	return clampF16(ctx.MinF16(a, b), clamp)
})

var pkMaxF16 = pkBinF16(func(a, b Float16, clamp bool) Float16 {
	ctx := NewFPContext()
	return clampF16(ctx.MaxF16(a, b), clamp)
})
