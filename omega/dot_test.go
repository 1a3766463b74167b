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

import (
	"math"
	"testing"
)

func TestDot2I32I16(t *testing.T) {
	// {-2, 3} . {5, 7} = -10 + 21 = 11, plus accumulator 100.
	s0 := pack16(0xFFFE, 3)
	s1 := pack16(5, 7)
	if got := runOp(t, OpDot2I32I16, s0, s1, 100, false); got != 111 {
		t.Fatalf("expected 111, got %d", int32(got))
	}

	// Saturating: each product is clamped to int16 before the sum.
	// 0x7FFF * 0x7FFF overflows int16; the clamped products sum to
	// 2*32767 = 65534.
	s0 = pack16(0x7FFF, 0x7FFF)
	s1 = pack16(0x7FFF, 0x7FFF)
	if got := runOp(t, OpDot2I32I16, s0, s1, 0, true); got != 65534 {
		t.Fatalf("expected 65534, got %d", int32(got))
	}
	// Non-saturating: products are truncated to 16 bits and re-sign-
	// extended. 0x7FFF^2 = 0x3FFF0001, low 16 bits 0x0001.
	if got := runOp(t, OpDot2I32I16, s0, s1, 0, false); got != 2 {
		t.Fatalf("expected 2, got %d", int32(got))
	}
}

func TestDot4I32I8(t *testing.T) {
	// Bytes {1, -1, 127, -128} . {1, 1, 1, 1}: every product is already
	// inside int8 range, so the clamp leaves them alone and the sum is -1.
	s0 := uint32(0x807FFF01)
	s1 := uint32(0x01010101)
	if got := runOp(t, OpDot4I32I8, s0, s1, 0, true); int32(got) != -1 {
		t.Fatalf("expected -1, got %d", int32(got))
	}

	// -128 * -128 = 16384 clamps to 127 per element.
	s0 = 0x80808080
	s1 = 0x80808080
	if got := runOp(t, OpDot4I32I8, s0, s1, 0, true); got != 4*127 {
		t.Fatalf("expected %d, got %d", 4*127, int32(got))
	}
	// Without saturation the product truncates to its low 8 bits:
	// 16384 & 0xFF = 0.
	if got := runOp(t, OpDot4I32I8, s0, s1, 0, false); got != 0 {
		t.Fatalf("expected 0, got %d", int32(got))
	}
}

func TestDot8I32I4(t *testing.T) {
	// All eight elements -1 on one side, 1 on the other: sum -8.
	if got := runOp(t, OpDot8I32I4, 0xFFFFFFFF, 0x11111111, 0, true); int32(got) != -8 {
		t.Fatalf("expected -8, got %d", int32(got))
	}
	// -8 * -8 = 64 clamps to the int4 maximum 7.
	if got := runOp(t, OpDot8I32I4, 0x88888888, 0x88888888, 0, true); got != 8*7 {
		t.Fatalf("expected %d, got %d", 8*7, int32(got))
	}
	// 64 & 0xF = 0 without saturation.
	if got := runOp(t, OpDot8I32I4, 0x88888888, 0x88888888, 0, false); got != 0 {
		t.Fatalf("expected 0, got %d", int32(got))
	}
	// Accumulator is added once.
	if got := runOp(t, OpDot8I32I4, 0xFFFFFFFF, 0x11111111, 10, false); got != 2 {
		t.Fatalf("expected 2, got %d", int32(got))
	}
}

func TestDot2U32U16(t *testing.T) {
	// 0xFFFF * 0xFFFF = 0xFFFE0001 per element, clamped to 0xFFFF, summed
	// to 0x1FFFE.
	if got := runOp(t, OpDot2U32U16, 0xFFFFFFFF, 0xFFFFFFFF, 0, true); got != 0x1FFFE {
		t.Fatalf("expected 0x1FFFE, got %#x", got)
	}
	// Without saturation the raw products flow into the 32-bit sum and
	// the sum wraps: 2*0xFFFE0001 mod 2^32.
	if got := runOp(t, OpDot2U32U16, 0xFFFFFFFF, 0xFFFFFFFF, 0, false); got != 0xFFFC0002 {
		t.Fatalf("expected 0xFFFC0002, got %#x", got)
	}
	// Accumulator.
	if got := runOp(t, OpDot2U32U16, pack16(2, 3), pack16(4, 5), 7, false); got != 2*4+3*5+7 {
		t.Fatalf("expected %d, got %d", 2*4+3*5+7, got)
	}
}

func TestDot4U32U8(t *testing.T) {
	// {255, 255, 0, 0} . {255, 255, 0, 0}: products 0xFE01, clamped to
	// 0xFF each.
	if got := runOp(t, OpDot4U32U8, 0x0000FFFF, 0x0000FFFF, 0, true); got != 2*0xFF {
		t.Fatalf("expected %d, got %d", 2*0xFF, got)
	}
	if got := runOp(t, OpDot4U32U8, 0x0000FFFF, 0x0000FFFF, 0, false); got != 2*0xFE01 {
		t.Fatalf("expected %d, got %d", 2*0xFE01, got)
	}
}

func TestDot8U32U4(t *testing.T) {
	// All elements 15: products 225, clamped to 15, eight of them.
	if got := runOp(t, OpDot8U32U4, 0xFFFFFFFF, 0xFFFFFFFF, 0, true); got != 8*15 {
		t.Fatalf("expected %d, got %d", 8*15, got)
	}
	if got := runOp(t, OpDot8U32U4, 0xFFFFFFFF, 0xFFFFFFFF, 0, false); got != 8*225 {
		t.Fatalf("expected %d, got %d", 8*225, got)
	}
}

func TestDot2F32F16(t *testing.T) {
	// {1.0, 2.0} . {1.0, 1.0} with accumulator 0.5.
	s0 := pack16(0x3C00, 0x4000)
	s1 := pack16(0x3C00, 0x3C00)
	acc := math.Float32bits(0.5)

	got := math.Float32frombits(runOp(t, OpDot2F32F16, s0, s1, acc, false))
	if got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}

	// Saturating: each widened product is clamped to [0, 1] before the
	// sum, so the 2.0 product contributes only 1.0.
	got = math.Float32frombits(runOp(t, OpDot2F32F16, s0, s1, acc, true))
	if got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}

	// The accumulator itself is not clamped.
	acc = math.Float32bits(10.0)
	got = math.Float32frombits(runOp(t, OpDot2F32F16, s0, s1, acc, true))
	if got != 12.0 {
		t.Fatalf("expected 12.0, got %v", got)
	}
}

// Float addition is not associative, so the reduction order is part of the
// contract: element 0 joins the sum first.
func TestDot2F32F16ReductionOrder(t *testing.T) {
	s0 := pack16(0x7BFF, 0x3400) // {65504, 0.25}
	s1 := pack16(0x3C00, 0x3C00)
	expected := float32(65504) + 0.25
	got := math.Float32frombits(runOp(t, OpDot2F32F16, s0, s1, 0, false))
	if got != expected {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}
