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

func TestAddF16(t *testing.T) {
	ctx := NewFPContext()
	if got := ctx.AddF16(float16One, float16One); got != Float16(0x4000) {
		t.Fatalf("expected 2.0 (0x4000), got %#04x", got.Bits())
	}
	if ctx.Flags != 0 {
		t.Fatalf("exact sum raised flags %#x", ctx.Flags)
	}

	ctx = NewFPContext()
	if got := ctx.AddF16(float16Inf, float16NegInf); got != float16QNaN {
		t.Fatalf("expected default NaN, got %#04x", got.Bits())
	}
	if ctx.Flags&FlagInvalid == 0 {
		t.Fatalf("Inf - Inf must raise invalid")
	}
}

func TestMulF16(t *testing.T) {
	ctx := NewFPContext()
	if got := ctx.MulF16(Float16FromFloat32(1.5), Float16(0x4000)); got != Float16(0x4200) {
		t.Fatalf("expected 3.0 (0x4200), got %#04x", got.Bits())
	}

	ctx = NewFPContext()
	if got := ctx.MulF16(float16Zero, float16Inf); got != float16QNaN {
		t.Fatalf("expected default NaN, got %#04x", got.Bits())
	}
	if ctx.Flags&FlagInvalid == 0 {
		t.Fatalf("0 * Inf must raise invalid")
	}
}

func TestMulAddF16(t *testing.T) {
	// 0.25 + 1.5*2.0 = 3.25
	ctx := NewFPContext()
	got := ctx.MulAddF16(Float16FromFloat32(0.25), Float16FromFloat32(1.5), Float16(0x4000))
	if got != Float16(0x4280) {
		t.Fatalf("expected 3.25 (0x4280), got %#04x", got.Bits())
	}
}

func TestMinMaxF16NaN(t *testing.T) {
	ctx := NewFPContext()
	if got := ctx.MinF16(float16QNaN, float16One); got != float16QNaN {
		t.Fatalf("expected default NaN, got %#04x", got.Bits())
	}
	if ctx.Flags&FlagInvalid != 0 {
		t.Fatalf("quiet NaN must not raise invalid")
	}

	ctx = NewFPContext()
	if got := ctx.MaxF16(float16One, Float16(0x7D00)); got != float16QNaN {
		t.Fatalf("expected default NaN, got %#04x", got.Bits())
	}
	if ctx.Flags&FlagInvalid == 0 {
		t.Fatalf("signaling NaN must raise invalid")
	}
}

func TestMinMaxF16SignedZero(t *testing.T) {
	ctx := NewFPContext()
	if got := ctx.MinF16(float16Zero, float16NegZero); got != float16NegZero {
		t.Fatalf("min(+0, -0): expected -0, got %#04x", got.Bits())
	}
	if got := ctx.MaxF16(float16NegZero, float16Zero); got != float16Zero {
		t.Fatalf("max(-0, +0): expected +0, got %#04x", got.Bits())
	}
}

func TestMinMaxF16Ordering(t *testing.T) {
	a := Float16FromFloat32(-2.5)
	b := Float16FromFloat32(0.125)
	ctx := NewFPContext()
	if got := ctx.MinF16(a, b); got != a {
		t.Fatalf("expected %#04x, got %#04x", a.Bits(), got.Bits())
	}
	if got := ctx.MaxF16(a, b); got != b {
		t.Fatalf("expected %#04x, got %#04x", b.Bits(), got.Bits())
	}
}

func TestRoundingModes(t *testing.T) {
	// 1.0 + smallest denormal is inexact in half precision; the mode
	// decides which neighbor wins.
	one := float16One
	tiny := Float16(0x0001)

	tests := []struct {
		mode     RoundingMode
		expected Float16
	}{
		{RoundNearestEven, 0x3C00},
		{RoundTowardZero, 0x3C00},
		{RoundTowardPositive, 0x3C01},
		{RoundTowardNegative, 0x3C00},
	}
	for _, tt := range tests {
		ctx := &FPContext{Rounding: tt.mode}
		got := ctx.AddF16(one, tiny)
		if got != tt.expected {
			t.Fatalf("mode %d: expected %#04x, got %#04x", tt.mode, tt.expected, got.Bits())
		}
		if ctx.Flags&FlagInexact == 0 {
			t.Fatalf("mode %d: expected inexact flag", tt.mode)
		}
	}
}

func TestOverflowF16(t *testing.T) {
	maxVal := float16Max

	ctx := NewFPContext()
	if got := ctx.AddF16(maxVal, maxVal); got != float16Inf {
		t.Fatalf("expected +Inf, got %#04x", got.Bits())
	}
	if ctx.Flags&FlagOverflow == 0 {
		t.Fatalf("expected overflow flag")
	}

	ctx = &FPContext{Rounding: RoundTowardZero}
	if got := ctx.AddF16(maxVal, maxVal); got != float16Max {
		t.Fatalf("round toward zero: expected max finite, got %#04x", got.Bits())
	}
}

func TestConvertF16ToF32(t *testing.T) {
	ctx := NewFPContext()
	if got := ctx.ConvertF16ToF32(Float16FromFloat32(1.5)); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
	got := ctx.ConvertF16ToF32(Float16(0x7E01))
	if math.Float32bits(got) != 0x7FC00000 {
		t.Fatalf("expected canonical NaN, got %#08x", math.Float32bits(got))
	}
}
