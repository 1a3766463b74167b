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

// RoundingMode selects how inexact floating-point results are rounded.
type RoundingMode int

const (
	RoundNearestEven RoundingMode = iota
	RoundTowardZero
	RoundTowardPositive
	RoundTowardNegative
)

// FPFlags is a bit set of IEEE 754 exception flags raised by a primitive.
type FPFlags uint8

const (
	FlagInvalid FPFlags = 1 << iota
	FlagOverflow
	FlagUnderflow
	FlagInexact
)

// FPContext is the floating-point status consulted by one primitive
// operation: the rounding mode in effect and the exception flags the
// primitive raised. Packed-math instructions construct a fresh context for
// every individual primitive call so that no rounding or exception state
// leaks between unrelated element computations.
type FPContext struct {
	Rounding RoundingMode
	Flags    FPFlags
}

// NewFPContext returns a context with the default round-to-nearest-even mode
// and no flags raised.
func NewFPContext() *FPContext {
	return &FPContext{Rounding: RoundNearestEven}
}

// AddF16 returns a+b rounded to half precision.
//
// Two half-precision values sum exactly in float64 (11 significand bits
// spread over at most 30 binades), so the single rounding step below is the
// only rounding that happens.
func (c *FPContext) AddF16(a, b Float16) Float16 {
	if a.IsNaN() || b.IsNaN() {
		return c.propagateNaN(a, b)
	}
	sum := a.Float64() + b.Float64()
	if math.IsNaN(sum) {
		// Inf + -Inf.
		c.Flags |= FlagInvalid
		return float16QNaN
	}
	return c.round(sum)
}

// MulF16 returns a*b rounded to half precision. The float64 product of two
// halves is exact (at most 22 significand bits).
func (c *FPContext) MulF16(a, b Float16) Float16 {
	if a.IsNaN() || b.IsNaN() {
		return c.propagateNaN(a, b)
	}
	prod := a.Float64() * b.Float64()
	if math.IsNaN(prod) {
		// 0 * Inf.
		c.Flags |= FlagInvalid
		return float16QNaN
	}
	return c.round(prod)
}

// MulAddF16 returns acc + a*b as a single fused operation rounded once to
// half precision. The addend is the first operand.
func (c *FPContext) MulAddF16(acc, a, b Float16) Float16 {
	if acc.IsNaN() || a.IsNaN() || b.IsNaN() {
		return c.propagateNaN(acc, a, b)
	}
	fused := math.FMA(a.Float64(), b.Float64(), acc.Float64())
	if math.IsNaN(fused) {
		c.Flags |= FlagInvalid
		return float16QNaN
	}
	return c.round(fused)
}

// MinF16 returns the smaller of a and b with IEEE semantics: a NaN operand
// yields the default NaN, and min(+0, -0) is -0.
func (c *FPContext) MinF16(a, b Float16) Float16 {
	if a.IsNaN() || b.IsNaN() {
		return c.propagateNaN(a, b)
	}
	if a.IsZero() && b.IsZero() {
		if a.IsNegative() {
			return a
		}
		return b
	}
	if a.Float32() <= b.Float32() {
		return a
	}
	return b
}

// MaxF16 returns the larger of a and b with IEEE semantics: a NaN operand
// yields the default NaN, and max(+0, -0) is +0.
func (c *FPContext) MaxF16(a, b Float16) Float16 {
	if a.IsNaN() || b.IsNaN() {
		return c.propagateNaN(a, b)
	}
	if a.IsZero() && b.IsZero() {
		if a.IsNegative() {
			return b
		}
		return a
	}
	if a.Float32() >= b.Float32() {
		return a
	}
	return b
}

// ConvertF16ToF32 widens a half to single precision. The result is always
// exact, so the context's rounding mode is consulted but never applied; NaN
// inputs are quieted into the default single-precision NaN.
func (c *FPContext) ConvertF16ToF32(h Float16) float32 {
	if h.IsNaN() {
		if h.IsSignalingNaN() {
			c.Flags |= FlagInvalid
		}
		return math.Float32frombits(0x7FC00000)
	}
	return h.Float32()
}

func (c *FPContext) round(v float64) Float16 {
	h, flags := roundFloat16(v, c.Rounding)
	c.Flags |= flags
	return h
}

// propagateNaN implements default-NaN behavior: any NaN operand produces the
// canonical quiet NaN, raising invalid-operation if one was signaling.
func (c *FPContext) propagateNaN(operands ...Float16) Float16 {
	for _, h := range operands {
		if h.IsSignalingNaN() {
			c.Flags |= FlagInvalid
			break
		}
	}
	return float16QNaN
}
