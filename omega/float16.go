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

// Float16 is an IEEE 754 half-precision (binary16) value stored as raw bits.
//
// Format: Sign (1 bit) | Exponent (5 bits, bias 15) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Packed halves travel through the ALU as the low or high 16 bits of a
// 32-bit lane; keeping the type a bare uint16 makes that reinterpretation
// free in both directions.
type Float16 uint16

const (
	float16Zero    Float16 = 0x0000
	float16NegZero Float16 = 0x8000
	float16One     Float16 = 0x3C00
	float16Max     Float16 = 0x7BFF // 65504, largest finite value
	float16Inf     Float16 = 0x7C00
	float16NegInf  Float16 = 0xFC00
	// float16QNaN is the default quiet NaN produced by every primitive that
	// needs to materialize a NaN. The arithmetic never propagates NaN
	// payloads (ARM-style default-NaN behavior).
	float16QNaN Float16 = 0x7E00

	float16SignMask     = 0x8000
	float16ExpMask      = 0x1F
	float16MantissaMask = 0x3FF
	float16ExpBias      = 15
	float16MantissaBits = 10
	float16QuietBit     = 0x0200
)

// Float16FromBits reinterprets raw bits as a half-precision value.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}

// Bits returns the raw bit pattern.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// IsNaN reports whether h is a NaN (quiet or signaling).
func (h Float16) IsNaN() bool {
	return (h>>float16MantissaBits)&float16ExpMask == float16ExpMask &&
		h&float16MantissaMask != 0
}

// IsSignalingNaN reports whether h is a signaling NaN (quiet bit clear).
func (h Float16) IsSignalingNaN() bool {
	return h.IsNaN() && h&float16QuietBit == 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == float16Inf
}

// IsZero reports whether h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&0x7FFF == 0
}

// IsNegative reports whether the sign bit is set.
func (h Float16) IsNegative() bool {
	return h&float16SignMask != 0
}

// Float32 widens h to float32. Every half-precision value is exactly
// representable in single precision, so this conversion never rounds.
func (h Float16) Float32() float32 {
	bits := uint32(h)
	sign := bits >> 15
	exp := (bits >> float16MantissaBits) & float16ExpMask
	mant := bits & float16MantissaMask

	switch {
	case exp == 0:
		if mant == 0 {
			// Signed zero.
			return math.Float32frombits(sign << 31)
		}
		// Denormal: normalize by shifting the leading bit into place.
		exp = 1
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= float16MantissaMask
		exp += 127 - float16ExpBias
	case exp == float16ExpMask:
		if mant == 0 {
			return math.Float32frombits(sign<<31 | 0x7F800000)
		}
		// NaN: quiet it and carry the payload.
		return math.Float32frombits(sign<<31 | 0x7FC00000 | mant<<13)
	default:
		exp += 127 - float16ExpBias
	}

	return math.Float32frombits(sign<<31 | exp<<23 | mant<<13)
}

// Float64 widens h to float64 without rounding.
func (h Float16) Float64() float64 {
	return float64(h.Float32())
}

// Float16FromFloat32 narrows a float32 to half precision with
// round-to-nearest-even.
func Float16FromFloat32(f float32) Float16 {
	h, _ := roundFloat16(float64(f), RoundNearestEven)
	return h
}

// roundFloat16 rounds an arbitrary float64 to half precision under the given
// rounding mode and reports the exception flags the rounding raised.
//
// The float64 intermediate is wide enough (53 significand bits against the
// 2x11+2 = 24 required) that rounding a correctly rounded float64 result a
// second time here yields the same half-precision value as rounding the exact
// result directly.
func roundFloat16(v float64, mode RoundingMode) (Float16, FPFlags) {
	if math.IsNaN(v) {
		return float16QNaN, 0
	}

	bits := math.Float64bits(v)
	sign := Float16(bits>>48) & float16SignMask
	neg := sign != 0

	if math.IsInf(v, 0) {
		return sign | float16Inf, 0
	}
	if v == 0 {
		return sign, 0
	}

	// mag = frac * 2^exp with frac in [0.5, 1), so the value is
	// sig * 2^e for sig in [1, 2) with e = exp - 1. The full significand
	// is recovered as an exact 53-bit integer.
	frac, exp := math.Frexp(math.Abs(v))
	e := exp - 1
	m := uint64(math.Ldexp(frac, 53))

	// 42 = 53 - 11 keeps an 11-bit significand (implicit bit included) for
	// normal results; subnormal targets shift further right.
	shift := uint(42)
	if e < -14 {
		shift += uint(-14 - e)
	}

	q, inexact := roundShift(m, shift, mode, neg)

	var flags FPFlags
	if inexact {
		flags |= FlagInexact
	}

	if e < -14 {
		// Subnormal result. q <= 1024; q == 1024 rolls over into the
		// smallest normal, which the plain bit assembly below encodes
		// correctly (0x0400 has exponent field 1, mantissa 0).
		if q == 0 {
			if inexact {
				flags |= FlagUnderflow
			}
			return sign, flags
		}
		if inexact && q < 0x400 {
			flags |= FlagUnderflow
		}
		return sign | Float16(q), flags
	}

	// Normal result: q is in [1024, 2048]; a carry past the top widens the
	// exponent by one.
	if q == 0x800 {
		q = 0x400
		e++
	}
	if e > 15 {
		flags |= FlagOverflow | FlagInexact
		return overflowFloat16(sign, mode), flags
	}
	return sign | Float16(uint16(e+float16ExpBias)<<float16MantissaBits) | Float16(q-0x400), flags
}

// overflowFloat16 picks the overflow result mandated by the rounding mode:
// infinity when rounding can move away from zero, otherwise the largest
// finite value.
func overflowFloat16(sign Float16, mode RoundingMode) Float16 {
	neg := sign != 0
	switch mode {
	case RoundNearestEven:
		return sign | float16Inf
	case RoundTowardZero:
		return sign | float16Max
	case RoundTowardPositive:
		if neg {
			return sign | float16Max
		}
		return float16Inf
	case RoundTowardNegative:
		if neg {
			return float16NegInf
		}
		return float16Max
	}
	panic("unreachable")
}

// roundShift discards the low shift bits of m, rounding the retained bits
// according to mode. neg selects the direction for the directed modes.
func roundShift(m uint64, shift uint, mode RoundingMode, neg bool) (uint64, bool) {
	if shift == 0 {
		return m, false
	}
	if shift >= 64 {
		if m == 0 {
			return 0, false
		}
		// Everything is remainder; only the away-from-zero directed
		// modes can produce a nonzero result.
		if (mode == RoundTowardPositive && !neg) || (mode == RoundTowardNegative && neg) {
			return 1, true
		}
		return 0, true
	}

	q := m >> shift
	rem := m & (1<<shift - 1)
	if rem == 0 {
		return q, false
	}

	switch mode {
	case RoundNearestEven:
		half := uint64(1) << (shift - 1)
		if rem > half || (rem == half && q&1 == 1) {
			q++
		}
	case RoundTowardZero:
		// Truncation already happened.
	case RoundTowardPositive:
		if !neg {
			q++
		}
	case RoundTowardNegative:
		if neg {
			q++
		}
	}
	return q, true
}
