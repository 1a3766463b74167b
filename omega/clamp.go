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

// clampSigned reduces a 32-bit intermediate to a width-bit signed result,
// sign-extended back to 32 bits. Without clamping the value wraps (only the
// low width bits are kept); with clamping it saturates to
// [-(2^(width-1)), 2^(width-1)-1]. Valid for widths below 32; the dot-product
// family uses 16, 8, and 4.
func clampSigned(value int32, width uint, clamp bool) int32 {
	if width >= 32 {
		panic("clampSigned: width must be below 32")
	}
	if !clamp {
		return signExtend(uint32(value)&laneMask(width), width)
	}
	lo := -(int32(1) << (width - 1))
	hi := int32(1)<<(width-1) - 1
	return min(max(value, lo), hi)
}

// clampUnsigned is the unsigned counterpart of clampSigned with the range
// [0, 2^width-1].
func clampUnsigned(value uint32, width uint, clamp bool) uint32 {
	if width >= 32 {
		panic("clampUnsigned: width must be below 32")
	}
	if !clamp {
		return value & laneMask(width)
	}
	return min(value, laneMask(width))
}

// clampI16 narrows a 32-bit intermediate to int16, saturating when clamp is
// set and truncating otherwise. Fixed-width convenience for the packed-16
// instructions.
func clampI16(value int32, clamp bool) int16 {
	if !clamp {
		return int16(value)
	}
	return int16(min(max(value, math.MinInt16), math.MaxInt16))
}

// clampU16 narrows a 32-bit intermediate to uint16, saturating when clamp is
// set and truncating otherwise.
func clampU16(value uint32, clamp bool) uint16 {
	if !clamp {
		return uint16(value)
	}
	return uint16(min(value, math.MaxUint16))
}

// clampF16 clamps a half-precision value into [0.0, 1.0] when clamp is set.
// The clamp is min(v, 1.0) followed by max(·, 0.0) through fresh contexts,
// so NaN inputs collapse to the default NaN under the min/max NaN rules
// rather than comparing their way through.
func clampF16(value Float16, clamp bool) Float16 {
	if !clamp {
		return value
	}
	low := NewFPContext().MinF16(value, float16One)
	return NewFPContext().MaxF16(low, float16Zero)
}

// clampF32 clamps a single-precision value into [0.0, 1.0] when clamp is
// set. Unlike clampF16 this is a plain numeric clamp: NaN fails both
// comparisons and is returned with its payload untouched.
func clampF32(value float32, clamp bool) float32 {
	if !clamp {
		return value
	}
	if value < 0.0 {
		return 0.0
	}
	if value > 1.0 {
		return 1.0
	}
	return value
}
