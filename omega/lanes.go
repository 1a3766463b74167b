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

// Element widths of the packed instruction families. A 32-bit lane holds
// 32/width elements with no padding: two halves, four bytes, or eight
// nibbles.
const (
	elemWidth16 uint = 16
	elemWidth8  uint = 8
	elemWidth4  uint = 4
)

// laneMask returns a mask of the low width bits. Valid for widths below 32.
func laneMask(width uint) uint32 {
	return 1<<width - 1
}

// splitLane decomposes a 32-bit lane into its packed elements, element 0 in
// the low-order bits.
func splitLane(lane uint32, width uint) []uint32 {
	switch width {
	case elemWidth16, elemWidth8, elemWidth4:
	default:
		panic("splitLane: unsupported element width")
	}
	elems := make([]uint32, 32/width)
	for i := range elems {
		elems[i] = lane >> (uint(i) * width) & laneMask(width)
	}
	return elems
}

// joinLane is the inverse of splitLane. Only the low width bits of each
// element survive the packing, which is where wrap semantics fall out for
// instructions that cannot clamp: the arithmetic result is simply truncated
// to the element slot.
func joinLane(elems []uint32, width uint) uint32 {
	var lane uint32
	for i, e := range elems {
		lane |= (e & laneMask(width)) << (uint(i) * width)
	}
	return lane
}

// signExtend widens the low width bits of v to a signed 32-bit value.
func signExtend(v uint32, width uint) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}
