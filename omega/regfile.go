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

// RegisterFile provides lane-granular access to vector registers. The
// execution core reads every source lane of an instruction before writing
// any destination lane, so a register may serve as both source and
// destination.
type RegisterFile interface {
	ReadLane(reg, lane int) uint32
	WriteLane(reg, lane int, value uint32)
}

// VGPRFile is an in-memory RegisterFile holding a dense block of vector
// general-purpose registers.
type VGPRFile struct {
	lanes int
	regs  []uint32
}

// NewVGPRFile allocates numRegs vector registers of lanes lanes each,
// zero-initialized.
func NewVGPRFile(numRegs, lanes int) *VGPRFile {
	return &VGPRFile{
		lanes: lanes,
		regs:  make([]uint32, numRegs*lanes),
	}
}

// ReadLane returns one lane of a vector register.
func (f *VGPRFile) ReadLane(reg, lane int) uint32 {
	return f.regs[reg*f.lanes+lane]
}

// WriteLane stores one lane of a vector register.
func (f *VGPRFile) WriteLane(reg, lane int, value uint32) {
	f.regs[reg*f.lanes+lane] = value
}

// WriteReg stores the same value into every lane of a register.
func (f *VGPRFile) WriteReg(reg int, value uint32) {
	for lane := range f.lanes {
		f.regs[reg*f.lanes+lane] = value
	}
}
