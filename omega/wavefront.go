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

// ExecMask reports which lanes of a wavefront execute the current
// instruction. The execution core treats it as read-only input: a lane whose
// bit is clear is never written.
type ExecMask interface {
	// Size is the number of lanes in the wavefront.
	Size() int
	// IsActive reports whether the given lane executes.
	IsActive(lane int) bool
}

// Wavefront is the execution state shared by the lanes of one SIMT wave: its
// width and the EXEC register gating per-lane writes.
type Wavefront struct {
	size int
	exec uint64
}

// NewWavefront creates a wavefront with all lanes active.
func NewWavefront(config Config) *Wavefront {
	size := config.WavefrontSize
	if size <= 0 || size > 64 {
		size = DefaultConfig().WavefrontSize
	}
	w := &Wavefront{size: size}
	w.SetExec(^uint64(0))
	return w
}

// Size returns the number of lanes.
func (w *Wavefront) Size() int {
	return w.size
}

// IsActive reports whether the given lane's EXEC bit is set.
func (w *Wavefront) IsActive(lane int) bool {
	return w.exec&(1<<uint(lane)) != 0
}

// SetExec replaces the EXEC mask. Bits above the wavefront size are ignored.
func (w *Wavefront) SetExec(mask uint64) {
	if w.size < 64 {
		mask &= 1<<uint(w.size) - 1
	}
	w.exec = mask
}

// Exec returns the current EXEC mask.
func (w *Wavefront) Exec() uint64 {
	return w.exec
}
