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

package conformance

import (
	"encoding/json"
	"os"
	"strconv"
	"testing"

	"github.com/ziggy42/omega/omega"
)

// vectorFile is a set of golden instruction vectors. Register values are hex
// strings so the files stay readable next to an ISA manual.
type vectorFile struct {
	Cases []vectorCase `json:"cases"`
}

type vectorCase struct {
	Name     string `json:"name"`
	Op       string `json:"op"`
	Clamp    bool   `json:"clamp"`
	Src0     string `json:"src0"`
	Src1     string `json:"src1"`
	Src2     string `json:"src2"`
	Expected string `json:"expected"`
}

// vectorRunner executes every case in a vector file on a single-lane
// wavefront and compares the destination register against the golden value.
type vectorRunner struct {
	t  *testing.T
	wf *omega.Wavefront
}

func newVectorRunner(t *testing.T) *vectorRunner {
	return &vectorRunner{
		t:  t,
		wf: omega.NewWavefront(omega.Config{WavefrontSize: 1}),
	}
}

func loadVectorFile(path string) (*vectorFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file vectorFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *vectorRunner) run(file *vectorFile) {
	for _, c := range file.Cases {
		r.t.Run(c.Name, func(t *testing.T) {
			r.runCase(t, c)
		})
	}
}

func (r *vectorRunner) runCase(t *testing.T, c vectorCase) {
	op, ok := omega.LookupOpcode(c.Op)
	if !ok {
		t.Fatalf("unknown opcode: %s", c.Op)
	}

	regs := omega.NewVGPRFile(4, 1)
	regs.WriteLane(0, 0, r.parseReg(t, c.Src0))
	regs.WriteLane(1, 0, r.parseReg(t, c.Src1))
	regs.WriteLane(2, 0, r.parseReg(t, c.Src2))

	inst := omega.Instruction{
		Op:    op,
		Dst:   3,
		Src0:  0,
		Src1:  1,
		Src2:  2,
		Clamp: c.Clamp,
	}
	if err := omega.Execute(inst, r.wf, regs); err != nil {
		t.Fatalf("failed to execute %s: %v", c.Op, err)
	}

	expected := r.parseReg(t, c.Expected)
	if got := regs.ReadLane(3, 0); got != expected {
		t.Fatalf("expected 0x%08X, got 0x%08X", expected, got)
	}
}

func (r *vectorRunner) parseReg(t *testing.T, s string) uint32 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		t.Fatalf("bad register value %q: %v", s, err)
	}
	return uint32(v)
}
