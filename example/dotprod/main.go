package main

import (
	"fmt"

	"github.com/ziggy42/omega/omega"
)

func main() {
	// 1. Set up a wavefront and a small register file
	wf := omega.NewWavefront(omega.DefaultConfig())
	regs := omega.NewVGPRFile(4, wf.Size())

	// 2. Load four signed 8-bit elements per source: {1, 2, 3, 4} . {10, 20, 30, 40}
	regs.WriteReg(0, 0x04030201)
	regs.WriteReg(1, 0x281E140A)
	regs.WriteReg(2, 0) // accumulator

	// 3. Execute a 4-element dot product into register 3
	inst := omega.Instruction{
		Op:   omega.OpDot4I32I8,
		Dst:  3,
		Src0: 0,
		Src1: 1,
		Src2: 2,
	}
	if err := omega.Execute(inst, wf, regs); err != nil {
		fmt.Println("Error executing instruction:", err)
		return
	}

	fmt.Println(int32(regs.ReadLane(3, 0))) // Output: 300
}
