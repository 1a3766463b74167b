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

// Command omega evaluates one packed-math instruction on a single lane and
// prints the packed result, useful for cross-checking lane values against
// hardware or another simulator.
//
// Usage:
//
//	omega [-clamp] <mnemonic> <s0> <s1> [s2]
//
// Operands are 32-bit lane values in any base strconv accepts (0x... for
// hex). Example:
//
//	omega -clamp v_pk_add_i16 0x7FFF7FFF 0x00010001
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/ziggy42/omega/omega"
)

func main() {
	clamp := flag.Bool("clamp", false, "apply saturating semantics")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 3 {
		usage()
		os.Exit(1)
	}

	op, ok := omega.LookupOpcode(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown instruction %q\n", args[0])
		os.Exit(1)
	}

	operands := make([]uint32, 3)
	for i, arg := range args[1:] {
		if i >= len(operands) {
			usage()
			os.Exit(1)
		}
		v, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad operand %q: %v\n", arg, err)
			os.Exit(1)
		}
		operands[i] = uint32(v)
	}

	wf := omega.NewWavefront(omega.Config{WavefrontSize: 1})
	regs := omega.NewVGPRFile(4, 1)
	for reg, v := range operands {
		regs.WriteLane(reg, 0, v)
	}

	inst := omega.Instruction{
		Op:    op,
		Dst:   3,
		Src0:  0,
		Src1:  1,
		Src2:  2,
		Clamp: *clamp,
	}
	if err := omega.Execute(inst, wf, regs); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute %s: %v\n", op, err)
		os.Exit(1)
	}

	fmt.Printf("0x%08X\n", regs.ReadLane(3, 0))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: omega [-clamp] <mnemonic> <s0> <s1> [s2]")
	flag.PrintDefaults()
}
