// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cpu

// Addressing modes.
const (
	AddrModeUnknown = iota
	AddrModeIMP
	AddrModeIMM
	AddrModeZP0
	AddrModeZPX
	AddrModeZPY
	AddrModeREL
	AddrModeABS
	AddrModeABX
	AddrModeABY
	AddrModeIND
	AddrModeIZX
	AddrModeIZY
)

// Instruction describes one of the 256 possible opcodes: its mnemonic,
// its ALU/control primitive, its addressing-mode resolver, its base
// cycle count and its addressing mode (the latter is consulted by a few
// primitives, e.g. ASL, that behave differently when operating on the
// accumulator versus memory). Op is nil for opcodes with no modeled
// execution semantics; Step treats that as UnimplementedOpcode.
type Instruction struct {
	Name     string
	Op       func(c *CPU) uint8
	Am       func(c *CPU) uint8
	Cycles   uint8
	AddrMode int
}

var instructionTable = newInstructionSet()

// Lookup returns the table entry for opcode, for use by disassemblers
// and other tools that need mnemonic/addressing-mode information
// without driving a CPU.
func Lookup(opcode uint8) Instruction {
	return instructionTable[opcode]
}
