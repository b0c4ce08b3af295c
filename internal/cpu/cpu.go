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

// Package cpu implements the MOS 6510 instruction set: addressing modes,
// ALU primitives (including BCD mode), control flow, and the opcode
// dispatch table, all driven against a pluggable Bus.
package cpu

import (
	"fmt"

	"github.com/mg64/sixtyfiveten/internal/trace"
)

// Bus is everything the CPU core needs from its memory system. The
// concrete implementation (internal/bus.Bus) additionally knows about
// ROM banking; the CPU core only ever sees this narrow interface.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	Read16(addr uint16) uint16
}

// CPU emulates a 6510 from the software's perspective: registers, flags,
// and the fetch/decode/execute loop. It knows nothing about ROM banking;
// that lives entirely behind the Bus interface.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	Status  Status

	bus Bus

	fetched uint8
	temp    uint16
	addrAbs uint16
	addrRel uint16
	opcode  uint8
	cycles  uint8

	clockCount uint64

	lookup []Instruction

	// Unimplemented is incremented whenever Step encounters an opcode
	// with no modeled execution semantics; UnimplementedHook, if set,
	// is also called so a host can surface or log the event.
	Unimplemented     uint64
	UnimplementedHook func(pc uint16, opcode uint8)

	// Jammed is set once a trap/jam opcode is dispatched; Step becomes
	// a no-op once this is true, matching hardware halting on a jam.
	Jammed bool
}

// New creates a CPU attached to bus, with the opcode table installed.
func New(b Bus) *CPU {
	return &CPU{
		bus:    b,
		lookup: instructionTable,
	}
}

// GetFlag returns 1 if flag is set, 0 otherwise.
func (c *CPU) GetFlag(flag uint8) uint8 {
	return c.Status.Get(flag)
}

// SetFlag assigns flag to v.
func (c *CPU) SetFlag(flag uint8, v bool) {
	c.Status.Set(flag, v)
}

// Reset forces the CPU into its power-on state: registers cleared, SP at
// 0xFF, I, B and U set (interrupts disabled), the other flags clear, and
// PC loaded from the reset vector at 0xFFFC/0xFFFD.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.Status = Status{}
	c.Status.Set(FlagUnused, true)
	c.Status.Set(FlagInterrupt, true)
	c.Status.Set(FlagBreak, true)

	c.addrAbs, c.addrRel, c.fetched = 0, 0, 0
	c.Jammed = false

	c.PC = c.bus.Read16(0xFFFC)
	c.cycles = 8
}

// IRQ services a maskable interrupt request: if interrupts are disabled
// this is a no-op, otherwise the current PC and status are pushed and
// execution resumes at the vector read from 0xFFFE/0xFFFF.
func (c *CPU) IRQ() {
	if c.GetFlag(FlagInterrupt) != 0 {
		return
	}
	c.pushPC()
	c.push(c.Status.Pack(false))
	c.SetFlag(FlagInterrupt, true)
	c.PC = c.bus.Read16(0xFFFE)
	c.cycles = 7
}

// NMI behaves like IRQ but cannot be masked, and reads its vector from
// 0xFFFA/0xFFFB.
func (c *CPU) NMI() {
	c.pushPC()
	c.push(c.Status.Pack(false))
	c.SetFlag(FlagInterrupt, true)
	c.PC = c.bus.Read16(0xFFFA)
	c.cycles = 8
}

// Step executes exactly one instruction: fetch opcode, resolve its
// addressing mode, run its ALU/control primitive, and account for
// cycles. It returns the number of cycles the instruction consumed.
func (c *CPU) Step() uint8 {
	if c.Jammed {
		return 0
	}

	pc := c.PC
	c.opcode = c.bus.Read(c.PC)
	instr := c.lookup[c.opcode]

	if trace.Enabled() {
		trace.Emit(c.Trace(pc) + " " + instr.Name)
	}

	c.PC++
	c.SetFlag(FlagUnused, true)

	if instr.Op == nil {
		c.Unimplemented++
		if c.UnimplementedHook != nil {
			c.UnimplementedHook(pc, c.opcode)
		}
		return 1
	}

	c.cycles = instr.Cycles
	addressingCycles := instr.Am(c)
	executionCycles := instr.Op(c)

	c.cycles += addressingCycles & executionCycles
	c.SetFlag(FlagUnused, true)
	c.clockCount += uint64(c.cycles)

	return c.cycles
}

// Trace renders a one-line snapshot of machine state in the teacher's
// trace-line format, suitable for the pluggable Logger.
func (c *CPU) Trace(pc uint16) string {
	return fmt.Sprintf("%10d PC:%04X %s A:%02X X:%02X Y:%02X SP:%02X",
		c.clockCount, pc, c.Status.String(), c.A, c.X, c.Y, c.SP)
}

func (c *CPU) push(data uint8) {
	c.bus.Write(0x0100+uint16(c.SP), data)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.bus.Read(0x0100 + uint16(c.SP))
}

func (c *CPU) pushPC() {
	c.push(uint8((c.PC >> 8) & 0xFF))
	c.push(uint8(c.PC & 0xFF))
}

func (c *CPU) popPC() {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	c.PC = hi<<8 | lo
}

func (c *CPU) read(addr uint16) uint8 {
	return c.bus.Read(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return c.bus.Read16(addr)
}

func (c *CPU) write(addr uint16, data uint8) {
	c.bus.Write(addr, data)
}

// fetch sources the operand byte for every addressing mode except
// Implied, for which the accumulator is the implied operand.
func (c *CPU) fetch() uint8 {
	if c.lookup[c.opcode].AddrMode != AddrModeIMP {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}
