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

// Package disasm turns raw opcode bytes back into readable assembly. It
// never touches CPU state; it only reads whatever Reader it is given.
package disasm

import (
	"fmt"

	"github.com/mg64/sixtyfiveten/internal/cpu"
)

// Reader is the minimal read-only view a disassembler needs over
// memory; internal/bus.Bus and internal/cpu.CPU's own bus both satisfy
// it trivially.
type Reader interface {
	Read(addr uint16) uint8
}

// Line is one disassembled instruction: its address, length in bytes,
// and rendered text.
type Line struct {
	Addr uint16
	Len  uint16
	Text string
}

// One decodes a single instruction starting at addr, returning its
// rendered line. Operand addresses use 16-bit arithmetic, so an
// instruction at the top of memory takes its operand bytes from 0x0000
// onward.
func One(mem Reader, addr uint16) Line {
	opcode := mem.Read(addr)
	instr := cpu.Lookup(opcode)
	cursor := addr + 1

	var operand string
	switch instr.AddrMode {
	case cpu.AddrModeIMP:
		operand = ""
	case cpu.AddrModeIMM:
		v := mem.Read(cursor)
		cursor++
		operand = fmt.Sprintf("#$%02X", v)
	case cpu.AddrModeZP0:
		v := mem.Read(cursor)
		cursor++
		operand = fmt.Sprintf("$%02X", v)
	case cpu.AddrModeZPX:
		v := mem.Read(cursor)
		cursor++
		operand = fmt.Sprintf("$%02X,X", v)
	case cpu.AddrModeZPY:
		v := mem.Read(cursor)
		cursor++
		operand = fmt.Sprintf("$%02X,Y", v)
	case cpu.AddrModeIZX:
		v := mem.Read(cursor)
		cursor++
		operand = fmt.Sprintf("($%02X,X)", v)
	case cpu.AddrModeIZY:
		v := mem.Read(cursor)
		cursor++
		operand = fmt.Sprintf("($%02X),Y", v)
	case cpu.AddrModeABS:
		lo := mem.Read(cursor)
		hi := mem.Read(cursor + 1)
		cursor += 2
		operand = fmt.Sprintf("$%04X", uint16(hi)<<8|uint16(lo))
	case cpu.AddrModeABX:
		lo := mem.Read(cursor)
		hi := mem.Read(cursor + 1)
		cursor += 2
		operand = fmt.Sprintf("$%04X,X", uint16(hi)<<8|uint16(lo))
	case cpu.AddrModeABY:
		lo := mem.Read(cursor)
		hi := mem.Read(cursor + 1)
		cursor += 2
		operand = fmt.Sprintf("$%04X,Y", uint16(hi)<<8|uint16(lo))
	case cpu.AddrModeIND:
		lo := mem.Read(cursor)
		hi := mem.Read(cursor + 1)
		cursor += 2
		operand = fmt.Sprintf("($%04X)", uint16(hi)<<8|uint16(lo))
	case cpu.AddrModeREL:
		v := mem.Read(cursor)
		cursor++
		target := cursor + uint16(int8(v))
		operand = fmt.Sprintf("$%02X [$%04X]", v, target)
	}

	text := instr.Name
	if operand != "" {
		text += " " + operand
	}

	return Line{Addr: addr, Len: cursor - addr, Text: fmt.Sprintf("$%04X: %s", addr, text)}
}

// Range decodes consecutive instructions whose start addresses lie
// between start and end inclusive; it stops once the next start address
// would pass end or 0xFFFF. The last instruction's operand bytes may lie
// beyond end (or wrap to 0x0000, as in One).
func Range(mem Reader, start, end uint16) []Line {
	var lines []Line
	addr := uint32(start)
	for addr <= uint32(end) {
		line := One(mem, uint16(addr))
		lines = append(lines, line)
		addr += uint32(line.Len)
		if line.Len == 0 {
			break
		}
	}
	return lines
}
