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

// Each addressing-mode resolver sets either addrAbs (the effective
// address) or addrRel (for branches), except amIMP, which loads the
// accumulator into fetched instead; each returns 1 if it may require an
// extra cycle due to a page boundary crossing, 0 otherwise. fetch() uses
// addrAbs afterwards to pull the operand for read-only primitives.

// amIMP targets the accumulator; used by implied-operand instructions
// and by the accumulator forms of ASL/LSR/ROL/ROR.
func amIMP(c *CPU) uint8 {
	c.fetched = c.A
	return 0
}

// amIMM points addrAbs at the byte following the opcode.
func amIMM(c *CPU) uint8 {
	c.addrAbs = c.PC
	c.PC++
	return 0
}

// amZP0 addresses the first 256 bytes with a single operand byte.
func amZP0(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC))
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// amZPX is zero page offset by X, wrapping within page 0.
func amZPX(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC) + c.X)
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// amZPY is zero page offset by Y, wrapping within page 0.
func amZPY(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC) + c.Y)
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// amREL computes the signed branch displacement; only branches use
// this mode, and only they consult addrRel.
func amREL(c *CPU) uint8 {
	c.addrRel = uint16(c.read(c.PC))
	c.PC++
	if c.addrRel&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
	return 0
}

// amABS reads a full two-byte address.
func amABS(c *CPU) uint8 {
	c.addrAbs = c.read16(c.PC)
	c.PC += 2
	return 0
}

// amABX is absolute offset by X; an extra cycle is owed if the
// addition crosses a page boundary.
func amABX(c *CPU) uint8 {
	addr := c.read16(c.PC)
	c.PC += 2
	c.addrAbs = addr + uint16(c.X)
	if c.addrAbs&0xFF00 != addr&0xFF00 {
		return 1
	}
	return 0
}

// amABY is absolute offset by Y; an extra cycle is owed if the
// addition crosses a page boundary.
func amABY(c *CPU) uint8 {
	addr := c.read16(c.PC)
	c.PC += 2
	c.addrAbs = addr + uint16(c.Y)
	if c.addrAbs&0xFF00 != addr&0xFF00 {
		return 1
	}
	return 0
}

// amIND is the indirect addressing mode used only by JMP. It reproduces
// the documented page-wrap hardware bug: when the low byte of the
// pointer is 0xFF, the high byte of the target is fetched from the
// start of the same page rather than the next one.
func amIND(c *CPU) uint8 {
	ptrLo := uint16(c.read(c.PC))
	c.PC++
	ptrHi := uint16(c.read(c.PC))
	c.PC++

	ptr := ptrHi<<8 | ptrLo

	if ptrLo == 0x00FF {
		c.addrAbs = uint16(c.read(ptr&0xFF00))<<8 | uint16(c.read(ptr))
	} else {
		c.addrAbs = uint16(c.read(ptr+1))<<8 | uint16(c.read(ptr))
	}
	return 0
}

// amIZX is indexed-indirect: the zero-page pointer is indexed by X
// before the 16-bit address is read from it.
func amIZX(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++

	lo := uint16(c.read((t + uint16(c.X)) & 0x00FF))
	hi := uint16(c.read((t + uint16(c.X) + 1) & 0x00FF))

	c.addrAbs = hi<<8 | lo
	return 0
}

// amIZY is indirect-indexed: the 16-bit address is read from the
// zero-page pointer first, then indexed by Y. An extra cycle is owed
// if that indexing crosses a page boundary.
func amIZY(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++

	lo := uint16(c.read(t & 0x00FF))
	hi := uint16(c.read((t + 1) & 0x00FF))

	c.addrAbs = hi<<8 | lo
	c.addrAbs += uint16(c.Y)

	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}
