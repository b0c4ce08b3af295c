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

// ALU primitives. Every primitive updates N and Z from its 8-bit result
// unless noted otherwise; additional flag effects are called out per
// function. These return 0 normally, 1 when the instruction may need an
// extra clock cycle on a page-crossing addressing mode.

// opADC adds the fetched operand and the carry flag into A. In binary
// mode the classic 6502 overflow trick applies; in decimal (BCD) mode
// the addition is performed nibble by nibble with the NMOS decimal-mode
// adjustments, and, as on the NMOS part, N and V are taken from the
// high-nibble sum before its decimal adjustment. Z always reflects the
// final byte in A.
func opADC(c *CPU) uint8 {
	c.fetch()
	acc := uint32(c.A)
	add := uint32(c.fetched)
	carry := uint32(c.GetFlag(FlagCarry))

	var v uint32
	var negative bool
	if c.GetFlag(FlagDecimal) != 0 {
		lo := (acc & 0x0f) + (add & 0x0f) + carry

		var carryLo uint32
		if lo >= 0x0a {
			carryLo = 0x10
			lo -= 0x0a
		}

		hi := (acc & 0xf0) + (add & 0xf0) + carryLo

		negative = hi&0x80 != 0
		c.SetFlag(FlagOverflow, ((acc^hi)&0x80) != 0 && ((acc^add)&0x80) == 0)

		if hi >= 0xa0 {
			c.SetFlag(FlagCarry, true)
			hi -= 0xa0
		} else {
			c.SetFlag(FlagCarry, false)
		}

		v = hi | lo
	} else {
		v = acc + add + carry
		c.SetFlag(FlagCarry, v >= 0x100)
		c.SetFlag(FlagOverflow, (acc&0x80) == (add&0x80) && (acc&0x80) != (v&0x80))
		negative = v&0x80 != 0
	}

	c.A = uint8(v)
	c.SetFlag(FlagZero, c.A == 0)
	c.SetFlag(FlagNegative, negative)
	return 1
}

// opSBC subtracts the fetched operand (with borrow) from A. Mirrors
// opADC's binary/decimal split.
func opSBC(c *CPU) uint8 {
	c.fetch()
	acc := uint32(c.A)
	sub := uint32(c.fetched)
	carry := uint32(c.GetFlag(FlagCarry))

	var v uint32
	if c.GetFlag(FlagDecimal) != 0 {
		lo := 0x0f + (acc & 0x0f) - (sub & 0x0f) + carry

		var carryLo uint32
		if lo < 0x10 {
			lo -= 0x06
			carryLo = 0
		} else {
			lo -= 0x10
			carryLo = 0x10
		}

		hi := 0xf0 + (acc & 0xf0) - (sub & 0xf0) + carryLo

		if hi < 0x100 {
			c.SetFlag(FlagCarry, false)
			hi -= 0x60
		} else {
			c.SetFlag(FlagCarry, true)
			hi -= 0x100
		}

		v = hi | lo
		c.SetFlag(FlagOverflow, ((acc^v)&0x80) != 0 && ((acc^sub)&0x80) != 0)
	} else {
		v = 0xff + acc - sub + carry
		c.SetFlag(FlagCarry, v >= 0x100)
		c.SetFlag(FlagOverflow, (acc&0x80) != (sub&0x80) && (acc&0x80) != (v&0x80))
	}

	c.A = uint8(v)
	c.SetFlag(FlagZero, c.A == 0)
	c.SetFlag(FlagNegative, c.A&0x80 != 0)
	return 1
}

func opAND(c *CPU) uint8 {
	c.fetch()
	c.A &= c.fetched
	c.SetFlag(FlagZero, c.A == 0x00)
	c.SetFlag(FlagNegative, c.A&0x80 != 0)
	return 1
}

func opORA(c *CPU) uint8 {
	c.fetch()
	c.A |= c.fetched
	c.SetFlag(FlagZero, c.A == 0x00)
	c.SetFlag(FlagNegative, c.A&0x80 != 0)
	return 1
}

func opEOR(c *CPU) uint8 {
	c.fetch()
	c.A ^= c.fetched
	c.SetFlag(FlagZero, c.A == 0x00)
	c.SetFlag(FlagNegative, c.A&0x80 != 0)
	return 1
}

func opASL(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.fetched) << 1
	c.SetFlag(FlagCarry, c.temp&0xFF00 != 0)
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x00)
	c.SetFlag(FlagNegative, c.temp&0x80 != 0)
	if c.lookup[c.opcode].AddrMode == AddrModeIMP {
		c.A = uint8(c.temp)
	} else {
		c.write(c.addrAbs, uint8(c.temp))
	}
	return 0
}

func opLSR(c *CPU) uint8 {
	c.fetch()
	c.SetFlag(FlagCarry, c.fetched&0x01 != 0)
	c.temp = uint16(c.fetched >> 1)
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x00)
	c.SetFlag(FlagNegative, false)
	if c.lookup[c.opcode].AddrMode == AddrModeIMP {
		c.A = uint8(c.temp)
	} else {
		c.write(c.addrAbs, uint8(c.temp))
	}
	return 0
}

func opROL(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.fetched)<<1 | uint16(c.GetFlag(FlagCarry))
	c.SetFlag(FlagCarry, c.temp&0xFF00 != 0)
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x00)
	c.SetFlag(FlagNegative, c.temp&0x80 != 0)
	if c.lookup[c.opcode].AddrMode == AddrModeIMP {
		c.A = uint8(c.temp)
	} else {
		c.write(c.addrAbs, uint8(c.temp))
	}
	return 0
}

func opROR(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.fetched)>>1 | uint16(c.GetFlag(FlagCarry))<<7
	c.SetFlag(FlagCarry, c.fetched&0x01 != 0)
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x00)
	c.SetFlag(FlagNegative, c.temp&0x80 != 0)
	if c.lookup[c.opcode].AddrMode == AddrModeIMP {
		c.A = uint8(c.temp)
	} else {
		c.write(c.addrAbs, uint8(c.temp))
	}
	return 0
}

func opINC(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.fetched + 1)
	c.write(c.addrAbs, uint8(c.temp))
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x00)
	c.SetFlag(FlagNegative, c.temp&0x80 != 0)
	return 0
}

func opDEC(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.fetched - 1)
	c.write(c.addrAbs, uint8(c.temp))
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x00)
	c.SetFlag(FlagNegative, c.temp&0x80 != 0)
	return 0
}

func opINX(c *CPU) uint8 {
	c.X++
	c.SetFlag(FlagZero, c.X == 0x00)
	c.SetFlag(FlagNegative, c.X&0x80 != 0)
	return 0
}

func opDEX(c *CPU) uint8 {
	c.X--
	c.SetFlag(FlagZero, c.X == 0x00)
	c.SetFlag(FlagNegative, c.X&0x80 != 0)
	return 0
}

func opINY(c *CPU) uint8 {
	c.Y++
	c.SetFlag(FlagZero, c.Y == 0x00)
	c.SetFlag(FlagNegative, c.Y&0x80 != 0)
	return 0
}

func opDEY(c *CPU) uint8 {
	c.Y--
	c.SetFlag(FlagZero, c.Y == 0x00)
	c.SetFlag(FlagNegative, c.Y&0x80 != 0)
	return 0
}

func opCMP(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.A) - uint16(c.fetched)
	c.SetFlag(FlagCarry, c.A >= c.fetched)
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x0000)
	c.SetFlag(FlagNegative, c.temp&0x0080 != 0)
	return 1
}

func opCPX(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.X) - uint16(c.fetched)
	c.SetFlag(FlagCarry, c.X >= c.fetched)
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x0000)
	c.SetFlag(FlagNegative, c.temp&0x0080 != 0)
	return 0
}

func opCPY(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.Y) - uint16(c.fetched)
	c.SetFlag(FlagCarry, c.Y >= c.fetched)
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x0000)
	c.SetFlag(FlagNegative, c.temp&0x0080 != 0)
	return 0
}

func opBIT(c *CPU) uint8 {
	c.fetch()
	c.temp = uint16(c.A & c.fetched)
	c.SetFlag(FlagZero, c.temp&0x00FF == 0x00)
	c.SetFlag(FlagNegative, c.fetched&(1<<7) != 0)
	c.SetFlag(FlagOverflow, c.fetched&(1<<6) != 0)
	return 0
}

func opLDA(c *CPU) uint8 {
	c.fetch()
	c.A = c.fetched
	c.SetFlag(FlagZero, c.A == 0)
	c.SetFlag(FlagNegative, c.A&0x80 != 0)
	return 1
}

func opLDX(c *CPU) uint8 {
	c.fetch()
	c.X = c.fetched
	c.SetFlag(FlagZero, c.X == 0)
	c.SetFlag(FlagNegative, c.X&0x80 != 0)
	return 1
}

func opLDY(c *CPU) uint8 {
	c.fetch()
	c.Y = c.fetched
	c.SetFlag(FlagZero, c.Y == 0)
	c.SetFlag(FlagNegative, c.Y&0x80 != 0)
	return 1
}

func opSTA(c *CPU) uint8 {
	c.write(c.addrAbs, c.A)
	return 0
}

func opSTX(c *CPU) uint8 {
	c.write(c.addrAbs, c.X)
	return 0
}

func opSTY(c *CPU) uint8 {
	c.write(c.addrAbs, c.Y)
	return 0
}

func opTAX(c *CPU) uint8 {
	c.X = c.A
	c.SetFlag(FlagZero, c.X == 0x00)
	c.SetFlag(FlagNegative, c.X&0x80 != 0)
	return 0
}

func opTAY(c *CPU) uint8 {
	c.Y = c.A
	c.SetFlag(FlagZero, c.Y == 0x00)
	c.SetFlag(FlagNegative, c.Y&0x80 != 0)
	return 0
}

func opTXA(c *CPU) uint8 {
	c.A = c.X
	c.SetFlag(FlagZero, c.A == 0x00)
	c.SetFlag(FlagNegative, c.A&0x80 != 0)
	return 0
}

func opTYA(c *CPU) uint8 {
	c.A = c.Y
	c.SetFlag(FlagZero, c.A == 0x00)
	c.SetFlag(FlagNegative, c.A&0x80 != 0)
	return 0
}

func opTSX(c *CPU) uint8 {
	c.X = c.SP
	c.SetFlag(FlagZero, c.X == 0x00)
	c.SetFlag(FlagNegative, c.X&0x80 != 0)
	return 0
}

func opTXS(c *CPU) uint8 {
	c.SP = c.X
	return 0
}

// opNOP is the official no-operation opcode (0xEA); it leaves registers
// and flags untouched.
func opNOP(c *CPU) uint8 {
	return 0
}

// opJAM models the documented "kill" opcodes (0x02, 0x12, 0x22, ...): the
// real CPU locks up and requires a reset. Step surfaces this as Jammed
// rather than silently continuing.
func opJAM(c *CPU) uint8 {
	c.Jammed = true
	return 0
}
