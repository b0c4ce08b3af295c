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

// branch is shared by all eight conditional branches: if taken, it
// accounts for the extra cycle(s) and folds addrRel into PC.
func branch(c *CPU) {
	c.cycles++
	c.addrAbs = c.PC + c.addrRel
	if c.addrAbs&0xFF00 != c.PC&0xFF00 {
		c.cycles++
	}
	c.PC = c.addrAbs
}

func opBCC(c *CPU) uint8 {
	if c.GetFlag(FlagCarry) == 0 {
		branch(c)
	}
	return 0
}

func opBCS(c *CPU) uint8 {
	if c.GetFlag(FlagCarry) == 1 {
		branch(c)
	}
	return 0
}

func opBEQ(c *CPU) uint8 {
	if c.GetFlag(FlagZero) == 1 {
		branch(c)
	}
	return 0
}

func opBNE(c *CPU) uint8 {
	if c.GetFlag(FlagZero) == 0 {
		branch(c)
	}
	return 0
}

func opBMI(c *CPU) uint8 {
	if c.GetFlag(FlagNegative) == 1 {
		branch(c)
	}
	return 0
}

func opBPL(c *CPU) uint8 {
	if c.GetFlag(FlagNegative) == 0 {
		branch(c)
	}
	return 0
}

func opBVC(c *CPU) uint8 {
	if c.GetFlag(FlagOverflow) == 0 {
		branch(c)
	}
	return 0
}

func opBVS(c *CPU) uint8 {
	if c.GetFlag(FlagOverflow) == 1 {
		branch(c)
	}
	return 0
}

func opJMP(c *CPU) uint8 {
	c.PC = c.addrAbs
	return 0
}

// opJSR pushes the address of the last byte of the JSR instruction
// (not the address of the following instruction, per the 6502's
// well-known "return address minus one" convention) and jumps.
func opJSR(c *CPU) uint8 {
	c.PC--
	c.pushPC()
	c.PC = c.addrAbs
	return 0
}

// opRTS pops the return address and advances past it, undoing JSR's
// minus-one adjustment.
func opRTS(c *CPU) uint8 {
	c.popPC()
	c.PC++
	return 0
}

// opBRK pushes PC+2 and the status with Break set, disables further
// IRQs, and jumps through the IRQ/BRK vector at 0xFFFE.
func opBRK(c *CPU) uint8 {
	c.pushPC()
	c.push(c.Status.Pack(true))
	c.SetFlag(FlagInterrupt, true)
	c.PC = c.read16(0xFFFE)
	return 0
}

// opRTI restores status (discarding the stacked B/U bits, per
// convention) and PC, with no +1 adjustment since BRK already pushed
// the address to resume at.
func opRTI(c *CPU) uint8 {
	c.Status.Unpack(c.pop())
	c.popPC()
	return 0
}

func opPHA(c *CPU) uint8 {
	c.push(c.A)
	return 0
}

func opPHP(c *CPU) uint8 {
	c.push(c.Status.Pack(true))
	return 0
}

func opPLA(c *CPU) uint8 {
	c.A = c.pop()
	c.SetFlag(FlagZero, c.A == 0x00)
	c.SetFlag(FlagNegative, c.A&0x80 != 0)
	return 0
}

func opPLP(c *CPU) uint8 {
	c.Status.Unpack(c.pop())
	return 0
}

func opCLC(c *CPU) uint8 { c.SetFlag(FlagCarry, false); return 0 }
func opSEC(c *CPU) uint8 { c.SetFlag(FlagCarry, true); return 0 }
func opCLD(c *CPU) uint8 { c.SetFlag(FlagDecimal, false); return 0 }
func opSED(c *CPU) uint8 { c.SetFlag(FlagDecimal, true); return 0 }
func opCLI(c *CPU) uint8 { c.SetFlag(FlagInterrupt, false); return 0 }
func opSEI(c *CPU) uint8 { c.SetFlag(FlagInterrupt, true); return 0 }
func opCLV(c *CPU) uint8 { c.SetFlag(FlagOverflow, false); return 0 }
