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

import "testing"

func TestCPU_IndirectJumpPageWrapBug(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	// JMP ($30FF): pointer straddles a page boundary. Real hardware
	// fetches the high byte from $3000, not $3100.
	mem.load(0x8000, 0x6C, 0xFF, 0x30)
	mem.ram[0x30FF] = 0x00
	mem.ram[0x3000] = 0x90 // wrong-page high byte, what the bug actually reads
	mem.ram[0x3100] = 0x12 // correct-page high byte, must NOT be used

	c.Step()
	if c.PC != 0x9000 {
		t.Errorf("PC after buggy indirect JMP = %#04x, want 0x9000", c.PC)
	}
}

func TestCPU_IndexedIndirectX(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	c.X = 0x04
	// LDA ($20,X) with X=4 reads the pointer from $24/$25.
	mem.load(0x8000, 0xA1, 0x20)
	mem.ram[0x24] = 0x00
	mem.ram[0x25] = 0x90
	mem.ram[0x9000] = 0x55
	c.Step()
	if c.A != 0x55 {
		t.Errorf("LDA ($20,X) result = %#02x, want 0x55", c.A)
	}
}

func TestCPU_IndirectIndexedYPageCross(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	c.Y = 0x01
	// LDA ($20),Y where the base pointer is $20FF, so adding Y crosses
	// into the next page and should cost an extra cycle.
	mem.load(0x8000, 0xB1, 0x20)
	mem.ram[0x20] = 0xFF
	mem.ram[0x21] = 0x20
	mem.ram[0x2100] = 0x77
	cycles := c.Step()
	if c.A != 0x77 {
		t.Errorf("LDA ($20),Y result = %#02x, want 0x77", c.A)
	}
	if cycles != 6 {
		t.Errorf("cycles for page-crossing (zp),Y = %d, want 6 (5 base + 1 page cross)", cycles)
	}
}

func TestCPU_ZeroPageXWraps(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	c.X = 0xFF
	// LDA $80,X with X=0xFF must wrap within page zero, landing on $7F.
	mem.load(0x8000, 0xB5, 0x80)
	mem.ram[0x7F] = 0x99
	c.Step()
	if c.A != 0x99 {
		t.Errorf("LDA $80,X (wrapped) = %#02x, want 0x99", c.A)
	}
}
