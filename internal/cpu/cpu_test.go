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

// flatMemory is the simplest possible Bus: a plain 64KB array, enough
// to exercise the CPU core without any banking behavior getting in the
// way of the instruction-semantics tests below.
type flatMemory struct {
	ram [65536]uint8
}

func (m *flatMemory) Read(addr uint16) uint8 { return m.ram[addr] }
func (m *flatMemory) Write(addr uint16, v uint8) { m.ram[addr] = v }
func (m *flatMemory) Read16(addr uint16) uint16 {
	return uint16(m.ram[addr+1])<<8 | uint16(m.ram[addr])
}

func (m *flatMemory) load(addr uint16, code ...uint8) {
	for i, b := range code {
		m.ram[int(addr)+i] = b
	}
}

func newTestCPU(resetVector uint16) (*CPU, *flatMemory) {
	mem := &flatMemory{}
	mem.ram[0xFFFC] = uint8(resetVector & 0xFF)
	mem.ram[0xFFFD] = uint8(resetVector >> 8)
	c := New(mem)
	c.Reset()
	return c, mem
}

func TestCPU_ResetLoadsVectorAndDefaults(t *testing.T) {
	c, _ := newTestCPU(0x8000)
	if c.PC != 0x8000 {
		t.Errorf("PC after reset = %#04x, want 0x8000", c.PC)
	}
	if c.SP != 0xFF {
		t.Errorf("SP after reset = %#02x, want 0xFF", c.SP)
	}
	if c.GetFlag(FlagInterrupt) != 1 {
		t.Errorf("interrupt flag after reset = 0, want set")
	}
}

func TestCPU_LDAImmediateSetsZeroAndNegative(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	mem.load(0x8000, 0xA9, 0x00) // LDA #$00
	c.Step()
	if c.A != 0 || c.GetFlag(FlagZero) != 1 {
		t.Errorf("LDA #$00: A=%#02x Z=%d, want A=0 Z=1", c.A, c.GetFlag(FlagZero))
	}

	c, mem = newTestCPU(0x8000)
	mem.load(0x8000, 0xA9, 0x80) // LDA #$80
	c.Step()
	if c.A != 0x80 || c.GetFlag(FlagNegative) != 1 {
		t.Errorf("LDA #$80: A=%#02x N=%d, want A=0x80 N=1", c.A, c.GetFlag(FlagNegative))
	}
}

func TestCPU_STAAbsoluteWritesMemory(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	mem.load(0x8000, 0xA9, 0x42, 0x8D, 0x00, 0x20) // LDA #$42 ; STA $2000
	c.Step()
	c.Step()
	if v := mem.Read(0x2000); v != 0x42 {
		t.Errorf("STA $2000 left %#02x, want 0x42", v)
	}
}

func TestCPU_ADCBinaryOverflow(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	mem.load(0x8000, 0xA9, 0x7F, 0x69, 0x01) // LDA #$7F ; ADC #$01
	c.Step()
	c.Step()
	if c.A != 0x80 {
		t.Errorf("ADC result = %#02x, want 0x80", c.A)
	}
	if c.GetFlag(FlagOverflow) != 1 {
		t.Errorf("overflow flag not set for 0x7F+0x01")
	}
	if c.GetFlag(FlagNegative) != 1 {
		t.Errorf("negative flag not set for result 0x80")
	}
}

func TestCPU_ADCDecimalMode(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	// SED ; LDA #$58 ; ADC #$46  ->  0x58 + 0x46 = 104 decimal = $04 with carry
	mem.load(0x8000, 0xF8, 0xA9, 0x58, 0x69, 0x46)
	c.Step()
	c.Step()
	c.Step()
	if c.A != 0x04 {
		t.Errorf("decimal ADC result = %#02x, want 0x04", c.A)
	}
	if c.GetFlag(FlagCarry) != 1 {
		t.Errorf("decimal ADC expected carry out")
	}
}

func TestCPU_SBCDecimalMode(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	// SED ; SEC ; LDA #$46 ; SBC #$12 -> 46 - 12 = 34 decimal = $34
	mem.load(0x8000, 0xF8, 0x38, 0xA9, 0x46, 0xE9, 0x12)
	for i := 0; i < 4; i++ {
		c.Step()
	}
	if c.A != 0x34 {
		t.Errorf("decimal SBC result = %#02x, want 0x34", c.A)
	}
}

func TestCPU_JSRAndRTSRoundTrip(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	// JSR $9000 ; at $9000: RTS. After both, PC should resume right
	// after the 3-byte JSR.
	mem.load(0x8000, 0x20, 0x00, 0x90)
	mem.load(0x9000, 0x60)

	c.Step() // JSR
	if c.PC != 0x9000 {
		t.Errorf("PC after JSR = %#04x, want 0x9000", c.PC)
	}
	c.Step() // RTS
	if c.PC != 0x8003 {
		t.Errorf("PC after RTS = %#04x, want 0x8003", c.PC)
	}
}

func TestCPU_BEQBranchTaken(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	// LDA #$00 ; BEQ +2 ; (skipped) LDA #$FF ; target: LDX #$01
	mem.load(0x8000, 0xA9, 0x00, 0xF0, 0x02, 0xA9, 0xFF, 0xA2, 0x01)
	c.Step() // LDA #$00
	c.Step() // BEQ, taken
	if c.PC != 0x8006 {
		t.Errorf("PC after taken BEQ = %#04x, want 0x8006", c.PC)
	}
}

func TestCPU_JAMSetsJammedAndHaltsStep(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	mem.load(0x8000, 0x02, 0xA9, 0xFF) // JAM ; LDA #$FF
	c.Step()
	if !c.Jammed {
		t.Errorf("expected Jammed after opcode 0x02")
	}
	pcAfterJam := c.PC
	c.Step()
	if c.PC != pcAfterJam {
		t.Errorf("Step advanced PC after jam: %#04x -> %#04x", pcAfterJam, c.PC)
	}
}

func TestCPU_UnimplementedOpcodeAdvancesOneByteAndCountsButDoesNotCrash(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	mem.load(0x8000, 0x03, 0xA9, 0xFF) // unofficial SLO (unimplemented here) ; LDA #$FF

	var hookPC uint16
	var hookOp uint8
	c.UnimplementedHook = func(pc uint16, opcode uint8) {
		hookPC, hookOp = pc, opcode
	}

	c.Step()
	if c.Unimplemented != 1 {
		t.Errorf("Unimplemented count = %d, want 1", c.Unimplemented)
	}
	if hookPC != 0x8000 || hookOp != 0x03 {
		t.Errorf("hook got pc=%#04x op=%#02x, want pc=0x8000 op=0x03", hookPC, hookOp)
	}
	if c.PC != 0x8001 {
		t.Errorf("PC after unimplemented opcode = %#04x, want 0x8001", c.PC)
	}

	c.Step() // LDA #$FF should still execute normally
	if c.A != 0xFF {
		t.Errorf("A after following LDA = %#02x, want 0xFF", c.A)
	}
}

func TestCPU_BRKAndRTIRoundTrip(t *testing.T) {
	c, mem := newTestCPU(0x8000)
	mem.load(0x8000, 0x00) // BRK
	mem.ram[0xFFFE] = 0x00
	mem.ram[0xFFFF] = 0x90
	mem.load(0x9000, 0x40) // RTI

	c.Step() // BRK
	if c.PC != 0x9000 {
		t.Errorf("PC after BRK = %#04x, want 0x9000", c.PC)
	}
	if c.GetFlag(FlagInterrupt) != 1 {
		t.Errorf("interrupt flag not set after BRK")
	}

	c.Step() // RTI
	if c.PC != 0x8002 {
		t.Errorf("PC after RTI = %#04x, want 0x8002", c.PC)
	}
}
