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

package disasm

import (
	"strings"
	"testing"
)

type fakeMem struct {
	ram [65536]uint8
}

func (m *fakeMem) Read(addr uint16) uint8 { return m.ram[addr] }

func TestOne_ImmediateOperand(t *testing.T) {
	mem := &fakeMem{}
	mem.ram[0x8000] = 0xA9 // LDA #$42
	mem.ram[0x8001] = 0x42

	line := One(mem, 0x8000)
	if line.Len != 2 {
		t.Errorf("Len = %d, want 2", line.Len)
	}
	if !strings.Contains(line.Text, "LDA") || !strings.Contains(line.Text, "#$42") {
		t.Errorf("Text = %q, want mention of LDA and #$42", line.Text)
	}
}

func TestOne_AbsoluteOperand(t *testing.T) {
	mem := &fakeMem{}
	mem.ram[0x8000] = 0x8D // STA $2000
	mem.ram[0x8001] = 0x00
	mem.ram[0x8002] = 0x20

	line := One(mem, 0x8000)
	if line.Len != 3 {
		t.Errorf("Len = %d, want 3", line.Len)
	}
	if !strings.Contains(line.Text, "STA") || !strings.Contains(line.Text, "$2000") {
		t.Errorf("Text = %q, want mention of STA and $2000", line.Text)
	}
}

func TestOne_ImpliedHasNoOperand(t *testing.T) {
	mem := &fakeMem{}
	mem.ram[0x8000] = 0xEA // NOP

	line := One(mem, 0x8000)
	if line.Len != 1 {
		t.Errorf("Len = %d, want 1", line.Len)
	}
	if line.Text != "$8000: NOP" {
		t.Errorf("Text = %q, want %q with no operand for implied NOP", line.Text, "$8000: NOP")
	}
}

func TestOne_UndocumentedOpcodeUsesCanonicalAlias(t *testing.T) {
	mem := &fakeMem{}
	mem.ram[0x8000] = 0x03 // SLO ($nn,X)
	mem.ram[0x8001] = 0x10

	line := One(mem, 0x8000)
	if !strings.Contains(line.Text, "SLO") {
		t.Errorf("Text = %q, want mention of SLO", line.Text)
	}
}

func TestRange_DecodesConsecutiveInstructions(t *testing.T) {
	mem := &fakeMem{}
	mem.ram[0x8000] = 0xA9 // LDA #$00
	mem.ram[0x8001] = 0x00
	mem.ram[0x8002] = 0xEA // NOP
	mem.ram[0x8003] = 0x60 // RTS

	lines := Range(mem, 0x8000, 0x8003)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	if lines[0].Addr != 0x8000 || lines[1].Addr != 0x8002 || lines[2].Addr != 0x8003 {
		t.Errorf("line addresses = %v, want 0x8000,0x8002,0x8003", []uint16{lines[0].Addr, lines[1].Addr, lines[2].Addr})
	}
}
