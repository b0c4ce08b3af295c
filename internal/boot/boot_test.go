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

package boot

import (
	"bytes"
	"testing"

	"github.com/mg64/sixtyfiveten/internal/rom"
)

func TestMachine_LoadProgramWithVectorRunsToJam(t *testing.T) {
	m := New()

	// LDA #$01 ; STA $0002 ; JAM
	code := []byte{0xA9, 0x01, 0x8D, 0x02, 0x00, 0x02}
	prog, err := rom.LoadProgram(0x0800, bytes.NewReader(code))
	if err != nil {
		t.Fatalf("LoadProgram error = %v", err)
	}
	m.LoadProgram(prog, true)
	m.Reset()

	executed := m.Run(0)
	if !m.CPU.Jammed {
		t.Errorf("expected machine to jam")
	}
	if executed != 3 {
		t.Errorf("executed = %d, want 3 (LDA, STA, JAM)", executed)
	}
	if v := m.Bus.PeekRAM(0x0002); v != 0x01 {
		t.Errorf("RAM[0x0002] = %#02x, want 0x01", v)
	}
}

func TestMachine_RunRespectsBudget(t *testing.T) {
	m := New()
	// Three NOPs in a row, no JAM.
	code := []byte{0xEA, 0xEA, 0xEA}
	prog, _ := rom.LoadProgram(0x0800, bytes.NewReader(code))
	m.LoadProgram(prog, true)
	m.Reset()

	executed := m.Run(2)
	if executed != 2 {
		t.Errorf("executed = %d, want 2", executed)
	}
}

func TestMachine_InstallROMRoutesToCorrectSocket(t *testing.T) {
	m := New()
	data := make([]byte, 8192)
	data[0] = 0x4C
	img, _ := rom.Load(rom.KERNAL, bytes.NewReader(data))
	m.InstallROM(img)

	m.Bus.Write(0x0001, 0x37) // loram+hiram+charen: KERNAL banked in
	if v := m.Bus.Read(0xE000); v != 0x4C {
		t.Errorf("KERNAL window read = %#02x, want 0x4C from installed ROM", v)
	}
}
