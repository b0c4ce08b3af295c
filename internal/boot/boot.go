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

// Package boot wires a Bus and a CPU together into a runnable machine:
// installing ROM images, loading a program (or letting KERNAL/BASIC
// take over), and driving reset.
package boot

import (
	"github.com/mg64/sixtyfiveten/internal/bus"
	"github.com/mg64/sixtyfiveten/internal/cpu"
	"github.com/mg64/sixtyfiveten/internal/rom"
)

// Machine bundles the bus and CPU the way a host program drives them.
type Machine struct {
	Bus *bus.Bus
	CPU *cpu.CPU
}

// New builds a Machine with empty ROM sockets, RAM zeroed and the
// power-on port bytes already in place (the bus is reset here, once).
// Callers install ROM images with InstallROM, load a program with
// LoadProgram, and then call Reset to load PC from the reset vector.
func New() *Machine {
	b := bus.New()
	m := &Machine{
		Bus: b,
		CPU: cpu.New(b),
	}
	m.Bus.Reset()
	return m
}

// InstallROM loads a validated ROM image into its socket.
func (m *Machine) InstallROM(img rom.Image) {
	switch img.Kind {
	case rom.BASIC:
		m.Bus.LoadBASIC(img.Data)
	case rom.Character:
		m.Bus.LoadChar(img.Data)
	case rom.KERNAL:
		m.Bus.LoadKERNAL(img.Data)
	}
}

// LoadProgram copies a raw binary into RAM and, when withVector is
// true, points the reset vector directly at it — the way a monitor
// loads a standalone test program without a BASIC/KERNAL environment.
func (m *Machine) LoadProgram(p rom.Program, withVector bool) {
	m.Bus.LoadRAM(p.LoadAddr, p.Data)
	if withVector {
		lo := uint8(p.LoadAddr & 0xFF)
		hi := uint8(p.LoadAddr >> 8)
		m.Bus.Write(0xFFFC, lo)
		m.Bus.Write(0xFFFD, hi)
	}
}

// Reset reloads the CPU's registers and PC from whatever the reset
// vector currently points at, without touching RAM. Call this after
// InstallROM/LoadProgram have put something meaningful at the vector;
// call it again any time a running program needs a cold restart.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// Run steps the CPU until it jams or budget instructions have been
// executed, whichever comes first; a budget of 0 means unlimited.
func (m *Machine) Run(budget uint64) uint64 {
	var executed uint64
	for !m.CPU.Jammed {
		m.CPU.Step()
		executed++
		if budget != 0 && executed >= budget {
			break
		}
	}
	return executed
}
