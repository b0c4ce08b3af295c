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

// Package bus implements the banked memory map of a MOS 6510 based home
// computer: a flat 64KB RAM overlaid, in three windows, by BASIC, KERNAL
// and Character ROM images according to the port register at 0x0001.
package bus

const (
	// MemoryCapacity is the size of the address space the CPU can see.
	MemoryCapacity = 65536

	basicBase, basicSize   = 0xA000, 8192
	charBase, charSize     = 0xD000, 4096
	kernalBase, kernalSize = 0xE000, 8192

	// PortDirectionAddr and PortAddr are the two memory locations that
	// drive bank switching; they live in ordinary RAM like any other
	// zero-page byte, they are just also consulted by the Bus itself.
	PortDirectionAddr = 0x0000
	PortAddr          = 0x0001

	// Power-on defaults for the two port bytes; 0x37 sets loram, hiram
	// and charen, producing the default RAM+BASIC+KERNAL+I/O mapping.
	PowerOnPortDirection uint8 = 0x2F
	PowerOnPort          uint8 = 0x37
)

// IOShadow lets a host install a device behind the 0xD000-0xDFFF window
// when the port bits select I/O rather than Character ROM. When absent
// the window reads/writes RAM like any other address.
type IOShadow interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// Bus is the single read/write surface the CPU core talks to. It is
// deliberately ignorant of instruction decoding; it only resolves one
// address at a time against RAM, the three ROM images, and an optional
// I/O shadow.
type Bus struct {
	ram [MemoryCapacity]uint8

	basic, char, kernal []uint8
	io                  IOShadow
}

// New returns a Bus with empty ROM images and RAM zeroed. Use LoadBASIC,
// LoadKERNAL and LoadChar to install the ROM images before Reset.
func New() *Bus {
	return &Bus{}
}

// AttachIO installs (or clears, with nil) the I/O shadow collaborator.
func (b *Bus) AttachIO(io IOShadow) {
	b.io = io
}

// LoadBASIC installs the 8KB BASIC ROM image, visible at 0xA000-0xBFFF.
func (b *Bus) LoadBASIC(image []uint8) {
	b.basic = image
}

// LoadKERNAL installs the 8KB KERNAL ROM image, visible at 0xE000-0xFFFF.
func (b *Bus) LoadKERNAL(image []uint8) {
	b.kernal = image
}

// LoadChar installs the 4KB character generator ROM image, visible at
// 0xD000-0xDFFF when charen is clear and loram or hiram is set.
func (b *Bus) LoadChar(image []uint8) {
	b.char = image
}

// port returns the live value of the bank-select byte.
func (b *Bus) port() uint8 {
	return b.ram[PortAddr]
}

// loram/hiram/charen mirror the three port bits that drive banking, named
// the way the hardware documentation names them.
func (b *Bus) loram() bool  { return b.port()&0x01 != 0 }
func (b *Bus) hiram() bool  { return b.port()&0x02 != 0 }
func (b *Bus) charen() bool { return b.port()&0x04 != 0 }

// Read resolves addr against RAM or the appropriate ROM image. Reads
// never have side effects beyond what an installed I/O shadow chooses
// to do.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr >= basicBase && addr < basicBase+basicSize:
		if b.loram() && b.hiram() && len(b.basic) == basicSize {
			return b.basic[addr-basicBase]
		}
		return b.ram[addr]
	case addr >= charBase && addr < charBase+charSize:
		if !b.loram() && !b.hiram() {
			return b.ram[addr]
		}
		if b.charen() {
			if b.io != nil {
				return b.io.Read(addr)
			}
			return b.ram[addr]
		}
		if len(b.char) == charSize {
			return b.char[addr-charBase]
		}
		return b.ram[addr]
	case addr >= kernalBase:
		if !b.loram() && !b.hiram() {
			return b.ram[addr]
		}
		if b.hiram() && len(b.kernal) == kernalSize {
			return b.kernal[addr-kernalBase]
		}
		return b.ram[addr]
	default:
		return b.ram[addr]
	}
}

// Write always lands in RAM, except when the port routes the 0xD000
// window to an installed I/O shadow: ROM is never writable, matching
// real hardware (writes to a ROM-shadowed address still land in the
// RAM underneath it, which is what the next bank switch will reveal).
func (b *Bus) Write(addr uint16, value uint8) {
	if addr >= charBase && addr < charBase+charSize && (b.loram() || b.hiram()) && b.charen() && b.io != nil {
		b.io.Write(addr, value)
		return
	}
	b.ram[addr] = value
}

// Read16 reads a little-endian 16-bit value, low byte first.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// PeekRAM reads RAM directly, bypassing banking; the monitor's RAM panels
// use it to show what is actually in RAM underneath whatever ROM is
// currently switched in.
func (b *Bus) PeekRAM(addr uint16) uint8 {
	return b.ram[addr]
}

// LoadRAM copies payload into RAM starting at addr, for program loading.
func (b *Bus) LoadRAM(addr uint16, payload []uint8) {
	for i, v := range payload {
		b.ram[int(addr)+i] = v
	}
}

// Reset clears RAM, restores the power-on port bytes, and copies the
// vector table at 0xFFFA-0xFFFF down into RAM from whatever is visible
// there once the power-on port bytes are in effect (KERNAL ROM, if
// installed); it does not itself read the reset vector into PC, that is
// the CPU's job once the Bus is ready.
func (b *Bus) Reset() {
	for i := range b.ram {
		b.ram[i] = 0x00
	}
	b.ram[PortDirectionAddr] = PowerOnPortDirection
	b.ram[PortAddr] = PowerOnPort

	for addr := uint32(0xFFFA); addr <= 0xFFFF; addr++ {
		b.ram[addr] = b.Read(uint16(addr))
	}
}
