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

// Processor status flags, one bit each, packed in this order when pushed
// to the stack: C Z I D B U V N (bit 0 .. bit 7).
const (
	FlagCarry     uint8 = 0x01
	FlagZero      uint8 = 0x02
	FlagInterrupt uint8 = 0x04
	FlagDecimal   uint8 = 0x08
	FlagBreak     uint8 = 0x10
	FlagUnused    uint8 = 0x20
	FlagOverflow  uint8 = 0x40
	FlagNegative  uint8 = 0x80
)

// Status is the 6510 processor status register. It is kept as a plain byte
// internally (matching how the hardware treats it) but exposes named
// accessors so callers never have to know the bit assignment.
type Status struct {
	bits uint8
}

// Get returns 1 if the flag is set, 0 otherwise.
func (s *Status) Get(flag uint8) uint8 {
	if s.bits&flag != 0 {
		return 1
	}
	return 0
}

// Set assigns the flag to v.
func (s *Status) Set(flag uint8, v bool) {
	if v {
		s.bits |= flag
	} else {
		s.bits &^= flag
	}
}

// Pack returns the byte image of the flags as it would appear on the
// stack. breakBit distinguishes a software push (BRK/PHP, break=1) from
// one made on behalf of a hardware interrupt (break=0); unused is always
// forced to 1 in the pushed image.
func (s *Status) Pack(breakBit bool) uint8 {
	b := s.bits | FlagUnused
	if breakBit {
		b |= FlagBreak
	} else {
		b &^= FlagBreak
	}
	return b
}

// Unpack restores all flags from a byte previously popped off the stack.
// B and U are software conventions only; RTI and PLP both discard them
// from the live flag set (U still reads back as 1 through Get/Pack).
func (s *Status) Unpack(b uint8) {
	s.bits = b
	s.bits |= FlagUnused
	s.bits &^= FlagBreak
}

// String renders the flags in the canonical NVUBDIZC order, set flags
// upper-case and cleared flags as a dot, for trace lines.
func (s *Status) String() string {
	letters := "NVUBDIZC"
	values := []uint8{FlagNegative, FlagOverflow, FlagUnused, FlagBreak, FlagDecimal, FlagInterrupt, FlagZero, FlagCarry}
	out := make([]byte, len(letters))
	for i := range letters {
		if s.Get(values[i]) != 0 {
			out[i] = letters[i]
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// Byte exposes the raw flag byte, e.g. for debug dumps.
func (s *Status) Byte() uint8 {
	return s.bits
}
