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

// Package rom loads ROM images and raw program binaries from disk into
// a form internal/bus.Bus can install.
package rom

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/btcsuite/goleveldb/leveldb/errors"
)

// Kind identifies which ROM socket an image is destined for.
type Kind int

const (
	BASIC Kind = iota
	Character
	KERNAL
)

var sizes = map[Kind]int{
	BASIC:     8192,
	Character: 4096,
	KERNAL:    8192,
}

var names = map[Kind]string{
	BASIC:     "BASIC",
	Character: "Character",
	KERNAL:    "KERNAL",
}

// Sentinel errors, following the teacher's dumper package convention
// of named leveldb/errors values rather than fmt.Errorf ad hoc.
var (
	ErrWrongSize        = errors.New("rom: image does not match the expected socket size")
	ErrEmptyProgram     = errors.New("rom: program image is empty")
	ErrProgramTooLarge  = errors.New("rom: program image does not fit before the address space wraps")
	ErrUnknownROMSocket = errors.New("rom: unknown ROM socket kind")
)

// Image is a validated, fixed-size ROM payload ready for
// internal/bus.Bus's LoadBASIC/LoadChar/LoadKERNAL methods.
type Image struct {
	Kind Kind
	Data []byte
}

// Load reads a ROM image of the given kind from r, rejecting anything
// that doesn't match that socket's fixed size exactly. C64 ROM chips
// are fixed-size masked ROMs, not variable-length cartridges, so unlike
// a cartridge-based system there is no header to parse.
func Load(kind Kind, r io.Reader) (Image, error) {
	want, ok := sizes[kind]
	if !ok {
		return Image{}, ErrUnknownROMSocket
	}

	data, err := ioutil.ReadAll(io.LimitReader(r, int64(want)+1))
	if err != nil {
		return Image{}, err
	}
	if len(data) != want {
		return Image{}, fmt.Errorf("rom: %s image must be exactly %d bytes: %w", names[kind], want, ErrWrongSize)
	}

	return Image{Kind: kind, Data: data}, nil
}

// Program is a raw binary destined for a load address in RAM, the way
// monitor-loaded test programs work: the caller supplies LoadAddr and
// every byte of the input is payload. A PRG file's two-byte load-address
// prefix is not parsed; it would be loaded as part of the payload.
type Program struct {
	LoadAddr uint16
	Data     []byte
}

// LoadProgram reads every byte available from r and anchors it at
// addr. It rejects empty input and input that would run past 0xFFFF.
func LoadProgram(addr uint16, r io.Reader) (Program, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return Program{}, err
	}
	if len(data) == 0 {
		return Program{}, ErrEmptyProgram
	}
	if int(addr)+len(data) > 0x10000 {
		return Program{}, ErrProgramTooLarge
	}
	return Program{LoadAddr: addr, Data: data}, nil
}
