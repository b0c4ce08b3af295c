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

package rom

import (
	"bytes"
	"errors"
	"testing"
)

func TestLoad_AcceptsExactSize(t *testing.T) {
	data := make([]byte, 8192)
	img, err := Load(KERNAL, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load(KERNAL) error = %v, want nil", err)
	}
	if len(img.Data) != 8192 || img.Kind != KERNAL {
		t.Errorf("Load(KERNAL) image = %+v, want 8192 bytes of kind KERNAL", img)
	}
}

func TestLoad_RejectsWrongSize(t *testing.T) {
	data := make([]byte, 100)
	_, err := Load(BASIC, bytes.NewReader(data))
	if err == nil {
		t.Fatalf("Load(BASIC) with short image: got nil error, want ErrWrongSize")
	}
	if !errors.Is(err, ErrWrongSize) {
		t.Errorf("Load(BASIC) error = %v, want wrapping ErrWrongSize", err)
	}
}

func TestLoadProgram_RejectsEmpty(t *testing.T) {
	_, err := LoadProgram(0x0800, bytes.NewReader(nil))
	if err != ErrEmptyProgram {
		t.Errorf("LoadProgram(empty) error = %v, want ErrEmptyProgram", err)
	}
}

func TestLoadProgram_RejectsOverflow(t *testing.T) {
	data := make([]byte, 0x200)
	_, err := LoadProgram(0xFF00, bytes.NewReader(data))
	if err != ErrProgramTooLarge {
		t.Errorf("LoadProgram(overflowing) error = %v, want ErrProgramTooLarge", err)
	}
}

func TestLoadProgram_AnchorsAtAddress(t *testing.T) {
	data := []byte{0xA9, 0x00, 0x60}
	p, err := LoadProgram(0x0800, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadProgram error = %v, want nil", err)
	}
	if p.LoadAddr != 0x0800 || !bytes.Equal(p.Data, data) {
		t.Errorf("LoadProgram result = %+v, want LoadAddr=0x0800 Data=%v", p, data)
	}
}
