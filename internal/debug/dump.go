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

// Package debug dumps CPU registers and memory regions for bug reports
// (the sixtyfiveten CLI's --dump flag uses CPUState), via go-spew so
// nested struct fields print without hand-written String() plumbing.
package debug

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/mg64/sixtyfiveten/internal/cpu"
)

var config = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// CPUState renders every exported register and flag of c as a
// multi-line string suitable for a crash report.
func CPUState(c *cpu.CPU) string {
	return config.Sdump(struct {
		A, X, Y uint8
		SP      uint8
		PC      uint16
		Status  uint8
		Jammed  bool
	}{
		A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC,
		Status: c.Status.Byte(), Jammed: c.Jammed,
	})
}

// Region renders a slice of memory as a go-spew hex dump, for
// inspecting a window of RAM without writing a bespoke formatter.
func Region(data []byte) string {
	return config.Sdump(data)
}
