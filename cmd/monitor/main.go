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

package main

import (
	"fmt"
	"log"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/mg64/sixtyfiveten/internal/boot"
	"github.com/mg64/sixtyfiveten/internal/disasm"
)

var (
	machine *boot.Machine

	paragraphCPU  *widgets.Paragraph
	paragraphCode *widgets.Paragraph
	paragraphRam0 *widgets.Paragraph
	paragraphRam1 *widgets.Paragraph
)

func renderCPU(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	c := machine.CPU
	sb.WriteString("[STATUS:](fg:white) " + c.Status.String())
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("PC: $%04X SP: $%02X", c.PC, c.SP))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("A: $%02X  X: $%02X  Y: $%02X", c.A, c.X, c.Y))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("unimplemented: %d  jammed: %v", c.Unimplemented, c.Jammed))

	p.Text = sb.String()
}

func renderRam(p *widgets.Paragraph, addr uint16, numRow, numCol int) {
	curAddr := addr
	sb := &strings.Builder{}
	for row := 0; row < numRow; row++ {
		sb.WriteString(fmt.Sprintf("$%04X:", curAddr))
		for col := 0; col < numCol; col++ {
			sb.WriteRune(' ')
			sb.WriteString(fmt.Sprintf("%02X", machine.Bus.PeekRAM(curAddr)))
			curAddr++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderCode(p *widgets.Paragraph) {
	c := machine.CPU
	lines := disasm.Range(machine.Bus, c.PC, c.PC+32)

	sb := &strings.Builder{}
	for i, l := range lines {
		if i >= 10 {
			break
		}
		sb.WriteString(l.Text)
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func draw() {
	renderRam(paragraphRam0, 0x0000, 16, 16)
	renderRam(paragraphRam1, 0x8000, 16, 16)
	renderCPU(paragraphCPU)
	renderCode(paragraphCode)

	ui.Render(paragraphRam0, paragraphRam1, paragraphCPU, paragraphCode)
}

func loadMachine() {
	machine = boot.New()

	// A short built-in demo program (the monitor takes no command-line
	// options): multiply 10 by 3 by repeated addition, store the result
	// (30) to $0002, then run three NOPs.
	codes := []byte{0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E, 0x01, 0x00,
		0xAC, 0x00, 0x00, 0xA9, 0x00, 0x18, 0x6D, 0x01, 0x00, 0x88, 0xD0, 0xFA,
		0x8D, 0x02, 0x00, 0xEA, 0xEA, 0xEA}

	machine.Bus.LoadRAM(0x8000, codes)
	machine.Bus.Write(0xFFFC, 0x00)
	machine.Bus.Write(0xFFFD, 0x80)

	machine.Reset()
}

func initLayout() {
	paragraphRam0 = widgets.NewParagraph()
	paragraphRam0.Title = "RAM Page 0x00"
	paragraphRam0.SetRect(0, 0, 56, 18)

	paragraphRam1 = widgets.NewParagraph()
	paragraphRam1.Title = "RAM Page 0x80"
	paragraphRam1.SetRect(0, 18, 56, 36)

	paragraphCPU = widgets.NewParagraph()
	paragraphCPU.Title = "CPU"
	paragraphCPU.SetRect(56, 0, 56+25, 7)

	paragraphCode = widgets.NewParagraph()
	paragraphCode.Title = "Disassembly"
	paragraphCode.SetRect(0, 36, 56, 36+12)
}

func main() {
	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	initLayout()
	loadMachine()

	draw()

	for e := range ui.PollEvents() {
		if e.Type == ui.KeyboardEvent {
			switch e.ID {
			case "q", "<C-c>":
				return
			case "<Space>":
				machine.CPU.Step()
				draw()
			case "r":
				machine.Reset()
				draw()
			}
		}
	}
}
