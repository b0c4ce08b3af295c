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
	"os"
	"sort"
	"strconv"

	"gopkg.in/urfave/cli.v2"

	"github.com/mg64/sixtyfiveten/internal/boot"
	"github.com/mg64/sixtyfiveten/internal/debug"
	"github.com/mg64/sixtyfiveten/internal/rom"
	"github.com/mg64/sixtyfiveten/internal/trace"
)

func main() {
	app := &cli.App{
		Name:    "sixtyfiveten",
		Usage:   "run a 6510 program against an emulated C64 memory map",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "basic",
				Aliases: []string{"b"},
				Usage:   "BASIC ROM image (8KB)",
			},
			&cli.StringFlag{
				Name:    "kernal",
				Aliases: []string{"k"},
				Usage:   "KERNAL ROM image (8KB)",
			},
			&cli.StringFlag{
				Name:    "char",
				Aliases: []string{"r"},
				Usage:   "character ROM image (4KB)",
			},
			&cli.StringFlag{
				Name:    "prg",
				Aliases: []string{"p"},
				Usage:   "raw program binary to load directly into RAM",
			},
			&cli.StringFlag{
				Name:  "load",
				Usage: "load address for --prg, hex or decimal",
				Value: "0x0800",
			},
			&cli.Uint64Flag{
				Name:  "steps",
				Usage: "instruction budget, 0 means run until jammed",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print a trace line for every instruction executed",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "dump final CPU state before exiting",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.String("prg") == "" && c.String("kernal") == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("need either --prg or --kernal to have something to run", 86)
	}

	m := boot.New()

	if path := c.String("basic"); path != "" {
		if err := installROM(m, rom.BASIC, path); err != nil {
			return cli.Exit(err, 1)
		}
	}
	if path := c.String("kernal"); path != "" {
		if err := installROM(m, rom.KERNAL, path); err != nil {
			return cli.Exit(err, 1)
		}
	}
	if path := c.String("char"); path != "" {
		if err := installROM(m, rom.Character, path); err != nil {
			return cli.Exit(err, 1)
		}
	}

	hasProgram := c.String("prg") != ""
	if hasProgram {
		addr, err := strconv.ParseUint(trimHexPrefix(c.String("load")), hexBaseFor(c.String("load")), 16)
		if err != nil {
			return cli.Exit(fmt.Errorf("invalid --load address: %w", err), 1)
		}

		f, err := os.Open(c.String("prg"))
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer f.Close()

		prog, err := rom.LoadProgram(uint16(addr), f)
		if err != nil {
			return cli.Exit(err, 1)
		}
		m.LoadProgram(prog, true)
	}

	if c.Bool("trace") {
		trace.SetLogger(stdoutLogger{})
		trace.SetEnabled(true)
	}

	m.Reset()
	executed := m.Run(c.Uint64("steps"))

	fmt.Printf("executed %d instructions (unimplemented: %d)\n", executed, m.CPU.Unimplemented)
	if c.Bool("dump") {
		fmt.Println(debug.CPUState(m.CPU))
	}

	return nil
}

func installROM(m *boot.Machine, kind rom.Kind, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := rom.Load(kind, f)
	if err != nil {
		return err
	}
	m.InstallROM(img)
	return nil
}

func hexBaseFor(s string) int {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return 16
	}
	return 10
}

func trimHexPrefix(s string) string {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

type stdoutLogger struct{}

func (stdoutLogger) Log(msg string) {
	fmt.Println(msg)
}
