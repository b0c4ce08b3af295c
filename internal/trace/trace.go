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

// Package trace provides a pluggable sink for per-instruction trace
// lines, off by default so a host pays nothing for it unless asked.
package trace

// Logger accepts one rendered trace line at a time; hosts supply their
// own (stdout, a file, a ring buffer for the monitor) by implementing
// this single method.
type Logger interface {
	Log(msg string)
}

type discardLogger struct{}

func (discardLogger) Log(msg string) {}

var (
	defaultLogger Logger = discardLogger{}
	active               = defaultLogger
	enabled              = false
)

// SetLogger installs impl as the active sink; passing nil restores the
// no-op default.
func SetLogger(impl Logger) {
	if impl == nil {
		active = defaultLogger
		return
	}
	active = impl
}

// SetEnabled turns tracing on or off without disturbing the installed
// Logger, so a host can toggle tracing cheaply mid-run.
func SetEnabled(enable bool) {
	enabled = enable
}

// Enabled reports whether tracing is currently switched on.
func Enabled() bool {
	return enabled
}

// Emit forwards msg to the active Logger if tracing is enabled.
func Emit(msg string) {
	if !enabled {
		return
	}
	active.Log(msg)
}
