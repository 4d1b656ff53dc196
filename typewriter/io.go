/*
 * setun1958 - Typewriter as a CPU I/O collaborator.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package typewriter

import (
	"io"

	"github.com/osetun/setun1958/cpu"
	"github.com/osetun/setun1958/trit"
)

// Device adapts a Typewriter to cpu.IOController: the accumulator's
// S(1:5) field is read as a typewriter code, the rendered glyph (if
// any) is written to Out, and the -00 opcode's current word is
// returned unchanged since printing has no memory side effect.
type Device struct {
	TW  *Typewriter
	Out io.Writer
}

// NewDevice returns a Device printing to out.
func NewDevice(out io.Writer) *Device {
	return &Device{TW: New(), Out: out}
}

// Exec implements cpu.IOController.
func (d *Device) Exec(c *cpu.CPU, v trit.Word) (trit.Word, error) {
	code := trit.Slice(c.Regs.S, 1, 5)
	s := d.TW.Print(code)
	if s != "" && d.Out != nil {
		if _, err := io.WriteString(d.Out, s); err != nil {
			return v, err
		}
	}
	return v, nil
}
