/*
 * setun1958 - Diagnostic memory dump.
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

// Package diag implements row-major FRAM/drum pretty-printers: a pure
// formatting pass over decoded machine state, with no side effects.
// The exact text layout carries no contract, only its content.
package diag

import (
	"fmt"
	"io"

	"github.com/osetun/setun1958/memory"
	"github.com/osetun/setun1958/trit"
)

// DumpFRAM writes one line per short cell of the ferrite store,
// row-major by (row, page): row/page, raw trits, signed integer
// value, and nonary rendering.
func DumpFRAM(w io.Writer, m *memory.Memory) error {
	for row := 0; row < memory.FramRows(); row++ {
		for page := 0; page < memory.FramPages(); page++ {
			v := m.LoadFramCell(row, page)
			nonary, err := trit.EncodeNonary(v)
			if err != nil {
				nonary = "?????"
			}
			if _, err := fmt.Fprintf(w, "fram[%3d:%d] %s = %d [%s]\n",
				row-40, page, v, v.ToInt(), nonary); err != nil {
				return err
			}
		}
	}
	return nil
}

// DumpDrum writes one line per short cell of the drum, zone-major by
// (zone, row): zone/row, raw trits, signed integer value.
func DumpDrum(w io.Writer, m *memory.Memory) error {
	for z := 0; z < memory.DrumZones(); z++ {
		for r := 0; r < memory.DrumRows(); r++ {
			v := m.LoadDrumCell(z, r)
			if _, err := fmt.Fprintf(w, "drum[%3d:%3d] %s = %d\n", z-36, r-40, v, v.ToInt()); err != nil {
				return err
			}
		}
	}
	return nil
}
