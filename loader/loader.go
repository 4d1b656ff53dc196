/*
 * setun1958 - Program-load text format reader.
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

// Package loader reads the Setun-1958 program-load text format: one
// record per line, five nonary characters per record, blank lines
// ignored. It is a thin total function over that format, not a
// general assembler.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/osetun/setun1958/cpu"
	"github.com/osetun/setun1958/memory"
	"github.com/osetun/setun1958/trit"
)

// DefaultBase is the conventional load origin, symbolic "----0",
// i.e. -120.
func DefaultBase() trit.Word {
	w, _ := trit.FromInt(-120, 5)
	return w
}

// Load reads nonary records from r and stores them into consecutive
// FRAM cells starting at base, advancing between records the same way
// the run loop's own program counter advances between half-cells, so
// a loaded program occupies cells in exactly the order the control
// unit will fetch them. It returns the address the next record would
// be stored at (NextAddress of the last cell written) and the count of
// records loaded.
func Load(r io.Reader, mem *memory.Memory, base trit.Word) (next trit.Word, count int, err error) {
	sc := bufio.NewScanner(r)
	addr := base
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		w, err := trit.DecodeNonary(line)
		if err != nil {
			return trit.Word{}, count, fmt.Errorf("loader: record %d: %w", count+1, err)
		}
		mem.StoreShort(addr, w)
		addr = cpu.NextAddress(addr)
		count++
	}
	if err := sc.Err(); err != nil {
		return trit.Word{}, count, err
	}
	return addr, count, nil
}
