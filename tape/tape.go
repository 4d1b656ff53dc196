/*
 * setun1958 - Paper tape collaborator.
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

// Package tape implements the Setun-1958 paper-tape collaborator: a
// synchronous, in-order, finite stream of 9-trit words, read and
// written one nonary record per line, the same packing the program
// loader reads.
package tape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/osetun/setun1958/cpu"
	"github.com/osetun/setun1958/trit"
)

// ErrEndOfTape is returned by ReadWord once the input stream is
// exhausted.
var ErrEndOfTape = errors.New("tape: end of tape")

// Reader is an input tape: a finite, in-order stream of 9-trit words
// read from an underlying scanner.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader wraps r as an input tape.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// OpenReader opens path as an input tape file.
func OpenReader(path string) (*Reader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(f), f, nil
}

// ReadWord consumes and decodes the next record, returning
// ErrEndOfTape once the stream is exhausted and blank lines skipped
// silently, matching the loader's line format.
func (r *Reader) ReadWord() (trit.Word, error) {
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		return trit.DecodeNonary(line)
	}
	if err := r.sc.Err(); err != nil {
		return trit.Word{}, err
	}
	return trit.Word{}, ErrEndOfTape
}

// Writer is an output tape: a finite, in-order stream of 9-trit words
// punched to an underlying writer, one nonary record per line.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as an output tape.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// CreateWriter creates path as an output tape file.
func CreateWriter(path string) (*Writer, *os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return NewWriter(f), f, nil
}

// WriteWord encodes v as a nonary record and punches it.
func (w *Writer) WriteWord(v trit.Word) error {
	s, err := trit.EncodeNonary(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w.w, s)
	return err
}

// Device adapts a Reader and/or Writer pair to cpu.IOController: the
// -00 opcode's current word is punched to Out (if attached) and the
// returned word comes from In (if attached), falling through to the
// original word unchanged when the tape in that direction isn't
// attached. Either half may be nil.
type Device struct {
	In  *Reader
	Out *Writer
}

// Exec implements cpu.IOController.
func (d *Device) Exec(_ *cpu.CPU, v trit.Word) (trit.Word, error) {
	if d.Out != nil {
		if err := d.Out.WriteWord(v); err != nil {
			return v, err
		}
	}
	if d.In != nil {
		return d.In.ReadWord()
	}
	return v, nil
}
