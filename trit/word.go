/*
 * setun1958 - Balanced-ternary trit word primitive.
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

// Package trit implements the balanced-ternary word primitive and the
// arithmetic, logical, shift and codec operations the Setun-1958
// interpreter builds on.
//
// A Word stores one signed byte per trit rather than packing two bits
// per trit into a wider integer; an array of small integers trades
// density for an implementation free of shift/mask bugs, which
// matters more for a desktop emulator than raw footprint.
package trit

import "fmt"

// Word is an ordered, fixed-length sequence of trits. Trit index 1 is
// the most significant; index Len() is the least significant.
type Word struct {
	t []int8
}

// DomainError reports a trit value or codec input outside its legal
// domain. It is never mapped to a machine halt: it signals a bug in
// the embedder, not a fault in the emulated program.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

// New returns a zero-filled word of the given length.
func New(length int) Word {
	if length < 0 {
		length = 0
	}
	return Word{t: make([]int8, length)}
}

// FromDigits builds a word directly from a slice of trit values, most
// significant first. Every digit must be in {-1,0,+1}.
func FromDigits(digits []int8) (Word, error) {
	w := Word{t: make([]int8, len(digits))}
	for i, d := range digits {
		if d < -1 || d > 1 {
			return Word{}, &DomainError{Msg: fmt.Sprintf("trit.FromDigits: digit %d at position %d out of range", d, i+1)}
		}
		w.t[i] = d
	}
	return w, nil
}

// Len returns the word's width in trits.
func (w Word) Len() int { return len(w.t) }

// Get returns the trit at 1-based position pos, or 0 if pos falls
// outside [1, Len()]. It never fails.
func (w Word) Get(pos int) int8 {
	if pos < 1 || pos > len(w.t) {
		return 0
	}
	return w.t[pos-1]
}

// Set stores v at 1-based position pos. Positions outside [1, Len()]
// are a silent no-op, matching the memory model's total-write
// contract. A value outside {-1,0,+1} is a DomainError: it is never
// silently clamped.
func (w Word) Set(pos int, v int8) error {
	if v < -1 || v > 1 {
		return &DomainError{Msg: fmt.Sprintf("trit.Set: value %d out of range", v)}
	}
	if pos < 1 || pos > len(w.t) {
		return nil
	}
	w.t[pos-1] = v
	return nil
}

// Clone returns an independent deep copy of w.
func (w Word) Clone() Word {
	cp := make([]int8, len(w.t))
	copy(cp, w.t)
	return Word{t: cp}
}

// Equal reports whether two words have the same length and digits.
func (w Word) Equal(o Word) bool {
	if len(w.t) != len(o.t) {
		return false
	}
	for i := range w.t {
		if w.t[i] != o.t[i] {
			return false
		}
	}
	return true
}

// Sign returns the sign of the highest-order non-zero trit, or 0 if w
// is entirely zero.
func (w Word) Sign() int8 {
	for _, d := range w.t {
		if d != 0 {
			return d
		}
	}
	return 0
}

// IsZero reports whether every trit of w is 0.
func (w Word) IsZero() bool {
	return w.Sign() == 0
}

// Digits returns a copy of the underlying trit slice, most significant
// first.
func (w Word) Digits() []int8 {
	cp := make([]int8, len(w.t))
	copy(cp, w.t)
	return cp
}

// WidenTo realigns w to a destination of the given length following
// the machine's short-code-in-long-register promotion rule: a
// narrower source occupies the most-significant trits of the result
// and the least-significant trits are zero-filled; a wider source has
// its least-significant (Len()-length) trits discarded, keeping the
// most-significant part. This is deliberately NOT the usual
// right-aligned numeric-integer convention.
func (w Word) WidenTo(length int) Word {
	r := New(length)
	n := len(w.t)
	if n > length {
		n = length
	}
	copy(r.t, w.t[:n])
	return r
}

// String renders w using the symbolic alphabet {'-','0','+'}, most
// significant trit first.
func (w Word) String() string {
	b := make([]byte, len(w.t))
	for i, d := range w.t {
		switch {
		case d < 0:
			b[i] = '-'
		case d > 0:
			b[i] = '+'
		default:
			b[i] = '0'
		}
	}
	return string(b)
}
