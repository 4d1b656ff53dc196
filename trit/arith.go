/*
 * setun1958 - Balanced-ternary arithmetic, logic and shift operations.
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

package trit

// addTrit returns the balanced-ternary sum s and carry c' of a, b and
// an incoming carry, per the carry table: a+b+c in [-3,3] decomposes
// as s = ((a+b+c)+1) mod 3 - 1, c' = floor(((a+b+c)+1)/3).
func addTrit(a, b, c int8) (s, cOut int8) {
	sum := int(a) + int(b) + int(c)
	m := sum + 1
	// Go's % can return a negative remainder; floor-divide by hand.
	q := m / 3
	r := m % 3
	if r < 0 {
		r += 3
		q--
	}
	return int8(r - 1), int8(q)
}

// Add computes x+y with carry propagated from the least-significant
// trit upward, starting from carry 0. The result width is the wider
// of the two operands; the narrower operand is promoted per WidenTo
// before the addition runs trit-by-trit from the low end.
func Add(x, y Word) Word {
	width := x.Len()
	if y.Len() > width {
		width = y.Len()
	}
	xa := alignLow(x, width)
	ya := alignLow(y, width)

	r := New(width)
	var carry int8
	for i := width; i >= 1; i-- {
		s, c := addTrit(xa.Get(i), ya.Get(i), carry)
		_ = r.Set(i, s)
		carry = c
	}
	return r
}

// Neg returns the ternary complement of w: every trit negated. This
// is also the ternary NOT.
func Neg(w Word) Word {
	r := New(w.Len())
	for i := 1; i <= w.Len(); i++ {
		_ = r.Set(i, -w.Get(i))
	}
	return r
}

// Sub returns x-y, computed as Add(x, Neg(y)).
func Sub(x, y Word) Word {
	return Add(x, Neg(y))
}

// alignLow widens w to `width` trits per the promotion rule (WidenTo),
// giving Add's digit loop a single width to index both operands by.
func alignLow(w Word, width int) Word {
	if w.Len() == width {
		return w
	}
	return w.WidenTo(width)
}

// And implements the ternary AND: sign(a*b) digit-wise. +1 when both
// trits are non-zero with the same sign, -1 when both are non-zero
// with opposite signs, 0 whenever either trit is 0.
func And(x, y Word) Word {
	width := maxLen(x, y)
	xa, ya := x.WidenTo(width), y.WidenTo(width)
	r := New(width)
	for i := 1; i <= width; i++ {
		a, b := xa.Get(i), ya.Get(i)
		switch {
		case a == 0 || b == 0:
			_ = r.Set(i, 0)
		case a == b:
			_ = r.Set(i, 1)
		default:
			_ = r.Set(i, -1)
		}
	}
	return r
}

// orTable is the digit-wise ternary OR: max(a,b) under -1 < 0 < +1,
// except the (0,-1) and (-1,0) pairs yield 0 rather than -1.
var orTable = [3][3]int8{
	// b=-1  b=0  b=+1      (index by a+1, b+1)
	{-1, 0, 1}, // a=-1
	{0, 0, 1},  // a=0
	{1, 1, 1},  // a=+1
}

// Or implements the digit-wise ternary OR per orTable.
func Or(x, y Word) Word {
	width := maxLen(x, y)
	xa, ya := x.WidenTo(width), y.WidenTo(width)
	r := New(width)
	for i := 1; i <= width; i++ {
		a, b := xa.Get(i), ya.Get(i)
		_ = r.Set(i, orTable[a+1][b+1])
	}
	return r
}

// xorTable is the digit-wise ternary exclusion table, indexed by
// [a+1][b+1].
var xorTable = [3][3]int8{
	{1, -1, 0},  // a=-1: b=-1,0,+1
	{-1, 0, -1}, // a=0
	{0, 1, -1},  // a=+1
}

// Xor implements the ternary exclusion operation.
func Xor(x, y Word) Word {
	width := maxLen(x, y)
	xa, ya := x.WidenTo(width), y.WidenTo(width)
	r := New(width)
	for i := 1; i <= width; i++ {
		a, b := xa.Get(i), ya.Get(i)
		_ = r.Set(i, xorTable[a+1][b+1])
	}
	return r
}

func maxLen(x, y Word) int {
	if x.Len() >= y.Len() {
		return x.Len()
	}
	return y.Len()
}

// Shift moves w's trits toward the least significant end when n>0
// (losing low trits, zero-filling high), toward the most significant
// end when n<0 (losing high trits, zero-filling low), and returns w
// unchanged when n==0. Width is preserved.
func Shift(w Word, n int) Word {
	if n == 0 {
		return w.Clone()
	}
	r := New(w.Len())
	for i := 1; i <= w.Len(); i++ {
		src := i - n
		if src >= 1 && src <= w.Len() {
			_ = r.Set(i, w.Get(src))
		}
	}
	return r
}

// oneAt returns a word of the given length with a single +1 trit at
// the least-significant position.
func oneAt(length int) Word {
	w := New(length)
	if length > 0 {
		_ = w.Set(length, 1)
	}
	return w
}

// Inc returns w+1.
func Inc(w Word) Word {
	return Add(w, oneAt(w.Len()))
}

// Dec returns w-1.
func Dec(w Word) Word {
	return Sub(w, oneAt(w.Len()))
}

// Slice extracts trits p1..p2 (inclusive, 1-based) of w. Out-of-range
// bounds (p1 > p2, or either outside [1, Len()]) produce an empty,
// zero-length word rather than an error.
func Slice(w Word, p1, p2 int) Word {
	if p1 < 1 || p2 > w.Len() || p1 > p2 {
		return New(0)
	}
	r := New(p2 - p1 + 1)
	for i := p1; i <= p2; i++ {
		_ = r.Set(i-p1+1, w.Get(i))
	}
	return r
}

// Overflow18 reports the machine's overflow condition for an
// 18-trit result: trits 1 and 2 both non-zero with the same sign.
func Overflow18(w Word) bool {
	a, b := w.Get(1), w.Get(2)
	return a != 0 && a == b
}
