/*
 * setun1958 - Trit word codecs: signed integers, symbolic strings, nonary.
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

import "fmt"

// ToInt returns the signed integer value of w: the sum, over every
// trit, of the trit's value times 3 to the power of its distance from
// the least-significant position. This is an exact bijection onto the
// word's range for its width.
func (w Word) ToInt() int64 {
	var v int64
	for i := 1; i <= w.Len(); i++ {
		v = v*3 + int64(w.Get(i))
	}
	return v
}

// Bound returns the maximum magnitude representable in `length` trits:
// (3^length - 1) / 2.
func Bound(length int) int64 {
	p := int64(1)
	for i := 0; i < length; i++ {
		p *= 3
	}
	return (p - 1) / 2
}

// FromInt encodes v as a word of the given length. It fails if v falls
// outside the signed range that width can represent.
func FromInt(v int64, length int) (Word, error) {
	bound := Bound(length)
	if v < -bound || v > bound {
		return Word{}, &DomainError{Msg: fmt.Sprintf("trit.FromInt: %d out of range for %d trits (+-%d)", v, length, bound)}
	}
	w := New(length)
	for i := length; i >= 1; i-- {
		r := v % 3
		v /= 3
		if r == 2 {
			r = -1
			v++
		} else if r == -2 {
			r = 1
			v--
		}
		_ = w.Set(i, int8(r))
	}
	return w, nil
}

// WrapInt encodes v into a word of the given length by the same digit
// extraction FromInt uses, but without a range check: values outside
// the representable interval wrap around modulo 3^length. The CPU's
// register writes do not use it: they range-check the exact integer
// against Bound and halt on overflow instead of wrapping.
func WrapInt(v int64, length int) Word {
	w := New(length)
	for i := length; i >= 1; i-- {
		r := v % 3
		v /= 3
		if r == 2 {
			r = -1
			v++
		} else if r == -2 {
			r = 1
			v--
		}
		_ = w.Set(i, int8(r))
	}
	return w
}

// ParseSymbolic decodes a string over the alphabet {'-','0','+'} (1 to
// 18 characters) into a word whose length equals the string length and
// whose leftmost character is the most significant trit.
func ParseSymbolic(s string) (Word, error) {
	if len(s) == 0 || len(s) > 18 {
		return Word{}, &DomainError{Msg: fmt.Sprintf("trit.ParseSymbolic: length %d out of range [1,18]", len(s))}
	}
	digits := make([]int8, len(s))
	for i, c := range []byte(s) {
		switch c {
		case '-':
			digits[i] = -1
		case '0':
			digits[i] = 0
		case '+':
			digits[i] = 1
		default:
			return Word{}, &DomainError{Msg: fmt.Sprintf("trit.ParseSymbolic: invalid character %q at position %d", c, i+1)}
		}
	}
	return FromDigits(digits)
}

// nonaryAlphabet maps nonary digit value (-4..+4) to its symbol, in
// the order the machine's paper-tape format uses it.
var nonaryAlphabet = [9]byte{'W', 'X', 'Y', 'Z', '0', '1', '2', '3', '4'}

// nonaryValue is the inverse of nonaryAlphabet, keyed by symbol.
var nonaryValue = map[byte]int8{
	'W': -4, 'X': -3, 'Y': -2, 'Z': -1,
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
}

// NonaryDigit encodes a pair of trits (hi, lo), each in {-1,0,+1}, as
// the single nonary character the paper-tape format uses:
// value = hi*3 + lo, in [-4,4].
func NonaryDigit(hi, lo int8) (byte, error) {
	if hi < -1 || hi > 1 || lo < -1 || lo > 1 {
		return 0, &DomainError{Msg: "trit.NonaryDigit: trit out of range"}
	}
	v := hi*3 + lo
	return nonaryAlphabet[v+4], nil
}

// NonaryPair decodes a nonary character back into its two trits.
func NonaryPair(c byte) (hi, lo int8, err error) {
	v, ok := nonaryValue[c]
	if !ok {
		return 0, 0, &DomainError{Msg: fmt.Sprintf("trit.NonaryPair: invalid nonary symbol %q", c)}
	}
	lo = v % 3
	hi = (v - lo) / 3
	if lo < -1 {
		lo += 3
		hi--
	} else if lo > 1 {
		lo -= 3
		hi++
	}
	return hi, lo, nil
}

// EncodeNonary renders a short (9-trit) word as five nonary
// characters: each character packs two trits, and since 9 is odd the
// final character's low trit is implicitly 0.
func EncodeNonary(w Word) (string, error) {
	if w.Len() != 9 {
		return "", &DomainError{Msg: fmt.Sprintf("trit.EncodeNonary: want 9 trits, got %d", w.Len())}
	}
	out := make([]byte, 5)
	for i := 0; i < 4; i++ {
		c, err := NonaryDigit(w.Get(2*i+1), w.Get(2*i+2))
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	c, err := NonaryDigit(w.Get(9), 0)
	if err != nil {
		return "", err
	}
	out[4] = c
	return string(out), nil
}

// DecodeNonary parses a five-character nonary record into a 9-trit
// word. The trailing character's low trit must be 0.
func DecodeNonary(s string) (Word, error) {
	if len(s) != 5 {
		return Word{}, &DomainError{Msg: fmt.Sprintf("trit.DecodeNonary: want 5 characters, got %d", len(s))}
	}
	w := New(9)
	for i := 0; i < 4; i++ {
		hi, lo, err := NonaryPair(s[i])
		if err != nil {
			return Word{}, err
		}
		_ = w.Set(2*i+1, hi)
		_ = w.Set(2*i+2, lo)
	}
	hi, lo, err := NonaryPair(s[4])
	if err != nil {
		return Word{}, err
	}
	if lo != 0 {
		return Word{}, &DomainError{Msg: "trit.DecodeNonary: trailing nonary digit must have a zero low trit"}
	}
	_ = w.Set(9, hi)
	return w, nil
}
