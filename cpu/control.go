/*
 * setun1958 - Address modification.
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

package cpu

import "github.com/osetun/setun1958/trit"

// ModifyAddress produces the effective instruction word Ka from K,
// driven by K(9): 0 leaves K unmodified; +1 adds F to K's address
// field; -1 subtracts F. The opcode field K(6:8) always survives
// unchanged and Ka(9) is always cleared, since a modified instruction
// is never itself subject to further modification.
func ModifyAddress(k, f trit.Word) trit.Word {
	sel := k.Get(9)
	if sel == 0 {
		return k.Clone()
	}

	addr := trit.Slice(k, 1, 5)
	var newAddr trit.Word
	if sel > 0 {
		newAddr = trit.Add(addr, f)
	} else {
		newAddr = trit.Sub(addr, f)
	}
	newAddr = newAddr.WidenTo(5) // address arithmetic silently truncates to 5 trits

	digits := append(append([]int8{}, newAddr.Digits()...), trit.Slice(k, 6, 8).Digits()...)
	digits = append(digits, 0)
	ka, _ := trit.FromDigits(digits)
	return ka
}
