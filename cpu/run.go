/*
 * setun1958 - Fetch/modify/execute run loop.
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

// Step fetches the instruction at C, modifies its address, dispatches
// it, and advances C unless the instruction itself set C (a jump).
// It returns the resulting status; WORK means the caller should call
// Step again.
func (c *CPU) Step() Status {
	k := c.Mem.LoadShort(c.Regs.C)
	c.Regs.K = k

	ka := ModifyAddress(k, c.Regs.F)
	op := trit.Slice(ka, 6, 8)
	addr := trit.Slice(ka, 1, 5)
	opIdx := opcodeIndex(op)

	handler := c.table[opIdx]
	if handler == nil {
		return HaltError
	}

	var mr trit.Word
	if trit.Slice(addr, 5, 5).ToInt() < 0 {
		mr = c.Mem.LoadLong(addr)
	} else {
		mr = c.Mem.LoadShort(addr)
	}
	c.Regs.MR = mr

	c.jumped = false
	status := handler(c, addr, mr)
	if status == Work && !c.jumped {
		c.Regs.SetC(NextAddress(c.Regs.C))
	}
	return status
}

// Run steps the CPU until it reaches a halt status.
func (c *CPU) Run() Status {
	for {
		status := c.Step()
		if status != Work {
			return status
		}
	}
}
