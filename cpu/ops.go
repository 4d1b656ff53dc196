/*
 * setun1958 - Opcode handlers.
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

import (
	"github.com/osetun/setun1958/memory"
	"github.com/osetun/setun1958/trit"
)

// setSFromInt commits the exact signed integer result v to S unless
// it falls outside the 18-trit range, in which case S is left
// untouched and the instruction halts. Computing the overflow check
// on the integer value (rather than on a wrapped 18-trit word) is
// required here: multiplication can overrun the 18-trit range by far
// more than the single extra trit an addition carry produces, and the
// trit1/trit2 overflow signature only detects that narrower case.
func (c *CPU) setSFromInt(v int64) Status {
	if v < -trit.Bound(18) || v > trit.Bound(18) {
		return HaltOver
	}
	w, err := trit.FromInt(v, 18)
	if err != nil {
		return HaltOver
	}
	c.Regs.SetS(w)
	return Work
}

// operand promotes a fetched memory word to the accumulator's width
// and returns its integer value. A 9-trit short word enters 18-trit
// arithmetic left-aligned (occupying the high half), so its value
// scales by 3^9 rather than being used verbatim.
func operand(mr trit.Word) int64 {
	return mr.WidenTo(18).ToInt()
}

func opSendToS(c *CPU, addr, mr trit.Word) Status {
	c.Regs.SetS(mr)
	return Work
}

func opAddToS(c *CPU, addr, mr trit.Word) Status {
	return c.setSFromInt(c.Regs.S.ToInt() + operand(mr))
}

func opSubToS(c *CPU, addr, mr trit.Word) Status {
	return c.setSFromInt(c.Regs.S.ToInt() - operand(mr))
}

func opMul0(c *CPU, addr, mr trit.Word) Status {
	r := c.Regs.S
	c.Regs.SetR(r)
	return c.setSFromInt(operand(mr) * r.ToInt())
}

func opMulPlus(c *CPU, addr, mr trit.Word) Status {
	return c.setSFromInt(c.Regs.S.ToInt() + operand(mr)*c.Regs.R.ToInt())
}

func opMulMinus(c *CPU, addr, mr trit.Word) Status {
	return c.setSFromInt(operand(mr) + c.Regs.S.ToInt()*c.Regs.R.ToInt())
}

func opXorS(c *CPU, addr, mr trit.Word) Status {
	c.Regs.SetS(trit.Xor(mr, c.Regs.S))
	return Work
}

func opSendToR(c *CPU, addr, mr trit.Word) Status {
	c.Regs.SetR(mr)
	return Work
}

func opHaltLoadR(c *CPU, addr, mr trit.Word) Status {
	c.Regs.SetR(mr)
	return HaltDone
}

func jumpIf(c *CPU, addr trit.Word, take bool) Status {
	if take {
		c.setCJump(addr)
	}
	return Work
}

func opJumpZero(c *CPU, addr, mr trit.Word) Status {
	return jumpIf(c, addr, c.Regs.W.Get(1) == 0)
}

func opJumpPlus(c *CPU, addr, mr trit.Word) Status {
	return jumpIf(c, addr, c.Regs.W.Get(1) > 0)
}

func opJumpMinus(c *CPU, addr, mr trit.Word) Status {
	return jumpIf(c, addr, c.Regs.W.Get(1) < 0)
}

func opJump(c *CPU, addr, mr trit.Word) Status {
	c.setCJump(addr)
	return Work
}

func opStoreC(c *CPU, addr, mr trit.Word) Status {
	width := memory.Width(addr)
	c.Mem.Store(addr, c.Regs.C.WidenTo(width))
	return Work
}

func opStoreF(c *CPU, addr, mr trit.Word) Status {
	width := memory.Width(addr)
	c.Mem.Store(addr, c.Regs.F.WidenTo(width))
	c.Regs.updateW(c.Regs.F)
	return Work
}

func opSendToF(c *CPU, addr, mr trit.Word) Status {
	c.Regs.SetF(mr)
	return Work
}

func opAddToFViaC(c *CPU, addr, mr trit.Word) Status {
	c.Regs.SetF(trit.Add(c.Regs.C, mr))
	return Work
}

func opAddToF(c *CPU, addr, mr trit.Word) Status {
	c.Regs.SetF(trit.Add(c.Regs.F, mr))
	return Work
}

func opShiftS(c *CPU, addr, mr trit.Word) Status {
	c.Regs.SetS(trit.Shift(c.Regs.S, int(mr.ToInt())))
	return Work
}

func opStoreS(c *CPU, addr, mr trit.Word) Status {
	width := memory.Width(addr)
	c.Mem.Store(addr, c.Regs.S.WidenTo(width))
	c.Regs.updateW(c.Regs.S)
	return Work
}

// firstNonzero returns the 1-based position of w's first (most
// significant) non-zero trit, or 0 if w is all zero.
func firstNonzero(w trit.Word) int {
	for i := 1; i <= w.Len(); i++ {
		if w.Get(i) != 0 {
			return i
		}
	}
	return 0
}

func opNormalize(c *CPU, addr, mr trit.Word) Status {
	width := memory.Width(addr)
	if c.Regs.S.IsZero() {
		c.Mem.Store(addr, c.Regs.S.WidenTo(width))
		c.Regs.SetS(trit.New(18))
		return Work
	}
	p := firstNonzero(c.Regs.S)
	n := 2 - p
	if n == 0 {
		c.Mem.Store(addr, c.Regs.S.WidenTo(width))
		c.Regs.SetS(trit.New(18))
		return Work
	}
	shifted := trit.Shift(c.Regs.S, n)
	c.Mem.Store(addr, shifted.WidenTo(width))
	nWord, err := trit.FromInt(int64(n), 18)
	if err != nil {
		return HaltError
	}
	c.Regs.SetS(nWord)
	return Work
}

func opIO(c *CPU, addr, mr trit.Word) Status {
	if c.IO == nil {
		return Work
	}
	v, err := c.IO.Exec(c, mr)
	if err != nil {
		return HaltError
	}
	c.Mem.Store(addr, v.WidenTo(memory.Width(addr)))
	return Work
}

func opDrumWrite(c *CPU, addr, mr trit.Word) Status {
	c.Mem.FramZoneToDrum(addr, c.Regs.MB)
	return Work
}

func opDrumRead(c *CPU, addr, mr trit.Word) Status {
	c.Mem.DrumZoneToFram(addr, c.Regs.MB)
	return Work
}

func opReserved(c *CPU, addr, mr trit.Word) Status {
	return HaltError
}
