/*
 * setun1958 - Register file.
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

// Package cpu implements the Setun-1958 register file, address
// modification, program-counter stepping and the 27-opcode instruction
// dispatcher that together make up the interpreter's core.
package cpu

import "github.com/osetun/setun1958/trit"

// Status is the run loop's terminal or continuation state.
type Status int

const (
	// Work means the run loop should fetch and execute another
	// instruction.
	Work Status = iota
	// HaltDone is a normal program-requested stop (opcode +--).
	HaltDone
	// HaltOver is an arithmetic overflow halt.
	HaltOver
	// HaltError covers reserved opcodes and I/O failures signalled by
	// an external collaborator.
	HaltError
)

func (s Status) String() string {
	switch s {
	case Work:
		return "WORK"
	case HaltDone:
		return "HALT_DONE"
	case HaltOver:
		return "HALT_OVER"
	case HaltError:
		return "HALT_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Registers holds the eight registers of the Setun-1958 CPU. Each
// field keeps the fixed width given in the register table; writes
// through the Set* methods re-align per trit.Word's promotion rule.
type Registers struct {
	K  trit.Word // 9  - current instruction
	F  trit.Word // 5  - index register
	C  trit.Word // 5  - program counter
	W  trit.Word // 1  - sign flag
	S  trit.Word // 18 - accumulator
	R  trit.Word // 18 - multiplier/auxiliary
	MB trit.Word // 4  - drum zone selector
	MR trit.Word // 9 or 18 - data-exchange latch
}

// NewRegisters returns a register file with every register zeroed at
// its fixed width.
func NewRegisters() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset zeroes every register, leaving MR at width 9.
func (r *Registers) Reset() {
	r.K = trit.New(9)
	r.F = trit.New(5)
	r.C = trit.New(5)
	r.W = trit.New(1)
	r.S = trit.New(18)
	r.R = trit.New(18)
	r.MB = trit.New(4)
	r.MR = trit.New(9)
}

// SetS assigns v to S, re-aligning to 18 trits per the promotion rule,
// and updates W from S's sign.
func (r *Registers) SetS(v trit.Word) {
	r.S = v.WidenTo(18)
	r.updateW(r.S)
}

// SetR assigns v to R, re-aligning to 18 trits. R's sign does not
// drive W.
func (r *Registers) SetR(v trit.Word) {
	r.R = v.WidenTo(18)
}

// SetF assigns v to F, re-aligning to 5 trits, and updates W from F's
// sign.
func (r *Registers) SetF(v trit.Word) {
	r.F = v.WidenTo(5)
	r.updateW(r.F)
}

// SetC assigns v to C, re-aligning to 5 trits. Jumps and steps both
// go through this.
func (r *Registers) SetC(v trit.Word) {
	r.C = v.WidenTo(5)
}

// Snapshot returns a deep copy of the register file, safe to inspect
// while the live registers keep changing.
func (r *Registers) Snapshot() Registers {
	return Registers{
		K:  r.K.Clone(),
		F:  r.F.Clone(),
		C:  r.C.Clone(),
		W:  r.W.Clone(),
		S:  r.S.Clone(),
		R:  r.R.Clone(),
		MB: r.MB.Clone(),
		MR: r.MR.Clone(),
	}
}

func (r *Registers) updateW(v trit.Word) {
	sign := v.Sign()
	w := trit.New(1)
	_ = w.Set(1, sign)
	r.W = w
}
