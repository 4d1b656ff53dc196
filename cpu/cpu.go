/*
 * setun1958 - CPU: register file, memory and I/O tied together.
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

// IOController is the synchronous callback the -00 opcode invokes.
// Exec receives the word currently stored at the effective address and
// returns the word to write back in its place. Implementations decide
// for themselves whether that means reading a word from an input
// tape, punching one to an output tape, or driving a typewriter print
// off the accumulator's S(1:5) field; the CPU only knows the
// exchange is synchronous and may fail.
type IOController interface {
	Exec(c *CPU, v trit.Word) (trit.Word, error)
}

// CPU bundles the register file with the memory it addresses and the
// I/O collaborator the -00 opcode drives.
type CPU struct {
	Regs *Registers
	Mem  *memory.Memory
	IO   IOController

	table [27]func(*CPU, trit.Word, trit.Word) Status

	// jumped is set by a handler that assigns C directly, so Step
	// knows to skip the normal post-instruction PC advance.
	jumped bool
}

// setCJump assigns C directly, for use by jump handlers, and marks
// that this instruction bypasses normal PC stepping.
func (c *CPU) setCJump(addr trit.Word) {
	c.Regs.SetC(addr)
	c.jumped = true
}

// New returns a CPU with a fresh, zeroed register file over mem. io
// may be nil, in which case the -00 opcode is a no-op that continues
// the run loop.
func New(mem *memory.Memory, io IOController) *CPU {
	c := &CPU{Regs: NewRegisters(), Mem: mem, IO: io}
	c.createTable()
	return c
}

// Reset clears the register file. Memory is untouched; callers that
// also want memory cleared should call Mem.Reset separately.
func (c *CPU) Reset() {
	c.Regs.Reset()
}

// opcodeIndex maps a 3-trit opcode field to a dense [0,26] index,
// most-significant trit first.
func opcodeIndex(op trit.Word) int {
	a := int(op.Get(1)) + 1
	b := int(op.Get(2)) + 1
	d := int(op.Get(3)) + 1
	return a*9 + b*3 + d
}
