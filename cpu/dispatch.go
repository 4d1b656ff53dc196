/*
 * setun1958 - Opcode dispatch table.
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

// createTable builds the dense opcode dispatch table, one entry per
// one of the 27 values of the 3-trit opcode field, indexed by
// opcodeIndex. Each row's trit pattern is noted in symbolic form
// alongside its name, matching the order they're introduced in the
// instruction-set table.
func (c *CPU) createTable() {
	idx := func(a, b, d int8) int {
		w, _ := trit.FromDigits([]int8{a, b, d})
		return opcodeIndex(w)
	}

	t := &c.table

	t[idx(1, 0, 0)] = opSendToS    // +00
	t[idx(1, 0, 1)] = opAddToS     // +0+
	t[idx(1, 0, -1)] = opSubToS    // +0-
	t[idx(1, 1, 0)] = opMul0       // ++0
	t[idx(1, 1, 1)] = opMulPlus    // +++
	t[idx(1, 1, -1)] = opMulMinus  // ++-
	t[idx(1, -1, 0)] = opXorS      // +-0
	t[idx(1, -1, 1)] = opSendToR   // +-+
	t[idx(1, -1, -1)] = opHaltLoadR // +--

	t[idx(0, 1, 0)] = opJumpZero  // 0+0
	t[idx(0, 1, 1)] = opJumpPlus  // 0++
	t[idx(0, 1, -1)] = opJumpMinus // 0+-
	t[idx(0, 0, 0)] = opJump       // 000
	t[idx(0, 0, 1)] = opStoreC     // 00+
	t[idx(0, 0, -1)] = opStoreF    // 00-
	t[idx(0, -1, 0)] = opSendToF     // 0-0
	t[idx(0, -1, 1)] = opAddToFViaC  // 0-+
	t[idx(0, -1, -1)] = opAddToF     // 0--

	t[idx(-1, 1, 0)] = opShiftS    // -+0
	t[idx(-1, 1, 1)] = opStoreS    // -++
	t[idx(-1, 1, -1)] = opNormalize // -+-
	t[idx(-1, 0, 0)] = opIO         // -00
	t[idx(-1, 0, 1)] = opDrumWrite  // -0+
	t[idx(-1, 0, -1)] = opDrumRead  // -0-
	t[idx(-1, -1, 0)] = opReserved  // --0
	t[idx(-1, -1, 1)] = opReserved  // --+
	t[idx(-1, -1, -1)] = opReserved // ---
}

