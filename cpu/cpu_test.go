package cpu

import (
	"testing"

	"github.com/osetun/setun1958/memory"
	"github.com/osetun/setun1958/trit"
)

func sym(t *testing.T, s string) trit.Word {
	t.Helper()
	w, err := trit.ParseSymbolic(s)
	if err != nil {
		t.Fatalf("ParseSymbolic(%q): %v", s, err)
	}
	return w
}

// asm builds a 9-trit instruction word from a 5-character address, a
// 3-character opcode, and a 1-character K(9) modifier selector.
func asm(t *testing.T, addr, op, k9 string) trit.Word {
	t.Helper()
	return sym(t, addr+op+k9)
}

func TestStepSendToS(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "000++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000++", "+00", "0"))
	v, _ := trit.FromInt(222, 9)
	mem.StoreShort(dataAddr, v)

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	// A 9-trit short value loaded into the 18-trit S occupies S's
	// most-significant 9 trits per the promotion rule, so its integer
	// value is scaled by 3^9, not copied verbatim.
	want := int64(222) * 19683
	if c.Regs.S.ToInt() != want {
		t.Fatalf("S = %d, want %d", c.Regs.S.ToInt(), want)
	}
	if c.Regs.W.Get(1) != 1 {
		t.Fatalf("W = %d, want +1", c.Regs.W.Get(1))
	}
	if !c.Regs.C.Equal(NextAddress(progAddr)) {
		t.Fatalf("C did not advance via NextAddress")
	}
}

func TestStepAddToSOverflowLeavesSUnchanged(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "000++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000++", "+0+", "0"))

	maxVal, _ := trit.FromInt(trit.Bound(18), 18)
	c.Regs.SetS(maxVal)
	one, _ := trit.FromInt(1, 9)
	mem.StoreShort(dataAddr, one)

	before := c.Regs.S
	status := c.Step()
	if status != HaltOver {
		t.Fatalf("status = %v, want HALT_OVER", status)
	}
	if !c.Regs.S.Equal(before) {
		t.Fatalf("S must be left at its pre-overflow value on overflow")
	}
}

func TestStepHaltWithLoadR(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "----+")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "----+", "+--", "0"))
	v, _ := trit.FromInt(-500, 9)
	mem.StoreShort(dataAddr, v)

	status := c.Step()
	if status != HaltDone {
		t.Fatalf("status = %v, want HALT_DONE", status)
	}
	// The 9-trit operand enters the 18-trit R left-aligned, so its
	// integer value scales by 3^9.
	if want := int64(-500) * 19683; c.Regs.R.ToInt() != want {
		t.Fatalf("R = %d, want %d", c.Regs.R.ToInt(), want)
	}
}

func TestStepUnconditionalJump(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	target := sym(t, "00+++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "00+++", "000", "0"))

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if !c.Regs.C.Equal(target) {
		t.Fatalf("C = %s, want %s (jump must bypass stepping)", c.Regs.C, target)
	}
}

func TestStepReservedOpcodeHalts(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "00000", "--0", "0"))

	if status := c.Step(); status != HaltError {
		t.Fatalf("status = %v, want HALT_ERROR", status)
	}
}

func TestStepConditionalJumpNotTakenStillSteps(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "00+++", "0+0", "0"))
	// W starts at 0, so "jump if W==0" should actually jump here;
	// set W to +1 first by loading a positive S so the condition is
	// false.
	one, _ := trit.FromInt(1, 9)
	c.Regs.SetS(one)

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if c.Regs.C.Equal(sym(t, "00+++")) {
		t.Fatalf("condition was false, C must not have jumped")
	}
	if !c.Regs.C.Equal(NextAddress(progAddr)) {
		t.Fatalf("condition false must still advance C normally")
	}
}

func TestStepConditionalJumpTakenBypassesStep(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	target := sym(t, "00+++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "00+++", "0+0", "0"))
	// W is zero-valued by default (fresh Registers), so "jump if
	// W==0" is taken.

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if !c.Regs.C.Equal(target) {
		t.Fatalf("condition true, C should equal the jump target")
	}
}

func TestModifyAddressNoModification(t *testing.T) {
	k := asm(t, "000++", "+00", "0")
	f := sym(t, "00000")
	ka := ModifyAddress(k, f)
	if !ka.Equal(k) {
		t.Fatalf("K(9)=0 must leave the instruction unmodified")
	}
}

func TestModifyAddressAddsF(t *testing.T) {
	k := asm(t, "0000+", "+00", "+")
	f := sym(t, "0000+")
	ka := ModifyAddress(k, f)
	if trit.Slice(ka, 1, 5).ToInt() != 2 {
		t.Fatalf("Ka address = %d, want 2", trit.Slice(ka, 1, 5).ToInt())
	}
	if ka.Get(9) != 0 {
		t.Fatalf("Ka(9) must be cleared after modification")
	}
	if !trit.Slice(ka, 6, 8).Equal(trit.Slice(k, 6, 8)) {
		t.Fatalf("opcode trits must survive modification unchanged")
	}
}

func TestModifyAddressSubtractsF(t *testing.T) {
	k := asm(t, "0000+", "+00", "-")
	f := sym(t, "0000+")
	ka := ModifyAddress(k, f)
	if trit.Slice(ka, 1, 5).ToInt() != 0 {
		t.Fatalf("Ka address = %d, want 0", trit.Slice(ka, 1, 5).ToInt())
	}
}

func TestNextAddressPolicy(t *testing.T) {
	high := sym(t, "0000-")
	// Get(5) for "0000-" is -1, the "full-word" case: +1.
	if got := NextAddress(high); got.ToInt() != high.ToInt()+1 {
		t.Fatalf("full-word step: got %d, want %d", got.ToInt(), high.ToInt()+1)
	}
	zero := sym(t, "00000")
	if got := NextAddress(zero); got.ToInt() != 1 {
		t.Fatalf("high half-cell step: got %d, want 1", got.ToInt())
	}
	lowHalf := sym(t, "0000+")
	if got := NextAddress(lowHalf); got.ToInt() != lowHalf.ToInt()+2 {
		t.Fatalf("low half-cell step: got %d, want %d", got.ToInt(), lowHalf.ToInt()+2)
	}
}

func TestStepMultiply0ComputesExactProduct(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "000+-")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000+-", "++0", "0"))

	s0, _ := trit.FromInt(13, 18)
	c.Regs.SetS(s0)
	// A long operand's 18 trits are already accumulator-width, so its
	// value enters the product verbatim, unscaled.
	v, _ := trit.FromInt(5, 18)
	mem.StoreLong(dataAddr, v)

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if c.Regs.R.ToInt() != 13 {
		t.Fatalf("R must receive the old S value: got %d", c.Regs.R.ToInt())
	}
	if c.Regs.S.ToInt() != 5*13 {
		t.Fatalf("S = %d, want %d", c.Regs.S.ToInt(), 5*13)
	}
}

func TestStepAddShortOperandEntersHighHalf(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "000++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000++", "+0+", "0"))
	v, _ := trit.FromInt(2, 9)
	mem.StoreShort(dataAddr, v)

	if status := c.Step(); status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	// A 9-trit operand is promoted left-aligned into the 18-trit
	// accumulator, so its contribution scales by 3^9.
	if want := int64(2) * 19683; c.Regs.S.ToInt() != want {
		t.Fatalf("S = %d, want %d", c.Regs.S.ToInt(), want)
	}
}

func TestStepMultiplyOverflowHalts(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "000++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000++", "++0", "0"))

	big, _ := trit.FromInt(trit.Bound(18), 18)
	c.Regs.SetS(big)
	v, _ := trit.FromInt(9841, 9) // 9-trit max
	mem.StoreShort(dataAddr, v)

	if status := c.Step(); status != HaltOver {
		t.Fatalf("status = %v, want HALT_OVER", status)
	}
}

func TestStepNormalizeShiftsLeadingZeroTrits(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "000++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000++", "-+-", "0"))

	// S's first non-zero trit is at position 4 (three leading zeros);
	// normalizing should shift left by 2 so it lands at position 2.
	s0, _ := trit.FromDigits(append([]int8{0, 0, 0, 1}, make([]int8, 14)...))
	c.Regs.SetS(s0)

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if c.Regs.S.ToInt() != -2 {
		t.Fatalf("S (shift count N) = %d, want -2 (left)", c.Regs.S.ToInt())
	}
	stored := mem.LoadShort(dataAddr)
	if stored.Get(1) != 0 || stored.Get(2) == 0 {
		t.Fatalf("normalized word must have trit1=0, trit2 non-zero: got %s", stored)
	}
}

func TestStepStoreFUpdatesW(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "000++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000++", "00-", "0"))

	neg, _ := trit.FromInt(-1, 5)
	c.Regs.SetF(neg)
	// SetF already set W from F's sign; force W to a stale value so
	// the opcode's own update is what makes the assertion pass.
	c.Regs.W = sym(t, "+")

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if c.Regs.W.Get(1) != -1 {
		t.Fatalf("W = %d, want -1 (from F's sign)", c.Regs.W.Get(1))
	}
	stored := mem.LoadShort(dataAddr)
	// F is 5 trits widened into a 9-trit cell: 4 trailing zero trits,
	// so the value scales by 3^4.
	want := int64(-1) * 81
	if stored.ToInt() != want {
		t.Fatalf("stored F = %d, want %d", stored.ToInt(), want)
	}
}

func TestStepStoreSUpdatesW(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "0000-")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "0000-", "-++", "0"))

	pos, _ := trit.FromInt(7, 18)
	c.Regs.SetS(pos)
	// Force W stale so the opcode's own update is what's under test.
	c.Regs.W = sym(t, "-")

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if c.Regs.W.Get(1) != 1 {
		t.Fatalf("W = %d, want +1 (from S's sign)", c.Regs.W.Get(1))
	}
	stored := mem.LoadLong(dataAddr)
	if stored.ToInt() != 7 {
		t.Fatalf("stored S = %d, want 7", stored.ToInt())
	}
}

func TestStepLatchesOperandIntoMR(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	dataAddr := sym(t, "000++")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000++", "+-+", "0"))
	v, _ := trit.FromInt(33, 9)
	mem.StoreShort(dataAddr, v)

	if status := c.Step(); status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if !c.Regs.MR.Equal(v) {
		t.Fatalf("MR = %s, want the fetched operand %s", c.Regs.MR, v)
	}
}

func TestStepAddLongMaxValueIsNotOverflow(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000+-", "+0+", "0"))

	// Both halves of row "000+" hold the 9-trit maximum, so the long
	// word at "000+-" reads as 9841*3^9 + 9841 = 193710244, the
	// 18-trit maximum. That is in range, not an overflow.
	nine := sym(t, "+++++++++")
	mem.StoreShort(sym(t, "000+0"), nine)
	mem.StoreShort(sym(t, "000++"), nine)

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK: the 18-trit maximum is in range", status)
	}
	if c.Regs.S.ToInt() != 193710244 {
		t.Fatalf("S = %d, want 193710244", c.Regs.S.ToInt())
	}
	if c.Regs.W.Get(1) != 1 {
		t.Fatalf("W = %d, want +1", c.Regs.W.Get(1))
	}
}

func TestRunProgramCancellingAddThenHalt(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)
	c.Regs.SetC(sym(t, "0000+"))

	nineMax := sym(t, "+++++++++")
	nineMin := sym(t, "---------")
	mem.StoreShort(sym(t, "000-+"), nineMax)
	mem.StoreShort(sym(t, "00-0+"), nineMin)

	// Three instructions in fetch order: send [000-+] to S, add
	// [00-0+], halt. C starts at 1 (low half), so the second
	// instruction lands at 3 and the third at 4 per the stepping rule.
	mem.StoreShort(sym(t, "0000+"), asm(t, "000-+", "+00", "0"))
	mem.StoreShort(sym(t, "000+0"), asm(t, "00-0+", "+0+", "0"))
	mem.StoreShort(sym(t, "000++"), asm(t, "00000", "+--", "0"))

	status := c.Run()
	if status != HaltDone {
		t.Fatalf("status = %v, want HALT_DONE", status)
	}
	if !c.Regs.S.IsZero() {
		t.Fatalf("S = %d, want 0 after adding +9841 and -9841", c.Regs.S.ToInt())
	}
	if c.Regs.W.Get(1) != 0 {
		t.Fatalf("W = %d, want 0", c.Regs.W.Get(1))
	}
}

func TestStepNormalizeAlreadyNormalizedOrZero(t *testing.T) {
	mem := memory.New()
	c := New(mem, nil)

	progAddr := sym(t, "0000+")
	c.Regs.SetC(progAddr)
	mem.StoreShort(progAddr, asm(t, "000++", "-+-", "0"))
	c.Regs.SetS(trit.New(18))

	status := c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if !c.Regs.S.IsZero() {
		t.Fatalf("normalizing zero must leave S at zero")
	}

	// Already normalized: the first non-zero trit is at position 2, so
	// S is stored unshifted and S becomes 0.
	c.Regs.SetC(progAddr)
	s1, _ := trit.FromDigits(append([]int8{0, 1}, make([]int8, 16)...))
	c.Regs.SetS(s1)

	status = c.Step()
	if status != Work {
		t.Fatalf("status = %v, want WORK", status)
	}
	if !c.Regs.S.IsZero() {
		t.Fatalf("normalizing an already-normalized S must leave S at zero")
	}
	if stored := mem.LoadShort(sym(t, "000++")); !stored.Equal(s1.WidenTo(9)) {
		t.Fatalf("already-normalized S must be stored unshifted: got %s", stored)
	}
}
