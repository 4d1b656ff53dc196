package memory

import (
	"testing"

	"github.com/osetun/setun1958/trit"
)

func addr(t *testing.T, s string) trit.Word {
	t.Helper()
	w, err := trit.ParseSymbolic(s)
	if err != nil {
		t.Fatalf("ParseSymbolic(%q): %v", s, err)
	}
	return w
}

func TestStoreShortLoadShortRoundTrip(t *testing.T) {
	m := New()
	a := addr(t, "0---+") // A(5) = +1, page 1
	v, _ := trit.FromInt(42, 9)
	m.StoreShort(a, v)
	if got := m.LoadShort(a).ToInt(); got != 42 {
		t.Fatalf("LoadShort after StoreShort = %d, want 42", got)
	}
}

func TestShortAddressZeroUsesPageZero(t *testing.T) {
	m := New()
	row := addr(t, "0---0")
	lowPage := addr(t, "0---+")
	v, _ := trit.FromInt(7, 9)
	m.StoreShort(row, v)
	if got := m.LoadShort(lowPage).ToInt(); got == 7 {
		t.Fatalf("page 0 and page 1 must be distinct cells")
	}
	if got := m.LoadShort(row).ToInt(); got != 7 {
		t.Fatalf("A(5)==0 must read back page 0")
	}
}

func TestLoadLongConcatenatesBothPages(t *testing.T) {
	m := New()
	hiAddr := addr(t, "0---0")
	loAddr := addr(t, "0---+")
	hi, _ := trit.FromInt(1, 9)
	lo, _ := trit.FromInt(-1, 9)
	m.StoreShort(hiAddr, hi)
	m.StoreShort(loAddr, lo)

	longAddr := addr(t, "0----")
	got := m.LoadLong(longAddr)
	if got.Len() != 18 {
		t.Fatalf("LoadLong must return 18 trits, got %d", got.Len())
	}
	if !trit.Slice(got, 1, 9).Equal(hi) {
		t.Fatalf("high 9 trits of LoadLong must equal page 0")
	}
	if !trit.Slice(got, 10, 18).Equal(lo) {
		t.Fatalf("low 9 trits of LoadLong must equal page 1")
	}
}

func TestStoreLongSplitsAcrossPages(t *testing.T) {
	m := New()
	v, _ := trit.FromInt(123456, 18)
	longAddr := addr(t, "0++--")
	m.StoreLong(longAddr, v)

	got := m.LoadLong(longAddr)
	if got.ToInt() != v.ToInt() {
		t.Fatalf("StoreLong/LoadLong round trip: got %d, want %d", got.ToInt(), v.ToInt())
	}
}

func TestLoadDispatchesOnAddressFiveTrit(t *testing.T) {
	m := New()
	v18, _ := trit.FromInt(99, 18)
	longAddr := addr(t, "0+0--")
	m.Store(longAddr, v18)
	if got := m.Load(longAddr); got.Len() != 18 || got.ToInt() != 99 {
		t.Fatalf("Load on a long address must return 18 trits: got len %d val %d", got.Len(), got.ToInt())
	}

	shortAddr := addr(t, "0+0-+")
	v9, _ := trit.FromInt(5, 9)
	m.Store(shortAddr, v9)
	if got := m.Load(shortAddr); got.Len() != 9 || got.ToInt() != 5 {
		t.Fatalf("Load on a short address must return 9 trits")
	}
}

func TestDrumStoreLoadRoundTrip(t *testing.T) {
	m := New()
	a := addr(t, "0---0")
	v, _ := trit.FromInt(-17, 9)
	m.StoreDrum(a, v)
	if got := m.LoadDrum(a).ToInt(); got != -17 {
		t.Fatalf("drum round trip: got %d, want -17", got)
	}
}

func TestFramZoneToDrumAndBack(t *testing.T) {
	m := New()
	start := addr(t, "----0")
	for i := 0; i < drumRows; i++ {
		row := 0 + i
		if row >= framRows {
			break
		}
		v, _ := trit.FromInt(int64(i-20), 9)
		m.fram[row][0] = v
	}
	mb, _ := trit.FromInt(0, 4)
	m.FramZoneToDrum(start, mb)

	m2 := New()
	m2.drum = m.drum
	m2.DrumZoneToFram(start, mb)
	for i := 0; i < drumRows; i++ {
		row := i
		if row >= framRows {
			break
		}
		want := m.fram[row][0].ToInt()
		got := m2.fram[row][0].ToInt()
		if got != want {
			t.Fatalf("zone round trip at row %d: got %d, want %d", row, got, want)
		}
	}
}

func TestResetZeroesEverything(t *testing.T) {
	m := New()
	v, _ := trit.FromInt(1, 9)
	m.StoreShort(addr(t, "0---0"), v)
	m.StoreDrum(addr(t, "0---0"), v)
	m.Reset()
	if !m.LoadShort(addr(t, "0---0")).IsZero() {
		t.Fatalf("Reset must zero FRAM")
	}
	if !m.LoadDrum(addr(t, "0---0")).IsZero() {
		t.Fatalf("Reset must zero drum")
	}
}
