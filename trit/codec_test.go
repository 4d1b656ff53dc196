package trit

import "testing"

func TestToIntFromIntRoundTrip(t *testing.T) {
	for _, length := range []int{1, 5, 9, 18} {
		bound := Bound(length)
		for _, v := range []int64{0, 1, -1, bound, -bound} {
			w, err := FromInt(v, length)
			if err != nil {
				t.Fatalf("FromInt(%d,%d): %v", v, length, err)
			}
			if got := w.ToInt(); got != v {
				t.Errorf("round-trip FromInt/ToInt(%d,%d) = %d", v, length, got)
			}
		}
	}
}

func TestFromIntRejectsOutOfRange(t *testing.T) {
	bound := Bound(9)
	if _, err := FromInt(bound+1, 9); err == nil {
		t.Fatalf("expected DomainError for value exceeding bound")
	}
	if _, err := FromInt(-bound-1, 9); err == nil {
		t.Fatalf("expected DomainError for value exceeding negative bound")
	}
}

func TestBound(t *testing.T) {
	if Bound(1) != 1 {
		t.Fatalf("Bound(1) = %d, want 1", Bound(1))
	}
	if Bound(2) != 4 {
		t.Fatalf("Bound(2) = %d, want 4", Bound(2))
	}
	if Bound(9) != 9841 {
		t.Fatalf("Bound(9) = %d, want 9841", Bound(9))
	}
}

func TestParseSymbolicRoundTrip(t *testing.T) {
	for _, s := range []string{"+", "0", "-", "+0-", "000000000", "+-+-+-+-+"} {
		w, err := ParseSymbolic(s)
		if err != nil {
			t.Fatalf("ParseSymbolic(%q): %v", s, err)
		}
		if w.String() != s {
			t.Errorf("round-trip ParseSymbolic/String(%q) = %q", s, w.String())
		}
	}
}

func TestParseSymbolicRejectsBadInput(t *testing.T) {
	if _, err := ParseSymbolic(""); err == nil {
		t.Fatalf("expected error for empty string")
	}
	if _, err := ParseSymbolic("x"); err == nil {
		t.Fatalf("expected error for invalid character")
	}
	long := make([]byte, 19)
	for i := range long {
		long[i] = '0'
	}
	if _, err := ParseSymbolic(string(long)); err == nil {
		t.Fatalf("expected error for 19-character string")
	}
}

func TestNonaryPairRoundTrip(t *testing.T) {
	vals := []int8{-1, 0, 1}
	for _, hi := range vals {
		for _, lo := range vals {
			c, err := NonaryDigit(hi, lo)
			if err != nil {
				t.Fatalf("NonaryDigit(%d,%d): %v", hi, lo, err)
			}
			gotHi, gotLo, err := NonaryPair(c)
			if err != nil {
				t.Fatalf("NonaryPair(%q): %v", c, err)
			}
			if gotHi != hi || gotLo != lo {
				t.Errorf("round-trip NonaryDigit/NonaryPair(%d,%d) = (%d,%d)", hi, lo, gotHi, gotLo)
			}
		}
	}
}

func TestEncodeDecodeNonaryRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 9841, -9841, 4920, -4920} {
		w, err := FromInt(v, 9)
		if err != nil {
			t.Fatalf("FromInt(%d,9): %v", v, err)
		}
		s, err := EncodeNonary(w)
		if err != nil {
			t.Fatalf("EncodeNonary: %v", err)
		}
		if len(s) != 5 {
			t.Fatalf("EncodeNonary must produce 5 characters, got %d", len(s))
		}
		back, err := DecodeNonary(s)
		if err != nil {
			t.Fatalf("DecodeNonary(%q): %v", s, err)
		}
		if !back.Equal(w) {
			t.Errorf("round-trip Encode/DecodeNonary(%d) = %q -> %s", v, s, back.String())
		}
	}
}

func TestEncodeNonaryRejectsWrongWidth(t *testing.T) {
	if _, err := EncodeNonary(New(18)); err == nil {
		t.Fatalf("expected error encoding an 18-trit word as nonary")
	}
}

func TestDecodeNonaryRejectsBadTrailingDigit(t *testing.T) {
	// '1' has value +1 = hi*3+lo with hi=0,lo=1, so its low trit is
	// non-zero and must be rejected as a trailing digit.
	if _, err := DecodeNonary("00001"); err == nil {
		t.Fatalf("expected error for trailing digit with non-zero low trit")
	}
}

func TestDecodeNonaryRejectsWrongLength(t *testing.T) {
	if _, err := DecodeNonary("0000"); err == nil {
		t.Fatalf("expected error for 4-character input")
	}
}
