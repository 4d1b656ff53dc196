/*
 * setun1958 - Two-tier memory: ferrite store (FRAM) and magnetic drum.
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

// Package memory implements the Setun-1958 ferrite-core store (FRAM) and
// magnetic drum, and the address decoder that maps a 5-trit address onto
// them. Both stores are fixed-size arrays held for the life of the
// Memory value; there is no dynamic allocation once constructed.
package memory

import "github.com/osetun/setun1958/trit"

const (
	framRows  = 81
	framPages = 2
	drumZones = 72
	drumRows  = 54
)

// Memory holds the ferrite store and the drum.
type Memory struct {
	fram [framRows][framPages]trit.Word
	drum [drumZones][drumRows]trit.Word
}

// New returns a Memory with every cell zero-initialised.
func New() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset zero-fills every FRAM and drum cell.
func (m *Memory) Reset() {
	for r := 0; r < framRows; r++ {
		for p := 0; p < framPages; p++ {
			m.fram[r][p] = trit.New(9)
		}
	}
	for z := 0; z < drumZones; z++ {
		for r := 0; r < drumRows; r++ {
			m.drum[z][r] = trit.New(9)
		}
	}
}

// decodeFram derives the FRAM row and page for a 5-trit address, per
// the short-word/long-word addressing split on A(5): A(5)==0 selects
// page 0 (the high half of a long cell), A(5)<0 requests the long-word
// path (callers route that through LoadLong/StoreLong instead), A(5)>0
// selects page 1.
func decodeFram(addr trit.Word) (row, page int) {
	row = int(trit.Slice(addr, 1, 4).ToInt()) + 40
	if trit.Slice(addr, 5, 5).ToInt() > 0 {
		page = 1
	}
	return row, page
}

// LoadShort returns the 9-trit word named by addr.
func (m *Memory) LoadShort(addr trit.Word) trit.Word {
	row, page := decodeFram(addr)
	return m.fram[row][page].Clone()
}

// StoreShort writes a 9-trit word to the cell named by addr.
func (m *Memory) StoreShort(addr trit.Word, v trit.Word) {
	row, page := decodeFram(addr)
	m.fram[row][page] = v.WidenTo(9)
}

// LoadLong returns the 18-trit word formed from both pages of the row
// named by addr(1:4): page 0 supplies the high 9 trits, page 1 the low
// 9 trits.
func (m *Memory) LoadLong(addr trit.Word) trit.Word {
	row := int(trit.Slice(addr, 1, 4).ToInt()) + 40
	hi := m.fram[row][0]
	lo := m.fram[row][1]
	digits := append(append([]int8{}, hi.Digits()...), lo.Digits()...)
	w, _ := trit.FromDigits(digits)
	return w
}

// StoreLong writes an 18-trit word to the row named by addr(1:4):
// trits 1-9 of v to page 0, trits 10-18 to page 1.
func (m *Memory) StoreLong(addr trit.Word, v trit.Word) {
	row := int(trit.Slice(addr, 1, 4).ToInt()) + 40
	v = v.WidenTo(18)
	m.fram[row][0] = trit.Slice(v, 1, 9)
	m.fram[row][1] = trit.Slice(v, 10, 18)
}

// Width returns the cell width, in trits, that addr selects: 18 for a
// full-cell address (addr(5) < 0), 9 otherwise.
func Width(addr trit.Word) int {
	if trit.Slice(addr, 5, 5).ToInt() < 0 {
		return 18
	}
	return 9
}

// Load dispatches to LoadShort or LoadLong according to addr(5), per
// the memory decoder contract.
func (m *Memory) Load(addr trit.Word) trit.Word {
	if trit.Slice(addr, 5, 5).ToInt() < 0 {
		return m.LoadLong(addr)
	}
	return m.LoadShort(addr)
}

// Store dispatches to StoreShort or StoreLong according to addr(5).
func (m *Memory) Store(addr trit.Word, v trit.Word) {
	if trit.Slice(addr, 5, 5).ToInt() < 0 {
		m.StoreLong(addr, v)
		return
	}
	m.StoreShort(addr, v)
}

// decodeDrum derives the drum zone and row for a 5-trit drum address:
// zone from addr(1), row from addr(2:5).
func decodeDrum(addr trit.Word) (zone, row int) {
	zone = int(trit.Slice(addr, 1, 1).ToInt()) + 36
	row = int(trit.Slice(addr, 2, 5).ToInt()) + 40
	if zone < 0 {
		zone = 0
	}
	if zone >= drumZones {
		zone = drumZones - 1
	}
	if row < 0 || row >= drumRows {
		return zone, -1
	}
	return zone, row
}

// LoadDrum returns the word at the drum address, or an all-zero word
// if the row falls in the reserved, unpopulated part of the zone.
func (m *Memory) LoadDrum(addr trit.Word) trit.Word {
	zone, row := decodeDrum(addr)
	if row < 0 {
		return trit.New(9)
	}
	return m.drum[zone][row].Clone()
}

// StoreDrum writes v to the drum address; writes to the reserved part
// of a zone are silently discarded, matching the total-write contract.
func (m *Memory) StoreDrum(addr trit.Word, v trit.Word) {
	zone, row := decodeDrum(addr)
	if row < 0 {
		return
	}
	m.drum[zone][row] = v.WidenTo(9)
}

// FramZoneToDrum copies the drumRows FRAM rows (page 0) starting at the
// row named by framAddr into the drum zone named by mb, implementing
// the -0+ "drum write" opcode.
func (m *Memory) FramZoneToDrum(framAddr trit.Word, mb trit.Word) {
	zone := zoneFromMB(mb)
	startRow := int(trit.Slice(framAddr, 1, 4).ToInt()) + 40
	for i := 0; i < drumRows; i++ {
		row := startRow + i
		if row >= framRows {
			break
		}
		m.drum[zone][i] = m.fram[row][0].Clone()
	}
}

// DrumZoneToFram copies the drum zone named by mb back into FRAM
// page 0 starting at the row named by framAddr, implementing the -0-
// "drum read" opcode.
func (m *Memory) DrumZoneToFram(framAddr trit.Word, mb trit.Word) {
	zone := zoneFromMB(mb)
	startRow := int(trit.Slice(framAddr, 1, 4).ToInt()) + 40
	for i := 0; i < drumRows; i++ {
		row := startRow + i
		if row >= framRows {
			break
		}
		m.fram[row][0] = m.drum[zone][i].Clone()
	}
}

// FramRows returns the number of FRAM rows (81).
func FramRows() int { return framRows }

// FramPages returns the number of FRAM pages per row (2).
func FramPages() int { return framPages }

// LoadFramCell returns the raw 9-trit cell at (row, page), bypassing
// address decoding. Intended for diagnostics.
func (m *Memory) LoadFramCell(row, page int) trit.Word {
	return m.fram[row][page].Clone()
}

// DrumZones returns the number of drum zones (72).
func DrumZones() int { return drumZones }

// DrumRows returns the number of rows per drum zone (54).
func DrumRows() int { return drumRows }

// LoadDrumCell returns the raw 9-trit cell at (zone, row), bypassing
// address decoding. Intended for diagnostics.
func (m *Memory) LoadDrumCell(zone, row int) trit.Word {
	return m.drum[zone][row].Clone()
}

// zoneFromMB maps the 4-trit MB register to a drum zone index,
// clamped into range.
func zoneFromMB(mb trit.Word) int {
	z := int(mb.ToInt()) + 36
	if z < 0 {
		z = 0
	}
	if z >= drumZones {
		z = drumZones - 1
	}
	return z
}
