/*
 * setun1958 - Electrified typewriter glyph map.
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

// Package typewriter implements the Setun-1958 electrified typewriter:
// a lookup from a 5-trit code (the accumulator's S(1:5) field) to zero
// or one Unicode code points, under two independent mode switches
// (Russian/Latin, Letter/Figure). Two codes are reserved as
// mode-shifters rather than printables. This is a representative
// glyph table, not a full historical font rendering.
package typewriter

import "github.com/osetun/setun1958/trit"

// glyph holds the four renderings of one code: Russian letter,
// Russian figure, Latin letter, Latin figure, in that order.
type glyph struct {
	ruLetter, ruFigure, laLetter, laFigure string
}

// table maps a typewriter code (the signed integer value of S(1:5), in
// [-12,13]) to its glyph quadruple.
var table = map[int8]glyph{
	6:   {"А", "6", "A", "6"},
	7:   {"В", "7", "B", "7"},
	8:   {"С", "8", "C", "8"},
	9:   {"Д", "9", "D", "9"},
	10:  {"Е", " ", "E", " "},
	-12: {"Б", "-", "F", "-"},
	-9:  {"Щ", "Ю", "G", "/"},
	-8:  {"Н", ",", "H", "."},
	-6:  {"Л", "+", "I", "+"},
	-5:  {"Ы", "Э", "J", "V"},
	-4:  {"К", "Ж", "K", "W"},
	-3:  {"Г", "Х", "L", "X"},
	-2:  {"М", "У", "M", "Y"},
	-1:  {"И", "Ц", "N", "Z"},
	0:   {"Р", "О", "P", "O"},
	1:   {"Й", "1", "Q", "1"},
	2:   {"Я", "2", "R", "2"},
	3:   {"Ь", "3", "S", "3"},
	4:   {"Т", "4", "T", "4"},
	5:   {"П", "5", "U", "5"},
	13:  {"Ш", "Ф", "(", ")"},
	-7:  {"=", "х", "=", "x"},
	-10: {"\r\n", "\r\n", "\r\n", "\r\n"},
}

// Reserved codes that shift the Letter/Figure switch instead of
// printing anything.
const (
	codeShiftLetter int8 = 12
	codeShiftFigure int8 = 11
)

// Typewriter holds the two mode switches as explicit state on the
// value rather than as package-level globals, so multiple typewriters
// can coexist independently. New instances start in (Russian, Letter),
// the machine's power-on mode.
type Typewriter struct {
	russian bool
	letter  bool
}

// New returns a Typewriter in the initial (Russian, Letter) mode.
func New() *Typewriter {
	return &Typewriter{russian: true, letter: true}
}

// SetRussian switches between the Russian and Latin character sets.
// On the real machine this was a local physical control, not driven
// by a code from the accumulator.
func (t *Typewriter) SetRussian(russian bool) {
	t.russian = russian
}

// Print decodes the 5-trit code and either updates the Letter/Figure
// mode switch (for the two reserved codes) or returns the glyph that
// code renders to under the current mode pair. An unmapped code
// prints nothing, matching the "zero or one code points" contract.
func (t *Typewriter) Print(code trit.Word) string {
	v := int8(code.ToInt())

	switch v {
	case codeShiftLetter:
		t.letter = true
		return ""
	case codeShiftFigure:
		t.letter = false
		return ""
	}

	g, ok := table[v]
	if !ok {
		return ""
	}
	switch {
	case t.russian && t.letter:
		return g.ruLetter
	case t.russian && !t.letter:
		return g.ruFigure
	case !t.russian && t.letter:
		return g.laLetter
	default:
		return g.laFigure
	}
}
