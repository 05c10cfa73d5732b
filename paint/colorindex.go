// seehuhn.de/go/chart - animated charts on an immediate-mode canvas
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package paint

import (
	"errors"
	"image/color"

	"seehuhn.de/go/chart/element"
)

// MaxCodes is the number of distinct identification colours.  Code 0 is
// reserved for "no mark".
const MaxCodes = 1<<24 - 1

// ErrIndexFull is returned when more than MaxCodes marks are indexed in
// one pass.
var ErrIndexFull = errors.New("colour index full")

// ColorIndex maps identification colours of the hit canvas back to
// elements.  Codes are handed out densely, starting at 1.
type ColorIndex struct {
	elems []*element.Element // elems[code-1]
}

// Encode returns the identification colour for code.
func Encode(code uint32) color.RGBA {
	return color.RGBA{R: uint8(code >> 16), G: uint8(code >> 8), B: uint8(code), A: 0xff}
}

// Decode returns the code of an identification colour.  Transparent
// pixels decode to 0.
func Decode(c color.RGBA) uint32 {
	if c.A == 0 {
		return 0
	}
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Reset forgets all codes.  It must be called at the start of every paint
// pass.
func (ci *ColorIndex) Reset() {
	clear(ci.elems)
	ci.elems = ci.elems[:0]
}

// Add assigns the next free code to e.
func (ci *ColorIndex) Add(e *element.Element) (uint32, error) {
	if len(ci.elems) >= MaxCodes {
		return 0, ErrIndexFull
	}
	ci.elems = append(ci.elems, e)
	return uint32(len(ci.elems)), nil
}

// Len returns the number of codes in use.
func (ci *ColorIndex) Len() int {
	return len(ci.elems)
}

// Element returns the element with the given code.
func (ci *ColorIndex) Element(code uint32) (*element.Element, bool) {
	if code == 0 || int(code) > len(ci.elems) {
		return nil, false
	}
	return ci.elems[code-1], true
}

// Lookup returns the element painted in colour c.
func (ci *ColorIndex) Lookup(c color.RGBA) (*element.Element, bool) {
	return ci.Element(Decode(c))
}

// Tooltip returns the tooltip of the element painted in colour c, or the
// empty string.
func (ci *ColorIndex) Tooltip(c color.RGBA) string {
	if e, ok := ci.Lookup(c); ok {
		return e.Tooltip
	}
	return ""
}
