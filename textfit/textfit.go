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


// Package textfit shortens chart labels until they fit a given width.
package textfit

import (
	"strings"

	"seehuhn.de/go/chart/raster"
)

// AxisOffset is the gap between an axis line and its tick labels, which
// Shrink subtracts from the available width.
const AxisOffset = 9

// Width returns the width of s in pixels at the given font size.
func Width(s string, size float64) float64 {
	return raster.TextWidth(s, size)
}

// Truncate removes characters from the end of s until the text, followed
// by "..", fits into maxWidth.  Text which already fits is returned
// unchanged.  If not even a single character fits, the result is "..".
func Truncate(s string, maxWidth, size float64) string {
	if Width(s, size) <= maxWidth {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if Width(string(r)+"..", size) <= maxWidth {
			break
		}
	}
	return string(r) + ".."
}

// Shrink reduces the font size in steps of one pixel until s fits next to
// an axis of the given width.  The size never drops below floor.
func Shrink(s string, maxWidth, size, floor float64) float64 {
	for size-1 >= floor && Width(s, size) > maxWidth-AxisOffset {
		size--
	}
	return size
}

// Wrap breaks s at white space into at most two lines of at most maxWidth
// pixels.  If the text does not fit into two lines, the second line ends
// in "...".  A single word wider than maxWidth is never split.
func Wrap(s string, maxWidth, size float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line []string
	for _, word := range words {
		line = append(line, word)
		if len(line) == 1 || Width(strings.Join(line, " "), size) <= maxWidth {
			continue
		}
		line = line[:len(line)-1]
		if len(lines) == 1 {
			return append(lines, strings.Join(line, " ")+"...")
		}
		lines = append(lines, strings.Join(line, " "))
		line = []string{word}
	}
	return append(lines, strings.Join(line, " "))
}
