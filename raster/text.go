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

package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontSize is the pixel height of the built-in bitmap font.  Text at other
// sizes is drawn at this size and resampled.
const FontSize = 13

// Align selects the horizontal anchor of a text label.
type Align int

// These are the supported anchors.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextWidth returns the advance width of s, in pixels, at the given font
// size.
func TextWidth(s string, size float64) float64 {
	w := font.MeasureString(basicfont.Face7x13, s)
	return float64(w) / 64 * size / FontSize
}

// DrawText draws s with its baseline at y.  x is the left edge, centre or
// right edge of the text, depending on align.
func (c *Canvas) DrawText(s string, x, y, size float64, align Align, col color.NRGBA) {
	if s == "" || size <= 0 || col.A == 0 || math.IsNaN(x+y+size) {
		return
	}
	face := basicfont.Face7x13
	switch align {
	case AlignCenter:
		x -= TextWidth(s, size) / 2
	case AlignRight:
		x -= TextWidth(s, size)
	}

	src := image.NewUniform(col)
	if size == FontSize {
		d := &font.Drawer{
			Dst:  c.img,
			Src:  src,
			Face: face,
			Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
		}
		d.DrawString(s)
		return
	}

	// Render at the native size into a scratch image, then scale.
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	w := font.MeasureString(face, s).Ceil()
	tmp := image.NewRGBA(image.Rect(0, 0, w, ascent+descent))
	d := &font.Drawer{Dst: tmp, Src: src, Face: face, Dot: fixed.P(0, ascent)}
	d.DrawString(s)

	scale := size / FontSize
	top := y - float64(ascent)*scale
	dr := image.Rect(
		int(math.Round(x)),
		int(math.Round(top)),
		int(math.Round(x+float64(w)*scale)),
		int(math.Round(top+float64(ascent+descent)*scale)),
	)
	if dr.Empty() {
		return
	}
	draw.BiLinear.Scale(c.img, dr, tmp, tmp.Bounds(), draw.Over, nil)
}
