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

// Package raster provides the immediate-mode surfaces charts are painted
// on: an anti-aliased RGBA canvas and a hidden hit canvas which stores
// one solid identification colour per pixel.
//
// Both surfaces use device coordinates with the origin in the top-left
// corner and y growing downwards.
package raster

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chart/element"
)

// Canvas is an RGBA surface with source-over compositing.
type Canvas struct {
	img *image.RGBA
	r   *Rasteriser
	p   path.Data

	// set while filling, read by the emit callback
	src [4]float32 // premultiplied source colour, scaled to [0, 1]
}

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		r:   NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)}),
	}
}

// Image returns the pixels of the canvas.  The image is owned by the
// canvas and changes when the canvas is painted.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Clear sets every pixel to bg.
func (c *Canvas) Clear(bg color.NRGBA) {
	p := color.RGBAModel.Convert(bg).(color.RGBA)
	pix := c.img.Pix
	if len(pix) == 0 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = p.R, p.G, p.B, p.A
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// Fill composites the interior of p, in colour col, onto the canvas.
// If evenOdd is false, the nonzero winding rule is used.
func (c *Canvas) Fill(p *path.Data, col color.NRGBA, evenOdd bool) {
	if col.A == 0 {
		return
	}
	a := float32(col.A) / 255
	c.src = [4]float32{
		float32(col.R) / 255 * a,
		float32(col.G) / 255 * a,
		float32(col.B) / 255 * a,
		a,
	}
	if evenOdd {
		c.r.FillEvenOdd(p, c.blend)
	} else {
		c.r.FillNonZero(p, c.blend)
	}
}

// blend is the emit callback of the rasteriser.
func (c *Canvas) blend(y, xMin int, coverage []float32) {
	off := c.img.PixOffset(xMin, y)
	row := c.img.Pix[off : off+4*len(coverage)]
	for i, cov := range coverage {
		k := 1 - c.src[3]*cov
		px := row[4*i : 4*i+4 : 4*i+4]
		for j := range 4 {
			v := c.src[j]*cov*255 + float32(px[j])*k
			px[j] = uint8(min(v+0.5, 255))
		}
	}
}

// FillShape paints one element: its fill, then its stroke.
// The colours are scaled by the element opacity.
func (c *Canvas) FillShape(shape element.Shape, a element.Attrs) {
	opacity := min(max(a.Opacity, 0), 1)
	if math.IsNaN(opacity) || opacity == 0 {
		return
	}
	if shape == element.Line {
		if ShapePath(&c.p, shape, a) {
			c.Fill(&c.p, fade(a.Stroke, opacity), false)
		}
		return
	}
	if ShapePath(&c.p, shape, a) {
		c.Fill(&c.p, fade(a.Fill, opacity), false)
	}
	if OutlinePath(&c.p, shape, a) {
		c.Fill(&c.p, fade(a.Stroke, opacity), false)
	}
}

// Line draws a straight segment.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.NRGBA) {
	resetPath(&c.p)
	AppendLine(&c.p, x0, y0, x1, y1, width)
	c.Fill(&c.p, col, false)
}

func fade(col color.NRGBA, opacity float64) color.NRGBA {
	col.A = uint8(math.Round(float64(col.A) * opacity))
	return col
}

// HitCanvas is the hidden surface used for hit-testing.  Every pixel holds
// the identification colour of the topmost mark covering at least half of
// it, or transparent black where no mark is.  Colours are never blended.
type HitCanvas struct {
	img *image.RGBA
	r   *Rasteriser
	p   path.Data
	col color.RGBA
}

// NewHitCanvas allocates an empty hit canvas.
func NewHitCanvas(width, height int) *HitCanvas {
	width, height = max(width, 0), max(height, 0)
	return &HitCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		r:   NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)}),
	}
}

// Image returns the pixels of the hit canvas.
func (h *HitCanvas) Image() *image.RGBA {
	return h.img
}

// Clear removes all marks.
func (h *HitCanvas) Clear() {
	clear(h.img.Pix)
}

// FillShape paints the area of an element, including a stroke outline if
// it has one, in the solid colour col.  The alpha channel of col is
// forced to opaque.
func (h *HitCanvas) FillShape(shape element.Shape, a element.Attrs, col color.RGBA) {
	h.col = col
	h.col.A = 0xff
	if ShapePath(&h.p, shape, a) {
		h.r.FillNonZero(&h.p, h.set)
	}
	if shape != element.Line && OutlinePath(&h.p, shape, a) {
		h.r.FillNonZero(&h.p, h.set)
	}
}

func (h *HitCanvas) set(y, xMin int, coverage []float32) {
	off := h.img.PixOffset(xMin, y)
	for i, cov := range coverage {
		if cov >= 0.5 {
			j := off + 4*i
			h.img.Pix[j+0] = h.col.R
			h.img.Pix[j+1] = h.col.G
			h.img.Pix[j+2] = h.col.B
			h.img.Pix[j+3] = h.col.A
		}
	}
}

// At returns the colour stored at pixel (x, y).  Points outside the
// canvas return transparent black.
func (h *HitCanvas) At(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(h.img.Rect) {
		return color.RGBA{}
	}
	return h.img.RGBAAt(x, y)
}
