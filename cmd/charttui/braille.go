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


package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Every terminal cell shows 2x4 braille dots.
const (
	dotsX = 2
	dotsY = 4
)

// inkThreshold is the smallest channel difference from the background
// which makes a dot visible.
const inkThreshold = 0x30

var dotBits = [dotsY][dotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleBuf holds one dot mask and one ink colour per cell.
type brailleBuf struct {
	w, h int // in cells
	mask []uint8
	ink  []color.NRGBA
}

// newBrailleBuf samples img, which has one pixel per dot, against the
// background colour bg.  Each cell is coloured with the average colour of
// its visible dots.
func newBrailleBuf(img *image.RGBA, bg color.NRGBA) *brailleBuf {
	b := img.Bounds()
	w, h := b.Dx()/dotsX, b.Dy()/dotsY
	buf := &brailleBuf{
		w:    w,
		h:    h,
		mask: make([]uint8, w*h),
		ink:  make([]color.NRGBA, w*h),
	}
	for cy := range h {
		for cx := range w {
			var r, g, bl, n int
			var mask uint8
			for ry := range dotsY {
				for rx := range dotsX {
					c := img.RGBAAt(b.Min.X+cx*dotsX+rx, b.Min.Y+cy*dotsY+ry)
					if !inked(c, bg) {
						continue
					}
					mask |= dotBits[ry][rx]
					r += int(c.R)
					g += int(c.G)
					bl += int(c.B)
					n++
				}
			}
			i := cy*w + cx
			buf.mask[i] = mask
			if n > 0 {
				buf.ink[i] = color.NRGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 0xff}
			}
		}
	}
	return buf
}

func inked(c color.RGBA, bg color.NRGBA) bool {
	return diff(c.R, bg.R) > inkThreshold ||
		diff(c.G, bg.G) > inkThreshold ||
		diff(c.B, bg.B) > inkThreshold
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// lines renders the buffer, one string per cell row.  Runs of cells with
// the same colour share one style.
func (b *brailleBuf) lines() []string {
	out := make([]string, b.h)
	var row, run strings.Builder
	for y := range b.h {
		row.Reset()
		run.Reset()
		var cur color.NRGBA
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur.A == 0 {
				row.WriteString(run.String())
			} else {
				row.WriteString(lipgloss.NewStyle().Foreground(hexColor(cur)).Render(run.String()))
			}
			run.Reset()
		}
		for x := range b.w {
			i := y*b.w + x
			ink := b.ink[i]
			if b.mask[i] == 0 {
				ink = color.NRGBA{}
			}
			if ink != cur {
				flush()
				cur = ink
			}
			if b.mask[i] == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(rune(0x2800 + int(b.mask[i])))
			}
		}
		flush()
		out[y] = row.String()
	}
	return out
}

func hexColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
