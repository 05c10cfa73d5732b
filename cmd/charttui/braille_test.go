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
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrailleDots(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	red := color.RGBA{R: 0xff, A: 0xff}
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 3, red)
	// almost white stays blank
	img.SetRGBA(2, 2, color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff})

	b := newBrailleBuf(img, white)
	require.Equal(t, 2, b.w)
	require.Equal(t, 1, b.h)
	assert.Equal(t, uint8(0x01|0x80), b.mask[0])
	assert.Equal(t, uint8(0), b.mask[1])
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, b.ink[0])

	lines := b.lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], string(rune(0x2800+0x81)))
	assert.True(t, strings.HasSuffix(lines[0], " "))
}

func TestBrailleAverageInk(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetRGBA(0, 1, color.RGBA{R: 0x40, A: 0xff})
	img.SetRGBA(1, 2, color.RGBA{R: 0x80, A: 0xff})

	b := newBrailleBuf(img, white)
	assert.Equal(t, uint8(0x02|0x20), b.mask[0])
	assert.Equal(t, color.NRGBA{R: 0x60, A: 0xff}, b.ink[0])
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#0a80ff", string(hexColor(color.NRGBA{R: 0x0a, G: 0x80, B: 0xff, A: 0xff})))
}
