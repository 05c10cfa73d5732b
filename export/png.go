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


package export

import (
	"image/png"
	"io"

	"seehuhn.de/go/chart/raster"
)

// Rasterize paints the tree onto a new canvas.
func Rasterize(t *Tree) *raster.Canvas {
	c := raster.NewCanvas(t.Width, t.Height)
	c.Clear(t.Background)
	for i := range t.Nodes {
		n := &t.Nodes[i]
		for j := range n.Paints {
			c.Fill(&n.Paints[j].Path, n.Paints[j].Color, false)
		}
		if l := n.Label; l != nil {
			c.DrawText(l.Text, l.X, l.Y, l.Size, l.Align, l.Color)
		}
	}
	return c
}

// WritePNG writes the tree as a PNG image.
func WritePNG(w io.Writer, t *Tree) error {
	return png.Encode(w, Rasterize(t).Image())
}
