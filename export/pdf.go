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
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chart/raster"
)

// WritePDF writes the tree as a single page PDF file.  One pixel becomes
// one PDF point.  Transparent colours are composited over the background,
// and labels are drawn as the pixels of the bitmap font.
func WritePDF(fname string, t *Tree) error {
	paper := &pdf.Rectangle{
		URx: float64(t.Width),
		URy: float64(t.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(rgb(t.Background))
	page.Rectangle(0, 0, float64(t.Width), float64(t.Height))
	page.Fill()

	// PDF origin is bottom-left, the chart origin is top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(t.Height)})

	for i := range t.Nodes {
		n := &t.Nodes[i]
		for j := range n.Paints {
			p := &n.Paints[j]
			page.SetFillColor(rgb(over(p.Color, t.Background)))
			for cmd, pts := range p.Path.Iter().ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(pts[0].X, pts[0].Y)
				case path.CmdLineTo:
					page.LineTo(pts[0].X, pts[0].Y)
				case path.CmdCubeTo:
					page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Fill()
		}
		if l := n.Label; l != nil {
			runs := glyphRuns(l)
			if len(runs) == 0 {
				continue
			}
			page.SetFillColor(rgb(over(l.Color, t.Background)))
			for _, r := range runs {
				page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
			}
			page.Fill()
		}
	}

	return page.Close()
}

func rgb(c color.NRGBA) pdfcolor.Color {
	return pdfcolor.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// over composites c onto the opaque colour bg.
func over(c, bg color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	mix := func(x, y uint8) uint8 {
		return uint8((uint32(x)*a + uint32(y)*(255-a) + 127) / 255)
	}
	return color.NRGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 0xff}
}

// glyphRuns renders a label with the bitmap font and returns the set
// pixels as horizontal runs, in chart coordinates.
func glyphRuns(l *Label) []rect.Rect {
	if l.Text == "" || l.Size <= 0 {
		return nil
	}
	face := basicfont.Face7x13
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	w := font.MeasureString(face, l.Text).Ceil()
	if w <= 0 {
		return nil
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, ascent+descent))
	d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: face, Dot: fixed.P(0, ascent)}
	d.DrawString(l.Text)

	scale := l.Size / raster.FontSize
	left := l.anchorX()
	top := l.Y - float64(ascent)*scale

	var runs []rect.Rect
	for y := range ascent + descent {
		x := 0
		for x < w {
			if mask.AlphaAt(x, y).A < 0x80 {
				x++
				continue
			}
			start := x
			for x < w && mask.AlphaAt(x, y).A >= 0x80 {
				x++
			}
			runs = append(runs, rect.Rect{
				LLx: left + float64(start)*scale,
				LLy: top + float64(y)*scale,
				URx: left + float64(x)*scale,
				URy: top + float64(y+1)*scale,
			})
		}
	}
	return runs
}
