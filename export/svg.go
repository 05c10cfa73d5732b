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
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chart/raster"
)

// WriteSVG writes the tree as an SVG document.  All styles are inline.
func WriteSVG(w io.Writer, t *Tree) error {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Start(t.Width, t.Height,
		fmt.Sprintf(`font-family="%s"`, FontName),
		fmt.Sprintf(`font-size="%dpx"`, raster.FontSize))
	doc.Rect(0, 0, t.Width, t.Height, "fill:"+hexColor(t.Background))

	for i := range t.Nodes {
		n := &t.Nodes[i]
		if n.Key != "" {
			doc.Gid(escape(n.Key))
		}
		for j := range n.Paints {
			p := &n.Paints[j]
			doc.Path(svgPath(&p.Path), fillStyle(p.Color))
		}
		if l := n.Label; l != nil {
			doc.Text(int(math.Round(l.X)), int(math.Round(l.Y)), l.Text,
				fmt.Sprintf(`text-anchor="%s"`, anchor(l.Align)),
				fmt.Sprintf(`font-size="%.3gpx"`, l.Size),
				fillStyle(l.Color))
		}
		if n.Key != "" {
			doc.Gend()
		}
	}
	doc.End()
	return ew.err
}

// svgPath converts p to SVG path syntax, converting quadratic segments
// to cubic ones.
func svgPath(p *path.Data) string {
	var b strings.Builder
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			fmt.Fprintf(&b, "M%.6g %.6g", pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			fmt.Fprintf(&b, "L%.6g %.6g", pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			fmt.Fprintf(&b, "C%.6g %.6g %.6g %.6g %.6g %.6g",
				pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func fillStyle(c color.NRGBA) string {
	s := "fill:" + hexColor(c)
	if c.A < 0xff {
		s += fmt.Sprintf(";fill-opacity:%.3g", float64(c.A)/255)
	}
	return s
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func anchor(a raster.Align) string {
	switch a {
	case raster.AlignCenter:
		return "middle"
	case raster.AlignRight:
		return "end"
	}
	return "start"
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// errWriter remembers the first write error, since the SVG writer does
// not report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	_, e.err = e.w.Write(p)
	return len(p), nil
}
