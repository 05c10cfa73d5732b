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


// Package export writes the current picture of a chart to PNG, SVG and
// PDF files.
//
// The encoders do not look at the element model directly.  Build first
// resolves every element into a Tree of filled paths and text labels,
// with colours, opacity and stroke outlines already applied, so that all
// three formats show exactly the same geometry as the screen.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/raster"
)

// Format is an export file format.
type Format int

// These are the supported formats.
const (
	PNG Format = iota + 1
	SVG
	PDF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrFormat is returned for unknown formats, and for formats which cannot
// be written to the given destination.
var ErrFormat = errors.New("unsupported export format")

// FormatFromName guesses the format from a file name extension.
func FormatFromName(name string) (Format, error) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return 0, fmt.Errorf("%q: %w", name, ErrFormat)
	}
	switch strings.ToLower(name[i+1:]) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrFormat)
}

// Write encodes the tree in format f.  PDF output can only be written to
// a file, see WriteFile.
func Write(w io.Writer, t *Tree, f Format) error {
	switch f {
	case PNG:
		return WritePNG(w, t)
	case SVG:
		return WriteSVG(w, t)
	}
	return fmt.Errorf("writing %s to a stream: %w", f, ErrFormat)
}

// WriteFile encodes the tree in format f and writes it to the named file.
func WriteFile(fname string, t *Tree, f Format) (err error) {
	if f == PDF {
		return WritePDF(fname, t)
	}
	if f != PNG && f != SVG {
		return fmt.Errorf("%s: %w", f, ErrFormat)
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(out)
	if err := Write(bw, t, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Paint is one filled region.  Opacity is folded into the alpha channel
// of Color.  Paths are filled with the nonzero winding rule.
type Paint struct {
	Path  path.Data
	Color color.NRGBA
}

// Label is a line of text.  Y is the baseline.
type Label struct {
	Text  string
	X, Y  float64
	Size  float64
	Align raster.Align
	Color color.NRGBA
	Font  string
}

// Node is one element or one piece of chart furniture.
type Node struct {
	// Key is the element key, or empty for the overlay.
	Key    string
	Paints []Paint
	Label  *Label
}

// Tree is the fully resolved picture.
type Tree struct {
	Width, Height int
	Background    color.NRGBA
	Nodes         []Node
}

// FontName describes the only font used for labels.
const FontName = "monospace"

// Build resolves a snapshot into a tree.  Elements come first, in paint
// order, followed by the overlay lines and labels.
func Build(s *engine.Snapshot) *Tree {
	t := &Tree{
		Width:      s.Width,
		Height:     s.Height,
		Background: s.Background.Fill,
	}
	for i := range s.Elements {
		e := &s.Elements[i]
		a := e.Attrs
		n := Node{Key: e.Key}
		var p path.Data
		if raster.ShapePath(&p, e.Shape, a) {
			col := a.Fill
			if e.Shape == element.Line {
				col = a.Stroke
			}
			n.add(p, withOpacity(col, a.Opacity))
		}
		var q path.Data
		if raster.OutlinePath(&q, e.Shape, a) {
			n.add(q, withOpacity(a.Stroke, a.Opacity))
		}
		if len(n.Paints) > 0 {
			t.Nodes = append(t.Nodes, n)
		}
	}

	for _, l := range s.Overlay.Lines {
		var p path.Data
		raster.AppendLine(&p, l.X0, l.Y0, l.X1, l.Y1, l.Width)
		n := Node{}
		n.add(p, l.Color)
		if len(n.Paints) > 0 {
			t.Nodes = append(t.Nodes, n)
		}
	}
	for _, l := range s.Overlay.Texts {
		if l.Text == "" || l.Color.A == 0 {
			continue
		}
		t.Nodes = append(t.Nodes, Node{Label: &Label{
			Text:  l.Text,
			X:     l.X,
			Y:     l.Y,
			Size:  l.Size,
			Align: l.Align,
			Color: l.Color,
			Font:  FontName,
		}})
	}
	return t
}

func (n *Node) add(p path.Data, col color.NRGBA) {
	if col.A == 0 || len(p.Cmds) == 0 {
		return
	}
	n.Paints = append(n.Paints, Paint{Path: p, Color: col})
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if math.IsNaN(opacity) {
		opacity = 0
	}
	opacity = min(max(opacity, 0), 1)
	c.A = uint8(math.Round(float64(c.A) * opacity))
	return c
}

// anchorX returns the left edge of a label.
func (l *Label) anchorX() float64 {
	switch l.Align {
	case raster.AlignCenter:
		return l.X - raster.TextWidth(l.Text, l.Size)/2
	case raster.AlignRight:
		return l.X - raster.TextWidth(l.Text, l.Size)
	}
	return l.X
}
