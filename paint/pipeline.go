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

// Package paint turns the retained element model into pixels.
//
// Every repaint clears the visible canvas, paints all elements in model
// order, paints the static overlay on top and then rebuilds the colour
// index and the hidden hit canvas from the same element attributes.
package paint

import (
	"image/color"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/raster"
)

// Line is a straight overlay segment, such as an axis or a tick mark.
type Line struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          color.NRGBA
}

// Text is an overlay label.  Y is the baseline.
type Text struct {
	Text  string
	X, Y  float64
	Size  float64
	Align raster.Align
	Color color.NRGBA
}

// Overlay is the chart furniture painted above the marks.  It does not
// take part in hit-testing.
type Overlay struct {
	Lines []Line
	Texts []Text
}

// Pipeline owns the visible canvas, the hit canvas and the colour index
// of one chart.
type Pipeline struct {
	// Background is the colour the canvas is cleared to.
	Background color.NRGBA

	canvas *raster.Canvas
	hit    *raster.HitCanvas
	index  ColorIndex
	frames int
}

// NewPipeline allocates both canvases.
func NewPipeline(width, height int) *Pipeline {
	return &Pipeline{
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		canvas:     raster.NewCanvas(width, height),
		hit:        raster.NewHitCanvas(width, height),
	}
}

// Resize reallocates the canvases if the size changed.  The contents are
// lost until the next Repaint.
func (p *Pipeline) Resize(width, height int) {
	b := p.canvas.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	p.canvas = raster.NewCanvas(width, height)
	p.hit = raster.NewHitCanvas(width, height)
	p.index.Reset()
}

// Repaint draws the elements in the given order and rebuilds the hit
// canvas.  Exiting elements are drawn but cannot be hit.  If the colour
// index overflows, the remaining elements are drawn but not indexed and
// ErrIndexFull is returned.
func (p *Pipeline) Repaint(elems []*element.Element, overlay *Overlay) error {
	p.frames++

	p.canvas.Clear(p.Background)
	for _, e := range elems {
		p.canvas.FillShape(e.Shape, e.Attrs)
	}
	if overlay != nil {
		for _, l := range overlay.Lines {
			p.canvas.Line(l.X0, l.Y0, l.X1, l.Y1, l.Width, l.Color)
		}
		for _, t := range overlay.Texts {
			p.canvas.DrawText(t.Text, t.X, t.Y, t.Size, t.Align, t.Color)
		}
	}

	var err error
	p.index.Reset()
	p.hit.Clear()
	for _, e := range elems {
		if e.Exiting() || e.Attrs.Opacity <= 0 {
			continue
		}
		code, addErr := p.index.Add(e)
		if addErr != nil {
			err = addErr
			break
		}
		p.hit.FillShape(e.Shape, e.Attrs, Encode(code))
	}
	return err
}

// Canvas returns the visible canvas.
func (p *Pipeline) Canvas() *raster.Canvas {
	return p.canvas
}

// HitCanvas returns the hidden hit canvas.
func (p *Pipeline) HitCanvas() *raster.HitCanvas {
	return p.hit
}

// Index returns the colour index of the last repaint.
func (p *Pipeline) Index() *ColorIndex {
	return &p.index
}

// Frames returns the number of repaints so far.
func (p *Pipeline) Frames() int {
	return p.frames
}

// Release drops the canvases and the index.  The pipeline must not be
// used afterwards.
func (p *Pipeline) Release() {
	p.index.Reset()
	p.canvas = nil
	p.hit = nil
}
