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


package chart

import (
	"image/color"
	"strconv"

	"seehuhn.de/go/chart/paint"
	"seehuhn.de/go/chart/raster"
	"seehuhn.de/go/chart/scale"
	"seehuhn.de/go/chart/textfit"
)

var (
	axisColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	gridColor = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	textColor = color.NRGBA{A: 0xff}
	edgeColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	tickLength = 4
	labelGap   = 3
)

// plotArea is the rectangle inside the margins.
type plotArea struct {
	Left, Top, Right, Bottom float64
}

func inset(width, height int, margin float64) plotArea {
	return plotArea{
		Left:   margin,
		Top:    margin,
		Right:  float64(width) - margin,
		Bottom: float64(height) - margin,
	}
}

// overlay collects the chart furniture of one frame.
type overlay struct {
	paint.Overlay
	fontSize float64
	minSize  float64
}

func (o *overlay) line(x0, y0, x1, y1 float64, col color.NRGBA) {
	o.Lines = append(o.Lines, paint.Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: 1, Color: col})
}

func (o *overlay) text(s string, x, y, size float64, align raster.Align) {
	if s == "" {
		return
	}
	o.Texts = append(o.Texts, paint.Text{Text: s, X: x, Y: y, Size: size, Align: align, Color: textColor})
}

// title centres s in the top margin, truncated to the given width.
func (o *overlay) title(s string, size float64, a plotArea) {
	s = textfit.Truncate(s, a.Right-a.Left, size)
	o.text(s, (a.Left+a.Right)/2, a.Top/2+size/3, size, raster.AlignCenter)
}

// valueAxis draws a vertical axis with tick labels on the left edge of
// the plot area, plus horizontal grid lines.
func (o *overlay) valueAxis(y *scale.Linear, ticks int, a plotArea) {
	for _, v := range y.Ticks(ticks) {
		py := y.Position(v)
		o.line(a.Left, py, a.Right, py, gridColor)
		o.line(a.Left-tickLength, py, a.Left, py, axisColor)
		label := formatTick(v)
		size := textfit.Shrink(label, a.Left-tickLength, o.fontSize, o.minSize)
		o.text(label, a.Left-tickLength-labelGap, py+size/3, size, raster.AlignRight)
	}
	o.line(a.Left, a.Top, a.Left, a.Bottom, axisColor)
}

// linearAxis draws a horizontal axis with tick labels below the plot
// area.
func (o *overlay) linearAxis(x *scale.Linear, ticks int, a plotArea) {
	for _, v := range x.Ticks(ticks) {
		px := x.Position(v)
		o.line(px, a.Top, px, a.Bottom, gridColor)
		o.line(px, a.Bottom, px, a.Bottom+tickLength, axisColor)
		o.text(formatTick(v), px, a.Bottom+tickLength+o.fontSize, o.fontSize, raster.AlignCenter)
	}
	o.line(a.Left, a.Bottom, a.Right, a.Bottom, axisColor)
}

// bandAxis draws a horizontal axis with one label per band below the
// plot area.  Labels wrap onto a second line and are truncated to the
// step of the scale.
func (o *overlay) bandAxis(x *scale.Band, a plotArea) {
	for _, key := range x.Domain() {
		cx, err := x.Center(key)
		if err != nil {
			continue
		}
		o.line(cx, a.Bottom, cx, a.Bottom+tickLength, axisColor)
		y := a.Bottom + tickLength
		for _, line := range textfit.Wrap(key, x.Step(), o.fontSize) {
			y += o.fontSize
			label := textfit.Truncate(line, x.Step(), o.fontSize)
			o.text(label, cx, y, o.fontSize, raster.AlignCenter)
		}
	}
	o.line(a.Left, a.Bottom, a.Right, a.Bottom, axisColor)
}

// bandLabels writes one right aligned label per band to the left of the
// plot area, for the rows of a heatmap.
func (o *overlay) bandLabels(y *scale.Band, a plotArea) {
	for _, key := range y.Domain() {
		cy, err := y.Center(key)
		if err != nil {
			continue
		}
		size := min(o.fontSize, max(y.Bandwidth(), o.minSize))
		label := textfit.Truncate(key, a.Left-labelGap, size)
		o.text(label, a.Left-labelGap, cy+size/3, size, raster.AlignRight)
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
