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

// Package element holds the retained model of a chart: one plain-data
// Element per visual mark, carrying the current (possibly interpolated)
// attribute values between animation frames.
//
// The model is never displayed directly. The paint pipeline reads it on
// every frame and draws the marks into a canvas.
package element

import (
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/chart/scale"
)

// Shape selects how the attributes of an element are interpreted.
type Shape int

// These are the supported shapes.
const (
	// Rect is an axis-aligned rectangle with corner (X, Y), width W and
	// height H.  Negative sizes are normalised when painting.
	Rect Shape = iota

	// Circle is a disc with centre (X, Y) and radius R.
	Circle

	// Arc is an annular sector with centre (X, Y), inner radius R0,
	// outer radius R and angles A0 to A1 in radians.  Angles are
	// measured clockwise from twelve o'clock.
	Arc

	// Line is a straight segment from (X, Y) to (X2, Y2) of width
	// StrokeWidth, painted in the Stroke colour.
	Line
)

func (s Shape) String() string {
	switch s {
	case Rect:
		return "rect"
	case Circle:
		return "circle"
	case Arc:
		return "arc"
	case Line:
		return "line"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Attrs are the animatable attributes of an element, in pixel space.
type Attrs struct {
	X, Y   float64
	X2, Y2 float64
	W, H   float64
	R, R0  float64
	A0, A1 float64

	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64

	// Opacity multiplies the alpha of Fill and Stroke.
	Opacity float64
}

// Lerp interpolates between two attribute sets.  Numeric fields are
// interpolated linearly, colours channel by channel in RGB space.
// t is clamped to [0, 1].
func Lerp(a, b Attrs, t float64) Attrs {
	t = min(max(t, 0), 1)
	if math.IsNaN(t) {
		t = 0
	}
	f := func(x, y float64) float64 {
		return x + (y-x)*t
	}
	return Attrs{
		X:           f(a.X, b.X),
		Y:           f(a.Y, b.Y),
		X2:          f(a.X2, b.X2),
		Y2:          f(a.Y2, b.Y2),
		W:           f(a.W, b.W),
		H:           f(a.H, b.H),
		R:           f(a.R, b.R),
		R0:          f(a.R0, b.R0),
		A0:          f(a.A0, b.A0),
		A1:          f(a.A1, b.A1),
		Fill:        scale.LerpRGB(a.Fill, b.Fill, t),
		Stroke:      scale.LerpRGB(a.Stroke, b.Stroke, t),
		StrokeWidth: f(a.StrokeWidth, b.StrokeWidth),
		Opacity:     f(a.Opacity, b.Opacity),
	}
}

// Finite reports whether all numeric attributes are finite numbers.
func (a Attrs) Finite() bool {
	for _, v := range [...]float64{
		a.X, a.Y, a.X2, a.Y2, a.W, a.H, a.R, a.R0, a.A0, a.A1,
		a.StrokeWidth, a.Opacity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Center returns the point used for nearest-point searches and brush
// selection.
func (a Attrs) Center(shape Shape) (x, y float64) {
	switch shape {
	case Rect:
		return a.X + a.W/2, a.Y + a.H/2
	case Line:
		return (a.X + a.X2) / 2, (a.Y + a.Y2) / 2
	case Arc:
		mid := (a.A0 + a.A1) / 2
		r := (a.R0 + a.R) / 2
		return a.X + r*math.Sin(mid), a.Y - r*math.Cos(mid)
	default:
		return a.X, a.Y
	}
}

// Element is one mark in the retained model.
type Element struct {
	// Key identifies the mark across renders.
	Key string

	Shape Shape
	Attrs Attrs

	// Data refers back to the datum the mark was made from.  The element
	// never owns it.
	Data any

	// Tooltip is the text shown when the pointer is over the element.
	Tooltip string

	exiting bool
}

// New returns a live element with the given birth attributes.
func New(key string, shape Shape, birth Attrs) *Element {
	return &Element{Key: key, Shape: shape, Attrs: birth}
}

// Exiting reports whether the element has been scheduled for removal.
func (e *Element) Exiting() bool {
	return e.exiting
}

// MarkExiting flags the element as leaving the chart.  Exiting elements
// are still painted but can no longer be hit.
func (e *Element) MarkExiting() {
	e.exiting = true
}

// Revive clears the exiting flag, when the key of a leaving element
// reappears in the data.
func (e *Element) Revive() {
	e.exiting = false
}

func (e *Element) String() string {
	state := "live"
	if e.exiting {
		state = "exiting"
	}
	return fmt.Sprintf("%s %q (%s)", e.Shape, e.Key, state)
}
