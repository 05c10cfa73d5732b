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

// Package hittest maps pointer positions to the marks underneath.
//
// Banded charts invert their scales, which costs O(1) per axis.  Dense
// charts sample the hidden hit canvas of the paint pipeline and resolve
// the colour through the colour index, which is O(1) regardless of the
// number of marks.
package hittest

import (
	"math"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/paint"
	"seehuhn.de/go/chart/scale"
)

// Locator finds the element at a pointer position.
type Locator interface {
	Locate(x, y float64) (*element.Element, bool)
}

// Func adapts an ordinary function to the Locator interface.
type Func func(x, y float64) (*element.Element, bool)

// Locate calls f.
func (f Func) Locate(x, y float64) (*element.Element, bool) {
	return f(x, y)
}

// BandLocator inverts band scales to find the key of the mark under the
// pointer.
type BandLocator struct {
	// X is the band scale along the horizontal axis.
	X *scale.Band

	// Sub optionally splits every band of X further, for grouped bars.
	// Its range is relative to the start of the outer band.
	Sub *scale.Band

	// Y optionally maps the vertical axis, for heatmap rows.
	Y *scale.Band

	// Key builds the element key from the keys found on each scale, in
	// the order X, Sub, Y.
	Key func(keys ...string) string

	// Find returns the element with the given key.
	Find func(key string) (*element.Element, bool)

	// Bounded restricts hits to the bounding box of the element, for
	// marks which do not fill their band in the other direction.
	Bounded bool
}

// Locate implements the Locator interface.
func (l *BandLocator) Locate(x, y float64) (*element.Element, bool) {
	if l.X == nil || math.IsNaN(x) || math.IsNaN(y) {
		return nil, false
	}
	kx, ok := l.X.Invert(x)
	if !ok {
		return nil, false
	}
	keys := []string{kx}
	if l.Sub != nil {
		x0, err := l.X.Position(kx)
		if err != nil {
			return nil, false
		}
		ks, ok := l.Sub.Invert(x - x0)
		if !ok {
			return nil, false
		}
		keys = append(keys, ks)
	}
	if l.Y != nil {
		ky, ok := l.Y.Invert(y)
		if !ok {
			return nil, false
		}
		keys = append(keys, ky)
	}

	e, ok := l.Find(l.Key(keys...))
	if !ok || e.Exiting() {
		return nil, false
	}
	if l.Bounded && !inBox(e, x, y) {
		return nil, false
	}
	return e, true
}

// inBox reports whether (x, y) lies in the bounding box of a rectangle
// element.
func inBox(e *element.Element, x, y float64) bool {
	a := e.Attrs
	x0, x1 := min(a.X, a.X+a.W), max(a.X, a.X+a.W)
	y0, y1 := min(a.Y, a.Y+a.H), max(a.Y, a.Y+a.H)
	return x >= x0 && x <= x1 && y >= y0 && y <= y1
}

// ColorLocator samples the hit canvas of a paint pipeline.
type ColorLocator struct {
	Pipeline *paint.Pipeline
}

// Locate implements the Locator interface.
func (l *ColorLocator) Locate(x, y float64) (*element.Element, bool) {
	if l.Pipeline == nil || l.Pipeline.Index().Len() == 0 {
		return nil, false
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return nil, false
	}
	px, py := int(math.Floor(x)), int(math.Floor(y))
	return l.Pipeline.Index().Lookup(l.Pipeline.HitCanvas().At(px, py))
}

// NearestLocator returns the live element whose centre is closest to the
// pointer, if it is within Radius pixels.
type NearestLocator struct {
	Elements func() []*element.Element
	Radius   float64
}

// Locate implements the Locator interface.
func (l *NearestLocator) Locate(x, y float64) (*element.Element, bool) {
	var best *element.Element
	bestD := l.Radius * l.Radius
	for _, e := range l.Elements() {
		if e.Exiting() {
			continue
		}
		cx, cy := e.Attrs.Center(e.Shape)
		d := (cx-x)*(cx-x) + (cy-y)*(cy-y)
		if d <= bestD {
			best, bestD = e, d
		}
	}
	return best, best != nil
}

// First tries each locator in turn and returns the first hit.
func First(ls ...Locator) Locator {
	return Func(func(x, y float64) (*element.Element, bool) {
		for _, l := range ls {
			if l == nil {
				continue
			}
			if e, ok := l.Locate(x, y); ok {
				return e, true
			}
		}
		return nil, false
	})
}

// Brush returns the live elements whose centre lies inside the rectangle
// spanned by the two corners (x0, y0) and (x1, y1), in model order.
func Brush(elems []*element.Element, x0, y0, x1, y1 float64) []*element.Element {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	var res []*element.Element
	for _, e := range elems {
		if e.Exiting() {
			continue
		}
		cx, cy := e.Attrs.Center(e.Shape)
		if cx >= x0 && cx <= x1 && cy >= y0 && cy <= y1 {
			res = append(res, e)
		}
	}
	return res
}
