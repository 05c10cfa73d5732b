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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/element"
)

// circleK is the control point distance for a quarter circle of radius 1
// drawn as a cubic Bézier curve.
const circleK = 0.5522847498

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func resetPath(p *path.Data) *path.Data {
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]
	return p
}

// AppendRect adds a closed rectangle to p.  Negative sizes are allowed.
func AppendRect(p *path.Data, x, y, w, h float64) *path.Data {
	return p.MoveTo(pt(x, y)).
		LineTo(pt(x+w, y)).
		LineTo(pt(x+w, y+h)).
		LineTo(pt(x, y+h)).
		Close()
}

// AppendCircle adds a closed circle to p.  If clockwise is false, the
// circle is traversed in the opposite direction, which punches a hole
// when combined with an enclosing clockwise contour.
func AppendCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	k := circleK * r
	if clockwise {
		return p.MoveTo(pt(cx, cy-r)).
			CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
			Close()
	}
	return p.MoveTo(pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		Close()
}

// polar returns the point at angle a (clockwise from twelve o'clock) and
// distance r from (cx, cy), in a y-down coordinate system.
func polar(cx, cy, r, a float64) vec.Vec2 {
	return pt(cx+r*math.Sin(a), cy-r*math.Cos(a))
}

// arcTo continues p along the circle around (cx, cy) of radius r from
// angle a0 to angle a1.  The current point of p must be at angle a0.
func arcTo(p *path.Data, cx, cy, r, a0, a1 float64) *path.Data {
	n := int(math.Ceil(math.Abs(a1-a0) / (math.Pi / 2)))
	if n == 0 {
		return p
	}
	step := (a1 - a0) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r
	for i := range n {
		s := a0 + float64(i)*step
		e := s + step
		p0 := polar(cx, cy, r, s)
		p3 := polar(cx, cy, r, e)
		c1 := p0.Add(pt(math.Cos(s), math.Sin(s)).Mul(k))
		c2 := p3.Sub(pt(math.Cos(e), math.Sin(e)).Mul(k))
		p.CubeTo(c1, c2, p3)
	}
	return p
}

// AppendArc adds an annular sector to p: the ring between radii r0 and r,
// from angle a0 to a1.  With r0 == 0 the result is a pie slice.
func AppendArc(p *path.Data, cx, cy, r0, r, a0, a1 float64) *path.Data {
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	a1 = min(a1, a0+2*math.Pi)

	if r0 <= 0 {
		p.MoveTo(pt(cx, cy)).LineTo(polar(cx, cy, r, a0))
		return arcTo(p, cx, cy, r, a0, a1).Close()
	}
	p.MoveTo(polar(cx, cy, r, a0))
	arcTo(p, cx, cy, r, a0, a1)
	p.LineTo(polar(cx, cy, r0, a1))
	arcTo(p, cx, cy, r0, a1, a0)
	return p.Close()
}

// AppendLine adds the outline of a straight segment of the given width.
func AppendLine(p *path.Data, x0, y0, x1, y1, width float64) *path.Data {
	d := pt(x1-x0, y1-y0)
	l := d.Length()
	if l == 0 {
		// a square dot, so that zero-length segments stay visible
		return AppendRect(p, x0-width/2, y0-width/2, width, width)
	}
	n := pt(-d.Y, d.X).Mul(width / (2 * l))
	a, b := pt(x0, y0), pt(x1, y1)
	return p.MoveTo(a.Add(n)).
		LineTo(b.Add(n)).
		LineTo(b.Sub(n)).
		LineTo(a.Sub(n)).
		Close()
}

// ShapePath writes the fill outline of an element into p, replacing its
// previous contents.  It returns false if the shape covers no area or
// its attributes are not finite.
func ShapePath(p *path.Data, shape element.Shape, a element.Attrs) bool {
	resetPath(p)
	if !a.Finite() {
		return false
	}
	switch shape {
	case element.Rect:
		if a.W == 0 || a.H == 0 {
			return false
		}
		AppendRect(p, a.X, a.Y, a.W, a.H)
	case element.Circle:
		if a.R <= 0 {
			return false
		}
		AppendCircle(p, a.X, a.Y, a.R, true)
	case element.Arc:
		if a.R <= max(a.R0, 0) || a.A0 == a.A1 {
			return false
		}
		AppendArc(p, a.X, a.Y, a.R0, a.R, a.A0, a.A1)
	case element.Line:
		w := a.StrokeWidth
		if w <= 0 {
			w = 1
		}
		AppendLine(p, a.X, a.Y, a.X2, a.Y2, w)
	default:
		return false
	}
	return true
}

// OutlinePath writes the stroke outline of an element into p, for shapes
// which have both a fill and a stroke.  Inner contours run against the
// outer ones, so the result is filled with the nonzero rule.  It returns
// false if there is nothing to stroke.
func OutlinePath(p *path.Data, shape element.Shape, a element.Attrs) bool {
	resetPath(p)
	sw := a.StrokeWidth
	if !a.Finite() || sw <= 0 || a.Stroke.A == 0 {
		return false
	}
	switch shape {
	case element.Rect:
		x, y, w, h := a.X, a.Y, a.W, a.H
		if w < 0 {
			x, w = x+w, -w
		}
		if h < 0 {
			y, h = y+h, -h
		}
		AppendRect(p, x-sw/2, y-sw/2, w+sw, h+sw)
		if w > sw && h > sw {
			AppendRect(p, x+w-sw/2, y+sw/2, sw-w, h-sw)
		}
	case element.Circle:
		if a.R <= 0 {
			return false
		}
		AppendCircle(p, a.X, a.Y, a.R+sw/2, true)
		if a.R > sw/2 {
			AppendCircle(p, a.X, a.Y, a.R-sw/2, false)
		}
	case element.Arc:
		if a.R <= max(a.R0, 0) {
			return false
		}
		// the two radial edges separate neighbouring slices
		for _, ang := range [...]float64{a.A0, a.A1} {
			p0 := polar(a.X, a.Y, a.R0, ang)
			p1 := polar(a.X, a.Y, a.R, ang)
			AppendLine(p, p0.X, p0.Y, p1.X, p1.Y, sw)
		}
	default:
		return false
	}
	return true
}
