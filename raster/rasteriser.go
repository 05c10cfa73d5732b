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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yRange() (lo, hi float64) {
	return min(e.y0, e.y1), max(e.y0, e.y1)
}

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts filled paths into anti-aliased pixel coverage.
// One instance is reused for all marks of a frame; its buffers grow as
// needed and are never shrunk.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with
	// integer-aligned corners.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// smallPathThreshold is the largest bounding box area, in pixels, for
	// which coverage is accumulated in a 2D buffer.  Larger paths are
	// scanned with an active edge list.
	smallPathThreshold int

	cover     []float32 // cover change per pixel, reused for the output
	area      []float32 // area within each pixel
	edges     []edge
	activeIdx []int
	rowXMin   []int
	rowXMax   []int
	crossings []float64

	bboxEmpty                  bool
	devXMin, devXMax           float64
	devYMin, devYMax           float64
	clipXMin, clipXMax         int
	clipYMin, clipYMax         int
	bboxXMin, bboxXMax         int
	bboxYMin, bboxYMax         int
	rowBoundMin, rowBoundMax   int
	currentPoint, subpathStart vec.Vec2
}

// NewRasteriser returns a rasteriser for the given clip rectangle, with
// the identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:                matrix.Identity,
		Clip:               clip,
		Flatness:           defaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset prepares the rasteriser for a new clip rectangle and restores the
// default parameters.  Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowXMin = r.rowXMin[:0]
	r.rowXMax = r.rowXMax[:0]
	r.crossings = r.crossings[:0]
}

// FillNonZero fills p using the nonzero winding rule.  Coverage in [0, 1]
// is passed to emit one row at a time; the slice is only valid during the
// call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateEvenOdd, emit)
}

func (r *Rasteriser) fill(p *path.Data, integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	if !r.collectEdges(p) {
		return
	}
	w := r.bboxXMax - r.bboxXMin
	h := r.bboxYMax - r.bboxYMin
	if w*h < r.smallPathThreshold {
		r.fillSmall(integrate, emit)
	} else {
		r.fillLarge(integrate, emit)
	}
}

// collectEdges flattens p into device-space edges and computes the
// bounding box of the result, clamped to the clip rectangle.  It returns
// false if nothing inside the clip region can be covered.
func (r *Rasteriser) collectEdges(p *path.Data) bool {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.currentPoint = p.Coords[k]
			r.subpathStart = r.currentPoint
			k++
		case path.CmdLineTo:
			r.addEdge(r.currentPoint, p.Coords[k])
			r.currentPoint = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(r.currentPoint, p.Coords[k], p.Coords[k+1])
			r.currentPoint = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(r.currentPoint, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			r.currentPoint = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if r.currentPoint != r.subpathStart {
				r.addEdge(r.currentPoint, r.subpathStart)
			}
			r.currentPoint = r.subpathStart
		}
	}
	if r.bboxEmpty {
		return false
	}

	r.clipXMin, r.clipXMax = int(r.Clip.LLx), int(r.Clip.URx)
	r.clipYMin, r.clipYMax = int(r.Clip.LLy), int(r.Clip.URy)
	r.bboxXMin = max(int(math.Floor(r.devXMin)), r.clipXMin)
	r.bboxXMax = min(int(math.Floor(r.devXMax))+1, r.clipXMax)
	r.bboxYMin = max(int(math.Floor(r.devYMin)), r.clipYMin)
	r.bboxYMax = min(int(math.Floor(r.devYMax))+1, r.clipYMax)
	return r.bboxXMin < r.bboxXMax && r.bboxYMin < r.bboxYMax
}

// addEdge transforms a user-space segment to device space and records it.
// Horizontal segments carry no coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// deviceLength returns the device-space length of the user-space vector v,
// ignoring translation.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments
// whose distance from the curve stays below r.Flatness.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if dev > 0 {
		if nf := math.Sqrt(3 * dev / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Each pixel accumulates two values:
//
//	cover: the signed vertical extent of the edges crossing the pixel,
//	area:  the same extent weighted by the uncovered part of the pixel
//	       to the left of the crossing.
//
// Scanning a row from left to right, the coverage of a pixel is the sum
// of all cover values to its left plus its own area value.  This is the
// signed area of the path inside the pixel.

// accumulate adds the contribution of edge e on scanline y to the row
// buffers.  The buffers are indexed by x - r.bboxXMin.  Contributions left
// of the bounding box are folded into the first pixel.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32) {
	lo, hi := e.yRange()
	yTop := max(float64(y), lo)
	yBot := min(float64(y+1), hi)
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	if xa > xb {
		xa, xb = xb, xa
	}
	pixLeft := int(math.Floor(xa))
	pixRight := int(math.Floor(xb))

	switch {
	case pixRight < r.bboxXMin:
		v := sign * float32(yBot-yTop)
		cover[0] += v
		area[0] += v
		return
	case pixLeft >= r.bboxXMax:
		return
	case pixLeft == pixRight:
		r.deposit(e, yTop, yBot, sign, cover, area)
		return
	}

	// The edge crosses several pixel columns: split it where it meets
	// the vertical pixel boundaries.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		if r.crossings[i] > r.crossings[i-1] {
			r.deposit(e, r.crossings[i-1], r.crossings[i], sign, cover, area)
		}
	}
}

// deposit adds the piece of e between yTop and yBot, which lies inside a
// single pixel column.
func (r *Rasteriser) deposit(e *edge, yTop, yBot float64, sign float32, cover, area []float32) {
	v := sign * float32(yBot-yTop)
	xMid := e.xAt((yTop + yBot) / 2)
	pix := int(math.Floor(xMid))
	switch {
	case pix < r.bboxXMin:
		cover[0] += v
		area[0] += v
	case pix < r.bboxXMax:
		i := pix - r.bboxXMin
		cover[i] += v
		area[i] += v * float32(1-(xMid-float64(pix)))
	}
}

// markRow widens the touched x range of the current row to include the
// column where e crosses scanline y.
func (r *Rasteriser) markRow(e *edge, y int) {
	lo, hi := e.yRange()
	yTop := max(float64(y), lo)
	yBot := min(float64(y+1), hi)
	if yBot <= yTop {
		return
	}
	x := int(math.Floor(e.xAt((yTop + yBot) / 2)))
	x = min(max(x, r.bboxXMin), r.bboxXMax-1) - r.bboxXMin
	r.rowBoundMin = min(r.rowBoundMin, x)
	r.rowBoundMax = max(r.rowBoundMax, x)
}

func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := abs32(acc + area[i])
		acc += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// emitTrimmed passes the non-zero part of coverage to emit.
func emitTrimmed(y, xMin int, coverage []float32, emit func(y, xMin int, coverage []float32)) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo < hi {
		emit(y, xMin+lo, coverage[lo:hi])
	}
}

// fillSmall accumulates all rows at once in a 2D buffer.
func (r *Rasteriser) fillSmall(integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	w := r.bboxXMax - r.bboxXMin
	h := r.bboxYMax - r.bboxYMin
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowXMin = slices.Grow(r.rowXMin[:0], h)[:h]
	r.rowXMax = slices.Grow(r.rowXMax[:0], h)[:h]
	for i := range h {
		r.rowXMin[i], r.rowXMax[i] = w, -1
	}

	for i := range r.edges {
		e := &r.edges[i]
		lo, hi := e.yRange()
		y0 := max(int(math.Floor(lo)), r.bboxYMin)
		y1 := min(int(math.Floor(hi))+1, r.bboxYMax)
		for y := y0; y < y1; y++ {
			row := y - r.bboxYMin
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w])

			r.rowBoundMin, r.rowBoundMax = r.rowXMin[row], r.rowXMax[row]
			r.markRow(e, y)
			r.rowXMin[row], r.rowXMax[row] = r.rowBoundMin, r.rowBoundMax
		}
	}

	for row := range h {
		if r.rowXMax[row] < 0 {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrate(coverage, r.area[off:off+w])
		emitTrimmed(r.bboxYMin+row, r.bboxXMin, coverage, emit)
	}
}

// fillLarge scans one row at a time, keeping a list of the edges which
// intersect the current row.
func (r *Rasteriser) fillLarge(integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	w := r.bboxXMax - r.bboxXMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		aLo, _ := a.yRange()
		bLo, _ := b.yRange()
		return cmp.Compare(aLo, bLo)
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := r.bboxYMin; y < r.bboxYMax; y++ {
		for next < len(r.edges) {
			if lo, _ := r.edges[next].yRange(); lo >= float64(y+1) {
				break
			}
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		r.rowBoundMin, r.rowBoundMax = w, -1
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if _, hi := e.yRange(); hi <= float64(y) {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area)
			r.markRow(e, y)
			i++
		}
		if r.rowBoundMax < 0 {
			continue
		}

		integrate(r.cover, r.area)
		emitTrimmed(y, r.bboxXMin, r.cover, emit)
	}
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent for which an
	// edge contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the largest bounding box area (in pixels)
	// rasterised with a 2D buffer.
	smallPathThreshold = 65536
)
