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

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// Linear maps the numeric domain [D0, D1] linearly onto the pixel range
// [R0, R1]. Either interval may be reversed, which is the usual way to
// make the y axis grow upwards.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns a linear scale. A domain of zero span is valid: every
// value maps to the middle of the range.
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Position maps v to a pixel coordinate. Values outside the domain are
// extrapolated; use Clamp when the result must stay inside the range.
func (s *Linear) Position(v float64) float64 {
	span := s.D1 - s.D0
	if span == 0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/span*(s.R1-s.R0)
}

// Invert maps a pixel coordinate back to the domain.
// For a zero-span domain it returns D0.
func (s *Linear) Invert(px float64) float64 {
	rspan := s.R1 - s.R0
	if s.D1 == s.D0 || rspan == 0 {
		return s.D0
	}
	return s.D0 + (px-s.R0)/rspan*(s.D1-s.D0)
}

// Clamp maps v to a pixel coordinate inside the range. If v lies outside
// the domain, or is NaN, the nearest domain edge is used and a
// *DomainError is returned together with the clamped position.
func (s *Linear) Clamp(v float64) (float64, error) {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case math.IsNaN(v):
		return s.Position(lo), &DomainError{Scale: "linear", Value: v}
	case v < lo:
		return s.Position(lo), &DomainError{Scale: "linear", Value: v}
	case v > hi:
		return s.Position(hi), &DomainError{Scale: "linear", Value: v}
	}
	return s.Position(v), nil
}

// Ticks returns at most n "nice" tick values inside the domain, in
// increasing order.
func (s *Linear) Ticks(n int) []float64 {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi || n < 1 {
		return []float64{lo}
	}
	major, _ := mscale.Linear{Min: lo, Max: hi}.Ticks(mscale.TickOptions{Max: n})
	return major
}

// Extent returns the smallest and largest finite values in xs.
// It returns ok == false if xs holds no finite value.
func Extent(xs []float64) (lo, hi float64, ok bool) {
	finite := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return 0, 0, false
	}
	lo, hi = stats.Bounds(finite)
	return lo, hi, true
}
