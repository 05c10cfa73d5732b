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
	"fmt"
	"math"
	"slices"
)

// Band maps an ordered set of keys to evenly spaced bands inside a pixel
// range. The order of the domain is the visual order; keys are never
// sorted.
//
// The layout follows the usual band model: the range is divided into
// steps, each step holds one band of width Bandwidth() followed by an
// inner gap, and the remaining space is split evenly between the two ends.
type Band struct {
	domain []string
	index  map[string]int

	lo, hi     float64
	inner      float64 // inner padding, fraction of a step
	outer      float64 // outer padding, fraction of a step
	step       float64
	bandwidth  float64
	start      float64 // pixel position of the first band
	descending bool    // hi < lo
}

// NewBand returns a band scale for the given domain and pixel range
// [lo, hi]. innerPad and outerPad are fractions of a step; innerPad is
// clamped to [0, 1] and outerPad to [0, ∞).
//
// Duplicate keys in the domain are an error. An empty domain is allowed;
// such a scale has zero bandwidth and every lookup fails.
func NewBand(domain []string, lo, hi, innerPad, outerPad float64) (*Band, error) {
	index := make(map[string]int, len(domain))
	for i, key := range domain {
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("band scale: duplicate domain key %q", key)
		}
		index[key] = i
	}

	innerPad = min(max(innerPad, 0), 1)
	outerPad = max(outerPad, 0)
	if math.IsNaN(innerPad) {
		innerPad = 0
	}
	if math.IsNaN(outerPad) {
		outerPad = 0
	}

	b := &Band{
		domain: slices.Clone(domain),
		index:  index,
		lo:     lo,
		hi:     hi,
		inner:  innerPad,
		outer:  outerPad,
	}
	b.rescale()
	return b, nil
}

// rescale computes step, bandwidth and start from the domain and range.
func (b *Band) rescale() {
	n := float64(len(b.domain))
	lo, hi := b.lo, b.hi
	b.descending = hi < lo
	if b.descending {
		lo, hi = hi, lo
	}
	span := hi - lo

	if n == 0 {
		b.step, b.bandwidth, b.start = 0, 0, lo
		return
	}

	// The denominator is at least 1, so a single key with full inner
	// padding never divides by zero.
	b.step = span / max(1, n-b.inner+2*b.outer)
	b.bandwidth = b.step * (1 - b.inner)
	b.start = lo + (span-b.step*(n-b.inner))/2
}

// Domain returns a copy of the domain in visual order.
func (b *Band) Domain() []string {
	return slices.Clone(b.domain)
}

// Len returns the number of keys in the domain.
func (b *Band) Len() int {
	return len(b.domain)
}

// Range returns the pixel range the scale was constructed with.
func (b *Band) Range() (lo, hi float64) {
	return b.lo, b.hi
}

// Index returns the position of key in the domain.
func (b *Band) Index(key string) (int, bool) {
	i, ok := b.index[key]
	return i, ok
}

// Position returns the pixel coordinate of the start of the band for key.
// For descending ranges the bands are laid out from hi towards lo, and the
// returned coordinate is still the smaller edge of the band.
func (b *Band) Position(key string) (float64, error) {
	i, ok := b.index[key]
	if !ok {
		return 0, &DomainError{Scale: "band", Key: key}
	}
	if b.descending {
		i = len(b.domain) - 1 - i
	}
	return b.start + float64(i)*b.step, nil
}

// Center returns the pixel coordinate of the middle of the band for key.
func (b *Band) Center(key string) (float64, error) {
	x, err := b.Position(key)
	if err != nil {
		return 0, err
	}
	return x + b.bandwidth/2, nil
}

// Bandwidth returns the width of each band in pixels.
func (b *Band) Bandwidth() float64 {
	return b.bandwidth
}

// Step returns the distance between the starts of adjacent bands.
func (b *Band) Step() float64 {
	return b.step
}

// Outer returns the actual padding in pixels before the first band, which
// equals the padding after the last band.
func (b *Band) Outer() float64 {
	return b.start - min(b.lo, b.hi)
}

// Invert returns the key of the band containing the pixel coordinate px.
// Coordinates in the padding between or around bands return false.
func (b *Band) Invert(px float64) (string, bool) {
	if len(b.domain) == 0 || b.step <= 0 || math.IsNaN(px) {
		return "", false
	}
	rel := px - b.start
	if rel < 0 {
		return "", false
	}
	i := int(math.Floor(rel / b.step))
	if i >= len(b.domain) {
		return "", false
	}
	if rel-float64(i)*b.step > b.bandwidth {
		return "", false
	}
	if b.descending {
		i = len(b.domain) - 1 - i
	}
	return b.domain[i], true
}
