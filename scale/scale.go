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

// Package scale maps data dimensions to pixel ranges and colours.
//
// Two positional scales are provided. A Band scale maps a discrete,
// ordered domain of keys to evenly spaced slots. A Linear scale maps a
// numeric interval to a pixel interval and can be inverted. Colour scales
// (Sequential and Ordinal) map values or keys to colours.
//
// All scales are pure: given the same construction arguments they return
// the same results, and none of them ever returns NaN or an infinite
// pixel position.
package scale

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every *DomainError.
var ErrDomain = errors.New("value outside scale domain")

// DomainError reports a key or value that lies outside the domain of a scale.
type DomainError struct {
	Scale string // "band" or "linear"
	Key   string // offending key (band scales)
	Value float64
}

func (e *DomainError) Error() string {
	if e.Scale == "band" {
		return fmt.Sprintf("band scale: key %q not in domain", e.Key)
	}
	return fmt.Sprintf("linear scale: value %g outside domain", e.Value)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
