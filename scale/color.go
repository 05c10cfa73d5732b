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
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"
)

// Unknown is the colour an Ordinal scale returns for keys outside its
// domain.
var Unknown = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}

// schemes lists the ColorBrewer schemes known by name, each at its
// largest number of levels.
var schemes = map[string][]color.NRGBA{
	"Blues":    toNRGBA(brewer.Blues_9),
	"Greens":   toNRGBA(brewer.Greens_9),
	"Greys":    toNRGBA(brewer.Greys_9),
	"Oranges":  toNRGBA(brewer.Oranges_9),
	"Purples":  toNRGBA(brewer.Purples_9),
	"Reds":     toNRGBA(brewer.Reds_9),
	"YlOrRd":   toNRGBA(brewer.YlOrRd_9),
	"RdBu":     toNRGBA(brewer.RdBu_11),
	"RdYlBu":   toNRGBA(brewer.RdYlBu_11),
	"PuOr":     toNRGBA(brewer.PuOr_11),
	"Spectral": toNRGBA(brewer.Spectral_11),
	"Set1":     toNRGBA(brewer.Set1_9),
	"Set2":     toNRGBA(brewer.Set2_8),
	"Set3":     toNRGBA(brewer.Set3_12),
	"Paired":   toNRGBA(brewer.Paired_12),
	"Dark2":    toNRGBA(brewer.Dark2_8),
	"Pastel1":  toNRGBA(brewer.Pastel1_9),
}

func toNRGBA[C color.Color](cs []C) []color.NRGBA {
	res := make([]color.NRGBA, len(cs))
	for i, c := range cs {
		res[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return res
}

// Scheme returns a copy of the named ColorBrewer scheme.
func Scheme(name string) ([]color.NRGBA, error) {
	cs, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown colour scheme %q", name)
	}
	return append([]color.NRGBA(nil), cs...), nil
}

// Sequential maps the numeric domain [D0, D1] onto a continuous palette.
// Values outside the domain use the nearest end of the palette.
type Sequential struct {
	D0, D1  float64
	Palette palette.Continuous
}

// NewSequential returns a sequential colour scale interpolating the named
// ColorBrewer scheme, for example "Blues" or the diverging "RdBu".
func NewSequential(d0, d1 float64, scheme string) (*Sequential, error) {
	cs, err := Scheme(scheme)
	if err != nil {
		return nil, err
	}
	g := palette.RGBGradient{Colors: make([]color.RGBA, len(cs))}
	for i, c := range cs {
		g.Colors[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return &Sequential{D0: d0, D1: d1, Palette: g}, nil
}

// NewSequentialRGB returns a sequential colour scale interpolating in RGB
// space between the two endpoint colours.
func NewSequentialRGB(d0, d1 float64, from, to color.NRGBA) *Sequential {
	return &Sequential{D0: d0, D1: d1, Palette: rgbSegment{from, to}}
}

// Map returns the colour for v.
func (s *Sequential) Map(v float64) color.NRGBA {
	t := 0.5
	if span := s.D1 - s.D0; span != 0 {
		t = (v - s.D0) / span
	}
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1)
	return color.NRGBAModel.Convert(s.Palette.Map(t)).(color.NRGBA)
}

// rgbSegment is a palette.Continuous interpolating linearly between two
// straight-alpha colours.
type rgbSegment struct {
	from, to color.NRGBA
}

func (g rgbSegment) Map(t float64) color.Color {
	return LerpRGB(g.from, g.to, t)
}

// LerpRGB interpolates between a and b channel by channel in RGB space.
// t is clamped to [0, 1].
func LerpRGB(a, b color.NRGBA, t float64) color.NRGBA {
	if math.IsNaN(t) {
		t = 0
	}
	t = min(max(t, 0), 1)
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// Ordinal maps the keys of a discrete domain onto a fixed palette. If the
// domain is longer than the palette, colours repeat.
type Ordinal struct {
	index   map[string]int
	palette []color.NRGBA
}

// NewOrdinal returns an ordinal colour scale. If a key occurs more than
// once in domain, its first position is used. An empty palette maps every
// key to Unknown.
func NewOrdinal(domain []string, colors []color.NRGBA) *Ordinal {
	index := make(map[string]int, len(domain))
	for _, key := range domain {
		if _, seen := index[key]; !seen {
			index[key] = len(index)
		}
	}
	return &Ordinal{
		index:   index,
		palette: append([]color.NRGBA(nil), colors...),
	}
}

// Map returns the colour for key.
func (o *Ordinal) Map(key string) color.NRGBA {
	i, ok := o.index[key]
	if !ok || len(o.palette) == 0 {
		return Unknown
	}
	return o.palette[i%len(o.palette)]
}
