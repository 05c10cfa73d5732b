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
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/hittest"
	"seehuhn.de/go/chart/scale"
)

// BarName is the registry name of the bar chart.
const BarName = "barplot"

// BarDatum is one bar of a series.
type BarDatum struct {
	Category string
	Y        float64
}

// Series is a named set of bars, at most one per category.
type Series struct {
	Name string
	Data []BarDatum
}

// BarValue is the Data of a bar in a Hit.
type BarValue struct {
	Category string
	Series   string
	Y        float64
}

// BarProps are the properties of a bar chart.
type BarProps struct {
	Title *string

	// Categories gives the order of the bars along the x axis.
	Categories []string

	// Series are drawn side by side within each category, in order.
	Series []Series

	Handlers
}

func (BarProps) isProps() {}

type barState struct {
	title      string
	categories []string
	series     []Series
	Handlers
}

func (s *barState) merge(p *BarProps) {
	if p.Title != nil {
		s.title = *p.Title
	}
	if p.Categories != nil {
		s.categories = slices.Clone(p.Categories)
	}
	if p.Series != nil {
		s.series = slices.Clone(p.Series)
	}
	s.Handlers.merge(p.Handlers)
}

// BarChart draws grouped vertical bars.  The bars of each category are
// placed next to each other, one per series, and coloured by series.
type BarChart struct {
	*base
	state barState
}

var _ Chart = (*BarChart)(nil)

// NewBarChart returns a bar chart drawing into c.
func NewBarChart(c Container, opts Options) (*BarChart, error) {
	b, err := newBase(BarName, c, opts)
	if err != nil {
		return nil, err
	}
	chart := &BarChart{base: b}
	b.v = chart
	return chart, nil
}

func (c *BarChart) handlers() Handlers {
	return c.state.Handlers
}

func (c *BarChart) prepare(p Props, width, height int) (*plan, error) {
	next := c.state
	if p != nil {
		bp, err := props[BarProps](c.name, p)
		if err != nil {
			return nil, err
		}
		next.merge(bp)
	}
	pl, err := c.layout(&next, width, height)
	if err != nil {
		return nil, err
	}
	pl.commit = func() { c.state = next }
	return pl, nil
}

func barKey(keys ...string) string {
	return strings.Join(keys, "/")
}

func (c *BarChart) layout(s *barState, width, height int) (*plan, error) {
	cfg := &c.cfg.Bar
	a := inset(width, height, float64(width)*cfg.MarginRatio)
	ov := &overlay{fontSize: c.cfg.Text.FontSize, minSize: c.cfg.Text.MinFontSize}
	ov.title(s.title, c.cfg.Text.TitleSize, a)
	pl := &plan{frame: engine.Frame{Duration: c.cfg.Animation.Duration.D()}}

	if len(s.categories) == 0 {
		pl.empty = true
		pl.frame.Overlay = &ov.Overlay
		return pl, nil
	}

	x, err := scale.NewBand(s.categories, a.Left, a.Right, cfg.InnerPadding, cfg.OuterPadding)
	if err != nil {
		return nil, err
	}
	groups := make([]string, len(s.series))
	var values []float64
	for i, ser := range s.series {
		groups[i] = ser.Name
		for _, d := range ser.Data {
			values = append(values, d.Y)
		}
	}
	sub, err := scale.NewBand(groups, 0, x.Bandwidth(), cfg.GroupPadding, 0)
	if err != nil {
		return nil, err
	}
	colors, err := scale.Scheme(cfg.Palette)
	if err != nil {
		return nil, err
	}
	color := scale.NewOrdinal(groups, colors)

	// The value axis always includes zero.
	lo, hi, ok := scale.Extent(values)
	lo, hi = min(lo, 0), max(hi, 0)
	if !ok || lo == hi {
		hi = lo + 1
	}
	y := scale.NewLinear(lo, hi, a.Bottom, a.Top)
	baseline := y.Position(0)

	var marks []engine.Mark
	for _, ser := range s.series {
		xs, err := sub.Position(ser.Name)
		if err != nil {
			continue
		}
		for _, d := range ser.Data {
			x0, err := x.Position(d.Category)
			if err != nil {
				c.log.Warn("bar not drawn", "series", ser.Name, "error", err)
				continue
			}
			py, err := y.Clamp(d.Y)
			if err != nil {
				c.log.Debug("bar clamped", "series", ser.Name, "category", d.Category, "error", err)
			}
			target := element.Attrs{
				X:       x0 + xs,
				Y:       min(py, baseline),
				W:       sub.Bandwidth(),
				H:       max(py, baseline) - min(py, baseline),
				Fill:    color.Map(ser.Name),
				Opacity: 1,
			}
			birth := target
			birth.Y, birth.H = baseline, 0
			marks = append(marks, engine.Mark{
				Key:     barKey(d.Category, ser.Name),
				Shape:   element.Rect,
				Attrs:   target,
				Birth:   &birth,
				Data:    BarValue{Category: d.Category, Series: ser.Name, Y: d.Y},
				Tooltip: fmt.Sprintf("%s, %s: %g", d.Category, ser.Name, d.Y),
			})
		}
	}
	c.stagger(marks)

	ov.valueAxis(y, cfg.Ticks, a)
	ov.bandAxis(x, a)

	pl.frame.Marks = marks
	pl.frame.Overlay = &ov.Overlay
	pl.frame.Death = func(e *element.Element) element.Attrs {
		d := e.Attrs
		d.Y, d.H = baseline, 0
		return d
	}
	if sub.Len() > 0 {
		pl.frame.Locator = &hittest.BandLocator{
			X:       x,
			Sub:     sub,
			Key:     barKey,
			Find:    c.eng.Lookup,
			Bounded: true,
		}
	}
	return pl, nil
}
