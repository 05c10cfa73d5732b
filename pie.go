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
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/scale"
)

// PieName is the registry name of the pie chart.
const PieName = "piechart"

// PieSlice is one slice of a ring.
type PieSlice struct {
	Group string
	Value float64
}

// PieValue is the Data of a slice in a Hit.
type PieValue struct {
	Ring  int
	Group string
	Value float64
}

// PieProps are the properties of a pie chart.
type PieProps struct {
	Caption *string

	// Values holds one set of slices per ring, from the outside in.
	// Within a ring the group names must be unique.
	Values [][]PieSlice

	Handlers
}

func (PieProps) isProps() {}

type pieState struct {
	caption string
	values  [][]PieSlice
	Handlers
}

func (s *pieState) merge(p *PieProps) {
	if p.Caption != nil {
		s.caption = *p.Caption
	}
	if p.Values != nil {
		s.values = make([][]PieSlice, len(p.Values))
		for i, ring := range p.Values {
			s.values[i] = slices.Clone(ring)
		}
	}
	s.Handlers.merge(p.Handlers)
}

// PieChart draws concentric rings of slices.  Slices are sorted by
// increasing value and run clockwise from twelve o'clock.
type PieChart struct {
	*base
	state pieState
}

var _ Chart = (*PieChart)(nil)

// NewPieChart returns a pie chart drawing into c.
func NewPieChart(c Container, opts Options) (*PieChart, error) {
	b, err := newBase(PieName, c, opts)
	if err != nil {
		return nil, err
	}
	chart := &PieChart{base: b}
	b.v = chart
	return chart, nil
}

func (c *PieChart) handlers() Handlers {
	return c.state.Handlers
}

func (c *PieChart) prepare(p Props, width, height int) (*plan, error) {
	next := c.state
	if p != nil {
		pp, err := props[PieProps](c.name, p)
		if err != nil {
			return nil, err
		}
		next.merge(pp)
	}
	pl, err := c.layout(&next, width, height)
	if err != nil {
		return nil, err
	}
	pl.commit = func() { c.state = next }
	return pl, nil
}

// sliceWeight is the share a value contributes to its ring.  Negative and
// NaN values get no share.
func sliceWeight(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func (c *PieChart) layout(s *pieState, width, height int) (*plan, error) {
	cfg := &c.cfg.Pie
	side := min(width, height)
	margin := float64(side) * cfg.MarginRatio
	a := inset(width, height, margin)
	ov := &overlay{fontSize: c.cfg.Text.FontSize, minSize: c.cfg.Text.MinFontSize}
	ov.title(s.caption, c.cfg.Text.TitleSize, a)
	pl := &plan{frame: engine.Frame{Duration: c.cfg.Animation.Duration.D()}}

	depth := len(s.values)
	if depth == 0 {
		pl.empty = true
		pl.frame.Overlay = &ov.Overlay
		return pl, nil
	}

	var groups []string
	seen := make(map[string]bool)
	for _, ring := range s.values {
		for _, sl := range ring {
			if !seen[sl.Group] {
				seen[sl.Group] = true
				groups = append(groups, sl.Group)
			}
		}
	}
	colors, err := scale.Scheme(cfg.Palette)
	if err != nil {
		return nil, err
	}
	color := scale.NewOrdinal(groups, colors)

	cx, cy := (a.Left+a.Right)/2, (a.Top+a.Bottom)/2
	maxR := max(min(a.Right-a.Left, a.Bottom-a.Top)/2, 0)
	thickness := maxR * (1 - cfg.HoleRatio) / float64(depth)

	var marks []engine.Mark
	for i, ring := range s.values {
		outer := maxR - float64(i)*thickness
		inner := max(outer-thickness+cfg.RingGap, 0)
		if i == depth-1 && cfg.HoleRatio == 0 {
			inner = 0
		}

		var total float64
		for _, sl := range ring {
			total += sliceWeight(sl.Value)
		}
		sorted := slices.Clone(ring)
		slices.SortStableFunc(sorted, func(p, q PieSlice) int {
			return cmp.Compare(sliceWeight(p.Value), sliceWeight(q.Value))
		})

		angle := 0.0
		for _, sl := range sorted {
			sweep := 0.0
			if total > 0 {
				sweep = 2 * math.Pi * sliceWeight(sl.Value) / total
			}
			target := element.Attrs{
				X: cx, Y: cy, R0: inner, R: outer,
				A0: angle, A1: angle + sweep,
				Fill: color.Map(sl.Group), Stroke: edgeColor, StrokeWidth: 1,
				Opacity: 1,
			}
			angle += sweep
			birth := target
			birth.A1 = birth.A0
			marks = append(marks, engine.Mark{
				Key:     fmt.Sprintf("%d/%s", i, sl.Group),
				Shape:   element.Arc,
				Attrs:   target,
				Birth:   &birth,
				Data:    PieValue{Ring: i, Group: sl.Group, Value: sl.Value},
				Tooltip: fmt.Sprintf("%s: %g", sl.Group, sl.Value),
			})
		}
	}
	c.stagger(marks)

	pl.frame.Marks = marks
	pl.frame.Overlay = &ov.Overlay
	pl.frame.Death = func(e *element.Element) element.Attrs {
		d := e.Attrs
		d.A1 = d.A0
		return d
	}
	pl.frame.Locator = c.colorLocator()
	return pl, nil
}
