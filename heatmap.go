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
	"math"
	"slices"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/hittest"
	"seehuhn.de/go/chart/scale"
)

// HeatmapName is the registry name of the heatmap.
const HeatmapName = "heatmap"

// HeatmapCell is the Data of a heatmap cell in a Hit.
type HeatmapCell struct {
	Row, Col string
	Value    float64
}

// HeatmapProps are the properties of a heatmap.
type HeatmapProps struct {
	Title *string

	// Rows and Cols label the grid, from the top and from the left.
	Rows []string
	Cols []string

	// Values holds the cells in row-major order: the value of row i and
	// column j is Values[i*len(Cols)+j].  Missing and NaN values are
	// drawn in grey.
	Values []float64

	// ValueRange fixes the domain of the colour scale.  If nil, the
	// extent of the values is used.
	ValueRange *[2]float64

	// Diverging selects the diverging palette instead of the sequential
	// one.
	Diverging *bool

	Handlers
}

func (HeatmapProps) isProps() {}

type heatmapState struct {
	title      string
	rows, cols []string
	values     []float64
	valueRange *[2]float64
	diverging  bool
	Handlers
}

func (s *heatmapState) merge(p *HeatmapProps) {
	if p.Title != nil {
		s.title = *p.Title
	}
	if p.Rows != nil {
		s.rows = slices.Clone(p.Rows)
	}
	if p.Cols != nil {
		s.cols = slices.Clone(p.Cols)
	}
	if p.Values != nil {
		s.values = slices.Clone(p.Values)
	}
	if p.ValueRange != nil {
		r := *p.ValueRange
		s.valueRange = &r
	}
	if p.Diverging != nil {
		s.diverging = *p.Diverging
	}
	s.Handlers.merge(p.Handlers)
}

// value returns the cell of row i and column j.
func (s *heatmapState) value(i, j int) float64 {
	k := i*len(s.cols) + j
	if k >= len(s.values) {
		return math.NaN()
	}
	return s.values[k]
}

// Heatmap draws a grid of cells coloured by value.
type Heatmap struct {
	*base
	state heatmapState
}

var _ Chart = (*Heatmap)(nil)

// NewHeatmap returns a heatmap drawing into c.
func NewHeatmap(c Container, opts Options) (*Heatmap, error) {
	b, err := newBase(HeatmapName, c, opts)
	if err != nil {
		return nil, err
	}
	chart := &Heatmap{base: b}
	b.v = chart
	return chart, nil
}

func (c *Heatmap) handlers() Handlers {
	return c.state.Handlers
}

func (c *Heatmap) prepare(p Props, width, height int) (*plan, error) {
	next := c.state
	if p != nil {
		hp, err := props[HeatmapProps](c.name, p)
		if err != nil {
			return nil, err
		}
		next.merge(hp)
	}
	pl, err := c.layout(&next, width, height)
	if err != nil {
		return nil, err
	}
	pl.commit = func() { c.state = next }
	return pl, nil
}

func (c *Heatmap) layout(s *heatmapState, width, height int) (*plan, error) {
	cfg := &c.cfg.Heatmap
	a := inset(width, height, cfg.Margin)
	ov := &overlay{fontSize: c.cfg.Text.FontSize, minSize: c.cfg.Text.MinFontSize}
	ov.title(s.title, c.cfg.Text.TitleSize, a)
	pl := &plan{frame: engine.Frame{Duration: c.cfg.Animation.Duration.D()}}

	if len(s.rows) == 0 || len(s.cols) == 0 {
		pl.empty = true
		pl.frame.Overlay = &ov.Overlay
		return pl, nil
	}

	x, err := scale.NewBand(s.cols, a.Left, a.Right, cfg.Padding, 0)
	if err != nil {
		return nil, err
	}
	y, err := scale.NewBand(s.rows, a.Top, a.Bottom, cfg.Padding, 0)
	if err != nil {
		return nil, err
	}

	var lo, hi float64
	if s.valueRange != nil {
		lo, hi = s.valueRange[0], s.valueRange[1]
	} else {
		lo, hi, _ = scale.Extent(s.values)
	}
	palette := cfg.Palette
	if s.diverging {
		palette = cfg.DivergingPalette
	}
	color, err := scale.NewSequential(lo, hi, palette)
	if err != nil {
		return nil, err
	}

	marks := make([]engine.Mark, 0, len(s.rows)*len(s.cols))
	for i, row := range s.rows {
		py, _ := y.Position(row)
		for j, col := range s.cols {
			px, _ := x.Position(col)
			v := s.value(i, j)
			fill := scale.Unknown
			tip := fmt.Sprintf("%s, %s: no data", row, col)
			if !math.IsNaN(v) {
				fill = color.Map(v)
				tip = fmt.Sprintf("%s, %s: %g", row, col, v)
			}
			marks = append(marks, engine.Mark{
				Key:   barKey(col, row),
				Shape: element.Rect,
				Attrs: element.Attrs{
					X: px, Y: py, W: x.Bandwidth(), H: y.Bandwidth(),
					Fill: fill, Opacity: 1,
				},
				Data:    HeatmapCell{Row: row, Col: col, Value: v},
				Tooltip: tip,
			})
		}
	}
	c.stagger(marks)

	ov.bandLabels(y, a)
	ov.bandAxis(x, a)

	pl.frame.Marks = marks
	pl.frame.Overlay = &ov.Overlay
	pl.frame.Locator = &hittest.BandLocator{
		X:    x,
		Y:    y,
		Key:  barKey,
		Find: c.eng.Lookup,
	}
	return pl, nil
}
