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
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/hittest"
	"seehuhn.de/go/chart/scale"
)

// ScatterName is the registry name of the scatter plot.
const ScatterName = "scatterplot"

// ScatterPoint is one point of a scatter plot.
type ScatterPoint struct {
	// Key identifies the point across updates.  If empty, the index of
	// the point is used.
	Key string

	X, Y float64

	// Size scales the area of the marker.  Points with Size <= 0 use the
	// default radius.
	Size float64

	// Group selects the colour of the point.
	Group string

	// Label, if set, is used as the tooltip.
	Label string
}

// ScatterProps are the properties of a scatter plot.
type ScatterProps struct {
	Title *string

	Points []ScatterPoint

	// XDomain and YDomain fix the domains of the axes.  If nil, the
	// extent of the points is used.
	XDomain *[2]float64
	YDomain *[2]float64

	Handlers
}

func (ScatterProps) isProps() {}

type scatterState struct {
	title   string
	points  []ScatterPoint
	xDomain *[2]float64
	yDomain *[2]float64
	Handlers
}

func (s *scatterState) merge(p *ScatterProps) {
	if p.Title != nil {
		s.title = *p.Title
	}
	if p.Points != nil {
		s.points = slices.Clone(p.Points)
	}
	if p.XDomain != nil {
		d := *p.XDomain
		s.xDomain = &d
	}
	if p.YDomain != nil {
		d := *p.YDomain
		s.yDomain = &d
	}
	s.Handlers.merge(p.Handlers)
}

// Scatterplot draws one disc per point.  Hit-testing uses the hidden
// canvas, with a nearest point search as fallback for small markers.
type Scatterplot struct {
	*base
	state scatterState
}

var _ Chart = (*Scatterplot)(nil)

// NewScatterplot returns a scatter plot drawing into c.
func NewScatterplot(c Container, opts Options) (*Scatterplot, error) {
	b, err := newBase(ScatterName, c, opts)
	if err != nil {
		return nil, err
	}
	chart := &Scatterplot{base: b}
	b.v = chart
	return chart, nil
}

func (c *Scatterplot) handlers() Handlers {
	return c.state.Handlers
}

func (c *Scatterplot) prepare(p Props, width, height int) (*plan, error) {
	next := c.state
	if p != nil {
		sp, err := props[ScatterProps](c.name, p)
		if err != nil {
			return nil, err
		}
		next.merge(sp)
	}
	pl, err := c.layout(&next, width, height)
	if err != nil {
		return nil, err
	}
	pl.commit = func() { c.state = next }
	return pl, nil
}

// domain returns the fixed domain d, or the extent of xs.
func domain(d *[2]float64, xs []float64) (lo, hi float64, ok bool) {
	if d != nil {
		return d[0], d[1], true
	}
	return scale.Extent(xs)
}

func (c *Scatterplot) layout(s *scatterState, width, height int) (*plan, error) {
	cfg := &c.cfg.Scatter
	a := inset(width, height, cfg.Margin)
	ov := &overlay{fontSize: c.cfg.Text.FontSize, minSize: c.cfg.Text.MinFontSize}
	ov.title(s.title, c.cfg.Text.TitleSize, a)
	pl := &plan{frame: engine.Frame{Duration: c.cfg.Animation.Duration.D()}}

	xs := make([]float64, len(s.points))
	ys := make([]float64, len(s.points))
	var groups []string
	seen := make(map[string]bool)
	maxSize := 0.0
	for i, p := range s.points {
		xs[i], ys[i] = p.X, p.Y
		if !seen[p.Group] {
			seen[p.Group] = true
			groups = append(groups, p.Group)
		}
		if p.Size > maxSize && !math.IsInf(p.Size, 1) {
			maxSize = p.Size
		}
	}
	x0, x1, okX := domain(s.xDomain, xs)
	y0, y1, okY := domain(s.yDomain, ys)
	if !okX || !okY {
		pl.empty = true
		pl.frame.Overlay = &ov.Overlay
		return pl, nil
	}
	x := scale.NewLinear(x0, x1, a.Left, a.Right)
	y := scale.NewLinear(y0, y1, a.Bottom, a.Top)
	colors, err := scale.Scheme(cfg.Palette)
	if err != nil {
		return nil, err
	}
	color := scale.NewOrdinal(groups, colors)

	marks := make([]engine.Mark, 0, len(s.points))
	for i, p := range s.points {
		key := p.Key
		if key == "" {
			key = strconv.Itoa(i)
		}
		px, errX := x.Clamp(p.X)
		py, errY := y.Clamp(p.Y)
		if err := errors.Join(errX, errY); err != nil {
			c.log.Debug("point clamped", "key", key, "error", err)
		}
		r := cfg.Radius
		if p.Size > 0 && maxSize > 0 {
			r += (cfg.MaxRadius - cfg.Radius) * math.Sqrt(min(p.Size/maxSize, 1))
		}
		target := element.Attrs{
			X: px, Y: py, R: r,
			Fill: color.Map(p.Group), Opacity: 1,
		}
		birth := target
		birth.R = 0
		tip := p.Label
		if tip == "" {
			tip = fmt.Sprintf("(%g, %g)", p.X, p.Y)
		}
		marks = append(marks, engine.Mark{
			Key:     key,
			Shape:   element.Circle,
			Attrs:   target,
			Birth:   &birth,
			Data:    p,
			Tooltip: tip,
		})
	}
	c.stagger(marks)

	ov.valueAxis(y, cfg.Ticks, a)
	ov.linearAxis(x, cfg.Ticks, a)

	pl.frame.Marks = marks
	pl.frame.Overlay = &ov.Overlay
	pl.frame.Death = func(e *element.Element) element.Attrs {
		d := e.Attrs
		d.R = 0
		return d
	}
	pl.frame.Locator = hittest.First(
		c.colorLocator(),
		&hittest.NearestLocator{
			Elements: c.eng.Model,
			Radius:   cfg.HitRadius,
		},
	)
	return pl, nil
}
