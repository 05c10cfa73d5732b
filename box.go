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

	"github.com/aclements/go-moremath/stats"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/hittest"
	"seehuhn.de/go/chart/scale"
)

// BoxName is the registry name of the box plot.
const BoxName = "boxplot"

// BoxSummary is the five number summary of one group.
type BoxSummary struct {
	Group         string
	LowerWhisker  float64
	LowerQuartile float64
	Median        float64
	UpperQuartile float64
	UpperWhisker  float64
}

// BoxSample is a group of raw observations.
type BoxSample struct {
	Group  string
	Values []float64
}

// Summarize computes the quartiles of the finite values in s.  The
// whiskers extend to the most extreme observations within 1.5 times the
// interquartile range of the box.  It returns false if s has no finite
// values.
func Summarize(s BoxSample) (BoxSummary, bool) {
	var xs []float64
	for _, v := range s.Values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return BoxSummary{}, false
	}
	slices.Sort(xs)
	sample := stats.Sample{Xs: xs, Sorted: true}
	q1 := sample.Percentile(0.25)
	q3 := sample.Percentile(0.75)
	iqr := q3 - q1

	lo := q1 - 1.5*iqr
	i, _ := slices.BinarySearch(xs, lo)
	hi := q3 + 1.5*iqr
	j, found := slices.BinarySearch(xs, hi)
	for found && j+1 < len(xs) && xs[j+1] == hi {
		j++
	}
	if !found {
		j--
	}
	return BoxSummary{
		Group:         s.Group,
		LowerWhisker:  min(xs[i], q1),
		LowerQuartile: q1,
		Median:        sample.Percentile(0.5),
		UpperQuartile: q3,
		UpperWhisker:  max(xs[j], q3),
	}, true
}

// BoxProps are the properties of a box plot.
type BoxProps struct {
	Caption *string

	// Data are precomputed summaries, one box per group.
	Data []BoxSummary

	// Samples, if not nil, replace Data by the summaries of the samples.
	Samples []BoxSample

	// Min and Max extend the value axis beyond the whiskers.
	Min, Max *float64

	Handlers
}

func (BoxProps) isProps() {}

type boxState struct {
	caption  string
	data     []BoxSummary
	min, max *float64
	Handlers
}

func (s *boxState) merge(p *BoxProps) {
	if p.Caption != nil {
		s.caption = *p.Caption
	}
	if p.Data != nil {
		s.data = slices.Clone(p.Data)
	}
	if p.Samples != nil {
		s.data = s.data[:0:0]
		for _, smp := range p.Samples {
			if sum, ok := Summarize(smp); ok {
				s.data = append(s.data, sum)
			}
		}
	}
	if p.Min != nil {
		s.min = Ptr(*p.Min)
	}
	if p.Max != nil {
		s.max = Ptr(*p.Max)
	}
	s.Handlers.merge(p.Handlers)
}

// BoxChart draws one box and whisker mark per group.
type BoxChart struct {
	*base
	state boxState
}

var _ Chart = (*BoxChart)(nil)

// NewBoxChart returns a box plot drawing into c.
func NewBoxChart(c Container, opts Options) (*BoxChart, error) {
	b, err := newBase(BoxName, c, opts)
	if err != nil {
		return nil, err
	}
	chart := &BoxChart{base: b}
	b.v = chart
	return chart, nil
}

func (c *BoxChart) handlers() Handlers {
	return c.state.Handlers
}

func (c *BoxChart) prepare(p Props, width, height int) (*plan, error) {
	next := c.state
	if p != nil {
		bp, err := props[BoxProps](c.name, p)
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

// The parts of a box, in paint order.
const (
	boxStem   = "stem"
	boxBox    = "box"
	boxUpper  = "upper"
	boxLower  = "lower"
	boxMedian = "median"
)

func (c *BoxChart) layout(s *boxState, width, height int) (*plan, error) {
	cfg := &c.cfg.Box
	a := inset(width, height, float64(width)*cfg.MarginRatio)
	ov := &overlay{fontSize: c.cfg.Text.FontSize, minSize: c.cfg.Text.MinFontSize}
	ov.title(s.caption, c.cfg.Text.TitleSize, a)
	pl := &plan{frame: engine.Frame{Duration: cfg.Duration.D()}}

	if len(s.data) == 0 {
		pl.empty = true
		pl.frame.Overlay = &ov.Overlay
		return pl, nil
	}

	groups := make([]string, len(s.data))
	var values []float64
	for i, d := range s.data {
		groups[i] = d.Group
		values = append(values, d.LowerWhisker, d.UpperWhisker)
	}
	if s.min != nil {
		values = append(values, *s.min)
	}
	if s.max != nil {
		values = append(values, *s.max)
	}
	x, err := scale.NewBand(groups, a.Left, a.Right, cfg.InnerPadding, cfg.OuterPadding)
	if err != nil {
		return nil, err
	}
	lo, hi, ok := scale.Extent(values)
	if !ok {
		pl.empty = true
		pl.frame.Overlay = &ov.Overlay
		return pl, nil
	}
	y := scale.NewLinear(lo, hi, a.Bottom, a.Top)
	colors, err := scale.Scheme(cfg.Palette)
	if err != nil {
		return nil, err
	}
	color := scale.NewOrdinal(groups, colors)

	bw := x.Bandwidth()
	wr := min(cfg.WhiskerRatio, 0.5)
	var marks []engine.Mark
	for _, d := range s.data {
		x0, err := x.Position(d.Group)
		if err != nil {
			c.log.Warn("box not drawn", "error", err)
			continue
		}
		pos := func(v float64) float64 {
			py, err := y.Clamp(v)
			if err != nil {
				c.log.Debug("box value clamped", "group", d.Group, "error", err)
			}
			return py
		}
		uw, uq, med, lq, lw := pos(d.UpperWhisker), pos(d.UpperQuartile), pos(d.Median), pos(d.LowerQuartile), pos(d.LowerWhisker)
		tip := fmt.Sprintf("%s: median %g, quartiles %g to %g, whiskers %g to %g",
			d.Group, d.Median, d.LowerQuartile, d.UpperQuartile, d.LowerWhisker, d.UpperWhisker)

		line := func(part string, x1, y1, x2, y2 float64) engine.Mark {
			target := element.Attrs{
				X: x1, Y: y1, X2: x2, Y2: y2,
				Stroke: axisColor, StrokeWidth: 1, Opacity: 1,
			}
			return engine.Mark{
				Key: barKey(d.Group, part), Shape: element.Line,
				Attrs: target, Birth: &target, Data: d, Tooltip: tip,
			}
		}
		box := element.Attrs{
			X: x0, Y: min(uq, lq), W: bw, H: math.Abs(lq - uq),
			Fill: color.Map(d.Group), Stroke: axisColor, StrokeWidth: 1, Opacity: 1,
		}
		marks = append(marks,
			line(boxStem, x0+bw/2, uw, x0+bw/2, lw),
			engine.Mark{
				Key: barKey(d.Group, boxBox), Shape: element.Rect,
				Attrs: box, Birth: &box, Data: d, Tooltip: tip,
			},
			line(boxUpper, x0+bw*wr, uw, x0+bw*(1-wr), uw),
			line(boxLower, x0+bw*wr, lw, x0+bw*(1-wr), lw),
			line(boxMedian, x0, med, x0+bw, med),
		)
	}
	c.stagger(marks)

	ov.valueAxis(y, cfg.Ticks, a)
	ov.bandAxis(x, a)

	pl.frame.Marks = marks
	pl.frame.Overlay = &ov.Overlay
	pl.frame.Locator = &hittest.BandLocator{
		X: x,
		Key: func(keys ...string) string {
			return barKey(keys[0], boxBox)
		},
		Find: c.eng.Lookup,
	}
	return pl, nil
}

