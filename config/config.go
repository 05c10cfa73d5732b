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


// Package config holds the geometry and animation constants of the charts.
//
// The defaults reproduce the classic look.  A configuration file in YAML
// or TOML format may override any subset of the values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/chart/scale"
)

// Config collects the tunable constants of all chart types.
type Config struct {
	Animation Animation `yaml:"animation" toml:"animation"`
	Text      Text      `yaml:"text" toml:"text"`
	Bar       Bar       `yaml:"bar" toml:"bar"`
	Box       Box       `yaml:"box" toml:"box"`
	Heatmap   Heatmap   `yaml:"heatmap" toml:"heatmap"`
	Pie       Pie       `yaml:"pie" toml:"pie"`
	Scatter   Scatter   `yaml:"scatter" toml:"scatter"`
}

// Animation configures transitions.
type Animation struct {
	Duration Duration `yaml:"duration" toml:"duration"`

	// Stagger delays the transition of the i-th mark by i*Stagger.
	Stagger Duration `yaml:"stagger" toml:"stagger"`

	// TickInterval is the frame period used by Run.
	TickInterval Duration `yaml:"tick_interval" toml:"tick_interval"`
}

// Text configures labels.
type Text struct {
	FontSize    float64 `yaml:"font_size" toml:"font_size"`
	MinFontSize float64 `yaml:"min_font_size" toml:"min_font_size"`
	TitleSize   float64 `yaml:"title_size" toml:"title_size"`
}

// Bar configures the bar chart.
type Bar struct {
	InnerPadding float64 `yaml:"inner_padding" toml:"inner_padding"`
	OuterPadding float64 `yaml:"outer_padding" toml:"outer_padding"`
	GroupPadding float64 `yaml:"group_padding" toml:"group_padding"`

	// MarginRatio is the plot margin as a fraction of the chart width.
	MarginRatio float64 `yaml:"margin_ratio" toml:"margin_ratio"`
	Palette     string  `yaml:"palette" toml:"palette"`
	Ticks       int     `yaml:"ticks" toml:"ticks"`
}

// Box configures the box plot.
type Box struct {
	InnerPadding float64 `yaml:"inner_padding" toml:"inner_padding"`
	OuterPadding float64 `yaml:"outer_padding" toml:"outer_padding"`

	// WhiskerRatio is the inset of the whisker ends from the box
	// edges, as a fraction of the box width.
	WhiskerRatio float64  `yaml:"whisker_ratio" toml:"whisker_ratio"`
	Duration     Duration `yaml:"duration" toml:"duration"`
	MarginRatio  float64  `yaml:"margin_ratio" toml:"margin_ratio"`
	Palette      string   `yaml:"palette" toml:"palette"`
	Ticks        int      `yaml:"ticks" toml:"ticks"`
}

// Heatmap configures the heatmap.
type Heatmap struct {
	Palette          string  `yaml:"palette" toml:"palette"`
	DivergingPalette string  `yaml:"diverging_palette" toml:"diverging_palette"`
	Padding          float64 `yaml:"padding" toml:"padding"`
	Margin           float64 `yaml:"margin" toml:"margin"`
}

// Pie configures the pie chart.
type Pie struct {
	// HoleRatio is the radius of the empty centre as a fraction of the
	// outer radius.
	HoleRatio float64 `yaml:"hole_ratio" toml:"hole_ratio"`

	// RingGap is the gap between concentric rings, in pixels.
	RingGap     float64 `yaml:"ring_gap" toml:"ring_gap"`
	MarginRatio float64 `yaml:"margin_ratio" toml:"margin_ratio"`
	Palette     string  `yaml:"palette" toml:"palette"`
}

// Scatter configures the scatterplot.
type Scatter struct {
	Radius    float64 `yaml:"radius" toml:"radius"`
	MaxRadius float64 `yaml:"max_radius" toml:"max_radius"`

	// HitRadius is the search radius of the nearest-point fallback.
	HitRadius float64 `yaml:"hit_radius" toml:"hit_radius"`
	Margin    float64 `yaml:"margin" toml:"margin"`
	Palette   string  `yaml:"palette" toml:"palette"`
	Ticks     int     `yaml:"ticks" toml:"ticks"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Animation: Animation{
			Duration:     Duration(750 * time.Millisecond),
			Stagger:      0,
			TickInterval: Duration(time.Second / 60),
		},
		Text: Text{
			FontSize:    13,
			MinFontSize: 7,
			TitleSize:   16,
		},
		Bar: Bar{
			InnerPadding: 0.1,
			OuterPadding: 0.05,
			GroupPadding: 0.05,
			MarginRatio:  1.0 / 15,
			Palette:      "Set3",
			Ticks:        5,
		},
		Box: Box{
			InnerPadding: 0.5,
			OuterPadding: 0.5,
			WhiskerRatio: 1.0 / 3,
			Duration:     Duration(500 * time.Millisecond),
			MarginRatio:  0.1,
			Palette:      "Set3",
			Ticks:        5,
		},
		Heatmap: Heatmap{
			Palette:          "Blues",
			DivergingPalette: "RdBu",
			Padding:          0.02,
			Margin:           30,
		},
		Pie: Pie{
			HoleRatio:   0,
			RingGap:     1,
			MarginRatio: 0.05,
			Palette:     "Set3",
		},
		Scatter: Scatter{
			Radius:    3,
			MaxRadius: 12,
			HitRadius: 8,
			Margin:    40,
			Palette:   "Set1",
			Ticks:     5,
		},
	}
}

// Load reads a configuration file.  The format is chosen by the file name
// extension: ".yaml" and ".yml" for YAML, ".toml" for TOML.  Values
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ErrFormat is returned for unsupported configuration formats.
var ErrFormat = errors.New("unsupported configuration format")

// Parse decodes a configuration in the format given by ext, which is a
// file name extension such as ".toml".
func Parse(data []byte, ext string) (*Config, error) {
	c := Default()
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(c)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrFormat)
	}
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that all values are in range and all palette names are
// known.
func (c *Config) Validate() error {
	var errs []error
	ratio := func(name string, v float64) {
		if !(v >= 0 && v < 1) {
			errs = append(errs, fmt.Errorf("%s: %g not in [0, 1)", name, v))
		}
	}
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s: %g must be positive", name, v))
		}
	}
	palette := func(name, v string) {
		if _, err := scale.Scheme(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if c.Animation.Duration < 0 || c.Animation.Stagger < 0 {
		errs = append(errs, errors.New("animation: negative duration"))
	}
	if c.Animation.TickInterval <= 0 {
		errs = append(errs, errors.New("animation.tick_interval must be positive"))
	}
	positive("text.font_size", c.Text.FontSize)
	positive("text.min_font_size", c.Text.MinFontSize)
	positive("text.title_size", c.Text.TitleSize)

	ratio("bar.inner_padding", c.Bar.InnerPadding)
	ratio("bar.outer_padding", c.Bar.OuterPadding)
	ratio("bar.group_padding", c.Bar.GroupPadding)
	ratio("bar.margin_ratio", c.Bar.MarginRatio)
	palette("bar.palette", c.Bar.Palette)

	ratio("box.inner_padding", c.Box.InnerPadding)
	ratio("box.outer_padding", c.Box.OuterPadding)
	ratio("box.margin_ratio", c.Box.MarginRatio)
	positive("box.whisker_ratio", c.Box.WhiskerRatio)
	if c.Box.Duration < 0 {
		errs = append(errs, errors.New("box.duration is negative"))
	}
	palette("box.palette", c.Box.Palette)

	ratio("heatmap.padding", c.Heatmap.Padding)
	palette("heatmap.palette", c.Heatmap.Palette)
	palette("heatmap.diverging_palette", c.Heatmap.DivergingPalette)

	ratio("pie.hole_ratio", c.Pie.HoleRatio)
	ratio("pie.margin_ratio", c.Pie.MarginRatio)
	palette("pie.palette", c.Pie.Palette)

	positive("scatter.radius", c.Scatter.Radius)
	positive("scatter.hit_radius", c.Scatter.HitRadius)
	palette("scatter.palette", c.Scatter.Palette)

	return errors.Join(errs...)
}

// Duration is a time.Duration which is written as a string such as
// "750ms" in configuration files.
type Duration time.Duration

// D returns d as a time.Duration.
func (d Duration) D() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}
