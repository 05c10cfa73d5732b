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


// Package chart provides animated bar charts, box plots, heatmaps, pie
// charts and scatterplots which draw into an image owned by the chart.
//
// A chart is created by name from a Registry, given a Container which
// reports the available pixel size.  Every call to Update binds a new data
// snapshot: marks whose key is new fade or grow in, marks whose key is
// still present move to their new position, and marks whose key has gone
// animate out.  The host drives the animation by calling Tick, or Run, and
// copies the picture to the screen with Draw.  Pointer positions are
// translated into marks with HitTest, Hover, Click and Brush.
package chart

import (
	"context"
	"image"
	"io"
	"log/slog"
	"time"

	"golang.org/x/image/draw"

	"seehuhn.de/go/chart/config"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/export"
	"seehuhn.de/go/chart/transition"
)

// Chart is one chart instance.
type Chart interface {
	// Name returns the registry name of the chart type.
	Name() string

	// State returns the lifecycle state.
	State() engine.State

	// Update binds new properties.  Fields which are nil keep their
	// previous values.  On error, the chart keeps its previous state.
	Update(p Props) error

	// Resize lays the chart out again for the current container size,
	// using the last properties.
	Resize() error

	// Export writes the current picture to w.
	Export(w io.Writer, f Format) error

	// ExportFile writes the current picture to a file.
	ExportFile(fname string, f Format) error

	HitTest(x, y float64) (Hit, bool)
	Hover(x, y float64) (Hit, bool)
	Click(x, y float64) (Hit, bool)
	Brush(x0, y0, x1, y1 float64) []Hit

	// Tick advances the animation and reports whether anything is still
	// moving.
	Tick() bool

	// Run calls Tick periodically until ctx is cancelled or the chart is
	// disposed.  If interval is zero, the configured tick interval is used.
	Run(ctx context.Context, interval time.Duration) error

	// Draw copies the current picture into the rectangle r of dst.
	Draw(dst draw.Image, r image.Rectangle)

	// Dispose stops all animations and releases the canvases.
	Dispose()
}

// Container is the host surface a chart is drawn into.
type Container interface {
	Size() (width, height int)
}

// FixedSize is a Container of constant size.
type FixedSize struct {
	Width, Height int
}

// Size implements the Container interface.
func (s FixedSize) Size() (width, height int) {
	return s.Width, s.Height
}

// Options configure a new chart.  The zero value is valid.
type Options struct {
	// Logger receives debug and warning messages.  If nil, slog.Default()
	// is used.
	Logger *slog.Logger

	// Config holds geometry and animation constants.  If nil,
	// config.Default() is used.
	Config *config.Config

	// Clock drives the transitions.  If nil, the system clock is used.
	Clock transition.Clock
}

// Hit describes the mark under the pointer.
type Hit struct {
	Key     string
	Data    any
	Tooltip string

	// X and Y give the centre of the mark.
	X, Y float64
}

// Handlers are the pointer callbacks of a chart.  They run synchronously,
// after all internal locks have been released, so a handler may call
// Update.
type Handlers struct {
	OnHover func(h Hit, ok bool)
	OnClick func(h Hit)
	OnBrush func(hits []Hit)
}

func (h *Handlers) merge(p Handlers) {
	if p.OnHover != nil {
		h.OnHover = p.OnHover
	}
	if p.OnClick != nil {
		h.OnClick = p.OnClick
	}
	if p.OnBrush != nil {
		h.OnBrush = p.OnBrush
	}
}

// Props are the chart properties passed to Update.  The concrete type
// must match the chart type: *BarProps, *BoxProps, *HeatmapProps,
// *PieProps or *ScatterProps.  Values are accepted as well as pointers.
type Props interface {
	isProps()
}

// Format is an export file format.
type Format = export.Format

// These are the supported export formats.  PDF can only be written with
// ExportFile.
const (
	PNG = export.PNG
	SVG = export.SVG
	PDF = export.PDF
)

// Ptr returns a pointer to v, for setting optional fields of props.
func Ptr[T any](v T) *T {
	return &v
}
