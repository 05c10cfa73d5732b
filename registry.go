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
	"maps"
	"slices"
	"sync"
)

// Constructor creates a chart of one type.
type Constructor func(c Container, opts Options) (Chart, error)

// Registry maps chart type names to constructors.  A Registry cannot be
// changed after it has been created.
type Registry struct {
	ctors map[string]Constructor
}

// NewRegistry returns a registry with the given chart types.  The map is
// copied.
func NewRegistry(ctors map[string]Constructor) *Registry {
	return &Registry{ctors: maps.Clone(ctors)}
}

// DefaultRegistry returns the registry of the built-in chart types.
var DefaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(map[string]Constructor{
		BarName: func(c Container, opts Options) (Chart, error) {
			return NewBarChart(c, opts)
		},
		BoxName: func(c Container, opts Options) (Chart, error) {
			return NewBoxChart(c, opts)
		},
		HeatmapName: func(c Container, opts Options) (Chart, error) {
			return NewHeatmap(c, opts)
		},
		PieName: func(c Container, opts Options) (Chart, error) {
			return NewPieChart(c, opts)
		},
		ScatterName: func(c Container, opts Options) (Chart, error) {
			return NewScatterplot(c, opts)
		},
	})
})

// Names returns the registered chart types in alphabetical order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.ctors))
}

// New creates a chart of the named type.
func (r *Registry) New(name string, c Container, opts Options) (Chart, error) {
	if c == nil {
		return nil, &ConfigurationError{Op: "new " + name, Err: ErrInvalidContainer}
	}
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, &ConfigurationError{
			Op:  "new " + name,
			Err: fmt.Errorf("chart type %q: %w", name, ErrUnknownChartType),
		}
	}
	return ctor(c, opts)
}

// New creates a chart of the named type from the default registry.
func New(name string, c Container, opts Options) (Chart, error) {
	return DefaultRegistry().New(name, c, opts)
}
