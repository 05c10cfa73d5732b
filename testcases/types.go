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


// Package testcases holds named chart scenarios.  The tests replay every
// scenario, and the genref command writes reference images for them.
package testcases

import (
	"slices"
	"time"

	"seehuhn.de/go/chart"
)

// Scenario is a sequence of steps applied to a new chart.
type Scenario struct {
	Name   string // lowercase a-z and _ only
	Chart  string // registry name of the chart type
	Width  int    // initial container width in pixels
	Height int    // initial container height in pixels
	Steps  []Step
}

// Step is one action of a scenario.
type Step interface {
	isStep()
}

// Update binds new properties.
type Update struct {
	Props chart.Props
}

func (Update) isStep() {}

// Advance moves the animation clock forward and ticks the chart.
type Advance struct {
	D time.Duration
}

func (Advance) isStep() {}

// Settle runs all transitions to completion.
var Settle = Advance{D: time.Hour}

// Resize changes the container size and lays the chart out again.
type Resize struct {
	Width, Height int
}

func (Resize) isStep() {}

// Click clicks at a pointer position.  The step fails if there is no
// mark under the pointer.
type Click struct {
	X, Y float64
}

func (Click) isStep() {}

// Updates returns the props of the Update steps of sc, in order.  Hosts
// use them to step through a scenario in real time.
func (sc Scenario) Updates() []chart.Props {
	var res []chart.Props
	for _, step := range sc.Steps {
		if u, ok := step.(Update); ok {
			res = append(res, u.Props)
		}
	}
	return res
}

// Lookup returns the scenario with the given "category_name" name.
func Lookup(name string) (Scenario, bool) {
	for category, cases := range All {
		for _, sc := range cases {
			if category+"_"+sc.Name == name {
				return sc, true
			}
		}
	}
	return Scenario{}, false
}

// Names returns the names of all scenarios, in the form
// "category_name", sorted.
func Names() []string {
	var res []string
	for category, cases := range All {
		for _, sc := range cases {
			res = append(res, category+"_"+sc.Name)
		}
	}
	slices.Sort(res)
	return res
}
