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


package testcases

import (
	"math"
	"strconv"
	"time"

	"seehuhn.de/go/chart"
)

// spiral returns n points on an Archimedean spiral, in three groups.
func spiral(n int) []chart.ScatterPoint {
	res := make([]chart.ScatterPoint, n)
	for i := range res {
		t := float64(i) / float64(n) * 6 * math.Pi
		res[i] = chart.ScatterPoint{
			Key:   "p" + strconv.Itoa(i),
			X:     t * math.Cos(t),
			Y:     t * math.Sin(t),
			Group: "g" + strconv.Itoa(i%3),
		}
	}
	return res
}

var scatterCases = []Scenario{
	{
		Name:   "spiral",
		Chart:  chart.ScatterName,
		Width:  300,
		Height: 300,
		Steps: []Step{
			Update{&chart.ScatterProps{Title: chart.Ptr("Spiral"), Points: spiral(200)}},
			Settle,
		},
	},
	{
		Name:   "sizes",
		Chart:  chart.ScatterName,
		Width:  240,
		Height: 200,
		Steps: []Step{
			Update{&chart.ScatterProps{
				Points: []chart.ScatterPoint{
					{X: 1, Y: 1, Size: 1},
					{X: 2, Y: 3, Size: 4},
					{X: 3, Y: 2, Size: 9},
					{X: 4, Y: 5, Size: 16},
				},
				XDomain: &[2]float64{0, 5},
				YDomain: &[2]float64{0, 6},
			}},
			Settle,
		},
	},
	{
		Name:   "clamped",
		Chart:  chart.ScatterName,
		Width:  180,
		Height: 180,
		Steps: []Step{
			Update{&chart.ScatterProps{
				Points: []chart.ScatterPoint{
					{X: 50, Y: 50}, {X: -20, Y: 50}, {X: 50, Y: 130},
				},
				XDomain: &[2]float64{0, 100},
				YDomain: &[2]float64{0, 100},
			}},
			Settle,
			Click{X: 90, Y: 90},
		},
	},
	{
		Name:   "filter_midway",
		Chart:  chart.ScatterName,
		Width:  300,
		Height: 300,
		Steps: []Step{
			Update{&chart.ScatterProps{Points: spiral(60)}},
			Settle,
			Update{&chart.ScatterProps{Points: spiral(60)[:30]}},
			Advance{375 * time.Millisecond},
		},
	},
}
