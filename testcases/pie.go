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
	"time"

	"seehuhn.de/go/chart"
)

var pieCases = []Scenario{
	{
		Name:   "single",
		Chart:  chart.PieName,
		Width:  200,
		Height: 200,
		Steps: []Step{
			Update{&chart.PieProps{
				Caption: chart.Ptr("Share"),
				Values: [][]chart.PieSlice{{
					{Group: "a", Value: 1}, {Group: "b", Value: 3}, {Group: "c", Value: 2},
				}},
			}},
			Settle,
			Click{X: 100 + 45/math.Sqrt2, Y: 100 - 45/math.Sqrt2},
		},
	},
	{
		Name:   "rings",
		Chart:  chart.PieName,
		Width:  240,
		Height: 200,
		Steps: []Step{
			Update{&chart.PieProps{
				Values: [][]chart.PieSlice{
					{{Group: "a", Value: 4}, {Group: "b", Value: 2}, {Group: "c", Value: 1}},
					{{Group: "a", Value: 1}, {Group: "b", Value: 1}},
					{{Group: "c", Value: 5}, {Group: "d", Value: 1}},
				},
			}},
			Settle,
		},
	},
	{
		Name:   "growing",
		Chart:  chart.PieName,
		Width:  200,
		Height: 200,
		Steps: []Step{
			Update{&chart.PieProps{
				Values: [][]chart.PieSlice{{{Group: "a", Value: 1}, {Group: "b", Value: 1}}},
			}},
			Advance{375 * time.Millisecond},
		},
	},
}
