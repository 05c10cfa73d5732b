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
	"time"

	"seehuhn.de/go/chart"
)

func sales(a, b float64) *chart.BarProps {
	return &chart.BarProps{
		Categories: []string{"A", "B"},
		Series: []chart.Series{{
			Name: "s1",
			Data: []chart.BarDatum{{Category: "A", Y: a}, {Category: "B", Y: b}},
		}},
	}
}

var barCases = []Scenario{
	{
		Name:   "two_bars",
		Chart:  chart.BarName,
		Width:  300,
		Height: 200,
		Steps:  []Step{Update{sales(10, 20)}, Settle},
	},
	{
		Name:   "update_midway",
		Chart:  chart.BarName,
		Width:  300,
		Height: 200,
		Steps: []Step{
			Update{sales(10, 20)},
			Settle,
			Update{sales(20, 20)},
			Advance{375 * time.Millisecond},
		},
	},
	{
		Name:   "grouped",
		Chart:  chart.BarName,
		Width:  400,
		Height: 250,
		Steps: []Step{
			Update{&chart.BarProps{
				Title:      chart.Ptr("Fruit harvest"),
				Categories: []string{"apples", "pears", "plums"},
				Series: []chart.Series{
					{Name: "2024", Data: []chart.BarDatum{
						{Category: "apples", Y: 12}, {Category: "pears", Y: 7}, {Category: "plums", Y: 3},
					}},
					{Name: "2025", Data: []chart.BarDatum{
						{Category: "apples", Y: 15}, {Category: "pears", Y: 4}, {Category: "plums", Y: 6},
					}},
					{Name: "2026", Data: []chart.BarDatum{
						{Category: "apples", Y: 9}, {Category: "plums", Y: 8},
					}},
				},
			}},
			Settle,
		},
	},
	{
		Name:   "negative",
		Chart:  chart.BarName,
		Width:  300,
		Height: 200,
		Steps:  []Step{Update{sales(-5, 15)}, Settle},
	},
	{
		Name:   "long_labels",
		Chart:  chart.BarName,
		Width:  200,
		Height: 150,
		Steps: []Step{
			Update{&chart.BarProps{
				Title:      chart.Ptr("A title which is far too long to fit above the plot"),
				Categories: []string{"a very long category name", "short"},
				Series: []chart.Series{{Name: "s", Data: []chart.BarDatum{
					{Category: "a very long category name", Y: 1e6},
					{Category: "short", Y: 2.5e6},
				}}},
			}},
			Settle,
		},
	},
	{
		Name:   "exit_midway",
		Chart:  chart.BarName,
		Width:  300,
		Height: 200,
		Steps: []Step{
			Update{sales(10, 20)},
			Settle,
			Update{&chart.BarProps{Categories: []string{"A"}}},
			Advance{375 * time.Millisecond},
		},
	},
	{
		Name:   "resized",
		Chart:  chart.BarName,
		Width:  300,
		Height: 200,
		Steps: []Step{
			Update{sales(10, 20)},
			Settle,
			Resize{Width: 200, Height: 300},
		},
	},
	{
		Name:   "click",
		Chart:  chart.BarName,
		Width:  300,
		Height: 200,
		Steps: []Step{
			Update{sales(10, 20)},
			Settle,
			Click{X: 85, Y: 150},
			Settle,
		},
	},
}
