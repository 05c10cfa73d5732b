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

	"seehuhn.de/go/chart"
)

// ramp returns rows*cols values increasing along the rows.
func ramp(rows, cols int) []float64 {
	res := make([]float64, rows*cols)
	for i := range rows {
		for j := range cols {
			res[i*cols+j] = float64(i + j)
		}
	}
	return res
}

func labels(prefix string, n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = prefix + string(rune('a'+i))
	}
	return res
}

var heatmapCases = []Scenario{
	{
		Name:   "sequential",
		Chart:  chart.HeatmapName,
		Width:  240,
		Height: 240,
		Steps: []Step{
			Update{&chart.HeatmapProps{
				Title:  chart.Ptr("Load"),
				Rows:   labels("r", 6),
				Cols:   labels("c", 6),
				Values: ramp(6, 6),
			}},
			Settle,
		},
	},
	{
		Name:   "diverging",
		Chart:  chart.HeatmapName,
		Width:  240,
		Height: 240,
		Steps: []Step{
			Update{&chart.HeatmapProps{
				Rows:       labels("r", 4),
				Cols:       labels("c", 5),
				Values:     []float64{-3, -2, -1, 0, 1, -2, -1, 0, 1, 2, -1, 0, 1, 2, 3, 0, 1, 2, 3, 4},
				ValueRange: &[2]float64{-4, 4},
				Diverging:  chart.Ptr(true),
			}},
			Settle,
		},
	},
	{
		Name:   "missing",
		Chart:  chart.HeatmapName,
		Width:  160,
		Height: 160,
		Steps: []Step{
			Update{&chart.HeatmapProps{
				Rows:   []string{"x", "y"},
				Cols:   []string{"p", "q", "r"},
				Values: []float64{1, math.NaN(), 3, 4},
			}},
			Settle,
		},
	},
	{
		Name:   "dense",
		Chart:  chart.HeatmapName,
		Width:  400,
		Height: 400,
		Steps: []Step{
			Update{&chart.HeatmapProps{
				Rows:   labels("", 20),
				Cols:   labels("", 20),
				Values: ramp(20, 20),
			}},
			Settle,
		},
	},
}
