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

var boxCases = []Scenario{
	{
		Name:   "summaries",
		Chart:  chart.BoxName,
		Width:  300,
		Height: 200,
		Steps: []Step{
			Update{&chart.BoxProps{
				Caption: chart.Ptr("Response times"),
				Data: []chart.BoxSummary{
					{Group: "eu", LowerWhisker: 12, LowerQuartile: 20, Median: 26, UpperQuartile: 31, UpperWhisker: 44},
					{Group: "us", LowerWhisker: 18, LowerQuartile: 25, Median: 29, UpperQuartile: 40, UpperWhisker: 61},
					{Group: "asia", LowerWhisker: 30, LowerQuartile: 41, Median: 47, UpperQuartile: 55, UpperWhisker: 70},
				},
			}},
			Settle,
		},
	},
	{
		Name:   "samples",
		Chart:  chart.BoxName,
		Width:  300,
		Height: 200,
		Steps: []Step{
			Update{&chart.BoxProps{
				Samples: []chart.BoxSample{
					{Group: "control", Values: []float64{4.1, 5.0, 5.2, 5.3, 5.9, 6.4, 6.8, 7.0, 12.5}},
					{Group: "treated", Values: []float64{2.2, 2.9, 3.1, 3.3, 3.8, 4.0, 4.7}},
				},
			}},
			Settle,
		},
	},
	{
		Name:   "domain_override",
		Chart:  chart.BoxName,
		Width:  300,
		Height: 200,
		Steps: []Step{
			Update{&chart.BoxProps{
				Data: []chart.BoxSummary{
					{Group: "a", LowerWhisker: 2, LowerQuartile: 4, Median: 5, UpperQuartile: 6, UpperWhisker: 8},
				},
				Min: chart.Ptr(0.0),
				Max: chart.Ptr(20.0),
			}},
			Settle,
		},
	},
	{
		Name:   "rescale_midway",
		Chart:  chart.BoxName,
		Width:  300,
		Height: 200,
		Steps: []Step{
			Update{&chart.BoxProps{
				Data: []chart.BoxSummary{
					{Group: "a", LowerWhisker: 2, LowerQuartile: 4, Median: 5, UpperQuartile: 6, UpperWhisker: 8},
					{Group: "b", LowerWhisker: 1, LowerQuartile: 3, Median: 4, UpperQuartile: 7, UpperWhisker: 9},
				},
			}},
			Settle,
			Update{&chart.BoxProps{Max: chart.Ptr(18.0)}},
			Advance{250 * time.Millisecond},
		},
	},
}
