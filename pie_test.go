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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With a 200x200 container the rings are centred at (100, 100) with
// outer radius 90.
func TestPieChart(t *testing.T) {
	opts, clock := testOptions(nil)
	c, err := NewPieChart(FixedSize{200, 200}, opts)
	require.NoError(t, err)

	var clicked []PieValue
	require.NoError(t, c.Update(&PieProps{
		Caption: Ptr("share"),
		Values:  [][]PieSlice{{{Group: "b", Value: 3}, {Group: "a", Value: 1}}},
		Handlers: Handlers{
			OnClick: func(h Hit) { clicked = append(clicked, h.Data.(PieValue)) },
		},
	}))

	// slices grow from their start angle
	got := attrs(t, c)
	assert.Equal(t, got["0/b"].A0, got["0/b"].A1)

	settle(c, clock)
	got = attrs(t, c)
	a, b := got["0/a"], got["0/b"]
	assert.Equal(t, 0.0, a.A0)
	assert.InDelta(t, math.Pi/2, a.A1, 1e-9)
	assert.InDelta(t, math.Pi/2, b.A0, 1e-9)
	assert.InDelta(t, 2*math.Pi, b.A1, 1e-9)
	assert.Equal(t, 90.0, a.R)
	assert.Equal(t, 0.0, a.R0)
	assert.NotEqual(t, a.Fill, b.Fill)

	// the centre of slice a, at angle π/4 and radius 45
	d := 45 / math.Sqrt2
	hit, ok := c.Click(100+d, 100-d)
	require.True(t, ok)
	assert.Equal(t, "0/a", hit.Key)
	assert.Equal(t, []PieValue{{Ring: 0, Group: "a", Value: 1}}, clicked)
	assert.Equal(t, "a: 1", hit.Tooltip)

	_, ok = c.Click(5, 5)
	assert.False(t, ok)
	assert.Len(t, clicked, 1)
}

func TestPieRings(t *testing.T) {
	opts, clock := testOptions(nil)
	c, err := NewPieChart(FixedSize{200, 200}, opts)
	require.NoError(t, err)
	require.NoError(t, c.Update(&PieProps{Values: [][]PieSlice{
		{{Group: "a", Value: 1}, {Group: "b", Value: 1}},
		{{Group: "a", Value: 2}, {Group: "c", Value: -5}},
	}}))
	settle(c, clock)

	got := attrs(t, c)
	require.Len(t, got, 4)
	assert.Equal(t, 90.0, got["0/a"].R)
	assert.Equal(t, 46.0, got["0/a"].R0)
	assert.Equal(t, 45.0, got["1/a"].R)
	assert.Equal(t, 0.0, got["1/a"].R0)
	assert.Equal(t, got["0/a"].Fill, got["1/a"].Fill)

	// equal values keep their order
	assert.Equal(t, 0.0, got["0/a"].A0)
	assert.InDelta(t, math.Pi, got["0/b"].A0, 1e-9)

	// negative values get an empty slice
	assert.Equal(t, got["1/c"].A0, got["1/c"].A1)
	assert.InDelta(t, 2*math.Pi, got["1/a"].A1-got["1/a"].A0, 1e-9)

	require.NoError(t, c.Update(&PieProps{Values: [][]PieSlice{{{Group: "b", Value: 2}}}}))
	settle(c, clock)
	got = attrs(t, c)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "0/b")
}

func TestPieDuplicateGroup(t *testing.T) {
	opts, _ := testOptions(nil)
	c, err := NewPieChart(FixedSize{200, 200}, opts)
	require.NoError(t, err)
	err = c.Update(&PieProps{Values: [][]PieSlice{{{Group: "a", Value: 1}, {Group: "a", Value: 2}}}})
	assert.Error(t, err)
	assert.Equal(t, 0, len(c.state.values))
}
