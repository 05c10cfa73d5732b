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

	"seehuhn.de/go/chart/scale"
)

func grid() *HeatmapProps {
	return &HeatmapProps{
		Title:  Ptr("grid"),
		Rows:   []string{"r0", "r1"},
		Cols:   []string{"c0", "c1"},
		Values: []float64{1, 2, 3}, // the last cell is missing
	}
}

// With a 200x200 container the cells cover [30, 170] x [30, 170].
func TestHeatmap(t *testing.T) {
	opts, clock := testOptions(nil)
	c, err := NewHeatmap(FixedSize{200, 200}, opts)
	require.NoError(t, err)
	require.NoError(t, c.Update(grid()))
	settle(c, clock)

	blues, err := scale.NewSequential(1, 3, "Blues")
	require.NoError(t, err)
	got := attrs(t, c)
	require.Len(t, got, 4)
	assert.Equal(t, blues.Map(1), got["c0/r0"].Fill)
	assert.Equal(t, blues.Map(3), got["c0/r1"].Fill)
	assert.Equal(t, scale.Unknown, got["c1/r1"].Fill)
	assert.Less(t, got["c0/r0"].Y, got["c0/r1"].Y)
	assert.Less(t, got["c0/r0"].X, got["c1/r0"].X)

	hit, ok := c.HitTest(135, 65)
	require.True(t, ok)
	assert.Equal(t, "c1/r0", hit.Key)
	assert.Equal(t, HeatmapCell{Row: "r0", Col: "c1", Value: 2}, hit.Data)
	assert.Equal(t, "r0, c1: 2", hit.Tooltip)

	hit, ok = c.HitTest(135, 135)
	require.True(t, ok)
	assert.True(t, math.IsNaN(hit.Data.(HeatmapCell).Value))
	assert.Equal(t, "r1, c1: no data", hit.Tooltip)

	_, ok = c.HitTest(10, 10)
	assert.False(t, ok)
}

func TestHeatmapPalette(t *testing.T) {
	opts, clock := testOptions(nil)
	c, err := NewHeatmap(FixedSize{200, 200}, opts)
	require.NoError(t, err)
	require.NoError(t, c.Update(grid()))

	require.NoError(t, c.Update(&HeatmapProps{
		ValueRange: &[2]float64{-4, 4},
		Diverging:  Ptr(true),
	}))
	settle(c, clock)

	rdbu, err := scale.NewSequential(-4, 4, "RdBu")
	require.NoError(t, err)
	got := attrs(t, c)
	assert.Equal(t, rdbu.Map(2), got["c1/r0"].Fill)
	assert.Equal(t, rdbu.Map(3), got["c0/r1"].Fill)
}

func TestHeatmapErrors(t *testing.T) {
	opts, clock := testOptions(nil)
	c, err := NewHeatmap(FixedSize{200, 200}, opts)
	require.NoError(t, err)

	err = c.Update(&HeatmapProps{Rows: []string{"r"}})
	assert.ErrorIs(t, err, ErrNotInitialized)

	p := grid()
	p.Rows = []string{"r0", "r0"}
	assert.Error(t, c.Update(p))
	assert.Equal(t, 0, len(c.state.rows))

	// the grid shrinks: the cells of the dropped row leave
	require.NoError(t, c.Update(grid()))
	settle(c, clock)
	require.NoError(t, c.Update(&HeatmapProps{Rows: []string{"r1"}, Values: []float64{3, 4}}))
	got := attrs(t, c)
	assert.Contains(t, got, "c0/r1")
	assert.Contains(t, got, "c0/r0") // still fading out
	hit, ok := c.HitTest(50, 50)
	require.True(t, ok)
	assert.Equal(t, "c0/r1", hit.Key)
}
