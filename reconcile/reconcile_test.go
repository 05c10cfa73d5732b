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

package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chart/element"
)

type point struct {
	name  string
	value float64
}

func byName(p point) string { return p.name }

func elements(keys ...string) []*element.Element {
	res := make([]*element.Element, len(keys))
	for i, k := range keys {
		res[i] = element.New(k, element.Rect, element.Attrs{})
	}
	return res
}

func joinKeys[D any](js []Join[D]) []string {
	var res []string
	for _, j := range js {
		res = append(res, j.Key)
	}
	return res
}

func TestFirstRender(t *testing.T) {
	data := []point{{"b", 1}, {"a", 2}, {"c", 3}}
	res, err := Reconcile(nil, data, byName)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, joinKeys(res.Entering))
	assert.Empty(t, res.Updating)
	assert.Empty(t, res.Exiting)
	assert.Equal(t, []string{"b", "a", "c"}, joinKeys(res.Order))
	for i, j := range res.Order {
		assert.Equal(t, i, j.Index)
		assert.Equal(t, data[i], j.Datum)
		assert.Nil(t, j.Elem)
	}
}

func TestIdempotent(t *testing.T) {
	prev := elements("A", "B", "C")
	data := []point{{"A", 1}, {"B", 2}, {"C", 3}}

	res, err := Reconcile(prev, data, byName)
	require.NoError(t, err)
	assert.Empty(t, res.Entering)
	assert.Empty(t, res.Exiting)
	require.Len(t, res.Updating, 3)
	for i, j := range res.Updating {
		assert.Same(t, prev[i], j.Elem)
	}
}

func TestAllKeysChange(t *testing.T) {
	prev := elements("A", "B", "C")
	data := []point{{"X", 1}, {"Y", 2}, {"Z", 3}, {"W", 4}}

	res, err := Reconcile(prev, data, byName)
	require.NoError(t, err)
	assert.Len(t, res.Exiting, len(prev))
	assert.Len(t, res.Entering, len(data))
	assert.Empty(t, res.Updating)
	assert.Equal(t, prev, res.Exiting)
}

func TestMixed(t *testing.T) {
	prev := elements("A", "B", "C")
	data := []point{{"D", 1}, {"C", 2}, {"A", 3}}

	res, err := Reconcile(prev, data, byName)
	require.NoError(t, err)
	assert.Equal(t, []string{"D"}, joinKeys(res.Entering))
	assert.Equal(t, []string{"C", "A"}, joinKeys(res.Updating))
	require.Len(t, res.Exiting, 1)
	assert.Equal(t, "B", res.Exiting[0].Key)
	assert.Equal(t, []string{"D", "C", "A"}, joinKeys(res.Order))
}

func TestDuplicateKey(t *testing.T) {
	prev := elements("A")
	data := []point{{"A", 1}, {"B", 2}, {"A", 3}}

	res, err := Reconcile(prev, data, byName)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	var dk *DuplicateKeyError
	require.True(t, errors.As(err, &dk))
	assert.Equal(t, "A", dk.Key)
	assert.Equal(t, 0, dk.First)
	assert.Equal(t, 2, dk.Next)
}

func TestReviveExiting(t *testing.T) {
	prev := elements("A", "B")
	prev[1].MarkExiting()

	res, err := Reconcile(prev, []point{{"A", 1}, {"B", 2}}, byName)
	require.NoError(t, err)
	assert.Empty(t, res.Entering)
	assert.Empty(t, res.Exiting)
	require.Len(t, res.Updating, 2)
	assert.Same(t, prev[1], res.Updating[1].Elem)
}

func TestLiveWinsOverExiting(t *testing.T) {
	// an element re-entered while its old incarnation is still fading out
	prev := elements("A", "A")
	prev[0].MarkExiting()

	res, err := Reconcile(prev, []point{{"A", 1}}, byName)
	require.NoError(t, err)
	require.Len(t, res.Updating, 1)
	assert.Same(t, prev[1], res.Updating[0].Elem)
	require.Len(t, res.Exiting, 1)
	assert.Same(t, prev[0], res.Exiting[0])
}
