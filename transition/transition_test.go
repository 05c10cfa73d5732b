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

package transition

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chart/element"
)

const ms = time.Millisecond

func TestLinearProgress(t *testing.T) {
	clock := &ManualClock{}
	s := NewScheduler(clock)
	e := element.New("a", element.Rect, element.Attrs{H: 0, Opacity: 0})

	s.Animate(e, element.Attrs{H: 100, Opacity: 1}, 100*ms, 0)
	assert.Equal(t, 1, s.Len())

	clock.Advance(25 * ms)
	assert.True(t, s.Tick())
	assert.InDelta(t, 25, e.Attrs.H, 1e-9)
	assert.InDelta(t, 0.25, e.Attrs.Opacity, 1e-9)

	clock.Advance(75 * ms)
	assert.False(t, s.Tick())
	assert.Equal(t, 100.0, e.Attrs.H)
	assert.Equal(t, 0, s.Len())
}

func TestColorInterpolation(t *testing.T) {
	clock := &ManualClock{}
	s := NewScheduler(clock)
	e := element.New("a", element.Circle, element.Attrs{Fill: color.NRGBA{R: 0, B: 200, A: 255}})

	s.Animate(e, element.Attrs{Fill: color.NRGBA{R: 200, B: 0, A: 255}}, 100*ms, 0)
	clock.Advance(50 * ms)
	s.Tick()
	assert.Equal(t, color.NRGBA{R: 100, B: 100, A: 255}, e.Attrs.Fill)
}

func TestDelay(t *testing.T) {
	clock := &ManualClock{}
	s := NewScheduler(clock)
	e := element.New("a", element.Rect, element.Attrs{W: 10})

	ended := false
	s.Animate(e, element.Attrs{W: 20}, 100*ms, 50*ms).OnEnd(func() { ended = true })

	clock.Advance(49 * ms)
	assert.True(t, s.Tick())
	assert.Equal(t, 10.0, e.Attrs.W)

	clock.Advance(51 * ms) // 50ms into the transition
	assert.True(t, s.Tick())
	assert.InDelta(t, 15, e.Attrs.W, 1e-9)
	assert.False(t, ended)

	clock.Advance(50 * ms) // elapsed == delay + duration
	assert.False(t, s.Tick())
	assert.Equal(t, 20.0, e.Attrs.W)
	assert.True(t, ended)
}

func TestRetargetNoJump(t *testing.T) {
	clock := &ManualClock{}
	s := NewScheduler(clock)
	e := element.New("a", element.Rect, element.Attrs{Y: 0})

	first := s.Animate(e, element.Attrs{Y: 100}, 200*ms, 0)
	clock.Advance(40 * ms)
	s.Tick()
	require.InDelta(t, 20, e.Attrs.Y, 1e-9)

	// no tick between the last frame and the retarget
	clock.Advance(20 * ms)
	second := s.Animate(e, element.Attrs{Y: -50}, 100*ms, 0)
	assert.True(t, first.Done())
	assert.False(t, second.Done())
	assert.InDelta(t, 30, e.Attrs.Y, 1e-9, "value at the time of cancellation")
	assert.Equal(t, 1, s.Len())

	clock.Advance(50 * ms)
	s.Tick()
	assert.InDelta(t, -10, e.Attrs.Y, 1e-9, "new transition starts from 30")
}

func TestZeroDuration(t *testing.T) {
	clock := &ManualClock{}
	s := NewScheduler(clock)
	e := element.New("a", element.Rect, element.Attrs{X: 1})

	s.Animate(e, element.Attrs{X: 2}, 0, 0)
	assert.Equal(t, 1.0, e.Attrs.X, "nothing happens before the first tick")
	assert.False(t, s.Tick())
	assert.Equal(t, 2.0, e.Attrs.X)
}

func TestTickOrder(t *testing.T) {
	clock := &ManualClock{}
	s := NewScheduler(clock)

	var order []string
	for _, key := range []string{"c", "a", "b"} {
		e := element.New(key, element.Rect, element.Attrs{})
		s.Animate(e, element.Attrs{X: 1}, 10*ms, 0).OnEnd(func() {
			order = append(order, key)
		})
	}
	assert.Equal(t, []string{"c", "a", "b"}, keysOf(s.Elements()))

	clock.Advance(10 * ms)
	s.Tick()
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func keysOf(es []*element.Element) []string {
	var res []string
	for _, e := range es {
		res = append(res, e.Key)
	}
	return res
}

func TestCancel(t *testing.T) {
	clock := &ManualClock{}
	s := NewScheduler(clock)
	e := element.New("a", element.Rect, element.Attrs{X: 0})

	ended := false
	h := s.Animate(e, element.Attrs{X: 10}, 100*ms, 0).OnEnd(func() { ended = true })
	clock.Advance(30 * ms)
	s.Tick()
	s.Cancel(h)

	clock.Advance(100 * ms)
	assert.False(t, s.Tick())
	assert.InDelta(t, 3, e.Attrs.X, 1e-9)
	assert.False(t, ended)
	_, ok := s.Active(e)
	assert.False(t, ok)
}

func TestStopAll(t *testing.T) {
	clock := &ManualClock{}
	s := NewScheduler(clock)

	ended := 0
	var hs []*Handle
	for range 5 {
		e := element.New("x", element.Rect, element.Attrs{})
		hs = append(hs, s.Animate(e, element.Attrs{X: 1}, 10*ms, 0).OnEnd(func() { ended++ }))
	}
	s.StopAll()
	assert.Equal(t, 0, s.Len())
	for _, h := range hs {
		assert.True(t, h.Done())
	}

	clock.Advance(time.Second)
	assert.False(t, s.Tick())
	assert.Equal(t, 0, ended)
}

func TestSystemClock(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b, a)
	assert.GreaterOrEqual(t, a, time.Duration(0))
}
