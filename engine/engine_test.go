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

package engine

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/hittest"
	"seehuhn.de/go/chart/reconcile"
	"seehuhn.de/go/chart/transition"
)

var green = color.NRGBA{G: 0x80, A: 0xff}

func bar(key string, y float64) Mark {
	return Mark{
		Key:   key,
		Shape: element.Rect,
		Attrs: element.Attrs{X: 10, Y: y, W: 20, H: 5, Fill: green, Opacity: 1},
	}
}

func newTestEngine() (*Engine, *transition.ManualClock) {
	clock := &transition.ManualClock{}
	return New(100, 100, Options{Clock: clock}), clock
}

func find(t *testing.T, e *Engine, key string) *element.Element {
	t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	el, ok := e.Lookup(key)
	require.True(t, ok, "element %q", key)
	return el
}

func TestStates(t *testing.T) {
	e, _ := newTestEngine()
	assert.Equal(t, Uninitialized, e.State())

	_, ok := e.HitTest(20, 20)
	assert.False(t, ok)
	assert.False(t, e.Tick())

	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10)}}))
	assert.Equal(t, Ready, e.State())

	e.Dispose()
	e.Dispose()
	assert.Equal(t, Disposed, e.State())
	assert.ErrorIs(t, e.Render(Frame{}), ErrDisposed)
	assert.ErrorIs(t, e.Resize(10, 10), ErrDisposed)
	_, err := e.Snapshot()
	assert.ErrorIs(t, err, ErrDisposed)
	assert.Equal(t, "disposed", e.State().String())
}

// Bars A and B are rendered, then A moves.  Halfway through the
// transition A is at the midpoint and B has not moved.
func TestTransitionScenario(t *testing.T) {
	e, clock := newTestEngine()
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10), bar("B", 20)}}))

	a := find(t, e, "A")
	b := find(t, e, "B")
	assert.Equal(t, 10.0, a.Attrs.Y)

	require.NoError(t, e.Render(Frame{
		Marks:    []Mark{bar("A", 20), bar("B", 20)},
		Duration: 100 * time.Millisecond,
	}))
	assert.Same(t, a, find(t, e, "A"))

	clock.Advance(50 * time.Millisecond)
	assert.True(t, e.Tick())
	assert.InDelta(t, 15.0, a.Attrs.Y, 1e-9)
	assert.Equal(t, 20.0, b.Attrs.Y)

	clock.Advance(50 * time.Millisecond)
	assert.False(t, e.Tick())
	assert.Equal(t, 20.0, a.Attrs.Y)
}

func TestRenderIdempotent(t *testing.T) {
	e, _ := newTestEngine()
	marks := []Mark{bar("A", 10), bar("B", 20)}
	require.NoError(t, e.Render(Frame{Marks: marks}))
	a := find(t, e, "A")
	before := a.Attrs

	require.NoError(t, e.Render(Frame{Marks: marks, Duration: time.Second}))
	assert.Same(t, a, find(t, e, "A"))
	assert.Equal(t, before, a.Attrs)

	e.mu.Lock()
	n := len(e.Model())
	e.mu.Unlock()
	assert.Equal(t, 2, n)
}

func TestDuplicateKeyKeepsState(t *testing.T) {
	e, _ := newTestEngine()
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10)}}))
	a := find(t, e, "A")

	err := e.Render(Frame{Marks: []Mark{bar("A", 30), bar("A", 40)}})
	assert.ErrorIs(t, err, reconcile.ErrDuplicateKey)
	assert.Same(t, a, find(t, e, "A"))
	assert.Equal(t, 10.0, a.Attrs.Y)
}

func TestEnterAndExit(t *testing.T) {
	e, clock := newTestEngine()
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10), bar("B", 20)}}))
	b := find(t, e, "B")

	birth := element.Attrs{X: 10, Y: 50, W: 20, H: 0, Fill: green, Opacity: 1}
	c := bar("C", 30)
	c.Birth = &birth
	require.NoError(t, e.Render(Frame{
		Marks:    []Mark{bar("A", 10), c},
		Duration: 100 * time.Millisecond,
		Death: func(el *element.Element) element.Attrs {
			a := el.Attrs
			a.H = 0
			return a
		},
	}))

	assert.True(t, b.Exiting())
	newC := find(t, e, "C")
	assert.Equal(t, 50.0, newC.Attrs.Y)

	e.mu.Lock()
	model := e.Model()
	assert.Same(t, b, model[0]) // exiting elements are painted underneath
	_, ok := e.Lookup("B")
	e.mu.Unlock()
	assert.False(t, ok)

	clock.Advance(100 * time.Millisecond)
	e.Tick()
	assert.Equal(t, 30.0, newC.Attrs.Y)
	assert.Equal(t, 0.0, b.Attrs.H)

	e.mu.Lock()
	assert.Len(t, e.Model(), 2)
	e.mu.Unlock()
}

func TestReviveExiting(t *testing.T) {
	e, clock := newTestEngine()
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10)}}))
	a := find(t, e, "A")

	require.NoError(t, e.Render(Frame{Duration: 100 * time.Millisecond}))
	assert.True(t, a.Exiting())
	clock.Advance(50 * time.Millisecond)
	e.Tick()
	assert.InDelta(t, 0.5, a.Attrs.Opacity, 1e-9)

	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10)}, Duration: 100 * time.Millisecond}))
	assert.Same(t, a, find(t, e, "A"))
	assert.False(t, a.Exiting())

	clock.Advance(200 * time.Millisecond)
	e.Tick()
	assert.Equal(t, 1.0, a.Attrs.Opacity)
	e.mu.Lock()
	assert.Len(t, e.Model(), 1)
	e.mu.Unlock()
}

func TestZeroDurationExitRemoves(t *testing.T) {
	e, _ := newTestEngine()
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10), bar("B", 20)}}))
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10)}}))
	s, err := e.Snapshot()
	require.NoError(t, err)
	require.Len(t, s.Elements, 1)
	assert.Equal(t, "A", s.Elements[0].Key)
}

func TestHitTest(t *testing.T) {
	e, _ := newTestEngine()
	require.NoError(t, e.Render(Frame{
		Marks: []Mark{
			{Key: "p", Shape: element.Circle, Attrs: element.Attrs{X: 50, Y: 50, R: 6, Fill: green, Opacity: 1}, Tooltip: "p!"},
		},
		Locator: hittest.Func(func(x, y float64) (*element.Element, bool) {
			return e.Pipeline().Index().Lookup(e.Pipeline().HitCanvas().At(int(x), int(y)))
		}),
	}))

	el, ok := e.HitTest(50, 50)
	require.True(t, ok)
	assert.Equal(t, "p!", el.Tooltip)
	_, ok = e.HitTest(5, 5)
	assert.False(t, ok)
}

func TestBrush(t *testing.T) {
	e, _ := newTestEngine()
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10), bar("B", 60)}}))
	got := e.Brush(0, 0, 100, 40)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Key)
}

func TestDraw(t *testing.T) {
	e, _ := newTestEngine()
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10)}}))

	same := image.NewRGBA(image.Rect(0, 0, 100, 100))
	e.Draw(same, same.Bounds())
	assert.Equal(t, color.RGBA{G: 0x80, A: 0xff}, same.RGBAAt(20, 12))

	half := image.NewRGBA(image.Rect(0, 0, 50, 50))
	e.Draw(half, half.Bounds())
	assert.Equal(t, uint8(0xff), half.RGBAAt(45, 45).R)
}

func TestResize(t *testing.T) {
	e, _ := newTestEngine()
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 10)}}))
	require.NoError(t, e.Resize(40, 30))
	w, h := e.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)
	s, err := e.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 40, s.Width)
}

func TestRunStopsOnDispose(t *testing.T) {
	e := New(10, 10, Options{})
	require.NoError(t, e.Render(Frame{Marks: []Mark{bar("A", 1)}, Duration: time.Hour}))

	res := make(chan error, 1)
	go func() { res <- e.Run(context.Background(), time.Millisecond) }()
	time.Sleep(5 * time.Millisecond)
	e.Dispose()

	select {
	case err := <-res:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	e.mu.Lock()
	assert.Equal(t, 0, e.sched.Len())
	e.mu.Unlock()
}

func TestRunStopsOnCancel(t *testing.T) {
	e, _ := newTestEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := e.Run(ctx, time.Millisecond)
	assert.True(t, errors.Is(err, context.Canceled))
}
