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

// Package engine implements the render/update cycle shared by all chart
// types.
//
// A chart describes its picture as a list of keyed marks.  On every
// render the engine reconciles the marks against the retained element
// model, starts transitions from the current attribute values to the new
// targets, and repaints.  Ticks advance the transitions and repaint
// while anything moves.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/hittest"
	"seehuhn.de/go/chart/paint"
	"seehuhn.de/go/chart/reconcile"
	"seehuhn.de/go/chart/transition"
)

// State is the lifecycle state of an engine.
type State int

// These are the lifecycle states.  The only transitions are
// Uninitialized → Ready, Ready → Ready and any state → Disposed.
const (
	Uninitialized State = iota
	Ready
	Disposed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Disposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrDisposed is returned by operations on a disposed engine.
var ErrDisposed = errors.New("chart has been disposed")

// Mark describes one visual mark of a render.
type Mark struct {
	Key   string
	Shape element.Shape

	// Attrs are the target attributes.
	Attrs element.Attrs

	// Birth are the attributes a newly entering element starts from.  If
	// nil, entering elements start at Attrs with zero opacity.
	Birth *element.Attrs

	Data    any
	Tooltip string

	// Delay postpones the start of the transition of this mark.
	Delay time.Duration
}

// Frame is the complete description of one render.
type Frame struct {
	Marks []Mark

	// Overlay is painted above the marks.
	Overlay *paint.Overlay

	// Duration is the length of the transitions started by this render.
	// Zero applies all changes immediately.
	Duration time.Duration

	// Death returns the attributes an exiting element animates to.  If
	// nil, exiting elements fade out in place.
	Death func(e *element.Element) element.Attrs

	// Locator answers hit-tests until the next render.  It runs with the
	// engine locked and may use Lookup, Model and Pipeline.
	Locator hittest.Locator
}

// Options configure a new engine.
type Options struct {
	Logger *slog.Logger
	Clock  transition.Clock
}

// Engine holds the render state of one chart instance.  All methods are
// safe for concurrent use; renders and ticks never interleave.
type Engine struct {
	mu sync.Mutex

	state    State
	width    int
	height   int
	model    []*element.Element // paint order
	live     map[string]*element.Element
	sched    *transition.Scheduler
	pipeline *paint.Pipeline
	overlay  *paint.Overlay
	locator  hittest.Locator
	log      *slog.Logger
	done     chan struct{}
}

// New returns an engine with canvases of the given size.
func New(width, height int, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		width:    width,
		height:   height,
		live:     make(map[string]*element.Element),
		sched:    transition.NewScheduler(opts.Clock),
		pipeline: paint.NewPipeline(width, height),
		log:      log,
		done:     make(chan struct{}),
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Size returns the canvas size.
func (e *Engine) Size() (width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Render reconciles the marks of f against the current model and starts
// the transitions.  On error the previous state is left unchanged.
func (e *Engine) Render(f Frame) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Disposed {
		return ErrDisposed
	}

	res, err := reconcile.Reconcile(e.model, f.Marks, func(m Mark) string { return m.Key })
	if err != nil {
		return err
	}

	model := make([]*element.Element, 0, len(res.Exiting)+len(res.Order))
	for _, el := range res.Exiting {
		if e.retire(el, f) {
			model = append(model, el)
		}
	}

	live := make(map[string]*element.Element, len(res.Order))
	for _, j := range res.Order {
		m := j.Datum
		el := j.Elem
		if el == nil {
			birth := m.Attrs
			birth.Opacity = 0
			if m.Birth != nil {
				birth = *m.Birth
			}
			el = element.New(m.Key, m.Shape, birth)
		} else {
			el.Revive()
			el.Shape = m.Shape
		}
		el.Data = m.Data
		el.Tooltip = m.Tooltip

		if f.Duration <= 0 && m.Delay <= 0 {
			if h, ok := e.sched.Active(el); ok {
				e.sched.Cancel(h)
			}
			el.Attrs = m.Attrs
		} else {
			e.sched.Animate(el, m.Attrs, f.Duration, m.Delay)
		}
		model = append(model, el)
		live[m.Key] = el
	}

	e.model = model
	e.live = live
	e.overlay = f.Overlay
	e.locator = f.Locator
	e.state = Ready

	e.log.Debug("render",
		"entering", len(res.Entering),
		"updating", len(res.Updating),
		"exiting", len(res.Exiting),
		"transitions", e.sched.Len())

	return e.repaint()
}

// retire starts the exit transition of el, unless it is already leaving.
// It returns false if el was removed at once.
func (e *Engine) retire(el *element.Element, f Frame) bool {
	if el.Exiting() {
		return true
	}
	el.MarkExiting()

	death := el.Attrs
	death.Opacity = 0
	if f.Death != nil {
		death = f.Death(el)
	}
	if f.Duration <= 0 {
		if h, ok := e.sched.Active(el); ok {
			e.sched.Cancel(h)
		}
		return false
	}
	e.sched.Animate(el, death, f.Duration, 0).OnEnd(func() {
		e.model = slices.DeleteFunc(e.model, func(x *element.Element) bool { return x == el })
	})
	return true
}

func (e *Engine) repaint() error {
	if err := e.pipeline.Repaint(e.model, e.overlay); err != nil {
		e.log.Warn("hit canvas incomplete", "elements", len(e.model), "error", err)
	}
	return nil
}

// Tick advances all transitions to the current clock time and repaints if
// anything changed.  It reports whether transitions are still running.
func (e *Engine) Tick() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Ready || e.sched.Len() == 0 {
		return false
	}
	active := e.sched.Tick()
	_ = e.repaint()
	return active
}

// Run calls Tick every interval until ctx is cancelled or the engine is
// disposed.  It returns ctx.Err() in the first case and nil in the second.
func (e *Engine) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.done:
			return nil
		case <-ticker.C:
			e.Tick()
		}
	}
}

// Done returns a channel which is closed when the engine is disposed.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Resize changes the canvas size.  The caller is expected to render again
// with marks laid out for the new size.
func (e *Engine) Resize(width, height int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Disposed {
		return ErrDisposed
	}
	e.width, e.height = width, height
	e.pipeline.Resize(width, height)
	return e.repaint()
}

// HitTest returns a copy of the live element under the pointer.
func (e *Engine) HitTest(x, y float64) (element.Element, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Ready || e.locator == nil {
		return element.Element{}, false
	}
	el, ok := e.locator.Locate(x, y)
	if !ok {
		return element.Element{}, false
	}
	return *el, true
}

// Brush returns copies of the live elements whose centre lies in the
// rectangle spanned by two corners.
func (e *Engine) Brush(x0, y0, x1, y1 float64) []element.Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Ready {
		return nil
	}
	sel := hittest.Brush(e.model, x0, y0, x1, y1)
	res := make([]element.Element, len(sel))
	for i, el := range sel {
		res[i] = *el
	}
	return res
}

// Lookup returns the live element with the given key.  It must only be
// called while the engine is locked, for example from a Locator.
func (e *Engine) Lookup(key string) (*element.Element, bool) {
	el, ok := e.live[key]
	return el, ok
}

// Model returns the element model in paint order.  It must only be
// called while the engine is locked, for example from a Locator.
func (e *Engine) Model() []*element.Element {
	return e.model
}

// Pipeline returns the paint pipeline.  It must only be called while the
// engine is locked, for example from a Locator.
func (e *Engine) Pipeline() *paint.Pipeline {
	return e.pipeline
}

// Snapshot is a copy of the current picture.
type Snapshot struct {
	Width, Height int
	Background    element.Attrs // only Fill is used
	Elements      []element.Element
	Overlay       paint.Overlay
}

// Snapshot copies the current model and overlay.  Elements which are
// fully transparent are left out.
func (e *Engine) Snapshot() (*Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Disposed {
		return nil, ErrDisposed
	}
	s := &Snapshot{
		Width:      e.width,
		Height:     e.height,
		Background: element.Attrs{Fill: e.pipeline.Background},
	}
	for _, el := range e.model {
		if el.Attrs.Opacity > 0 {
			s.Elements = append(s.Elements, *el)
		}
	}
	if e.overlay != nil {
		s.Overlay.Lines = slices.Clone(e.overlay.Lines)
		s.Overlay.Texts = slices.Clone(e.overlay.Texts)
	}
	return s, nil
}

// Draw copies the canvas into r of dst, resampling if the sizes differ.
func (e *Engine) Draw(dst draw.Image, r image.Rectangle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Disposed {
		return
	}
	src := e.pipeline.Canvas().Image()
	if r.Dx() == src.Rect.Dx() && r.Dy() == src.Rect.Dy() {
		draw.Draw(dst, r, src, src.Rect.Min, draw.Src)
		return
	}
	draw.BiLinear.Scale(dst, r, src, src.Rect, draw.Src, nil)
}

// Dispose stops all transitions and releases the canvases.  Later calls
// have no effect.
func (e *Engine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Disposed {
		return
	}
	e.sched.StopAll()
	e.pipeline.Release()
	e.model = nil
	e.live = nil
	e.overlay = nil
	e.locator = nil
	e.state = Disposed
	close(e.done)
}
