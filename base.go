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
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"seehuhn.de/go/chart/config"
	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/export"
	"seehuhn.de/go/chart/hittest"
)

// variant is implemented by each chart type.
type variant interface {
	// prepare merges p into a copy of the current properties and lays out
	// the result on a canvas of the given size.  p is nil for a relayout.
	// The copy becomes current when the plan is committed.
	prepare(p Props, width, height int) (*plan, error)

	// handlers returns the current pointer callbacks.
	handlers() Handlers
}

// plan is a laid out frame which has not been rendered yet.
type plan struct {
	frame  engine.Frame
	empty  bool // the scales had no domain
	commit func()
}

// base implements the parts of the Chart interface which are the same for
// all chart types.
type base struct {
	// mu serialises updates and protects the properties of the variant.
	mu sync.Mutex

	name string
	cont Container
	cfg  *config.Config
	log  *slog.Logger
	eng  *engine.Engine
	v    variant
}

func newBase(name string, c Container, opts Options) (*base, error) {
	op := "new " + name
	if c == nil {
		return nil, &ConfigurationError{Op: op, Err: ErrInvalidContainer}
	}
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return nil, &ConfigurationError{
			Op:  op,
			Err: fmt.Errorf("size %dx%d: %w", w, h, ErrInvalidContainer),
		}
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	} else if err := cfg.Validate(); err != nil {
		return nil, &ConfigurationError{Op: op, Err: err}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("chart", name)

	return &base{
		name: name,
		cont: c,
		cfg:  cfg,
		log:  log,
		eng:  engine.New(w, h, engine.Options{Logger: log, Clock: opts.Clock}),
	}, nil
}

// Name implements the Chart interface.
func (b *base) Name() string {
	return b.name
}

// State implements the Chart interface.
func (b *base) State() engine.State {
	return b.eng.State()
}

// Update implements the Chart interface.
func (b *base) Update(p Props) error {
	if p == nil {
		return &ConfigurationError{Op: b.name + ": update", Err: ErrPropsType}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.render(p, false)
}

// Resize implements the Chart interface.
func (b *base) Resize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	w, h := b.cont.Size()
	if w <= 0 || h <= 0 {
		return &ConfigurationError{
			Op:  b.name + ": resize",
			Err: fmt.Errorf("size %dx%d: %w", w, h, ErrInvalidContainer),
		}
	}
	if err := b.eng.Resize(w, h); err != nil {
		return err
	}
	if b.eng.State() != engine.Ready {
		return nil
	}
	return b.render(nil, true)
}

// render must be called with b.mu held.
func (b *base) render(p Props, immediate bool) error {
	if b.eng.State() == engine.Disposed {
		return ErrDisposed
	}
	w, h := b.eng.Size()
	pl, err := b.v.prepare(p, w, h)
	if err != nil {
		return err
	}
	if pl.empty && b.eng.State() == engine.Uninitialized {
		return fmt.Errorf("%s: %w", b.name, ErrNotInitialized)
	}
	if immediate {
		pl.frame.Duration = 0
		for i := range pl.frame.Marks {
			pl.frame.Marks[i].Delay = 0
		}
	}
	if err := b.eng.Render(pl.frame); err != nil {
		return fmt.Errorf("%s: %w", b.name, err)
	}
	pl.commit()
	return nil
}

// stagger sets the transition delays of the marks.
func (b *base) stagger(marks []engine.Mark) {
	step := b.cfg.Animation.Stagger.D()
	if step <= 0 {
		return
	}
	for i := range marks {
		marks[i].Delay = time.Duration(i) * step
	}
}

// Export implements the Chart interface.
func (b *base) Export(w io.Writer, f Format) error {
	s, err := b.eng.Snapshot()
	if err != nil {
		return err
	}
	return export.Write(w, export.Build(s), f)
}

// ExportFile implements the Chart interface.
func (b *base) ExportFile(fname string, f Format) error {
	s, err := b.eng.Snapshot()
	if err != nil {
		return err
	}
	return export.WriteFile(fname, export.Build(s), f)
}

// HitTest implements the Chart interface.
func (b *base) HitTest(x, y float64) (Hit, bool) {
	el, ok := b.eng.HitTest(x, y)
	if !ok {
		return Hit{}, false
	}
	return hitOf(&el), true
}

// Hover implements the Chart interface.  The OnHover callback runs for
// hits and misses alike.
func (b *base) Hover(x, y float64) (Hit, bool) {
	hit, ok := b.HitTest(x, y)
	if fn := b.currentHandlers().OnHover; fn != nil {
		fn(hit, ok)
	}
	return hit, ok
}

// Click implements the Chart interface.
func (b *base) Click(x, y float64) (Hit, bool) {
	hit, ok := b.HitTest(x, y)
	if fn := b.currentHandlers().OnClick; ok && fn != nil {
		fn(hit)
	}
	return hit, ok
}

// Brush implements the Chart interface.
func (b *base) Brush(x0, y0, x1, y1 float64) []Hit {
	sel := b.eng.Brush(x0, y0, x1, y1)
	hits := make([]Hit, len(sel))
	for i := range sel {
		hits[i] = hitOf(&sel[i])
	}
	if fn := b.currentHandlers().OnBrush; fn != nil {
		fn(hits)
	}
	return hits
}

func (b *base) currentHandlers() Handlers {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.v.handlers()
}

func hitOf(el *element.Element) Hit {
	x, y := el.Attrs.Center(el.Shape)
	return Hit{Key: el.Key, Data: el.Data, Tooltip: el.Tooltip, X: x, Y: y}
}

// Tick implements the Chart interface.
func (b *base) Tick() bool {
	return b.eng.Tick()
}

// Run implements the Chart interface.
func (b *base) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = b.cfg.Animation.TickInterval.D()
	}
	err := b.eng.Run(ctx, interval)
	if errors.Is(err, context.Canceled) {
		b.log.Debug("animation loop stopped")
	}
	return err
}

// Draw implements the Chart interface.
func (b *base) Draw(dst draw.Image, r image.Rectangle) {
	b.eng.Draw(dst, r)
}

// Dispose implements the Chart interface.
func (b *base) Dispose() {
	b.eng.Dispose()
}

// colorLocator resolves hits through the hidden canvas.
func (b *base) colorLocator() hittest.Locator {
	return hittest.Func(func(x, y float64) (*element.Element, bool) {
		l := hittest.ColorLocator{Pipeline: b.eng.Pipeline()}
		return l.Locate(x, y)
	})
}

// props converts p to the props type T of a chart.
func props[T any](name string, p Props) (*T, error) {
	switch q := p.(type) {
	case *T:
		if q != nil {
			return q, nil
		}
	case T:
		return &q, nil
	}
	return nil, &ConfigurationError{
		Op:  name + ": update",
		Err: fmt.Errorf("%T: %w", p, ErrPropsType),
	}
}
