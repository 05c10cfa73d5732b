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


package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/testcases"
)

// dragThreshold is the pointer travel in pixels which turns a click into
// a brush selection.
const dragThreshold = 3

var brushColor = color.NRGBA{R: 0x24, G: 0x31, B: 0x41, A: 0xff}

// window is the Container of the chart.  Its size follows the ebiten
// layout.
type window struct {
	width, height int
}

func (w *window) Size() (int, int) {
	return w.width, w.height
}

type game struct {
	c       chart.Chart
	win     *window
	zoom    int
	updates []chart.Props
	next    int

	img   *image.RGBA
	fbImg *ebiten.Image

	tooltip  string
	status   string
	dragging bool
	dragX    int
	dragY    int
}

func newGame(sc testcases.Scenario, zoom int, opts chart.Options) (*game, error) {
	win := &window{width: sc.Width, height: sc.Height}
	c, err := chart.New(sc.Chart, win, opts)
	if err != nil {
		return nil, err
	}
	g := &game{c: c, win: win, zoom: max(zoom, 1), updates: sc.Updates()}
	if err := g.step(); err != nil {
		c.Dispose()
		return nil, err
	}
	return g, nil
}

// step binds the next props of the scenario.
func (g *game) step() error {
	if g.next >= len(g.updates) {
		g.status = "end of scenario"
		return nil
	}
	if err := g.c.Update(g.updates[g.next]); err != nil {
		return err
	}
	g.next++
	g.status = fmt.Sprintf("step %d/%d", g.next, len(g.updates))
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := g.step(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.next = 0
		if err := g.step(); err != nil {
			return err
		}
	}

	x, y := ebiten.CursorPosition()
	hit, ok := g.c.Hover(float64(x), float64(y))
	g.tooltip = ""
	if ok {
		g.tooltip = hit.Tooltip
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging = true
		g.dragX, g.dragY = x, y
	case g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.dragging = false
		if abs(x-g.dragX) < dragThreshold && abs(y-g.dragY) < dragThreshold {
			if hit, ok := g.c.Click(float64(x), float64(y)); ok {
				g.status = "selected " + hit.Key
			}
			break
		}
		hits := g.c.Brush(float64(g.dragX), float64(g.dragY), float64(x), float64(y))
		keys := make([]string, len(hits))
		for i, h := range hits {
			keys[i] = h.Key
		}
		g.status = fmt.Sprintf("%d selected: %s", len(hits), strings.Join(keys, " "))
	}

	g.c.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.win.Size()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.c.Draw(g.img, g.img.Bounds())
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	if g.dragging {
		x, y := ebiten.CursorPosition()
		x0, x1 := min(x, g.dragX), max(x, g.dragX)
		y0, y1 := min(y, g.dragY), max(y, g.dragY)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, brushColor, false)
	}
	if g.tooltip != "" {
		x, y := ebiten.CursorPosition()
		ebitenutil.DebugPrintAt(screen, g.tooltip, x+12, y+12)
	}
	ebitenutil.DebugPrintAt(screen, g.status, 4, h-16)
}

// Layout sizes the chart to the window, at 1/zoom of the window
// resolution.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth/g.zoom, outsideHeight/g.zoom
	if w > 0 && h > 0 && (w != g.win.width || h != g.win.height) {
		g.win.width, g.win.height = w, h
		if err := g.c.Resize(); err != nil && !errors.Is(err, chart.ErrDisposed) {
			g.status = err.Error()
		}
	}
	return g.win.width, g.win.height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
