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

package raster

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/element"
)

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The edge from (0,0) to (10,1) crosses pixel X with average height
// (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	coverage := make([]float32, 10)
	r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// renderGray rasterises p into a grayscale buffer, forcing one of the two
// scan strategies.
func renderGray(p *path.Data, w, h, threshold int, evenOdd bool, ctm matrix.Matrix) []byte {
	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.smallPathThreshold = threshold
	r.CTM = ctm
	buf := make([]byte, w*h)
	emit := func(y, xMin int, coverage []float32) {
		row := buf[y*w:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*256))))
		}
	}
	if evenOdd {
		r.FillEvenOdd(p, emit)
	} else {
		r.FillNonZero(p, emit)
	}
	return buf
}

// TestScanStrategiesAgree renders chart shapes with both the 2D buffer and
// the active edge list and requires identical output.
func TestScanStrategiesAgree(t *testing.T) {
	type tc struct {
		name  string
		shape element.Shape
		attrs element.Attrs
		ctm   matrix.Matrix
	}
	cases := []tc{
		{"bar", element.Rect, element.Attrs{X: 10.3, Y: 20.6, W: 17.2, H: 50.1}, matrix.Identity},
		{"negative-bar", element.Rect, element.Attrs{X: 40, Y: 80, W: -12.5, H: -33.3}, matrix.Identity},
		{"dot", element.Circle, element.Attrs{X: 50, Y: 50, R: 5}, matrix.Identity},
		{"big-dot", element.Circle, element.Attrs{X: 50, Y: 50, R: 45}, matrix.Identity},
		{"slice", element.Arc, element.Attrs{X: 50, Y: 50, R: 40, A0: 0.3, A1: 2.1}, matrix.Identity},
		{"ring", element.Arc, element.Attrs{X: 50, Y: 50, R0: 20, R: 40, A0: 0, A1: 2 * math.Pi}, matrix.Identity},
		{"line", element.Line, element.Attrs{X: 3, Y: 90, X2: 97, Y2: 4, StrokeWidth: 2}, matrix.Identity},
		{"scaled", element.Circle, element.Attrs{X: 25, Y: 25, R: 10}, matrix.Scale(2, 2)},
		{"rotated", element.Rect, element.Attrs{X: 30, Y: 0, W: 30, H: 10}, matrix.RotateDeg(30)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var p path.Data
			if !ShapePath(&p, c.shape, c.attrs) {
				t.Fatal("empty shape")
			}
			for _, evenOdd := range []bool{false, true} {
				a := renderGray(&p, 100, 100, 1<<30, evenOdd, c.ctm)
				b := renderGray(&p, 100, 100, 0, evenOdd, c.ctm)
				sum := 0
				for i := range a {
					if a[i] != b[i] {
						t.Fatalf("evenOdd=%t: pixel (%d,%d) differs: %d vs %d",
							evenOdd, i%100, i/100, a[i], b[i])
					}
					sum += int(a[i])
				}
				if sum == 0 {
					t.Errorf("evenOdd=%t: nothing painted", evenOdd)
				}
			}
		})
	}
}

func TestCircleArea(t *testing.T) {
	var p path.Data
	ShapePath(&p, element.Circle, element.Attrs{X: 50, Y: 50, R: 30})

	r := NewRasteriser(rect.Rect{URx: 100, URy: 100})
	var area float64
	r.FillNonZero(&p, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			area += float64(c)
		}
	})
	want := math.Pi * 30 * 30
	if math.Abs(area-want)/want > 0.02 {
		t.Errorf("circle area %.1f, want %.1f", area, want)
	}
}

func TestRingHole(t *testing.T) {
	var p path.Data
	ShapePath(&p, element.Arc, element.Attrs{X: 50, Y: 50, R0: 20, R: 40, A0: 0, A1: 2 * math.Pi})
	buf := renderGray(&p, 100, 100, smallPathThreshold, false, matrix.Identity)
	if v := buf[50*100+50]; v != 0 {
		t.Errorf("centre of ring painted with %d", v)
	}
	if v := buf[50*100+80]; v != 255 {
		t.Errorf("ring body has coverage %d, want 255", v)
	}
}

func TestClipping(t *testing.T) {
	var p path.Data
	ShapePath(&p, element.Rect, element.Attrs{X: -50, Y: -50, W: 500, H: 500})

	r := NewRasteriser(rect.Rect{URx: 20, URy: 10})
	rows := 0
	r.FillNonZero(&p, func(y, xMin int, coverage []float32) {
		rows++
		if y < 0 || y >= 10 || xMin < 0 || xMin+len(coverage) > 20 {
			t.Errorf("row %d [%d, %d) outside clip", y, xMin, xMin+len(coverage))
		}
	})
	if rows != 10 {
		t.Errorf("got %d rows, want 10", rows)
	}
}

func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Scale(3, 3)
	r.Flatness = 2
	r.Reset(rect.Rect{URx: 5, URy: 5})
	if r.CTM != matrix.Identity || r.Flatness != defaultFlatness {
		t.Error("Reset did not restore defaults")
	}
	if r.Clip.URx != 5 {
		t.Errorf("clip not updated: %v", r.Clip)
	}
}

// writeDebugImage saves img under debug/ for manual inspection of a
// failing test.
func writeDebugImage(name string, img image.Image) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func TestCanvasCompositing(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	red := color.NRGBA{R: 255, A: 255}
	c.FillShape(element.Rect, element.Attrs{X: 2, Y: 2, W: 8, H: 8, Fill: red, Opacity: 1})
	c.FillShape(element.Rect, element.Attrs{X: 6, Y: 6, W: 8, H: 8,
		Fill: color.NRGBA{B: 255, A: 255}, Opacity: 0.5})

	check := func(x, y int, want color.RGBA) {
		t.Helper()
		got := c.Image().RGBAAt(x, y)
		near := func(a, b uint8) bool { return a-b <= 1 || b-a <= 1 }
		if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, want.A) {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
		}
	}
	check(0, 0, color.RGBA{255, 255, 255, 255})
	check(3, 3, color.RGBA{255, 0, 0, 255})
	check(7, 7, color.RGBA{128, 0, 128, 255})
	check(12, 12, color.RGBA{128, 128, 255, 255})

	if t.Failed() {
		_ = writeDebugImage("compositing", c.Image())
	}
}

func TestCanvasSkipsInvisible(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillShape(element.Rect, element.Attrs{X: 0, Y: 0, W: 10, H: 10,
		Fill: color.NRGBA{R: 255, A: 255}, Opacity: 0})
	c.FillShape(element.Rect, element.Attrs{X: math.NaN(), Y: 0, W: 10, H: 10,
		Fill: color.NRGBA{R: 255, A: 255}, Opacity: 1})
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("invisible shape was painted")
		}
	}
}

func TestHitCanvas(t *testing.T) {
	h := NewHitCanvas(100, 100)
	code := color.RGBA{R: 0, G: 0, B: 3, A: 255}
	h.FillShape(element.Circle, element.Attrs{X: 50, Y: 50, R: 5}, code)

	if got := h.At(50, 50); got != code {
		t.Errorf("centre: got %v, want %v", got, code)
	}
	if got := h.At(10, 10); got != (color.RGBA{}) {
		t.Errorf("empty area: got %v", got)
	}
	if got := h.At(-1, 500); got != (color.RGBA{}) {
		t.Errorf("outside: got %v", got)
	}

	// no blending: every pixel is either empty or exactly the code
	for i := 0; i < len(h.Image().Pix); i += 4 {
		px := h.Image().Pix[i : i+4]
		empty := px[0] == 0 && px[1] == 0 && px[2] == 0 && px[3] == 0
		exact := px[0] == code.R && px[1] == code.G && px[2] == code.B && px[3] == 255
		if !empty && !exact {
			t.Fatalf("blended pixel %v", px)
		}
	}

	h.Clear()
	if got := h.At(50, 50); got != (color.RGBA{}) {
		t.Errorf("after Clear: got %v", got)
	}
}

func TestTextWidth(t *testing.T) {
	if w := TextWidth("abc", FontSize); w != 21 {
		t.Errorf("width of abc = %g, want 21", w)
	}
	if w := TextWidth("abc", 2*FontSize); w != 42 {
		t.Errorf("width of abc at double size = %g, want 42", w)
	}
}

func TestDrawText(t *testing.T) {
	for _, size := range []float64{FontSize, 9} {
		c := NewCanvas(60, 20)
		c.DrawText("Hi", 30, 15, size, AlignCenter, color.NRGBA{A: 255})
		inked := 0
		for i := 3; i < len(c.Image().Pix); i += 4 {
			if c.Image().Pix[i] != 0 {
				inked++
			}
		}
		if inked == 0 {
			t.Errorf("size %g: no text drawn", size)
		}
	}
}
