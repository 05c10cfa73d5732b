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


package export

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chart/element"
	"seehuhn.de/go/chart/engine"
	"seehuhn.de/go/chart/paint"
	"seehuhn.de/go/chart/raster"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
)

func testSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Width:      80,
		Height:     60,
		Background: element.Attrs{Fill: white},
		Elements: []element.Element{
			{Key: "bar<1>", Shape: element.Rect, Attrs: element.Attrs{
				X: 10, Y: 10, W: 20, H: 40, Fill: red, Opacity: 1,
				Stroke: black, StrokeWidth: 2,
			}},
			{Key: "dot", Shape: element.Circle, Attrs: element.Attrs{
				X: 60, Y: 30, R: 8, Fill: red, Opacity: 0.5,
			}},
			{Key: "hidden", Shape: element.Circle, Attrs: element.Attrs{
				X: 60, Y: 30, R: 8, Fill: color.NRGBA{}, Opacity: 1,
			}},
		},
		Overlay: paint.Overlay{
			Lines: []paint.Line{{X0: 0, Y0: 55, X1: 80, Y1: 55, Width: 1, Color: black}},
			Texts: []paint.Text{{Text: "a & b", X: 40, Y: 12, Size: raster.FontSize, Align: raster.AlignCenter, Color: black}},
		},
	}
}

func TestBuild(t *testing.T) {
	tree := Build(testSnapshot())
	assert.Equal(t, 80, tree.Width)
	require.Len(t, tree.Nodes, 4)

	assert.Equal(t, "bar<1>", tree.Nodes[0].Key)
	assert.Len(t, tree.Nodes[0].Paints, 2) // fill and outline
	assert.Equal(t, uint8(128), tree.Nodes[1].Paints[0].Color.A)

	assert.Empty(t, tree.Nodes[2].Key)
	require.NotNil(t, tree.Nodes[3].Label)
	assert.Equal(t, FontName, tree.Nodes[3].Label.Font)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Build(testSnapshot()), PNG))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())

	r, g, b, _ := img.At(20, 30).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(2, 2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Build(testSnapshot()), SVG))
	out := buf.String()

	dec := xml.NewDecoder(strings.NewReader(out))
	counts := map[string]int{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if se, ok := tok.(xml.StartElement); ok {
			counts[se.Name.Local]++
		}
	}
	assert.Equal(t, 1, counts["svg"])
	assert.Equal(t, 4, counts["path"])
	assert.Equal(t, 1, counts["text"])
	assert.Equal(t, 2, counts["g"])

	assert.Contains(t, out, "fill:#ff0000;fill-opacity:0.502")
	assert.Contains(t, out, `text-anchor="middle"`)
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, os.ErrClosed
	}
	f.n--
	return len(p), nil
}

func TestWriteSVGError(t *testing.T) {
	err := WriteSVG(&failWriter{n: 2}, Build(testSnapshot()))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	tree := Build(testSnapshot())
	for _, f := range []Format{PNG, SVG, PDF} {
		fname := filepath.Join(dir, "chart."+f.String())
		require.NoError(t, WriteFile(fname, tree, f))
		data, err := os.ReadFile(fname)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		if f == PDF {
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		}
	}
}

func TestFormats(t *testing.T) {
	assert.ErrorIs(t, Write(io.Discard, &Tree{}, PDF), ErrFormat)
	assert.ErrorIs(t, Write(io.Discard, &Tree{}, Format(9)), ErrFormat)

	f, err := FormatFromName("out/Chart.SVG")
	require.NoError(t, err)
	assert.Equal(t, SVG, f)
	_, err = FormatFromName("chart")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = FormatFromName("chart.gif")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestGlyphRuns(t *testing.T) {
	l := &Label{Text: "Hi", X: 10, Y: 20, Size: 26, Align: raster.AlignLeft}
	runs := glyphRuns(l)
	require.NotEmpty(t, runs)
	for _, r := range runs {
		assert.GreaterOrEqual(t, r.LLx, 10.0)
		assert.LessOrEqual(t, r.URx, 10+raster.TextWidth("Hi", 26))
		assert.LessOrEqual(t, r.URy, 20+2*4.0)
	}
	assert.Nil(t, glyphRuns(&Label{Size: 13}))
}

func TestOver(t *testing.T) {
	half := color.NRGBA{R: 0xff, A: 0x80}
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x7f, B: 0x7f, A: 0xff}, over(half, white))
	assert.Equal(t, red, over(red, white))
}
