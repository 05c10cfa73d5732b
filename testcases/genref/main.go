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


// Command genref writes reference images for the chart scenarios.
// Every scenario is exported as PNG, SVG and PDF.  If Ghostscript is
// installed, the PDF is also rendered to a second PNG for comparison.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}
	_, gsErr := exec.LookPath("gs")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := generate(sc, name, logger); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if gsErr != nil {
				continue
			}
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+"_gs.png")
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(sc testcases.Scenario, name string, logger *slog.Logger) error {
	c, err := testcases.Play(sc, logger)
	if err != nil {
		return err
	}
	defer c.Dispose()

	for _, f := range []chart.Format{chart.PNG, chart.SVG, chart.PDF} {
		fname := filepath.Join(refDir, name+"."+f.String())
		if err := c.ExportFile(fname, f); err != nil {
			return err
		}
	}
	return nil
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
