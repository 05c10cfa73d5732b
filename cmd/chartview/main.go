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


// Command chartview shows a chart scenario in a desktop window.
//
// Space binds the next props of the scenario, R starts again from the
// first.  Hovering shows the tooltip of the mark under the pointer, a
// click selects it, and dragging selects all marks in a rectangle.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/config"
	"seehuhn.de/go/chart/testcases"
)

func main() {
	name := flag.String("scenario", "bar_grouped", "scenario to show")
	cfgPath := flag.String("config", "", "configuration file (.yaml or .toml)")
	zoom := flag.Int("zoom", 2, "pixels per chart pixel")
	verbose := flag.Bool("v", false, "log every render")
	list := flag.Bool("list", false, "list the scenarios and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(testcases.Names(), "\n"))
		return
	}

	sc, ok := testcases.Lookup(*name)
	if !ok {
		log.Fatalf("unknown scenario %q", *name)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	opts := chart.Options{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		opts.Config = cfg
	}

	g, err := newGame(sc, *zoom, opts)
	if err != nil {
		log.Fatal(err)
	}
	defer g.c.Dispose()

	ebiten.SetWindowTitle("chartview: " + *name)
	ebiten.SetWindowSize(sc.Width**zoom, sc.Height**zoom)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
