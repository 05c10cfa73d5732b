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


// Command charttui shows the chart scenarios in a terminal, drawn with
// braille characters.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/config"
	"seehuhn.de/go/chart/testcases"
)

func main() {
	start := flag.String("scenario", "bar_grouped", "first scenario to show")
	cfgPath := flag.String("config", "", "configuration file (.yaml or .toml)")
	flag.Parse()

	// the terminal belongs to the viewer
	opts := chart.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		opts.Config = cfg
	}

	m := newModel(testcases.Names(), *start, opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
