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
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/testcases"
)

// The chart is laid out at pxPerDot chart pixels per braille dot, so that
// labels keep a readable size.
const pxPerDot = 3

const (
	headerHeight = 1
	footerHeight = 2
	frameRate    = 30
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})
	tipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6E6E6")).Background(lipgloss.Color("#243141")).Padding(0, 1)
)

type keyMap struct {
	Next     key.Binding
	Restart  key.Binding
	Scenario key.Binding
	Previous key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Scenario, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Restart},
		{k.Scenario, k.Previous},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Next:     key.NewBinding(key.WithKeys(" ", "space", "n"), key.WithHelp("space", "next props")),
	Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Scenario: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next scenario")),
	Previous: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous scenario")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// surface is the Container of the chart.
type surface struct {
	width, height int
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// model is the bubbletea model of the viewer.  The chart and the canvas
// are shared between copies of the model.
type model struct {
	width  int
	height int

	names []string
	idx   int
	opts  chart.Options

	c       chart.Chart
	cont    *surface
	updates []chart.Props
	next    int
	img     *image.RGBA

	tooltip string
	status  string
	help    help.Model
}

func newModel(names []string, start string, opts chart.Options) model {
	m := model{
		names: names,
		opts:  opts,
		cont:  &surface{},
		help:  help.New(),
	}
	for i, name := range names {
		if name == start {
			m.idx = i
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return frame()
}

// chartArea returns the number of terminal cells available for the chart.
func (m model) chartArea() (cols, rows int) {
	return max(m.width, 1), max(m.height-headerHeight-footerHeight, 1)
}

// load replaces the chart by a new one for scenario m.idx.
func (m *model) load() {
	if m.c != nil {
		m.c.Dispose()
		m.c = nil
	}
	name := m.names[m.idx]
	sc, ok := testcases.Lookup(name)
	if !ok {
		m.status = "unknown scenario " + name
		return
	}
	c, err := chart.New(sc.Chart, m.cont, m.opts)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.c = c
	m.updates = sc.Updates()
	m.next = 0
	m.step()
}

// step binds the next props of the scenario.
func (m *model) step() {
	if m.c == nil {
		return
	}
	if m.next >= len(m.updates) {
		m.status = "end of scenario"
		return
	}
	if err := m.c.Update(m.updates[m.next]); err != nil {
		m.status = err.Error()
		return
	}
	m.next++
	m.status = fmt.Sprintf("step %d/%d", m.next, len(m.updates))
}

// resize fits the container and the canvas to the terminal.
func (m *model) resize() {
	cols, rows := m.chartArea()
	m.cont.width = cols * dotsX * pxPerDot
	m.cont.height = rows * dotsY * pxPerDot
	m.img = image.NewRGBA(image.Rect(0, 0, cols*dotsX, rows*dotsY))
	if m.c == nil {
		m.load()
		return
	}
	if err := m.c.Resize(); err != nil {
		m.status = err.Error()
	}
}

// chartPos maps a terminal cell to the chart pixel at its centre.
func (m model) chartPos(x, y int) (float64, float64) {
	px := float64(x*dotsX*pxPerDot) + dotsX*pxPerDot/2
	py := float64((y-headerHeight)*dotsY*pxPerDot) + dotsY*pxPerDot/2
	return px, py
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
	case frameMsg:
		if m.c != nil {
			m.c.Tick()
		}
		return m, frame()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			if m.c != nil {
				m.c.Dispose()
			}
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.step()
		case key.Matches(msg, keys.Restart):
			m.next = 0
			m.step()
		case key.Matches(msg, keys.Scenario):
			m.idx = (m.idx + 1) % len(m.names)
			m.load()
		case key.Matches(msg, keys.Previous):
			m.idx = (m.idx + len(m.names) - 1) % len(m.names)
			m.load()
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.MouseMsg:
		if m.c == nil {
			break
		}
		x, y := m.chartPos(msg.X, msg.Y)
		switch {
		case msg.Action == tea.MouseActionMotion:
			hit, ok := m.c.Hover(x, y)
			m.tooltip = ""
			if ok {
				m.tooltip = hit.Tooltip
			}
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			if hit, ok := m.c.Click(x, y); ok {
				m.status = "selected " + hit.Key
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 || m.img == nil {
		return ""
	}

	header := titleStyle.Render(" chart ─ " + m.names[m.idx] + " ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	var body string
	if m.c != nil {
		m.c.Draw(m.img, m.img.Bounds())
		body = strings.Join(newBrailleBuf(m.img, white).lines(), "\n")
	}

	status := dimStyle.Render(m.status)
	if m.tooltip != "" {
		status = tipStyle.Render(m.tooltip) + " " + status
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(keys))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
