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


package testcases

import (
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/transition"
)

// surface is a Container whose size scenarios can change.
type surface struct {
	width, height int
}

func (s *surface) Size() (int, int) {
	return s.width, s.height
}

// Play creates the chart of sc and applies all steps.  Time only passes
// in Advance steps.  The caller must dispose the chart.
func Play(sc Scenario, logger *slog.Logger) (chart.Chart, error) {
	clock := &transition.ManualClock{}
	cont := &surface{width: sc.Width, height: sc.Height}
	c, err := chart.New(sc.Chart, cont, chart.Options{Logger: logger, Clock: clock})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sc.Name, err)
	}
	for i, step := range sc.Steps {
		err := apply(c, cont, clock, step)
		if err != nil {
			c.Dispose()
			return nil, fmt.Errorf("%s: step %d: %w", sc.Name, i, err)
		}
	}
	return c, nil
}

var errNoHit = errors.New("click missed")

func apply(c chart.Chart, cont *surface, clock *transition.ManualClock, step Step) error {
	switch s := step.(type) {
	case Update:
		return c.Update(s.Props)
	case Advance:
		clock.Advance(s.D)
		c.Tick()
	case Resize:
		cont.width, cont.height = s.Width, s.Height
		return c.Resize()
	case Click:
		if _, ok := c.Click(s.X, s.Y); !ok {
			return fmt.Errorf("(%g, %g): %w", s.X, s.Y, errNoHit)
		}
	default:
		return fmt.Errorf("unknown step %T", step)
	}
	return nil
}
