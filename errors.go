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
	"errors"

	"seehuhn.de/go/chart/engine"
)

// ConfigurationError reports a chart which cannot be created or updated
// because it was set up incorrectly.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnknownChartType is wrapped by the error returned for names
	// missing from the registry.
	ErrUnknownChartType = errors.New("chart type not implemented")

	// ErrInvalidContainer is wrapped by the error returned for a nil
	// container, or one without area.
	ErrInvalidContainer = errors.New("container is undefined")

	// ErrPropsType is wrapped by the error returned when the props do not
	// match the chart type.
	ErrPropsType = errors.New("wrong props type for chart")

	// ErrNotInitialized is returned when the first update does not allow
	// to compute the scales, for example because the domain is empty.
	ErrNotInitialized = errors.New("chart not initialized")

	// ErrDisposed is returned by operations on a disposed chart.
	ErrDisposed = engine.ErrDisposed
)
