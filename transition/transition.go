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

// Package transition animates element attributes over time.
//
// A Scheduler owns every running transition of one chart.  Transitions
// advance only when Tick is called, all of them against the same clock
// reading, so the scheduler is driven cooperatively by whatever frame
// loop the host provides.
package transition

import (
	"slices"
	"sync/atomic"
	"time"

	"seehuhn.de/go/chart/element"
)

// Clock is the time source of a Scheduler.  Now must never decrease.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock which starts at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a clock which only moves when told to.  It is used in
// tests and by hosts which count frames rather than wall time.
type ManualClock struct {
	t atomic.Int64
}

// Now returns the current reading.
func (c *ManualClock) Now() time.Duration {
	return time.Duration(c.t.Load())
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.t.Add(int64(d))
	}
}

// Handle refers to one transition.
type Handle struct {
	elem     *element.Element
	from, to element.Attrs
	start    time.Duration
	delay    time.Duration
	duration time.Duration
	onEnd    func()
	done     bool
}

// OnEnd registers fn to run once the transition has completed.  It is not
// run if the transition is cancelled.
func (h *Handle) OnEnd(fn func()) *Handle {
	h.onEnd = fn
	return h
}

// Done reports whether the transition has completed or was cancelled.
func (h *Handle) Done() bool {
	return h.done
}

// Target returns the attributes the transition is heading towards.
func (h *Handle) Target() element.Attrs {
	return h.to
}

// sample writes the interpolated attributes at clock time now into the
// element.
func (h *Handle) sample(now time.Duration) {
	elapsed := now - h.start - h.delay
	if elapsed < 0 {
		return
	}
	t := 1.0
	if h.duration > 0 && elapsed < h.duration {
		t = float64(elapsed) / float64(h.duration)
	}
	h.elem.Attrs = element.Lerp(h.from, h.to, t)
}

func (h *Handle) finished(now time.Duration) bool {
	return now-h.start >= h.delay+h.duration
}

// Scheduler runs the transitions of one chart.  It is not safe for
// concurrent use.
type Scheduler struct {
	clock  Clock
	active []*Handle // in start order
	byElem map[*element.Element]*Handle
}

// NewScheduler returns an empty scheduler reading the given clock.  A nil
// clock selects a SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Scheduler{
		clock:  clock,
		byElem: make(map[*element.Element]*Handle),
	}
}

// Clock returns the time source of the scheduler.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Animate starts a transition of e towards the attributes to.  Nothing
// changes until delay has passed; afterwards the attributes are
// interpolated linearly over duration.
//
// The transition starts from the current attributes of e.  If e already
// has a transition in flight, that transition is first evaluated at the
// current clock time, so that e holds its exact intermediate value, and
// then cancelled.
func (s *Scheduler) Animate(e *element.Element, to element.Attrs, duration, delay time.Duration) *Handle {
	now := s.clock.Now()
	if old, ok := s.byElem[e]; ok {
		old.sample(now)
		s.cancel(old)
	}

	h := &Handle{
		elem:     e,
		from:     e.Attrs,
		to:       to,
		start:    now,
		delay:    max(delay, 0),
		duration: max(duration, 0),
	}
	s.active = append(s.active, h)
	s.byElem[e] = h
	return h
}

// Cancel stops the transition h.  The element keeps the attribute values
// of the last tick.
func (s *Scheduler) Cancel(h *Handle) {
	if h == nil || h.done {
		return
	}
	s.cancel(h)
}

func (s *Scheduler) cancel(h *Handle) {
	h.done = true
	if s.byElem[h.elem] == h {
		delete(s.byElem, h.elem)
	}
}

// Tick advances every transition to the current clock time, in the order
// the transitions were started.  Completed transitions are removed and
// their OnEnd callbacks run, after all transitions have been advanced.
// Tick reports whether any transition is still running.
func (s *Scheduler) Tick() bool {
	now := s.clock.Now()

	var ended []*Handle
	keep := s.active[:0]
	for _, h := range s.active {
		if h.done {
			continue
		}
		h.sample(now)
		if h.finished(now) {
			s.cancel(h)
			ended = append(ended, h)
			continue
		}
		keep = append(keep, h)
	}
	clear(s.active[len(keep):])
	s.active = keep

	for _, h := range ended {
		if h.onEnd != nil {
			h.onEnd()
		}
	}
	return len(s.active) > 0
}

// Active returns the transition currently running on e, if any.
func (s *Scheduler) Active(e *element.Element) (*Handle, bool) {
	h, ok := s.byElem[e]
	return h, ok
}

// Len returns the number of running transitions.
func (s *Scheduler) Len() int {
	return len(s.byElem)
}

// StopAll cancels every transition without running any OnEnd callback.
func (s *Scheduler) StopAll() {
	for _, h := range s.active {
		h.done = true
	}
	clear(s.active)
	s.active = s.active[:0]
	clear(s.byElem)
}

// Elements returns the elements with a running transition, in start
// order.
func (s *Scheduler) Elements() []*element.Element {
	res := make([]*element.Element, 0, len(s.byElem))
	for _, h := range s.active {
		if !h.done {
			res = append(res, h.elem)
		}
	}
	return slices.Clip(res)
}
