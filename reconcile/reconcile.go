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

// Package reconcile partitions a new data snapshot against the previous
// marks of a chart into entering, updating and exiting sets.
package reconcile

import (
	"errors"
	"fmt"

	"seehuhn.de/go/chart/element"
)

// ErrDuplicateKey is matched by every *DuplicateKeyError.
var ErrDuplicateKey = errors.New("duplicate key")

// DuplicateKeyError reports two data items with the same key.
type DuplicateKeyError struct {
	Key         string
	First, Next int // indices of the two items in the data
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q at data indices %d and %d", e.Key, e.First, e.Next)
}

// Is reports whether target is ErrDuplicateKey.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// Join pairs a data item with its key and, for updates, with the existing
// element.
type Join[D any] struct {
	Index int // position in the new data
	Key   string
	Datum D

	// Elem is the previous element for updates and nil for entering
	// items.
	Elem *element.Element
}

// Result is the three-way partition computed by Reconcile.
type Result[D any] struct {
	// Entering and Updating follow the order of the new data.
	Entering []Join[D]
	Updating []Join[D]

	// Exiting holds the previous elements whose key is gone, in their
	// previous order.
	Exiting []*element.Element

	// Order holds every join in data order.
	Order []Join[D]
}

// Reconcile diffs the previous elements against data.
//
// Each data item is keyed with key.  Items whose key matches a previous
// element become updates, including elements that were already leaving;
// all other items are entering.  Previous elements whose key does not
// occur in data are exiting.  Elements already marked as exiting are
// reported again so that the caller can keep them until their exit
// transition ends.
//
// If two data items share a key, a *DuplicateKeyError is returned and
// the result is nil.
func Reconcile[D any](prev []*element.Element, data []D, key func(D) string) (*Result[D], error) {
	byKey := make(map[string]*element.Element, len(prev))
	for _, e := range prev {
		// A live element wins over a leaving one with the same key.
		if old, ok := byKey[e.Key]; ok && !old.Exiting() {
			continue
		}
		byKey[e.Key] = e
	}

	seen := make(map[string]int, len(data))
	res := &Result[D]{
		Order: make([]Join[D], 0, len(data)),
	}
	for i, d := range data {
		k := key(d)
		if first, dup := seen[k]; dup {
			return nil, &DuplicateKeyError{Key: k, First: first, Next: i}
		}
		seen[k] = i

		j := Join[D]{Index: i, Key: k, Datum: d}
		if e, ok := byKey[k]; ok {
			j.Elem = e
			res.Updating = append(res.Updating, j)
		} else {
			res.Entering = append(res.Entering, j)
		}
		res.Order = append(res.Order, j)
	}

	for _, e := range prev {
		if _, kept := seen[e.Key]; kept && byKey[e.Key] == e {
			continue
		}
		res.Exiting = append(res.Exiting, e)
	}
	return res, nil
}
