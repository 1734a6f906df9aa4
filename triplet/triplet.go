// SPDX-License-Identifier: MIT

// Package triplet - coordinate (row, col, value) records and the unordered
// Triplet List used as the exchange format of the sparse engine.
//
// Purpose:
//   - Give callers a cheap, append-only buffer to describe a matrix entry by entry.
//   - Stay dimension-free: coordinates are validated by the consumer (sparse.FromTriplets),
//     not at Append time, so one List can be finalized into several shapes.
//
// Policy:
//   - Duplicated (row, col) pairs are legal and carry additive meaning downstream.
//   - Order of insertion carries no meaning; SortColumnMajor yields the canonical order.
//
// Complexity quicksheet:
//   - Append/Push: amortized O(1); At/Len: O(1); All: O(k); SortColumnMajor: O(k log k).
package triplet

import (
	"fmt"
	"sort"
)

// Triplet is one (row, col, value) record.
type Triplet struct {
	Row   int     // row coordinate (>= 0 once validated)
	Col   int     // column coordinate (>= 0 once validated)
	Value float64 // stored value; may be 0
}

// String renders the triplet as "(row,col)=value".
func (t Triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%g", t.Row, t.Col, t.Value)
}

// List is an insertion-order-irrelevant sequence of triplets.
// The zero value is an empty list ready for use.
type List struct {
	data []Triplet
}

// New returns an empty List with room for capacity triplets.
// Negative capacity is treated as zero.
func New(capacity int) *List {
	if capacity < 0 {
		capacity = 0
	}

	return &List{data: make([]Triplet, 0, capacity)}
}

// FromSlice returns a List holding a copy of ts.
func FromSlice(ts []Triplet) *List {
	l := New(len(ts))
	l.data = append(l.data, ts...)

	return l
}

// Append records (row, col, v). Coordinates are not validated here.
// Complexity: amortized O(1).
func (l *List) Append(row, col int, v float64) {
	l.data = append(l.data, Triplet{Row: row, Col: col, Value: v})
}

// Push records an already-built Triplet.
func (l *List) Push(t Triplet) {
	l.data = append(l.data, t)
}

// Len reports the number of recorded triplets. A nil *List has length 0.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.data)
}

// At returns the k-th recorded triplet. It panics if k is out of range,
// matching slice indexing.
func (l *List) At(k int) Triplet {
	return l.data[k]
}

// All returns a copy of the recorded triplets in their current order.
func (l *List) All() []Triplet {
	if l == nil {
		return nil
	}
	out := make([]Triplet, len(l.data))
	copy(out, l.data)

	return out
}

// Reset empties the list, keeping the allocated capacity.
func (l *List) Reset() {
	l.data = l.data[:0]
}

// Shape returns the smallest (rows, cols) that contains every recorded
// coordinate: (max row + 1, max col + 1). An empty list yields (0, 0).
// Negative coordinates do not contribute.
func (l *List) Shape() (rows, cols int) {
	if l == nil {
		return 0, 0
	}
	for _, t := range l.data {
		if t.Row+1 > rows {
			rows = t.Row + 1
		}
		if t.Col+1 > cols {
			cols = t.Col + 1
		}
	}

	return rows, cols
}

// SortColumnMajor orders the list by (col, row). The sort is stable, so
// duplicates keep their relative insertion order.
// Complexity: O(k log k).
func (l *List) SortColumnMajor() {
	sort.SliceStable(l.data, func(a, b int) bool {
		if l.data[a].Col != l.data[b].Col {
			return l.data[a].Col < l.data[b].Col
		}

		return l.data[a].Row < l.data[b].Row
	})
}
