// SPDX-License-Identifier: MIT
// Package: sparse
//
// impl_finalize.go - Triplet List → CSC finalize.
//
// Contract:
//   - 0 <= rows, cols <= WithMaxDim ceiling (else ErrInvalidSize).
//   - Every triplet satisfies 0 <= Row < rows and 0 <= Col < cols (else ErrOutOfBounds).
//   - Triplets sharing (row, col) are SUMMED, in insertion order.
//   - Zero sums stay stored (explicit zeros are never compacted).
//   - Atomic: on any error no matrix is returned.
//
// Algorithm:
//   - Stage 1: validate every coordinate (and the numeric policy).
//   - Stage 2: counting pass over columns → provisional colStart.
//   - Stage 3: scatter triplets into their column segment (insertion order kept).
//   - Stage 4: stable sort each segment by row.
//   - Stage 5: in-place compaction that sums runs of equal rows.
//
// Complexity:
//   - Time O(k log k) for k triplets, Space O(k + cols).

package sparse

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsparse/triplet"
)

const methodFromTriplets = "FromTriplets"

// FromTriplets finalizes l into a rows×cols Matrix. A nil list is empty.
func FromTriplets(rows, cols int, l *triplet.List, opts ...Option) (*Matrix, error) {
	return finalize(methodFromTriplets, rows, cols, l.All(), gatherOptions(opts...))
}

// FromEntries is FromTriplets over a plain slice. ts is not modified.
func FromEntries(rows, cols int, ts []triplet.Triplet, opts ...Option) (*Matrix, error) {
	return finalize(methodFromTriplets, rows, cols, ts, gatherOptions(opts...))
}

// finalize is the single CSC assembly kernel shared by every constructor.
func finalize(tag string, rows, cols int, ts []triplet.Triplet, o Options) (*Matrix, error) {
	// 1) Shape and coordinate validation; nothing is allocated before this passes.
	if err := checkShape(rows, cols, o.maxDim); err != nil {
		return nil, sparseErrorf(tag, err)
	}
	for k, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("%s: triplet %d at (%d,%d) outside %dx%d: %w",
				tag, k, t.Row, t.Col, rows, cols, ErrOutOfBounds)
		}
		if o.rejectNonFinite && isNonFinite(t.Value) {
			return nil, fmt.Errorf("%s: triplet %d at (%d,%d): %w", tag, k, t.Row, t.Col, ErrNaNInf)
		}
	}

	// 2) Count entries per column; colStart[j+1] accumulates column j.
	colStart := make([]int, cols+1)
	for _, t := range ts {
		colStart[t.Col+1]++
	}
	for j := 0; j < cols; j++ {
		colStart[j+1] += colStart[j]
	}

	// 3) Scatter into column segments; next[j] is the write cursor of column j.
	k := len(ts)
	rowIdx := make([]int, k)
	vals := make([]float64, k)
	next := make([]int, cols)
	copy(next, colStart[:cols])
	for _, t := range ts {
		p := next[t.Col]
		rowIdx[p] = t.Row
		vals[p] = t.Value
		next[t.Col]++
	}

	// 4) Stable row sort per column keeps duplicate summation order deterministic.
	for j := 0; j < cols; j++ {
		lo, hi := colStart[j], colStart[j+1]
		if hi-lo > 1 {
			sort.Stable(columnSegment{rows: rowIdx[lo:hi], vals: vals[lo:hi]})
		}
	}

	// 5) Compact duplicates in place; w never overtakes the read cursor.
	w := 0
	for j := 0; j < cols; j++ {
		lo, hi := colStart[j], colStart[j+1]
		colStart[j] = w
		for p := lo; p < hi; p++ {
			if w > colStart[j] && rowIdx[w-1] == rowIdx[p] {
				vals[w-1] += vals[p]
				continue
			}
			rowIdx[w] = rowIdx[p]
			vals[w] = vals[p]
			w++
		}
	}
	colStart[cols] = w

	return &Matrix{
		r:               rows,
		c:               cols,
		colStart:        colStart,
		rowIdx:          rowIdx[:w],
		vals:            vals[:w],
		rejectNonFinite: o.rejectNonFinite,
	}, nil
}

// columnSegment sorts one column's (row, value) pairs by row.
type columnSegment struct {
	rows []int
	vals []float64
}

func (s columnSegment) Len() int           { return len(s.rows) }
func (s columnSegment) Less(a, b int) bool { return s.rows[a] < s.rows[b] }
func (s columnSegment) Swap(a, b int) {
	s.rows[a], s.rows[b] = s.rows[b], s.rows[a]
	s.vals[a], s.vals[b] = s.vals[b], s.vals[a]
}
