// SPDX-License-Identifier: MIT

// Package sparse - element accessor and mutator.
//
// Purpose:
//   - Get is pure: it never materializes a slot, absent entries read as 0.
//   - Set is the only in-place mutating entry point.
//   - Both accept negative indices counted from the end (-1 is the last row/column).
//
// Cost model:
//   - Get: O(log column-nnz).
//   - Set on a stored slot: O(log column-nnz).
//   - Set on an absent slot: O(nnz) (shift + colStart bump). Prefer FromTriplets
//     when building a matrix entry by entry.

package sparse

import (
	"fmt"
	"slices"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxGet    = "Get"
	ctxSet    = "Set"
	ctxStored = "Stored"
	ctxColumn = "Column"
)

// wrapIndex applies negative wraparound and checks the result against size.
// The returned error carries the ORIGINAL index.
func wrapIndex(idx, size int, dim string) (int, error) {
	eff := idx
	if eff < 0 {
		eff += size
	}
	if eff < 0 || eff >= size {
		return 0, &IndexError{Dim: dim, Index: idx, Size: size}
	}

	return eff, nil
}

// resolve wraps both indices, row first.
func (m *Matrix) resolve(tag string, i, j int) (int, int, error) {
	ei, err := wrapIndex(i, m.r, DimRow)
	if err != nil {
		return 0, 0, sparseErrorf(tag, err)
	}
	ej, err := wrapIndex(j, m.c, DimColumn)
	if err != nil {
		return 0, 0, sparseErrorf(tag, err)
	}

	return ei, ej, nil
}

// search locates row i inside column j. It returns the absolute offset k
// where i is stored (found) or where it would be inserted (not found).
// Indices must already be in range.
func (m *Matrix) search(i, j int) (int, bool) {
	lo, hi := m.colStart[j], m.colStart[j+1]
	k := lo + sort.SearchInts(m.rowIdx[lo:hi], i)

	return k, k < hi && m.rowIdx[k] == i
}

// lookup returns the value at in-range (i, j), 0 when absent.
func (m *Matrix) lookup(i, j int) float64 {
	if k, ok := m.search(i, j); ok {
		return m.vals[k]
	}

	return 0
}

// Get returns the value at (i, j). Negative indices wrap once
// (i += Rows(), j += Cols()). Absent slots read as 0.
// Errors: *IndexError (matches ErrIndexOutOfRange) naming the first bad dimension.
func (m *Matrix) Get(i, j int) (float64, error) {
	ei, ej, err := m.resolve(ctxGet, i, j)
	if err != nil {
		return 0, err
	}

	return m.lookup(ei, ej), nil
}

// Stored reports whether (i, j) is physically stored, telling an explicit
// zero apart from an implicit one. Same wraparound and errors as Get.
func (m *Matrix) Stored(i, j int) (bool, error) {
	ei, ej, err := m.resolve(ctxStored, i, j)
	if err != nil {
		return false, err
	}
	_, ok := m.search(ei, ej)

	return ok, nil
}

// Set writes v at (i, j), inserting the slot when absent.
// Indices and the numeric policy are validated before storage is touched,
// so a failed Set leaves m unchanged.
// Errors: *IndexError (ErrIndexOutOfRange), ErrNaNInf under WithRejectNonFinite.
func (m *Matrix) Set(i, j int, v float64) error {
	ei, ej, err := m.resolve(ctxSet, i, j)
	if err != nil {
		return err
	}
	if m.rejectNonFinite && isNonFinite(v) {
		return fmt.Errorf("%s(%d,%d): %w", ctxSet, i, j, ErrNaNInf)
	}

	k, ok := m.search(ei, ej)
	if ok {
		m.vals[k] = v // cheap path: overwrite in place

		return nil
	}

	// Insert at k, shifting every later entry by one.
	m.rowIdx = slices.Insert(m.rowIdx, k, ei)
	m.vals = slices.Insert(m.vals, k, v)
	for c := ej + 1; c <= m.c; c++ {
		m.colStart[c]++
	}

	return nil
}

// Column returns a copy of the stored entries of column j in row order.
// j wraps like Get.
func (m *Matrix) Column(j int) ([]Entry, error) {
	ej, err := wrapIndex(j, m.c, DimColumn)
	if err != nil {
		return nil, sparseErrorf(ctxColumn, err)
	}
	lo, hi := m.colStart[ej], m.colStart[ej+1]
	out := make([]Entry, 0, hi-lo)
	for k := lo; k < hi; k++ {
		out = append(out, Entry{Row: m.rowIdx[k], Value: m.vals[k]})
	}

	return out, nil
}

// ---------- gonum mat.Matrix ----------

// Dims returns (Rows(), Cols()).
func (m *Matrix) Dims() (r, c int) { return m.r, m.c }

// At returns the value at (i, j) without wraparound. Following the gonum
// contract it panics with mat.ErrRowAccess / mat.ErrColAccess when out of range.
// Use Get for the error-returning, wrapping accessor.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.c {
		panic(mat.ErrColAccess)
	}

	return m.lookup(i, j)
}

// T returns the implicit transpose of m.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }
