// SPDX-License-Identifier: MIT

// Package sparse - compressed sparse column (CSC) storage.
//
// Layout:
//   - colStart has c+1 entries; column j owns rowIdx/vals[colStart[j]:colStart[j+1]].
//   - Inside a column, rowIdx is strictly increasing.
//   - colStart[c] == nnz; colStart[0] == 0.
//   - Stored values may be exactly zero; only absent slots are implicit zeros.
//
// Complexity quicksheet:
//   - Rows/Cols/NNZ: O(1); Clone: O(nnz + c); String: O(r*c).

package sparse

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Formatting literals.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an r×c sparse matrix in compressed column form.
// A Matrix is exclusively owned by its holder; Set requires the caller to
// serialize access (see Slot).
type Matrix struct {
	r, c            int       // shape, immutable after construction
	colStart        []int     // len c+1, non-decreasing, colStart[0]==0
	rowIdx          []int     // len nnz, strictly increasing per column
	vals            []float64 // len nnz, aligned with rowIdx
	rejectNonFinite bool      // numeric policy captured at construction
}

// Compile-time assertions for gonum and fmt conformance.
var (
	_ mat.Matrix   = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
	_ Operand      = (*Matrix)(nil)
)

// New returns an empty rows×cols matrix (nnz = 0).
// Errors: ErrInvalidSize if rows or cols is negative or above WithMaxDim.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := checkShape(rows, cols, o.maxDim); err != nil {
		return nil, sparseErrorf("New", err)
	}

	return newEmpty(rows, cols, 0, o.rejectNonFinite), nil
}

// newEmpty allocates a matrix with all-zero colStart and room for capacity entries.
func newEmpty(rows, cols, capacity int, rejectNonFinite bool) *Matrix {
	return &Matrix{
		r:               rows,
		c:               cols,
		colStart:        make([]int, cols+1),
		rowIdx:          make([]int, 0, capacity),
		vals:            make([]float64, 0, capacity),
		rejectNonFinite: rejectNonFinite,
	}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// NNZ returns the number of explicitly stored entries, zeros included.
func (m *Matrix) NNZ() int { return m.colStart[m.c] }

// Clone returns a deep copy sharing no storage with m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		r:               m.r,
		c:               m.c,
		colStart:        make([]int, len(m.colStart)),
		rowIdx:          make([]int, len(m.rowIdx)),
		vals:            make([]float64, len(m.vals)),
		rejectNonFinite: m.rejectNonFinite,
	}
	copy(out.colStart, m.colStart)
	copy(out.rowIdx, m.rowIdx)
	copy(out.vals, m.vals)

	return out
}

// String renders the matrix densely, one bracketed row per line.
// Intended for debugging small matrices.
func (m *Matrix) String() string {
	var sb strings.Builder
	row := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			row[j] = m.lookup(i, j)
		}
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
