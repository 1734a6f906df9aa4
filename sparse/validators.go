// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single source of truth for nil/shape/structure checks.
//  - Return tagged sentinels so kernels can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b share
// rows and cols. Assumes both are non-nil.
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d != %d", a.r, b.r), ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: cols %d != %d", a.c, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// checkShape rejects negative dimensions and dimensions above maxDim.
// Every constructor that allocates colStart runs it first.
func checkShape(rows, cols, maxDim int) error {
	if rows < 0 || cols < 0 || rows > maxDim || cols > maxDim {
		return fmt.Errorf("shape %dx%d, limit %d: %w", rows, cols, maxDim, ErrInvalidSize)
	}

	return nil
}

// ValidateStructure checks the CSC invariants of m: colStart shape and
// monotonicity, aligned lengths, strictly increasing in-range rows per column.
// Errors: ErrNilMatrix, ErrCorrupt.
// Complexity: O(nnz + c).
func ValidateStructure(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return checkCompressed(m.r, m.c, m.colStart, m.rowIdx, m.vals)
}

// checkCompressed validates raw compressed arrays against a rows×cols shape.
func checkCompressed(rows, cols int, colStart, rowIdx []int, vals []float64) error {
	const tag = "ValidateStructure"
	if rows < 0 || cols < 0 {
		return validatorErrorf(tag, ErrInvalidSize)
	}
	if len(colStart) != cols+1 {
		return fmt.Errorf("%s: len(colStart)=%d, want %d: %w", tag, len(colStart), cols+1, ErrCorrupt)
	}
	if colStart[0] != 0 {
		return fmt.Errorf("%s: colStart[0]=%d: %w", tag, colStart[0], ErrCorrupt)
	}
	nnz := colStart[cols]
	if len(rowIdx) != nnz || len(vals) != nnz {
		return fmt.Errorf("%s: nnz=%d but len(rowIdx)=%d len(vals)=%d: %w",
			tag, nnz, len(rowIdx), len(vals), ErrCorrupt)
	}
	for j := 0; j < cols; j++ {
		lo, hi := colStart[j], colStart[j+1]
		if hi < lo || hi > nnz {
			return fmt.Errorf("%s: colStart not monotone at column %d: %w", tag, j, ErrCorrupt)
		}
		for k := lo; k < hi; k++ {
			if rowIdx[k] < 0 || rowIdx[k] >= rows {
				return fmt.Errorf("%s: row %d out of range in column %d: %w", tag, rowIdx[k], j, ErrCorrupt)
			}
			if k > lo && rowIdx[k] <= rowIdx[k-1] {
				return fmt.Errorf("%s: rows not strictly increasing in column %d: %w", tag, j, ErrCorrupt)
			}
		}
	}

	return nil
}

// FromCSC builds a Matrix from raw compressed arrays after validating them.
// Inputs are copied; the caller keeps ownership of its slices.
// Errors: ErrInvalidSize (negative or above WithMaxDim), ErrCorrupt,
// ErrNaNInf under WithRejectNonFinite.
func FromCSC(rows, cols int, colStart, rowIdx []int, vals []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := checkShape(rows, cols, o.maxDim); err != nil {
		return nil, sparseErrorf("FromCSC", err)
	}
	if err := checkCompressed(rows, cols, colStart, rowIdx, vals); err != nil {
		return nil, sparseErrorf("FromCSC", err)
	}
	if o.rejectNonFinite {
		for k, v := range vals {
			if isNonFinite(v) {
				return nil, fmt.Errorf("FromCSC: vals[%d]: %w", k, ErrNaNInf)
			}
		}
	}
	m := &Matrix{
		r:               rows,
		c:               cols,
		colStart:        append([]int(nil), colStart...),
		rowIdx:          append(make([]int, 0, len(rowIdx)), rowIdx...),
		vals:            append(make([]float64, 0, len(vals)), vals...),
		rejectNonFinite: o.rejectNonFinite,
	}

	return m, nil
}

// Equal reports whether a and b have the same shape and exactly the same
// stored (row, col, value) entries. Explicit zeros count as stored.
// Values compare bit for bit: a stored NaN equals the same NaN, and 0 and
// -0 differ. Two nil matrices are equal.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c || a.NNZ() != b.NNZ() {
		return false
	}
	for j := 0; j <= a.c; j++ {
		if a.colStart[j] != b.colStart[j] {
			return false
		}
	}
	for k := range a.rowIdx {
		if a.rowIdx[k] != b.rowIdx[k] || math.Float64bits(a.vals[k]) != math.Float64bits(b.vals[k]) {
			return false
		}
	}

	return true
}
