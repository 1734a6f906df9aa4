// SPDX-License-Identifier: MIT
// Package: sparse
//
// impl_generator.go - build a matrix from a caller-supplied per-column producer.
//
// Contract:
//   - 0 <= rows, cols <= maxDim (else ErrInvalidSize); gen != nil (else ErrNilGenerator).
//   - gen.Column(j) is invoked EXACTLY once per column, for j = 0, 1, ..., cols-1,
//     in that order. Producers may have side effects, so the order is observable.
//   - Each returned Entry must satisfy 0 <= Row < rows (else ErrMalformedGeneratorOutput).
//   - A producer error stops generation; it is wrapped so errors.Is still sees it.
//   - Duplicated rows within a column are summed by finalize.
//
// Complexity:
//   - Time O(cols + k log k) for k produced entries, Space O(k + cols).

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/triplet"
)

const methodFromColumnGenerator = "FromColumnGenerator"

// Entry is one (row, value) pair of a column.
type Entry struct {
	Row   int
	Value float64
}

// ColumnGenerator produces the stored entries of column j.
type ColumnGenerator interface {
	Column(j int) ([]Entry, error)
}

// ColumnFunc adapts an ordinary function to ColumnGenerator.
type ColumnFunc func(j int) ([]Entry, error)

// Column calls f(j).
func (f ColumnFunc) Column(j int) ([]Entry, error) { return f(j) }

// FromColumnGenerator builds a rows×cols matrix by asking gen for each column.
func FromColumnGenerator(gen ColumnGenerator, rows, cols int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// 1) Validate inputs before the producer is ever called.
	if err := checkShape(rows, cols, o.maxDim); err != nil {
		return nil, sparseErrorf(methodFromColumnGenerator, err)
	}
	if fn, ok := gen.(ColumnFunc); gen == nil || (ok && fn == nil) {
		return nil, sparseErrorf(methodFromColumnGenerator, ErrNilGenerator)
	}

	// 2) Pull columns in increasing order, accumulating triplets.
	acc := triplet.New(cols)
	for j := 0; j < cols; j++ {
		entries, err := gen.Column(j)
		if err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", methodFromColumnGenerator, j, err)
		}
		for k, e := range entries {
			if e.Row < 0 || e.Row >= rows {
				return nil, fmt.Errorf("%s: column %d entry %d has row %d outside [0,%d): %w",
					methodFromColumnGenerator, j, k, e.Row, rows, ErrMalformedGeneratorOutput)
			}
			acc.Append(e.Row, j, e.Value)
		}
	}

	// 3) Finalize through the shared kernel.
	return finalize(methodFromColumnGenerator, rows, cols, acc.All(), o)
}
