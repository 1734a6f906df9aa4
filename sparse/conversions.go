// SPDX-License-Identifier: MIT

// Package sparse - extraction and gonum interop.
//
// Order guarantee: every extraction walks the natural storage order,
// column-major and row-ascending within a column. Consumers must not
// assume any other order.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/triplet"
	"gonum.org/v1/gonum/mat"
)

// Triplets extracts every stored entry, explicit zeros included.
// Complexity: O(nnz + c).
func (m *Matrix) Triplets() *triplet.List {
	out := triplet.New(m.NNZ())
	m.Do(func(i, j int, v float64) bool {
		out.Append(i, j, v)
		return true
	})

	return out
}

// Do calls fn for each stored entry in storage order until fn returns false.
// fn must not mutate m.
func (m *Matrix) Do(fn func(i, j int, v float64) bool) {
	for j := 0; j < m.c; j++ {
		for k := m.colStart[j]; k < m.colStart[j+1]; k++ {
			if !fn(m.rowIdx[k], j, m.vals[k]) {
				return
			}
		}
	}
}

// ToDense materializes m as a gonum dense matrix. A matrix with a zero
// dimension yields an empty (zero-value) *mat.Dense, since gonum rejects
// zero-length shapes in NewDense.
// Complexity: O(r*c + nnz).
func (m *Matrix) ToDense() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.r, m.c, nil)
	m.Do(func(i, j int, v float64) bool {
		d.Set(i, j, v)
		return true
	})

	return d
}

// FromDense stores the non-zero elements of any gonum matrix.
// Zero elements are left implicit.
// Errors: ErrNilMatrix, ErrInvalidSize above WithMaxDim, ErrNaNInf under
// WithRejectNonFinite.
// Complexity: O(r*c + k log k).
func FromDense(a mat.Matrix, opts ...Option) (*Matrix, error) {
	if a == nil {
		return nil, sparseErrorf("FromDense", ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := a.Dims()
	if err := checkShape(r, c, o.maxDim); err != nil {
		return nil, sparseErrorf("FromDense", err)
	}
	var ts []triplet.Triplet
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := a.At(i, j); v != 0 {
				ts = append(ts, triplet.Triplet{Row: i, Col: j, Value: v})
			}
		}
	}
	m, err := finalize("FromDense", r, c, ts, o)
	if err != nil {
		return nil, fmt.Errorf("FromDense(%dx%d): %w", r, c, err)
	}

	return m, nil
}
