// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestFromCSC covers valid raw arrays and each corruption class.
func TestFromCSC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		colStart   []int
		rowIdx     []int
		vals       []float64
		wantErr    error
	}{
		{"valid", 3, 2, []int{0, 2, 3}, []int{0, 2, 1}, []float64{1, 2, 3}, nil},
		{"empty", 0, 0, []int{0}, nil, nil, nil},
		{"negative shape", -1, 0, []int{0}, nil, nil, sparse.ErrInvalidSize},
		{"cols above ceiling", 1, sparse.DefaultMaxDim + 1, []int{0}, nil, nil, sparse.ErrInvalidSize},
		{"cols near MaxInt", 1, math.MaxInt, []int{0}, nil, nil, sparse.ErrInvalidSize},
		{"colStart length", 3, 2, []int{0, 2}, []int{0, 1}, []float64{1, 2}, sparse.ErrCorrupt},
		{"colStart[0] != 0", 3, 1, []int{1, 1}, []int{0}, []float64{1}, sparse.ErrCorrupt},
		{"nnz length", 3, 1, []int{0, 2}, []int{0}, []float64{1}, sparse.ErrCorrupt},
		{"non-monotone", 3, 2, []int{0, 2, 1}, []int{0}, []float64{1}, sparse.ErrCorrupt},
		{"row out of range", 2, 1, []int{0, 1}, []int{2}, []float64{1}, sparse.ErrCorrupt},
		{"rows unsorted", 3, 1, []int{0, 2}, []int{1, 0}, []float64{1, 2}, sparse.ErrCorrupt},
		{"rows duplicated", 3, 1, []int{0, 2}, []int{1, 1}, []float64{1, 2}, sparse.ErrCorrupt},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := sparse.FromCSC(tc.rows, tc.cols, tc.colStart, tc.rowIdx, tc.vals)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.NoError(t, sparse.ValidateStructure(m))
		})
	}
}

// TestFromCSC_CopiesInput ensures later caller writes do not leak in.
func TestFromCSC_CopiesInput(t *testing.T) {
	t.Parallel()

	rowIdx := []int{0, 1}
	vals := []float64{5, 6}
	m, err := sparse.FromCSC(2, 1, []int{0, 2}, rowIdx, vals)
	require.NoError(t, err)
	vals[0] = 99
	rowIdx[1] = 0
	v, _ := m.Get(0, 0)
	require.Equal(t, 5.0, v)
	require.NoError(t, sparse.ValidateStructure(m))
}

// TestValidateSameShape covers nil, matching and mismatched operands.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	a := mustFromEntries(t, 2, 3)
	tests := []struct {
		name    string
		a, b    *sparse.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, sparse.ErrNilMatrix},
		{"second nil", a, nil, sparse.ErrNilMatrix},
		{"equal", a, mustFromEntries(t, 2, 3), nil},
		{"rows", a, mustFromEntries(t, 3, 3), sparse.ErrDimensionMismatch},
		{"cols", a, mustFromEntries(t, 2, 4), sparse.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := sparse.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestEqual distinguishes explicit zeros from absent slots.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := mustFromEntries(t, 2, 2, tr(0, 0, 1))
	b := mustFromEntries(t, 2, 2, tr(0, 0, 1), tr(1, 1, 0))
	require.False(t, sparse.Equal(a, b))
	require.True(t, sparse.Equal(a, a.Clone()))
	require.True(t, sparse.Equal(nil, nil))
	require.False(t, sparse.Equal(a, nil))
	require.False(t, sparse.Equal(a, mustFromEntries(t, 2, 3, tr(0, 0, 1))))
	require.ErrorIs(t, sparse.ValidateStructure(nil), sparse.ErrNilMatrix)
}

// TestEqual_BitwiseValues compares stored values bit for bit.
func TestEqual_BitwiseValues(t *testing.T) {
	t.Parallel()

	n := mustFromEntries(t, 1, 1, tr(0, 0, nan()))
	require.True(t, sparse.Equal(n, n.Clone()))
	require.True(t, sparse.Equal(n, mustFromEntries(t, 1, 1, tr(0, 0, nan()))))

	pos := mustFromEntries(t, 1, 1, tr(0, 0, 0))
	neg := mustFromEntries(t, 1, 1, tr(0, 0, math.Copysign(0, -1)))
	require.False(t, sparse.Equal(pos, neg))
}
