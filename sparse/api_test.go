// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/triplet"
	"github.com/stretchr/testify/require"
)

// TestFacades_Delegate checks every facade matches its canonical kernel.
func TestFacades_Delegate(t *testing.T) {
	t.Parallel()

	l := triplet.New(3)
	l.Append(0, 0, 1)
	l.Append(1, 1, 2)
	l.Append(1, 1, 3)
	A, err := sparse.FromList(l, 2, 2)
	require.NoError(t, err)
	v, err := sparse.Elem(A, -1, -1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	out, err := sparse.ToList(A)
	require.NoError(t, err)
	require.Equal(t, []triplet.Triplet{tr(0, 0, 1), tr(1, 1, 5)}, out.All())

	require.NoError(t, sparse.SetElem(A, 0, 1, 7))
	B := mustFromEntries(t, 2, 2, tr(0, 1, 1))

	sum, err := sparse.Sum(A, B)
	require.NoError(t, err)
	add, _ := sparse.Add(A, B)
	require.True(t, sparse.Equal(add, sum))

	diff, err := sparse.Diff(A, B)
	require.NoError(t, err)
	sub, _ := sparse.Sub(A, B)
	require.True(t, sparse.Equal(sub, diff))

	hp, err := sparse.HadamardProd(A, B)
	require.NoError(t, err)
	require.Equal(t, []triplet.Triplet{tr(0, 1, 7)}, stored(hp))

	sb, err := sparse.ScaleBy(A, 2)
	require.NoError(t, err)
	sc, _ := sparse.Scale(2, A)
	require.True(t, sparse.Equal(sc, sb))
}

// TestFacades_Nil checks nil handling in facades that dereference.
func TestFacades_Nil(t *testing.T) {
	t.Parallel()

	_, err := sparse.ToList(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = sparse.Elem(nil, 0, 0)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	require.ErrorIs(t, sparse.SetElem(nil, 0, 0, 1), sparse.ErrNilMatrix)
}
