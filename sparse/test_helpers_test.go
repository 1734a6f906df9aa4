// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures shared by the kernel tests.
//   • Random triplet generators with exact small-integer values.

package sparse_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/triplet"
	"github.com/stretchr/testify/require"
)

// mustFromEntries finalizes ts into a rows×cols matrix or fails the test.
func mustFromEntries(tb testing.TB, rows, cols int, ts ...triplet.Triplet) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.FromEntries(rows, cols, ts)
	require.NoError(tb, err)
	require.NoError(tb, sparse.ValidateStructure(m))

	return m
}

// tr is a terse Triplet literal.
func tr(i, j int, v float64) triplet.Triplet {
	return triplet.Triplet{Row: i, Col: j, Value: v}
}

// stored returns the stored triples of m in storage order.
func stored(m *sparse.Matrix) []triplet.Triplet {
	return m.Triplets().All()
}

// randomTriplets draws k coordinates in rows×cols with small integer values,
// so sums stay exact in float64. Duplicates are likely on small shapes.
func randomTriplets(rng *rand.Rand, rows, cols, k int) []triplet.Triplet {
	out := make([]triplet.Triplet, k)
	for p := range out {
		out[p] = tr(rng.Intn(rows), rng.Intn(cols), float64(rng.Intn(19)-9))
	}

	return out
}

// uniqueNonZero keeps the first occurrence of each coordinate and drops zeros,
// producing input that round-trips exactly.
func uniqueNonZero(ts []triplet.Triplet) []triplet.Triplet {
	type key struct{ i, j int }
	seen := make(map[key]bool, len(ts))
	out := ts[:0:0]
	for _, t := range ts {
		k := key{t.Row, t.Col}
		if seen[k] || t.Value == 0 {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}

	return out
}

// nan returns a quiet NaN for numeric-policy tests.
func nan() float64 { return math.NaN() }
