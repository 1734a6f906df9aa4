// SPDX-License-Identifier: MIT

package sparse

import "fmt"

const methodIdentity = "Identity"

// Identity returns the n×n identity with exactly n stored ones.
// Errors: ErrInvalidSize if n < 0 or n exceeds the ceiling
// (DefaultMaxIdentity unless WithMaxIdentity is given).
// Complexity: O(n).
func Identity(n int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if n < 0 || n > o.maxIdentity {
		return nil, fmt.Errorf("%s: n=%d not in [0,%d]: %w", methodIdentity, n, o.maxIdentity, ErrInvalidSize)
	}

	// One entry per column, so colStart is simply 0..n.
	m := newEmpty(n, n, n, o.rejectNonFinite)
	for k := 0; k < n; k++ {
		m.push(k, 1.0)
		m.colStart[k+1] = k + 1
	}

	return m, nil
}
