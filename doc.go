// Package lvsparse is an in-memory sparse matrix engine: store, build,
// query, mutate and combine mostly-zero float64 matrices in time and space
// proportional to the number of stored entries.
//
// Under the hood, everything is organized under two subpackages:
//
//	triplet/ - (row, col, value) records and the unordered Triplet List
//	sparse/  - compressed sparse column Matrix, finalize, Get/Set,
//	           Add/Sub/Hadamard/Scale, Identity, column generators,
//	           gonum interop and a locked Slot for shared use
//
// Quick example:
//
//	l := triplet.New(2)
//	l.Append(0, 0, 2)
//	l.Append(0, 0, 3)               // duplicates are summed
//	A, _ := sparse.FromTriplets(2, 2, l)
//	v, _ := A.Get(-2, -2)           // negative indices wrap: v == 5
//	B, _ := sparse.Mul(sparse.Scalar(2), A)
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
