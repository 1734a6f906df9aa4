// SPDX-License-Identifier: MIT
// Package sparse - public API facades.
//
// Purpose:
//   - Offer entry points named after the operations a host runtime exposes
//     (fromList, toList, eye, fromColFn, elem, setElem, add, sub, mul).
//   - Each facade delegates to the canonical kernel; no logic lives here.

package sparse

import "github.com/katalvlaran/lvsparse/triplet"

// FromList is an alias for FromTriplets.
func FromList(l *triplet.List, rows, cols int, opts ...Option) (*Matrix, error) {
	return FromTriplets(rows, cols, l, opts...)
}

// ToList is an alias for (*Matrix).Triplets.
func ToList(m *Matrix) (*triplet.List, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf("ToList", err)
	}

	return m.Triplets(), nil
}

// Eye is an alias for Identity.
func Eye(n int, opts ...Option) (*Matrix, error) { return Identity(n, opts...) }

// FromColFn builds a matrix from a plain per-column function.
func FromColFn(fn func(j int) ([]Entry, error), rows, cols int, opts ...Option) (*Matrix, error) {
	return FromColumnGenerator(ColumnFunc(fn), rows, cols, opts...)
}

// Elem is an alias for (*Matrix).Get.
func Elem(m *Matrix, i, j int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, sparseErrorf("Elem", err)
	}

	return m.Get(i, j)
}

// SetElem is an alias for (*Matrix).Set.
func SetElem(m *Matrix, i, j int, v float64) error {
	if err := ValidateNotNil(m); err != nil {
		return sparseErrorf("SetElem", err)
	}

	return m.Set(i, j, v)
}

// Sum is an alias for Add.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// HadamardProd is an alias for Hadamard.
func HadamardProd(a, b *Matrix) (*Matrix, error) { return Hadamard(a, b) }

// ScaleBy is Scale with the matrix first.
func ScaleBy(m *Matrix, alpha float64) (*Matrix, error) { return Scale(alpha, m) }
