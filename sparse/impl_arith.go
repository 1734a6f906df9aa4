// SPDX-License-Identifier: MIT
// Package: sparse
//
// impl_arith.go - arithmetic engine over two CSC operands.
//
// Contract:
//   - Every kernel is pure: operands are read, a fresh Matrix is returned.
//   - Add/Sub: union merge per column; overlaps combine and an exact-zero
//     result stays stored (no cancellation compaction).
//   - Hadamard: intersection per column; one-sided rows are dropped.
//   - Scale: structure copied verbatim, values multiplied, explicit zeros kept.
//   - "Multiply" (Mul) means the elementwise product for two matrices and
//     scaling when one side is a Scalar. There is no linear-algebraic product.
//   - The result inherits the numeric policy of the left matrix operand. Under
//     WithRejectNonFinite a computed NaN/±Inf (overflow, 0·Inf, Scale(NaN, m))
//     fails the call with ErrNaNInf and no matrix is returned.
//
// Complexity:
//   - Add/Sub: O(nnzA + nnzB + c).
//   - Hadamard: O(min(nnzA, nnzB) · log) on unbalanced columns, O(nnzA + nnzB) otherwise.
//   - Scale: O(nnz + c).

package sparse

import (
	"fmt"
	"sort"
)

const (
	methodAdd      = "Add"
	methodSub      = "Sub"
	methodHadamard = "Hadamard"
	methodScale    = "Scale"
	methodMul      = "Mul"

	// gallopRatio is the column-length ratio above which Hadamard switches
	// from a two-pointer walk to binary searches in the longer column.
	gallopRatio = 8
)

// Operand is either a Scalar or a *Matrix; Mul dispatches on it.
type Operand interface {
	operand()
}

// Scalar is a bare float64 operand for Mul.
type Scalar float64

func (Scalar) operand()  {}
func (*Matrix) operand() {}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func Add(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, sparseErrorf(methodAdd, err)
	}

	return checkResult(methodAdd, merge(a, b, 1))
}

// Sub returns a − b. Rows stored only in b appear negated.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func Sub(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, sparseErrorf(methodSub, err)
	}

	return checkResult(methodSub, merge(a, b, -1))
}

// merge walks both operands column by column; sign is +1 (add) or -1 (sub).
func merge(a, b *Matrix, sign float64) *Matrix {
	out := newEmpty(a.r, a.c, a.NNZ()+b.NNZ(), a.rejectNonFinite)
	for j := 0; j < a.c; j++ {
		p, pEnd := a.colStart[j], a.colStart[j+1]
		q, qEnd := b.colStart[j], b.colStart[j+1]
		for p < pEnd || q < qEnd {
			switch {
			case q == qEnd || (p < pEnd && a.rowIdx[p] < b.rowIdx[q]):
				out.push(a.rowIdx[p], a.vals[p])
				p++
			case p == pEnd || b.rowIdx[q] < a.rowIdx[p]:
				out.push(b.rowIdx[q], sign*b.vals[q])
				q++
			default: // same row in both
				out.push(a.rowIdx[p], a.vals[p]+sign*b.vals[q])
				p++
				q++
			}
		}
		out.colStart[j+1] = len(out.rowIdx)
	}

	return out
}

// Hadamard returns the elementwise product a ⊙ b. Only rows stored in both
// operands appear in the result.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, sparseErrorf(methodHadamard, err)
	}

	capacity := a.NNZ()
	if b.NNZ() < capacity {
		capacity = b.NNZ()
	}
	out := newEmpty(a.r, a.c, capacity, a.rejectNonFinite)
	for j := 0; j < a.c; j++ {
		aLo, aHi := a.colStart[j], a.colStart[j+1]
		bLo, bHi := b.colStart[j], b.colStart[j+1]
		na, nb := aHi-aLo, bHi-bLo
		switch {
		case na == 0 || nb == 0:
			// empty intersection
		case na*gallopRatio < nb:
			out.intersectGallop(a, aLo, aHi, b, bLo, bHi, false)
		case nb*gallopRatio < na:
			out.intersectGallop(b, bLo, bHi, a, aLo, aHi, true)
		default:
			p, q := aLo, bLo
			for p < aHi && q < bHi {
				switch {
				case a.rowIdx[p] < b.rowIdx[q]:
					p++
				case b.rowIdx[q] < a.rowIdx[p]:
					q++
				default:
					out.push(a.rowIdx[p], a.vals[p]*b.vals[q])
					p++
					q++
				}
			}
		}
		out.colStart[j+1] = len(out.rowIdx)
	}

	return checkResult(methodHadamard, out)
}

// intersectGallop appends small ⊙ large for one column by binary searching
// each row of the short column inside the long one. swapped keeps the
// product order a*b when small is actually the right operand.
func (m *Matrix) intersectGallop(small *Matrix, sLo, sHi int, large *Matrix, lLo, lHi int, swapped bool) {
	from := lLo
	for p := sLo; p < sHi && from < lHi; p++ {
		row := small.rowIdx[p]
		q := from + sort.SearchInts(large.rowIdx[from:lHi], row)
		if q < lHi && large.rowIdx[q] == row {
			if swapped {
				m.push(row, large.vals[q]*small.vals[p])
			} else {
				m.push(row, small.vals[p]*large.vals[q])
			}
			q++
		}
		from = q
	}
}

// Scale returns alpha·m with m's structure unchanged.
// Errors: ErrNilMatrix, ErrNaNInf.
func Scale(alpha float64, m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(methodScale, err)
	}
	out := m.Clone()
	for k := range out.vals {
		out.vals[k] *= alpha
	}

	return checkResult(methodScale, out)
}

// Mul dispatches a "multiply" request:
//   - Scalar × *Matrix or *Matrix × Scalar → Scale (order does not matter);
//   - *Matrix × *Matrix → Hadamard;
//   - anything else → ErrInvalidOperand.
func Mul(x, y Operand) (*Matrix, error) {
	switch xv := x.(type) {
	case Scalar:
		if ym, ok := y.(*Matrix); ok {
			return Scale(float64(xv), ym)
		}
	case *Matrix:
		switch yv := y.(type) {
		case Scalar:
			return Scale(float64(yv), xv)
		case *Matrix:
			return Hadamard(xv, yv)
		}
	}

	return nil, fmt.Errorf("%s(%T, %T): %w", methodMul, x, y, ErrInvalidOperand)
}

// push appends one entry to the open last column of m.
// Callers set colStart after finishing each column.
func (m *Matrix) push(row int, v float64) {
	m.rowIdx = append(m.rowIdx, row)
	m.vals = append(m.vals, v)
}

// checkResult applies out's numeric policy to values a kernel computed.
func checkResult(tag string, out *Matrix) (*Matrix, error) {
	if !out.rejectNonFinite {
		return out, nil
	}
	for k, v := range out.vals {
		if isNonFinite(v) {
			j := sort.Search(out.c, func(j int) bool { return out.colStart[j+1] > k })
			return nil, fmt.Errorf("%s: result at (%d,%d) is %g: %w", tag, out.rowIdx[k], j, v, ErrNaNInf)
		}
	}

	return out, nil
}
