// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines the package-level sentinels returned by every kernel in
// the sparse package. Callers MUST match them via errors.Is (or errors.As for
// *IndexError). No kernel panics on user-triggered error conditions; panics
// are reserved for option constructors given nonsensical values and for the
// gonum At contract.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency. Kernels wrap
// these sentinels at the detection site with fmt.Errorf("<Tag>: ...: %w"),
// so errors.Is keeps working across any number of wrapping layers.

var (
	// ErrDimensionMismatch indicates operand shapes are incompatible for
	// Add/Sub/Hadamard.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrIndexOutOfRange indicates a Get/Set index that is still outside the
	// matrix after negative wraparound. The concrete error is *IndexError.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrOutOfBounds indicates a triplet coordinate that exceeds the declared
	// shape during finalize.
	ErrOutOfBounds = errors.New("sparse: triplet out of bounds")

	// ErrInvalidSize indicates a negative or over-ceiling dimension request.
	ErrInvalidSize = errors.New("sparse: invalid size")

	// ErrMalformedGeneratorOutput indicates a column generator returned an
	// entry whose row is outside [0, rows).
	ErrMalformedGeneratorOutput = errors.New("sparse: malformed generator output")

	// ErrNilMatrix indicates a nil *Matrix operand or an empty Slot.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNilGenerator indicates FromColumnGenerator was given no generator.
	ErrNilGenerator = errors.New("sparse: nil column generator")

	// ErrInvalidOperand indicates an operand combination Mul cannot dispatch
	// (e.g. scalar × scalar).
	ErrInvalidOperand = errors.New("sparse: invalid operand")

	// ErrNaNInf indicates a NaN or ±Inf value under the reject-non-finite policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrCorrupt indicates raw compressed arrays violating the CSC invariants.
	ErrCorrupt = errors.New("sparse: corrupt compressed structure")
)

// Dimension names carried by IndexError.
const (
	DimRow    = "row"
	DimColumn = "column"
)

// IndexError reports an index that is out of range after wraparound.
// Index is the value the caller passed, before wraparound.
type IndexError struct {
	Dim   string // DimRow or DimColumn
	Index int    // original (pre-wrap) index
	Size  int    // extent of the dimension
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("sparse: invalid %s %d (size %d)", e.Dim, e.Index, e.Size)
}

// Unwrap lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// sparseErrorf wraps err with a method tag, mirroring fmt.Errorf("%s: %w").
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
