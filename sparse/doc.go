// Package sparse stores and combines mostly-zero float64 matrices in
// compressed sparse column (CSC) form, in time and space proportional to
// the number of stored entries.
//
// The sparse package provides:
//
//   - FromTriplets / FromColumnGenerator / Identity / FromCSC / FromDense
//     constructors; duplicate triplets are summed.
//   - Get (pure, negative indices wrap) and Set (the only in-place mutator).
//   - Add, Sub, Hadamard, Scale and the Mul dispatcher. "Multiply" is the
//     elementwise product; there is no linear-algebraic matrix product.
//   - Triplets / Do extraction in column-major, row-ascending order.
//   - gonum interop: *Matrix implements mat.Matrix; ToDense builds a *mat.Dense.
//   - Slot, a read/write-locked cell for sharing one matrix across goroutines.
//
// Stored zeros are kept: Add/Sub never compact cancellations, and Scale
// keeps the operand's structure.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrIndexOutOfRange,
// ErrOutOfBounds, ErrInvalidSize, ErrMalformedGeneratorOutput, ...) wrapped
// with call-site context; match them with errors.Is.
package sparse
