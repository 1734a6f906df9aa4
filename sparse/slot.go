// SPDX-License-Identifier: MIT

// Package sparse - Slot: one guarded "current matrix" cell.
//
// The engine itself is single-writer and unsynchronized. Slot gives callers
// that share a matrix across goroutines the serialization the engine
// expects: readers share a sync.RWMutex read lock, Set and Update take the
// write lock, and Store swaps the whole matrix atomically.

package sparse

import "sync"

const (
	ctxSlotUpdate = "Slot.Update"
	ctxSlotView   = "Slot.View"
)

// Slot holds at most one *Matrix behind a read/write lock.
// The zero value is an empty slot.
type Slot struct {
	mu  sync.RWMutex // guards cur
	cur *Matrix
}

// NewSlot returns a slot holding m (which may be nil).
func NewSlot(m *Matrix) *Slot {
	return &Slot{cur: m}
}

// Load returns the current matrix. The caller must not mutate it outside
// Update; use Clone for an independent copy.
func (s *Slot) Load() *Matrix {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cur
}

// Store replaces the current matrix and returns the previous one.
func (s *Slot) Store(m *Matrix) *Matrix {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.cur
	s.cur = m

	return prev
}

// View runs fn with the current matrix under the read lock.
// Errors: ErrNilMatrix on an empty slot, otherwise fn's error.
func (s *Slot) View(fn func(m *Matrix) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return sparseErrorf(ctxSlotView, ErrNilMatrix)
	}

	return fn(s.cur)
}

// Update runs fn with the current matrix under the write lock.
// Errors: ErrNilMatrix on an empty slot, otherwise fn's error.
func (s *Slot) Update(fn func(m *Matrix) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return sparseErrorf(ctxSlotUpdate, ErrNilMatrix)
	}

	return fn(s.cur)
}

// Get reads (i, j) of the current matrix under the read lock.
func (s *Slot) Get(i, j int) (float64, error) {
	var v float64
	err := s.View(func(m *Matrix) error {
		var e error
		v, e = m.Get(i, j)
		return e
	})

	return v, err
}

// Set writes (i, j) of the current matrix under the write lock.
func (s *Slot) Set(i, j int, v float64) error {
	return s.Update(func(m *Matrix) error { return m.Set(i, j, v) })
}
