// Package memory provides an in-memory SlipStore.
package memory

import (
	"context"
	"sync"

	"github.com/highridge/payslip/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Store struct {
	mu       sync.RWMutex
	slips    []payroll.PaymentSlip
	saves    int
	prepared bool

	// PrepareErr and SaveErr, when set, are returned by the matching call.
	PrepareErr error
	SaveErr    error
}

var _ payroll.SlipStore = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (m *Store) Prepare(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PrepareErr != nil {
		return m.PrepareErr
	}
	m.prepared = true
	return nil
}

// Save replaces the stored slips with a copy of slips.
func (m *Store) Save(ctx context.Context, slips []payroll.PaymentSlip) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.slips = append([]payroll.PaymentSlip{}, slips...)
	m.saves++
	return nil
}

func (m *Store) Location() string { return "memory" }

// Slips returns a copy of the last saved slips.
func (m *Store) Slips() []payroll.PaymentSlip {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]payroll.PaymentSlip{}, m.slips...)
}

// Saves returns how many times Save succeeded.
func (m *Store) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func (m *Store) Prepared() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prepared
}
