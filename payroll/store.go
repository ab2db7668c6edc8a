package payroll

import "context"

// SlipStore persists the slips of one run. Save replaces whatever a previous
// run stored.
//
// IMPLEMENTATIONS:
//   - store/jsonfile: JSON array on disk
//   - store/memory: in-memory, for tests
type SlipStore interface {
	// Prepare readies the destination (e.g. creates the output directory).
	// It is idempotent.
	Prepare(ctx context.Context) error

	Save(ctx context.Context, slips []PaymentSlip) error

	// Location describes where slips end up, for logs and the summary.
	Location() string
}
