package interfaces

import "context"

// IInvoiceCounterRepository is the per-year atomic sequence used to allocate
// invoice numbers without the read-then-write race.
//
// Increment atomically bumps the counter for year and returns the new
// sequence; ok is false when no counter document exists yet for that year.
// Initialize conditionally creates the counter at start and reports false
// when another writer created it first, in which case the caller retries
// Increment.
type IInvoiceCounterRepository interface {
	Increment(ctx context.Context, year int) (seq int, ok bool, err error)
	Initialize(ctx context.Context, year, start int) (bool, error)
}
