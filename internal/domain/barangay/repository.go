package barangay

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	// Get returns the configuration row, or outcome.ErrNotFound when the
	// barangay has never been configured.
	Get(ctx context.Context) (*Barangay, error)
	Create(ctx context.Context, record *Barangay) error
	Update(ctx context.Context, record *Barangay) error
}
