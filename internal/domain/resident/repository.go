package resident

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByID(ctx context.Context, id string) (*Resident, error)
	IdentityTaken(ctx context.Context, first, last, middle, suffix, excludeID string) (bool, error)
	CountUsers(ctx context.Context, residentID string) (int64, error)
	CountCertificates(ctx context.Context, residentID string) (int64, error)
	Create(ctx context.Context, record *Resident) error
	Update(ctx context.Context, record *Resident) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Resident, error)
	Search(ctx context.Context, query string) ([]Resident, error)
}
