package certificate

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByID(ctx context.Context, id string) (*Certificate, error)
	Create(ctx context.Context, record *Certificate) error
	Update(ctx context.Context, record *Certificate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Certificate, error)
	Search(ctx context.Context, query string) ([]Certificate, error)
}
