package blotter

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByID(ctx context.Context, id string) (*Blotter, error)
	Create(ctx context.Context, record *Blotter) error
	Update(ctx context.Context, record *Blotter) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Blotter, error)
	Search(ctx context.Context, query string) ([]Blotter, error)
}
