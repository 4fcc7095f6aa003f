package household

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByID(ctx context.Context, id string) (*Household, error)
	GetByName(ctx context.Context, name string) (*Household, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	CountResidents(ctx context.Context, householdID string) (int64, error)
	Create(ctx context.Context, record *Household) error
	Update(ctx context.Context, record *Household) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Household, error)
	Search(ctx context.Context, query string) ([]Household, error)
}
