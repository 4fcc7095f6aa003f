package user

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByUsername is an exact, case-sensitive lookup.
	GetByUsername(ctx context.Context, username string) (*User, error)
	UsernameTaken(ctx context.Context, username, excludeID string) (bool, error)
	ResidentLinked(ctx context.Context, residentID, excludeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, record *User) error
	Update(ctx context.Context, record *User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]User, error)
	Search(ctx context.Context, query string) ([]User, error)
}
