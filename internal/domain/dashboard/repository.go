package dashboard

import "context"

type Repository interface {
	Counts(ctx context.Context) (Summary, error)
	ResidentsBySitio(ctx context.Context) ([]Bucket, error)
	ResidentsBySex(ctx context.Context) ([]Bucket, error)
	BlottersByStatus(ctx context.Context) ([]Bucket, error)
}
