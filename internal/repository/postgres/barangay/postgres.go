package barangay

import (
	"context"
	"errors"

	barangaydomain "barangay-records-go/internal/domain/barangay"
	"barangay-records-go/pkg/outcome"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(barangaydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Get(ctx context.Context) (*barangaydomain.Barangay, error) {
	var record barangaydomain.Barangay
	if err := r.db.WithContext(ctx).Order("date_added asc").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outcome.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *barangaydomain.Barangay) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) Update(ctx context.Context, record *barangaydomain.Barangay) error {
	return r.db.WithContext(ctx).Save(record).Error
}
