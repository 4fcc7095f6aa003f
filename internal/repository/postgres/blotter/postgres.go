package blotter

import (
	"context"
	"errors"

	blotterdomain "barangay-records-go/internal/domain/blotter"
	"barangay-records-go/internal/search"
	"barangay-records-go/pkg/outcome"
	"gorm.io/gorm"
)

var searchColumns = []string{
	"blotters.status",
	"blotters.nature_of_dispute",
	"blotters.complainant",
	"blotters.respondent",
	"blotters.action_taken",
}

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(blotterdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*blotterdomain.Blotter, error) {
	var record blotterdomain.Blotter
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outcome.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *blotterdomain.Blotter) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) Update(ctx context.Context, record *blotterdomain.Blotter) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&blotterdomain.Blotter{}, "id = ?", id).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]blotterdomain.Blotter, error) {
	var records []blotterdomain.Blotter
	if err := r.db.WithContext(ctx).Order("record_date desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]blotterdomain.Blotter, error) {
	predicate, ok := search.Compile(query, searchColumns)
	if !ok {
		return r.List(ctx)
	}

	var records []blotterdomain.Blotter
	err := r.db.WithContext(ctx).
		Where(predicate.Expr, predicate.Args...).
		Order("record_date desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
