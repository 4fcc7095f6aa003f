package certificate

import (
	"context"
	"errors"

	certificatedomain "barangay-records-go/internal/domain/certificate"
	"barangay-records-go/internal/search"
	"barangay-records-go/pkg/outcome"
	"gorm.io/gorm"
)

var searchColumns = []string{
	"certificates.type",
	"certificates.purpose",
	"residents.first_name",
	"residents.last_name",
}

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(certificatedomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*certificatedomain.Certificate, error) {
	var record certificatedomain.Certificate
	err := r.db.WithContext(ctx).
		Preload("Resident").
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outcome.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *certificatedomain.Certificate) error {
	return r.db.WithContext(ctx).Omit("Resident").Create(record).Error
}

func (r *PostgresRepository) Update(ctx context.Context, record *certificatedomain.Certificate) error {
	return r.db.WithContext(ctx).Omit("Resident").Save(record).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&certificatedomain.Certificate{}, "id = ?", id).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]certificatedomain.Certificate, error) {
	var records []certificatedomain.Certificate
	err := r.db.WithContext(ctx).
		Preload("Resident").
		Order("date_issued desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]certificatedomain.Certificate, error) {
	predicate, ok := search.Compile(query, searchColumns)
	if !ok {
		return r.List(ctx)
	}

	var records []certificatedomain.Certificate
	err := r.db.WithContext(ctx).
		Preload("Resident").
		Joins("join residents on residents.id = certificates.resident_id").
		Where(predicate.Expr, predicate.Args...).
		Order("certificates.date_issued desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
