package household

import (
	"context"
	"errors"

	householddomain "barangay-records-go/internal/domain/household"
	residentdomain "barangay-records-go/internal/domain/resident"
	"barangay-records-go/internal/search"
	"barangay-records-go/pkg/outcome"
	"gorm.io/gorm"
)

var searchColumns = []string{
	"households.household_name",
	"households.house_no",
	"households.street",
	"households.sitio",
	"households.landmark",
}

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(householddomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*householddomain.Household, error) {
	var record householddomain.Household
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outcome.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*householddomain.Household, error) {
	var record householddomain.Household
	err := r.db.WithContext(ctx).
		Where("lower(household_name) = lower(?)", name).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outcome.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&householddomain.Household{}).
		Where("lower(household_name) = lower(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CountResidents(ctx context.Context, householdID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&residentdomain.Resident{}).
		Where("household_id = ?", householdID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *householddomain.Household) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) Update(ctx context.Context, record *householddomain.Household) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&householddomain.Household{}, "id = ?", id).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]householddomain.Household, error) {
	var records []householddomain.Household
	if err := r.db.WithContext(ctx).Order("household_name asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]householddomain.Household, error) {
	predicate, ok := search.Compile(query, searchColumns)
	if !ok {
		return r.List(ctx)
	}

	var records []householddomain.Household
	err := r.db.WithContext(ctx).
		Where(predicate.Expr, predicate.Args...).
		Order("household_name asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
