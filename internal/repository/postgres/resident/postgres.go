package resident

import (
	"context"
	"errors"

	certificatedomain "barangay-records-go/internal/domain/certificate"
	residentdomain "barangay-records-go/internal/domain/resident"
	userdomain "barangay-records-go/internal/domain/user"
	"barangay-records-go/internal/search"
	"barangay-records-go/pkg/outcome"
	"gorm.io/gorm"
)

// Searches cover the resident's name parts and role plus the joined
// household's name and location, so "dela cruz tramo" narrows by both.
var searchColumns = []string{
	"residents.first_name",
	"residents.middle_name",
	"residents.last_name",
	"residents.suffix",
	"residents.role",
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

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(residentdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*residentdomain.Resident, error) {
	var record residentdomain.Resident
	err := r.db.WithContext(ctx).
		Preload("Household").
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

func (r *PostgresRepository) IdentityTaken(ctx context.Context, first, last, middle, suffix, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&residentdomain.Resident{}).
		Where("lower(first_name) = lower(?)", first).
		Where("lower(last_name) = lower(?)", last).
		Where("lower(middle_name) = lower(?)", middle).
		Where("lower(suffix) = lower(?)", suffix)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CountUsers(ctx context.Context, residentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("resident_id = ?", residentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CountCertificates(ctx context.Context, residentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&certificatedomain.Certificate{}).
		Where("resident_id = ?", residentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *residentdomain.Resident) error {
	return r.db.WithContext(ctx).Omit("Household").Create(record).Error
}

func (r *PostgresRepository) Update(ctx context.Context, record *residentdomain.Resident) error {
	return r.db.WithContext(ctx).Omit("Household").Save(record).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&residentdomain.Resident{}, "id = ?", id).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]residentdomain.Resident, error) {
	var records []residentdomain.Resident
	err := r.db.WithContext(ctx).
		Preload("Household").
		Order("last_name asc, household_id asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]residentdomain.Resident, error) {
	predicate, ok := search.Compile(query, searchColumns)
	if !ok {
		return r.List(ctx)
	}

	var records []residentdomain.Resident
	err := r.db.WithContext(ctx).
		Preload("Household").
		Joins("join households on households.id = residents.household_id").
		Where(predicate.Expr, predicate.Args...).
		Order("residents.last_name asc, residents.household_id asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
