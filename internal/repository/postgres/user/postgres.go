package user

import (
	"context"
	"errors"

	userdomain "barangay-records-go/internal/domain/user"
	"barangay-records-go/internal/search"
	"barangay-records-go/pkg/outcome"
	"gorm.io/gorm"
)

var searchColumns = []string{
	"users.username",
	"users.position",
	"residents.first_name",
	"residents.last_name",
}

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(userdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*userdomain.User, error) {
	var record userdomain.User
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

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	var record userdomain.User
	err := r.db.WithContext(ctx).
		Preload("Resident").
		Where("username = ?", username).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outcome.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) UsernameTaken(ctx context.Context, username, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("username = ?", username)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) ResidentLinked(ctx context.Context, residentID, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("resident_id = ?", residentID)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userdomain.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *userdomain.User) error {
	return r.db.WithContext(ctx).Omit("Resident").Create(record).Error
}

func (r *PostgresRepository) Update(ctx context.Context, record *userdomain.User) error {
	return r.db.WithContext(ctx).Omit("Resident").Save(record).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&userdomain.User{}, "id = ?", id).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]userdomain.User, error) {
	var records []userdomain.User
	err := r.db.WithContext(ctx).
		Preload("Resident").
		Joins("join residents on residents.id = users.resident_id").
		Order("users.position asc, residents.last_name asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Search(ctx context.Context, query string) ([]userdomain.User, error) {
	predicate, ok := search.Compile(query, searchColumns)
	if !ok {
		return r.List(ctx)
	}

	var records []userdomain.User
	err := r.db.WithContext(ctx).
		Preload("Resident").
		Joins("join residents on residents.id = users.resident_id").
		Where(predicate.Expr, predicate.Args...).
		Order("users.position asc, residents.last_name asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
