package dashboard

import (
	"context"

	blotterdomain "barangay-records-go/internal/domain/blotter"
	certificatedomain "barangay-records-go/internal/domain/certificate"
	dashboarddomain "barangay-records-go/internal/domain/dashboard"
	householddomain "barangay-records-go/internal/domain/household"
	residentdomain "barangay-records-go/internal/domain/resident"
	userdomain "barangay-records-go/internal/domain/user"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Counts(ctx context.Context) (dashboarddomain.Summary, error) {
	var summary dashboarddomain.Summary

	counts := []struct {
		model any
		dst   *int64
	}{
		{&householddomain.Household{}, &summary.Households},
		{&residentdomain.Resident{}, &summary.Residents},
		{&userdomain.User{}, &summary.Users},
		{&blotterdomain.Blotter{}, &summary.Blotters},
		{&certificatedomain.Certificate{}, &summary.Certificates},
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).Model(c.model).Count(c.dst).Error; err != nil {
			return dashboarddomain.Summary{}, err
		}
	}

	return summary, nil
}

func (r *PostgresRepository) ResidentsBySitio(ctx context.Context) ([]dashboarddomain.Bucket, error) {
	var buckets []dashboarddomain.Bucket
	err := r.db.WithContext(ctx).
		Model(&residentdomain.Resident{}).
		Select("households.sitio as label, count(*) as count").
		Joins("join households on households.id = residents.household_id").
		Group("households.sitio").
		Order("count desc, label asc").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *PostgresRepository) ResidentsBySex(ctx context.Context) ([]dashboarddomain.Bucket, error) {
	var buckets []dashboarddomain.Bucket
	err := r.db.WithContext(ctx).
		Model(&residentdomain.Resident{}).
		Select("sex as label, count(*) as count").
		Group("sex").
		Order("count desc, label asc").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *PostgresRepository) BlottersByStatus(ctx context.Context) ([]dashboarddomain.Bucket, error) {
	var buckets []dashboarddomain.Bucket
	err := r.db.WithContext(ctx).
		Model(&blotterdomain.Blotter{}).
		Select("status as label, count(*) as count").
		Group("status").
		Order("count desc, label asc").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}
