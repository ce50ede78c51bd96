package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"webtime/internal/model"
)

// WebsiteCategoryRepository defines category override persistence operations.
type WebsiteCategoryRepository interface {
	List(ctx context.Context) ([]model.WebsiteCategory, error)
	Upsert(ctx context.Context, record *model.WebsiteCategory) error
	SeedDefaults(ctx context.Context, records []model.WebsiteCategory) error
	DeleteNonDefault(ctx context.Context, domain string) error
}

type websiteCategoryRepository struct {
	db *gorm.DB
}

// NewWebsiteCategoryRepository builds a GORM-backed repository.
func NewWebsiteCategoryRepository(db *gorm.DB) WebsiteCategoryRepository {
	return &websiteCategoryRepository{db: db}
}

func (r *websiteCategoryRepository) List(ctx context.Context) ([]model.WebsiteCategory, error) {
	var categories []model.WebsiteCategory
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Upsert creates or replaces the record keyed by domain. The unique index on
// domain guarantees at most one row per domain; last write wins.
func (r *websiteCategoryRepository) Upsert(ctx context.Context, record *model.WebsiteCategory) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "domain"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "is_default", "updated_at"}),
	}).Create(record).Error
}

// SeedDefaults inserts default rows, leaving existing rows untouched so an
// operator's override of a seeded domain survives restarts.
func (r *websiteCategoryRepository) SeedDefaults(ctx context.Context, records []model.WebsiteCategory) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "domain"}},
		DoNothing: true,
	}).Create(&records).Error
}

// DeleteNonDefault deletes the row for domain only if it exists and is not a
// default. A default or missing row is a no-op, not an error.
func (r *websiteCategoryRepository) DeleteNonDefault(ctx context.Context, domain string) error {
	return r.db.WithContext(ctx).
		Where("domain = ? AND is_default = ?", domain, false).
		Delete(&model.WebsiteCategory{}).Error
}
