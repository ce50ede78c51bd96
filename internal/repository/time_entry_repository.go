package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"webtime/internal/model"
)

// queryLimit caps how many entries a single query returns.
const queryLimit = 1000

// DomainUsage is one (domain, category) aggregation group.
type DomainUsage struct {
	Domain    string         `gorm:"column:domain"`
	Category  model.Category `gorm:"column:category"`
	TotalTime int64          `gorm:"column:total_time"`
	Entries   int64          `gorm:"column:entries"`
}

// DailyUsage is one (calendar day, category) aggregation group. Day is the
// date formatted as 2006-01-02.
type DailyUsage struct {
	Day       string         `gorm:"column:day"`
	Category  model.Category `gorm:"column:category"`
	TotalTime int64          `gorm:"column:total_time"`
}

// TimeEntryRepository defines time entry persistence and aggregation
// operations. Entries are append-only; there is no update or delete.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *model.TimeEntry) error
	FindByUser(ctx context.Context, userID string, start, end *time.Time) ([]model.TimeEntry, error)
	SumByDomain(ctx context.Context, userID string, start, end time.Time) ([]DomainUsage, error)
	SumByDay(ctx context.Context, userID string, start, end time.Time) ([]DailyUsage, error)
}

type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository builds a GORM-backed repository.
func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *model.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByUser returns a user's entries newest first, capped at 1000. The date
// filter only applies when both bounds are present.
func (r *timeEntryRepository) FindByUser(ctx context.Context, userID string, start, end *time.Time) ([]model.TimeEntry, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil && end != nil {
		q = q.Where("timestamp >= ? AND timestamp <= ?", *start, *end)
	}

	var entries []model.TimeEntry
	if err := q.Order("timestamp DESC").Limit(queryLimit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// SumByDomain groups a user's entries in [start, end] by (domain, category),
// summing time spent, ordered by total descending.
func (r *timeEntryRepository) SumByDomain(ctx context.Context, userID string, start, end time.Time) ([]DomainUsage, error) {
	var rows []DomainUsage
	err := r.db.WithContext(ctx).
		Model(&model.TimeEntry{}).
		Select("domain, category, SUM(time_spent) AS total_time, COUNT(*) AS entries").
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Group("domain").Group("category").
		Order("total_time DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// dayExpr renders timestamp as a 2006-01-02 string in the current dialect.
// MySQL returns DATE() results as time values when the DSN sets parseTime,
// so both dialects format to text explicitly.
func (r *timeEntryRepository) dayExpr() string {
	if r.db.Dialector.Name() == "mysql" {
		return "DATE_FORMAT(timestamp, '%Y-%m-%d')"
	}
	return "strftime('%Y-%m-%d', timestamp)"
}

// SumByDay groups a user's entries in [start, end] by (calendar day,
// category), summing time spent, ordered by day ascending.
func (r *timeEntryRepository) SumByDay(ctx context.Context, userID string, start, end time.Time) ([]DailyUsage, error) {
	day := r.dayExpr()
	var rows []DailyUsage
	err := r.db.WithContext(ctx).
		Model(&model.TimeEntry{}).
		Select(day+" AS day, category, SUM(time_spent) AS total_time").
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Group(day).Group("category").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
