package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"webtime/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.TimeEntry{}, &model.WebsiteCategory{}))
	return db
}

func seedEntry(t *testing.T, repo TimeEntryRepository, userID, url string, cat model.Category, seconds int64, ts time.Time) {
	t.Helper()
	domain := url
	err := repo.Create(context.Background(), &model.TimeEntry{
		UserID:    userID,
		URL:       "https://" + url + "/",
		Domain:    domain,
		TimeSpent: seconds,
		Category:  cat,
		Timestamp: ts,
		SessionID: "s1",
	})
	require.NoError(t, err)
}

func TestTimeEntryRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimeEntryRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	seedEntry(t, repo, "u1", "github.com", model.CategoryProductive, 100, base)
	seedEntry(t, repo, "u1", "youtube.com", model.CategoryUnproductive, 200, base.Add(time.Hour))
	seedEntry(t, repo, "u1", "example.org", model.CategoryNeutral, 300, base.Add(48*time.Hour))
	seedEntry(t, repo, "u2", "github.com", model.CategoryProductive, 400, base)

	t.Run("newest first, only own entries", func(t *testing.T) {
		entries, err := repo.FindByUser(ctx, "u1", nil, nil)
		assert.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "example.org", entries[0].Domain)
		assert.Equal(t, "youtube.com", entries[1].Domain)
		assert.Equal(t, "github.com", entries[2].Domain)
	})

	t.Run("range filter is inclusive", func(t *testing.T) {
		start := base
		end := base.Add(time.Hour)
		entries, err := repo.FindByUser(ctx, "u1", &start, &end)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("unknown user yields empty", func(t *testing.T) {
		entries, err := repo.FindByUser(ctx, "nobody", nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestTimeEntryRepository_SumByDomain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimeEntryRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	seedEntry(t, repo, "u1", "github.com", model.CategoryProductive, 100, base)
	seedEntry(t, repo, "u1", "github.com", model.CategoryProductive, 250, base.Add(time.Minute))
	seedEntry(t, repo, "u1", "youtube.com", model.CategoryUnproductive, 500, base.Add(2*time.Minute))
	seedEntry(t, repo, "u1", "example.org", model.CategoryNeutral, 50, base.Add(3*time.Minute))
	seedEntry(t, repo, "u2", "github.com", model.CategoryProductive, 9999, base)

	rows, err := repo.SumByDomain(ctx, "u1", base.Add(-time.Hour), base.Add(time.Hour))
	assert.NoError(t, err)
	require.Len(t, rows, 3)

	// Descending by summed time.
	assert.Equal(t, "youtube.com", rows[0].Domain)
	assert.Equal(t, int64(500), rows[0].TotalTime)
	assert.Equal(t, "github.com", rows[1].Domain)
	assert.Equal(t, int64(350), rows[1].TotalTime)
	assert.Equal(t, int64(2), rows[1].Entries)
	assert.Equal(t, "example.org", rows[2].Domain)
}

func TestTimeEntryRepository_SumByDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTimeEntryRepository(db)
	ctx := context.Background()

	day1 := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	seedEntry(t, repo, "u1", "github.com", model.CategoryProductive, 100, day1)
	seedEntry(t, repo, "u1", "youtube.com", model.CategoryUnproductive, 200, day1.Add(time.Hour))
	seedEntry(t, repo, "u1", "github.com", model.CategoryProductive, 300, day2)

	rows, err := repo.SumByDay(ctx, "u1", day1.Add(-time.Hour), day2.Add(time.Hour))
	assert.NoError(t, err)
	require.Len(t, rows, 3)

	// Ascending by day, one row per (day, category).
	assert.Equal(t, "2024-03-10", rows[0].Day)
	assert.Equal(t, "2024-03-10", rows[1].Day)
	assert.Equal(t, "2024-03-11", rows[2].Day)
	assert.Equal(t, int64(300), rows[2].TotalTime)
	assert.Equal(t, model.CategoryProductive, rows[2].Category)
}
