package service

import (
	"context"
	"fmt"
	"time"

	"webtime/internal/category"
	"webtime/internal/model"
	"webtime/internal/repository"
)

// RecordInput is one observation submitted by the browser extension.
type RecordInput struct {
	UserID    string
	URL       string
	Title     string
	TimeSpent int64
	SessionID string
}

// TrackingService records and retrieves time entries.
type TrackingService interface {
	Record(ctx context.Context, input RecordInput) (model.Category, error)
	Query(ctx context.Context, userID string, start, end *time.Time) ([]model.TimeEntry, error)
}

type trackingService struct {
	entries repository.TimeEntryRepository
	table   *category.Table
	now     func() time.Time
}

// NewTrackingService builds a TrackingService categorizing against the given
// table.
func NewTrackingService(entries repository.TimeEntryRepository, table *category.Table) TrackingService {
	return &trackingService{
		entries: entries,
		table:   table,
		now:     time.Now,
	}
}

// Record persists one immutable entry. The domain and category are computed
// here and frozen; the timestamp is server-assigned. Duplicate submissions
// create duplicate entries, there is no idempotency key.
func (s *trackingService) Record(ctx context.Context, input RecordInput) (model.Category, error) {
	domain := category.NormalizeDomain(input.URL)
	cat := s.table.Categorize(domain)

	entry := &model.TimeEntry{
		UserID:    input.UserID,
		URL:       input.URL,
		Domain:    domain,
		Title:     input.Title,
		TimeSpent: input.TimeSpent,
		Category:  cat,
		Timestamp: s.now(),
		SessionID: input.SessionID,
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("create time entry: %w", err)
	}
	return cat, nil
}

// Query returns a user's entries newest first, capped at 1000. The date
// filter only activates when both bounds are supplied; a lone bound is
// silently ignored.
func (s *trackingService) Query(ctx context.Context, userID string, start, end *time.Time) ([]model.TimeEntry, error) {
	if start == nil || end == nil {
		start, end = nil, nil
	}
	return s.entries.FindByUser(ctx, userID, start, end)
}
