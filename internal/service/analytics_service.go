package service

import (
	"context"
	"fmt"
	"time"

	"webtime/internal/model"
	"webtime/internal/repository"
)

const topSitesLimit = 10

// AnalyticsService computes productivity reports. Reports are derived fresh
// on every call and never cached.
type AnalyticsService interface {
	Report(ctx context.Context, userID, period string, start, end *time.Time) (*model.ProductivityReport, error)
}

type analyticsService struct {
	entries repository.TimeEntryRepository
	now     func() time.Time
}

// NewAnalyticsService builds an AnalyticsService over the time entry store.
func NewAnalyticsService(entries repository.TimeEntryRepository) AnalyticsService {
	return &analyticsService{
		entries: entries,
		now:     time.Now,
	}
}

// resolveWindow picks the report window. An explicit start/end pair wins
// verbatim; otherwise the period rules apply, with anything unrecognized
// falling back to weekly.
func (s *analyticsService) resolveWindow(period string, start, end *time.Time) (time.Time, time.Time) {
	if start != nil && end != nil {
		return *start, *end
	}

	now := s.now()
	switch period {
	case "daily":
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return midnight, now
	case "monthly":
		return now.AddDate(0, -1, 0), now
	default: // weekly, and anything else
		return now.AddDate(0, 0, -7), now
	}
}

// Report aggregates a user's entries over the resolved window. Totals and the
// per-category split cover every grouped domain, independent of the top-10
// truncation.
func (s *analyticsService) Report(ctx context.Context, userID, period string, start, end *time.Time) (*model.ProductivityReport, error) {
	windowStart, windowEnd := s.resolveWindow(period, start, end)

	report := &model.ProductivityReport{
		UserID:         userID,
		Period:         period,
		StartDate:      windowStart,
		EndDate:        windowEnd,
		TopSites:       []model.TopSite{},
		DailyBreakdown: []model.DailyBreakdown{},
	}

	groups, err := s.entries.SumByDomain(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("aggregate by domain: %w", err)
	}

	for _, g := range groups {
		report.TotalTime += g.TotalTime
		switch g.Category {
		case model.CategoryProductive:
			report.ProductiveTime += g.TotalTime
		case model.CategoryUnproductive:
			report.UnproductiveTime += g.TotalTime
		case model.CategoryNeutral:
			report.NeutralTime += g.TotalTime
		}

		if len(report.TopSites) < topSitesLimit {
			report.TopSites = append(report.TopSites, model.TopSite{
				Domain:    g.Domain,
				TimeSpent: g.TotalTime,
				Category:  g.Category,
			})
		}
	}

	days, err := s.entries.SumByDay(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("aggregate by day: %w", err)
	}

	// Regroup (day, category) rows into one breakdown entry per day,
	// preserving the ascending day order of the query.
	dayIndex := make(map[string]int)
	for _, d := range days {
		idx, ok := dayIndex[d.Day]
		if !ok {
			date, err := parseDay(d.Day)
			if err != nil {
				return nil, fmt.Errorf("parse day %q: %w", d.Day, err)
			}
			idx = len(report.DailyBreakdown)
			dayIndex[d.Day] = idx
			report.DailyBreakdown = append(report.DailyBreakdown, model.DailyBreakdown{Date: date})
		}

		report.DailyBreakdown[idx].TotalTime += d.TotalTime
		if d.Category == model.CategoryProductive {
			report.DailyBreakdown[idx].ProductiveTime += d.TotalTime
		}
	}

	return report, nil
}

// parseDay reads an aggregated day value. Some drivers scan DATE columns into
// time values, which arrive here as RFC 3339 strings, so both shapes parse.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
