package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"webtime/internal/cache"
	"webtime/internal/category"
	appErrors "webtime/internal/errors"
	"webtime/internal/model"
	"webtime/internal/repository"
)

const (
	categoryCacheTTL     = 5 * time.Minute
	categoryListCacheKey = "website_categories:list"
)

// CategoryService manages domain category overrides.
type CategoryService interface {
	List(ctx context.Context) ([]model.WebsiteCategory, error)
	Upsert(ctx context.Context, domain string, cat model.Category) error
	Delete(ctx context.Context, domain string) error
	SeedDefaults(ctx context.Context, table *category.Table) error
}

type categoryService struct {
	repo  repository.WebsiteCategoryRepository
	cache *cache.Client
}

// NewCategoryService builds a CategoryService with repository and cache.
func NewCategoryService(repo repository.WebsiteCategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{repo: repo, cache: cache}
}

// List returns all override records, unfiltered and unsorted, with caching.
func (s *categoryService) List(ctx context.Context) ([]model.WebsiteCategory, error) {
	if data, _ := s.cache.Get(ctx, categoryListCacheKey); data != nil {
		var cached []model.WebsiteCategory
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoryListCacheKey, payload, categoryCacheTTL)
	}
	return categories, nil
}

// Upsert creates or replaces the record keyed by domain. The written row is
// always a non-default: updating a seeded domain demotes it permanently.
func (s *categoryService) Upsert(ctx context.Context, domain string, cat model.Category) error {
	if !cat.Valid() {
		return appErrors.ErrInvalidCategory
	}

	record := &model.WebsiteCategory{
		Domain:    domain,
		Category:  cat,
		IsDefault: false,
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return nil
}

// Delete removes the row for domain unless it is a default. Deleting a
// default or nonexistent domain succeeds without doing anything.
func (s *categoryService) Delete(ctx context.Context, domain string) error {
	if err := s.repo.DeleteNonDefault(ctx, domain); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return nil
}

// SeedDefaults writes the built-in table into the registry as protected
// default rows, skipping domains that already have a record.
func (s *categoryService) SeedDefaults(ctx context.Context, table *category.Table) error {
	entries := table.Entries()
	records := make([]model.WebsiteCategory, 0, len(entries))
	for domain, cat := range entries {
		records = append(records, model.WebsiteCategory{
			Domain:    domain,
			Category:  cat,
			IsDefault: true,
		})
	}

	if err := s.repo.SeedDefaults(ctx, records); err != nil {
		return fmt.Errorf("seed default categories: %w", err)
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return nil
}
