// Package category classifies domains into productivity categories.
package category

import (
	"net/url"
	"strings"

	"webtime/internal/model"
)

// Table is an immutable domain -> category mapping. It is built once at
// startup and safe for unlimited concurrent reads.
type Table struct {
	entries map[string]model.Category
}

// NewTable copies entries into a Table.
func NewTable(entries map[string]model.Category) *Table {
	m := make(map[string]model.Category, len(entries))
	for domain, cat := range entries {
		m[domain] = cat
	}
	return &Table{entries: m}
}

// Default returns the built-in table of known productive and unproductive
// domains.
func Default() *Table {
	return NewTable(map[string]model.Category{
		"github.com":            model.CategoryProductive,
		"stackoverflow.com":     model.CategoryProductive,
		"developer.mozilla.org": model.CategoryProductive,
		"docs.google.com":       model.CategoryProductive,
		"notion.so":             model.CategoryProductive,
		"codepen.io":            model.CategoryProductive,
		"w3schools.com":         model.CategoryProductive,
		"leetcode.com":          model.CategoryProductive,
		"coursera.org":          model.CategoryProductive,
		"udemy.com":             model.CategoryProductive,
		"linkedin.com":          model.CategoryProductive,
		"chatgpt.com":           model.CategoryProductive,

		"facebook.com":   model.CategoryUnproductive,
		"twitter.com":    model.CategoryUnproductive,
		"instagram.com":  model.CategoryUnproductive,
		"tiktok.com":     model.CategoryUnproductive,
		"youtube.com":    model.CategoryUnproductive,
		"netflix.com":    model.CategoryUnproductive,
		"reddit.com":     model.CategoryUnproductive,
		"twitch.tv":      model.CategoryUnproductive,
		"jiohotstar.com": model.CategoryUnproductive,
	})
}

// Categorize returns the category for a normalized domain. Domains absent
// from the table are neutral.
func (t *Table) Categorize(domain string) model.Category {
	if cat, ok := t.entries[domain]; ok {
		return cat
	}
	return model.CategoryNeutral
}

// Entries returns a copy of the table contents, for seeding the registry.
func (t *Table) Entries() map[string]model.Category {
	m := make(map[string]model.Category, len(t.entries))
	for domain, cat := range t.entries {
		m[domain] = cat
	}
	return m
}

// NormalizeDomain extracts the hostname from a URL and strips one leading
// "www.". A string that does not parse as a URL is returned unchanged.
func NormalizeDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
