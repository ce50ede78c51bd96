package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a productivity classification for a domain.
type Category string

const (
	CategoryProductive   Category = "productive"
	CategoryUnproductive Category = "unproductive"
	CategoryNeutral      Category = "neutral"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryProductive, CategoryUnproductive, CategoryNeutral:
		return true
	}
	return false
}

// TimeEntry is one immutable observation of time spent on a domain during a
// browsing session. Entries are never updated or deleted once written; the
// category is computed at write time and frozen.
type TimeEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"userId" gorm:"size:64;not null;index:idx_time_entries_user_ts"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	Domain    string    `json:"domain" gorm:"size:255;not null;index"`
	Title     string    `json:"title" gorm:"size:512"`
	TimeSpent int64     `json:"timeSpent" gorm:"not null"` // seconds
	Category  Category  `json:"category" gorm:"type:varchar(20);not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index:idx_time_entries_user_ts"`
	SessionID string    `json:"sessionId" gorm:"size:255;not null"`
}

// BeforeCreate sets UUID before creating the record.
func (e *TimeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
