package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingHours is the daily window a user considers work time.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// UserSettings holds per-user tracking preferences. They are stored at
// creation time with fixed defaults; no component reads them back yet.
type UserSettings struct {
	ProductiveCategories   []string     `json:"productiveCategories"`
	UnproductiveCategories []string     `json:"unproductiveCategories"`
	WorkingHours           WorkingHours `json:"workingHours"`
	Notifications          bool         `json:"notifications"`
}

// User represents a tracked account.
type User struct {
	ID           uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string       `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string       `json:"name" gorm:"size:255;not null"`
	PasswordHash string       `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Settings     UserSettings `json:"settings" gorm:"serializer:json"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// DefaultSettings returns the settings every new user starts with.
func DefaultSettings() UserSettings {
	return UserSettings{
		ProductiveCategories:   []string{"github.com", "stackoverflow.com", "developer.mozilla.org", "chatgpt.com", "linkedin.com"},
		UnproductiveCategories: []string{"facebook.com", "twitter.com", "instagram.com", "tiktok.com", "youtube.com"},
		WorkingHours:           WorkingHours{Start: "07:00", End: "23:00"},
		Notifications:          true,
	}
}
