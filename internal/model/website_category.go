package model

import "time"

// WebsiteCategory is an override record keyed by domain. Rows seeded from the
// built-in table carry IsDefault = true and are protected from deletion.
type WebsiteCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Domain    string    `json:"domain" gorm:"uniqueIndex;size:255;not null"`
	Category  Category  `json:"category" gorm:"type:varchar(20);not null"`
	IsDefault bool      `json:"isDefault" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
