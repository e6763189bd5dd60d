package models

import (
	"time"
)

// StoreSettings is the single-row store configuration the storefront header
// and announcement bar read. Writes go through the settings cache so the
// storefront keeps serving the last-known-good row when the database is
// unreachable.
type StoreSettings struct {
	ID               int       `json:"id" gorm:"primaryKey;default:1"`
	StoreName        string    `json:"store_name" gorm:"not null"`
	AnnouncementText string    `json:"announcement_text"`
	CurrencyCode     string    `json:"currency_code" gorm:"not null;default:'USD'"`
	SupportEmail     string    `json:"support_email"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (StoreSettings) TableName() string {
	return "store_settings"
}

// StoreSettingsRequest is the admin update payload.
type StoreSettingsRequest struct {
	StoreName        string `json:"store_name" binding:"required" example:"Aurelia Jewels"`
	AnnouncementText string `json:"announcement_text" example:"Free shipping on orders over $200"`
	CurrencyCode     string `json:"currency_code" binding:"required,len=3" example:"USD"`
	SupportEmail     string `json:"support_email" binding:"omitempty,email" example:"care@aurelia.example"`
}
