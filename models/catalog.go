package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// TagsList is a jsonb-backed string slice (so we can add Scan/Value methods)
type TagsList []string

func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

// ═══════════════════════════════════════════════════════════
// Main Catalog Model (GORM)
// ═══════════════════════════════════════════════════════════

// CatalogItem is one product record as surfaced to the browse/search UI.
// The query engine treats it as read-only input and never mutates it.
type CatalogItem struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"not null;index"`
	Category       string    `json:"category" gorm:"not null;index"`
	Price          float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	CompareAtPrice *float64  `json:"compare_at_price,omitempty" gorm:"type:numeric(12,2)"`
	Rating         float64   `json:"rating" gorm:"default:0"`
	Tags           TagsList  `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Image          string    `json:"image"`
	Status         string    `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (i *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontItemResponse is the thin card shape the browse grid renders.
type StorefrontItemResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	DiscountLabel string  `json:"discount_label,omitempty"`
}

// StorefrontItemDetail is the full item shape for the single-item page.
type StorefrontItemDetail struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Image          string   `json:"image"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compare_at_price,omitempty"`
	DiscountLabel  string   `json:"discount_label,omitempty"`
	Rating         float64  `json:"rating"`
	Tags           []string `json:"tags"`
}
