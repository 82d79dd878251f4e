package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpecialEditionLimit caps the number of live special edition records.
// Checked when an admin submits a new record, not atomically.
const SpecialEditionLimit = 50

// SpecialEdition is a catalog entry outside the standard variant schema:
// a single free-form price, no shape/design/metal triple and no carats.
type SpecialEdition struct {
	ID              string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	Price           string         `gorm:"size:100" json:"price"`
	Images          StringList     `gorm:"type:text" json:"images"`
	DiscountPercent int            `gorm:"default:0" json:"discountPercent"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *SpecialEdition) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
