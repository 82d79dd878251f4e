package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a standard configurable ring. The (DiamondShape, RingDesign,
// RingMetal) triple identifies the catalog entry; carat and price are
// attributes on top of it, not part of the identity.
type Product struct {
	ID              string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	DiamondShape    string         `gorm:"size:100;not null;index" json:"diamondShape"`
	RingDesign      string         `gorm:"size:100;not null;index" json:"ringDesign"`
	RingMetal       string         `gorm:"size:100;not null;index" json:"ringMetal"`
	Carats          StringList     `gorm:"type:text" json:"carats"`
	Prices          PriceMap       `gorm:"type:text" json:"prices"`
	Price           string         `gorm:"size:100" json:"price"`
	Images          StringList     `gorm:"type:text" json:"images"`
	MainImage       string         `gorm:"type:text" json:"mainImage"`
	DiscountPercent int            `gorm:"default:0" json:"discountPercent"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
