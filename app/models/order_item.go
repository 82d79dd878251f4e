package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a snapshot taken at checkout time. It is intentionally
// decoupled from live Product records so historical orders stay stable
// when the catalog changes later.
type OrderItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID   string          `gorm:"size:36;not null;index" json:"order_id"`
	Order     Order           `gorm:"foreignKey:OrderID;references:ID" json:"-"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Carat     string          `gorm:"size:50" json:"carat"`
	Metal     string          `gorm:"size:100" json:"metal"`
	Qty       int             `gorm:"not null" json:"qty"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
