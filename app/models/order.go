package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusCancelled  = "Cancelled"
)

// OrderStatuses lists every status an admin may set. Transitions are
// unconstrained: any status is reachable from any other.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Order struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID     string          `gorm:"size:36;index" json:"userId"`
	User       User            `gorm:"foreignKey:UserID" json:"-"`
	OrderItems []OrderItem     `json:"items"`
	Total      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total"`
	Status     string          `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
