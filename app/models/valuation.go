package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Valuation is a lead submitted through the valuation contact form,
// optionally carrying a photo of the item to appraise.
type Valuation struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Message   string    `gorm:"type:text" json:"message"`
	ImageURL  string    `gorm:"type:text" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (v *Valuation) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}
