package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttractImage is one promotional image shown in the homepage carousel.
type AttractImage struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *AttractImage) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}
