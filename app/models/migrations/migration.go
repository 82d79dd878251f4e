package migrations

import (
	"github.com/mvdbroek/go-jewelry/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Product{}, &models.SpecialEdition{}, &models.Order{}, &models.OrderItem{}, &models.Valuation{}, &models.AttractImage{})
}
