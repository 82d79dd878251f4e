package seeders

import (
	"fmt"

	"github.com/mvdbroek/go-jewelry/app/db/fakers"
	"github.com/mvdbroek/go-jewelry/app/helpers"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/utils/variant"
	"gorm.io/gorm"
)

const (
	seedAdminEmail    = "admin@go-jewelry.local"
	seedAdminPassword = "admin12345"

	seedProductCount = 24
	seedCustomers    = 3
	seedSpecials     = 2
	seedValuations   = 3
)

// DBSeed fills an empty database with a usable storefront: an admin
// account, a partial catalog (so the dashboard has missing combinations
// to report), a couple of special editions and some sample enquiries.
func DBSeed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	for i := 0; i < seedCustomers; i++ {
		customer := fakers.UserFaker(models.RoleCustomer)
		hashed, err := helpers.HashPassword("password123")
		if err != nil {
			return err
		}
		customer.Password = hashed
		if err := db.Create(customer).Error; err != nil {
			return fmt.Errorf("failed to seed customer: %w", err)
		}
	}
	for i := 0; i < seedValuations; i++ {
		if err := db.Create(fakers.ValuationFaker()).Error; err != nil {
			return fmt.Errorf("failed to seed valuation: %w", err)
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB) error {
	hashed, err := helpers.HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}
	admin := fakers.UserFaker(models.RoleAdmin)
	admin.Email = seedAdminEmail
	admin.Password = hashed
	if err := db.FirstOrCreate(admin, "email = ?", seedAdminEmail).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}

func seedCatalog(db *gorm.DB) error {
	combos := variant.AllCombinations()
	if len(combos) > seedProductCount {
		combos = combos[:seedProductCount]
	}
	for _, combo := range combos {
		if err := db.Create(fakers.ProductFaker(combo)).Error; err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}
	}
	for i := 0; i < seedSpecials; i++ {
		if err := db.Create(fakers.SpecialEditionFaker()).Error; err != nil {
			return fmt.Errorf("failed to seed special edition: %w", err)
		}
	}
	return nil
}
