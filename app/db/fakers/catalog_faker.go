package fakers

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/utils/variant"
)

// ProductFaker builds a ring for one shape/design/metal combination.
// Prices rise with carat; roughly a third of the products get a
// discount so the hot deals section has something to show.
func ProductFaker(combo variant.Combination) *models.Product {
	base := 1500 + rand.Intn(3500)
	prices := make(models.PriceMap, len(variant.Carats))
	for i, carat := range variant.Carats {
		prices[carat] = fmt.Sprintf("$%d", base*(i+2)/2)
	}

	discount := 0
	if rand.Intn(3) == 0 {
		discount = 10 + rand.Intn(4)*5
	}

	return &models.Product{
		Name:            productName(combo),
		Description:     faker.Paragraph(),
		DiamondShape:    combo.Shape,
		RingDesign:      combo.Design,
		RingMetal:       combo.Metal,
		Carats:          append(models.StringList{}, variant.Carats...),
		Prices:          prices,
		Images:          models.StringList{"/images/rings/placeholder.jpg"},
		MainImage:       "/images/rings/placeholder.jpg",
		DiscountPercent: discount,
	}
}

func productName(combo variant.Combination) string {
	shape := strings.SplitN(combo.Shape, " ", 2)[0]
	design := strings.SplitN(combo.Design, " (", 2)[0]
	metal := strings.SplitN(combo.Metal, " (", 2)[0]
	return fmt.Sprintf("%s %s Ring, %s", shape, design, metal)
}

func SpecialEditionFaker() *models.SpecialEdition {
	return &models.SpecialEdition{
		Name:        faker.Word() + " Heirloom Edition",
		Description: faker.Paragraph(),
		Price:       fmt.Sprintf("$%d", 8000+rand.Intn(12000)),
		Images:      models.StringList{"/images/rings/special-placeholder.jpg"},
	}
}

func UserFaker(role string) *models.User {
	return &models.User{
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Phone:     faker.Phonenumber(),
		Role:      role,
	}
}

func ValuationFaker() *models.Valuation {
	return &models.Valuation{
		Name:    faker.Name(),
		Email:   faker.Email(),
		Phone:   faker.Phonenumber(),
		Message: faker.Sentence(),
	}
}
