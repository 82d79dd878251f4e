package repositories

import (
	"context"

	"github.com/mvdbroek/go-jewelry/app/models"
	"gorm.io/gorm"
)

type ValuationRepositoryImpl interface {
	Create(ctx context.Context, valuation *models.Valuation) error
	GetAll(ctx context.Context) ([]models.Valuation, error)
}

type valuationRepository struct {
	db *gorm.DB
}

func NewValuationRepository(db *gorm.DB) ValuationRepositoryImpl {
	return &valuationRepository{db}
}

func (v *valuationRepository) Create(ctx context.Context, valuation *models.Valuation) error {
	return v.db.WithContext(ctx).Create(valuation).Error
}

func (v *valuationRepository) GetAll(ctx context.Context) ([]models.Valuation, error) {
	var valuations []models.Valuation
	err := v.db.WithContext(ctx).Order("created_at DESC").Find(&valuations).Error
	return valuations, err
}
