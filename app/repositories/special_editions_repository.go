package repositories

import (
	"context"

	"github.com/mvdbroek/go-jewelry/app/models"
	"gorm.io/gorm"
)

type SpecialEditionRepositoryImpl interface {
	GetSpecialEditions(ctx context.Context) ([]models.SpecialEdition, error)
	GetByID(ctx context.Context, id string) (*models.SpecialEdition, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, special *models.SpecialEdition) error
	Update(ctx context.Context, special *models.SpecialEdition) error
	Delete(ctx context.Context, id string) error
}

type specialEditionRepository struct {
	db *gorm.DB
}

func NewSpecialEditionRepository(db *gorm.DB) SpecialEditionRepositoryImpl {
	return &specialEditionRepository{db}
}

func (s *specialEditionRepository) GetSpecialEditions(ctx context.Context) ([]models.SpecialEdition, error) {
	var specials []models.SpecialEdition
	if err := s.db.WithContext(ctx).Model(&models.SpecialEdition{}).Order("created_at ASC").Find(&specials).Error; err != nil {
		return nil, err
	}
	return specials, nil
}

func (s *specialEditionRepository) GetByID(ctx context.Context, id string) (*models.SpecialEdition, error) {
	var special models.SpecialEdition
	if err := s.db.WithContext(ctx).
		Model(&models.SpecialEdition{}).
		Where("id = ?", id).
		First(&special).Error; err != nil {
		return nil, err
	}
	return &special, nil
}

func (s *specialEditionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.SpecialEdition{}).Count(&count).Error
	return count, err
}

func (s *specialEditionRepository) Create(ctx context.Context, special *models.SpecialEdition) error {
	return s.db.WithContext(ctx).Create(special).Error
}

func (s *specialEditionRepository) Update(ctx context.Context, special *models.SpecialEdition) error {
	return s.db.WithContext(ctx).Save(special).Error
}

func (s *specialEditionRepository) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SpecialEdition{}).Error
}
