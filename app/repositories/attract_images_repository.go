package repositories

import (
	"context"

	"github.com/mvdbroek/go-jewelry/app/models"
	"gorm.io/gorm"
)

type AttractImageRepositoryImpl interface {
	Create(ctx context.Context, image *models.AttractImage) error
	GetAll(ctx context.Context) ([]models.AttractImage, error)
	DeleteByURL(ctx context.Context, url string) error
}

type attractImageRepository struct {
	db *gorm.DB
}

func NewAttractImageRepository(db *gorm.DB) AttractImageRepositoryImpl {
	return &attractImageRepository{db}
}

func (a *attractImageRepository) Create(ctx context.Context, image *models.AttractImage) error {
	return a.db.WithContext(ctx).Create(image).Error
}

func (a *attractImageRepository) GetAll(ctx context.Context) ([]models.AttractImage, error) {
	var images []models.AttractImage
	err := a.db.WithContext(ctx).Order("created_at ASC").Find(&images).Error
	return images, err
}

// DeleteByURL removes the record for a carousel image. The admin UI
// identifies attract images by URL, not by ID.
func (a *attractImageRepository) DeleteByURL(ctx context.Context, url string) error {
	return a.db.WithContext(ctx).Where("url = ?", url).Delete(&models.AttractImage{}).Error
}
