package repositories

import (
	"context"

	"github.com/mvdbroek/go-jewelry/app/models"
	"gorm.io/gorm"
)

type OrderRepositoryImpl interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (o *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return o.db.WithContext(ctx).Create(order).Error
}

func (o *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := o.db.WithContext(ctx).
		Preload("OrderItems").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *orderRepository) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := o.db.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (o *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := o.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return o.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (o *orderRepository) Delete(ctx context.Context, id string) error {
	return o.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{}).Error
}
