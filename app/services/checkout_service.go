package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/utils/pricing"
	"github.com/shopspring/decimal"
)

// ErrLoginRequired signals the handler to redirect to the login page
// instead of failing the checkout.
var ErrLoginRequired = errors.New("login required")

type CheckoutService struct {
	orderRepo repositories.OrderRepositoryImpl
}

func NewCheckoutService(orderRepo repositories.OrderRepositoryImpl) *CheckoutService {
	return &CheckoutService{orderRepo: orderRepo}
}

// Checkout turns the cart into a persisted order. An empty cart is a
// silent no-op returning (nil, nil). The per-item prices were frozen at
// add-to-cart time; any discount is already baked in and is not applied
// again here.
func (s *CheckoutService) Checkout(ctx context.Context, userID string, items []models.CartItem) (*models.Order, error) {
	if userID == "" {
		return nil, ErrLoginRequired
	}
	if len(items) == 0 {
		return nil, nil
	}

	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		amount := pricing.ExtractAmount(item.Price)
		total = total.Add(amount)
		orderItems = append(orderItems, models.OrderItem{
			ID:    uuid.New().String(),
			Name:  item.Name,
			Carat: item.Carat,
			Metal: item.RingMetal,
			Qty:   1,
			Price: amount,
		})
	}

	order := &models.Order{
		ID:         uuid.New().String(),
		UserID:     userID,
		OrderItems: orderItems,
		Total:      total,
		Status:     models.OrderStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	return order, nil
}
