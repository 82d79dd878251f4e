package services

import (
	"context"
	"testing"

	"github.com/mvdbroek/go-jewelry/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	created *models.Order
}

func (s *stubOrderRepo) Create(ctx context.Context, order *models.Order) error {
	s.created = order
	return nil
}
func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	return nil, nil
}
func (s *stubOrderRepo) GetAll(ctx context.Context) ([]models.Order, error)    { return nil, nil }
func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id, st string) error { return nil }
func (s *stubOrderRepo) Delete(ctx context.Context, id string) error           { return nil }

func TestCheckout(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewCheckoutService(repo)

	items := []models.CartItem{
		{ProductID: "p1", Name: "Solitaire", Carat: "1.0 Carat", RingMetal: "Platinum (950)", Price: "$600"},
		{ProductID: "p2", Name: "Halo", Carat: "1.5 Carat", RingMetal: "Rose Gold (14K/18K)", Price: "$400"},
	}

	order, err := svc.Checkout(context.Background(), "user-1", items)
	require.NoError(t, err)
	require.NotNil(t, order)
	require.Same(t, order, repo.created)

	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(1000)), "total = %s", order.Total)

	require.Len(t, order.OrderItems, 2)
	for _, item := range order.OrderItems {
		assert.Equal(t, 1, item.Qty)
	}
	assert.Equal(t, "Solitaire", order.OrderItems[0].Name)
	assert.True(t, order.OrderItems[0].Price.Equal(decimal.NewFromInt(600)))
}

func TestCheckoutRequiresLogin(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewCheckoutService(repo)

	order, err := svc.Checkout(context.Background(), "", []models.CartItem{{ProductID: "p1", Price: "$100"}})
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Nil(t, order)
	assert.Nil(t, repo.created, "nothing may be persisted for a guest")
}

func TestCheckoutEmptyCartIsNoOp(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewCheckoutService(repo)

	order, err := svc.Checkout(context.Background(), "user-1", nil)
	assert.NoError(t, err)
	assert.Nil(t, order)
	assert.Nil(t, repo.created)
}
