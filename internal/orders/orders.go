// Package orders wraps the backend's order resource, including the line
// details that accompany each order.
package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// CreateOrderInput is the order creation payload checkout sends.
type CreateOrderInput struct {
	UserID          int             `json:"userId"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress string          `json:"shippingAddress"`
	Status          string          `json:"status"`
}

// UpdateOrderInput carries the admin-editable order fields.
type UpdateOrderInput struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.api.Get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := s.api.Get(ctx, fmt.Sprintf("/orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) OrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	var orders []models.Order
	if err := s.api.Get(ctx, fmt.Sprintf("/orders/user/%d", userID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	var order models.Order
	if err := s.api.Post(ctx, "/orders", input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) UpdateOrder(ctx context.Context, id int, input UpdateOrderInput) (*models.Order, error) {
	var order models.Order
	if err := s.api.Put(ctx, fmt.Sprintf("/orders/%d", id), input, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/orders/%d", id), nil)
}

func (s *Service) OrderDetails(ctx context.Context, orderID int) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	if err := s.api.Get(ctx, fmt.Sprintf("/orders/%d/details", orderID), &details); err != nil {
		return nil, err
	}
	return details, nil
}
