// Package payments wraps the backend's payment resource and the VNPay
// redirect flow. The gateway integration itself lives behind the backend;
// this side only requests the redirect URL and reads payment records.
package payments

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

// VNPayRequest asks the backend to build a gateway redirect URL. Amount is in
// the gateway's minor unit, one hundredth of the order total.
type VNPayRequest struct {
	OrderID   int             `json:"orderId"`
	Amount    decimal.Decimal `json:"amount"`
	OrderInfo string          `json:"orderInfo"`
	ReturnURL string          `json:"returnUrl"`
}

// PaymentInput records a payment against an order, used for the COD path.
type PaymentInput struct {
	OrderID       int             `json:"orderId"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

// CreateVNPayURL requests the gateway redirect URL for an order.
func (s *Service) CreateVNPayURL(ctx context.Context, req VNPayRequest) (*models.VNPayURL, error) {
	var out models.VNPayURL
	if err := s.api.Post(ctx, "/payments/create-vnpay-url", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.api.Get(ctx, "/payments", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Service) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	var payment models.Payment
	if err := s.api.Get(ctx, fmt.Sprintf("/payments/%d", id), &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Service) PaymentByOrder(ctx context.Context, orderID int) (*models.Payment, error) {
	var payment models.Payment
	if err := s.api.Get(ctx, fmt.Sprintf("/payments/order/%d", orderID), &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Service) CreatePayment(ctx context.Context, input PaymentInput) (*models.Payment, error) {
	var payment models.Payment
	if err := s.api.Post(ctx, "/payments", input, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
