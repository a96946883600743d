package controllers

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/minhtamngo/bookstore-storefront/api/middleware"
	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	cartstore "github.com/minhtamngo/bookstore-storefront/internal/cart"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/orders"
	"github.com/minhtamngo/bookstore-storefront/internal/payments"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

const (
	paymentMethodCOD   = "COD"
	paymentMethodVNPay = "VNPAY"

	orderStatusPending   = "PENDING"
	paymentStatusPending = "PENDING"
)

type checkoutRequest struct {
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	PaymentMethod   string `json:"paymentMethod" validate:"required,oneof=COD VNPAY"`
}

type checkoutResponse struct {
	Order      *models.Order   `json:"order"`
	Payment    *models.Payment `json:"payment,omitempty"`
	PaymentURL string          `json:"paymentUrl,omitempty"`
}

// Checkout turns the cart into an order. Preconditions run before any network
// call: the cart must not be empty and every line must fit within the stock
// recorded when it was added. COD records a pending payment immediately and
// clears the cart; VNPay only returns the gateway redirect URL, keeping the
// cart intact so a cancelled or failed gateway payment can retry.
func Checkout(
	cart *cartstore.Store,
	orderSvc *orders.Service,
	paymentSvc *payments.Service,
	returnURL string,
	notifier *notify.Notifier,
	logg *logger.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines := cart.Lines()
		if len(lines) == 0 {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodePrecondition, "cart is empty"))
			return
		}
		for _, line := range lines {
			if line.Quantity > line.StockQuantity {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodePrecondition, "not enough stock").
						WithDetails(map[string]any{"bookId": line.BookID, "stockQuantity": line.StockQuantity}))
				return
			}
		}

		total := cart.TotalPrice()
		order, err := orderSvc.CreateOrder(r.Context(), orders.CreateOrderInput{
			UserID:          userID,
			TotalAmount:     total,
			ShippingAddress: payload.ShippingAddress,
			Status:          orderStatusPending,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := checkoutResponse{Order: order}

		switch payload.PaymentMethod {
		case paymentMethodCOD:
			payment, err := paymentSvc.CreatePayment(r.Context(), payments.PaymentInput{
				OrderID:       order.OrderID,
				PaymentMethod: paymentMethodCOD,
				Amount:        total,
				Status:        paymentStatusPending,
			})
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			out.Payment = payment
			cart.Clear()
		case paymentMethodVNPay:
			redirect, err := paymentSvc.CreateVNPayURL(r.Context(), payments.VNPayRequest{
				OrderID:   order.OrderID,
				Amount:    total.Mul(decimal.NewFromInt(100)),
				OrderInfo: fmt.Sprintf("Payment for order #%d", order.OrderID),
				ReturnURL: returnURL,
			})
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			out.PaymentURL = redirect.PaymentURL
		}

		notifier.Success(fmt.Sprintf("Order #%d placed", order.OrderID))
		responses.WriteSuccessStatus(w, http.StatusCreated, out)
	}
}
