package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/payments"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type paymentOutcomeResponse struct {
	Outcome string          `json:"outcome"`
	Payment *models.Payment `json:"payment,omitempty"`
}

// PaymentSuccess is the gateway return route for a completed payment. It looks
// up the payment recorded against the order so the page can show it.
func PaymentSuccess(paymentSvc *payments.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return paymentOutcome(paymentSvc, notifier, logg, "success")
}

// PaymentFailure is the gateway return route for a cancelled or failed payment.
func PaymentFailure(paymentSvc *payments.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return paymentOutcome(paymentSvc, notifier, logg, "failure")
}

func paymentOutcome(paymentSvc *payments.Service, notifier *notify.Notifier, logg *logger.Logger, outcome string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := validators.ParseQueryInt(r, "orderId", 0, 1, 1<<31-1)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := paymentOutcomeResponse{Outcome: outcome}

		if orderID > 0 {
			payment, err := paymentSvc.PaymentByOrder(r.Context(), orderID)
			if err != nil {
				// The outcome page still renders when the lookup fails.
				if logg != nil {
					logg.Warn(r.Context(), "payment lookup failed for outcome page")
				}
			} else {
				out.Payment = payment
			}
		}

		switch outcome {
		case "success":
			notifier.Success("Payment completed")
		default:
			notifier.Error("Payment was not completed")
		}

		responses.WriteSuccess(w, out)
	}
}
