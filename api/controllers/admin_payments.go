package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/payments"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

func AdminPaymentList(paymentSvc *payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := paymentSvc.ListPayments(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func AdminPaymentView(paymentSvc *payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		payment, err := paymentSvc.GetPayment(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, payment)
	}
}
