package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/orders"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

type orderStatusRequest struct {
	Status             string `json:"status" validate:"required,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	CancellationReason string `json:"cancellationReason"`
}

func AdminOrderList(orderSvc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := orderSvc.ListOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func AdminOrderView(orderSvc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := orderSvc.GetOrder(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		details, err := orderSvc.OrderDetails(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orderWithDetails{Order: order, Details: details})
	}
}

// AdminOrderUpdate changes an order's status. Cancelling requires a reason.
func AdminOrderUpdate(orderSvc *orders.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload orderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if payload.Status == "CANCELLED" && payload.CancellationReason == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "cancellation requires a reason").
					WithDetails(map[string]string{"cancellationReason": "is required"}))
			return
		}

		order, err := orderSvc.UpdateOrder(r.Context(), id, orders.UpdateOrderInput{
			Status:             payload.Status,
			CancellationReason: payload.CancellationReason,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifier.Success("Order updated")
		responses.WriteSuccess(w, order)
	}
}

func AdminOrderDelete(orderSvc *orders.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := orderSvc.DeleteOrder(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		notifier.Success("Order deleted")
		responses.WriteSuccess(w, map[string]int{"orderId": id})
	}
}
