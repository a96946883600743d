package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/middleware"
	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/orders"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type orderWithDetails struct {
	Order   *models.Order        `json:"order"`
	Details []models.OrderDetail `json:"details"`
}

// OrderHistory lists the signed-in user's orders.
func OrderHistory(orderSvc *orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())

		list, err := orderSvc.OrdersByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// OrderView returns one of the signed-in user's orders with its line details.
// Orders belonging to someone else read as not found.
func OrderView(orderSvc *orders.Service, logg *logger.Logger) http.HandlerFunc {
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

		if order.UserID != middleware.UserIDFromContext(r.Context()) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
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
