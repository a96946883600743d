package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/middleware"
	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/accounts"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

type profileUpdateRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

func ProfileView(accountSvc *accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := accountSvc.GetUser(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

// ProfileUpdate changes the signed-in user's contact fields. Email and role
// are not editable from the storefront.
func ProfileUpdate(accountSvc *accounts.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())

		var payload profileUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := accountSvc.GetUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := accountSvc.UpdateUser(r.Context(), userID, accounts.UserInput{
			FullName:    payload.FullName,
			Email:       current.Email,
			PhoneNumber: payload.PhoneNumber,
			Address:     payload.Address,
			Role:        current.Role,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifier.Success("Profile updated")
		responses.WriteSuccess(w, user)
	}
}
