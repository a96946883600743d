package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/accounts"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

type adminUserRequest struct {
	FullName      string `json:"fullName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	Role          string `json:"role" validate:"omitempty,oneof=customer admin"`
	AccountStatus string `json:"accountStatus" validate:"omitempty,oneof=active locked"`
}

func (r adminUserRequest) toInput() accounts.UserInput {
	return accounts.UserInput{
		FullName:      r.FullName,
		Email:         r.Email,
		Password:      r.Password,
		PhoneNumber:   r.PhoneNumber,
		Address:       r.Address,
		Role:          r.Role,
		AccountStatus: r.AccountStatus,
	}
}

func AdminUserList(accountSvc *accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := accountSvc.ListUsers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, users)
	}
}

func AdminUserView(accountSvc *accounts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		user, err := accountSvc.GetUser(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}

func AdminUserCreate(accountSvc *accounts.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		user, err := accountSvc.CreateUser(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		notifier.Success("User created")
		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// AdminUserUpdate covers role changes and account locking as well as the
// contact fields.
func AdminUserUpdate(accountSvc *accounts.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload adminUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		user, err := accountSvc.UpdateUser(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		notifier.Success("User updated")
		responses.WriteSuccess(w, user)
	}
}

func AdminUserDelete(accountSvc *accounts.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := accountSvc.DeleteUser(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		notifier.Success("User deleted")
		responses.WriteSuccess(w, map[string]int{"userId": id})
	}
}
