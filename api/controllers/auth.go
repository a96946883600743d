package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/authapi"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/session"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool              `json:"authenticated"`
	Identity      *session.Identity `json:"identity,omitempty"`
}

func AuthLogin(authSvc *authapi.Service, sessions *session.Store, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		creds, err := authSvc.Login(r.Context(), authapi.LoginInput{
			Email:    payload.Email,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		startSession(sessions, creds)
		notifier.Success("Signed in")
		responses.WriteSuccess(w, sessionView(sessions))
	}
}

// AuthSignup checks the password confirmation locally before any network call.
func AuthSignup(authSvc *authapi.Service, sessions *session.Store, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload signupRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if payload.Password != payload.ConfirmPassword {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "passwords do not match").
					WithDetails(map[string]string{"confirmPassword": "must match password"}))
			return
		}

		creds, err := authSvc.Register(r.Context(), authapi.RegisterInput{
			FullName: payload.FullName,
			Email:    payload.Email,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		startSession(sessions, creds)
		notifier.Success("Account created")
		responses.WriteSuccessStatus(w, http.StatusCreated, sessionView(sessions))
	}
}

func AuthLogout(sessions *session.Store, notifier *notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Logout()
		notifier.Info("Signed out")
		responses.WriteSuccess(w, sessionView(sessions))
	}
}

func SessionView(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, sessionView(sessions))
	}
}

func startSession(sessions *session.Store, creds *models.Credentials) {
	sessions.Login(session.Identity{
		UserID:   creds.UserID,
		Email:    creds.Email,
		FullName: creds.FullName,
		Role:     creds.Role,
	}, creds.Token)
}

func sessionView(sessions *session.Store) sessionResponse {
	out := sessionResponse{Authenticated: sessions.IsAuthenticated()}
	if identity, ok := sessions.Identity(); ok {
		out.Identity = &identity
	}
	return out
}
