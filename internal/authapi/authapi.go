// Package authapi wraps the backend's authentication endpoints. Calls are
// marked as auth attempts so a rejected credential here never tears down an
// existing session.
package authapi

import (
	"context"

	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*models.Credentials, error) {
	var creds models.Credentials
	if err := s.api.Post(ctx, "/auth/login", input, &creds, backend.AsAuthAttempt()); err != nil {
		return nil, err
	}
	if !creds.Success || creds.Token == "" {
		msg := creds.Error
		if msg == "" {
			msg = "login failed"
		}
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, msg)
	}
	return &creds, nil
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*models.Credentials, error) {
	var creds models.Credentials
	if err := s.api.Post(ctx, "/auth/register", input, &creds, backend.AsAuthAttempt()); err != nil {
		return nil, err
	}
	if !creds.Success || creds.Token == "" {
		msg := creds.Error
		if msg == "" {
			msg = "registration failed"
		}
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msg)
	}
	return &creds, nil
}
