// Package accounts wraps the backend's user resource.
package accounts

import (
	"context"
	"fmt"
	"net/url"

	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// UserInput carries the editable account fields. Password is only set on
// create or an explicit reset; the backend hashes it.
type UserInput struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Password      string `json:"password,omitempty"`
	PhoneNumber   string `json:"phoneNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	Role          string `json:"role,omitempty"`
	AccountStatus string `json:"accountStatus,omitempty"`
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.api.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.api.Get(ctx, "/users/email/"+url.PathEscape(email), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) CreateUser(ctx context.Context, input UserInput) (*models.User, error) {
	var user models.User
	if err := s.api.Post(ctx, "/users", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int, input UserInput) (*models.User, error) {
	var user models.User
	if err := s.api.Put(ctx, fmt.Sprintf("/users/%d", id), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/users/%d", id), nil)
}
