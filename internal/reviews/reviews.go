// Package reviews wraps the backend's review resource.
package reviews

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// ReviewInput is the create/update payload.
type ReviewInput struct {
	UserID  int    `json:"userId"`
	BookID  int    `json:"bookId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// Filter narrows the review listing; zero values mean no constraint.
type Filter struct {
	Rating int
	BookID int
}

func (s *Service) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.api.Get(ctx, "/reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Service) GetReview(ctx context.Context, id int) (*models.Review, error) {
	var review models.Review
	if err := s.api.Get(ctx, fmt.Sprintf("/reviews/%d", id), &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *Service) FilterReviews(ctx context.Context, filter Filter) ([]models.Review, error) {
	query := url.Values{}
	if filter.Rating > 0 {
		query.Set("rating", strconv.Itoa(filter.Rating))
	}
	if filter.BookID > 0 {
		query.Set("bookId", strconv.Itoa(filter.BookID))
	}

	path := "/reviews/filter"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var reviews []models.Review
	if err := s.api.Get(ctx, path, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Service) CreateReview(ctx context.Context, input ReviewInput) (*models.Review, error) {
	var review models.Review
	if err := s.api.Post(ctx, "/reviews", input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *Service) UpdateReview(ctx context.Context, id int, input ReviewInput) (*models.Review, error) {
	var review models.Review
	if err := s.api.Put(ctx, fmt.Sprintf("/reviews/%d", id), input, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *Service) DeleteReview(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/reviews/%d", id), nil)
}
