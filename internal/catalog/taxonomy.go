package catalog

import (
	"context"
	"fmt"

	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

// AuthorInput is the author create/update payload.
type AuthorInput struct {
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

// CategoryInput is the category create/update payload.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PublisherInput is the publisher create/update payload.
type PublisherInput struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo,omitempty"`
}

func (s *Service) ListAuthors(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	if err := s.api.Get(ctx, "/authors", &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *Service) GetAuthor(ctx context.Context, id int) (*models.Author, error) {
	var author models.Author
	if err := s.api.Get(ctx, fmt.Sprintf("/authors/%d", id), &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *Service) CreateAuthor(ctx context.Context, input AuthorInput) (*models.Author, error) {
	var author models.Author
	if err := s.api.Post(ctx, "/authors", input, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, id int, input AuthorInput) (*models.Author, error) {
	var author models.Author
	if err := s.api.Put(ctx, fmt.Sprintf("/authors/%d", id), input, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/authors/%d", id), nil)
}

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.api.Get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Service) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	if err := s.api.Get(ctx, fmt.Sprintf("/categories/%d", id), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Service) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := s.api.Post(ctx, "/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int, input CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := s.api.Put(ctx, fmt.Sprintf("/categories/%d", id), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/categories/%d", id), nil)
}

func (s *Service) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	var publishers []models.Publisher
	if err := s.api.Get(ctx, "/publishers", &publishers); err != nil {
		return nil, err
	}
	return publishers, nil
}

func (s *Service) GetPublisher(ctx context.Context, id int) (*models.Publisher, error) {
	var publisher models.Publisher
	if err := s.api.Get(ctx, fmt.Sprintf("/publishers/%d", id), &publisher); err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (s *Service) CreatePublisher(ctx context.Context, input PublisherInput) (*models.Publisher, error) {
	var publisher models.Publisher
	if err := s.api.Post(ctx, "/publishers", input, &publisher); err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (s *Service) UpdatePublisher(ctx context.Context, id int, input PublisherInput) (*models.Publisher, error) {
	var publisher models.Publisher
	if err := s.api.Put(ctx, fmt.Sprintf("/publishers/%d", id), input, &publisher); err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (s *Service) DeletePublisher(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/publishers/%d", id), nil)
}
