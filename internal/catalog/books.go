// Package catalog wraps the backend's book, author, category and publisher
// resources. Every method is a thin typed mapping onto one HTTP call;
// transport and status errors propagate unchanged to the caller.
package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// BookInput is the flat create/update payload the backend expects.
type BookInput struct {
	Title           string          `json:"title"`
	ISBN            *string         `json:"isbn"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	StockQuantity   int             `json:"stockQuantity"`
	PublicationYear *int            `json:"publicationYear"`
	CoverImageURL   string          `json:"coverImageUrl"`
	CategoryID      *int            `json:"categoryId"`
	AuthorID        *int            `json:"authorId"`
	PublisherID     *int            `json:"publisherId"`
}

func (s *Service) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := s.api.Get(ctx, "/books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (*models.Book, error) {
	var book models.Book
	if err := s.api.Get(ctx, fmt.Sprintf("/books/%d", id), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *Service) CreateBook(ctx context.Context, input BookInput) (*models.Book, error) {
	var book models.Book
	if err := s.api.Post(ctx, "/books", input, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *Service) UpdateBook(ctx context.Context, id int, input BookInput) (*models.Book, error) {
	var book models.Book
	if err := s.api.Put(ctx, fmt.Sprintf("/books/%d", id), input, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.api.Delete(ctx, fmt.Sprintf("/books/%d", id), nil)
}

func (s *Service) SearchBooks(ctx context.Context, keyword string) ([]models.Book, error) {
	var books []models.Book
	path := "/books/search?keyword=" + url.QueryEscape(keyword)
	if err := s.api.Get(ctx, path, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Service) BooksByCategory(ctx context.Context, categoryID int) ([]models.Book, error) {
	var books []models.Book
	if err := s.api.Get(ctx, fmt.Sprintf("/books/category/%d", categoryID), &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Service) BooksByAuthor(ctx context.Context, authorID int) ([]models.Book, error) {
	var books []models.Book
	if err := s.api.Get(ctx, fmt.Sprintf("/books/author/%d", authorID), &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Service) NewReleases(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := s.api.Get(ctx, "/books/new/list", &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Service) Bestsellers(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := s.api.Get(ctx, "/books/bestsellers/list", &books); err != nil {
		return nil, err
	}
	return books, nil
}
