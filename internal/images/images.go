// Package images wraps the backend's image upload endpoints.
package images

import (
	"context"
	"io"

	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// UploadBookCover uploads a cover image and returns its hosted URL.
func (s *Service) UploadBookCover(ctx context.Context, fileName string, file io.Reader) (*models.UploadedImage, error) {
	var out models.UploadedImage
	if err := s.api.PostMultipart(ctx, "/images/upload/book-cover", "file", fileName, file, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAvatar uploads a user avatar image.
func (s *Service) UploadAvatar(ctx context.Context, fileName string, file io.Reader) (*models.UploadedImage, error) {
	var out models.UploadedImage
	if err := s.api.PostMultipart(ctx, "/images/upload/avatar", "file", fileName, file, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImage uploads into an arbitrary folder, defaulting to "general".
func (s *Service) UploadImage(ctx context.Context, fileName string, file io.Reader, folder string) (*models.UploadedImage, error) {
	if folder == "" {
		folder = "general"
	}
	var out models.UploadedImage
	fields := map[string]string{"folder": folder}
	if err := s.api.PostMultipart(ctx, "/images/upload", "file", fileName, file, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health reports whether the image service is reachable.
func (s *Service) Health(ctx context.Context) error {
	return s.api.Get(ctx, "/images/health", nil)
}
