// Package dashboard wraps the backend's admin statistics and report
// endpoints.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

func (s *Service) Statistics(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := s.api.Get(ctx, "/admin/dashboard/statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Service) RecentOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.api.Get(ctx, "/admin/dashboard/recent-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) TopBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := s.api.Get(ctx, "/admin/dashboard/top-books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Report fetches the sales report for an inclusive date range.
func (s *Service) Report(ctx context.Context, startDate, endDate time.Time) (*models.SalesReport, error) {
	path := fmt.Sprintf("/admin/reports?startDate=%s&endDate=%s",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	var report models.SalesReport
	if err := s.api.Get(ctx, path, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
