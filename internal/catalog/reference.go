package catalog

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

// ReferenceData bundles the lookup lists the book forms need.
type ReferenceData struct {
	Categories []models.Category `json:"categories"`
	Authors    []models.Author   `json:"authors"`
	Publishers []models.Publisher `json:"publishers"`
}

// LoadReferenceData fetches categories, authors and publishers concurrently.
// The view is only ready once all three complete; any failure fails the whole
// load, with the individual errors combined.
func (s *Service) LoadReferenceData(ctx context.Context) (*ReferenceData, error) {
	var (
		wg   sync.WaitGroup
		data ReferenceData
		errs [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.Categories, errs[0] = s.ListCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Authors, errs[1] = s.ListAuthors(ctx)
	}()
	go func() {
		defer wg.Done()
		data.Publishers, errs[2] = s.ListPublishers(ctx)
	}()
	wg.Wait()

	if err := multierr.Combine(errs[:]...); err != nil {
		return nil, err
	}
	return &data, nil
}
