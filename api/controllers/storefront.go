package controllers

import (
	"net/http"
	"sync"

	"go.uber.org/multierr"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/catalog"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

// maxSearchKeywordLen caps what gets forwarded to the backend search endpoint.
const maxSearchKeywordLen = 100

type homeResponse struct {
	NewReleases []models.Book     `json:"newReleases"`
	Bestsellers []models.Book     `json:"bestsellers"`
	Categories  []models.Category `json:"categories"`
}

// Home aggregates the storefront landing page: new releases, bestsellers and
// the category rail, fetched concurrently.
func Home(catalogSvc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			out  homeResponse
			errs [3]error
			wg   sync.WaitGroup
		)

		wg.Add(3)
		go func() {
			defer wg.Done()
			out.NewReleases, errs[0] = catalogSvc.NewReleases(ctx)
		}()
		go func() {
			defer wg.Done()
			out.Bestsellers, errs[1] = catalogSvc.Bestsellers(ctx)
		}()
		go func() {
			defer wg.Done()
			out.Categories, errs[2] = catalogSvc.ListCategories(ctx)
		}()
		wg.Wait()

		if err := multierr.Combine(errs[:]...); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, out)
	}
}

// BookList serves the catalog listing. keyword, category and author query
// parameters narrow the listing; keyword wins when several are present.
func BookList(catalogSvc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var (
			books []models.Book
			err   error
		)

		switch {
		case validators.SanitizeString(r.URL.Query().Get("keyword"), maxSearchKeywordLen) != "":
			books, err = catalogSvc.SearchBooks(ctx, validators.SanitizeString(r.URL.Query().Get("keyword"), maxSearchKeywordLen))
		case r.URL.Query().Get("category") != "":
			var categoryID int
			categoryID, err = validators.ParseQueryInt(r, "category", 0, 1, 1<<31-1)
			if err == nil {
				books, err = catalogSvc.BooksByCategory(ctx, categoryID)
			}
		case r.URL.Query().Get("author") != "":
			var authorID int
			authorID, err = validators.ParseQueryInt(r, "author", 0, 1, 1<<31-1)
			if err == nil {
				books, err = catalogSvc.BooksByAuthor(ctx, authorID)
			}
		default:
			books, err = catalogSvc.ListBooks(ctx)
		}

		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, books)
	}
}

// BookDetail returns one book. The backend embeds the book's reviews in the
// payload, so the detail page needs a single call.
func BookDetail(catalogSvc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		book, err := catalogSvc.GetBook(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, book)
	}
}

// ReferenceData serves the category/author/publisher lists the storefront's
// filter controls need in one payload.
func ReferenceData(catalogSvc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := catalogSvc.LoadReferenceData(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, data)
	}
}
