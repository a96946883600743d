package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/catalog"
	"github.com/minhtamngo/bookstore-storefront/internal/images"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

// maxCoverUploadBytes bounds the multipart form parse for cover uploads.
const maxCoverUploadBytes = 10 << 20

type bookRequest struct {
	Title           string          `json:"title" validate:"required"`
	ISBN            *string         `json:"isbn"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	StockQuantity   int             `json:"stockQuantity" validate:"min=0"`
	PublicationYear *int            `json:"publicationYear"`
	CoverImageURL   string          `json:"coverImageUrl"`
	CategoryID      *int            `json:"categoryId"`
	AuthorID        *int            `json:"authorId"`
	PublisherID     *int            `json:"publisherId"`
}

func (r bookRequest) toInput() catalog.BookInput {
	return catalog.BookInput{
		Title:           r.Title,
		ISBN:            r.ISBN,
		Description:     r.Description,
		Price:           r.Price,
		StockQuantity:   r.StockQuantity,
		PublicationYear: r.PublicationYear,
		CoverImageURL:   r.CoverImageURL,
		CategoryID:      r.CategoryID,
		AuthorID:        r.AuthorID,
		PublisherID:     r.PublisherID,
	}
}

func AdminBookList(catalogSvc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := catalogSvc.ListBooks(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, books)
	}
}

func AdminBookCreate(catalogSvc *catalog.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload bookRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		book, err := catalogSvc.CreateBook(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifier.Success("Book created")
		responses.WriteSuccessStatus(w, http.StatusCreated, book)
	}
}

func AdminBookUpdate(catalogSvc *catalog.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload bookRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		book, err := catalogSvc.UpdateBook(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifier.Success("Book updated")
		responses.WriteSuccess(w, book)
	}
}

func AdminBookDelete(catalogSvc *catalog.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := catalogSvc.DeleteBook(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifier.Success("Book deleted")
		responses.WriteSuccess(w, map[string]int{"bookId": id})
	}
}

// AdminBookCoverUpload forwards a multipart cover image to the image service
// and returns the hosted URL the book record should carry.
func AdminBookCoverUpload(imageSvc *images.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxCoverUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file field is required"))
			return
		}
		defer file.Close()

		uploaded, err := imageSvc.UploadBookCover(r.Context(), header.Filename, file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, uploaded)
	}
}
