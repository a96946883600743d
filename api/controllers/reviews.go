package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/middleware"
	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/reviews"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// BookReviews lists the reviews for one book.
func BookReviews(reviewSvc *reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := reviewSvc.FilterReviews(r.Context(), reviews.Filter{BookID: bookID})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// SubmitReview creates a review for a book by the signed-in user.
func SubmitReview(reviewSvc *reviews.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload reviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := reviewSvc.CreateReview(r.Context(), reviews.ReviewInput{
			UserID:  middleware.UserIDFromContext(r.Context()),
			BookID:  bookID,
			Rating:  payload.Rating,
			Comment: payload.Comment,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifier.Success("Review submitted")
		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}
