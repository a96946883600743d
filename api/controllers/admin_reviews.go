package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/reviews"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

// AdminReviewList lists reviews, optionally narrowed by rating or book.
func AdminReviewList(reviewSvc *reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rating, err := validators.ParseQueryInt(r, "rating", 0, 1, 5)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		bookID, err := validators.ParseQueryInt(r, "bookId", 0, 1, 1<<31-1)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filtered, err := reviewSvc.FilterReviews(r.Context(), reviews.Filter{
			Rating: rating,
			BookID: bookID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, filtered)
	}
}

func AdminReviewDelete(reviewSvc *reviews.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLParamInt(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := reviewSvc.DeleteReview(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		notifier.Success("Review removed")
		responses.WriteSuccess(w, map[string]int{"reviewId": id})
	}
}
