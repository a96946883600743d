package controllers

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	cartstore "github.com/minhtamngo/bookstore-storefront/internal/cart"
	"github.com/minhtamngo/bookstore-storefront/internal/catalog"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

type cartResponse struct {
	Lines      []cartstore.Line `json:"lines"`
	ItemCount  int              `json:"itemCount"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
}

func newCartResponse(cart *cartstore.Store) cartResponse {
	lines := cart.Lines()
	if lines == nil {
		lines = []cartstore.Line{}
	}
	return cartResponse{
		Lines:      lines,
		ItemCount:  cart.TotalItemCount(),
		TotalPrice: cart.TotalPrice(),
	}
}

func CartView(cart *cartstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

type cartAddRequest struct {
	BookID int `json:"bookId" validate:"required,min=1"`
}

// CartAdd fetches the book so the line carries the add-time price, then checks
// stock before mutating the cart.
func CartAdd(cart *cartstore.Store, catalogSvc *catalog.Service, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		book, err := catalogSvc.GetBook(r.Context(), payload.BookID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current := 0
		for _, line := range cart.Lines() {
			if line.BookID == book.BookID {
				current = line.Quantity
				break
			}
		}
		if current+1 > book.StockQuantity {
			notifier.Warning(fmt.Sprintf("Only %d copies of %q in stock", book.StockQuantity, book.Title))
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodePrecondition, "not enough stock").
					WithDetails(map[string]any{"bookId": book.BookID, "stockQuantity": book.StockQuantity}))
			return
		}

		cart.AddLine(*book)
		notifier.Success(fmt.Sprintf("%q added to cart", book.Title))
		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartUpdate sets the quantity of an existing line. A quantity of zero or less
// removes the line.
func CartUpdate(cart *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := validators.ParseURLParamInt(r, "bookId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if payload.Quantity > 0 {
			for _, line := range cart.Lines() {
				if line.BookID == bookID && payload.Quantity > line.StockQuantity {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.New(pkgerrors.CodePrecondition, "not enough stock").
							WithDetails(map[string]any{"bookId": bookID, "stockQuantity": line.StockQuantity}))
					return
				}
			}
		}

		cart.SetQuantity(bookID, payload.Quantity)
		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

func CartRemove(cart *cartstore.Store, notifier *notify.Notifier, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := validators.ParseURLParamInt(r, "bookId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart.RemoveLine(bookID)
		notifier.Info("Removed from cart")
		responses.WriteSuccess(w, newCartResponse(cart))
	}
}

func CartClear(cart *cartstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart.Clear()
		responses.WriteSuccess(w, newCartResponse(cart))
	}
}
