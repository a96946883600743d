package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/minhtamngo/bookstore-storefront/api/middleware"
	"github.com/minhtamngo/bookstore-storefront/internal/backend"
	cartstore "github.com/minhtamngo/bookstore-storefront/internal/cart"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/orders"
	"github.com/minhtamngo/bookstore-storefront/internal/payments"
	"github.com/minhtamngo/bookstore-storefront/pkg/models"
)

func newBackendClient(t *testing.T, handler http.Handler) *backend.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := backend.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	return api
}

func checkoutRequestAs(t *testing.T, userID int, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.WithUser(req.Context(), userID))
}

func TestCheckoutCODCreatesOrderAndClearsCart(t *testing.T) {
	var sawOrder, sawPayment bool

	api := newBackendClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			sawOrder = true
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode order payload: %v", err)
			}
			if body["userId"].(float64) != 7 {
				t.Fatalf("unexpected order payload %v", body)
			}
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"orderId":31,"userId":7,"status":"PENDING","totalAmount":"25.00"}`)
		case "/payments":
			sawPayment = true
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"paymentId":9,"orderId":31,"paymentMethod":"COD","amount":"25.00","status":"PENDING"}`)
		default:
			t.Fatalf("unexpected backend call %s", r.URL.Path)
		}
	}))

	cart := cartstore.NewStore()
	cart.AddLine(models.Book{BookID: 1, Title: "Dune", Price: decimal.RequireFromString("12.50"), StockQuantity: 3})
	cart.SetQuantity(1, 2)

	handler := Checkout(cart, orders.NewService(api), payments.NewService(api),
		"http://localhost/return", notify.NewNotifier(0), nil)

	w := httptest.NewRecorder()
	handler(w, checkoutRequestAs(t, 7, `{"shippingAddress":"1 Main St","paymentMethod":"COD"}`))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !sawOrder || !sawPayment {
		t.Fatalf("expected order and payment calls, got order=%v payment=%v", sawOrder, sawPayment)
	}
	if cart.TotalItemCount() != 0 {
		t.Fatalf("expected cart cleared after checkout, %d items remain", cart.TotalItemCount())
	}
}

func TestCheckoutVNPayReturnsRedirectURLAndKeepsCart(t *testing.T) {
	api := newBackendClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"orderId":32,"userId":7,"status":"PENDING","totalAmount":"12.50"}`)
		case "/payments/create-vnpay-url":
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode vnpay payload: %v", err)
			}
			if body["returnUrl"] != "http://localhost/return" {
				t.Fatalf("unexpected return url %v", body["returnUrl"])
			}
			io.WriteString(w, `{"paymentUrl":"https://pay.example/redirect"}`)
		default:
			t.Fatalf("unexpected backend call %s", r.URL.Path)
		}
	}))

	cart := cartstore.NewStore()
	cart.AddLine(models.Book{BookID: 1, Title: "Dune", Price: decimal.RequireFromString("12.50"), StockQuantity: 3})

	handler := Checkout(cart, orders.NewService(api), payments.NewService(api),
		"http://localhost/return", notify.NewNotifier(0), nil)

	w := httptest.NewRecorder()
	handler(w, checkoutRequestAs(t, 7, `{"shippingAddress":"1 Main St","paymentMethod":"VNPAY"}`))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data struct {
			PaymentURL string `json:"paymentUrl"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.PaymentURL != "https://pay.example/redirect" {
		t.Fatalf("unexpected payment url %q", body.Data.PaymentURL)
	}
	if cart.TotalItemCount() != 1 {
		t.Fatalf("cart must stay intact until the gateway payment completes, got %d items", cart.TotalItemCount())
	}
}

func TestCheckoutEmptyCartFailsBeforeAnyCall(t *testing.T) {
	api := newBackendClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no backend call expected, got %s", r.URL.Path)
	}))

	handler := Checkout(cartstore.NewStore(), orders.NewService(api), payments.NewService(api),
		"http://localhost/return", notify.NewNotifier(0), nil)

	w := httptest.NewRecorder()
	handler(w, checkoutRequestAs(t, 7, `{"shippingAddress":"1 Main St","paymentMethod":"COD"}`))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestCheckoutInsufficientStockFailsBeforeAnyCall(t *testing.T) {
	api := newBackendClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("no backend call expected, got %s", r.URL.Path)
	}))

	cart := cartstore.NewStore()
	cart.AddLine(models.Book{BookID: 1, Title: "Dune", Price: decimal.RequireFromString("12.50"), StockQuantity: 2})
	cart.SetQuantity(1, 5)

	handler := Checkout(cart, orders.NewService(api), payments.NewService(api),
		"http://localhost/return", notify.NewNotifier(0), nil)

	w := httptest.NewRecorder()
	handler(w, checkoutRequestAs(t, 7, `{"shippingAddress":"1 Main St","paymentMethod":"COD"}`))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}
