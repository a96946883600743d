package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/minhtamngo/bookstore-storefront/api/controllers"
	"github.com/minhtamngo/bookstore-storefront/api/middleware"
	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/internal/accounts"
	"github.com/minhtamngo/bookstore-storefront/internal/authapi"
	cartstore "github.com/minhtamngo/bookstore-storefront/internal/cart"
	"github.com/minhtamngo/bookstore-storefront/internal/catalog"
	"github.com/minhtamngo/bookstore-storefront/internal/dashboard"
	"github.com/minhtamngo/bookstore-storefront/internal/images"
	"github.com/minhtamngo/bookstore-storefront/internal/notify"
	"github.com/minhtamngo/bookstore-storefront/internal/orders"
	"github.com/minhtamngo/bookstore-storefront/internal/payments"
	"github.com/minhtamngo/bookstore-storefront/internal/reviews"
	"github.com/minhtamngo/bookstore-storefront/internal/session"
	"github.com/minhtamngo/bookstore-storefront/pkg/config"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
	"github.com/minhtamngo/bookstore-storefront/pkg/metrics"
)

// Services bundles the resource clients the routes delegate to.
type Services struct {
	Auth      *authapi.Service
	Catalog   *catalog.Service
	Accounts  *accounts.Service
	Orders    *orders.Service
	Payments  *payments.Service
	Reviews   *reviews.Service
	Images    *images.Service
	Dashboard *dashboard.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sessions *session.Store,
	cart *cartstore.Store,
	notifier *notify.Notifier,
	svc Services,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware(chiRoutePattern))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w,
			pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, svc.Images, logg))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", controllers.Home(svc.Catalog, logg))
		r.Get("/books", controllers.BookList(svc.Catalog, logg))
		r.Get("/books/{id}", controllers.BookDetail(svc.Catalog, logg))
		r.Get("/books/{id}/reviews", controllers.BookReviews(svc.Reviews, logg))
		r.Get("/reference", controllers.ReferenceData(svc.Catalog, logg))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(svc.Auth, sessions, notifier, logg))
			r.Post("/signup", controllers.AuthSignup(svc.Auth, sessions, notifier, logg))
			r.Post("/logout", controllers.AuthLogout(sessions, notifier))
			r.Get("/session", controllers.SessionView(sessions))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartView(cart))
			r.Delete("/", controllers.CartClear(cart))
			r.Post("/items", controllers.CartAdd(cart, svc.Catalog, notifier, logg))
			r.Put("/items/{bookId}", controllers.CartUpdate(cart, logg))
			r.Delete("/items/{bookId}", controllers.CartRemove(cart, notifier, logg))
		})

		r.Get("/notifications", controllers.Notifications(notifier))

		r.Get("/payment/success", controllers.PaymentSuccess(svc.Payments, notifier, logg))
		r.Get("/payment/failure", controllers.PaymentFailure(svc.Payments, notifier, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(sessions, logg))

			r.Post("/checkout", controllers.Checkout(cart, svc.Orders, svc.Payments, cfg.Payment.ReturnURL, notifier, logg))
			r.Get("/orders", controllers.OrderHistory(svc.Orders, logg))
			r.Get("/orders/{id}", controllers.OrderView(svc.Orders, logg))
			r.Get("/profile", controllers.ProfileView(svc.Accounts, logg))
			r.Put("/profile", controllers.ProfileUpdate(svc.Accounts, notifier, logg))
			r.Post("/books/{id}/reviews", controllers.SubmitReview(svc.Reviews, notifier, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(
			middleware.RequireSession(sessions, logg),
			middleware.RequireAdmin(sessions, logg),
		)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", controllers.AdminBookList(svc.Catalog, logg))
			r.Post("/", controllers.AdminBookCreate(svc.Catalog, notifier, logg))
			r.Post("/cover", controllers.AdminBookCoverUpload(svc.Images, logg))
			r.Put("/{id}", controllers.AdminBookUpdate(svc.Catalog, notifier, logg))
			r.Delete("/{id}", controllers.AdminBookDelete(svc.Catalog, notifier, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.AdminCategoryList(svc.Catalog, logg))
			r.Post("/", controllers.AdminCategoryCreate(svc.Catalog, logg))
			r.Put("/{id}", controllers.AdminCategoryUpdate(svc.Catalog, logg))
			r.Delete("/{id}", controllers.AdminCategoryDelete(svc.Catalog, logg))
		})

		r.Route("/authors", func(r chi.Router) {
			r.Get("/", controllers.AdminAuthorList(svc.Catalog, logg))
			r.Post("/", controllers.AdminAuthorCreate(svc.Catalog, logg))
			r.Put("/{id}", controllers.AdminAuthorUpdate(svc.Catalog, logg))
			r.Delete("/{id}", controllers.AdminAuthorDelete(svc.Catalog, logg))
		})

		r.Route("/publishers", func(r chi.Router) {
			r.Get("/", controllers.AdminPublisherList(svc.Catalog, logg))
			r.Post("/", controllers.AdminPublisherCreate(svc.Catalog, logg))
			r.Put("/{id}", controllers.AdminPublisherUpdate(svc.Catalog, logg))
			r.Delete("/{id}", controllers.AdminPublisherDelete(svc.Catalog, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminUserList(svc.Accounts, logg))
			r.Post("/", controllers.AdminUserCreate(svc.Accounts, notifier, logg))
			r.Get("/{id}", controllers.AdminUserView(svc.Accounts, logg))
			r.Put("/{id}", controllers.AdminUserUpdate(svc.Accounts, notifier, logg))
			r.Delete("/{id}", controllers.AdminUserDelete(svc.Accounts, notifier, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrderList(svc.Orders, logg))
			r.Get("/{id}", controllers.AdminOrderView(svc.Orders, logg))
			r.Put("/{id}", controllers.AdminOrderUpdate(svc.Orders, notifier, logg))
			r.Delete("/{id}", controllers.AdminOrderDelete(svc.Orders, notifier, logg))
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", controllers.AdminPaymentList(svc.Payments, logg))
			r.Get("/{id}", controllers.AdminPaymentView(svc.Payments, logg))
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", controllers.AdminReviewList(svc.Reviews, logg))
			r.Delete("/{id}", controllers.AdminReviewDelete(svc.Reviews, notifier, logg))
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/statistics", controllers.AdminDashboardStats(svc.Dashboard, logg))
			r.Get("/recent-orders", controllers.AdminDashboardRecentOrders(svc.Dashboard, logg))
			r.Get("/top-books", controllers.AdminDashboardTopBooks(svc.Dashboard, logg))
		})
		r.Get("/reports", controllers.AdminReport(svc.Dashboard, logg))
	})

	return r
}

func chiRoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
