package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/api/validators"
	"github.com/minhtamngo/bookstore-storefront/internal/dashboard"
	pkgerrors "github.com/minhtamngo/bookstore-storefront/pkg/errors"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

func AdminDashboardStats(dashboardSvc *dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := dashboardSvc.Statistics(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

func AdminDashboardRecentOrders(dashboardSvc *dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := dashboardSvc.RecentOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

func AdminDashboardTopBooks(dashboardSvc *dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := dashboardSvc.TopBooks(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, books)
	}
}

// AdminReport serves the sales report for an inclusive date range.
func AdminReport(dashboardSvc *dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, err := validators.ParseQueryDate(r, "startDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "endDate")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if end.Before(start) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "endDate must not be before startDate"))
			return
		}

		report, err := dashboardSvc.Report(r.Context(), start, end)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}
