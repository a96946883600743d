package controllers

import (
	"net/http"

	"github.com/minhtamngo/bookstore-storefront/api/responses"
	"github.com/minhtamngo/bookstore-storefront/internal/images"
	"github.com/minhtamngo/bookstore-storefront/pkg/config"
	"github.com/minhtamngo/bookstore-storefront/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bookstore-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady also probes the image service, the one backend dependency with a
// dedicated health endpoint.
func HealthReady(cfg *config.Config, imageSvc *images.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Bookstore-Env", cfg.App.Env)

		status := map[string]string{"status": "ready", "images": "ok"}
		if imageSvc != nil {
			if err := imageSvc.Health(r.Context()); err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "image service health probe failed")
				}
				status["images"] = "degraded"
			}
		}

		responses.WriteSuccess(w, status)
	}
}
