package routers

import (
	"practice-service/internal/app/delivery/http/controllers"
	"practice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachChargeRoutes(router chi.Router, middlewares *middlewares.Middlewares, chargeController *controllers.ChargeController) {
	router.With(middlewares.RequireSuperadminAPIKey).Post("/generate-monthly", chargeController.GenerateMonthly)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Post("/", chargeController.Create)
		r.Put("/{chargeId}/status", chargeController.UpdateStatus)
		r.Delete("/{chargeId}", chargeController.Delete)
	})
}
