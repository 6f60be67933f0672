package routers

import (
	"practice-service/internal/app/delivery/http/controllers"
	"practice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", paymentController.List)
	router.Post("/", paymentController.Create)
	router.Get("/report", paymentController.Report)
	router.Get("/{paymentId}", paymentController.Get)
	router.Put("/{paymentId}", paymentController.Update)
	router.Delete("/{paymentId}", paymentController.Delete)
}
