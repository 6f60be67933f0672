package routers

import (
	"practice-service/internal/app/delivery/http/controllers"
	"practice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", appointmentController.List)
	router.Post("/", appointmentController.Create)
	router.Get("/{appointmentId}", appointmentController.Get)
	router.Put("/{appointmentId}", appointmentController.Update)
	router.Delete("/{appointmentId}", appointmentController.Delete)
}
