package routers

import (
	"practice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCustomerRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrls *Controllers) {
	router.Use(middlewares.Authenticate)

	router.Get("/", ctrls.Customer.List)
	router.Post("/", ctrls.Customer.Create)
	router.Get("/birthday", ctrls.Customer.Birthdays)
	router.Post("/import", ctrls.Customer.Import)

	router.Route("/{customerId}", func(r chi.Router) {
		r.Get("/", ctrls.Customer.Get)
		r.Put("/", ctrls.Customer.Update)
		r.Delete("/", ctrls.Customer.Delete)
		r.Get("/appointments", ctrls.Appointment.ListByCustomer)
		r.Get("/payments", ctrls.Payment.ListByCustomer)
		r.Get("/charges", ctrls.Charge.ListByCustomer)
	})
}
