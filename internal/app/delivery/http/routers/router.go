package routers

import (
	"fmt"
	"practice-service/internal/app/config"
	"practice-service/internal/app/delivery/http/controllers"
	"practice-service/internal/app/delivery/http/middlewares"
	"practice-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth        *controllers.AuthController
	Customer    *controllers.CustomerController
	Appointment *controllers.AppointmentController
	Payment     *controllers.PaymentController
	Charge      *controllers.ChargeController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID, constvars.HeaderAPIKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.APIKeyAuth)

	normalLimiter, apiKeyLimiter := middlewares.CreateRateLimiters()
	router.Use(middlewares.ConditionalRateLimit(normalLimiter, apiKeyLimiter))

	loginLimiter := newLoginLimiter(internalConfig, middlewares)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
				attachAuthRoutes(r, middlewares, loginLimiter, ctrls.Auth)
			})

			r.Route("/"+constvars.ResourceCustomers, func(r chi.Router) {
				attachCustomerRoutes(r, middlewares, ctrls)
			})

			r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, ctrls.Appointment)
			})

			r.Route("/"+constvars.ResourcePayments, func(r chi.Router) {
				attachPaymentRoutes(r, middlewares, ctrls.Payment)
			})

			r.Route("/"+constvars.ResourceCharges, func(r chi.Router) {
				attachChargeRoutes(r, middlewares, ctrls.Charge)
			})
		})
	})
}

func newLoginLimiter(internalConfig *config.InternalConfig, m *middlewares.Middlewares) *middlewares.RateLimiter {
	attempts := internalConfig.App.LoginMaxAttempts
	if attempts <= 0 {
		attempts = 5
	}
	window := time.Duration(internalConfig.App.LoginWindowInSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	block := time.Duration(internalConfig.App.LoginBlockInSeconds) * time.Second
	if block <= 0 {
		block = 15 * time.Minute
	}
	return middlewares.NewRateLimiter(m.Log, attempts, window, block)
}
