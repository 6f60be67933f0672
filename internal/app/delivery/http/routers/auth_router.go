package routers

import (
	"practice-service/internal/app/delivery/http/controllers"
	"practice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(loginLimiter.Limit).Post("/signup", authController.Signup)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
}
