package routers

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/delivery/http/controllers"
	"chanv-service/internal/app/delivery/http/middlewares"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	metricsHandler http.Handler,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	relativeController *controllers.RelativeController,
	doctorController *controllers.DoctorController,
	healthReportController *controllers.HealthReportController,
	campController *controllers.CampController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Audit sits above recovery and rate limiting so panics and 429s are recorded.
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.AuditLog)
	router.Use(middlewares.ErrorHandler)

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.Logging)
	router.Use(middlewares.HTTPMetrics)
	router.Use(middlewares.RequestTimeout)
	router.Use(middlewares.BodyBuffer)

	router.NotFound(middlewares.NotFound)

	router.Get("/health", healthController.Health)
	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthController.Health)

			r.Route("/user", func(r chi.Router) {
				attachUserRoutes(r, middlewares, loginLimiter, authController, userController, relativeController, healthReportController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, loginLimiter, authController, doctorController, campController)
			})

			r.Route("/doctor", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, loginLimiter, authController, doctorController, healthReportController)
			})
		})
	})
}
