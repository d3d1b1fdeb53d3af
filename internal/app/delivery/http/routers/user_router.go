package routers

import (
	"chanv-service/internal/app/delivery/http/controllers"
	"chanv-service/internal/app/delivery/http/middlewares"
	"chanv-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	relativeController *controllers.RelativeController,
	healthReportController *controllers.HealthReportController,
) {
	router.Post("/register", authController.RegisterUser)
	router.With(loginLimiter.Limit).Post("/login", authController.LoginUser)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Post("/logout", authController.Logout)
		r.Put("/change-password", authController.ChangePassword)

		r.With(middlewares.RequirePermission(models.PermissionManageOwnProfile)).Get("/profile", userController.GetProfile)
		r.With(middlewares.RequirePermission(models.PermissionManageOwnProfile)).Put("/profile/update", userController.UpdateProfile)

		r.Route("/relatives", func(r chi.Router) {
			r.Use(middlewares.RequirePermission(models.PermissionManageRelatives))
			r.Post("/", relativeController.CreateRelative)
			r.Get("/", relativeController.ListRelatives)
			r.Get("/{relativeId}", relativeController.GetRelative)
			r.Put("/{relativeId}", relativeController.UpdateRelative)
			r.Delete("/{relativeId}", relativeController.DeleteRelative)
			r.Get("/{relativeId}/health-reports", healthReportController.ListOwnRelativeHealthReports)
		})

		r.Route("/health-reports", func(r chi.Router) {
			r.Use(middlewares.RequireRole(models.RoleUser))
			r.Use(middlewares.RequirePermission(models.PermissionReadHealthReport))
			r.Get("/", healthReportController.ListOwnHealthReports)
			r.Get("/{id}", healthReportController.GetHealthReport)
		})
	})
}
