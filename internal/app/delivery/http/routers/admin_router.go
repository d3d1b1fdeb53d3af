package routers

import (
	"chanv-service/internal/app/delivery/http/controllers"
	"chanv-service/internal/app/delivery/http/middlewares"
	"chanv-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	campController *controllers.CampController,
) {
	router.With(loginLimiter.Limit).Post("/login", authController.LoginAdmin)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.RequireRole(models.RoleAdmin))

		r.Route("/doctors", func(r chi.Router) {
			r.Use(middlewares.RequirePermission(models.PermissionManageDoctors))
			r.Post("/", doctorController.CreateDoctor)
			r.Get("/", doctorController.ListDoctors)
		})

		r.Route("/camps", func(r chi.Router) {
			r.Use(middlewares.RequirePermission(models.PermissionManageCamps))
			r.Post("/", campController.CreateCamp)
			r.Get("/", campController.ListCamps)
			r.Get("/{campId}", campController.GetCamp)
			r.Put("/{campId}", campController.UpdateCamp)
			r.Delete("/{campId}", campController.DeleteCamp)
		})
	})
}
