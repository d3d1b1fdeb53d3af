package routers

import (
	"chanv-service/internal/app/delivery/http/controllers"
	"chanv-service/internal/app/delivery/http/middlewares"
	"chanv-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

// attachDoctorRoutes mounts the clinical surface. Authorship and subject
// ownership are decided by the usecase, the middlewares only gate on role.
func attachDoctorRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	healthReportController *controllers.HealthReportController,
) {
	router.With(loginLimiter.Limit).Post("/login", authController.LoginDoctor)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Post("/logout", authController.Logout)
		r.With(middlewares.RequireRole(models.RoleDoctor)).Get("/profile", doctorController.GetProfile)

		r.Route("/health-reports", func(r chi.Router) {
			r.With(middlewares.RequirePermission(models.PermissionCreateHealthReport)).Post("/create", healthReportController.CreateHealthReport)
			r.With(middlewares.RequirePermission(models.PermissionListAllHealthReports)).Get("/all", healthReportController.ListAllHealthReports)
			r.With(middlewares.RequireRole(models.RoleDoctor)).Get("/mine", healthReportController.ListAuthoredHealthReports)

			r.With(middlewares.RequirePermission(models.PermissionReadHealthReport)).Get("/{id}", healthReportController.GetHealthReport)
			r.With(middlewares.RequirePermission(models.PermissionUpdateHealthReport)).Put("/{id}", healthReportController.UpdateHealthReport)
			r.With(middlewares.RequirePermission(models.PermissionDeleteHealthReport)).Delete("/{id}", healthReportController.DeleteHealthReport)
			r.With(middlewares.RequirePermission(models.PermissionUploadAttachment)).Post("/{id}/attachments", healthReportController.UploadAttachment)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequirePermission(models.PermissionReadHealthReport))
			r.Get("/patients/{patientId}/health-reports", healthReportController.ListHealthReportsByPatient)
			r.Get("/patients/{patientId}/relatives/{relativeId}/health-reports", healthReportController.ListHealthReportsByRelative)
			r.Get("/doctors/{doctorId}/health-reports", healthReportController.ListHealthReportsByDoctor)
		})
	})
}
