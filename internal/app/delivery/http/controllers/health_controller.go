package controllers

import (
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const healthProbeTimeout = 2 * time.Second

// DependencyCheck pings one backing service.
type DependencyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthController struct {
	Log     *zap.Logger
	Version string
	Checks  []DependencyCheck
}

func NewHealthController(logger *zap.Logger, version string, checks ...DependencyCheck) *HealthController {
	return &HealthController{
		Log:     logger,
		Version: version,
		Checks:  checks,
	}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
	defer cancel()

	dependencies := make(map[string]string, len(ctrl.Checks))
	for _, dependency := range ctrl.Checks {
		if err := dependency.Check(ctx); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDependencyUnavailable(err, dependency.Name))
			return
		}
		dependencies[dependency.Name] = "up"
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.HealthCheck{
		Status:       "ok",
		Version:      ctrl.Version,
		Dependencies: dependencies,
	})
}
