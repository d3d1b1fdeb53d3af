package contracts

import (
	"chanv-service/internal/app/models"
	"context"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.HealthReportEvent) error
}
