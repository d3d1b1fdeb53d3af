package contracts

import (
	"chanv-service/internal/app/models"
	"context"
	"time"
)

// HealthReportRepository never returns soft deleted reports.
// CreateHealthReport wraps exceptions.ErrDuplicateDocument when the report id is taken.
type HealthReportRepository interface {
	CreateHealthReport(ctx context.Context, report *models.HealthReport) error
	FindByReportID(ctx context.Context, reportID string) (*models.HealthReport, error)
	ListHealthReports(ctx context.Context, filter models.HealthReportFilter, pagination models.Pagination) ([]models.HealthReport, int64, error)
	UpdateHealthReport(ctx context.Context, reportID string, update *models.HealthReportUpdate) error
	AddAttachment(ctx context.Context, reportID string, attachment *models.Attachment) error
	SoftDeleteHealthReport(ctx context.Context, reportID string, deletedAt time.Time) error
}
