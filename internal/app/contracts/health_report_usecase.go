package contracts

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthReportUsecase evaluates authorship and subject ownership for every
// call. Lists are ordered by creation time descending, then report id ascending.
type HealthReportUsecase interface {
	CreateHealthReport(ctx context.Context, actor *models.Identity, request *requests.CreateHealthReport) (*responses.HealthReport, error)
	GetHealthReport(ctx context.Context, actor *models.Identity, reportID string) (*responses.HealthReport, error)
	UpdateHealthReport(ctx context.Context, actor *models.Identity, reportID string, request *requests.UpdateHealthReport) (*responses.HealthReport, error)
	DeleteHealthReport(ctx context.Context, actor *models.Identity, reportID string) error
	UploadAttachment(ctx context.Context, actor *models.Identity, reportID string, request *requests.UploadAttachment, body io.Reader) (*responses.HealthReport, error)

	ListAllHealthReports(ctx context.Context, actor *models.Identity, reportType models.ReportType, pagination models.Pagination) ([]responses.HealthReport, int64, error)
	ListByDoctor(ctx context.Context, actor *models.Identity, doctorID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error)
	ListByPatient(ctx context.Context, actor *models.Identity, patientID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error)
	ListByRelative(ctx context.Context, actor *models.Identity, ownerID, relativeID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error)
}
