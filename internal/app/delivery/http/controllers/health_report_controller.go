package controllers

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// multipartOverhead leaves room for the form boundaries and the other parts.
const multipartOverhead = 1 << 20

type HealthReportController struct {
	Log                 *zap.Logger
	HealthReportUsecase contracts.HealthReportUsecase
	InternalConfig      *config.InternalConfig
}

func NewHealthReportController(logger *zap.Logger, healthReportUsecase contracts.HealthReportUsecase, internalConfig *config.InternalConfig) *HealthReportController {
	return &HealthReportController{
		Log:                 logger,
		HealthReportUsecase: healthReportUsecase,
		InternalConfig:      internalConfig,
	}
}

type listHealthReportsFunc func(r *http.Request, actor *models.Identity, pagination models.Pagination) ([]responses.HealthReport, int64, error)

// respondList runs one of the list usecases and writes the paginated envelope.
func (ctrl *HealthReportController) respondList(w http.ResponseWriter, r *http.Request, list listHealthReportsFunc) {
	actor, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	reports, total, err := list(r, actor, pagination)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetHealthReportsSuccessMessage, paginationResponse, reports)
}

func (ctrl *HealthReportController) CreateHealthReport(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("HealthReportController.CreateHealthReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	actor, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateHealthReport)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateHealthReportRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.HealthReportUsecase.CreateHealthReport(r.Context(), actor, request)
	if err != nil {
		ctrl.Log.Error("HealthReportController.CreateHealthReport error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateHealthReportSuccessMessage, response)
}

func (ctrl *HealthReportController) GetHealthReport(w http.ResponseWriter, r *http.Request) {
	actor, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	response, err := ctrl.HealthReportUsecase.GetHealthReport(r.Context(), actor, chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHealthReportSuccessMessage, response)
}

func (ctrl *HealthReportController) UpdateHealthReport(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("HealthReportController.UpdateHealthReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	actor, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateHealthReport)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateHealthReportRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.HealthReportUsecase.UpdateHealthReport(r.Context(), actor, chi.URLParam(r, constvars.URLParamID), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateHealthReportSuccessMessage, response)
}

func (ctrl *HealthReportController) DeleteHealthReport(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("HealthReportController.DeleteHealthReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	actor, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	if err := ctrl.HealthReportUsecase.DeleteHealthReport(r.Context(), actor, chi.URLParam(r, constvars.URLParamID)); err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteHealthReportSuccessMessage, nil)
}

// UploadAttachment streams the multipart file part straight to object storage.
// The usecase enforces the configured size limit on the declared part size.
func (ctrl *HealthReportController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("HealthReportController.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	actor, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	maxBytes := int64(ctrl.InternalConfig.Minio.AttachmentMaxUploadSizeInMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	file, header, err := r.FormFile(constvars.FormFieldAttachmentFile)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	request := &requests.UploadAttachment{
		FileName:    strings.TrimSpace(header.Filename),
		ContentType: contentType,
		Size:        header.Size,
		Extension:   strings.ToLower(filepath.Ext(header.Filename)),
	}

	response, err := ctrl.HealthReportUsecase.UploadAttachment(r.Context(), actor, chi.URLParam(r, constvars.URLParamID), request, file)
	if err != nil {
		ctrl.Log.Error("HealthReportController.UploadAttachment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, response)
}

func (ctrl *HealthReportController) ListAllHealthReports(w http.ResponseWriter, r *http.Request) {
	ctrl.respondList(w, r, func(r *http.Request, actor *models.Identity, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
		reportType := models.ReportType(strings.ToLower(strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamReportType))))
		return ctrl.HealthReportUsecase.ListAllHealthReports(r.Context(), actor, reportType, pagination)
	})
}

// ListAuthoredHealthReports lists the reports written by the acting doctor.
func (ctrl *HealthReportController) ListAuthoredHealthReports(w http.ResponseWriter, r *http.Request) {
	ctrl.respondList(w, r, func(r *http.Request, actor *models.Identity, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
		return ctrl.HealthReportUsecase.ListByDoctor(r.Context(), actor, actor.ID, pagination)
	})
}

func (ctrl *HealthReportController) ListHealthReportsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseObjectIDParam(r, constvars.URLParamDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.respondList(w, r, func(r *http.Request, actor *models.Identity, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
		return ctrl.HealthReportUsecase.ListByDoctor(r.Context(), actor, doctorID, pagination)
	})
}

func (ctrl *HealthReportController) ListHealthReportsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseObjectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.respondList(w, r, func(r *http.Request, actor *models.Identity, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
		return ctrl.HealthReportUsecase.ListByPatient(r.Context(), actor, patientID, pagination)
	})
}

func (ctrl *HealthReportController) ListHealthReportsByRelative(w http.ResponseWriter, r *http.Request) {
	ownerID, err := utils.ParseObjectIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.listByRelative(w, r, &ownerID)
}

// ListOwnHealthReports is the patient-facing list of reports about the caller.
func (ctrl *HealthReportController) ListOwnHealthReports(w http.ResponseWriter, r *http.Request) {
	ctrl.respondList(w, r, func(r *http.Request, actor *models.Identity, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
		return ctrl.HealthReportUsecase.ListByPatient(r.Context(), actor, actor.ID, pagination)
	})
}

func (ctrl *HealthReportController) ListOwnRelativeHealthReports(w http.ResponseWriter, r *http.Request) {
	ctrl.listByRelative(w, r, nil)
}

// listByRelative uses the acting account as owner when ownerID is nil.
func (ctrl *HealthReportController) listByRelative(w http.ResponseWriter, r *http.Request, ownerID *primitive.ObjectID) {
	relativeID, err := utils.ParseObjectIDParam(r, constvars.URLParamRelativeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.respondList(w, r, func(r *http.Request, actor *models.Identity, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
		owner := actor.ID
		if ownerID != nil {
			owner = *ownerID
		}
		return ctrl.HealthReportUsecase.ListByRelative(r.Context(), actor, owner, relativeID, pagination)
	})
}
