package healthReports

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type healthReportUsecase struct {
	HealthReportRepository contracts.HealthReportRepository
	AccountRepository      contracts.AccountRepository
	DoctorRepository       contracts.DoctorRepository
	Storage                contracts.Storage
	EventPublisher         contracts.EventPublisher
	Metrics                contracts.MetricsRecorder
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
	now                    func() time.Time
	generateID             func(time.Time) string
}

func NewHealthReportUsecase(
	healthReportRepository contracts.HealthReportRepository,
	accountRepository contracts.AccountRepository,
	doctorRepository contracts.DoctorRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	metrics contracts.MetricsRecorder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.HealthReportUsecase {
	return &healthReportUsecase{
		HealthReportRepository: healthReportRepository,
		AccountRepository:      accountRepository,
		DoctorRepository:       doctorRepository,
		Storage:                storage,
		EventPublisher:         eventPublisher,
		Metrics:                metrics,
		InternalConfig:         internalConfig,
		Log:                    logger,
		now:                    time.Now,
		generateID:             utils.GenerateHealthReportID,
	}
}

func (uc *healthReportUsecase) CreateHealthReport(ctx context.Context, actor *models.Identity, request *requests.CreateHealthReport) (*responses.HealthReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.CreateHealthReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, actor.Role.String()),
	)

	doctorID, err := uc.resolveAuthor(ctx, actor, request.DoctorID)
	if err != nil {
		return nil, err
	}

	report := &models.HealthReport{
		DoctorID:     doctorID,
		ReportType:   models.ReportType(request.ReportType),
		Diagnosis:    request.Diagnosis,
		Findings:     request.Findings,
		Vitals:       mapVitals(request.Vitals),
		IsNormal:     request.IsNormal,
		Severity:     models.Severity(request.Severity),
		HospitalName: request.HospitalName,
		Notes:        request.Notes,
		Medications:  mapMedications(request.Medications),
		Attachments:  []models.Attachment{},
	}

	if !report.ReportType.IsValid() {
		return nil, exceptions.ErrInputValidation(nil)
	}
	if report.Severity != "" && !report.Severity.IsValid() {
		return nil, exceptions.ErrInputValidation(nil)
	}
	if report.Vitals.HasNegative() {
		return nil, exceptions.ErrNegativeVitals(nil)
	}
	if request.FollowUpDate != "" {
		followUpDate, err := utils.ParseDate(request.FollowUpDate)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		report.FollowUpDate = &followUpDate
	}

	if err := uc.resolveSubject(ctx, report, request); err != nil {
		return nil, err
	}

	if err := uc.insertWithFreshID(ctx, report); err != nil {
		return nil, err
	}

	uc.linkSubject(ctx, report)
	uc.emit(ctx, constvars.EventHealthReportCreated, actor, report)

	uc.Log.Info("healthReportUsecase.CreateHealthReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, report.ReportID),
		zap.String(constvars.LoggingDoctorIDKey, report.DoctorID.Hex()),
	)
	return uc.toResponse(ctx, report), nil
}

// resolveAuthor returns the doctor the report is filed under. Doctors always
// author their own reports; admins must name an existing doctor.
func (uc *healthReportUsecase) resolveAuthor(ctx context.Context, actor *models.Identity, requestedDoctorID string) (primitive.ObjectID, error) {
	switch {
	case actor.IsDoctor() && actor.Directory == constvars.DirectoryDoctors:
		return actor.ID, nil
	case actor.IsAdmin():
		if requestedDoctorID == "" {
			return primitive.NilObjectID, exceptions.ErrDoctorNotFound(nil)
		}
		doctorID, err := primitive.ObjectIDFromHex(requestedDoctorID)
		if err != nil {
			return primitive.NilObjectID, exceptions.ErrMongoDBNotObjectID(err)
		}
		doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
		if err != nil {
			return primitive.NilObjectID, err
		}
		if doctor == nil {
			return primitive.NilObjectID, exceptions.ErrDoctorNotFound(nil)
		}
		return doctor.ID, nil
	default:
		return primitive.NilObjectID, exceptions.ErrForbidden(nil, "create health report", actor.Role.String())
	}
}

// resolveSubject requires exactly one of patientId and relative, and that it
// addresses an existing patient account or a relative currently owned by one.
func (uc *healthReportUsecase) resolveSubject(ctx context.Context, report *models.HealthReport, request *requests.CreateHealthReport) error {
	hasPatient := request.PatientID != ""
	hasRelative := request.Relative != nil
	if hasPatient == hasRelative {
		return exceptions.ErrInvalidSubject(nil)
	}

	if hasPatient {
		patientID, err := primitive.ObjectIDFromHex(request.PatientID)
		if err != nil {
			return exceptions.ErrInvalidSubject(err)
		}
		patient, err := uc.AccountRepository.FindByID(ctx, patientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return exceptions.ErrInvalidSubject(nil)
		}
		report.PatientID = &patient.ID
		return nil
	}

	ownerID, err := primitive.ObjectIDFromHex(request.Relative.OwnerID)
	if err != nil {
		return exceptions.ErrInvalidSubject(err)
	}
	relativeID, err := primitive.ObjectIDFromHex(request.Relative.RelativeID)
	if err != nil {
		return exceptions.ErrInvalidSubject(err)
	}
	owner, err := uc.AccountRepository.FindByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner == nil || !owner.OwnsRelative(relativeID) {
		return exceptions.ErrInvalidSubject(nil)
	}
	report.Relative = &models.RelativeRef{OwnerID: ownerID, RelativeID: relativeID}
	return nil
}

func (uc *healthReportUsecase) maxIDAttempts() int {
	if uc.InternalConfig != nil && uc.InternalConfig.App.ReportIDGenerationMaxAttempt > 0 {
		return uc.InternalConfig.App.ReportIDGenerationMaxAttempt
	}
	return constvars.HealthReportIDMaxAttempts
}

// insertWithFreshID mints a new report id per attempt. A duplicate id is
// retried, never ignored.
func (uc *healthReportUsecase) insertWithFreshID(ctx context.Context, report *models.HealthReport) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var lastErr error
	for attempt := 1; attempt <= uc.maxIDAttempts(); attempt++ {
		now := uc.now().UTC()
		report.ReportID = uc.generateID(now)
		report.CreatedAt = now
		report.UpdatedAt = now

		err := uc.HealthReportRepository.CreateHealthReport(ctx, report)
		if err == nil {
			return nil
		}
		if !errors.Is(err, exceptions.ErrDuplicateDocument) {
			return err
		}
		lastErr = err
		uc.Log.Warn("healthReportUsecase.insertWithFreshID report id collision",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReportIDKey, report.ReportID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
	}
	return exceptions.ErrReportIDExhausted(lastErr)
}

// linkSubject records the back reference on the subject. The report is the
// source of truth, so a failure here is logged and not surfaced.
func (uc *healthReportUsecase) linkSubject(ctx context.Context, report *models.HealthReport) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var err error
	if report.PatientID != nil {
		err = uc.AccountRepository.AddHealthReportRef(ctx, *report.PatientID, report.ReportID)
	} else if report.Relative != nil {
		err = uc.AccountRepository.AddRelativeHealthReportRef(ctx, report.Relative.OwnerID, report.Relative.RelativeID, report.ReportID)
	}
	if err != nil {
		uc.Log.Error("healthReportUsecase.linkSubject failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReportIDKey, report.ReportID),
			zap.Error(err),
		)
	}
}

func (uc *healthReportUsecase) unlinkSubject(ctx context.Context, report *models.HealthReport) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var err error
	if report.PatientID != nil {
		err = uc.AccountRepository.RemoveHealthReportRef(ctx, *report.PatientID, report.ReportID)
	} else if report.Relative != nil {
		err = uc.AccountRepository.RemoveRelativeHealthReportRef(ctx, report.Relative.OwnerID, report.Relative.RelativeID, report.ReportID)
	}
	if err != nil {
		uc.Log.Error("healthReportUsecase.unlinkSubject failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReportIDKey, report.ReportID),
			zap.Error(err),
		)
	}
}

// emit publishes the report event and counts it. Publishing is best effort.
func (uc *healthReportUsecase) emit(ctx context.Context, event string, actor *models.Identity, report *models.HealthReport) {
	if uc.Metrics != nil {
		uc.Metrics.RecordHealthReportEvent(event)
	}
	utils.LogBusinessEvent(uc.Log, event, utils.GetRequestID(ctx),
		zap.String(constvars.LoggingReportIDKey, report.ReportID),
		zap.String(constvars.LoggingRoleKey, actor.Role.String()),
	)
	if uc.EventPublisher == nil {
		return
	}

	payload := &models.HealthReportEvent{
		Event:      event,
		ReportID:   report.ReportID,
		DoctorID:   report.DoctorID.Hex(),
		ActorID:    actor.ID.Hex(),
		ActorRole:  actor.Role.String(),
		OccurredAt: uc.now().UTC(),
	}
	if report.PatientID != nil {
		payload.PatientID = report.PatientID.Hex()
	}
	if report.Relative != nil {
		payload.OwnerID = report.Relative.OwnerID.Hex()
		payload.RelativeID = report.Relative.RelativeID.Hex()
	}

	if err := uc.EventPublisher.Publish(ctx, payload); err != nil {
		uc.Log.Warn("healthReportUsecase.emit publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingReportIDKey, report.ReportID),
			zap.Error(err),
		)
	}
}

func (uc *healthReportUsecase) findReport(ctx context.Context, reportID string) (*models.HealthReport, error) {
	report, err := uc.HealthReportRepository.FindByReportID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrHealthReportNotFound(nil)
	}
	return report, nil
}

func isAuthor(actor *models.Identity, report *models.HealthReport) bool {
	return actor.IsDoctor() && actor.Directory == constvars.DirectoryDoctors && report.IsAuthoredBy(actor.ID)
}

// canRead grants the author, admins and the subject. For a relative subject
// the owner must still hold the relative in their list.
func (uc *healthReportUsecase) canRead(ctx context.Context, actor *models.Identity, report *models.HealthReport) (bool, error) {
	if actor.IsAdmin() || isAuthor(actor, report) {
		return true, nil
	}
	if actor.Directory != constvars.DirectoryAccounts {
		return false, nil
	}
	if report.PatientID != nil {
		return *report.PatientID == actor.ID, nil
	}
	if report.Relative == nil || report.Relative.OwnerID != actor.ID {
		return false, nil
	}
	owner, err := uc.AccountRepository.FindByID(ctx, actor.ID)
	if err != nil {
		return false, err
	}
	return owner != nil && owner.OwnsRelative(report.Relative.RelativeID), nil
}

func (uc *healthReportUsecase) GetHealthReport(ctx context.Context, actor *models.Identity, reportID string) (*responses.HealthReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.GetHealthReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	report, err := uc.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	allowed, err := uc.canRead(ctx, actor, report)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, exceptions.ErrForbidden(nil, "read health report", actor.Role.String())
	}
	return uc.toResponse(ctx, report), nil
}

// authorizeMutation is shared by update, delete and attachment upload.
// The subject may read a report but never alter it.
func authorizeMutation(actor *models.Identity, report *models.HealthReport, action string) error {
	if actor.IsAdmin() || isAuthor(actor, report) {
		return nil
	}
	return exceptions.ErrForbidden(nil, action, actor.Role.String())
}

func (uc *healthReportUsecase) UpdateHealthReport(ctx context.Context, actor *models.Identity, reportID string, request *requests.UpdateHealthReport) (*responses.HealthReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.UpdateHealthReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	report, err := uc.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if err := authorizeMutation(actor, report, "update health report"); err != nil {
		return nil, err
	}

	update, err := buildUpdate(report, request)
	if err != nil {
		return nil, err
	}

	if err := uc.HealthReportRepository.UpdateHealthReport(ctx, reportID, update); err != nil {
		return nil, err
	}

	updated, err := uc.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	uc.emit(ctx, constvars.EventHealthReportUpdated, actor, updated)

	uc.Log.Info("healthReportUsecase.UpdateHealthReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	return uc.toResponse(ctx, updated), nil
}

// buildUpdate merges supplied vitals into the stored ones so a partial vitals
// patch keeps the measurements it does not mention.
func buildUpdate(report *models.HealthReport, request *requests.UpdateHealthReport) (*models.HealthReportUpdate, error) {
	update := &models.HealthReportUpdate{
		Diagnosis:    request.Diagnosis,
		Findings:     request.Findings,
		IsNormal:     request.IsNormal,
		HospitalName: request.HospitalName,
		Notes:        request.Notes,
	}

	if request.ReportType != nil {
		reportType := models.ReportType(*request.ReportType)
		if !reportType.IsValid() {
			return nil, exceptions.ErrInputValidation(nil)
		}
		update.ReportType = &reportType
	}
	if request.Severity != nil {
		severity := models.Severity(*request.Severity)
		if severity != "" && !severity.IsValid() {
			return nil, exceptions.ErrInputValidation(nil)
		}
		update.Severity = &severity
	}
	if request.Vitals != nil {
		vitals := mergeVitals(report.Vitals, mapVitals(*request.Vitals))
		if vitals.HasNegative() {
			return nil, exceptions.ErrNegativeVitals(nil)
		}
		update.Vitals = &vitals
	}
	if request.FollowUpDate != nil {
		followUpDate, err := utils.ParseDate(*request.FollowUpDate)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		update.FollowUpDate = &followUpDate
	}
	if request.Medications != nil {
		medications := mapMedications(request.Medications)
		update.Medications = &medications
	}
	return update, nil
}

func (uc *healthReportUsecase) DeleteHealthReport(ctx context.Context, actor *models.Identity, reportID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.DeleteHealthReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)

	report, err := uc.findReport(ctx, reportID)
	if err != nil {
		return err
	}
	if err := authorizeMutation(actor, report, "delete health report"); err != nil {
		return err
	}

	if err := uc.HealthReportRepository.SoftDeleteHealthReport(ctx, reportID, uc.now().UTC()); err != nil {
		return err
	}
	uc.unlinkSubject(ctx, report)
	uc.emit(ctx, constvars.EventHealthReportDeleted, actor, report)

	uc.Log.Info("healthReportUsecase.DeleteHealthReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
	)
	return nil
}

func (uc *healthReportUsecase) attachmentMaxSize() int64 {
	return int64(uc.InternalConfig.Minio.AttachmentMaxUploadSizeInMB) * 1024 * 1024
}

func (uc *healthReportUsecase) UploadAttachment(ctx context.Context, actor *models.Identity, reportID string, request *requests.UploadAttachment, body io.Reader) (*responses.HealthReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
		zap.Int64("size", request.Size),
	)

	report, err := uc.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if err := authorizeMutation(actor, report, "upload attachment"); err != nil {
		return nil, err
	}
	if request.Size <= 0 || request.Size > uc.attachmentMaxSize() || request.FileName == "" {
		return nil, exceptions.ErrInvalidAttachment(nil)
	}

	attachmentID, objectKey := utils.GenerateAttachmentObjectKey(reportID, request.FileName)
	_, err = uc.Storage.UploadFile(ctx, &contracts.UploadObjectInput{
		BucketName:  uc.InternalConfig.Minio.BucketName,
		ObjectKey:   objectKey,
		ContentType: request.ContentType,
		Size:        request.Size,
		Body:        body,
	})
	if err != nil {
		return nil, err
	}

	attachment := &models.Attachment{
		ID:          attachmentID,
		FileName:    request.FileName,
		ObjectKey:   objectKey,
		ContentType: request.ContentType,
		Size:        request.Size,
		UploadedAt:  uc.now().UTC(),
	}
	if err := uc.HealthReportRepository.AddAttachment(ctx, reportID, attachment); err != nil {
		return nil, err
	}

	updated, err := uc.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	uc.emit(ctx, constvars.EventHealthReportUpdated, actor, updated)

	uc.Log.Info("healthReportUsecase.UploadAttachment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID),
		zap.String("object_key", objectKey),
	)
	return uc.toResponse(ctx, updated), nil
}

func (uc *healthReportUsecase) ListAllHealthReports(ctx context.Context, actor *models.Identity, reportType models.ReportType, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.ListAllHealthReports called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !models.HasPermission(actor.Role, models.PermissionListAllHealthReports) {
		return nil, 0, exceptions.ErrForbidden(nil, "list all health reports", actor.Role.String())
	}
	if reportType != "" && !reportType.IsValid() {
		return nil, 0, exceptions.ErrInputValidation(nil)
	}
	return uc.list(ctx, models.HealthReportFilter{ReportType: reportType}, pagination)
}

func (uc *healthReportUsecase) ListByDoctor(ctx context.Context, actor *models.Identity, doctorID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.ListByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID.Hex()),
	)

	isSelf := actor.IsDoctor() && actor.Directory == constvars.DirectoryDoctors && actor.ID == doctorID
	if !actor.IsAdmin() && !isSelf {
		return nil, 0, exceptions.ErrForbidden(nil, "list doctor health reports", actor.Role.String())
	}
	return uc.list(ctx, models.HealthReportFilter{DoctorID: &doctorID}, pagination)
}

// ListByPatient scopes by actor: admins see every report, doctors only the
// ones they authored, and a patient only their own.
func (uc *healthReportUsecase) ListByPatient(ctx context.Context, actor *models.Identity, patientID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, patientID.Hex()),
	)

	filter := models.HealthReportFilter{PatientID: &patientID}
	switch {
	case actor.IsAdmin():
	case actor.IsDoctor() && actor.Directory == constvars.DirectoryDoctors:
		filter.DoctorID = &actor.ID
	case actor.Directory == constvars.DirectoryAccounts && actor.ID == patientID:
	default:
		return nil, 0, exceptions.ErrAccountNotExist(nil)
	}
	return uc.list(ctx, filter, pagination)
}

func (uc *healthReportUsecase) ListByRelative(ctx context.Context, actor *models.Identity, ownerID, relativeID primitive.ObjectID, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthReportUsecase.ListByRelative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, ownerID.Hex()),
		zap.String(constvars.LoggingRelativeIDKey, relativeID.Hex()),
	)

	filter := models.HealthReportFilter{Relative: &models.RelativeRef{OwnerID: ownerID, RelativeID: relativeID}}
	switch {
	case actor.IsAdmin():
	case actor.IsDoctor() && actor.Directory == constvars.DirectoryDoctors:
		filter.DoctorID = &actor.ID
	case actor.Directory == constvars.DirectoryAccounts && actor.ID == ownerID:
		owner, err := uc.AccountRepository.FindByID(ctx, ownerID)
		if err != nil {
			return nil, 0, err
		}
		if owner == nil || !owner.OwnsRelative(relativeID) {
			return nil, 0, exceptions.ErrRelativeNotFound(nil)
		}
	default:
		return nil, 0, exceptions.ErrRelativeNotFound(nil)
	}
	return uc.list(ctx, filter, pagination)
}

func (uc *healthReportUsecase) list(ctx context.Context, filter models.HealthReportFilter, pagination models.Pagination) ([]responses.HealthReport, int64, error) {
	reports, total, err := uc.HealthReportRepository.ListHealthReports(ctx, filter, pagination)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.HealthReport, 0, len(reports))
	for i := range reports {
		result = append(result, *uc.toResponse(ctx, &reports[i]))
	}
	return result, total, nil
}

// toResponse computes derived fields and attachment download links at read time.
func (uc *healthReportUsecase) toResponse(ctx context.Context, report *models.HealthReport) *responses.HealthReport {
	if uc.Storage == nil {
		return utils.MapHealthReportToResponse(report, nil)
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PresignedURLExpiryTimeInMinutes) * time.Minute
	return utils.MapHealthReportToResponse(report, func(objectKey string) string {
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectKey, expiry)
		if err != nil {
			uc.Log.Warn("healthReportUsecase.toResponse presign failed",
				zap.String(constvars.LoggingReportIDKey, report.ReportID),
				zap.Error(err),
			)
			return ""
		}
		return url
	})
}

func mapVitals(vitals requests.Vitals) models.Vitals {
	return models.Vitals{
		Sugar:                  vitals.Sugar,
		BloodPressureSystolic:  vitals.BloodPressureSystolic,
		BloodPressureDiastolic: vitals.BloodPressureDiastolic,
		Height:                 vitals.Height,
		Weight:                 vitals.Weight,
		Temperature:            vitals.Temperature,
		Pulse:                  vitals.Pulse,
	}
}

func mergeVitals(stored, patch models.Vitals) models.Vitals {
	pick := func(current, next *float64) *float64 {
		if next != nil {
			return next
		}
		return current
	}
	return models.Vitals{
		Sugar:                  pick(stored.Sugar, patch.Sugar),
		BloodPressureSystolic:  pick(stored.BloodPressureSystolic, patch.BloodPressureSystolic),
		BloodPressureDiastolic: pick(stored.BloodPressureDiastolic, patch.BloodPressureDiastolic),
		Height:                 pick(stored.Height, patch.Height),
		Weight:                 pick(stored.Weight, patch.Weight),
		Temperature:            pick(stored.Temperature, patch.Temperature),
		Pulse:                  pick(stored.Pulse, patch.Pulse),
	}
}

func mapMedications(medications []requests.Medication) []models.Medication {
	result := make([]models.Medication, 0, len(medications))
	for _, medication := range medications {
		result = append(result, models.Medication{
			Name:         medication.Name,
			Dosage:       medication.Dosage,
			Frequency:    medication.Frequency,
			Duration:     medication.Duration,
			Instructions: medication.Instructions,
		})
	}
	return result
}
