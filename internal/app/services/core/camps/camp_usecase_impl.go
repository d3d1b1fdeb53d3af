package camps

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var errUnknownDoctor = errors.New("camp references an unknown doctor")

type campUsecase struct {
	CampRepository   contracts.CampRepository
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewCampUsecase(campRepository contracts.CampRepository, doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.CampUsecase {
	return &campUsecase{
		CampRepository:   campRepository,
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

// resolveDoctorIDs drops duplicates and requires every id to name an existing doctor.
func (uc *campUsecase) resolveDoctorIDs(ctx context.Context, values []string) ([]primitive.ObjectID, error) {
	seen := make(map[primitive.ObjectID]struct{}, len(values))
	doctorIDs := make([]primitive.ObjectID, 0, len(values))
	for _, value := range values {
		doctorID, err := primitive.ObjectIDFromHex(value)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		if _, ok := seen[doctorID]; ok {
			continue
		}
		seen[doctorID] = struct{}{}
		doctorIDs = append(doctorIDs, doctorID)
	}
	if len(doctorIDs) == 0 {
		return doctorIDs, nil
	}

	count, err := uc.DoctorRepository.CountByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, err
	}
	if count != int64(len(doctorIDs)) {
		return nil, exceptions.ErrDoctorNotFound(errUnknownDoctor)
	}
	return doctorIDs, nil
}

func (uc *campUsecase) CreateCamp(ctx context.Context, actor *models.Identity, request *requests.CreateCamp) (*responses.Camp, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("campUsecase.CreateCamp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Capacity <= 0 {
		return nil, exceptions.ErrInputValidation(nil)
	}
	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	doctorIDs, err := uc.resolveDoctorIDs(ctx, request.DoctorIDs)
	if err != nil {
		return nil, err
	}

	camp := &models.Camp{
		Name:        request.Name,
		Location:    request.Location,
		Date:        date,
		DoctorIDs:   doctorIDs,
		Capacity:    request.Capacity,
		Description: request.Description,
		CreatedBy:   actor.ID,
	}
	camp.SetCreatedAtUpdatedAt()

	campID, err := uc.CampRepository.CreateCamp(ctx, camp)
	if err != nil {
		return nil, err
	}
	camp.ID = campID

	uc.Log.Info("campUsecase.CreateCamp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCampIDKey, campID.Hex()),
	)
	return utils.MapCampToResponse(camp), nil
}

func (uc *campUsecase) ListCamps(ctx context.Context, pagination models.Pagination) ([]responses.Camp, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("campUsecase.ListCamps called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	camps, total, err := uc.CampRepository.ListCamps(ctx, pagination)
	if err != nil {
		return nil, 0, err
	}
	result := make([]responses.Camp, 0, len(camps))
	for i := range camps {
		result = append(result, *utils.MapCampToResponse(&camps[i]))
	}
	return result, total, nil
}

func (uc *campUsecase) findCamp(ctx context.Context, campID primitive.ObjectID) (*models.Camp, error) {
	camp, err := uc.CampRepository.FindByID(ctx, campID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, exceptions.ErrCampNotFound(nil)
	}
	return camp, nil
}

func (uc *campUsecase) GetCamp(ctx context.Context, campID primitive.ObjectID) (*responses.Camp, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("campUsecase.GetCamp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCampIDKey, campID.Hex()),
	)

	camp, err := uc.findCamp(ctx, campID)
	if err != nil {
		return nil, err
	}
	return utils.MapCampToResponse(camp), nil
}

func (uc *campUsecase) UpdateCamp(ctx context.Context, campID primitive.ObjectID, request *requests.UpdateCamp) (*responses.Camp, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("campUsecase.UpdateCamp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCampIDKey, campID.Hex()),
	)

	if _, err := uc.findCamp(ctx, campID); err != nil {
		return nil, err
	}

	update := &models.CampUpdate{
		Name:        request.Name,
		Location:    request.Location,
		Capacity:    request.Capacity,
		Description: request.Description,
	}
	if request.Capacity != nil && *request.Capacity <= 0 {
		return nil, exceptions.ErrInputValidation(nil)
	}
	if request.Date != nil {
		date, err := utils.ParseDate(*request.Date)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		update.Date = &date
	}
	if request.DoctorIDs != nil {
		doctorIDs, err := uc.resolveDoctorIDs(ctx, request.DoctorIDs)
		if err != nil {
			return nil, err
		}
		update.DoctorIDs = doctorIDs
	}

	if err := uc.CampRepository.UpdateCamp(ctx, campID, update); err != nil {
		return nil, err
	}

	camp, err := uc.findCamp(ctx, campID)
	if err != nil {
		return nil, err
	}
	return utils.MapCampToResponse(camp), nil
}

func (uc *campUsecase) DeleteCamp(ctx context.Context, campID primitive.ObjectID) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("campUsecase.DeleteCamp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCampIDKey, campID.Hex()),
	)

	if _, err := uc.findCamp(ctx, campID); err != nil {
		return err
	}
	return uc.CampRepository.DeleteCamp(ctx, campID)
}
