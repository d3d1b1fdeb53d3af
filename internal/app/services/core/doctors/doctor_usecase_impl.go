package doctors

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

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	doctor := &models.Doctor{
		FirstName:       request.FirstName,
		LastName:        request.LastName,
		Email:           request.Email,
		PhoneNumber:     request.PhoneNumber,
		Password:        hashedPassword,
		Specialization:  request.Specialization,
		Qualification:   request.Qualification,
		ExperienceYears: request.ExperienceYears,
		HospitalName:    request.HospitalName,
	}
	doctor.SetCreatedAtUpdatedAt()

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		if errors.Is(err, exceptions.ErrDuplicateDocument) {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, err
	}
	doctor.ID = doctorID

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID.Hex()),
	)
	return utils.MapDoctorToResponse(doctor), nil
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, pagination models.Pagination) ([]responses.Doctor, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("page", pagination.Page),
		zap.Int("page_size", pagination.PageSize),
	)

	doctors, total, err := uc.DoctorRepository.ListDoctors(ctx, pagination)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		result = append(result, *utils.MapDoctorToResponse(&doctors[i]))
	}
	return result, total, nil
}

func (uc *doctorUsecase) GetProfile(ctx context.Context, identity *models.Identity) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, identity.ID.Hex()),
	)

	if identity.Directory != constvars.DirectoryDoctors {
		return nil, exceptions.ErrForbidden(nil, "access doctor profile", identity.Role.String())
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return utils.MapDoctorToResponse(doctor), nil
}
