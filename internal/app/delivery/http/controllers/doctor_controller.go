package controllers

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("DoctorController.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateDoctor)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateDoctorRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.DoctorUsecase.CreateDoctor(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("DoctorController.CreateDoctor error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDoctorSuccessMessage, response)
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	doctors, total, err := ctrl.DoctorUsecase.ListDoctors(r.Context(), pagination)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, paginationResponse, doctors)
}

func (ctrl *DoctorController) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	response, err := ctrl.DoctorUsecase.GetProfile(r.Context(), identity)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}
