package controllers

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CampController struct {
	Log         *zap.Logger
	CampUsecase contracts.CampUsecase
}

func NewCampController(logger *zap.Logger, campUsecase contracts.CampUsecase) *CampController {
	return &CampController{
		Log:         logger,
		CampUsecase: campUsecase,
	}
}

func (ctrl *CampController) CreateCamp(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("CampController.CreateCamp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	actor, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateCamp)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateCampRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.CampUsecase.CreateCamp(r.Context(), actor, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCampSuccessMessage, response)
}

func (ctrl *CampController) ListCamps(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	camps, total, err := ctrl.CampUsecase.ListCamps(r.Context(), pagination)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetCampsSuccessMessage, paginationResponse, camps)
}

func (ctrl *CampController) GetCamp(w http.ResponseWriter, r *http.Request) {
	campID, err := utils.ParseObjectIDParam(r, constvars.URLParamCampID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.CampUsecase.GetCamp(r.Context(), campID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCampSuccessMessage, response)
}

func (ctrl *CampController) UpdateCamp(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("CampController.UpdateCamp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	campID, err := utils.ParseObjectIDParam(r, constvars.URLParamCampID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateCamp)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateCampRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.CampUsecase.UpdateCamp(r.Context(), campID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCampSuccessMessage, response)
}

func (ctrl *CampController) DeleteCamp(w http.ResponseWriter, r *http.Request) {
	campID, err := utils.ParseObjectIDParam(r, constvars.URLParamCampID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.CampUsecase.DeleteCamp(r.Context(), campID); err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCampSuccessMessage, nil)
}
