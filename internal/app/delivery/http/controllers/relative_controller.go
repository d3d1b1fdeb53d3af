package controllers

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type RelativeController struct {
	Log             *zap.Logger
	RelativeUsecase contracts.RelativeUsecase
}

func NewRelativeController(logger *zap.Logger, relativeUsecase contracts.RelativeUsecase) *RelativeController {
	return &RelativeController{
		Log:             logger,
		RelativeUsecase: relativeUsecase,
	}
}

func (ctrl *RelativeController) CreateRelative(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("RelativeController.CreateRelative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateRelative)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeCreateRelativeRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.RelativeUsecase.AddRelative(r.Context(), owner, request)
	if err != nil {
		ctrl.Log.Error("RelativeController.CreateRelative error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRelativeSuccessMessage, response)
}

func (ctrl *RelativeController) ListRelatives(w http.ResponseWriter, r *http.Request) {
	owner, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	response, err := ctrl.RelativeUsecase.ListRelatives(r.Context(), owner)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRelativesSuccessMessage, response)
}

func (ctrl *RelativeController) GetRelative(w http.ResponseWriter, r *http.Request) {
	owner, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	relativeID, err := utils.ParseObjectIDParam(r, constvars.URLParamRelativeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.RelativeUsecase.GetRelative(r.Context(), owner, relativeID)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRelativesSuccessMessage, response)
}

func (ctrl *RelativeController) UpdateRelative(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("RelativeController.UpdateRelative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	relativeID, err := utils.ParseObjectIDParam(r, constvars.URLParamRelativeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateRelative)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateRelativeRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.RelativeUsecase.UpdateRelative(r.Context(), owner, relativeID, request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateRelativeSuccessMessage, response)
}

func (ctrl *RelativeController) DeleteRelative(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("RelativeController.DeleteRelative called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	owner, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	relativeID, err := utils.ParseObjectIDParam(r, constvars.URLParamRelativeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.RelativeUsecase.RemoveRelative(r.Context(), owner, relativeID); err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteRelativeSuccessMessage, nil)
}
