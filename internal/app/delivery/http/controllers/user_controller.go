package controllers

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("UserController.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestIDFrom(r)),
	)

	identity, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	response, err := ctrl.UserUsecase.GetProfile(r.Context(), identity)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("UserController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identity, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateProfile)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateProfileRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.UserUsecase.UpdateProfile(r.Context(), identity, request)
	if err != nil {
		ctrl.Log.Error("UserController.UpdateProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, response)
}
