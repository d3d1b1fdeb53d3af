package controllers

import (
	"chanv-service/internal/app/config"
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) setCredentialCookie(w http.ResponseWriter, login *responses.Login) {
	http.SetCookie(w, utils.BuildCredentialCookie(
		ctrl.InternalConfig.JWT.CookieName,
		login.Token,
		login.ExpiresAt,
		ctrl.InternalConfig.JWT.CookieSecure,
	))
}

func (ctrl *AuthController) clearCredentialCookie(w http.ResponseWriter) {
	http.SetCookie(w, utils.ClearCredentialCookie(ctrl.InternalConfig.JWT.CookieName, ctrl.InternalConfig.JWT.CookieSecure))
}

func (ctrl *AuthController) RegisterUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AuthController.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.RegisterUser)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeRegisterUserRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.AuthUsecase.RegisterUser(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("AuthController.RegisterUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, response)
}

func (ctrl *AuthController) LoginUser(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AuthController.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.LoginUser)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeLoginUserRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.AuthUsecase.LoginUser(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.setCredentialCookie(w, response)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	ctrl.loginWithEmail(w, r, "AuthController.LoginAdmin", ctrl.AuthUsecase.LoginAdmin)
}

func (ctrl *AuthController) LoginDoctor(w http.ResponseWriter, r *http.Request) {
	ctrl.loginWithEmail(w, r, "AuthController.LoginDoctor", ctrl.AuthUsecase.LoginDoctor)
}

func (ctrl *AuthController) loginWithEmail(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	login func(ctx context.Context, request *requests.LoginWithEmail) (*responses.Login, error),
) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.LoginWithEmail)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeLoginWithEmailRequest(request)

	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := login(r.Context(), request)
	if err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.setCredentialCookie(w, response)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	credential, ok := utils.GetCredentialFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	if err := ctrl.AuthUsecase.Logout(r.Context(), credential); err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.clearCredentialCookie(w)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

// ChangePassword revokes every credential of the account, so the cookie is
// cleared on success and the client has to log in again.
func (ctrl *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)
	ctrl.Log.Info("AuthController.ChangePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identity, ok := identityFrom(ctrl.Log, w, r)
	if !ok {
		return
	}
	credential, ok := utils.GetCredentialFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.ChangePassword)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.AuthUsecase.ChangePassword(r.Context(), identity, credential, request); err != nil {
		respondUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.clearCredentialCookie(w)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChangePasswordSuccessMessage, nil)
}
