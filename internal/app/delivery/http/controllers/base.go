package controllers

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"chanv-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func requestIDFrom(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// respondUsecaseError answers a usecase failure. A context deadline is turned
// into the gateway timeout kind, anything else is passed through as is.
func respondUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// identityFrom answers 401 itself when no identity is attached.
func identityFrom(log *zap.Logger, w http.ResponseWriter, r *http.Request) (*models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(log, w, exceptions.ErrIdentityMissing(nil))
		return nil, false
	}
	return identity, true
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func validate(request interface{}) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
