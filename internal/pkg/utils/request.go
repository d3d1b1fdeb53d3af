package utils

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func BuildPaginationRequest(r *http.Request) models.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return models.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParseObjectIDParam reads a chi URL parameter holding a Mongo ObjectID.
func ParseObjectIDParam(r *http.Request, param string) (primitive.ObjectID, error) {
	value := chi.URLParam(r, param)
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrURLParamValidation(err, param)
	}
	return id, nil
}

func GetIdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(*models.Identity)
	return identity, ok && identity != nil
}

func GetCredentialFromContext(ctx context.Context) (*models.Credential, bool) {
	credential, ok := ctx.Value(constvars.CONTEXT_CREDENTIAL_KEY).(*models.Credential)
	return credential, ok && credential != nil
}
