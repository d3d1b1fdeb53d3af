package contracts

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"context"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, identity *models.Identity) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, identity *models.Identity, request *requests.UpdateProfile) (*responses.UserProfile, error)
}
