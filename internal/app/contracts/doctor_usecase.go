package contracts

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"context"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	ListDoctors(ctx context.Context, pagination models.Pagination) ([]responses.Doctor, int64, error)
	GetProfile(ctx context.Context, identity *models.Identity) (*responses.Doctor, error)
}
