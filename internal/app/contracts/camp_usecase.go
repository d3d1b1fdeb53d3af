package contracts

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CampUsecase interface {
	CreateCamp(ctx context.Context, actor *models.Identity, request *requests.CreateCamp) (*responses.Camp, error)
	ListCamps(ctx context.Context, pagination models.Pagination) ([]responses.Camp, int64, error)
	GetCamp(ctx context.Context, campID primitive.ObjectID) (*responses.Camp, error)
	UpdateCamp(ctx context.Context, campID primitive.ObjectID, request *requests.UpdateCamp) (*responses.Camp, error)
	DeleteCamp(ctx context.Context, campID primitive.ObjectID) error
}
