package contracts

import (
	"chanv-service/internal/app/models"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CampRepository interface {
	CreateCamp(ctx context.Context, camp *models.Camp) (primitive.ObjectID, error)
	FindByID(ctx context.Context, campID primitive.ObjectID) (*models.Camp, error)
	ListCamps(ctx context.Context, pagination models.Pagination) ([]models.Camp, int64, error)
	UpdateCamp(ctx context.Context, campID primitive.ObjectID, update *models.CampUpdate) error
	DeleteCamp(ctx context.Context, campID primitive.ObjectID) error
}
