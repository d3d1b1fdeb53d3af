package contracts

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/dto/requests"
	"chanv-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelativeUsecase scopes every operation to the owner's embedded list.
// A relative that is not in the owner's list is reported as not found.
type RelativeUsecase interface {
	AddRelative(ctx context.Context, owner *models.Identity, request *requests.CreateRelative) (*responses.Relative, error)
	ListRelatives(ctx context.Context, owner *models.Identity) ([]responses.Relative, error)
	GetRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID) (*responses.Relative, error)
	UpdateRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID, request *requests.UpdateRelative) (*responses.Relative, error)
	RemoveRelative(ctx context.Context, owner *models.Identity, relativeID primitive.ObjectID) error
}
