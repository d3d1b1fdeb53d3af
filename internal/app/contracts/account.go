package contracts

import (
	"chanv-service/internal/app/models"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountRepository owns the accounts collection. Lookups return (nil, nil)
// when nothing matches. Relative and back-reference mutations are single
// atomic update operators on the owner document.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error)
	FindByID(ctx context.Context, accountID primitive.ObjectID) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Account, error)
	UpdateProfile(ctx context.Context, accountID primitive.ObjectID, update *models.AccountProfileUpdate) error
	UpdatePassword(ctx context.Context, accountID primitive.ObjectID, passwordHash string) error

	AddRelative(ctx context.Context, ownerID primitive.ObjectID, relative *models.Relative) (bool, error)
	UpdateRelative(ctx context.Context, ownerID, relativeID primitive.ObjectID, update *models.RelativeUpdate) (bool, error)
	RemoveRelative(ctx context.Context, ownerID, relativeID primitive.ObjectID) (bool, error)

	AddHealthReportRef(ctx context.Context, accountID primitive.ObjectID, reportID string) error
	AddRelativeHealthReportRef(ctx context.Context, ownerID, relativeID primitive.ObjectID, reportID string) error
	RemoveHealthReportRef(ctx context.Context, accountID primitive.ObjectID, reportID string) error
	RemoveRelativeHealthReportRef(ctx context.Context, ownerID, relativeID primitive.ObjectID, reportID string) error
}
