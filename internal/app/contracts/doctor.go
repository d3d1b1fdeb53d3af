package contracts

import (
	"chanv-service/internal/app/models"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error)
	FindByID(ctx context.Context, doctorID primitive.ObjectID) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	CountByIDs(ctx context.Context, doctorIDs []primitive.ObjectID) (int64, error)
	ListDoctors(ctx context.Context, pagination models.Pagination) ([]models.Doctor, int64, error)
}
