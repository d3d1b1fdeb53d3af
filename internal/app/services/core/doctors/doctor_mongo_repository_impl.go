package doctors

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("%w: %v", exceptions.ErrDuplicateDocument, err)
		}
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *DoctorMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Doctor, error) {
	filter["deletedAt"] = nil
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID primitive.ObjectID) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"_id": doctorID})
}

func (r *DoctorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *DoctorMongoRepository) CountByIDs(ctx context.Context, doctorIDs []primitive.ObjectID) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"_id":       bson.M{"$in": doctorIDs},
		"deletedAt": nil,
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *DoctorMongoRepository) ListDoctors(ctx context.Context, pagination models.Pagination) ([]models.Doctor, int64, error) {
	filter := bson.M{"deletedAt": nil}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(pagination.Skip()).
		SetLimit(int64(pagination.PageSize)).
		SetProjection(bson.M{"password": 0})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, total, nil
}
