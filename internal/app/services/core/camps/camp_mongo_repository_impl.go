package camps

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CampMongoRepository struct {
	Collection *mongo.Collection
}

func NewCampMongoRepository(db *mongo.Client, dbName string) contracts.CampRepository {
	return &CampMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCamps),
	}
}

func (r *CampMongoRepository) CreateCamp(ctx context.Context, camp *models.Camp) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, camp)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *CampMongoRepository) FindByID(ctx context.Context, campID primitive.ObjectID) (*models.Camp, error) {
	var camp models.Camp
	err := r.Collection.FindOne(ctx, bson.M{"_id": campID, "deletedAt": nil}).Decode(&camp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &camp, nil
}

func (r *CampMongoRepository) ListCamps(ctx context.Context, pagination models.Pagination) ([]models.Camp, int64, error) {
	filter := bson.M{"deletedAt": nil}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(pagination.Skip()).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	camps := make([]models.Camp, 0)
	if err := cursor.All(ctx, &camps); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return camps, total, nil
}

func (r *CampMongoRepository) UpdateCamp(ctx context.Context, campID primitive.ObjectID, update *models.CampUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.DoctorIDs != nil {
		set["doctorIds"] = update.DoctorIDs
	}
	if update.Capacity != nil {
		set["capacity"] = *update.Capacity
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": campID, "deletedAt": nil}, bson.M{"$set": set})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *CampMongoRepository) DeleteCamp(ctx context.Context, campID primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": campID, "deletedAt": nil}, bson.M{
		"$set": bson.M{"deletedAt": now, "updatedAt": now},
	})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
