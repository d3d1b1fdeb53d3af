package database

import (
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionIndexes lists the indexes every collection must carry. Reports are
// read "newest first" per subject and per author, so those compound keys end
// with createdAt descending.
func CollectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		constvars.MongoCollectionAccounts: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
			{Keys: bson.D{{Key: "phoneNumber", Value: 1}}, Options: options.Index().SetUnique(true).SetName(constvars.MongoIndexPhoneNumber)},
		},
		constvars.MongoCollectionDoctors: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		constvars.MongoCollectionHealthReports: {
			{Keys: bson.D{{Key: "reportId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_report_id")},
			{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("patient_recent")},
			{
				Keys: bson.D{
					{Key: "relative.ownerId", Value: 1},
					{Key: "relative.relativeId", Value: 1},
					{Key: "createdAt", Value: -1},
				},
				Options: options.Index().SetName("relative_recent"),
			},
			{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("doctor_recent")},
			{Keys: bson.D{{Key: "reportType", Value: 1}}, Options: options.Index().SetName("report_type")},
		},
		constvars.MongoCollectionCamps: {
			{Keys: bson.D{{Key: "date", Value: -1}}, Options: options.Index().SetName("date_recent")},
		},
	}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, indexes := range CollectionIndexes() {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			return exceptions.ErrMongoDBCreateIndex(err, collection)
		}
	}
	return nil
}
