package healthReports

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HealthReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthReportMongoRepository(db *mongo.Client, dbName string) contracts.HealthReportRepository {
	return &HealthReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthReports),
	}
}

func (r *HealthReportMongoRepository) CreateHealthReport(ctx context.Context, report *models.HealthReport) error {
	result, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", exceptions.ErrDuplicateDocument, err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = id
	}
	return nil
}

func (r *HealthReportMongoRepository) FindByReportID(ctx context.Context, reportID string) (*models.HealthReport, error) {
	var report models.HealthReport
	err := r.Collection.FindOne(ctx, bson.M{"reportId": reportID, "deletedAt": nil}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}

// listSort orders newest first; reportId breaks ties so pages are stable.
var listSort = bson.D{{Key: "createdAt", Value: -1}, {Key: "reportId", Value: 1}}

// buildListFilter always excludes soft-deleted reports.
func buildListFilter(filter models.HealthReportFilter) bson.M {
	query := bson.M{"deletedAt": nil}
	if filter.DoctorID != nil {
		query["doctorId"] = *filter.DoctorID
	}
	if filter.PatientID != nil {
		query["patientId"] = *filter.PatientID
	}
	if filter.Relative != nil {
		query["relative.ownerId"] = filter.Relative.OwnerID
		query["relative.relativeId"] = filter.Relative.RelativeID
	}
	if filter.ReportType != "" {
		query["reportType"] = filter.ReportType
	}
	return query
}

func (r *HealthReportMongoRepository) ListHealthReports(ctx context.Context, filter models.HealthReportFilter, pagination models.Pagination) ([]models.HealthReport, int64, error) {
	query := buildListFilter(filter)

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(listSort).
		SetSkip(pagination.Skip()).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	reports := make([]models.HealthReport, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reports, total, nil
}

func (r *HealthReportMongoRepository) UpdateHealthReport(ctx context.Context, reportID string, update *models.HealthReportUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.ReportType != nil {
		set["reportType"] = *update.ReportType
	}
	if update.Diagnosis != nil {
		set["diagnosis"] = *update.Diagnosis
	}
	if update.Findings != nil {
		set["findings"] = *update.Findings
	}
	if update.Vitals != nil {
		set["vitals"] = *update.Vitals
	}
	if update.IsNormal != nil {
		set["isNormal"] = *update.IsNormal
	}
	if update.Severity != nil {
		set["severity"] = *update.Severity
	}
	if update.HospitalName != nil {
		set["hospitalName"] = *update.HospitalName
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.FollowUpDate != nil {
		set["followUpDate"] = *update.FollowUpDate
	}
	if update.Medications != nil {
		set["medications"] = *update.Medications
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"reportId": reportID, "deletedAt": nil}, bson.M{"$set": set})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HealthReportMongoRepository) AddAttachment(ctx context.Context, reportID string, attachment *models.Attachment) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"reportId": reportID, "deletedAt": nil}, bson.M{
		"$push": bson.M{"attachments": attachment},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HealthReportMongoRepository) SoftDeleteHealthReport(ctx context.Context, reportID string, deletedAt time.Time) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"reportId": reportID, "deletedAt": nil}, bson.M{
		"$set": bson.M{
			"deletedAt": deletedAt,
			"updatedAt": deletedAt,
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
