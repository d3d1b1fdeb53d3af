package users

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/constvars"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AccountMongoRepository struct {
	Collection *mongo.Collection
}

func NewAccountMongoRepository(db *mongo.Client, dbName string) contracts.AccountRepository {
	return &AccountMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAccounts),
	}
}

func activeFilter(filter bson.M) bson.M {
	filter["deletedAt"] = nil
	return filter
}

// wrapDuplicateKey tells which unique index of the accounts collection
// rejected the write. Anything other than the phone index is reported as a
// plain duplicate, which callers map to the email conflict.
func wrapDuplicateKey(err error) error {
	if strings.Contains(err.Error(), constvars.MongoIndexPhoneNumber) {
		return fmt.Errorf("%w: %v", exceptions.ErrDuplicatePhoneNumber, err)
	}
	return fmt.Errorf("%w: %v", exceptions.ErrDuplicateDocument, err)
}

func (r *AccountMongoRepository) CreateAccount(ctx context.Context, account *models.Account) (primitive.ObjectID, error) {
	result, err := r.Collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, wrapDuplicateKey(err)
		}
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *AccountMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, activeFilter(filter)).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

func (r *AccountMongoRepository) FindByID(ctx context.Context, accountID primitive.ObjectID) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"_id": accountID})
}

func (r *AccountMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByPhoneNumber matches top level accounts only. Relatives embedded in
// an account are never returned, so they cannot be used to log in.
func (r *AccountMongoRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"phoneNumber": phoneNumber})
}

func (r *AccountMongoRepository) UpdateProfile(ctx context.Context, accountID primitive.ObjectID, update *models.AccountProfileUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PhoneNumber != nil {
		set["phoneNumber"] = *update.PhoneNumber
	}
	if update.DateOfBirth != nil {
		set["dateOfBirth"] = *update.DateOfBirth
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.BloodGroup != nil {
		set["bloodGroup"] = *update.BloodGroup
	}

	_, err := r.Collection.UpdateOne(ctx, activeFilter(bson.M{"_id": accountID}), bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return wrapDuplicateKey(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AccountMongoRepository) UpdatePassword(ctx context.Context, accountID primitive.ObjectID, passwordHash string) error {
	_, err := r.Collection.UpdateOne(ctx, activeFilter(bson.M{"_id": accountID}), bson.M{
		"$set": bson.M{
			"password":  passwordHash,
			"updatedAt": time.Now().UTC(),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// AddRelative appends with $push so concurrent additions by the same owner
// never overwrite each other.
func (r *AccountMongoRepository) AddRelative(ctx context.Context, ownerID primitive.ObjectID, relative *models.Relative) (bool, error) {
	result, err := r.Collection.UpdateOne(ctx, activeFilter(bson.M{"_id": ownerID}), bson.M{
		"$push": bson.M{"relatives": relative},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

// UpdateRelative only matches when the relative belongs to the owner, the
// positional operator then targets that element.
func (r *AccountMongoRepository) UpdateRelative(ctx context.Context, ownerID, relativeID primitive.ObjectID, update *models.RelativeUpdate) (bool, error) {
	now := time.Now().UTC()
	set := bson.M{
		"relatives.$.updatedAt": now,
		"updatedAt":             now,
	}
	if update.Name != nil {
		set["relatives.$.name"] = *update.Name
	}
	if update.PhoneNumber != nil {
		set["relatives.$.phoneNumber"] = *update.PhoneNumber
	}
	if update.DateOfBirth != nil {
		set["relatives.$.dateOfBirth"] = *update.DateOfBirth
	}
	if update.Gender != nil {
		set["relatives.$.gender"] = *update.Gender
	}
	if update.BloodGroup != nil {
		set["relatives.$.bloodGroup"] = *update.BloodGroup
	}
	if update.Relationship != nil {
		set["relatives.$.relationship"] = *update.Relationship
	}

	result, err := r.Collection.UpdateOne(ctx, activeFilter(bson.M{"_id": ownerID, "relatives._id": relativeID}), bson.M{"$set": set})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *AccountMongoRepository) RemoveRelative(ctx context.Context, ownerID, relativeID primitive.ObjectID) (bool, error) {
	result, err := r.Collection.UpdateOne(ctx, activeFilter(bson.M{"_id": ownerID, "relatives._id": relativeID}), bson.M{
		"$pull": bson.M{"relatives": bson.M{"_id": relativeID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *AccountMongoRepository) AddHealthReportRef(ctx context.Context, accountID primitive.ObjectID, reportID string) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": accountID}, bson.M{
		"$addToSet": bson.M{"healthReports": reportID},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AccountMongoRepository) AddRelativeHealthReportRef(ctx context.Context, ownerID, relativeID primitive.ObjectID, reportID string) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": ownerID, "relatives._id": relativeID}, bson.M{
		"$addToSet": bson.M{"relatives.$.healthReports": reportID},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AccountMongoRepository) RemoveHealthReportRef(ctx context.Context, accountID primitive.ObjectID, reportID string) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": accountID}, bson.M{
		"$pull": bson.M{"healthReports": reportID},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// RemoveRelativeHealthReportRef is a no-op once the relative itself has been removed.
func (r *AccountMongoRepository) RemoveRelativeHealthReportRef(ctx context.Context, ownerID, relativeID primitive.ObjectID, reportID string) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": ownerID, "relatives._id": relativeID}, bson.M{
		"$pull": bson.M{"relatives.$.healthReports": reportID},
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
