package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Account struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FirstName     string             `bson:"firstName"`
	LastName      string             `bson:"lastName"`
	Email         string             `bson:"email"`
	PhoneNumber   string             `bson:"phoneNumber"`
	Password      string             `bson:"password"`
	DateOfBirth   time.Time          `bson:"dateOfBirth"`
	Gender        string             `bson:"gender"`
	Role          Role               `bson:"role"`
	BloodGroup    string             `bson:"bloodGroup,omitempty"`
	Relatives     []Relative         `bson:"relatives"`
	HealthReports []string           `bson:"healthReports"`
	TimeModel     `bson:",inline"`
}

func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// FindRelative looks the relative up in the account's own list only.
func (a *Account) FindRelative(relativeID primitive.ObjectID) *Relative {
	for i := range a.Relatives {
		if a.Relatives[i].ID == relativeID {
			return &a.Relatives[i]
		}
	}
	return nil
}

func (a *Account) OwnsRelative(relativeID primitive.ObjectID) bool {
	return a.FindRelative(relativeID) != nil
}

func (a *Account) ToIdentity(directory string) *Identity {
	return &Identity{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.FullName(),
		Role:      a.Role,
		Directory: directory,
	}
}

// AccountProfileUpdate holds the patchable profile fields. Nil means unchanged.
type AccountProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	DateOfBirth *time.Time
	Gender      *string
	BloodGroup  *string
}
