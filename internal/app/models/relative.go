package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Relationship string

const (
	RelationshipParent      Relationship = "parent"
	RelationshipChild       Relationship = "child"
	RelationshipSibling     Relationship = "sibling"
	RelationshipSpouse      Relationship = "spouse"
	RelationshipGrandparent Relationship = "grandparent"
	RelationshipGrandchild  Relationship = "grandchild"
	RelationshipGuardian    Relationship = "guardian"
	RelationshipOther       Relationship = "other"
)

var Relationships = []Relationship{
	RelationshipParent,
	RelationshipChild,
	RelationshipSibling,
	RelationshipSpouse,
	RelationshipGrandparent,
	RelationshipGrandchild,
	RelationshipGuardian,
	RelationshipOther,
}

func (r Relationship) IsValid() bool {
	for _, relationship := range Relationships {
		if r == relationship {
			return true
		}
	}
	return false
}

// Relative is embedded in its owner's account document. Its identifier is only
// meaningful together with the owner. A relative never holds a credential.
type Relative struct {
	ID             primitive.ObjectID  `bson:"_id"`
	IsExistingUser bool                `bson:"isExistingUser"`
	AccountID      *primitive.ObjectID `bson:"accountId,omitempty"`
	Name           string              `bson:"name,omitempty"`
	PhoneNumber    string              `bson:"phoneNumber,omitempty"`
	DateOfBirth    *time.Time          `bson:"dateOfBirth,omitempty"`
	Gender         string              `bson:"gender,omitempty"`
	BloodGroup     string              `bson:"bloodGroup,omitempty"`
	Relationship   Relationship        `bson:"relationship"`
	HealthReports  []string            `bson:"healthReports"`
	CreatedAt      time.Time           `bson:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt"`
}

// RelativeUpdate holds the patchable relative fields. Nil means unchanged.
type RelativeUpdate struct {
	Name         *string
	PhoneNumber  *string
	DateOfBirth  *time.Time
	Gender       *string
	BloodGroup   *string
	Relationship *Relationship
}

func (u *RelativeUpdate) IsEmpty() bool {
	return u.Name == nil && u.PhoneNumber == nil && u.DateOfBirth == nil &&
		u.Gender == nil && u.BloodGroup == nil && u.Relationship == nil
}
