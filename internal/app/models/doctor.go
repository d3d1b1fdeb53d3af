package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor lives in its own directory, separate from accounts.
type Doctor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FirstName       string             `bson:"firstName"`
	LastName        string             `bson:"lastName"`
	Email           string             `bson:"email"`
	PhoneNumber     string             `bson:"phoneNumber"`
	Password        string             `bson:"password"`
	Specialization  string             `bson:"specialization"`
	Qualification   string             `bson:"qualification"`
	ExperienceYears int                `bson:"experienceYears"`
	HospitalName    string             `bson:"hospitalName,omitempty"`
	TimeModel       `bson:",inline"`
}

func (d *Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

func (d *Doctor) ToIdentity(directory string) *Identity {
	return &Identity{
		ID:        d.ID,
		Email:     d.Email,
		Name:      d.FullName(),
		Role:      RoleDoctor,
		Directory: directory,
	}
}
