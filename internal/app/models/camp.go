package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Camp struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Location    string               `bson:"location"`
	Date        time.Time            `bson:"date"`
	DoctorIDs   []primitive.ObjectID `bson:"doctorIds"`
	Capacity    int                  `bson:"capacity"`
	Description string               `bson:"description,omitempty"`
	CreatedBy   primitive.ObjectID   `bson:"createdBy"`
	TimeModel   `bson:",inline"`
}

// CampUpdate holds the patchable camp fields. Nil means unchanged.
type CampUpdate struct {
	Name        *string
	Location    *string
	Date        *time.Time
	DoctorIDs   []primitive.ObjectID
	Capacity    *int
	Description *string
}
