package models

import "time"

type HealthReportEvent struct {
	Event      string    `json:"event"`
	ReportID   string    `json:"reportId"`
	DoctorID   string    `json:"doctorId"`
	PatientID  string    `json:"patientId,omitempty"`
	OwnerID    string    `json:"ownerId,omitempty"`
	RelativeID string    `json:"relativeId,omitempty"`
	ActorID    string    `json:"actorId"`
	ActorRole  string    `json:"actorRole"`
	OccurredAt time.Time `json:"occurredAt"`
}
