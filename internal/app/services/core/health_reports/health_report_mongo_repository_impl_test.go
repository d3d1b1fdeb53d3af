package healthReports

import (
	"chanv-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilter(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	relativeID := primitive.NewObjectID()

	tests := []struct {
		name     string
		filter   models.HealthReportFilter
		expected bson.M
	}{
		{
			name:     "Empty Filter Still Hides Deleted",
			filter:   models.HealthReportFilter{},
			expected: bson.M{"deletedAt": nil},
		},
		{
			name:     "By Doctor",
			filter:   models.HealthReportFilter{DoctorID: &doctorID},
			expected: bson.M{"deletedAt": nil, "doctorId": doctorID},
		},
		{
			name:     "By Patient",
			filter:   models.HealthReportFilter{PatientID: &patientID},
			expected: bson.M{"deletedAt": nil, "patientId": patientID},
		},
		{
			name: "By Relative",
			filter: models.HealthReportFilter{
				Relative: &models.RelativeRef{OwnerID: ownerID, RelativeID: relativeID},
			},
			expected: bson.M{
				"deletedAt":           nil,
				"relative.ownerId":    ownerID,
				"relative.relativeId": relativeID,
			},
		},
		{
			name:     "By Report Type",
			filter:   models.HealthReportFilter{ReportType: models.ReportTypeBloodTest},
			expected: bson.M{"deletedAt": nil, "reportType": models.ReportTypeBloodTest},
		},
		{
			name: "Combined",
			filter: models.HealthReportFilter{
				PatientID:  &patientID,
				ReportType: models.ReportTypeXray,
			},
			expected: bson.M{"deletedAt": nil, "patientId": patientID, "reportType": models.ReportTypeXray},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := buildListFilter(tt.filter)
			assert.Equal(t, tt.expected, query)

			deletedAt, ok := query["deletedAt"]
			assert.True(t, ok)
			assert.Nil(t, deletedAt)
		})
	}
}

func TestListSort_NewestFirstWithStableTieBreak(t *testing.T) {
	assert.Equal(t, bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "reportId", Value: 1},
	}, listSort)
}
