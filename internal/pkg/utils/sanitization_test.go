package utils

import (
	"chanv-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email And Phone Normalization", func(t *testing.T) {
		request := &requests.RegisterUser{
			FirstName:   "  Asha ",
			Email:       "  ASHA@EXAMPLE.COM  ",
			PhoneNumber: " +91 90000-00001 ",
			Gender:      " Female ",
			BloodGroup:  " o+ ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Asha", request.FirstName)
		assert.Equal(t, "asha@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "919000000001", request.PhoneNumber, "phone should keep digits only")
		assert.Equal(t, "female", request.Gender)
		assert.Equal(t, "O+", request.BloodGroup)
	})

	t.Run("Password Is Left Untouched", func(t *testing.T) {
		request := &requests.RegisterUser{Password: " secret123 "}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, " secret123 ", request.Password)
	})
}

func TestSanitizeUpdateProfileRequest(t *testing.T) {
	t.Run("Nil Fields Stay Nil", func(t *testing.T) {
		request := &requests.UpdateProfile{}

		SanitizeUpdateProfileRequest(request)

		assert.Nil(t, request.Email)
		assert.Nil(t, request.PhoneNumber)
	})

	t.Run("Set Fields Are Normalized", func(t *testing.T) {
		email := " New@Mail.com "
		phone := "+9000000002"
		request := &requests.UpdateProfile{Email: &email, PhoneNumber: &phone}

		SanitizeUpdateProfileRequest(request)

		assert.Equal(t, "new@mail.com", *request.Email)
		assert.Equal(t, "9000000002", *request.PhoneNumber)
	})
}

func TestSanitizeCreateHealthReportRequest(t *testing.T) {
	request := &requests.CreateHealthReport{
		PatientID:  " 65f0c0ffee0000000000aaaa ",
		ReportType: " Blood_Test ",
		Severity:   "HIGH",
		Diagnosis:  "  Anemia ",
		Medications: []requests.Medication{
			{Name: "  Iron  ", Dosage: " 65mg "},
		},
	}

	SanitizeCreateHealthReportRequest(request)

	assert.Equal(t, "65f0c0ffee0000000000aaaa", request.PatientID)
	assert.Equal(t, "blood_test", request.ReportType)
	assert.Equal(t, "high", request.Severity)
	assert.Equal(t, "Anemia", request.Diagnosis)
	assert.Equal(t, "Iron", request.Medications[0].Name)
	assert.Equal(t, "65mg", request.Medications[0].Dosage)
}

func TestSanitizeCreateCampRequest(t *testing.T) {
	t.Run("Doctor Ids Trimmed", func(t *testing.T) {
		request := &requests.CreateCamp{DoctorIDs: []string{" a ", "b "}}

		SanitizeCreateCampRequest(request)

		assert.Equal(t, []string{"a", "b"}, request.DoctorIDs)
	})

	t.Run("Nil Doctor Ids Stay Nil", func(t *testing.T) {
		request := &requests.CreateCamp{}

		SanitizeCreateCampRequest(request)

		assert.Nil(t, request.DoctorIDs)
	})
}
