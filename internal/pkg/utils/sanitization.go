package utils

import (
	"chanv-service/internal/pkg/dto/requests"
	"strings"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeEnum(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func trimPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func applyPointer(value *string, fn func(string) string) {
	if value != nil {
		*value = fn(*value)
	}
}

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	if input == nil {
		return nil
	}
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func sanitizeMedications(medications []requests.Medication) {
	for i := range medications {
		medications[i].Name = strings.TrimSpace(medications[i].Name)
		medications[i].Dosage = strings.TrimSpace(medications[i].Dosage)
		medications[i].Frequency = strings.TrimSpace(medications[i].Frequency)
		medications[i].Duration = strings.TrimSpace(medications[i].Duration)
		medications[i].Instructions = strings.TrimSpace(medications[i].Instructions)
	}
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = normalizeEmail(input.Email)
	input.PhoneNumber = NormalizePhoneNumber(input.PhoneNumber)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = normalizeEnum(input.Gender)
	input.BloodGroup = strings.ToUpper(strings.TrimSpace(input.BloodGroup))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.PhoneNumber = NormalizePhoneNumber(input.PhoneNumber)
}

func SanitizeLoginWithEmailRequest(input *requests.LoginWithEmail) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	trimPointer(input.FirstName)
	trimPointer(input.LastName)
	trimPointer(input.DateOfBirth)
	applyPointer(input.Email, normalizeEmail)
	applyPointer(input.PhoneNumber, NormalizePhoneNumber)
	applyPointer(input.Gender, normalizeEnum)
	applyPointer(input.BloodGroup, func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) })
}

func SanitizeCreateRelativeRequest(input *requests.CreateRelative) {
	input.AccountID = strings.TrimSpace(input.AccountID)
	input.Name = strings.TrimSpace(input.Name)
	input.PhoneNumber = NormalizePhoneNumber(input.PhoneNumber)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = normalizeEnum(input.Gender)
	input.BloodGroup = strings.ToUpper(strings.TrimSpace(input.BloodGroup))
	input.Relationship = normalizeEnum(input.Relationship)
}

func SanitizeUpdateRelativeRequest(input *requests.UpdateRelative) {
	trimPointer(input.Name)
	trimPointer(input.DateOfBirth)
	applyPointer(input.PhoneNumber, NormalizePhoneNumber)
	applyPointer(input.Gender, normalizeEnum)
	applyPointer(input.BloodGroup, func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) })
	applyPointer(input.Relationship, normalizeEnum)
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = normalizeEmail(input.Email)
	input.PhoneNumber = NormalizePhoneNumber(input.PhoneNumber)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Qualification = strings.TrimSpace(input.Qualification)
	input.HospitalName = strings.TrimSpace(input.HospitalName)
}

func SanitizeCreateHealthReportRequest(input *requests.CreateHealthReport) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.PatientID = strings.TrimSpace(input.PatientID)
	if input.Relative != nil {
		input.Relative.OwnerID = strings.TrimSpace(input.Relative.OwnerID)
		input.Relative.RelativeID = strings.TrimSpace(input.Relative.RelativeID)
	}
	input.ReportType = normalizeEnum(input.ReportType)
	input.Severity = normalizeEnum(input.Severity)
	input.Diagnosis = strings.TrimSpace(input.Diagnosis)
	input.Findings = strings.TrimSpace(input.Findings)
	input.HospitalName = strings.TrimSpace(input.HospitalName)
	input.Notes = strings.TrimSpace(input.Notes)
	input.FollowUpDate = strings.TrimSpace(input.FollowUpDate)
	sanitizeMedications(input.Medications)
}

func SanitizeUpdateHealthReportRequest(input *requests.UpdateHealthReport) {
	applyPointer(input.ReportType, normalizeEnum)
	applyPointer(input.Severity, normalizeEnum)
	trimPointer(input.Diagnosis)
	trimPointer(input.Findings)
	trimPointer(input.HospitalName)
	trimPointer(input.Notes)
	trimPointer(input.FollowUpDate)
	sanitizeMedications(input.Medications)
}

func SanitizeCreateCampRequest(input *requests.CreateCamp) {
	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)
	input.Date = strings.TrimSpace(input.Date)
	input.Description = strings.TrimSpace(input.Description)
	input.DoctorIDs = cleanWhiteSpaceFromEachStringOfAnArray(input.DoctorIDs)
}

func SanitizeUpdateCampRequest(input *requests.UpdateCamp) {
	trimPointer(input.Name)
	trimPointer(input.Location)
	trimPointer(input.Date)
	trimPointer(input.Description)
	input.DoctorIDs = cleanWhiteSpaceFromEachStringOfAnArray(input.DoctorIDs)
}
