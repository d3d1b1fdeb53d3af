package utils

import (
	"chanv-service/internal/app/models"
	"chanv-service/internal/pkg/dto/responses"
	"time"
)

func MapAccountToLoginSummary(account *models.Account) responses.AccountSummary {
	return responses.AccountSummary{
		ID:          account.ID.Hex(),
		Name:        account.FullName(),
		Email:       account.Email,
		PhoneNumber: account.PhoneNumber,
		Role:        account.Role.String(),
	}
}

func MapDoctorToLoginSummary(doctor *models.Doctor) responses.AccountSummary {
	return responses.AccountSummary{
		ID:          doctor.ID.Hex(),
		Name:        doctor.FullName(),
		Email:       doctor.Email,
		PhoneNumber: doctor.PhoneNumber,
		Role:        models.RoleDoctor.String(),
	}
}

func MapAccountToUserProfile(account *models.Account, now time.Time) *responses.UserProfile {
	return &responses.UserProfile{
		ID:                account.ID.Hex(),
		FirstName:         account.FirstName,
		LastName:          account.LastName,
		FullName:          account.FullName(),
		Email:             account.Email,
		PhoneNumber:       account.PhoneNumber,
		DateOfBirth:       FormatDate(account.DateOfBirth),
		Age:               CalculateAge(account.DateOfBirth, now),
		Gender:            account.Gender,
		BloodGroup:        account.BloodGroup,
		Role:              account.Role.String(),
		RelativeCount:     len(account.Relatives),
		HealthReportCount: len(account.HealthReports),
		CreatedAt:         account.CreatedAt,
	}
}

func MapRelativeToResponse(relative *models.Relative) responses.Relative {
	response := responses.Relative{
		ID:             relative.ID.Hex(),
		IsExistingUser: relative.IsExistingUser,
		Name:           relative.Name,
		PhoneNumber:    relative.PhoneNumber,
		DateOfBirth:    FormatOptionalDate(relative.DateOfBirth),
		Gender:         relative.Gender,
		BloodGroup:     relative.BloodGroup,
		Relationship:   string(relative.Relationship),
		HealthReports:  relative.HealthReports,
		CreatedAt:      relative.CreatedAt,
		UpdatedAt:      relative.UpdatedAt,
	}
	if relative.AccountID != nil {
		response.AccountID = relative.AccountID.Hex()
	}
	if response.HealthReports == nil {
		response.HealthReports = []string{}
	}
	return response
}

func MapRelativesToResponse(relatives []models.Relative) []responses.Relative {
	result := make([]responses.Relative, 0, len(relatives))
	for i := range relatives {
		result = append(result, MapRelativeToResponse(&relatives[i]))
	}
	return result
}

func MapDoctorToResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:              doctor.ID.Hex(),
		FirstName:       doctor.FirstName,
		LastName:        doctor.LastName,
		FullName:        doctor.FullName(),
		Email:           doctor.Email,
		PhoneNumber:     doctor.PhoneNumber,
		Specialization:  doctor.Specialization,
		Qualification:   doctor.Qualification,
		ExperienceYears: doctor.ExperienceYears,
		HospitalName:    doctor.HospitalName,
		Role:            models.RoleDoctor.String(),
		CreatedAt:       doctor.CreatedAt,
	}
}

func MapCampToResponse(camp *models.Camp) *responses.Camp {
	doctorIDs := make([]string, 0, len(camp.DoctorIDs))
	for _, id := range camp.DoctorIDs {
		doctorIDs = append(doctorIDs, id.Hex())
	}
	return &responses.Camp{
		ID:          camp.ID.Hex(),
		Name:        camp.Name,
		Location:    camp.Location,
		Date:        FormatDate(camp.Date),
		DoctorIDs:   doctorIDs,
		Capacity:    camp.Capacity,
		Description: camp.Description,
		CreatedBy:   camp.CreatedBy.Hex(),
		CreatedAt:   camp.CreatedAt,
		UpdatedAt:   camp.UpdatedAt,
	}
}

// MapHealthReportToResponse computes the derived fields. attachmentURL may be
// nil, in which case attachments are listed without download links.
func MapHealthReportToResponse(report *models.HealthReport, attachmentURL func(objectKey string) string) *responses.HealthReport {
	response := &responses.HealthReport{
		ID:         report.ID.Hex(),
		ReportID:   report.ReportID,
		DoctorID:   report.DoctorID.Hex(),
		ReportType: string(report.ReportType),
		Diagnosis:  report.Diagnosis,
		Findings:   report.Findings,
		Vitals: responses.Vitals{
			Sugar:                  report.Vitals.Sugar,
			BloodPressureSystolic:  report.Vitals.BloodPressureSystolic,
			BloodPressureDiastolic: report.Vitals.BloodPressureDiastolic,
			Height:                 report.Vitals.Height,
			Weight:                 report.Vitals.Weight,
			Temperature:            report.Vitals.Temperature,
			Pulse:                  report.Vitals.Pulse,
		},
		BMI:           report.Vitals.BMI(),
		BloodPressure: report.Vitals.FormattedBloodPressure(),
		IsNormal:      report.IsNormal,
		Severity:      string(report.Severity),
		HospitalName:  report.HospitalName,
		Notes:         report.Notes,
		FollowUpDate:  FormatOptionalDate(report.FollowUpDate),
		Medications:   make([]responses.Medication, 0, len(report.Medications)),
		Attachments:   make([]responses.Attachment, 0, len(report.Attachments)),
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	}

	if report.PatientID != nil {
		response.PatientID = report.PatientID.Hex()
	}
	if report.Relative != nil {
		response.Relative = &responses.RelativeSubject{
			OwnerID:    report.Relative.OwnerID.Hex(),
			RelativeID: report.Relative.RelativeID.Hex(),
		}
	}

	for _, medication := range report.Medications {
		response.Medications = append(response.Medications, responses.Medication{
			Name:         medication.Name,
			Dosage:       medication.Dosage,
			Frequency:    medication.Frequency,
			Duration:     medication.Duration,
			Instructions: medication.Instructions,
		})
	}

	for _, attachment := range report.Attachments {
		item := responses.Attachment{
			ID:          attachment.ID,
			FileName:    attachment.FileName,
			ContentType: attachment.ContentType,
			Size:        attachment.Size,
			UploadedAt:  attachment.UploadedAt,
		}
		if attachmentURL != nil {
			item.URL = attachmentURL(attachment.ObjectKey)
		}
		response.Attachments = append(response.Attachments, item)
	}

	return response
}
