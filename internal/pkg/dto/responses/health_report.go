package responses

import "time"

type Vitals struct {
	Sugar                  *float64 `json:"sugar,omitempty"`
	BloodPressureSystolic  *float64 `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *float64 `json:"bloodPressureDiastolic,omitempty"`
	Height                 *float64 `json:"height,omitempty"`
	Weight                 *float64 `json:"weight,omitempty"`
	Temperature            *float64 `json:"temperature,omitempty"`
	Pulse                  *float64 `json:"pulse,omitempty"`
}

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Attachment struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
	URL         string    `json:"url,omitempty"`
}

type RelativeSubject struct {
	OwnerID    string `json:"ownerId"`
	RelativeID string `json:"relativeId"`
}

// HealthReport carries BMI and BloodPressure computed from the stored vitals
// when the response is built.
type HealthReport struct {
	ID            string           `json:"id"`
	ReportID      string           `json:"reportId"`
	DoctorID      string           `json:"doctorId"`
	PatientID     string           `json:"patientId,omitempty"`
	Relative      *RelativeSubject `json:"relative,omitempty"`
	ReportType    string           `json:"reportType"`
	Diagnosis     string           `json:"diagnosis"`
	Findings      string           `json:"findings,omitempty"`
	Vitals        Vitals           `json:"vitals"`
	BMI           *float64         `json:"bmi,omitempty"`
	BloodPressure string           `json:"bloodPressure,omitempty"`
	IsNormal      bool             `json:"isNormal"`
	Severity      string           `json:"severity,omitempty"`
	HospitalName  string           `json:"hospitalName,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	FollowUpDate  string           `json:"followUpDate,omitempty"`
	Medications   []Medication     `json:"medications"`
	Attachments   []Attachment     `json:"attachments"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
