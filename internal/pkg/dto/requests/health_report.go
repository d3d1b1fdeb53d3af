package requests

type Vitals struct {
	Sugar                  *float64 `json:"sugar"`
	BloodPressureSystolic  *float64 `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *float64 `json:"bloodPressureDiastolic"`
	Height                 *float64 `json:"height"`
	Weight                 *float64 `json:"weight"`
	Temperature            *float64 `json:"temperature"`
	Pulse                  *float64 `json:"pulse"`
}

type Medication struct {
	Name         string `json:"name" validate:"required,max=200"`
	Dosage       string `json:"dosage" validate:"omitempty,max=100"`
	Frequency    string `json:"frequency" validate:"omitempty,max=100"`
	Duration     string `json:"duration" validate:"omitempty,max=100"`
	Instructions string `json:"instructions" validate:"omitempty,max=500"`
}

type RelativeSubject struct {
	OwnerID    string `json:"ownerId" validate:"required,object_id"`
	RelativeID string `json:"relativeId" validate:"required,object_id"`
}

// CreateHealthReport addresses exactly one subject: PatientID or Relative.
// DoctorID is only read when an admin files the report on a doctor's behalf.
type CreateHealthReport struct {
	DoctorID     string           `json:"doctorId" validate:"omitempty,object_id"`
	PatientID    string           `json:"patientId" validate:"omitempty,object_id"`
	Relative     *RelativeSubject `json:"relative" validate:"omitempty"`
	ReportType   string           `json:"reportType" validate:"required,report_type"`
	Diagnosis    string           `json:"diagnosis" validate:"required,max=2000"`
	Findings     string           `json:"findings" validate:"omitempty,max=5000"`
	Vitals       Vitals           `json:"vitals"`
	IsNormal     bool             `json:"isNormal"`
	Severity     string           `json:"severity" validate:"omitempty,severity"`
	HospitalName string           `json:"hospitalName" validate:"omitempty,max=200"`
	Notes        string           `json:"notes" validate:"omitempty,max=5000"`
	FollowUpDate string           `json:"followUpDate" validate:"omitempty,datetime=2006-01-02"`
	Medications  []Medication     `json:"medications" validate:"omitempty,dive"`
}

// UpdateHealthReport is a patch. A nil Medications slice leaves the list
// untouched; an empty one clears it.
type UpdateHealthReport struct {
	ReportType   *string      `json:"reportType" validate:"omitempty,report_type"`
	Diagnosis    *string      `json:"diagnosis" validate:"omitempty,min=1,max=2000"`
	Findings     *string      `json:"findings" validate:"omitempty,max=5000"`
	Vitals       *Vitals      `json:"vitals"`
	IsNormal     *bool        `json:"isNormal"`
	Severity     *string      `json:"severity" validate:"omitempty,severity"`
	HospitalName *string      `json:"hospitalName" validate:"omitempty,max=200"`
	Notes        *string      `json:"notes" validate:"omitempty,max=5000"`
	FollowUpDate *string      `json:"followUpDate" validate:"omitempty,datetime=2006-01-02"`
	Medications  []Medication `json:"medications" validate:"omitempty,dive"`
}

type UploadAttachment struct {
	FileName    string
	ContentType string
	Size        int64
	Extension   string
}
