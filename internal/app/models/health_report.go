package models

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportType string

const (
	ReportTypeGeneral      ReportType = "general"
	ReportTypeBloodTest    ReportType = "blood_test"
	ReportTypeUrineTest    ReportType = "urine_test"
	ReportTypeXray         ReportType = "xray"
	ReportTypeScan         ReportType = "scan"
	ReportTypePrescription ReportType = "prescription"
	ReportTypeFollowUp     ReportType = "follow_up"
)

var ReportTypes = []ReportType{
	ReportTypeGeneral,
	ReportTypeBloodTest,
	ReportTypeUrineTest,
	ReportTypeXray,
	ReportTypeScan,
	ReportTypePrescription,
	ReportTypeFollowUp,
}

func (t ReportType) IsValid() bool {
	for _, reportType := range ReportTypes {
		if t == reportType {
			return true
		}
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) IsValid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// Vitals holds raw measurements. Height is in centimetres, weight in kilograms.
// A nil field was not measured.
type Vitals struct {
	Sugar                  *float64 `bson:"sugar,omitempty"`
	BloodPressureSystolic  *float64 `bson:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *float64 `bson:"bloodPressureDiastolic,omitempty"`
	Height                 *float64 `bson:"height,omitempty"`
	Weight                 *float64 `bson:"weight,omitempty"`
	Temperature            *float64 `bson:"temperature,omitempty"`
	Pulse                  *float64 `bson:"pulse,omitempty"`
}

func (v Vitals) HasNegative() bool {
	for _, value := range []*float64{
		v.Sugar,
		v.BloodPressureSystolic,
		v.BloodPressureDiastolic,
		v.Height,
		v.Weight,
		v.Temperature,
		v.Pulse,
	} {
		if value != nil && *value < 0 {
			return true
		}
	}
	return false
}

// BMI is derived on every read and never stored. Rounded to one decimal.
func (v Vitals) BMI() *float64 {
	if v.Height == nil || v.Weight == nil || *v.Height <= 0 {
		return nil
	}
	meters := *v.Height / 100
	bmi := math.Round(*v.Weight/(meters*meters)*10) / 10
	return &bmi
}

// FormattedBloodPressure renders "systolic/diastolic mmHg", empty when either is missing.
func (v Vitals) FormattedBloodPressure() string {
	if v.BloodPressureSystolic == nil || v.BloodPressureDiastolic == nil {
		return ""
	}
	return fmt.Sprintf("%s/%s mmHg", formatMeasurement(*v.BloodPressureSystolic), formatMeasurement(*v.BloodPressureDiastolic))
}

func formatMeasurement(value float64) string {
	if value == math.Trunc(value) {
		return fmt.Sprintf("%.0f", value)
	}
	return fmt.Sprintf("%.1f", value)
}

type Medication struct {
	Name         string `bson:"name"`
	Dosage       string `bson:"dosage,omitempty"`
	Frequency    string `bson:"frequency,omitempty"`
	Duration     string `bson:"duration,omitempty"`
	Instructions string `bson:"instructions,omitempty"`
}

type Attachment struct {
	ID          string    `bson:"id"`
	FileName    string    `bson:"fileName"`
	ObjectKey   string    `bson:"objectKey"`
	ContentType string    `bson:"contentType"`
	Size        int64     `bson:"size"`
	UploadedAt  time.Time `bson:"uploadedAt"`
}

// RelativeRef addresses a relative through its owner.
type RelativeRef struct {
	OwnerID    primitive.ObjectID `bson:"ownerId"`
	RelativeID primitive.ObjectID `bson:"relativeId"`
}

type HealthReport struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	ReportID     string              `bson:"reportId"`
	DoctorID     primitive.ObjectID  `bson:"doctorId"`
	PatientID    *primitive.ObjectID `bson:"patientId,omitempty"`
	Relative     *RelativeRef        `bson:"relative,omitempty"`
	ReportType   ReportType          `bson:"reportType"`
	Diagnosis    string              `bson:"diagnosis,omitempty"`
	Findings     string              `bson:"findings,omitempty"`
	Vitals       Vitals              `bson:"vitals"`
	IsNormal     bool                `bson:"isNormal"`
	Severity     Severity            `bson:"severity,omitempty"`
	HospitalName string              `bson:"hospitalName,omitempty"`
	Notes        string              `bson:"notes,omitempty"`
	FollowUpDate *time.Time          `bson:"followUpDate,omitempty"`
	Medications  []Medication        `bson:"medications"`
	Attachments  []Attachment        `bson:"attachments"`
	TimeModel    `bson:",inline"`
}

// SubjectOwnerID is the account entitled to read the report as its subject:
// the patient, or the owner of the referenced relative.
func (r *HealthReport) SubjectOwnerID() primitive.ObjectID {
	if r.PatientID != nil {
		return *r.PatientID
	}
	if r.Relative != nil {
		return r.Relative.OwnerID
	}
	return primitive.NilObjectID
}

func (r *HealthReport) IsAuthoredBy(doctorID primitive.ObjectID) bool {
	return r.DoctorID == doctorID
}

// HealthReportUpdate holds the patchable clinical fields. Subject and author are fixed.
type HealthReportUpdate struct {
	ReportType   *ReportType
	Diagnosis    *string
	Findings     *string
	Vitals       *Vitals
	IsNormal     *bool
	Severity     *Severity
	HospitalName *string
	Notes        *string
	FollowUpDate *time.Time
	Medications  *[]Medication
}

// HealthReportFilter narrows list queries. Zero values are ignored.
type HealthReportFilter struct {
	DoctorID   *primitive.ObjectID
	PatientID  *primitive.ObjectID
	Relative   *RelativeRef
	ReportType ReportType
}

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Skip() int64 {
	return int64((p.Page - 1) * p.PageSize)
}
