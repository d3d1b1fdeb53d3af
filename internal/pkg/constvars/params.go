package constvars

const (
	URLParamID         = "id"
	URLParamRelativeID = "relativeId"
	URLParamPatientID  = "patientId"
	URLParamDoctorID   = "doctorId"
	URLParamCampID     = "campId"
)

const (
	URLQueryParamPage       = "page"
	URLQueryParamPageSize   = "page_size"
	URLQueryParamReportType = "reportType"
)

const (
	FormFieldAttachmentFile = "file"
)
