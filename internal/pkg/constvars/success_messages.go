package constvars

const (
	ResponseUnknown = "unknown"

	RegisterSuccessMessage       = "account registered successfully"
	LoginSuccessMessage          = "successfully login"
	LogoutSuccessMessage         = "successfully logout"
	ChangePasswordSuccessMessage = "password changed successfully"

	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"

	CreateRelativeSuccessMessage = "relative added successfully"
	GetRelativesSuccessMessage   = "get relatives successfully"
	UpdateRelativeSuccessMessage = "relative updated successfully"
	DeleteRelativeSuccessMessage = "relative removed successfully"

	CreateDoctorSuccessMessage = "doctor created successfully"
	GetDoctorsSuccessMessage   = "get doctors successfully"

	CreateHealthReportSuccessMessage = "health report created successfully"
	GetHealthReportSuccessMessage    = "get health report successfully"
	GetHealthReportsSuccessMessage   = "get health reports successfully"
	UpdateHealthReportSuccessMessage = "health report updated successfully"
	DeleteHealthReportSuccessMessage = "health report deleted successfully"
	UploadAttachmentSuccessMessage   = "attachment uploaded successfully"

	CreateCampSuccessMessage = "camp created successfully"
	GetCampSuccessMessage    = "get camp successfully"
	GetCampsSuccessMessage   = "get camps successfully"
	UpdateCampSuccessMessage = "camp updated successfully"
	DeleteCampSuccessMessage = "camp deleted successfully"

	HealthCheckSuccessMessage = "service is healthy"
)
