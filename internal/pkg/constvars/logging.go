package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingAccountIDKey      = "account_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingRelativeIDKey     = "relative_id"
	LoggingReportIDKey       = "report_id"
	LoggingCampIDKey         = "camp_id"
	LoggingRoleKey           = "role"
	LoggingEventKey          = "event"
	LoggingQueueKey          = "queue"
	LoggingAttemptKey        = "attempt"
	LoggingErrorLocationKey  = "location"
	LoggingRemoteIPKey       = "remote_ip"
	LoggingAuditTimestampKey = "timestamp"
	LoggingAuditActorKey     = "actor"
	LoggingAuditBodyKey      = "body"
)
