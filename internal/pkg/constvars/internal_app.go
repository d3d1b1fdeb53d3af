package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
	CONTEXT_CREDENTIAL_KEY           ContextKey = "credential"
	CONTEXT_RAW_BODY                 ContextKey = "raw_body"
)

const (
	REQUEST_ID_PREFIX = "CHANV_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPage            = 1
	DefaultPageSize        = 20
	MaxPageSize            = 100
)

const (
	MongoCollectionAccounts      = "accounts"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionHealthReports = "health_reports"
	MongoCollectionCamps         = "camps"

	MongoIndexPhoneNumber = "uniq_phone_number"
)

// Directories a credential subject can belong to. Carried in the token audience.
const (
	DirectoryAccounts = "accounts"
	DirectoryDoctors  = "doctors"
)

const (
	RedisKeyRevokedToken   = "revoked:token:%s"
	RedisKeyRevokedAccount = "revoked:account:%s"
)

const (
	HealthReportIDPrefix        = "HR"
	HealthReportIDMaxAttempts   = 3
	HealthReportIDTimeLayout    = "20060102150405.000"
	HealthReportIDRandomLength  = 12
	AttachmentObjectKeyFormat   = "health-reports/%s/%s%s"
	AnonymousActor              = "anonymous"
	MaskedValue                 = "******"
	DefaultRequestTimeoutSecond = 10
)

const (
	EventHealthReportCreated = "health_report.created"
	EventHealthReportUpdated = "health_report.updated"
	EventHealthReportDeleted = "health_report.deleted"
)
