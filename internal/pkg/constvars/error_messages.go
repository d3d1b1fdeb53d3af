package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"required_without": "is required when %s is not present",
	"excluded_with":    "must be empty when %s is present",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"gte":              "must be greater than or equal to %s",
	"gt":               "must be greater than %s",
	"lte":              "must be less than or equal to %s",
	"oneof":            "must be one of [%s]",
	"datetime":         "must follow the %s date format",
	"phone_number":     "phone number must contain 10 to 15 digits and cannot start with 0",
	"relationship":     "relationship must be one of [parent, child, sibling, spouse, grandparent, grandchild, guardian, other]",
	"report_type":      "reportType must be one of [general, blood_test, urine_test, xray, scan, prescription, follow_up]",
	"severity":         "severity must be one of [low, medium, high]",
	"gender":           "gender must be one of [male, female, other]",
	"blood_group":      "bloodGroup must be one of [A+, A-, B+, B-, AB+, AB-, O+, O-]",
	"object_id":        "must be a valid identifier",
}

// Tags whose message carries the whole sentence
var TagsWithFullMessage = map[string]bool{
	"phone_number": true,
	"relationship": true,
	"report_type":  true,
	"severity":     true,
	"gender":       true,
	"blood_group":  true,
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"required_without": true,
	"excluded_with":    true,
	"min":              true,
	"max":              true,
	"gte":              true,
	"gt":               true,
	"lte":              true,
	"oneof":            true,
	"datetime":         true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidCredentials            = "invalid phone number, email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPhoneNumberAlreadyExists      = "phone number already used"
	ErrClientSamePassword                  = "new password must be different from the current password"
	ErrClientTokenMissing                  = "authentication required: no credential presented"
	ErrClientTokenExpired                  = "authentication required: session expired, please login again"
	ErrClientTokenInvalid                  = "authentication required: invalid credential"
	ErrClientTokenRevoked                  = "authentication required: credential has been revoked, please login again"
	ErrClientAccountNotFound               = "authentication required: account no longer exists"
	ErrClientForbidden                     = "you are not allowed to perform this action"
	ErrClientRoleNotAllowed                = "your role can't access this feature"
	ErrClientAccountNotFoundResource       = "account not found"
	ErrClientRelativeNotFound              = "relative not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientHealthReportNotFound          = "health report not found"
	ErrClientCampNotFound                  = "camp not found"
	ErrClientRouteNotFound                 = "route not found"
	ErrClientRelativeAccountNotFound       = "linked account does not exist or the phone number does not match"
	ErrClientRelativeIdentityRequired      = "name, date of birth, gender and phone number are required for a relative without an account"
	ErrClientNegativeVitals                = "vitals must not be negative"
	ErrClientInvalidSubject                = "exactly one of patientId or relative must address an existing patient"
	ErrClientInvalidAttachment             = "attachment is missing or exceeds the allowed size"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientReportIDExhausted             = "could not allocate a report identifier, please retry"
	ErrClientServiceUnavailable            = "service is temporarily unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form body"
	ErrDevCannotReadBody            = "cannot read request body"
	ErrDevValidationFailed          = "validation failed"
	ErrDevURLParamValidationFailed  = "parameter %s validation failed"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevPhoneNumberAlreadyExists  = "phone number already exists"
	ErrDevSamePassword              = "new password equals current password"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevRecoveredPanic            = "recovered from panic"
	ErrDevNegativeVitals            = "vitals contain a negative value"
	ErrDevInvalidSubject            = "report subject does not resolve to exactly one patient or relative"
	ErrDevRelativeAccountNotFound   = "relative link rejected: account missing, not a patient, the owner itself, or phone mismatch"
	ErrDevRelativeIdentityRequired  = "relative without an account is missing inline identity fields"
	ErrDevInvalidAttachment         = "attachment validation failed"
	ErrDevLoginRateLimited          = "login attempts exceeded for %s"
	ErrDevReportIDExhausted         = "report identifier collided on every attempt"
	ErrDevRouteNotFound             = "no route matches %s %s"
	ErrDevDependencyUnavailable     = "dependency %s did not answer the health probe"
	ErrDevResourceNotFound          = "%s not found"
	ErrDevResourceNotOwned          = "%s not owned by acting account"
	ErrDevForbiddenAction           = "%s is not allowed for role %s"
	ErrDevRoleNotAllowed            = "role %s is not in the allowed set"
	ErrDevPermissionDenied          = "role %s lacks permission %s"
	ErrDevIdentityMissing           = "no identity attached to request context"
	ErrDevAccountNoLongerExists     = "credential subject %s no longer resolves"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenExpired          = "token expired"
	ErrDevAuthTokenInvalid          = "token malformed or signature invalid"
	ErrDevAuthTokenRevoked          = "token revoked"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthUnknownDirectory      = "token audience %v is not a known directory"
	ErrDevDBFailedToInsertDocument  = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument  = "failed to update document into database"
	ErrDevDBFailedToFindDocument    = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument  = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocument = "failed when iterating documents from database"
	ErrDevDBFailedToCountDocument   = "failed when counting documents on database"
	ErrDevDBFailedToCreateIndex     = "failed to create index on collection %s"
	ErrDevDBStringNotObjectID       = "given ID is not valid object ID"
	ErrDevMinioCreateObject         = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioPresignedURL         = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevRedisSetData              = "failed to SET data into redis"
	ErrDevRedisGetData              = "failed to GET data from redis"
	ErrDevRedisExistsData           = "failed to EXISTS key in redis"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to rabbitmq queue '%s'"
)
