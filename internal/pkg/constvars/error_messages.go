package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"mongoid":  "must be a valid identifier",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "access denied, token not provided"
	ErrClientTokenInvalidOrExpired         = "invalid or expired token"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientMandatoryFieldsRequired       = "mandatory fields are required"
	ErrClientInvalidDateFormat             = "invalid date format"
	ErrClientCustomerNotFound              = "customer not found"
	ErrClientNoCustomersFound              = "no customers found for this doctor"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientPaymentNotFound               = "payment not found"
	ErrClientChargeNotFound                = "charge not found"
	ErrClientImportFileMissing             = "no file uploaded"
	ErrClientImportFileUnreadable          = "the uploaded spreadsheet could not be read"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate            = "cannot parse the requested date"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form body"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevEmailAlreadyExists         = "email already exists"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevMissingDoctorID            = "doctor id missing from context"
	ErrDevValidationFailed           = "validation failed"
	ErrDevMissingRequiredFields      = "missing required fields"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevSpreadsheetRead            = "failed to read spreadsheet"
	ErrDevResourceNotFound           = "%s not found or not owned by doctor"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevInvalidAPIKey             = "INVALID_API_KEY"
	ErrDevAPIKeyRequired            = "API_KEY_REQUIRED"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBTransaction              = "failed to run database transaction"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetNoData  = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisExpire     = "failed to EXPIRE key in redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerPanic            = "recovered from panic"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)
