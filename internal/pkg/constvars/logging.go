package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingCustomerIDKey     = "customer_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingPaymentIDKey      = "payment_id"
	LoggingChargeIDKey       = "charge_id"
	LoggingAmountKey         = "amount"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingMissingFieldsKey  = "missing_fields"
	LoggingResponseLengthKey = "response_length"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockStoredKey     = "lock_stored_value"
	LoggingLockExpectedKey   = "lock_expected_value"
	LoggingLockExpireKey     = "lock_expiration"
	LoggingQueueKey          = "queue"
	LoggingEventKey          = "event"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
)
