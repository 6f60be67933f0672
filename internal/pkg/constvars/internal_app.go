package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_DOCTOR_ID_KEY            ContextKey = "doctor_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "PRCTC_SVC_"
)

const (
	ResourceAuth         = "auth"
	ResourceCustomers    = "customers"
	ResourceAppointments = "appointments"
	ResourcePayments     = "payments"
	ResourceCharges      = "charges"
)

const (
	JWTClaimDoctorID = "doctor_id"
	JWTClaimExpiry   = "exp"
)

const (
	// MonthlyChargeLeaderLockKey guards the monthly run so one instance executes per tick.
	MonthlyChargeLeaderLockKey = "billing:monthly-charges:leader"
	ImportArchivePrefix        = "customer_import"
)
