package constvars

const (
	URLParamCustomerID    = "customerId"
	URLParamAppointmentID = "appointmentId"
	URLParamPaymentID     = "paymentId"
	URLParamChargeID      = "chargeId"
)

const (
	URLQueryParamOrderBy   = "orderBy"
	URLQueryParamStartDate = "startDate"
	URLQueryParamEndDate   = "endDate"
)

const (
	FormFileImport = "file"
)

const (
	SortDirectionDesc = "DESC"
)

// Accepted layouts for dates coming from query strings and request bodies.
const (
	DateLayoutDayMonthYear = "02/01/2006"
	DateLayoutISODate      = "2006-01-02"
)
