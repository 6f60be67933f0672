package constvars

const (
	SignupSuccessMessage     = "doctor registered successfully"
	LoginSuccessMessage      = "successfully login"
	GetProfileSuccessMessage = "get profile successfully"

	GetCustomersSuccessMessage   = "get customers successfully"
	GetCustomerSuccessMessage    = "get customer successfully"
	GetBirthdaysSuccessMessage   = "get customer birthdays successfully"
	CreateCustomerSuccessMessage = "customer created successfully"
	UpdateCustomerSuccessMessage = "customer updated successfully"
	DeleteCustomerSuccessMessage = "customer deleted successfully"
	ImportCustomerSuccessMessage = "customers imported successfully"

	GetAppointmentsSuccessMessage   = "get appointments successfully"
	GetAppointmentSuccessMessage    = "get appointment successfully"
	CreateAppointmentSuccessMessage = "appointment created successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"

	GetPaymentsSuccessMessage   = "get payments successfully"
	GetPaymentSuccessMessage    = "get payment successfully"
	CreatePaymentSuccessMessage = "payment created successfully"
	UpdatePaymentSuccessMessage = "payment updated successfully"
	DeletePaymentSuccessMessage = "payment deleted successfully"
	GetReportSuccessMessage     = "financial report generated successfully"

	GetChargesSuccessMessage         = "get charges successfully"
	CreateChargeSuccessMessage       = "charge created successfully"
	UpdateChargeSuccessMessage       = "charge status updated successfully"
	DeleteChargeSuccessMessage       = "charge deleted successfully"
	GenerateMonthlyChargesSuccessMsg = "monthly charges generated"
)
