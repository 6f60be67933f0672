package requests

type GetPayments struct {
	DoctorID string
	OrderBy  string
}

type CreatePayment struct {
	CustomerID    *string  `json:"customerId" validate:"omitempty,mongoid"`
	AppointmentID *string  `json:"appointmentId" validate:"omitempty,mongoid"`
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
	PaymentType   *string  `json:"paymentType" validate:"omitempty,oneof=monthly per_session"`
	PaymentDate   *string  `json:"paymentDate"`
	Status        *string  `json:"status" validate:"omitempty,oneof=paid pending failed"`
	DoctorID      string   `json:"-"`
}

type UpdatePayment struct {
	PaymentID   string   `json:"-"`
	DoctorID    string   `json:"-"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	PaymentType *string  `json:"paymentType" validate:"omitempty,oneof=monthly per_session"`
	PaymentDate *string  `json:"paymentDate"`
	Status      *string  `json:"status" validate:"omitempty,oneof=paid pending failed"`
}

type FinancialReport struct {
	DoctorID  string
	StartDate string
	EndDate   string
}
