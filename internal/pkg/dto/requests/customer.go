package requests

type GetCustomers struct {
	DoctorID string
	OrderBy  string
}

type CreateCustomer struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Password    *string  `json:"password"`
	Phone       *string  `json:"phone"`
	Birthday    *string  `json:"birthday"`
	PaymentType *string  `json:"paymentType" validate:"omitempty,oneof=per_session monthly"`
	SessionRate *float64 `json:"sessionRate" validate:"omitempty,gte=0"`
	MonthlyRate *float64 `json:"monthlyRate" validate:"omitempty,gte=0"`
	DoctorID    string   `json:"-"`
}

type UpdateCustomer struct {
	CustomerID  string   `json:"-"`
	DoctorID    string   `json:"-"`
	Name        *string  `json:"name"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Password    *string  `json:"password"`
	Phone       *string  `json:"phone"`
	Birthday    *string  `json:"birthday"`
	PaymentType *string  `json:"paymentType" validate:"omitempty,oneof=per_session monthly"`
	SessionRate *float64 `json:"sessionRate" validate:"omitempty,gte=0"`
	MonthlyRate *float64 `json:"monthlyRate" validate:"omitempty,gte=0"`
}

// ImportCustomers carries an uploaded spreadsheet.
type ImportCustomers struct {
	DoctorID string
	FileName string
	Content  []byte
}
