package requests

type CreateAppointment struct {
	CustomerID  *string `json:"customerId" validate:"omitempty,mongoid"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	DoctorID    string  `json:"-"`
}

type UpdateAppointment struct {
	AppointmentID string  `json:"-"`
	DoctorID      string  `json:"-"`
	Date          *string `json:"date"`
	Description   *string `json:"description"`
	Notes         *string `json:"notes"`
}
