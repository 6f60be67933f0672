package requests

type CreateCharge struct {
	CustomerID *string  `json:"customerId" validate:"omitempty,mongoid"`
	Amount     *float64 `json:"amount" validate:"omitempty,gt=0"`
	ChargeType *string  `json:"chargeType" validate:"omitempty,oneof=monthly per_session"`
	DueDate    *string  `json:"dueDate"`
	DoctorID   string   `json:"-"`
}

type UpdateChargeStatus struct {
	ChargeID string  `json:"-"`
	DoctorID string  `json:"-"`
	Status   *string `json:"status" validate:"omitempty,oneof=pending paid overdue"`
}
