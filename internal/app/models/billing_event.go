package models

import "time"

// BillingEvent is the message published to the billing events queue.
type BillingEvent struct {
	Event      string    `json:"event"`
	CustomerID string    `json:"customer_id"`
	ChargeID   string    `json:"charge_id,omitempty"`
	PaymentID  string    `json:"payment_id,omitempty"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
