package responses

import "practice-service/internal/app/models"

type CreatePayment struct {
	Payment            *models.Payment `json:"payment"`
	ReconciledChargeID string          `json:"reconciledChargeId,omitempty"`
}

type FinancialReportRow struct {
	CustomerID      string  `json:"customerId"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	PaymentType     string  `json:"paymentType"`
	Total           float64 `json:"total"`
	PaidInPeriod    float64 `json:"paidInPeriod"`
	ChargedInPeriod float64 `json:"chargedInPeriod"`
}

type FinancialReport struct {
	StartDate  string               `json:"startDate,omitempty"`
	EndDate    string               `json:"endDate,omitempty"`
	Rows       []FinancialReportRow `json:"rows"`
	GrandTotal float64              `json:"grandTotal"`
}
