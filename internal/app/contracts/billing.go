package contracts

import (
	"context"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/dto/responses"
)

// BillingService owns the two workflows that keep charges and payments consistent.
type BillingService interface {
	// ReconcilePayment marks the oldest pending charge matching amount and
	// paymentType as paid and returns it, or returns nil when none matches.
	ReconcilePayment(ctx context.Context, customerID string, amount float64, paymentType string) (*models.Charge, error)
	// GenerateMonthlyCharges creates one pending charge for every monthly
	// customer. The summary is returned even when some creations failed.
	GenerateMonthlyCharges(ctx context.Context) (*responses.MonthlyChargeRun, error)
}

type BillingEventPublisher interface {
	PublishBillingEvent(ctx context.Context, event *models.BillingEvent) error
}
