package billing

import (
	"context"
	"fmt"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/responses"
	"practice-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const defaultMaxConcurrency = 8

type billingService struct {
	CustomerRepository contracts.CustomerRepository
	ChargeRepository   contracts.ChargeRepository
	EventPublisher     contracts.BillingEventPublisher
	MaxConcurrency     int
	Now                func() time.Time
	Log                *zap.Logger
}

var (
	billingServiceInstance contracts.BillingService
	onceBillingService     sync.Once
)

func NewBillingService(
	customerRepository contracts.CustomerRepository,
	chargeRepository contracts.ChargeRepository,
	eventPublisher contracts.BillingEventPublisher,
	maxConcurrency int,
	logger *zap.Logger,
) contracts.BillingService {
	onceBillingService.Do(func() {
		billingServiceInstance = newBillingService(customerRepository, chargeRepository, eventPublisher, maxConcurrency, time.Now, logger)
	})
	return billingServiceInstance
}

func newBillingService(
	customerRepository contracts.CustomerRepository,
	chargeRepository contracts.ChargeRepository,
	eventPublisher contracts.BillingEventPublisher,
	maxConcurrency int,
	now func() time.Time,
	logger *zap.Logger,
) *billingService {
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &billingService{
		CustomerRepository: customerRepository,
		ChargeRepository:   chargeRepository,
		EventPublisher:     eventPublisher,
		MaxConcurrency:     maxConcurrency,
		Now:                now,
		Log:                logger,
	}
}

func (s *billingService) ReconcilePayment(ctx context.Context, customerID string, amount float64, paymentType string) (*models.Charge, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("billingService.ReconcilePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID),
		zap.Float64(constvars.LoggingAmountKey, amount),
	)

	pendingCharges, err := s.ChargeRepository.FindPendingByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for i := range pendingCharges {
		charge := pendingCharges[i]
		if charge.Amount != amount || charge.ChargeType != paymentType {
			continue
		}

		if err := s.ChargeRepository.UpdateStatus(ctx, charge.ID.Hex(), constvars.ChargeStatusPaid); err != nil {
			return nil, err
		}
		charge.Status = constvars.ChargeStatusPaid

		s.Log.Info("billingService.ReconcilePayment matched charge",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCustomerIDKey, customerID),
			zap.String(constvars.LoggingChargeIDKey, charge.ID.Hex()),
		)
		return &charge, nil
	}

	s.Log.Info("billingService.ReconcilePayment found no matching charge",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID),
	)
	return nil, nil
}

func (s *billingService) GenerateMonthlyCharges(ctx context.Context) (*responses.MonthlyChargeRun, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("billingService.GenerateMonthlyCharges called", zap.String(constvars.LoggingRequestIDKey, requestID))

	customers, err := s.CustomerRepository.FindByPaymentType(ctx, constvars.PaymentTypeMonthly)
	if err != nil {
		return nil, err
	}

	now := s.Now().In(time.Local)
	dueDate := utils.FirstDayOfMonth(now)
	summary := &responses.MonthlyChargeRun{Eligible: len(customers)}

	var mu sync.Mutex
	p := pool.New().WithErrors().WithMaxGoroutines(s.MaxConcurrency)
	for _, customer := range customers {
		customer := customer
		p.Go(func() error {
			charge, err := s.createMonthlyCharge(ctx, customer, dueDate, now)
			if err != nil {
				mu.Lock()
				summary.Failed++
				summary.Errors = append(summary.Errors, fmt.Sprintf("customer %s: %s", customer.ID.Hex(), err.Error()))
				mu.Unlock()
				return fmt.Errorf("customer %s: %w", customer.ID.Hex(), err)
			}

			mu.Lock()
			summary.Created++
			mu.Unlock()

			s.publish(ctx, &models.BillingEvent{
				Event:      constvars.BillingEventChargeGenerated,
				CustomerID: charge.CustomerID.Hex(),
				ChargeID:   charge.ID.Hex(),
				Amount:     charge.Amount,
				OccurredAt: now,
			})
			return nil
		})
	}
	err = p.Wait()

	logFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("eligible", summary.Eligible),
		zap.Int("created", summary.Created),
		zap.Int("failed", summary.Failed),
	}
	if err != nil {
		s.Log.Error("billingService.GenerateMonthlyCharges finished with failures", append(logFields, zap.Error(err))...)
		return summary, err
	}

	s.Log.Info("billingService.GenerateMonthlyCharges succeeded", logFields...)
	return summary, nil
}

func (s *billingService) createMonthlyCharge(ctx context.Context, customer models.Customer, dueDate, now time.Time) (*models.Charge, error) {
	charge := &models.Charge{
		CustomerID: customer.ID,
		Amount:     customer.MonthlyRate,
		ChargeType: constvars.PaymentTypeMonthly,
		DueDate:    dueDate,
		Status:     constvars.ChargeStatusPending,
		CreatedAt:  now,
	}

	chargeID, err := s.ChargeRepository.CreateCharge(ctx, charge)
	if err != nil {
		return nil, err
	}
	charge.ID, _ = primitive.ObjectIDFromHex(chargeID)
	return charge, nil
}

// publish sends event without failing the caller; delivery errors are logged.
func (s *billingService) publish(ctx context.Context, event *models.BillingEvent) {
	if s.EventPublisher == nil {
		return
	}
	if err := s.EventPublisher.PublishBillingEvent(ctx, event); err != nil {
		s.Log.Warn("billingService.publish failed to publish billing event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
	}
}
