package payments

import (
	"context"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository  contracts.PaymentRepository
	CustomerRepository contracts.CustomerRepository
	ChargeRepository   contracts.ChargeRepository
	BillingService     contracts.BillingService
	TransactionManager contracts.TransactionManager
	EventPublisher     contracts.BillingEventPublisher
	Log                *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	customerRepository contracts.CustomerRepository,
	chargeRepository contracts.ChargeRepository,
	billingService contracts.BillingService,
	transactionManager contracts.TransactionManager,
	eventPublisher contracts.BillingEventPublisher,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = newPaymentUsecase(paymentRepository, customerRepository, chargeRepository, billingService, transactionManager, eventPublisher, logger)
	})
	return paymentUsecaseInstance
}

func newPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	customerRepository contracts.CustomerRepository,
	chargeRepository contracts.ChargeRepository,
	billingService contracts.BillingService,
	transactionManager contracts.TransactionManager,
	eventPublisher contracts.BillingEventPublisher,
	logger *zap.Logger,
) *paymentUsecase {
	return &paymentUsecase{
		PaymentRepository:  paymentRepository,
		CustomerRepository: customerRepository,
		ChargeRepository:   chargeRepository,
		BillingService:     billingService,
		TransactionManager: transactionManager,
		EventPublisher:     eventPublisher,
		Log:                logger,
	}
}

func (uc *paymentUsecase) ListPayments(ctx context.Context, request *requests.GetPayments) ([]models.Payment, error) {
	customerIDs, err := uc.CustomerRepository.FindIDsByDoctorID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}

	sortDirection := 1
	if strings.EqualFold(request.OrderBy, constvars.SortDirectionDesc) {
		sortDirection = -1
	}
	return uc.PaymentRepository.FindByCustomerIDs(ctx, customerIDs, sortDirection)
}

func (uc *paymentUsecase) ListPaymentsByCustomer(ctx context.Context, doctorID, customerID string) ([]models.Payment, error) {
	if _, err := uc.ownedCustomer(ctx, doctorID, customerID); err != nil {
		return nil, err
	}
	return uc.PaymentRepository.FindByCustomerID(ctx, customerID)
}

func (uc *paymentUsecase) FindPaymentByID(ctx context.Context, doctorID, paymentID string) (*models.Payment, error) {
	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil)
	}

	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, payment.CustomerID.Hex(), doctorID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrPaymentNotFound(nil)
	}
	return payment, nil
}

// CreatePayment records a payment and settles the oldest pending charge that
// matches it exactly. Both writes share one transaction; events go out only
// after it commits.
func (uc *paymentUsecase) CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.CreatePayment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	missing := utils.VerifyRequiredFields(
		utils.RequiredField{Name: "customerId", Value: request.CustomerID},
		utils.RequiredField{Name: "amount", Value: request.Amount},
		utils.RequiredField{Name: "paymentType", Value: request.PaymentType},
	)
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	customer, err := uc.ownedCustomer(ctx, request.DoctorID, *request.CustomerID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		CustomerID:  customer.ID,
		Amount:      *request.Amount,
		PaymentType: *request.PaymentType,
		PaymentDate: time.Now(),
		Status:      constvars.PaymentStatusPending,
	}
	if request.AppointmentID != nil && *request.AppointmentID != "" {
		appointmentID, err := primitive.ObjectIDFromHex(*request.AppointmentID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		payment.AppointmentID = &appointmentID
	}
	if request.PaymentDate != nil && *request.PaymentDate != "" {
		paymentDate, err := utils.ParseFlexibleDate(*request.PaymentDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		payment.PaymentDate = paymentDate
	}
	if request.Status != nil && *request.Status != "" {
		payment.Status = *request.Status
	}
	payment.SetCreatedAtUpdatedAt()

	var matched *models.Charge
	err = uc.TransactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		charge, err := uc.BillingService.ReconcilePayment(txCtx, customer.ID.Hex(), payment.Amount, payment.PaymentType)
		if err != nil {
			return err
		}

		paymentID, err := uc.PaymentRepository.CreatePayment(txCtx, payment)
		if err != nil {
			return err
		}
		payment.ID, _ = primitive.ObjectIDFromHex(paymentID)
		matched = charge
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &responses.CreatePayment{Payment: payment}
	now := time.Now()
	if matched != nil {
		result.ReconciledChargeID = matched.ID.Hex()
		uc.publish(ctx, &models.BillingEvent{
			Event:      constvars.BillingEventChargePaid,
			CustomerID: customer.ID.Hex(),
			ChargeID:   matched.ID.Hex(),
			PaymentID:  payment.ID.Hex(),
			Amount:     payment.Amount,
			OccurredAt: now,
		})
	}
	uc.publish(ctx, &models.BillingEvent{
		Event:      constvars.BillingEventPaymentCreated,
		CustomerID: customer.ID.Hex(),
		PaymentID:  payment.ID.Hex(),
		Amount:     payment.Amount,
		OccurredAt: now,
	})

	uc.Log.Info("paymentUsecase.CreatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID.Hex()),
		zap.String(constvars.LoggingChargeIDKey, result.ReconciledChargeID),
	)
	return result, nil
}

func (uc *paymentUsecase) UpdatePayment(ctx context.Context, request *requests.UpdatePayment) (*models.Payment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.UpdatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, request.PaymentID),
	)

	payment, err := uc.FindPaymentByID(ctx, request.DoctorID, request.PaymentID)
	if err != nil {
		return nil, err
	}

	if request.Amount != nil {
		payment.Amount = *request.Amount
	}
	if request.PaymentType != nil {
		payment.PaymentType = *request.PaymentType
	}
	if request.Status != nil {
		payment.Status = *request.Status
	}
	if request.PaymentDate != nil {
		paymentDate, err := utils.ParseFlexibleDate(*request.PaymentDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		payment.PaymentDate = paymentDate
	}
	payment.SetUpdatedAt()

	if err := uc.PaymentRepository.UpdatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (uc *paymentUsecase) DeletePayment(ctx context.Context, doctorID, paymentID string) error {
	if _, err := uc.FindPaymentByID(ctx, doctorID, paymentID); err != nil {
		return err
	}

	if err := uc.PaymentRepository.DeleteByID(ctx, paymentID); err != nil {
		return err
	}

	uc.Log.Info("paymentUsecase.DeletePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
	)
	return nil
}

func (uc *paymentUsecase) ownedCustomer(ctx context.Context, doctorID, customerID string) (*models.Customer, error) {
	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, customerID, doctorID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotFound(nil)
	}
	return customer, nil
}

func (uc *paymentUsecase) publish(ctx context.Context, event *models.BillingEvent) {
	if uc.EventPublisher == nil {
		return
	}
	if err := uc.EventPublisher.PublishBillingEvent(ctx, event); err != nil {
		uc.Log.Warn("paymentUsecase.publish failed to publish billing event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
	}
}
