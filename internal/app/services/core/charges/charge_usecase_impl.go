package charges

import (
	"context"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type chargeUsecase struct {
	ChargeRepository   contracts.ChargeRepository
	CustomerRepository contracts.CustomerRepository
	BillingService     contracts.BillingService
	Log                *zap.Logger
}

var (
	chargeUsecaseInstance contracts.ChargeUsecase
	onceChargeUsecase     sync.Once
)

func NewChargeUsecase(
	chargeRepository contracts.ChargeRepository,
	customerRepository contracts.CustomerRepository,
	billingService contracts.BillingService,
	logger *zap.Logger,
) contracts.ChargeUsecase {
	onceChargeUsecase.Do(func() {
		chargeUsecaseInstance = newChargeUsecase(chargeRepository, customerRepository, billingService, logger)
	})
	return chargeUsecaseInstance
}

func newChargeUsecase(
	chargeRepository contracts.ChargeRepository,
	customerRepository contracts.CustomerRepository,
	billingService contracts.BillingService,
	logger *zap.Logger,
) *chargeUsecase {
	return &chargeUsecase{
		ChargeRepository:   chargeRepository,
		CustomerRepository: customerRepository,
		BillingService:     billingService,
		Log:                logger,
	}
}

func (uc *chargeUsecase) CreateCharge(ctx context.Context, request *requests.CreateCharge) (*models.Charge, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("chargeUsecase.CreateCharge called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	missing := utils.VerifyRequiredFields(
		utils.RequiredField{Name: "customerId", Value: request.CustomerID},
		utils.RequiredField{Name: "amount", Value: request.Amount},
		utils.RequiredField{Name: "chargeType", Value: request.ChargeType},
		utils.RequiredField{Name: "dueDate", Value: request.DueDate},
	)
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	dueDate, err := utils.ParseFlexibleDate(*request.DueDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	customer, err := uc.ownedCustomer(ctx, request.DoctorID, *request.CustomerID)
	if err != nil {
		return nil, err
	}

	charge := &models.Charge{
		CustomerID: customer.ID,
		Amount:     *request.Amount,
		ChargeType: *request.ChargeType,
		DueDate:    dueDate,
		Status:     constvars.ChargeStatusPending,
		CreatedAt:  time.Now(),
	}

	chargeID, err := uc.ChargeRepository.CreateCharge(ctx, charge)
	if err != nil {
		return nil, err
	}
	charge.ID, _ = primitive.ObjectIDFromHex(chargeID)

	uc.Log.Info("chargeUsecase.CreateCharge succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChargeIDKey, chargeID),
	)
	return charge, nil
}

func (uc *chargeUsecase) ListChargesByCustomer(ctx context.Context, doctorID, customerID string) ([]models.Charge, error) {
	if _, err := uc.ownedCustomer(ctx, doctorID, customerID); err != nil {
		return nil, err
	}
	return uc.ChargeRepository.FindByCustomerID(ctx, customerID)
}

func (uc *chargeUsecase) UpdateChargeStatus(ctx context.Context, request *requests.UpdateChargeStatus) (*models.Charge, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("chargeUsecase.UpdateChargeStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChargeIDKey, request.ChargeID),
	)

	missing := utils.VerifyRequiredFields(utils.RequiredField{Name: "status", Value: request.Status})
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	charge, err := uc.ownedCharge(ctx, request.DoctorID, request.ChargeID)
	if err != nil {
		return nil, err
	}

	if err := uc.ChargeRepository.UpdateStatus(ctx, request.ChargeID, *request.Status); err != nil {
		return nil, err
	}
	charge.Status = *request.Status
	return charge, nil
}

func (uc *chargeUsecase) DeleteCharge(ctx context.Context, doctorID, chargeID string) error {
	if _, err := uc.ownedCharge(ctx, doctorID, chargeID); err != nil {
		return err
	}
	if err := uc.ChargeRepository.DeleteByID(ctx, chargeID); err != nil {
		return err
	}

	uc.Log.Info("chargeUsecase.DeleteCharge succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingChargeIDKey, chargeID),
	)
	return nil
}

func (uc *chargeUsecase) GenerateMonthlyCharges(ctx context.Context) (*responses.MonthlyChargeRun, error) {
	return uc.BillingService.GenerateMonthlyCharges(ctx)
}

func (uc *chargeUsecase) ownedCustomer(ctx context.Context, doctorID, customerID string) (*models.Customer, error) {
	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, customerID, doctorID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotFound(nil)
	}
	return customer, nil
}

func (uc *chargeUsecase) ownedCharge(ctx context.Context, doctorID, chargeID string) (*models.Charge, error) {
	charge, err := uc.ChargeRepository.FindByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge == nil {
		return nil, exceptions.ErrChargeNotFound(nil)
	}

	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, charge.CustomerID.Hex(), doctorID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrChargeNotFound(nil)
	}
	return charge, nil
}
