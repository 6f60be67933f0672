package appointments

import (
	"context"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	CustomerRepository    contracts.CustomerRepository
	TransactionManager    contracts.TransactionManager
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	customerRepository contracts.CustomerRepository,
	transactionManager contracts.TransactionManager,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = newAppointmentUsecase(appointmentRepository, customerRepository, transactionManager, logger)
	})
	return appointmentUsecaseInstance
}

func newAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	customerRepository contracts.CustomerRepository,
	transactionManager contracts.TransactionManager,
	logger *zap.Logger,
) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		CustomerRepository:    customerRepository,
		TransactionManager:    transactionManager,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	customerIDs, err := uc.CustomerRepository.FindIDsByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return uc.AppointmentRepository.FindByCustomerIDs(ctx, customerIDs)
}

func (uc *appointmentUsecase) ListAppointmentsByCustomer(ctx context.Context, doctorID, customerID string) ([]models.Appointment, error) {
	if _, err := uc.ownedCustomer(ctx, doctorID, customerID); err != nil {
		return nil, err
	}
	return uc.AppointmentRepository.FindByCustomerID(ctx, customerID)
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, doctorID, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, appointment.CustomerID.Hex(), doctorID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

// CreateAppointment books a session. A per-session customer is charged the
// current session rate, added to balanceDue in the same transaction as the
// insert; monthly customers book at no cost.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	missing := utils.VerifyRequiredFields(
		utils.RequiredField{Name: "customerId", Value: request.CustomerID},
		utils.RequiredField{Name: "date", Value: request.Date},
	)
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	date, err := utils.ParseFlexibleDate(*request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	customer, err := uc.ownedCustomer(ctx, request.DoctorID, *request.CustomerID)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		CustomerID: customer.ID,
		Date:       date,
	}
	if request.Description != nil {
		appointment.Description = *request.Description
	}
	if request.Notes != nil {
		appointment.Notes = *request.Notes
	}
	if !customer.IsMonthly() {
		appointment.Amount = customer.SessionRate
	}
	appointment.SetCreatedAtUpdatedAt()

	err = uc.TransactionManager.WithTransaction(ctx, func(txCtx context.Context) error {
		appointmentID, err := uc.AppointmentRepository.CreateAppointment(txCtx, appointment)
		if err != nil {
			return err
		}
		appointment.ID, _ = primitive.ObjectIDFromHex(appointmentID)

		if appointment.Amount == 0 {
			return nil
		}
		return uc.CustomerRepository.IncrementBalance(txCtx, customer.ID.Hex(), appointment.Amount)
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
		zap.Float64(constvars.LoggingAmountKey, appointment.Amount),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	missing := utils.VerifyRequiredFields(
		utils.RequiredField{Name: "date", Value: request.Date},
		utils.RequiredField{Name: "description", Value: request.Description},
	)
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	date, err := utils.ParseFlexibleDate(*request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	appointment, err := uc.FindAppointmentByID(ctx, request.DoctorID, request.AppointmentID)
	if err != nil {
		return nil, err
	}

	appointment.Date = date
	appointment.Description = *request.Description
	if request.Notes != nil {
		appointment.Notes = *request.Notes
	}
	appointment.SetUpdatedAt()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// DeleteAppointment removes the appointment without reversing the balance it
// added.
func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, doctorID, appointmentID string) error {
	if _, err := uc.FindAppointmentByID(ctx, doctorID, appointmentID); err != nil {
		return err
	}

	if err := uc.AppointmentRepository.DeleteByID(ctx, appointmentID); err != nil {
		return err
	}

	uc.Log.Info("appointmentUsecase.DeleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) ownedCustomer(ctx context.Context, doctorID, customerID string) (*models.Customer, error) {
	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, customerID, doctorID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotFound(nil)
	}
	return customer, nil
}
