package charges

import (
	"context"
	"errors"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"
	"practice-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockChargeRepository struct {
	mock.Mock
}

func (m *MockChargeRepository) CreateCharge(ctx context.Context, charge *models.Charge) (string, error) {
	args := m.Called(ctx, charge)
	return args.String(0), args.Error(1)
}

func (m *MockChargeRepository) FindByID(ctx context.Context, chargeID string) (*models.Charge, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Charge), args.Error(1)
}

func (m *MockChargeRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.Charge, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]models.Charge), args.Error(1)
}

func (m *MockChargeRepository) FindPendingByCustomerID(ctx context.Context, customerID string) ([]models.Charge, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]models.Charge), args.Error(1)
}

func (m *MockChargeRepository) FindByCustomerIDsInRange(ctx context.Context, customerIDs []primitive.ObjectID, start, end *time.Time) ([]models.Charge, error) {
	args := m.Called(ctx, customerIDs, start, end)
	return args.Get(0).([]models.Charge), args.Error(1)
}

func (m *MockChargeRepository) UpdateStatus(ctx context.Context, chargeID, status string) error {
	args := m.Called(ctx, chargeID, status)
	return args.Error(0)
}

func (m *MockChargeRepository) DeleteByID(ctx context.Context, chargeID string) error {
	args := m.Called(ctx, chargeID)
	return args.Error(0)
}

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) ReconcilePayment(ctx context.Context, customerID string, amount float64, paymentType string) (*models.Charge, error) {
	args := m.Called(ctx, customerID, amount, paymentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Charge), args.Error(1)
}

func (m *MockBillingService) GenerateMonthlyCharges(ctx context.Context) (*responses.MonthlyChargeRun, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.MonthlyChargeRun), args.Error(1)
}

type fakeCustomerRepository struct {
	contracts.CustomerRepository
	customer models.Customer
}

func (f *fakeCustomerRepository) FindByIDAndDoctorID(ctx context.Context, customerID, doctorID string) (*models.Customer, error) {
	if f.customer.ID.Hex() == customerID && f.customer.DoctorID.Hex() == doctorID {
		found := f.customer
		return &found, nil
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func TestChargeUsecase_CreateCharge(t *testing.T) {
	ctx := context.Background()
	doctorID := primitive.NewObjectID()
	customers := &fakeCustomerRepository{customer: models.Customer{ID: primitive.NewObjectID(), DoctorID: doctorID}}

	t.Run("Created Pending", func(t *testing.T) {
		repo := new(MockChargeRepository)
		chargeID := primitive.NewObjectID()
		repo.On("CreateCharge", mock.Anything, mock.MatchedBy(func(charge *models.Charge) bool {
			return charge.Status == constvars.ChargeStatusPending &&
				charge.Amount == 300 &&
				charge.DueDate.Equal(time.Date(2024, time.August, 1, 0, 0, 0, 0, time.Local))
		})).Return(chargeID.Hex(), nil)
		uc := newChargeUsecase(repo, customers, nil, zap.NewNop())

		charge, err := uc.CreateCharge(ctx, &requests.CreateCharge{
			CustomerID: strPtr(customers.customer.ID.Hex()),
			Amount:     floatPtr(300),
			ChargeType: strPtr(constvars.PaymentTypeMonthly),
			DueDate:    strPtr("01/08/2024"),
			DoctorID:   doctorID.Hex(),
		})

		require.NoError(t, err)
		assert.Equal(t, chargeID, charge.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		uc := newChargeUsecase(new(MockChargeRepository), customers, nil, zap.NewNop())

		_, err := uc.CreateCharge(ctx, &requests.CreateCharge{Amount: floatPtr(10), DoctorID: doctorID.Hex()})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, []string{"customerId", "chargeType", "dueDate"}, customErr.Fields)
	})

	t.Run("Another Doctor's Customer", func(t *testing.T) {
		repo := new(MockChargeRepository)
		uc := newChargeUsecase(repo, customers, nil, zap.NewNop())

		_, err := uc.CreateCharge(ctx, &requests.CreateCharge{
			CustomerID: strPtr(customers.customer.ID.Hex()),
			Amount:     floatPtr(300),
			ChargeType: strPtr(constvars.PaymentTypeMonthly),
			DueDate:    strPtr("2024-08-01"),
			DoctorID:   primitive.NewObjectID().Hex(),
		})

		assert.Equal(t, 404, statusOf(t, err))
		repo.AssertNotCalled(t, "CreateCharge", mock.Anything, mock.Anything)
	})
}

func TestChargeUsecase_UpdateChargeStatus(t *testing.T) {
	ctx := context.Background()
	doctorID := primitive.NewObjectID()
	customers := &fakeCustomerRepository{customer: models.Customer{ID: primitive.NewObjectID(), DoctorID: doctorID}}
	charge := &models.Charge{ID: primitive.NewObjectID(), CustomerID: customers.customer.ID, Status: constvars.ChargeStatusPending}

	t.Run("Marks Overdue", func(t *testing.T) {
		repo := new(MockChargeRepository)
		repo.On("FindByID", mock.Anything, charge.ID.Hex()).Return(charge, nil)
		repo.On("UpdateStatus", mock.Anything, charge.ID.Hex(), constvars.ChargeStatusOverdue).Return(nil)
		uc := newChargeUsecase(repo, customers, nil, zap.NewNop())

		updated, err := uc.UpdateChargeStatus(ctx, &requests.UpdateChargeStatus{
			ChargeID: charge.ID.Hex(),
			DoctorID: doctorID.Hex(),
			Status:   strPtr(constvars.ChargeStatusOverdue),
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.ChargeStatusOverdue, updated.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Charge", func(t *testing.T) {
		repo := new(MockChargeRepository)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)
		uc := newChargeUsecase(repo, customers, nil, zap.NewNop())

		_, err := uc.UpdateChargeStatus(ctx, &requests.UpdateChargeStatus{
			ChargeID: primitive.NewObjectID().Hex(),
			DoctorID: doctorID.Hex(),
			Status:   strPtr(constvars.ChargeStatusPaid),
		})

		assert.Equal(t, 404, statusOf(t, err))
	})

	t.Run("Status Required", func(t *testing.T) {
		uc := newChargeUsecase(new(MockChargeRepository), customers, nil, zap.NewNop())

		_, err := uc.UpdateChargeStatus(ctx, &requests.UpdateChargeStatus{ChargeID: charge.ID.Hex(), DoctorID: doctorID.Hex()})

		assert.Equal(t, 400, statusOf(t, err))
	})
}

func TestChargeUsecase_DeleteCharge(t *testing.T) {
	doctorID := primitive.NewObjectID()
	customers := &fakeCustomerRepository{customer: models.Customer{ID: primitive.NewObjectID(), DoctorID: doctorID}}
	charge := &models.Charge{ID: primitive.NewObjectID(), CustomerID: customers.customer.ID}
	repo := new(MockChargeRepository)
	repo.On("FindByID", mock.Anything, charge.ID.Hex()).Return(charge, nil)
	repo.On("DeleteByID", mock.Anything, charge.ID.Hex()).Return(nil)
	uc := newChargeUsecase(repo, customers, nil, zap.NewNop())

	err := uc.DeleteCharge(context.Background(), primitive.NewObjectID().Hex(), charge.ID.Hex())
	assert.Equal(t, 404, statusOf(t, err))
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)

	require.NoError(t, uc.DeleteCharge(context.Background(), doctorID.Hex(), charge.ID.Hex()))
	repo.AssertCalled(t, "DeleteByID", mock.Anything, charge.ID.Hex())
}

func TestChargeUsecase_GenerateMonthlyCharges(t *testing.T) {
	billing := new(MockBillingService)
	billing.On("GenerateMonthlyCharges", mock.Anything).Return(&responses.MonthlyChargeRun{Eligible: 3, Created: 3}, nil)
	uc := newChargeUsecase(new(MockChargeRepository), &fakeCustomerRepository{}, billing, zap.NewNop())

	summary, err := uc.GenerateMonthlyCharges(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Created)
	billing.AssertExpectations(t)
}
