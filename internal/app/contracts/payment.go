package contracts

import (
	"context"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentUsecase interface {
	ListPayments(ctx context.Context, request *requests.GetPayments) ([]models.Payment, error)
	ListPaymentsByCustomer(ctx context.Context, doctorID, customerID string) ([]models.Payment, error)
	FindPaymentByID(ctx context.Context, doctorID, paymentID string) (*models.Payment, error)
	CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.CreatePayment, error)
	UpdatePayment(ctx context.Context, request *requests.UpdatePayment) (*models.Payment, error)
	DeletePayment(ctx context.Context, doctorID, paymentID string) error
	GetFinancialReport(ctx context.Context, request *requests.FinancialReport) (*responses.FinancialReport, error)
}

type PaymentRepository interface {
	FindByCustomerIDs(ctx context.Context, customerIDs []primitive.ObjectID, sortDirection int) ([]models.Payment, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]models.Payment, error)
	FindPaidByCustomerIDsInRange(ctx context.Context, customerIDs []primitive.ObjectID, start, end *time.Time) ([]models.Payment, error)
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	CreatePayment(ctx context.Context, payment *models.Payment) (paymentID string, err error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
	DeleteByID(ctx context.Context, paymentID string) error
}
