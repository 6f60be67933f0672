package contracts

import (
	"context"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChargeUsecase interface {
	CreateCharge(ctx context.Context, request *requests.CreateCharge) (*models.Charge, error)
	ListChargesByCustomer(ctx context.Context, doctorID, customerID string) ([]models.Charge, error)
	UpdateChargeStatus(ctx context.Context, request *requests.UpdateChargeStatus) (*models.Charge, error)
	DeleteCharge(ctx context.Context, doctorID, chargeID string) error
	GenerateMonthlyCharges(ctx context.Context) (*responses.MonthlyChargeRun, error)
}

type ChargeRepository interface {
	CreateCharge(ctx context.Context, charge *models.Charge) (chargeID string, err error)
	FindByID(ctx context.Context, chargeID string) (*models.Charge, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]models.Charge, error)
	FindPendingByCustomerID(ctx context.Context, customerID string) ([]models.Charge, error)
	FindByCustomerIDsInRange(ctx context.Context, customerIDs []primitive.ObjectID, start, end *time.Time) ([]models.Charge, error)
	UpdateStatus(ctx context.Context, chargeID, status string) error
	DeleteByID(ctx context.Context, chargeID string) error
}
