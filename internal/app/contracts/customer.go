package contracts

import (
	"context"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerUsecase interface {
	ListCustomers(ctx context.Context, request *requests.GetCustomers) ([]models.Customer, error)
	FindCustomerByID(ctx context.Context, doctorID, customerID string) (*models.Customer, error)
	ListBirthdays(ctx context.Context, doctorID string) ([]models.CustomerBirthday, error)
	CreateCustomer(ctx context.Context, request *requests.CreateCustomer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, request *requests.UpdateCustomer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, doctorID, customerID string) error
	ImportCustomers(ctx context.Context, request *requests.ImportCustomers) (*responses.ImportCustomers, error)
}

type CustomerRepository interface {
	FindByDoctorID(ctx context.Context, doctorID string, sortDirection int) ([]models.Customer, error)
	FindIDsByDoctorID(ctx context.Context, doctorID string) ([]primitive.ObjectID, error)
	FindBirthdaysByDoctorID(ctx context.Context, doctorID string) ([]models.CustomerBirthday, error)
	FindByPaymentType(ctx context.Context, paymentType string) ([]models.Customer, error)
	FindByID(ctx context.Context, customerID string) (*models.Customer, error)
	FindByIDAndDoctorID(ctx context.Context, customerID, doctorID string) (*models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindExistingEmails(ctx context.Context, emails []string) (map[string]bool, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) (customerID string, err error)
	CreateCustomers(ctx context.Context, customers []models.Customer) (inserted int, err error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	IncrementBalance(ctx context.Context, customerID string, amount float64) error
	DeleteByID(ctx context.Context, customerID string) (deleted bool, err error)
}
