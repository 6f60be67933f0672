package contracts

import (
	"context"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, doctorID string) ([]models.Appointment, error)
	ListAppointmentsByCustomer(ctx context.Context, doctorID, customerID string) ([]models.Appointment, error)
	FindAppointmentByID(ctx context.Context, doctorID, appointmentID string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, doctorID, appointmentID string) error
}

type AppointmentRepository interface {
	FindByCustomerIDs(ctx context.Context, customerIDs []primitive.ObjectID) ([]models.Appointment, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID string) error
}
