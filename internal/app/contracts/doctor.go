package contracts

import (
	"context"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.SignupDoctor) (*responses.Doctor, error)
	Login(ctx context.Context, request *requests.LoginDoctor) (*responses.LoginDoctor, error)
	GetProfile(ctx context.Context, doctorID string) (*responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}
