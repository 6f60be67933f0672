package doctors

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

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type authUsecase struct {
	DoctorRepository contracts.DoctorRepository
	TokenManager     contracts.TokenManager
	Log              *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	doctorRepository contracts.DoctorRepository,
	tokenManager contracts.TokenManager,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = newAuthUsecase(doctorRepository, tokenManager, logger)
	})
	return authUsecaseInstance
}

func newAuthUsecase(doctorRepository contracts.DoctorRepository, tokenManager contracts.TokenManager, logger *zap.Logger) *authUsecase {
	return &authUsecase{
		DoctorRepository: doctorRepository,
		TokenManager:     tokenManager,
		Log:              logger,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.SignupDoctor) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signup called", zap.String(constvars.LoggingRequestIDKey, requestID))

	missing := utils.VerifyRequiredFields(
		utils.RequiredField{Name: "name", Value: request.Name},
		utils.RequiredField{Name: "email", Value: request.Email},
		utils.RequiredField{Name: "password", Value: request.Password},
	)
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	email := strings.TrimSpace(*request.Email)
	existing, err := uc.DoctorRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(*request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	doctor := &models.Doctor{
		Name:     strings.TrimSpace(*request.Name),
		Email:    email,
		Password: hashedPassword,
	}
	if request.Phone != nil {
		doctor.Phone = *request.Phone
	}
	doctor.SetCreatedAtUpdatedAt()

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID, _ = primitive.ObjectIDFromHex(doctorID)

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return toDoctorResponse(doctor), nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginDoctor) (*responses.LoginDoctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called", zap.String(constvars.LoggingRequestIDKey, requestID))

	missing := utils.VerifyRequiredFields(
		utils.RequiredField{Name: "email", Value: request.Email},
		utils.RequiredField{Name: "password", Value: request.Password},
	)
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, strings.TrimSpace(*request.Email))
	if err != nil {
		return nil, err
	}
	if doctor == nil || !utils.CheckPasswordHash(*request.Password, doctor.Password) {
		uc.Log.Info("authUsecase.Login rejected credentials", zap.String(constvars.LoggingRequestIDKey, requestID))
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token, err := uc.TokenManager.CreateToken(doctor.ID.Hex())
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID.Hex()),
	)
	return &responses.LoginDoctor{Token: token}, nil
}

func (uc *authUsecase) GetProfile(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return toDoctorResponse(doctor), nil
}

func toDoctorResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:    doctor.ID.Hex(),
		Name:  doctor.Name,
		Email: doctor.Email,
		Phone: doctor.Phone,
	}
}
