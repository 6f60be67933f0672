package doctors

import (
	"context"
	"errors"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) CreateToken(doctorID string) (string, error) {
	args := m.Called(doctorID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) VerifyToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func strPtr(s string) *string { return &s }

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func TestAuthUsecaseSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Fields", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		uc := newAuthUsecase(repo, new(MockTokenManager), zap.NewNop())

		_, err := uc.Signup(ctx, &requests.SignupDoctor{Name: strPtr("Ana")})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, []string{"email", "password"}, customErr.Fields)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "ana@clinic.com").Return(&models.Doctor{Email: "ana@clinic.com"}, nil)
		uc := newAuthUsecase(repo, new(MockTokenManager), zap.NewNop())

		_, err := uc.Signup(ctx, &requests.SignupDoctor{
			Name:     strPtr("Ana"),
			Email:    strPtr("ana@clinic.com"),
			Password: strPtr("secret1"),
		})

		assert.Equal(t, 400, statusOf(t, err))
		repo.AssertNotCalled(t, "CreateDoctor", mock.Anything, mock.Anything)
	})

	t.Run("Stores Hashed Password", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		id := primitive.NewObjectID()
		repo.On("FindByEmail", ctx, "ana@clinic.com").Return(nil, nil)
		repo.On("CreateDoctor", ctx, mock.MatchedBy(func(doctor *models.Doctor) bool {
			return doctor.Password != "secret1" && utils.CheckPasswordHash("secret1", doctor.Password)
		})).Return(id.Hex(), nil)
		uc := newAuthUsecase(repo, new(MockTokenManager), zap.NewNop())

		doctor, err := uc.Signup(ctx, &requests.SignupDoctor{
			Name:     strPtr("Ana"),
			Email:    strPtr("ana@clinic.com"),
			Password: strPtr("secret1"),
		})

		require.NoError(t, err)
		assert.Equal(t, id.Hex(), doctor.ID)
		repo.AssertExpectations(t)
	})
}

func TestAuthUsecaseLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	doctor := &models.Doctor{ID: primitive.NewObjectID(), Email: "ana@clinic.com", Password: hash}

	t.Run("Valid Credentials", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		tokens := new(MockTokenManager)
		repo.On("FindByEmail", ctx, "ana@clinic.com").Return(doctor, nil)
		tokens.On("CreateToken", doctor.ID.Hex()).Return("signed-token", nil)
		uc := newAuthUsecase(repo, tokens, zap.NewNop())

		response, err := uc.Login(ctx, &requests.LoginDoctor{Email: strPtr("ana@clinic.com"), Password: strPtr("secret1")})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", response.Token)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		tokens := new(MockTokenManager)
		repo.On("FindByEmail", ctx, "ana@clinic.com").Return(doctor, nil)
		uc := newAuthUsecase(repo, tokens, zap.NewNop())

		_, err := uc.Login(ctx, &requests.LoginDoctor{Email: strPtr("ana@clinic.com"), Password: strPtr("wrong")})

		assert.Equal(t, 401, statusOf(t, err))
		tokens.AssertNotCalled(t, "CreateToken", mock.Anything)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("FindByEmail", ctx, "nobody@clinic.com").Return(nil, nil)
		uc := newAuthUsecase(repo, new(MockTokenManager), zap.NewNop())

		_, err := uc.Login(ctx, &requests.LoginDoctor{Email: strPtr("nobody@clinic.com"), Password: strPtr("secret1")})

		assert.Equal(t, 401, statusOf(t, err))
	})
}

func TestAuthUsecaseGetProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(MockDoctorRepository)
	repo.On("FindByID", ctx, "65f1c2a3b4d5e6f708192a3b").Return(nil, nil)
	uc := newAuthUsecase(repo, new(MockTokenManager), zap.NewNop())

	_, err := uc.GetProfile(ctx, "65f1c2a3b4d5e6f708192a3b")

	assert.Equal(t, 404, statusOf(t, err))
}
