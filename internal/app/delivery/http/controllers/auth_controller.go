package controllers

import (
	"net/http"
	"practice-service/internal/app/contracts"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SignupDoctor)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AuthController.Signup", requestID, err)
		return
	}

	ctrl.Log.Info("AuthController.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccessMessage, response)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.LoginDoctor)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AuthController.Login", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.AuthUsecase.GetProfile(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AuthController.Me", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}
