package controllers

import (
	"net/http"
	"practice-service/internal/app/contracts"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ChargeController struct {
	Log           *zap.Logger
	ChargeUsecase contracts.ChargeUsecase
}

func NewChargeController(logger *zap.Logger, chargeUsecase contracts.ChargeUsecase) *ChargeController {
	return &ChargeController{
		Log:           logger,
		ChargeUsecase: chargeUsecase,
	}
}

func (ctrl *ChargeController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateCharge)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DoctorID = doctorID

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.ChargeUsecase.CreateCharge(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ChargeController.Create", requestID, err)
		return
	}

	ctrl.Log.Info("ChargeController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChargeIDKey, response.ID.Hex()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateChargeSuccessMessage, response)
}

func (ctrl *ChargeController) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}
	customerID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamCustomerID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.ChargeUsecase.ListChargesByCustomer(ctx, doctorID, customerID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ChargeController.ListByCustomer", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetChargesSuccessMessage, response)
}

func (ctrl *ChargeController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateChargeStatus)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DoctorID = doctorID
	chargeID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamChargeID)
	if !ok {
		return
	}
	request.ChargeID = chargeID

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.ChargeUsecase.UpdateChargeStatus(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ChargeController.UpdateStatus", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateChargeSuccessMessage, response)
}

func (ctrl *ChargeController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}
	chargeID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamChargeID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := ctrl.ChargeUsecase.DeleteCharge(ctx, doctorID, chargeID); err != nil {
		writeUsecaseError(ctrl.Log, w, "ChargeController.Delete", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteChargeSuccessMessage, nil)
}

// GenerateMonthly runs the monthly charge generation on demand. The run can
// touch every monthly customer, so it is not bound by the request timeout.
func (ctrl *ChargeController) GenerateMonthly(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ChargeController.GenerateMonthly called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response, err := ctrl.ChargeUsecase.GenerateMonthlyCharges(r.Context())
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "ChargeController.GenerateMonthly", requestID, err)
		return
	}

	ctrl.Log.Info("ChargeController.GenerateMonthly succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("created", response.Created),
		zap.Int("failed", response.Failed),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateMonthlyChargesSuccessMsg, response)
}
