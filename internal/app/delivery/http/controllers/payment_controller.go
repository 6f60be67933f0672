package controllers

import (
	"net/http"
	"practice-service/internal/app/contracts"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
	}
}

func (ctrl *PaymentController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := &requests.GetPayments{
		DoctorID: doctorID,
		OrderBy:  r.URL.Query().Get(constvars.URLQueryParamOrderBy),
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.PaymentUsecase.ListPayments(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PaymentController.List", requestID, err)
		return
	}

	ctrl.Log.Info("PaymentController.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentsSuccessMessage, response)
}

func (ctrl *PaymentController) ListByCustomer(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.PaymentUsecase.ListPaymentsByCustomer(ctx, doctorID, customerID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PaymentController.ListByCustomer", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentsSuccessMessage, response)
}

func (ctrl *PaymentController) Get(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}
	paymentID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.PaymentUsecase.FindPaymentByID(ctx, doctorID, paymentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PaymentController.Get", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentSuccessMessage, response)
}

func (ctrl *PaymentController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreatePayment)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DoctorID = doctorID

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.PaymentUsecase.CreatePayment(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PaymentController.Create", requestID, err)
		return
	}

	ctrl.Log.Info("PaymentController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, response.Payment.ID.Hex()),
		zap.String(constvars.LoggingChargeIDKey, response.ReconciledChargeID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePaymentSuccessMessage, response)
}

func (ctrl *PaymentController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdatePayment)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DoctorID = doctorID
	paymentID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}
	request.PaymentID = paymentID

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.PaymentUsecase.UpdatePayment(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PaymentController.Update", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePaymentSuccessMessage, response)
}

func (ctrl *PaymentController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}
	paymentID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamPaymentID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := ctrl.PaymentUsecase.DeletePayment(ctx, doctorID, paymentID); err != nil {
		writeUsecaseError(ctrl.Log, w, "PaymentController.Delete", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePaymentSuccessMessage, nil)
}

// Report accepts optional startDate and endDate query parameters.
func (ctrl *PaymentController) Report(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	request := &requests.FinancialReport{
		DoctorID:  doctorID,
		StartDate: query.Get(constvars.URLQueryParamStartDate),
		EndDate:   query.Get(constvars.URLQueryParamEndDate),
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.PaymentUsecase.GetFinancialReport(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PaymentController.Report", requestID, err)
		return
	}

	ctrl.Log.Info("PaymentController.Report succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response.Rows)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccessMessage, response)
}
