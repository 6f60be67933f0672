package controllers

import (
	"io"
	"net/http"
	"practice-service/internal/app/contracts"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const importMaxMemory = 8 << 20

type CustomerController struct {
	Log             *zap.Logger
	CustomerUsecase contracts.CustomerUsecase
}

func NewCustomerController(logger *zap.Logger, customerUsecase contracts.CustomerUsecase) *CustomerController {
	return &CustomerController{
		Log:             logger,
		CustomerUsecase: customerUsecase,
	}
}

func (ctrl *CustomerController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := &requests.GetCustomers{
		DoctorID: doctorID,
		OrderBy:  r.URL.Query().Get(constvars.URLQueryParamOrderBy),
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.CustomerUsecase.ListCustomers(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CustomerController.List", requestID, err)
		return
	}

	ctrl.Log.Info("CustomerController.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCustomersSuccessMessage, response)
}

func (ctrl *CustomerController) Birthdays(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.CustomerUsecase.ListBirthdays(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CustomerController.Birthdays", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBirthdaysSuccessMessage, response)
}

func (ctrl *CustomerController) Get(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.CustomerUsecase.FindCustomerByID(ctx, doctorID, customerID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CustomerController.Get", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCustomerSuccessMessage, response)
}

func (ctrl *CustomerController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateCustomer)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DoctorID = doctorID

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.CustomerUsecase.CreateCustomer(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CustomerController.Create", requestID, err)
		return
	}

	ctrl.Log.Info("CustomerController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, response.ID.Hex()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCustomerSuccessMessage, response)
}

func (ctrl *CustomerController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateCustomer)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DoctorID = doctorID
	customerID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamCustomerID)
	if !ok {
		return
	}
	request.CustomerID = customerID

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.CustomerUsecase.UpdateCustomer(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CustomerController.Update", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCustomerSuccessMessage, response)
}

func (ctrl *CustomerController) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := ctrl.CustomerUsecase.DeleteCustomer(ctx, doctorID, customerID); err != nil {
		writeUsecaseError(ctrl.Log, w, "CustomerController.Delete", requestID, err)
		return
	}

	ctrl.Log.Info("CustomerController.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCustomerSuccessMessage, nil)
}

// Import accepts a multipart upload with the spreadsheet under the "file" field.
func (ctrl *CustomerController) Import(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(importMaxMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFileImport)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImportFileMissing(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.ImportCustomers{
		DoctorID: doctorID,
		FileName: header.Filename,
		Content:  content,
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.CustomerUsecase.ImportCustomers(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "CustomerController.Import", requestID, err)
		return
	}

	ctrl.Log.Info("CustomerController.Import succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("imported", response.Imported),
		zap.Int("skipped", response.Skipped),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ImportCustomerSuccessMessage, response)
}
