package controllers

import (
	"net/http"
	"practice-service/internal/app/contracts"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.ListAppointments(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.List", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, response)
}

func (ctrl *AppointmentController) ListByCustomer(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.AppointmentUsecase.ListAppointmentsByCustomer(ctx, doctorID, customerID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.ListByCustomer", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, response)
}

func (ctrl *AppointmentController) Get(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}
	appointmentID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamAppointmentID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAppointmentByID(ctx, doctorID, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.Get", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateAppointment)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DoctorID = doctorID

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.Create", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID.Hex()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateAppointment)
	if err := decodeBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.DoctorID = doctorID
	appointmentID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamAppointmentID)
	if !ok {
		return
	}
	request.AppointmentID = appointmentID

	ctx, cancel := requestContext(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.Update", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID, ok := doctorFromRequest(ctrl.Log, w, r)
	if !ok {
		return
	}
	appointmentID, ok := urlParamID(ctrl.Log, w, r, constvars.URLParamAppointmentID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := ctrl.AppointmentUsecase.DeleteAppointment(ctx, doctorID, appointmentID); err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.Delete", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}
