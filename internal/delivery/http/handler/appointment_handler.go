package handler

import (
	"encoding/json"
	"net/http"

	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/internal/usecase"
	"hms-scheduling/pkg/response"
	"hms-scheduling/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create issues a reception token
// @Summary Create appointment
// @Description Issue a token for a patient with a doctor at a date and time
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	appointment, err := h.appointmentUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
		case usecase.ErrPastDate:
			response.BadRequest(w, "Cannot book an appointment on a past date")
		case usecase.ErrPatientNotFound:
			response.BadRequest(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.BadRequest(w, "Doctor not found")
		case usecase.ErrTimeOutsideSchedule:
			response.BadRequest(w, "Appointment time does not fall inside any schedule slot")
		case usecase.ErrDoctorHasNoRoom:
			response.BadRequest(w, "Doctor has no room assigned")
		case usecase.ErrSlotFullyBooked:
			response.Conflict(w, "Time slot is fully booked")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// Get returns one appointment
// @Summary Get appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentIDFromPath(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to load appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment loaded successfully", appointment)
}

// List returns appointments filtered by doctor, patient, date or status
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param doctor_id query string false "Doctor ID"
// @Param patient_id query string false "Patient ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param status query string false "Status"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AppointmentFilter{
		Date:   r.URL.Query().Get("date"),
		Status: entity.AppointmentStatus(r.URL.Query().Get("status")),
	}
	if v := r.URL.Query().Get("doctor_id"); v != "" {
		doctorID, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(w, "Invalid doctor_id")
			return
		}
		filter.DoctorID = &doctorID
	}
	if v := r.URL.Query().Get("patient_id"); v != "" {
		patientID, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(w, "Invalid patient_id")
			return
		}
		filter.PatientID = &patientID
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments loaded successfully", appointments)
}

// UpdateStatus advances an appointment through its lifecycle
// @Summary Update appointment status
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), actorID, id, &req)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

// Cancel cancels an appointment and frees its capacity slot
// @Summary Cancel appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentIDFromPath(w, r)
	if !ok {
		return
	}

	actorID := actorFromContext(r)
	appointment, err := h.appointmentUsecase.Cancel(r.Context(), actorID, id)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) writeStatusError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrAppointmentCancelled:
		response.BadRequest(w, "Appointment is already cancelled")
	case usecase.ErrInvalidStatusChange:
		response.BadRequest(w, "Invalid status transition")
	default:
		response.InternalServerError(w, "Failed to update appointment")
	}
}

func appointmentIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return uuid.Nil, false
	}
	return id, true
}
