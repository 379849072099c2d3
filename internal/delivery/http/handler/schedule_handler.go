package handler

import (
	"encoding/json"
	"net/http"

	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/usecase"
	"hms-scheduling/pkg/response"
	"hms-scheduling/pkg/validator"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.DoctorScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.DoctorScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// GetWeek returns the doctor's full weekly schedule grouped by day
// @Summary Get weekly schedule
// @Tags Schedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/schedule [get]
func (h *ScheduleHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := doctorIDFromPath(w, r)
	if !ok {
		return
	}

	week, err := h.scheduleUsecase.GetWeek(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to load schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule loaded successfully", week)
}

// ReplaceWeek saves the doctor's entire week in one bulk replace
// @Summary Replace weekly schedule
// @Description Replaces every slot of the doctor with the submitted list
// @Tags Schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.ReplaceWeekRequest true "Replace Week Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/schedule [put]
func (h *ScheduleHandler) ReplaceWeek(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := doctorIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.ReplaceWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	week, err := h.scheduleUsecase.ReplaceWeek(r.Context(), actorID, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidSlotTimes:
			response.BadRequest(w, "Slot end time must be after start time")
		case usecase.ErrInvalidBreak:
			response.BadRequest(w, "Break must lie within the slot")
		case usecase.ErrDuplicateSlotOrder:
			response.BadRequest(w, "Slot order must be unique within a day")
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Schedule slot not found")
		default:
			response.InternalServerError(w, "Failed to save schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule saved successfully", week)
}

// AddSlot appends a draft slot to one day
// @Summary Add schedule slot
// @Tags Schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.AddSlotRequest true "Add Slot Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/schedule/slots [post]
func (h *ScheduleHandler) AddSlot(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := doctorIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.AddSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	week, err := h.scheduleUsecase.AddSlot(r.Context(), actorID, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to add slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot added successfully", week)
}

// UpdateSlot patches fields of one slot by id or by (day, order) for drafts
// @Summary Update schedule slot
// @Tags Schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.UpdateSlotRequest true "Update Slot Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/schedule/slots [patch]
func (h *ScheduleHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := doctorIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	week, err := h.scheduleUsecase.UpdateSlot(r.Context(), actorID, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Schedule slot not found")
		case usecase.ErrInvalidSlotTimes:
			response.BadRequest(w, "Slot end time must be after start time")
		case usecase.ErrInvalidBreak:
			response.BadRequest(w, "Break must lie within the slot")
		case usecase.ErrDuplicateSlotOrder:
			response.BadRequest(w, "Slot order must be unique within a day")
		default:
			response.InternalServerError(w, "Failed to update slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot updated successfully", week)
}

// RemoveSlot deletes one slot by id or by (day, order) for drafts
// @Summary Remove schedule slot
// @Tags Schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param request body dto.RemoveSlotRequest true "Remove Slot Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id}/schedule/slots [delete]
func (h *ScheduleHandler) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := doctorIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.RemoveSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	week, err := h.scheduleUsecase.RemoveSlot(r.Context(), actorID, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Schedule slot not found")
		default:
			response.InternalServerError(w, "Failed to remove slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot removed successfully", week)
}
