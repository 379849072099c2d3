package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
	"hms-scheduling/internal/usecase"
	"hms-scheduling/pkg/response"
	"hms-scheduling/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SlotRoomHandler struct {
	slotRoomUsecase usecase.SlotRoomUsecase
	validator       *validator.CustomValidator
}

func NewSlotRoomHandler(slotRoomUsecase usecase.SlotRoomUsecase, validator *validator.CustomValidator) *SlotRoomHandler {
	return &SlotRoomHandler{
		slotRoomUsecase: slotRoomUsecase,
		validator:       validator,
	}
}

// Create assigns a room to one (doctor, slot, date)
// @Summary Create slot room assignment
// @Tags SlotRooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSlotRoomRequest true "Create Slot Room Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/slot-rooms [post]
func (h *SlotRoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	assignment, err := h.slotRoomUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		h.writeSlotRoomError(w, err, "Failed to create assignment")
		return
	}

	response.Success(w, http.StatusCreated, "Assignment created successfully", assignment)
}

// BulkCreate fans one assignment out across a date range
// @Summary Bulk create slot room assignments
// @Description One row per date in the inclusive [date_from, date_to] range
// @Tags SlotRooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BulkCreateSlotRoomRequest true "Bulk Create Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/slot-rooms/bulk [post]
func (h *SlotRoomHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkCreateSlotRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	result, err := h.slotRoomUsecase.BulkCreate(r.Context(), actorID, &req)
	if err != nil {
		h.writeSlotRoomError(w, err, "Failed to bulk create assignments")
		return
	}

	response.Success(w, http.StatusCreated, "Assignments created successfully", result)
}

// List returns assignments filtered by doctor, schedule or date
// @Summary List slot room assignments
// @Tags SlotRooms
// @Security BearerAuth
// @Produce json
// @Param doctor_id query string false "Doctor ID"
// @Param schedule_id query int false "Schedule ID"
// @Param date query string false "Assignment date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /admin/slot-rooms [get]
func (h *SlotRoomHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &entity.SlotRoomFilter{
		AssignmentDate: r.URL.Query().Get("date"),
	}
	if v := r.URL.Query().Get("doctor_id"); v != "" {
		doctorID, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(w, "Invalid doctor_id")
			return
		}
		filter.DoctorID = &doctorID
	}
	if v := r.URL.Query().Get("schedule_id"); v != "" {
		scheduleID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			response.BadRequest(w, "Invalid schedule_id")
			return
		}
		id := uint(scheduleID)
		filter.ScheduleID = &id
	}

	assignments, err := h.slotRoomUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list assignments")
		return
	}

	response.Success(w, http.StatusOK, "Assignments loaded successfully", assignments)
}

// Update changes the room, reception or active flag of an assignment
// @Summary Update slot room assignment
// @Tags SlotRooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateSlotRoomRequest true "Update Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/slot-rooms/{id} [put]
func (h *SlotRoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := slotRoomIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdateSlotRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	assignment, err := h.slotRoomUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		h.writeSlotRoomError(w, err, "Failed to update assignment")
		return
	}

	response.Success(w, http.StatusOK, "Assignment updated successfully", assignment)
}

// Delete removes an assignment
// @Summary Delete slot room assignment
// @Tags SlotRooms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/slot-rooms/{id} [delete]
func (h *SlotRoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := slotRoomIDFromPath(w, r)
	if !ok {
		return
	}

	actorID := actorFromContext(r)
	if err := h.slotRoomUsecase.Delete(r.Context(), actorID, id); err != nil {
		h.writeSlotRoomError(w, err, "Failed to delete assignment")
		return
	}

	response.Success(w, http.StatusOK, "Assignment deleted successfully", nil)
}

func (h *SlotRoomHandler) writeSlotRoomError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrSlotRoomNotFound:
		response.NotFound(w, "Assignment not found")
	case usecase.ErrScheduleSlotNotFound:
		response.BadRequest(w, "Schedule slot not found")
	case usecase.ErrScheduleNotOwned:
		response.BadRequest(w, "Schedule slot does not belong to the doctor")
	case usecase.ErrRoomNotFound:
		response.BadRequest(w, "Room not found")
	case usecase.ErrInvalidDate:
		response.BadRequest(w, "Invalid date, use YYYY-MM-DD")
	case usecase.ErrInvalidDateRange:
		response.BadRequest(w, "date_from must not be after date_to")
	case usecase.ErrDuplicateAssignment:
		response.Conflict(w, "Assignment already exists for this slot and date")
	default:
		response.InternalServerError(w, fallback)
	}
}

func slotRoomIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.BadRequest(w, "Invalid assignment ID")
		return 0, false
	}
	return uint(id), true
}
