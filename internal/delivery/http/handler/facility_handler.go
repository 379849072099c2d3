package handler

import (
	"net/http"
	"strconv"

	"hms-scheduling/internal/usecase"
	"hms-scheduling/pkg/response"

	"github.com/gorilla/mux"
)

type FacilityHandler struct {
	facilityUsecase usecase.FacilityUsecase
}

func NewFacilityHandler(facilityUsecase usecase.FacilityUsecase) *FacilityHandler {
	return &FacilityHandler{facilityUsecase: facilityUsecase}
}

// ListFloors returns all floors
// @Summary List floors
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /floors [get]
func (h *FacilityHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	floors, err := h.facilityUsecase.ListFloors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list floors")
		return
	}

	response.Success(w, http.StatusOK, "Floors loaded successfully", floors)
}

// ListRooms returns all rooms
// @Summary List rooms
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /rooms [get]
func (h *FacilityHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.facilityUsecase.ListRooms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms loaded successfully", rooms)
}

// ListReceptions returns all reception desks
// @Summary List receptions
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /receptions [get]
func (h *FacilityHandler) ListReceptions(w http.ResponseWriter, r *http.Request) {
	receptions, err := h.facilityUsecase.ListReceptions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list receptions")
		return
	}

	response.Success(w, http.StatusOK, "Receptions loaded successfully", receptions)
}

// SuggestReception returns the reception desk for a room
// @Summary Suggest reception for room
// @Description The first active reception desk on the room's floor
// @Tags Facility
// @Security BearerAuth
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rooms/{id}/reception [get]
func (h *FacilityHandler) SuggestReception(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	reception, err := h.facilityUsecase.SuggestReception(r.Context(), uint(id))
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrNoReceptionOnFloor:
			response.NotFound(w, "No reception desk on the room's floor")
		default:
			response.InternalServerError(w, "Failed to suggest reception")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reception suggested successfully", reception)
}
