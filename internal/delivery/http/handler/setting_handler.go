package handler

import (
	"encoding/json"
	"net/http"

	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/usecase"
	"hms-scheduling/pkg/response"
	"hms-scheduling/pkg/validator"
)

type SettingHandler struct {
	settingUsecase usecase.SettingUsecase
	validator      *validator.CustomValidator
}

func NewSettingHandler(settingUsecase usecase.SettingUsecase, validator *validator.CustomValidator) *SettingHandler {
	return &SettingHandler{
		settingUsecase: settingUsecase,
		validator:      validator,
	}
}

// GetRoomMode returns the facility-wide room assignment policy
// @Summary Get room mode
// @Tags Settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/settings/room-mode [get]
func (h *SettingHandler) GetRoomMode(w http.ResponseWriter, r *http.Request) {
	mode, err := h.settingUsecase.GetRoomMode(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load room mode")
		return
	}

	response.Success(w, http.StatusOK, "Room mode loaded successfully", mode)
}

// UpdateRoomMode switches between Fixed and Dynamic room assignment
// @Summary Update room mode
// @Tags Settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoomModeRequest true "Room Mode Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/settings/room-mode [put]
func (h *SettingHandler) UpdateRoomMode(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRoomModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	mode, err := h.settingUsecase.UpdateRoomMode(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRoomMode:
			response.BadRequest(w, "Room mode must be Fixed or Dynamic")
		default:
			response.InternalServerError(w, "Failed to update room mode")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room mode updated successfully", mode)
}
