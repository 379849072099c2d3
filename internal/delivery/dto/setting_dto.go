package dto

// RoomModeResponse reports the facility-wide room assignment policy.
type RoomModeResponse struct {
	Mode string `json:"mode"`
}

type UpdateRoomModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=Fixed Dynamic"`
}
