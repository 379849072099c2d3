package dto

// Response DTOs for read-only facility reference data.

type FloorResponse struct {
	ID          uint   `json:"id"`
	FloorNumber int    `json:"floor_number"`
	Name        string `json:"name,omitempty"`
}

type RoomResponse struct {
	ID         uint           `json:"id"`
	RoomNumber string         `json:"room_number"`
	Name       string         `json:"name,omitempty"`
	FloorID    uint           `json:"floor_id"`
	Floor      *FloorResponse `json:"floor,omitempty"`
	IsActive   bool           `json:"is_active"`
}

type ReceptionResponse struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	FloorID  uint           `json:"floor_id"`
	Floor    *FloorResponse `json:"floor,omitempty"`
	IsActive bool           `json:"is_active"`
}

type FloorListResponse struct {
	Floors []FloorResponse `json:"floors"`
	Total  int             `json:"total"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

type ReceptionListResponse struct {
	Receptions []ReceptionResponse `json:"receptions"`
	Total      int                 `json:"total"`
}
