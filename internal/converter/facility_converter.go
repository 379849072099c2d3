package converter

import (
	"hms-scheduling/internal/delivery/dto"
	"hms-scheduling/internal/domain/entity"
)

// FloorToResponse converts a Floor entity to its DTO
func FloorToResponse(f *entity.Floor) *dto.FloorResponse {
	if f == nil {
		return nil
	}
	return &dto.FloorResponse{
		ID:          f.ID,
		FloorNumber: f.FloorNumber,
		Name:        f.Name,
	}
}

// RoomToResponse converts a Room entity to its DTO
func RoomToResponse(r *entity.Room) *dto.RoomResponse {
	if r == nil {
		return nil
	}
	resp := &dto.RoomResponse{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		Name:       r.Name,
		FloorID:    r.FloorID,
		IsActive:   r.IsActive == nil || *r.IsActive,
	}
	if r.Floor.ID != 0 {
		resp.Floor = FloorToResponse(&r.Floor)
	}
	return resp
}

// ReceptionToResponse converts a Reception entity to its DTO
func ReceptionToResponse(r *entity.Reception) *dto.ReceptionResponse {
	if r == nil {
		return nil
	}
	resp := &dto.ReceptionResponse{
		ID:       r.ID,
		Name:     r.Name,
		FloorID:  r.FloorID,
		IsActive: r.IsActive == nil || *r.IsActive,
	}
	if r.Floor.ID != 0 {
		resp.Floor = FloorToResponse(&r.Floor)
	}
	return resp
}
