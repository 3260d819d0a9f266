package request

import (
	"table-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateReservationRequest carries dateTime as text so the server can
// normalise it in the restaurant's zone.
type CreateReservationRequest struct {
	UserID       *uuid.UUID `json:"userId,omitempty"`
	RestaurantID uuid.UUID  `json:"restaurantId" binding:"required"`
	DateTime     string     `json:"dateTime" binding:"required"`
}

type UpdateReservationRequest struct {
	Status   *string `json:"status,omitempty"`
	DateTime *string `json:"dateTime,omitempty"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		DateTime:     r.DateTime,
	}
}

func (r UpdateReservationRequest) ToCommand() commands.UpdateReservationRequest {
	return commands.UpdateReservationRequest{
		Status:   r.Status,
		DateTime: r.DateTime,
	}
}
