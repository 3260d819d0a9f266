package request

import (
	"table-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Star and message bounds are enforced by the review domain so the same
// rules apply to every entry point.
type CreateReviewRequest struct {
	RestaurantID uuid.UUID `json:"restaurantId" binding:"required"`
	Stars        *float64  `json:"stars"`
	Message      *string   `json:"message,omitempty"`
}

type UpdateReviewRequest struct {
	Stars   *float64 `json:"stars,omitempty"`
	Message *string  `json:"message,omitempty"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		RestaurantID: r.RestaurantID,
		Stars:        r.Stars,
		Message:      r.Message,
	}
}

func (r UpdateReviewRequest) ToCommand() commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{
		Stars:   r.Stars,
		Message: r.Message,
	}
}
