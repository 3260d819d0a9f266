package response

import (
	"time"

	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Stars        float64   `json:"stars"`
	Message      *string   `json:"message,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReviewListResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	res := &ReviewResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromReviewList(items []*queries.ReviewView, next *queries.Cursor) *ReviewListResponse {
	res := &ReviewListResponse{Reviews: make([]*ReviewResponse, len(items))}
	for i, it := range items {
		res.Reviews[i] = FromReviewView(it)
	}
	res.NextCursor = nextCursor(next)
	return res
}
