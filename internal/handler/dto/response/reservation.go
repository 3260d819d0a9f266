package response

import (
	"time"

	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	DateTime     time.Time `json:"dateTime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   *string                `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	res := &ReservationResponse{}
	_ = copier.Copy(res, v)
	res.DateTime = v.DateTime.UTC()
	return res
}

func FromReservationList(items []*queries.ReservationView, next *queries.Cursor) *ReservationListResponse {
	res := &ReservationListResponse{Reservations: make([]*ReservationResponse, len(items))}
	for i, it := range items {
		res.Reservations[i] = FromReservationView(it)
	}
	res.NextCursor = nextCursor(next)
	return res
}

func nextCursor(next *queries.Cursor) *string {
	if next == nil {
		return nil
	}
	after := next.After
	return &after
}
