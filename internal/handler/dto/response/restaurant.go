package response

import (
	"time"

	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RestaurantResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	OpenTime      string    `json:"openTime"`
	CloseTime     string    `json:"closeTime"`
	Timezone      string    `json:"timezone"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type RestaurantListResponse struct {
	Restaurants []*RestaurantResponse `json:"restaurants"`
	NextCursor  *string               `json:"nextCursor,omitempty"`
}

type RatingResponse struct {
	RestaurantID  uuid.UUID `json:"restaurantId"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
}

func FromRestaurantView(v *queries.RestaurantView) *RestaurantResponse {
	res := &RestaurantResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromRestaurantList(items []*queries.RestaurantView, next *queries.Cursor) *RestaurantListResponse {
	res := &RestaurantListResponse{Restaurants: make([]*RestaurantResponse, len(items))}
	for i, it := range items {
		res.Restaurants[i] = FromRestaurantView(it)
	}
	res.NextCursor = nextCursor(next)
	return res
}

func FromRatingView(v *queries.RatingView) *RatingResponse {
	res := &RatingResponse{}
	_ = copier.Copy(res, v)
	return res
}
