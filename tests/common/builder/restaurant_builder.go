//go:build unit || e2e

package builder

import (
	"time"

	"table-booking/internal/domain/restaurant"
	reqdto "table-booking/internal/handler/dto/request"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultTimezone = "Asia/Tokyo"

type RestaurantBuilder struct {
	Name      string
	OpenTime  string
	CloseTime string
	Timezone  string
	CreatedAt time.Time
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		Name:      "Sushi Saito",
		OpenTime:  "10:00",
		CloseTime: "22:00",
		Timezone:  DefaultTimezone,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func (r *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(r)
	return r
}

func (r *RestaurantBuilder) BuildDomain() (*restaurant.Restaurant, error) {
	return restaurant.NewRestaurant(r.Name, r.OpenTime, r.CloseTime, r.Timezone, DefaultTimezone, r.CreatedAt)
}

func (r *RestaurantBuilder) BuildSnapshot() *shared.RestaurantSnapshot {
	return &shared.RestaurantSnapshot{
		ID:        uuid.New(),
		Name:      r.Name,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		Timezone:  r.Timezone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
}

func (r *RestaurantBuilder) BuildViewQuery() *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:        uuid.New(),
		Name:      r.Name,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		Timezone:  r.Timezone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
}

func (r *RestaurantBuilder) BuildCreateRequestDTO() reqdto.CreateRestaurantRequest {
	return reqdto.CreateRestaurantRequest{
		Name:      r.Name,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		Timezone:  r.Timezone,
	}
}

func (r *RestaurantBuilder) Overnight() *RestaurantBuilder {
	r.OpenTime = "22:00"
	r.CloseTime = "02:00"
	return r
}
