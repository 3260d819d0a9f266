package request

import (
	"table-booking/internal/usecase/commands"
)

type CreateRestaurantRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	OpenTime  string `json:"openTime" binding:"required"`
	CloseTime string `json:"closeTime" binding:"required"`
	Timezone  string `json:"timezone,omitempty"`
}

type UpdateRestaurantRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,max=200"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	Timezone  *string `json:"timezone,omitempty"`
}

func (r CreateRestaurantRequest) ToCommand() commands.CreateRestaurantRequest {
	return commands.CreateRestaurantRequest{
		Name:      r.Name,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		Timezone:  r.Timezone,
	}
}

func (r UpdateRestaurantRequest) ToCommand() commands.UpdateRestaurantRequest {
	return commands.UpdateRestaurantRequest{
		Name:      r.Name,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		Timezone:  r.Timezone,
	}
}
