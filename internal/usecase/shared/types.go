package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type RestaurantSnapshot struct {
	ID        uuid.UUID
	Name      string
	OpenTime  string
	CloseTime string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReservationSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	DateTime     time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ReviewSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	Stars        float64
	Message      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
