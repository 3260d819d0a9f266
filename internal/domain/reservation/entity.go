package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id           uuid.UUID
	userID       uuid.UUID
	restaurantID uuid.UUID
	dateTime     time.Time
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReservation builds a booked reservation. Admission and working hours
// are checked by the caller before this is persisted.
func NewReservation(userID, restaurantID uuid.UUID, dateTime, now time.Time) (*Reservation, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if restaurantID == uuid.Nil {
		return nil, ErrMissingRestaurant
	}
	if dateTime.IsZero() {
		return nil, ErrMissingDateTime
	}
	return &Reservation{
		id:           uuid.New(),
		userID:       userID,
		restaurantID: restaurantID,
		dateTime:     dateTime.UTC().Truncate(time.Second),
		status:       StatusBooked,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReservation(
	id, userID, restaurantID uuid.UUID,
	dateTime time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		userID:       userID,
		restaurantID: restaurantID,
		dateTime:     dateTime,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Change is a requested edit; nil fields stay as they are.
type Change struct {
	Status   *Status
	DateTime *time.Time
}

func (c Change) IsEmpty() bool {
	return c.Status == nil && c.DateTime == nil
}

// Apply validates the whole change against policy and only then mutates the
// reservation, so a rejection leaves it untouched.
func (r *Reservation) Apply(policy TransitionPolicy, change Change, actorIsAdmin bool, now time.Time) error {
	nextStatus := r.status
	if change.Status != nil {
		nextStatus = *change.Status
	}
	nextDateTime := r.dateTime
	if change.DateTime != nil {
		nextDateTime = change.DateTime.UTC().Truncate(time.Second)
	}

	err := policy.Validate(TransitionInput{
		Current:      r.status,
		Requested:    nextStatus,
		Scheduled:    nextDateTime,
		Now:          now,
		ActorIsAdmin: actorIsAdmin,
	})
	if err != nil {
		return err
	}

	r.status = nextStatus
	r.dateTime = nextDateTime
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) RestaurantID() uuid.UUID { return r.restaurantID }
func (r *Reservation) DateTime() time.Time     { return r.dateTime }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
