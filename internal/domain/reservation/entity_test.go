//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"table-booking/internal/domain/reservation"
	"table-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("starts booked with second precision", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		dt := time.Date(2025, 3, 1, 13, 0, 5, 999, time.UTC)
		actual, err := reservation.NewReservation(b.UserID, b.RestaurantID, dt, b.CreatedAt)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusBooked, actual.Status())
		assert.Equal(t, time.Date(2025, 3, 1, 13, 0, 5, 0, time.UTC), actual.DateTime())
	})

	t.Run("required fields", func(t *testing.T) {
		now := time.Now()
		_, err := reservation.NewReservation(uuid.Nil, uuid.New(), now, now)
		assert.ErrorIs(t, err, reservation.ErrMissingOwner)
		_, err = reservation.NewReservation(uuid.New(), uuid.Nil, now, now)
		assert.ErrorIs(t, err, reservation.ErrMissingRestaurant)
		_, err = reservation.NewReservation(uuid.New(), uuid.New(), time.Time{}, now)
		assert.ErrorIs(t, err, reservation.ErrMissingDateTime)
	})
}

func TestReservation_Apply(t *testing.T) {
	policy := reservation.NewTransitionPolicy(false)

	t.Run("completed gate uses the new date-time", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res := b.BuildDomain()
		now := b.DateTime.Add(-time.Hour)

		completed := reservation.StatusCompleted
		earlier := now.Add(-time.Minute)
		err := res.Apply(policy, reservation.Change{Status: &completed, DateTime: &earlier}, false, now)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCompleted, res.Status())
		assert.Equal(t, earlier.Truncate(time.Second), res.DateTime())
	})

	t.Run("rejection leaves the reservation untouched", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res := b.BuildDomain()
		now := b.DateTime.Add(-2 * time.Hour)

		completed := reservation.StatusCompleted
		later := b.DateTime.Add(24 * time.Hour)
		err := res.Apply(policy, reservation.Change{Status: &completed, DateTime: &later}, false, now)
		require.ErrorIs(t, err, reservation.ErrCompletedTooEarly)
		assert.Equal(t, reservation.StatusBooked, res.Status())
		assert.Equal(t, b.DateTime, res.DateTime())
	})

	t.Run("date-time only edit on a terminal reservation", func(t *testing.T) {
		res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusCancelled
		}).BuildDomain()

		moved := res.DateTime().Add(time.Hour)
		err := res.Apply(policy, reservation.Change{DateTime: &moved}, false, time.Now())
		require.NoError(t, err)
		assert.Equal(t, moved, res.DateTime())
	})
}
