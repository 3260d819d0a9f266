//go:build unit

package restaurant_test

import (
	"testing"
	"time"

	"table-booking/internal/domain/restaurant"
	"table-booking/internal/domain/schedule"
	"table-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RestaurantBuilder)
	errIs  error
}

func TestRestaurant(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRestaurantBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Sushi Saito", actual.Name())
		assert.Equal(t, "10:00 - 22:00", actual.Window().String())
		assert.Equal(t, "Asia/Tokyo", actual.Timezone())
		assert.Zero(t, actual.Aggregate().ReviewCount)
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "overnight window", mutate: func(b *builder.RestaurantBuilder) { b.OpenTime, b.CloseTime = "20:00", "03:00" }},
			{name: "window with seconds", mutate: func(b *builder.RestaurantBuilder) { b.OpenTime = "10:00:30" }},
			{name: "empty timezone takes default", mutate: func(b *builder.RestaurantBuilder) { b.Timezone = "" }},
			{name: "empty name", mutate: func(b *builder.RestaurantBuilder) { b.Name = "  " }, errIs: restaurant.ErrEmptyName},
			{name: "bad open time", mutate: func(b *builder.RestaurantBuilder) { b.OpenTime = "7am" }, errIs: schedule.ErrInvalidClock},
			{name: "bad close time", mutate: func(b *builder.RestaurantBuilder) { b.CloseTime = "24:00" }, errIs: schedule.ErrInvalidClock},
			{name: "unknown timezone", mutate: func(b *builder.RestaurantBuilder) { b.Timezone = "Europe/Atlantis" }, errIs: schedule.ErrUnknownTimezone},
			{name: "server zone", mutate: func(b *builder.RestaurantBuilder) { b.Timezone = "Local" }, errIs: schedule.ErrUnknownTimezone},
		})
	})

	t.Run("update keeps previous state on error", func(t *testing.T) {
		r, err := builder.NewRestaurantBuilder().BuildDomain()
		require.NoError(t, err)

		err = r.Update("New Name", "bad", "22:00", "", "Asia/Tokyo", time.Now())
		require.ErrorIs(t, err, schedule.ErrInvalidClock)
		assert.Equal(t, "Sushi Saito", r.Name())

		require.NoError(t, r.Update("New Name", "18:00", "02:00", "UTC", "Asia/Tokyo", time.Now()))
		assert.Equal(t, "New Name", r.Name())
		assert.True(t, r.Window().Overnight())
		assert.Equal(t, "UTC", r.Timezone())
	})

	t.Run("open check follows the restaurant zone", func(t *testing.T) {
		r, err := builder.NewRestaurantBuilder().BuildDomain()
		require.NoError(t, err)

		// 23:00 Tokyo
		err = r.CheckOpenAt(time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC))
		require.ErrorIs(t, err, schedule.ErrOutsideHours)
		// 12:00 Tokyo
		assert.NoError(t, r.CheckOpenAt(time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC)))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRestaurantBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
