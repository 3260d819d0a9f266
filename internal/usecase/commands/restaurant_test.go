//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"table-booking/internal/domain/restaurant"
	"table-booking/internal/domain/schedule"
	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/tests/common/builder"
	"table-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantCommands_Create(t *testing.T) {
	admin := user.Actor{ID: uuid.New(), IsAdmin: true}

	testCases := []struct {
		name   string
		actor  user.Actor
		req    commands.CreateRestaurantRequest
		errIs  error
		expect func(t *testing.T, stored queries.RestaurantView)
	}{
		{
			name:  "admin creates with explicit zone",
			actor: admin,
			req:   commands.CreateRestaurantRequest{Name: "Kanda", OpenTime: "11:30", CloseTime: "21:00", Timezone: "Asia/Tokyo"},
			expect: func(t *testing.T, stored queries.RestaurantView) {
				assert.Equal(t, "Kanda", stored.Name)
				assert.Equal(t, "11:30", stored.OpenTime)
				assert.Equal(t, "21:00", stored.CloseTime)
				assert.Equal(t, "Asia/Tokyo", stored.Timezone)
				assert.Zero(t, stored.ReviewCount)
			},
		},
		{
			name:  "zone defaults",
			actor: admin,
			req:   commands.CreateRestaurantRequest{Name: "Bar Trench", OpenTime: "22:00", CloseTime: "02:00"},
			expect: func(t *testing.T, stored queries.RestaurantView) {
				assert.Equal(t, builder.DefaultTimezone, stored.Timezone)
			},
		},
		{
			name:  "non-admin",
			actor: user.Actor{ID: uuid.New()},
			req:   commands.CreateRestaurantRequest{Name: "Kanda", OpenTime: "11:30", CloseTime: "21:00"},
			errIs: commands.ErrAdminOnly,
		},
		{
			name:  "blank name",
			actor: admin,
			req:   commands.CreateRestaurantRequest{Name: "   ", OpenTime: "11:30", CloseTime: "21:00"},
			errIs: restaurant.ErrEmptyName,
		},
		{
			name:  "bad clock",
			actor: admin,
			req:   commands.CreateRestaurantRequest{Name: "Kanda", OpenTime: "25:00", CloseTime: "21:00"},
			errIs: schedule.ErrInvalidClock,
		},
		{
			name:  "unknown zone",
			actor: admin,
			req:   commands.CreateRestaurantRequest{Name: "Kanda", OpenTime: "11:30", CloseTime: "21:00", Timezone: "Mars/Olympus"},
			errIs: schedule.ErrUnknownTimezone,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.New()
			uc := commands.NewRestaurantUseCase(store, clock.NewMockClock(fixedNow), bookingConfig())

			id, err := uc.Create(context.Background(), tc.actor, tc.req)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			stored, ok := store.Restaurant(id)
			require.True(t, ok)
			tc.expect(t, stored)
		})
	}
}

func TestRestaurantCommands_Update(t *testing.T) {
	ctx := context.Background()
	admin := user.Actor{ID: uuid.New(), IsAdmin: true}
	store := memstore.New()
	clk := clock.NewMockClock(fixedNow)
	uc := commands.NewRestaurantUseCase(store, clk, bookingConfig())

	rest, err := builder.NewRestaurantBuilder().BuildDomain()
	require.NoError(t, err)
	id := store.PutRestaurant(rest)

	t.Run("partial update keeps the other fields", func(t *testing.T) {
		clk.Add(time.Hour)
		require.NoError(t, uc.Update(ctx, admin, id, commands.UpdateRestaurantRequest{CloseTime: ptr("23:30")}))

		stored, _ := store.Restaurant(id)
		assert.Equal(t, "Sushi Saito", stored.Name)
		assert.Equal(t, "10:00", stored.OpenTime)
		assert.Equal(t, "23:30", stored.CloseTime)
		assert.Equal(t, clk.Now(), stored.UpdatedAt)
	})

	t.Run("invalid field leaves the row untouched", func(t *testing.T) {
		before, _ := store.Restaurant(id)
		err := uc.Update(ctx, admin, id, commands.UpdateRestaurantRequest{Name: ptr("Renamed"), OpenTime: ptr("9am")})
		require.ErrorIs(t, err, schedule.ErrInvalidClock)

		after, _ := store.Restaurant(id)
		assert.Equal(t, before, after)
	})

	t.Run("rejections", func(t *testing.T) {
		require.ErrorIs(t, uc.Update(ctx, user.Actor{ID: uuid.New()}, id, commands.UpdateRestaurantRequest{Name: ptr("x")}), commands.ErrAdminOnly)
		require.ErrorIs(t, uc.Update(ctx, admin, id, commands.UpdateRestaurantRequest{}), commands.ErrEmptyChange)
		require.ErrorIs(t, uc.Update(ctx, admin, uuid.New(), commands.UpdateRestaurantRequest{Name: ptr("x")}), commands.ErrRestaurantNotFound)
	})
}
