package components

import (
	"table-booking/internal/domain/schedule"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/rating"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingConfig,
	rating.NewRecalculator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRestaurantUseCase,
		commands.NewReservationUseCase,
		commands.NewReviewUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRestaurantQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewBookingConfig refuses to start when the default timezone cannot be
// resolved the way a restaurant's own timezone would be.
func NewBookingConfig(cfg config.Config) (config.BookingConfig, error) {
	if _, err := schedule.LoadZone(cfg.Booking.DefaultTimezone); err != nil {
		return config.BookingConfig{}, errs.Wrap(err, "BOOKING_DEFAULT_TIMEZONE")
	}
	return cfg.Booking, nil
}
