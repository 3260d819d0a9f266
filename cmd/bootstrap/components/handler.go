package components

import (
	"table-booking/internal/handler"
	"table-booking/internal/handler/api"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRestaurantHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		middleware.NewAuthMiddleware,
		func(restaurant *api.RestaurantHandler, reservation *api.ReservationHandler, review *api.ReviewHandler) handler.Handlers {
			return handler.Handlers{
				Restaurant:  restaurant,
				Reservation: reservation,
				Review:      review,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
