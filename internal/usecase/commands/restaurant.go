package commands

import (
	"context"

	"table-booking/internal/domain/rating"
	"table-booking/internal/domain/restaurant"
	"table-booking/internal/domain/schedule"
	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/patch"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRestaurantRequest struct {
	Name      string
	OpenTime  string
	CloseTime string
	Timezone  string
}

// UpdateRestaurantRequest is a partial update; nil fields keep their value.
type UpdateRestaurantRequest struct {
	Name      *string
	OpenTime  *string
	CloseTime *string
	Timezone  *string
}

type RestaurantCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateRestaurantRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, req UpdateRestaurantRequest) error
}

type restaurantUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	defaultZone string
}

func NewRestaurantUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) RestaurantCommands {
	return &restaurantUseCaseImpl{
		uow:         uow,
		clock:       clk,
		defaultZone: cfg.DefaultTimezone,
	}
}

func (uc *restaurantUseCaseImpl) Create(ctx context.Context, actor user.Actor, req CreateRestaurantRequest) (uuid.UUID, error) {
	if !actor.IsAdmin {
		return uuid.Nil, ErrAdminOnly
	}

	rest, err := restaurant.NewRestaurant(req.Name, req.OpenTime, req.CloseTime, req.Timezone, uc.defaultZone, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Restaurants().Create(ctx, tx.DB(), rest)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rest.ID(), nil
}

func (uc *restaurantUseCaseImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, req UpdateRestaurantRequest) error {
	if !actor.IsAdmin {
		return ErrAdminOnly
	}
	if req == (UpdateRestaurantRequest{}) {
		return ErrEmptyChange
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RestaurantByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrRestaurantNotFound)
		}
		rest, err := restaurantFromSnapshot(snap)
		if err != nil {
			return err
		}

		err = rest.Update(
			patch.Coalesce(req.Name, rest.Name()),
			patch.Coalesce(req.OpenTime, rest.Window().Open.String()),
			patch.Coalesce(req.CloseTime, rest.Window().Close.String()),
			patch.Coalesce(req.Timezone, rest.Timezone()),
			uc.defaultZone,
			uc.clock.Now(),
		)
		if err != nil {
			return err
		}
		return tx.Restaurants().Update(ctx, tx.DB(), rest)
	})
}

// restaurantFromSnapshot rebuilds the entity so that working-hours checks run
// through the same evaluator that validated the stored window.
func restaurantFromSnapshot(snap *shared.RestaurantSnapshot) (*restaurant.Restaurant, error) {
	window, err := schedule.NewWindow(snap.OpenTime, snap.CloseTime)
	if err != nil {
		return nil, err
	}
	return restaurant.ReconstructRestaurant(
		snap.ID,
		snap.Name,
		window,
		snap.Timezone,
		rating.Aggregate{},
		snap.CreatedAt,
		snap.UpdatedAt,
	), nil
}
