package commands

import (
	"context"
	"log/slog"
	"strings"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/schedule"
	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	// UserID is the owner to book for; nil books for the actor.
	UserID       *uuid.UUID
	RestaurantID uuid.UUID
	DateTime     string
}

type UpdateReservationRequest struct {
	Status   *string
	DateTime *string
}

type ReservationCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateReservationRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, req UpdateReservationRequest) error
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	admission   reservation.AdmissionPolicy
	transitions reservation.TransitionPolicy
	defaultZone string
	logger      *slog.Logger
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig, logger *slog.Logger) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:         uow,
		clock:       clk,
		admission:   reservation.NewAdmissionPolicy(cfg.MaxActiveReservations),
		transitions: reservation.NewTransitionPolicy(cfg.AllowReopen),
		defaultZone: cfg.DefaultTimezone,
		logger:      logger,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, actor user.Actor, req CreateReservationRequest) (uuid.UUID, error) {
	if !actor.IsAuthenticated() {
		return uuid.Nil, ErrUnauthenticated
	}
	if req.RestaurantID == uuid.Nil {
		return uuid.Nil, reservation.ErrMissingRestaurant
	}
	if strings.TrimSpace(req.DateTime) == "" {
		return uuid.Nil, reservation.ErrMissingDateTime
	}

	owner := actor.ID
	if req.UserID != nil {
		owner = *req.UserID
	}
	if !actor.IsAdmin && !actor.Owns(owner) {
		return uuid.Nil, reservation.ErrForeignOwner
	}

	now := uc.clock.Now()
	var created *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RestaurantByID(ctx, req.RestaurantID)
		if err != nil {
			return notFoundAs(err, ErrRestaurantNotFound)
		}
		rest, err := restaurantFromSnapshot(snap)
		if err != nil {
			return err
		}

		instant, err := schedule.NormalizeTimestamp(req.DateTime, uc.zoneOf(rest.Timezone()))
		if err != nil {
			return err
		}
		if err := rest.CheckOpenAt(instant); err != nil {
			return err
		}

		if err := tx.Reservations().LockOwner(ctx, tx.DB(), owner); err != nil {
			return err
		}
		active, err := tx.Reads().CountReservations(ctx, owner, nil, reservation.StatusBooked)
		if err != nil {
			return err
		}
		if err := uc.admission.CheckAdmission(actor, owner, active); err != nil {
			return err
		}

		res, err := reservation.NewReservation(owner, rest.ID(), instant, now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("reservation created",
		slog.String("reservation_id", created.ID().String()),
		slog.String("restaurant_id", created.RestaurantID().String()),
		slog.String("user_id", created.UserID().String()))
	return created.ID(), nil
}

// Update applies a status and/or date-time change. A single now is used for
// the whole request and nothing is written when any check fails.
func (uc *reservationUseCaseImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, req UpdateReservationRequest) error {
	if !actor.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if req.Status == nil && req.DateTime == nil {
		return ErrEmptyChange
	}

	var change reservation.Change
	if req.Status != nil {
		status, err := reservation.ParseStatus(*req.Status)
		if err != nil {
			return err
		}
		change.Status = &status
	}

	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrReservationNotFound)
		}
		if err := reservation.CheckAccess(actor, snap.UserID); err != nil {
			return err
		}
		res, err := reservationFromSnapshot(snap)
		if err != nil {
			return err
		}

		if req.DateTime != nil {
			restSnap, err := tx.Reads().RestaurantByID(ctx, snap.RestaurantID)
			if err != nil {
				return notFoundAs(err, ErrRestaurantNotFound)
			}
			rest, err := restaurantFromSnapshot(restSnap)
			if err != nil {
				return err
			}
			instant, err := schedule.NormalizeTimestamp(*req.DateTime, uc.zoneOf(rest.Timezone()))
			if err != nil {
				return err
			}
			if err := rest.CheckOpenAt(instant); err != nil {
				return err
			}
			change.DateTime = &instant
		}

		if err := res.Apply(uc.transitions, change, actor.IsAdmin, now); err != nil {
			return err
		}
		return tx.Reservations().Update(ctx, tx.DB(), res)
	})
}

func (uc *reservationUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.IsAuthenticated() {
		return ErrUnauthenticated
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrReservationNotFound)
		}
		if err := reservation.CheckAccess(actor, snap.UserID); err != nil {
			return err
		}
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
}

func (uc *reservationUseCaseImpl) zoneOf(restaurantZone string) string {
	if restaurantZone == "" {
		return uc.defaultZone
	}
	return restaurantZone
}

func reservationFromSnapshot(snap *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		snap.ID,
		snap.UserID,
		snap.RestaurantID,
		snap.DateTime,
		status,
		snap.CreatedAt,
		snap.UpdatedAt,
	), nil
}
