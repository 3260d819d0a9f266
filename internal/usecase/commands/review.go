package commands

import (
	"context"
	"log/slog"
	"time"

	"table-booking/internal/domain/reservation"
	domreview "table-booking/internal/domain/review"
	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	RestaurantID uuid.UUID
	Stars        *float64
	Message      *string
}

// UpdateReviewRequest is a partial update; nil fields keep their value.
type UpdateReviewRequest struct {
	Stars   *float64
	Message *string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, actor user.Actor, req CreateReviewRequest) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, actor user.Actor, reviewID uuid.UUID, req UpdateReviewRequest) error
	DeleteReview(ctx context.Context, actor user.Actor, reviewID uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	events shared.ReviewEventSink
	logger *slog.Logger
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock, events shared.ReviewEventSink, logger *slog.Logger) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk, events: events, logger: logger}
}

// CreateReview checks, in order: authentication, field values, that the
// restaurant exists, and that the author completed a reservation there.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, actor user.Actor, req CreateReviewRequest) (*CreateReviewResult, error) {
	if !actor.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	now := uc.clock.Now()
	rev, err := domreview.NewReview(actor.ID, req.RestaurantID, req.Stars, req.Message, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RestaurantByID(ctx, req.RestaurantID); err != nil {
			return notFoundAs(err, ErrRestaurantNotFound)
		}
		restaurantID := req.RestaurantID
		completed, err := tx.Reads().CountReservations(ctx, actor.ID, &restaurantID, reservation.StatusCompleted)
		if err != nil {
			return err
		}
		if err := domreview.CheckEligibility(completed); err != nil {
			return err
		}
		return tx.Reviews().Create(ctx, tx.DB(), rev)
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, rev.ID(), rev.RestaurantID(), shared.ReviewCreated, now)
	return &CreateReviewResult{ReviewID: rev.ID()}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, actor user.Actor, reviewID uuid.UUID, req UpdateReviewRequest) error {
	if !actor.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if req.Stars == nil && req.Message == nil {
		return ErrEmptyChange
	}

	now := uc.clock.Now()
	var restaurantID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReviewByID(ctx, reviewID)
		if err != nil {
			return notFoundAs(err, ErrReviewNotFound)
		}
		if !actor.CanAccess(snap.UserID) {
			return domreview.ErrNotAuthor
		}

		rev, err := reviewFromSnapshot(snap)
		if err != nil {
			return err
		}
		if err := rev.Edit(req.Stars, req.Message, now); err != nil {
			return err
		}
		restaurantID = snap.RestaurantID
		return tx.Reviews().Update(ctx, tx.DB(), rev)
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, reviewID, restaurantID, shared.ReviewUpdated, now)
	return nil
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, actor user.Actor, reviewID uuid.UUID) error {
	if !actor.IsAuthenticated() {
		return ErrUnauthenticated
	}

	var restaurantID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReviewByID(ctx, reviewID)
		if err != nil {
			return notFoundAs(err, ErrReviewNotFound)
		}
		if !actor.CanAccess(snap.UserID) {
			return domreview.ErrNotAuthor
		}
		restaurantID = snap.RestaurantID
		return tx.Reviews().Delete(ctx, tx.DB(), reviewID)
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, reviewID, restaurantID, shared.ReviewDeleted, uc.clock.Now())
	return nil
}

// publish runs after commit; a failing sink is logged and never fails the
// mutation that already succeeded.
func (uc *reviewUseCaseImpl) publish(ctx context.Context, reviewID, restaurantID uuid.UUID, kind shared.ReviewEventKind, at time.Time) {
	event := shared.ReviewEvent{
		ReviewID:     reviewID,
		RestaurantID: restaurantID,
		Kind:         kind,
		OccurredAt:   at,
	}
	if err := uc.events.Publish(ctx, event); err != nil {
		uc.logger.Error("failed to publish review event",
			slog.String("review_id", reviewID.String()),
			slog.String("restaurant_id", restaurantID.String()),
			slog.String("kind", string(kind)),
			slog.Any("error", err))
	}
}

func reviewFromSnapshot(snap *shared.ReviewSnapshot) (*domreview.Review, error) {
	stars, err := domreview.NewStars(snap.Stars)
	if err != nil {
		return nil, err
	}
	var message domreview.Message
	if snap.Message != nil {
		message, err = domreview.NewMessage(*snap.Message)
		if err != nil {
			return nil, err
		}
	}
	return domreview.ReconstructReview(snap.ID, snap.UserID, snap.RestaurantID, stars, message, snap.CreatedAt, snap.UpdatedAt), nil
}
