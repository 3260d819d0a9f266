//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/review"
	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/shared"
	"table-booking/tests/common/builder"
	"table-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type recordingSink struct {
	mu     sync.Mutex
	events []shared.ReviewEvent
	err    error
}

func (r *recordingSink) Publish(_ context.Context, event shared.ReviewEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingSink) kinds() []shared.ReviewEventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shared.ReviewEventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

type ReviewCommandsSuite struct {
	suite.Suite
	store        *memstore.Store
	sink         *recordingSink
	uc           commands.ReviewCommands
	restaurantID uuid.UUID
	diner        user.Actor
	ctx          context.Context
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsSuite))
}

func (s *ReviewCommandsSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.sink = &recordingSink{}
	s.uc = commands.NewReviewUseCase(s.store, clock.NewMockClock(fixedNow), s.sink, slog.New(slog.DiscardHandler))

	rest, err := builder.NewRestaurantBuilder().BuildDomain()
	s.Require().NoError(err)
	s.restaurantID = s.store.PutRestaurant(rest)

	s.diner = user.Actor{ID: uuid.New()}
	s.seedVisit(s.diner.ID, reservation.StatusCompleted)
}

func (s *ReviewCommandsSuite) seedVisit(userID uuid.UUID, status reservation.Status) {
	s.store.PutReservation(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.UserID = userID
		b.RestaurantID = s.restaurantID
		b.Status = status
	}).BuildDomain())
}

func (s *ReviewCommandsSuite) createReview(actor user.Actor) uuid.UUID {
	req := builder.NewReviewBuilder().WithRestaurantID(s.restaurantID).BuildCreateRequestDTO().ToCommand()
	res, err := s.uc.CreateReview(s.ctx, actor, req)
	s.Require().NoError(err)
	return res.ReviewID
}

// =============================================================================
// CreateReview
// =============================================================================

func (s *ReviewCommandsSuite) TestCreateReview_Success() {
	id := s.createReview(s.diner)

	stored, ok := s.store.Review(id)
	s.Require().True(ok)
	s.Equal(s.diner.ID, stored.UserID)
	s.Equal(5.0, stored.Stars)
	s.Require().NotNil(stored.Message)
	s.Equal("Excellent omakase!", *stored.Message)

	s.Equal([]shared.ReviewEventKind{shared.ReviewCreated}, s.sink.kinds())
	s.Equal(s.restaurantID, s.sink.events[0].RestaurantID)
	s.Equal(id, s.sink.events[0].ReviewID)
}

func (s *ReviewCommandsSuite) TestCreateReview_Eligibility() {
	booked := user.Actor{ID: uuid.New()}
	s.seedVisit(booked.ID, reservation.StatusBooked)
	cancelled := user.Actor{ID: uuid.New()}
	s.seedVisit(cancelled.ID, reservation.StatusCancelled)

	testCases := []struct {
		name  string
		actor user.Actor
		req   commands.CreateReviewRequest
		errIs error
		kind  errs.Kind
	}{
		{name: "anonymous", actor: user.Actor{}, req: s.validRequest(), errIs: commands.ErrUnauthenticated, kind: errs.KindUnauthorized},
		{name: "stars out of range", actor: s.diner, req: s.withStars(5.5), errIs: review.ErrInvalidStars, kind: errs.KindMalformedInput},
		{name: "stars missing", actor: s.diner, req: commands.CreateReviewRequest{RestaurantID: s.restaurantID}, errIs: review.ErrMissingStars, kind: errs.KindMalformedInput},
		{name: "unknown restaurant", actor: s.diner, req: commands.CreateReviewRequest{RestaurantID: uuid.New(), Stars: ptr(4.0)}, errIs: commands.ErrRestaurantNotFound, kind: errs.KindNotFound},
		{name: "no reservation at all", actor: user.Actor{ID: uuid.New()}, req: s.validRequest(), errIs: review.ErrNotEligible, kind: errs.KindPolicyViolation},
		{name: "only a booked reservation", actor: booked, req: s.validRequest(), errIs: review.ErrNotEligible, kind: errs.KindPolicyViolation},
		{name: "only a cancelled reservation", actor: cancelled, req: s.validRequest(), errIs: review.ErrNotEligible, kind: errs.KindPolicyViolation},
		{name: "admins still need a visit", actor: user.Actor{ID: uuid.New(), IsAdmin: true}, req: s.validRequest(), errIs: review.ErrNotEligible, kind: errs.KindPolicyViolation},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.uc.CreateReview(s.ctx, tc.actor, tc.req)
			s.Require().ErrorIs(err, tc.errIs)
			s.Equal(tc.kind, errs.KindOf(err))
		})
	}
	s.Empty(s.sink.kinds())
}

func (s *ReviewCommandsSuite) TestCreateReview_SinkFailureDoesNotFailMutation() {
	s.sink.err = errors.New("broker down")

	id := s.createReview(s.diner)

	_, ok := s.store.Review(id)
	s.True(ok)
}

func (s *ReviewCommandsSuite) TestCreateReview_CommitFailureEmitsNothing() {
	s.store.FailNextCommit = errors.New("connection reset")

	_, err := s.uc.CreateReview(s.ctx, s.diner, s.validRequest())
	s.Require().Error(err)
	s.Empty(s.sink.kinds())
}

// =============================================================================
// UpdateReview / DeleteReview
// =============================================================================

func (s *ReviewCommandsSuite) TestUpdateReview() {
	id := s.createReview(s.diner)

	s.Run("author edits stars only", func() {
		s.Require().NoError(s.uc.UpdateReview(s.ctx, s.diner, id, commands.UpdateReviewRequest{Stars: ptr(3.5)}))
		stored, _ := s.store.Review(id)
		s.Equal(3.5, stored.Stars)
		s.Equal("Excellent omakase!", *stored.Message)
	})

	s.Run("admin edits message", func() {
		admin := user.Actor{ID: uuid.New(), IsAdmin: true}
		s.Require().NoError(s.uc.UpdateReview(s.ctx, admin, id, commands.UpdateReviewRequest{Message: ptr("Edited")}))
		stored, _ := s.store.Review(id)
		s.Equal("Edited", *stored.Message)
	})

	s.Run("rejections", func() {
		err := s.uc.UpdateReview(s.ctx, user.Actor{ID: uuid.New()}, id, commands.UpdateReviewRequest{Stars: ptr(1.0)})
		s.Require().ErrorIs(err, review.ErrNotAuthor)

		err = s.uc.UpdateReview(s.ctx, s.diner, id, commands.UpdateReviewRequest{})
		s.Require().ErrorIs(err, commands.ErrEmptyChange)

		err = s.uc.UpdateReview(s.ctx, s.diner, id, commands.UpdateReviewRequest{Stars: ptr(-1.0)})
		s.Require().ErrorIs(err, review.ErrInvalidStars)

		err = s.uc.UpdateReview(s.ctx, s.diner, uuid.New(), commands.UpdateReviewRequest{Stars: ptr(1.0)})
		s.Require().ErrorIs(err, commands.ErrReviewNotFound)

		stored, _ := s.store.Review(id)
		s.Equal(3.5, stored.Stars)
	})

	s.Equal([]shared.ReviewEventKind{shared.ReviewCreated, shared.ReviewUpdated, shared.ReviewUpdated}, s.sink.kinds())
}

func (s *ReviewCommandsSuite) TestDeleteReview() {
	id := s.createReview(s.diner)

	err := s.uc.DeleteReview(s.ctx, user.Actor{ID: uuid.New()}, id)
	s.Require().ErrorIs(err, review.ErrNotAuthor)

	s.Require().NoError(s.uc.DeleteReview(s.ctx, s.diner, id))
	_, ok := s.store.Review(id)
	s.False(ok)

	err = s.uc.DeleteReview(s.ctx, s.diner, id)
	s.Require().ErrorIs(err, commands.ErrReviewNotFound)

	s.Equal([]shared.ReviewEventKind{shared.ReviewCreated, shared.ReviewDeleted}, s.sink.kinds())
}

func (s *ReviewCommandsSuite) validRequest() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{RestaurantID: s.restaurantID, Stars: ptr(4.0)}
}

func (s *ReviewCommandsSuite) withStars(v float64) commands.CreateReviewRequest {
	req := s.validRequest()
	req.Stars = &v
	return req
}
