//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"table-booking/internal/domain/user"
	"table-booking/internal/handler/dto/response"
	"table-booking/tests/common/authtest"
	"table-booking/tests/common/builder"
	"table-booking/tests/common/dbtest"
	"table-booking/tests/common/httptest"
	"table-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL           = "/api/reviews"
	reviewURL            = "/api/reviews/%s"
	restaurantReviewsURL = "/api/restaurants/%s/reviews"
	ratingURL            = "/api/restaurants/%s/rating"
)

type ReviewSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ReviewSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

// visitor returns a user who has completed a reservation at the restaurant.
func (s *ReviewSuite) visitor(restaurantID uuid.UUID) (uuid.UUID, string) {
	t := s.T()
	userID, token := s.jwt.NewUser(t, user.RoleUser)
	dbtest.CreateTestReservation(t, s.DB, userID, restaurantID, time.Now().Add(-24*time.Hour), "completed")
	return userID, token
}

func (s *ReviewSuite) awaitRating(restaurantID uuid.UUID, want response.RatingResponse) {
	t := s.T()
	require.Eventually(t, func() bool {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingURL, restaurantID), nil, "")
		if w.Code != http.StatusOK {
			return false
		}
		var got response.RatingResponse
		if err := httptest.DecodeResponseBody(t, w.Body, &got); err != nil {
			return false
		}
		return cmp.Equal(want, got)
	}, 5*time.Second, 50*time.Millisecond, "rating never reached %+v", want)
}

// =============================================================================
// TestCreateReview
// =============================================================================

func (s *ReviewSuite) TestCreateReview() {
	s.Run("Normal case: visitor reviews and the rating follows", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Sushi Saito", "10:00", "22:00", "Asia/Tokyo")

		var ids []uuid.UUID
		for _, stars := range []float64{5, 4, 3} {
			userID, token := s.visitor(restaurantID)
			reqBody := builder.NewReviewBuilder().WithRestaurantID(restaurantID).WithStars(stars).BuildCreateRequestDTO()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			var created response.ReviewResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			expected := response.ReviewResponse{
				UserID:       userID,
				RestaurantID: restaurantID,
				Stars:        stars,
				Message:      reqBody.Message,
			}
			if diff := cmp.Diff(expected, created, cmpopts.IgnoreFields(response.ReviewResponse{}, "ID", "CreatedAt", "UpdatedAt")); diff != "" {
				t.Errorf("created review mismatch (-want +got):\n%s", diff)
			}
			ids = append(ids, created.ID)
		}

		s.awaitRating(restaurantID, response.RatingResponse{RestaurantID: restaurantID, AverageRating: 4, ReviewCount: 3})

		var list response.ReviewListResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(restaurantReviewsURL, restaurantID), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Reviews, 3)
		require.Equal(t, ids[2], list.Reviews[0].ID)
	})

	s.Run("Error case: no completed reservation", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Sushi Saito", "10:00", "22:00", "Asia/Tokyo")
		userID, token := s.jwt.NewUser(t, user.RoleUser)
		dbtest.CreateTestReservation(t, s.DB, userID, restaurantID, time.Now().Add(24*time.Hour), "booked")

		reqBody := builder.NewReviewBuilder().WithRestaurantID(restaurantID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "completed reservation")
	})

	s.Run("Error case: stars out of range", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Sushi Saito", "10:00", "22:00", "Asia/Tokyo")
		_, token := s.visitor(restaurantID)

		reqBody := builder.NewReviewBuilder().WithRestaurantID(restaurantID).WithStars(6).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "stars must be between 0 and 5")
	})
}

// =============================================================================
// TestListReviews
// =============================================================================

func (s *ReviewSuite) TestListReviews() {
	s.Run("Normal case: pages chain newest first and are public", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Sushi Saito", "10:00", "22:00", "Asia/Tokyo")
		other := dbtest.CreateTestRestaurant(t, s.DB, "Bar Trench", "18:00", "02:00", "Asia/Tokyo")
		authorID := uuid.New()
		for _, stars := range []float64{5, 4, 3} {
			dbtest.CreateTestReview(t, s.DB, authorID, restaurantID, stars)
		}
		dbtest.CreateTestReview(t, s.DB, authorID, other, 1)

		url := fmt.Sprintf(restaurantReviewsURL, restaurantID)
		var first response.ReviewListResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Len(t, first.Reviews, 2)
		require.NotNil(t, first.NextCursor)

		var second response.ReviewListResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2&after="+*first.NextCursor, nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.Reviews, 1)
		require.Nil(t, second.NextCursor)

		seen := map[uuid.UUID]bool{}
		for _, r := range append(first.Reviews, second.Reviews...) {
			require.Equal(t, restaurantID, r.RestaurantID)
			require.False(t, seen[r.ID], "review %s listed twice", r.ID)
			seen[r.ID] = true
		}
	})

	s.Run("Error case: bad cursor, empty page for unknown restaurant", func() {
		t := s.T()
		var empty response.ReviewListResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(restaurantReviewsURL, uuid.New()), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &empty)
		require.Empty(t, empty.Reviews)

		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Sushi Saito", "10:00", "22:00", "Asia/Tokyo")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(restaurantReviewsURL, restaurantID)+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid cursor")
	})
}

// =============================================================================
// TestUpdateDeleteReview
// =============================================================================

func (s *ReviewSuite) TestUpdateDeleteReview() {
	s.Run("Normal case: edits and deletes keep the rating current", func() {
		t := s.T()
		restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Sushi Saito", "10:00", "22:00", "Asia/Tokyo")
		_, firstToken := s.visitor(restaurantID)
		_, secondToken := s.visitor(restaurantID)
		_, strangerToken := s.jwt.NewUser(t, user.RoleUser)

		create := func(token string, stars float64) uuid.UUID {
			reqBody := builder.NewReviewBuilder().WithRestaurantID(restaurantID).WithStars(stars).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			var created response.ReviewResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			return created.ID
		}
		first := create(firstToken, 5)
		second := create(secondToken, 4)
		s.awaitRating(restaurantID, response.RatingResponse{RestaurantID: restaurantID, AverageRating: 4.5, ReviewCount: 2})

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(reviewURL, second), map[string]any{"stars": 3}, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(reviewURL, second), map[string]any{"stars": 3}, secondToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		s.awaitRating(restaurantID, response.RatingResponse{RestaurantID: restaurantID, AverageRating: 4, ReviewCount: 2})

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reviewURL, first), nil, firstToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		s.awaitRating(restaurantID, response.RatingResponse{RestaurantID: restaurantID, AverageRating: 3, ReviewCount: 1})

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reviewURL, second), nil, secondToken)
		require.Equal(t, http.StatusNoContent, w.Code)
		s.awaitRating(restaurantID, response.RatingResponse{RestaurantID: restaurantID})

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reviewURL, second), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
