//go:build unit || e2e

package builder

import (
	"time"

	domreview "table-booking/internal/domain/review"
	reqdto "table-booking/internal/handler/dto/request"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	Stars        *float64
	Message      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	stars := 5.0
	message := "Excellent omakase!"
	return &ReviewBuilder{
		UserID:       uuid.New(),
		RestaurantID: uuid.New(),
		Stars:        &stars,
		Message:      &message,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.UserID, r.RestaurantID, r.Stars, r.Message, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		RestaurantID: r.RestaurantID,
		Stars:        r.Stars,
		Message:      r.Message,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{
		Stars:   r.Stars,
		Message: r.Message,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	var stars float64
	if r.Stars != nil {
		stars = *r.Stars
	}
	return &queries.ReviewView{
		ID:           uuid.New(),
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		Stars:        stars,
		Message:      r.Message,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	view := r.BuildViewQuery()
	return &shared.ReviewSnapshot{
		ID:           view.ID,
		UserID:       view.UserID,
		RestaurantID: view.RestaurantID,
		Stars:        view.Stars,
		Message:      view.Message,
		CreatedAt:    view.CreatedAt,
		UpdatedAt:    view.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRestaurantID(restaurantID uuid.UUID) *ReviewBuilder {
	r.RestaurantID = restaurantID
	return r
}

func (r *ReviewBuilder) WithStars(stars float64) *ReviewBuilder {
	r.Stars = &stars
	return r
}

func (r *ReviewBuilder) WithMessage(message string) *ReviewBuilder {
	r.Message = &message
	return r
}

