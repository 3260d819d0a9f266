package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id           uuid.UUID
	userID       uuid.UUID
	restaurantID uuid.UUID
	stars        Stars
	message      Message
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReview(userID, restaurantID uuid.UUID, starsValue *float64, messageText *string, now time.Time) (*Review, error) {
	if restaurantID == uuid.Nil {
		return nil, ErrMissingRestaurant
	}
	if starsValue == nil {
		return nil, ErrMissingStars
	}
	stars, err := NewStars(*starsValue)
	if err != nil {
		return nil, err
	}

	var message Message
	if messageText != nil {
		message, err = NewMessage(*messageText)
		if err != nil {
			return nil, err
		}
	}

	return &Review{
		id:           uuid.New(),
		userID:       userID,
		restaurantID: restaurantID,
		stars:        stars,
		message:      message,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReview(id, userID, restaurantID uuid.UUID, stars Stars, message Message, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:           id,
		userID:       userID,
		restaurantID: restaurantID,
		stars:        stars,
		message:      message,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Edit applies a partial update; nil leaves the field unchanged.
func (r *Review) Edit(starsValue *float64, messageText *string, now time.Time) error {
	stars := r.stars
	if starsValue != nil {
		s, err := NewStars(*starsValue)
		if err != nil {
			return err
		}
		stars = s
	}
	message := r.message
	if messageText != nil {
		m, err := NewMessage(*messageText)
		if err != nil {
			return err
		}
		message = m
	}
	r.stars = stars
	r.message = message
	r.updatedAt = now
	return nil
}

func (r *Review) ID() uuid.UUID           { return r.id }
func (r *Review) UserID() uuid.UUID       { return r.userID }
func (r *Review) RestaurantID() uuid.UUID { return r.restaurantID }
func (r *Review) Stars() Stars            { return r.stars }
func (r *Review) Message() Message        { return r.message }
func (r *Review) CreatedAt() time.Time    { return r.createdAt }
func (r *Review) UpdatedAt() time.Time    { return r.updatedAt }
