package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewEventKind string

const (
	ReviewCreated ReviewEventKind = "created"
	ReviewUpdated ReviewEventKind = "updated"
	ReviewDeleted ReviewEventKind = "deleted"
)

// ReviewEvent is emitted after a review mutation has been committed.
type ReviewEvent struct {
	ReviewID     uuid.UUID       `json:"reviewId"`
	RestaurantID uuid.UUID       `json:"restaurantId"`
	Kind         ReviewEventKind `json:"kind"`
	OccurredAt   time.Time       `json:"occurredAt"`
}

// ReviewEventSink receives committed review mutations. Publish must not
// block on the aggregate recompute, and its error never fails the mutation.
type ReviewEventSink interface {
	Publish(ctx context.Context, event ReviewEvent) error
}
