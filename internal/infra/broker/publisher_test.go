//go:build unit

package broker_test

import (
	"testing"
	"time"

	"table-booking/internal/infra/broker"
	"table-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	event := shared.ReviewEvent{
		ReviewID:     uuid.New(),
		RestaurantID: uuid.New(),
		Kind:         shared.ReviewUpdated,
		OccurredAt:   time.Date(2026, 10, 16, 3, 0, 0, 0, time.UTC),
	}

	msg, err := broker.EncodeEvent(event)
	require.NoError(t, err)
	assert.Equal(t, event.RestaurantID.String(), string(msg.Key))
	assert.JSONEq(t, `{
		"reviewId": "`+event.ReviewID.String()+`",
		"restaurantId": "`+event.RestaurantID.String()+`",
		"kind": "updated",
		"occurredAt": "2026-10-16T03:00:00Z"
	}`, string(msg.Value))

	decoded, err := broker.DecodeEvent(msg)
	require.NoError(t, err)
	if diff := cmp.Diff(event, decoded); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEvent_Malformed(t *testing.T) {
	_, err := broker.DecodeEvent(kafka.Message{Value: []byte("{not json")})
	assert.ErrorContains(t, err, "decode review event")
}
