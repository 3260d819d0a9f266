package restaurant

import (
	"strings"
	"time"

	"table-booking/internal/domain/rating"
	"table-booking/internal/domain/schedule"
	"table-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNameLength = 200

var (
	ErrEmptyName   = errs.NewKind("restaurant name cannot be empty", errs.ErrMalformedInput)
	ErrNameTooLong = errs.NewKind("restaurant name exceeds maximum length", errs.ErrMalformedInput)
)

type Restaurant struct {
	id        uuid.UUID
	name      string
	window    schedule.Window
	timezone  string
	aggregate rating.Aggregate
	createdAt time.Time
	updatedAt time.Time
}

// NewRestaurant validates the window and zone up front so that every stored
// restaurant can be evaluated later. An empty timezone takes defaultZone.
func NewRestaurant(name, openLocal, closeLocal, timezone, defaultZone string, now time.Time) (*Restaurant, error) {
	r := &Restaurant{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	if err := r.apply(name, openLocal, closeLocal, timezone, defaultZone); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRestaurant(
	id uuid.UUID,
	name string,
	window schedule.Window,
	timezone string,
	aggregate rating.Aggregate,
	createdAt, updatedAt time.Time,
) *Restaurant {
	return &Restaurant{
		id:        id,
		name:      name,
		window:    window,
		timezone:  timezone,
		aggregate: aggregate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the editable fields; the aggregate is left alone.
func (r *Restaurant) Update(name, openLocal, closeLocal, timezone, defaultZone string, now time.Time) error {
	next := *r
	if err := next.apply(name, openLocal, closeLocal, timezone, defaultZone); err != nil {
		return err
	}
	next.updatedAt = now
	*r = next
	return nil
}

func (r *Restaurant) apply(name, openLocal, closeLocal, timezone, defaultZone string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	window, err := schedule.NewWindow(openLocal, closeLocal)
	if err != nil {
		return err
	}
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		timezone = defaultZone
	}
	if _, err := schedule.LoadZone(timezone); err != nil {
		return err
	}
	r.name = name
	r.window = window
	r.timezone = timezone
	return nil
}

// CheckOpenAt rejects instants outside the restaurant's working hours.
func (r *Restaurant) CheckOpenAt(instant time.Time) error {
	return schedule.CheckWithinWindow(instant, r.window.Open.String(), r.window.Close.String(), r.timezone)
}

func (r *Restaurant) ID() uuid.UUID               { return r.id }
func (r *Restaurant) Name() string                { return r.name }
func (r *Restaurant) Window() schedule.Window     { return r.window }
func (r *Restaurant) Timezone() string            { return r.timezone }
func (r *Restaurant) Aggregate() rating.Aggregate { return r.aggregate }
func (r *Restaurant) CreatedAt() time.Time        { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time        { return r.updatedAt }
