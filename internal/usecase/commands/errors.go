package commands

import (
	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
)

var (
	ErrAdminOnly           = errs.NewKind("admin role required", errs.ErrUnauthorized)
	ErrUnauthenticated     = errs.NewKind("authenticated actor required", errs.ErrUnauthorized)
	ErrRestaurantNotFound  = errs.NewKind("restaurant not found", errs.ErrNotFound)
	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrReviewNotFound      = errs.NewKind("review not found", errs.ErrNotFound)
	ErrEmptyChange         = errs.NewKind("no fields to update", errs.ErrMalformedInput)
)

// notFoundAs replaces a repository not-found error with the use-case sentinel.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
