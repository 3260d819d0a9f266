package reservation

import "table-booking/internal/pkg/errs"

var (
	ErrUnknownStatus       = errs.NewKind("unknown reservation status", errs.ErrMalformedInput)
	ErrMissingOwner        = errs.NewKind("reservation owner is required", errs.ErrMalformedInput)
	ErrMissingRestaurant   = errs.NewKind("restaurant is required", errs.ErrMalformedInput)
	ErrMissingDateTime     = errs.NewKind("reservation date-time is required", errs.ErrMalformedInput)
	ErrNotOwner            = errs.NewKind("actor does not own the reservation", errs.ErrUnauthorized)
	ErrForeignOwner        = errs.NewKind("non-admin cannot book for another user", errs.ErrUnauthorized)
	ErrQuotaExceeded       = errs.NewKind("active reservation limit reached", errs.ErrPolicyViolation)
	ErrTerminalState       = errs.NewKind("reservation is in a terminal state", errs.ErrPolicyViolation)
	ErrCompletedTooEarly   = errs.NewKind("reservation cannot be completed before it starts", errs.ErrPolicyViolation)
	ErrInvalidTransition   = errs.NewKind("status transition not allowed", errs.ErrPolicyViolation)
	ErrReopenRequiresAdmin = errs.NewKind("only an admin may reopen a reservation", errs.ErrUnauthorized)
)
