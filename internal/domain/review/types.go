package review

import "table-booking/internal/pkg/errs"

var (
	ErrMissingRestaurant = errs.NewKind("restaurant is required", errs.ErrMalformedInput)
	ErrMissingStars      = errs.NewKind("stars are required", errs.ErrMalformedInput)
	ErrInvalidStars      = errs.NewKind("stars must be between 0 and 5", errs.ErrMalformedInput)
	ErrMessageTooLong    = errs.NewKind("message exceeds maximum length", errs.ErrMalformedInput)

	ErrNotEligible = errs.NewKind("a completed reservation at this restaurant is required to review it", errs.ErrPolicyViolation)
	ErrNotAuthor   = errs.NewKind("actor is not the author of the review", errs.ErrUnauthorized)
)
