package schedule

import "table-booking/internal/pkg/errs"

var (
	ErrEmptyTimestamp   = errs.NewKind("timestamp is empty", errs.ErrMalformedInput)
	ErrInvalidTimestamp = errs.NewKind("timestamp is not a valid date-time", errs.ErrMalformedInput)
	ErrUnknownTimezone  = errs.NewKind("unknown timezone", errs.ErrMalformedInput)
	ErrInvalidClock     = errs.NewKind("clock time must be HH:MM or HH:MM:SS", errs.ErrMalformedInput)
	ErrOutsideHours     = errs.NewKind("requested time is outside working hours", errs.ErrPolicyViolation)
)
