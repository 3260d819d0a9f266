package reservation

import (
	"strings"

	"table-booking/internal/pkg/errs"
)

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func ParseStatus(v string) (Status, error) {
	s := Status(strings.TrimSpace(v))
	if !s.IsValid() {
		return "", errs.WithDetail(ErrUnknownStatus, "status: %q (allowed: booked, completed, cancelled)", v)
	}
	return s, nil
}
