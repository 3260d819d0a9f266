package reservation

import (
	"time"

	"table-booking/internal/pkg/errs"
)

type TransitionInput struct {
	Current   Status
	Requested Status
	// Scheduled is the reservation instant in effect after the request,
	// i.e. the new dateTime when the same request moves it.
	Scheduled    time.Time
	Now          time.Time
	ActorIsAdmin bool
}

type TransitionPolicy struct {
	// AllowReopen lets admins move a reservation out of a terminal state.
	AllowReopen bool
}

func NewTransitionPolicy(allowReopen bool) TransitionPolicy {
	return TransitionPolicy{AllowReopen: allowReopen}
}

func (p TransitionPolicy) Validate(in TransitionInput) error {
	if !in.Current.IsValid() {
		return errs.WithDetail(ErrUnknownStatus, "current status: %q", in.Current)
	}
	if !in.Requested.IsValid() {
		return errs.WithDetail(ErrUnknownStatus, "requested status: %q", in.Requested)
	}
	if in.Current == in.Requested {
		return nil
	}

	if in.Current.IsTerminal() {
		return p.validateReopen(in)
	}

	// current is booked from here on
	switch in.Requested {
	case StatusCancelled:
		return nil
	case StatusCompleted:
		if in.ActorIsAdmin || !in.Now.Before(in.Scheduled) {
			return nil
		}
		return errs.WithDetail(ErrCompletedTooEarly, "scheduled at %s, now %s",
			in.Scheduled.UTC().Format(time.RFC3339), in.Now.UTC().Format(time.RFC3339))
	}
	return transitionErr(ErrInvalidTransition, in)
}

func (p TransitionPolicy) validateReopen(in TransitionInput) error {
	if !p.AllowReopen {
		return transitionErr(ErrTerminalState, in)
	}
	if !in.ActorIsAdmin {
		return transitionErr(ErrReopenRequiresAdmin, in)
	}
	return nil
}

func transitionErr(base error, in TransitionInput) error {
	return errs.WithDetail(base, "transition: %s -> %s", in.Current, in.Requested)
}
