package reservation

import (
	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultMaxActive = 3

// AdmissionPolicy gates reservation creation and per-record access.
type AdmissionPolicy struct {
	MaxActive int
}

func NewAdmissionPolicy(maxActive int) AdmissionPolicy {
	if maxActive <= 0 {
		maxActive = DefaultMaxActive
	}
	return AdmissionPolicy{MaxActive: maxActive}
}

// CheckAdmission decides whether actor may create a reservation owned by
// targetOwner, given the owner's current count of active reservations.
// The quota is system-wide and admins are exempt from it.
func (p AdmissionPolicy) CheckAdmission(actor user.Actor, targetOwner uuid.UUID, activeCount int) error {
	if targetOwner == uuid.Nil {
		return ErrMissingOwner
	}
	if actor.IsAdmin {
		return nil
	}
	if !actor.Owns(targetOwner) {
		return ErrForeignOwner
	}
	if activeCount >= p.MaxActive {
		return errs.WithDetail(ErrQuotaExceeded, "active reservations: %d, limit: %d", activeCount, p.MaxActive)
	}
	return nil
}

// CheckAccess guards reading, changing or deleting one reservation.
func CheckAccess(actor user.Actor, owner uuid.UUID) error {
	if actor.CanAccess(owner) {
		return nil
	}
	return ErrNotOwner
}

// ListScope is the query shape a listing must use for an actor.
type ListScope struct {
	OwnerID      *uuid.UUID
	RestaurantID *uuid.UUID
}

func ScopeFor(actor user.Actor, restaurantID *uuid.UUID) ListScope {
	scope := ListScope{RestaurantID: restaurantID}
	if !actor.IsAdmin {
		owner := actor.ID
		scope.OwnerID = &owner
	}
	return scope
}
