package user

import "github.com/google/uuid"

// Actor is the authenticated caller of an operation. Admin-ness is derived
// once from the role claim and carried as a flag from then on.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, IsAdmin: role == RoleAdmin}
}

func (a Actor) IsAuthenticated() bool {
	return a.ID != uuid.Nil
}

// Owns reports whether the actor is the owner of a record.
func (a Actor) Owns(ownerID uuid.UUID) bool {
	return a.IsAuthenticated() && a.ID == ownerID
}

// CanAccess is true for the owner or any admin.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin || a.Owns(ownerID)
}
