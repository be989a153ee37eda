package domain

import "github.com/google/uuid"

// Actor is the authenticated identity making a request. It is built per
// request from a verified token and never persisted.
type Actor struct {
	ID   uuid.UUID
	Role Role
	Name string

	// ComplainantID is the complaint-filter key for citizens. It equals ID
	// for CITIZEN actors and is uuid.Nil for staff.
	ComplainantID uuid.UUID
}

// NewStaffActor builds an actor for an active staff user.
func NewStaffActor(u *User) Actor {
	return Actor{ID: u.ID, Role: u.Role, Name: u.FullName}
}

// NewCitizenActor builds an actor for a complainant.
func NewCitizenActor(c *Complainant) Actor {
	return Actor{ID: c.ID, Role: RoleCitizen, Name: c.FullName, ComplainantID: c.ID}
}

// SystemActor is used by operator tooling that runs outside HTTP requests.
var SystemActor = Actor{Role: RoleAdmin, Name: "system"}

// IsAdmin reports whether the actor has the ADMIN role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// StaffID returns the actor's id for log attribution, or nil for citizens
// and the system actor.
func (a Actor) StaffID() *uuid.UUID {
	if !a.Role.IsStaff() || a.ID == uuid.Nil {
		return nil
	}
	id := a.ID
	return &id
}
