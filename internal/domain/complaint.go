package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Complaint is a citizen-filed grievance tracked through a status lifecycle.
type Complaint struct {
	ID            uuid.UUID
	ComplainantID uuid.UUID
	TypeID        uuid.UUID
	AssignedToID  *uuid.UUID
	Status        ComplaintStatus
	Title         string
	Description   string
	Location      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ResolvedAt    *time.Time

	// ComplainantName is populated on reads that join complainants.
	ComplainantName string
}

// IsAssignedTo reports whether the complaint is assigned to the given user.
func (c *Complaint) IsAssignedTo(userID uuid.UUID) bool {
	return c.AssignedToID != nil && *c.AssignedToID == userID
}

// ComplaintLog is an append-only history entry. Once written it is never
// mutated or deleted.
type ComplaintLog struct {
	ID          uuid.UUID
	ComplaintID uuid.UUID
	UserID      *uuid.UUID
	Action      LogAction
	OldStatus   *ComplaintStatus
	NewStatus   *ComplaintStatus
	Notes       string
	CreatedAt   time.Time
}

// StatusChangeNote is the note recorded when a transition carries none.
func StatusChangeNote(from, to ComplaintStatus) string {
	return fmt.Sprintf("Status changed from %s to %s", from, to)
}

// StatusChangeEvent is handed to the notification collaborator after a
// committed status transition. Complainant is filled in by the delivery
// worker from ComplainantID.
type StatusChangeEvent struct {
	ComplaintID   uuid.UUID
	Title         string
	ComplainantID uuid.UUID
	Complainant   Complainant
	OldStatus     ComplaintStatus
	NewStatus     ComplaintStatus
	Notes         string
	ChangedBy     uuid.UUID
	ChangedAt     time.Time
}

// StatusCount is one row of the per-status report.
type StatusCount struct {
	Status ComplaintStatus
	Count  int
}
