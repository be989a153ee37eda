package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account (admin or employee).
type User struct {
	ID        uuid.UUID
	FullName  string
	Email     string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Complainant is a citizen who files complaints.
type Complainant struct {
	ID         uuid.UUID
	FullName   string
	NationalID string
	Phone      string
	Email      *string
	CreatedAt  time.Time
}

// ComplaintType is an admin-managed category of complaint.
type ComplaintType struct {
	ID          uuid.UUID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}
