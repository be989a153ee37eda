package complaint

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxLocationLen    = 300
	maxNotesLen       = 2000
)

// CreateInput holds parameters for filing a complaint.
type CreateInput struct {
	TypeID      uuid.UUID
	Title       string
	Description string
	Location    string
}

func (i *CreateInput) normalize() {
	i.Title = domain.NormalizeSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.Location = domain.NormalizeSpace(i.Location)
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.TypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "type_id", Message: "required"})
	}
	errs = appendText(errs, "title", i.Title, maxTitleLen, true)
	errs = appendText(errs, "description", i.Description, maxDescriptionLen, true)
	errs = appendText(errs, "location", i.Location, maxLocationLen, true)

	return domain.NewValidationErrors(errs)
}

// UpdateStatusInput holds parameters for a status transition.
type UpdateStatusInput struct {
	ComplaintID uuid.UUID
	Status      domain.ComplaintStatus
	Notes       string
}

// Validate validates the status transition input. Notes are optional.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.ComplaintID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "complaint_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of NEW, UNDER_REVIEW, IN_PROGRESS, RESOLVED, REJECTED, CLOSED"})
	}
	errs = appendText(errs, "notes", i.Notes, maxNotesLen, false)

	return domain.NewValidationErrors(errs)
}

// AssignInput holds parameters for assigning a complaint to an employee.
type AssignInput struct {
	ComplaintID uuid.UUID
	AssigneeID  uuid.UUID
	Notes       string
}

// Validate validates the assign input.
func (i AssignInput) Validate() error {
	var errs []domain.FieldError

	if i.ComplaintID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "complaint_id", Message: "required"})
	}
	if i.AssigneeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assignee_id", Message: "required"})
	}
	errs = appendText(errs, "notes", i.Notes, maxNotesLen, false)

	return domain.NewValidationErrors(errs)
}

// NoteInput holds parameters for an internal note.
type NoteInput struct {
	ComplaintID uuid.UUID
	Notes       string
}

// Validate validates the note input.
func (i NoteInput) Validate() error {
	var errs []domain.FieldError

	if i.ComplaintID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "complaint_id", Message: "required"})
	}
	errs = appendText(errs, "notes", i.Notes, maxNotesLen, true)

	return domain.NewValidationErrors(errs)
}

// validateFilter rejects unknown enum values that Normalize cannot repair.
func validateFilter(f domain.ComplaintFilter) error {
	if f.Status != nil && !f.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}

func appendText(errs []domain.FieldError, field, value string, maxLen int, required bool) []domain.FieldError {
	switch {
	case required && value == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(value) > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
