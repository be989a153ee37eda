package admin

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateUserInput holds parameters for creating a staff account.
type CreateUserInput struct {
	FullName string
	Email    string
	Role     domain.Role
}

func (i *CreateUserInput) normalize() {
	i.FullName = domain.NormalizeSpace(i.FullName)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.FullName == "":
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	case utf8.RuneCountInString(i.FullName) > 255:
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case validate.Var(i.Email, "email,max=320") != nil:
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if !i.Role.IsStaff() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be ADMIN or EMPLOYEE"})
	}

	return domain.NewValidationErrors(errs)
}

// CreateTypeInput holds parameters for a new complaint type.
type CreateTypeInput struct {
	Name        string
	Description *string
}

func (i *CreateTypeInput) normalize() {
	i.Name = domain.NormalizeSpace(i.Name)
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		if d == "" {
			i.Description = nil
		} else {
			i.Description = &d
		}
	}
}

// Validate validates the create type input.
func (i CreateTypeInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(i.Name) > 100:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > 1000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}

// RegisterComplainantInput holds parameters for registering a citizen.
type RegisterComplainantInput struct {
	FullName   string
	NationalID string
	Phone      string
	Email      *string
}

func (i *RegisterComplainantInput) normalize() {
	i.FullName = domain.NormalizeSpace(i.FullName)
	i.NationalID = strings.TrimSpace(i.NationalID)
	i.Phone = strings.TrimSpace(i.Phone)
	if i.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*i.Email))
		if e == "" {
			i.Email = nil
		} else {
			i.Email = &e
		}
	}
}

// Validate validates the register complainant input. National ids are
// 14 digits.
func (i RegisterComplainantInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	}
	if validate.Var(i.NationalID, "required,len=14,numeric") != nil {
		errs = append(errs, domain.FieldError{Field: "national_id", Message: "must be 14 digits"})
	}
	if validate.Var(i.Phone, "required,min=7,max=20") != nil {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid phone"})
	}
	if i.Email != nil && validate.Var(*i.Email, "email") != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	return domain.NewValidationErrors(errs)
}
