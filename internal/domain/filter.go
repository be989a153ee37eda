package domain

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// MaxPage keeps (page-1)*MaxPageSize within int, and so within a
	// PostgreSQL bigint OFFSET.
	MaxPage = math.MaxInt / MaxPageSize
)

// ComplaintFilter contains client-supplied filtering and pagination
// parameters for complaint listings.
type ComplaintFilter struct {
	Status    *ComplaintStatus
	TypeID    *uuid.UUID
	Search    string
	Page      int
	PageSize  int
	SortOrder SortOrder
}

// Normalize applies defaults and clamps values.
func (f *ComplaintFilter) Normalize() {
	f.Page, f.PageSize = clampPage(f.Page, f.PageSize)
	if !f.SortOrder.IsValid() {
		f.SortOrder = SortDesc
	}
	// Trimmed only: descriptions keep their inner whitespace, so the
	// search term must too.
	f.Search = strings.TrimSpace(f.Search)
}

// Offset returns the row offset for the current page.
func (f ComplaintFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// UserFilter narrows the staff listing.
type UserFilter struct {
	Role     *Role
	IsActive *bool
	Page     int
	PageSize int
}

// Normalize applies defaults and clamps values.
func (f *UserFilter) Normalize() {
	f.Page, f.PageSize = clampPage(f.Page, f.PageSize)
}

// Offset returns the row offset for the current page.
func (f UserFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// ComplaintScope is the identity-based restriction derived from an actor.
// Nil fields impose no restriction. It is always ANDed with the filter.
type ComplaintScope struct {
	AssignedToID  *uuid.UUID
	ComplainantID *uuid.UUID
}

// Page is one page of results plus totals.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// NewPage builds a Page and computes TotalPages = ceil(total/pageSize).
func NewPage[T any](items []T, total, page, pageSize int) *Page[T] {
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}
}
