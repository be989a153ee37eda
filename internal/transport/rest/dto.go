package rest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
	"github.com/Memex-200/Abutig-sub000/internal/transport/rest/loader"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createComplaintRequest struct {
	TypeID      string `json:"type_id"     validate:"required,uuid"`
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Location    string `json:"location"    validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW UNDER_REVIEW IN_PROGRESS RESOLVED REJECTED CLOSED"`
	Notes  string `json:"notes"`
}

type assignRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required,uuid"`
	Notes      string `json:"notes"`
}

type noteRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type createUserRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Role     string `json:"role"      validate:"required,oneof=ADMIN EMPLOYEE"`
}

type createTypeRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description *string `json:"description"`
}

type registerComplainantRequest struct {
	FullName   string  `json:"full_name"   validate:"required"`
	NationalID string  `json:"national_id" validate:"required"`
	Phone      string  `json:"phone"       validate:"required"`
	Email      *string `json:"email"`
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func toPage[S, T any](p *domain.Page[S], conv func(S) T) pageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, conv(it))
	}
	return pageResponse[T]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

type complaintResponse struct {
	ID              uuid.UUID  `json:"id"`
	ComplainantID   uuid.UUID  `json:"complainant_id"`
	ComplainantName string     `json:"complainant_name,omitempty"`
	TypeID          uuid.UUID  `json:"type_id"`
	TypeName        string     `json:"type_name,omitempty"`
	AssignedToID    *uuid.UUID `json:"assigned_to_id"`
	AssignedToName  string     `json:"assigned_to_name,omitempty"`
	Status          string     `json:"status"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
}

func toComplaintResponse(c domain.Complaint) complaintResponse {
	return complaintResponse{
		ID:              c.ID,
		ComplainantID:   c.ComplainantID,
		ComplainantName: c.ComplainantName,
		TypeID:          c.TypeID,
		AssignedToID:    c.AssignedToID,
		Status:          c.Status.String(),
		Title:           c.Title,
		Description:     c.Description,
		Location:        c.Location,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		ResolvedAt:      c.ResolvedAt,
	}
}

type logResponse struct {
	ID          uuid.UUID  `json:"id"`
	ComplaintID uuid.UUID  `json:"complaint_id"`
	UserID      *uuid.UUID `json:"user_id"`
	UserName    string     `json:"user_name,omitempty"`
	Action      string     `json:"action"`
	OldStatus   *string    `json:"old_status"`
	NewStatus   *string    `json:"new_status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toLogResponse(l domain.ComplaintLog) logResponse {
	return logResponse{
		ID:          l.ID,
		ComplaintID: l.ComplaintID,
		UserID:      l.UserID,
		Action:      l.Action.String(),
		OldStatus:   statusPtr(l.OldStatus),
		NewStatus:   statusPtr(l.NewStatus),
		Notes:       l.Notes,
		CreatedAt:   l.CreatedAt,
	}
}

func statusPtr(s *domain.ComplaintStatus) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}

type typeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTypeResponse(t domain.ComplaintType) typeResponse {
	return typeResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type complainantResponse struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	NationalID string    `json:"national_id"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

func toComplainantResponse(c domain.Complainant) complainantResponse {
	return complainantResponse{
		ID:         c.ID,
		FullName:   c.FullName,
		NationalID: c.NationalID,
		Phone:      c.Phone,
		Email:      c.Email,
		CreatedAt:  c.CreatedAt,
	}
}

type statusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type statsResponse struct {
	Total    int                   `json:"total"`
	ByStatus []statusCountResponse `json:"by_status"`
}

func toStatsResponse(s *admin.Stats) statsResponse {
	out := statsResponse{Total: s.Total, ByStatus: make([]statusCountResponse, 0, len(s.ByStatus))}
	for _, c := range s.ByStatus {
		out.ByStatus = append(out.ByStatus, statusCountResponse{Status: c.Status.String(), Count: c.Count})
	}
	return out
}

// ---------------------------------------------------------------------------
// Enrichment
// ---------------------------------------------------------------------------

// enrichComplaints fills type and assignee names through the request's
// loaders. All keys are queued before any thunk is awaited so each kind
// resolves in one batch. Lookup failures leave names empty.
func enrichComplaints(ctx context.Context, log *slog.Logger, items []complaintResponse) {
	l := loader.FromContext(ctx)
	if l == nil || len(items) == 0 {
		return
	}

	types := make([]dataloader.Thunk[*domain.ComplaintType], len(items))
	users := make([]dataloader.Thunk[*domain.User], len(items))
	for i, it := range items {
		types[i] = l.TypeByID.Load(ctx, it.TypeID)
		if it.AssignedToID != nil {
			users[i] = l.UserByID.Load(ctx, *it.AssignedToID)
		}
	}

	for i := range items {
		if t, err := types[i](); err != nil {
			log.WarnContext(ctx, "load complaint type", slog.String("error", err.Error()))
		} else if t != nil {
			items[i].TypeName = t.Name
		}
		if users[i] == nil {
			continue
		}
		if u, err := users[i](); err != nil {
			log.WarnContext(ctx, "load assignee", slog.String("error", err.Error()))
		} else if u != nil {
			items[i].AssignedToName = u.FullName
		}
	}
}

// enrichLogs fills the author name of staff-attributed log entries.
func enrichLogs(ctx context.Context, log *slog.Logger, items []logResponse) {
	l := loader.FromContext(ctx)
	if l == nil || len(items) == 0 {
		return
	}

	users := make([]dataloader.Thunk[*domain.User], len(items))
	for i, it := range items {
		if it.UserID != nil {
			users[i] = l.UserByID.Load(ctx, *it.UserID)
		}
	}
	for i := range items {
		if users[i] == nil {
			continue
		}
		if u, err := users[i](); err != nil {
			log.WarnContext(ctx, "load log author", slog.String("error", err.Error()))
		} else if u != nil {
			items[i].UserName = u.FullName
		}
	}
}
