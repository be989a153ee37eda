package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
)

type adminService interface {
	CreateUser(ctx context.Context, in admin.CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.Page[domain.User], error)
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	CreateType(ctx context.Context, in admin.CreateTypeInput) (*domain.ComplaintType, error)
	ListTypes(ctx context.Context, includeInactive bool) ([]domain.ComplaintType, error)
	SetTypeActive(ctx context.Context, id uuid.UUID, active bool) (*domain.ComplaintType, error)
	RegisterComplainant(ctx context.Context, in admin.RegisterComplainantInput) (*domain.Complainant, error)
	Stats(ctx context.Context) (*admin.Stats, error)
}

// AdminHandler serves staff, complaint type and report endpoints. Role
// checks live in the admin service.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

// ListUsers handles GET /api/admin/users?role=&is_active=&page=&page_size=
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	var (
		filter domain.UserFilter
		errs   []domain.FieldError
		err    error
	)
	if v := r.URL.Query().Get("role"); v != "" {
		role := domain.Role(strings.ToUpper(v))
		filter.Role = &role
	}
	if filter.IsActive, err = queryBool(r, "is_active"); err != nil {
		errs = append(errs, domain.FieldError{Field: "is_active", Message: "must be true or false"})
	}
	if filter.Page, err = queryInt(r, "page"); err != nil {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer"})
	}
	if filter.PageSize, err = queryInt(r, "page_size"); err != nil {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be an integer"})
	}
	if err := domain.NewValidationErrors(errs); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListUsers(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(page, toUserResponse))
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.CreateUser(r.Context(), admin.CreateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(*u))
}

// SetUserActive handles PATCH /api/admin/users/{id}/active.
func (h *AdminHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	id, active, ok := h.decodeSetActive(w, r)
	if !ok {
		return
	}

	u, err := h.svc.SetUserActive(r.Context(), id, active)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// ListTypes handles GET /api/complaint-types. Admins may pass
// include_inactive=true.
func (h *AdminHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := queryBool(r, "include_inactive")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	types, err := h.svc.ListTypes(r.Context(), includeInactive != nil && *includeInactive)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]typeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, toTypeResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateType handles POST /api/admin/complaint-types.
func (h *AdminHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var req createTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.CreateType(r.Context(), admin.CreateTypeInput{Name: req.Name, Description: req.Description})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTypeResponse(*t))
}

// SetTypeActive handles PATCH /api/admin/complaint-types/{id}/active.
func (h *AdminHandler) SetTypeActive(w http.ResponseWriter, r *http.Request) {
	id, active, ok := h.decodeSetActive(w, r)
	if !ok {
		return
	}

	t, err := h.svc.SetTypeActive(r.Context(), id, active)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTypeResponse(*t))
}

// RegisterComplainant handles POST /api/admin/complainants.
func (h *AdminHandler) RegisterComplainant(w http.ResponseWriter, r *http.Request) {
	var req registerComplainantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.RegisterComplainant(r.Context(), admin.RegisterComplainantInput{
		FullName:   req.FullName,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toComplainantResponse(*c))
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

func (h *AdminHandler) decodeSetActive(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool, bool) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, false, false
	}

	var req setActiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, false, false
	}
	return id, *req.IsActive, true
}
