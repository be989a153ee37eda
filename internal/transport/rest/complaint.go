package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/internal/service/complaint"
)

type complaintService interface {
	List(ctx context.Context, filter domain.ComplaintFilter) (*domain.Page[domain.Complaint], error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	Create(ctx context.Context, in complaint.CreateInput) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, in complaint.UpdateStatusInput) (*domain.Complaint, error)
	Assign(ctx context.Context, in complaint.AssignInput) (*domain.Complaint, error)
	AddInternalNote(ctx context.Context, in complaint.NoteInput) (domain.ComplaintLog, error)
	ListLogs(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintLog, error)
}

// ComplaintHandler serves the complaint REST endpoints.
type ComplaintHandler struct {
	svc complaintService
	log *slog.Logger
}

// NewComplaintHandler creates a ComplaintHandler.
func NewComplaintHandler(svc complaintService, logger *slog.Logger) *ComplaintHandler {
	return &ComplaintHandler{svc: svc, log: logger.With("handler", "complaint")}
}

// List handles GET /api/complaints.
// Query: status, type_id, search, page, page_size, sort_order (asc|desc).
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseComplaintFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toPage(page, toComplaintResponse)
	enrichComplaints(r.Context(), h.log, resp.Items)
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/complaints/{id}.
func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeComplaint(w, r, http.StatusOK, c)
}

// Create handles POST /api/complaints.
func (h *ComplaintHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createComplaintRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), complaint.CreateInput{
		TypeID:      uuid.MustParse(req.TypeID),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeComplaint(w, r, http.StatusCreated, c)
}

// UpdateStatus handles PATCH /api/complaints/{id}/status.
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.UpdateStatus(r.Context(), complaint.UpdateStatusInput{
		ComplaintID: id,
		Status:      domain.ComplaintStatus(req.Status),
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeComplaint(w, r, http.StatusOK, c)
}

// Assign handles POST /api/complaints/{id}/assign.
func (h *ComplaintHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req assignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Assign(r.Context(), complaint.AssignInput{
		ComplaintID: id,
		AssigneeID:  uuid.MustParse(req.AssigneeID),
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeComplaint(w, r, http.StatusOK, c)
}

// AddNote handles POST /api/complaints/{id}/notes.
func (h *ComplaintHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.AddInternalNote(r.Context(), complaint.NoteInput{ComplaintID: id, Notes: req.Notes})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := []logResponse{toLogResponse(entry)}
	enrichLogs(r.Context(), h.log, resp)
	writeJSON(w, http.StatusCreated, resp[0])
}

// Logs handles GET /api/complaints/{id}/logs.
func (h *ComplaintHandler) Logs(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	logs, err := h.svc.ListLogs(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]logResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, toLogResponse(l))
	}
	enrichLogs(r.Context(), h.log, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (h *ComplaintHandler) writeComplaint(w http.ResponseWriter, r *http.Request, status int, c *domain.Complaint) {
	resp := []complaintResponse{toComplaintResponse(*c)}
	enrichComplaints(r.Context(), h.log, resp)
	writeJSON(w, status, resp[0])
}

func parseComplaintFilter(r *http.Request) (domain.ComplaintFilter, error) {
	q := r.URL.Query()
	var (
		filter domain.ComplaintFilter
		errs   []domain.FieldError
	)

	if v := q.Get("status"); v != "" {
		st := domain.ComplaintStatus(strings.ToUpper(v))
		filter.Status = &st
	}
	if v := q.Get("type_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "type_id", Message: "must be a UUID"})
		} else {
			filter.TypeID = &id
		}
	}
	filter.Search = q.Get("search")
	if v := q.Get("sort_order"); v != "" {
		filter.SortOrder = domain.SortOrder(strings.ToUpper(v))
	}

	var err error
	if filter.Page, err = queryInt(r, "page"); err != nil {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer"})
	}
	if filter.PageSize, err = queryInt(r, "page_size"); err != nil {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be an integer"})
	}

	return filter, domain.NewValidationErrors(errs)
}
