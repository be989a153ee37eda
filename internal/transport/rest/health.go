package rest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

// pinger is any dependency that can report its own reachability.
type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to a health component.
type PingFunc func(ctx context.Context) error

// Ping implements pinger.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type component struct {
	name string
	p    pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []component
	version    string
}

// NewHealthHandler creates a HealthHandler with the database as its first
// component.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		components: []component{{name: "database", p: db}},
		version:    version,
	}
}

// WithComponent adds another dependency to readiness and health checks.
func (h *HealthHandler) WithComponent(name string, p pinger) *HealthHandler {
	h.components = append(h.components, component{name: name, p: p})
	return h
}

// HealthResponse is the JSON response for /health and /health/ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when every component answers, 503
// naming the components that did not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	results, healthy := h.check(r.Context())
	if healthy {
		writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
		return
	}

	down := make(map[string]CompStatus)
	for name, res := range results {
		if res.Status != statusOK {
			down[name] = CompStatus{Status: res.Status}
		}
	}
	writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
		Status:     statusDown,
		Components: down,
		Timestamp:  time.Now(),
	})
}

// Health is the full report with version and per-component latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	results, healthy := h.check(r.Context())

	code, status := http.StatusOK, statusOK
	if !healthy {
		code, status = http.StatusServiceUnavailable, statusDown
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: results,
		Timestamp:  time.Now(),
	})
}

// check pings every component concurrently under one shared deadline.
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	statuses := make([]CompStatus, len(h.components))
	var g errgroup.Group
	for i, c := range h.components {
		g.Go(func() error {
			start := time.Now()
			if err := c.p.Ping(ctx); err != nil {
				statuses[i] = CompStatus{Status: statusDown}
				return nil
			}
			statuses[i] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]CompStatus, len(h.components))
	healthy := true
	for i, c := range h.components {
		out[c.name] = statuses[i]
		if statuses[i].Status != statusOK {
			healthy = false
		}
	}
	return out, healthy
}
