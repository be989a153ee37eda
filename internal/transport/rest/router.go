package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Memex-200/Abutig-sub000/internal/config"
	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/internal/transport/middleware"
	"github.com/Memex-200/Abutig-sub000/internal/transport/rest/loader"
)

type actorResolver interface {
	Resolve(ctx context.Context, token string) (domain.Actor, error)
}

type httpMetrics interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
	Handler() http.Handler
}

// RouterDeps collects everything the HTTP surface is built from.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter
	Resolver    actorResolver
	Metrics     httpMetrics
	Loaders     *loader.Repos
	Health      *HealthHandler
	Complaints  *ComplaintHandler
	Admin       *AdminHandler
}

// NewRouter builds the application handler. Health and metrics endpoints
// are public; everything under /api/ is rate limited and requires a bearer
// token.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", d.Health.Health)
	mux.HandleFunc("GET /health/live", d.Health.Live)
	mux.HandleFunc("GET /health/ready", d.Health.Ready)
	mux.Handle("GET /metrics", d.Metrics.Handler())

	api := middleware.Chain(
		d.RateLimiter.Middleware(),
		middleware.Auth(d.Resolver, d.Logger),
		middleware.Middleware(loader.Middleware(d.Loaders)),
	)
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, api(h))
	}

	handle("GET /api/complaints", d.Complaints.List)
	handle("POST /api/complaints", d.Complaints.Create)
	handle("GET /api/complaints/{id}", d.Complaints.Get)
	handle("PATCH /api/complaints/{id}/status", d.Complaints.UpdateStatus)
	handle("POST /api/complaints/{id}/assign", d.Complaints.Assign)
	handle("POST /api/complaints/{id}/notes", d.Complaints.AddNote)
	handle("GET /api/complaints/{id}/logs", d.Complaints.Logs)

	handle("GET /api/complaint-types", d.Admin.ListTypes)

	handle("GET /api/admin/users", d.Admin.ListUsers)
	handle("POST /api/admin/users", d.Admin.CreateUser)
	handle("PATCH /api/admin/users/{id}/active", d.Admin.SetUserActive)
	handle("POST /api/admin/complaint-types", d.Admin.CreateType)
	handle("PATCH /api/admin/complaint-types/{id}/active", d.Admin.SetTypeActive)
	handle("POST /api/admin/complainants", d.Admin.RegisterComplainant)
	handle("GET /api/admin/stats", d.Admin.Stats)

	route := func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		return pattern
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics, route),
		middleware.CORS(d.CORS),
	)(mux)
}
