// Package loader provides per-request DataLoaders that batch the lookups
// complaint responses need (type names, assignee names) into single SQL
// calls. Loaders call repositories directly and bypass the service layer;
// the complaints being rendered were already access-checked.
package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type typeRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ComplaintType, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Types typeRepo
	Users userRepo
}

// Loaders is one request's set of DataLoaders. Results are cached for the
// lifetime of the request only.
type Loaders struct {
	TypeByID *dataloader.Loader[uuid.UUID, *domain.ComplaintType]
	UserByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// New creates a fresh set of loaders backed by repos.
func New(repos *Repos) *Loaders {
	return &Loaders{
		TypeByID: newLoader(byID(repos.Types.GetByIDs, func(t domain.ComplaintType) uuid.UUID { return t.ID })),
		UserByID: newLoader(byID(repos.Users.GetByIDs, func(u domain.User) uuid.UUID { return u.ID })),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// byID builds a batch function for a GetByIDs-style query. Keys without a
// row resolve to nil rather than an error.
func byID[T any](
	fetch func(ctx context.Context, ids []uuid.UUID) ([]T, error),
	key func(T) uuid.UUID,
) dataloader.BatchFunc[uuid.UUID, *T] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*T] {
		rows, err := fetch(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*T], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*T]{Error: err}
			}
			return results
		}

		found := make(map[uuid.UUID]*T, len(rows))
		for i := range rows {
			found[key(rows[i])] = &rows[i]
		}

		results := make([]*dataloader.Result[*T], len(keys))
		for i, k := range keys {
			results[i] = &dataloader.Result[*T]{Data: found[k]}
		}
		return results
	}
}

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's loaders, or nil when the middleware
// was not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware installs a fresh set of loaders on every request.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), New(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
