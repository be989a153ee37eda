package middleware

import (
	"context"
	"sync"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

var _ actorResolver = &actorResolverMock{}

type actorResolverMock struct {
	ResolveFunc func(ctx context.Context, token string) (domain.Actor, error)

	calls struct {
		Resolve []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *actorResolverMock) Resolve(ctx context.Context, token string) (domain.Actor, error) {
	if mock.ResolveFunc == nil {
		panic("actorResolverMock.ResolveFunc: method is nil but actorResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, token)
}

func (mock *actorResolverMock) ResolveCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
