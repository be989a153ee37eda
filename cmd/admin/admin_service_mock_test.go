package main

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
)

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	CreateUserFunc          func(ctx context.Context, in admin.CreateUserInput) (*domain.User, error)
	ListUsersFunc           func(ctx context.Context, filter domain.UserFilter) (*domain.Page[domain.User], error)
	SetUserActiveFunc       func(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	CreateTypeFunc          func(ctx context.Context, in admin.CreateTypeInput) (*domain.ComplaintType, error)
	ListTypesFunc           func(ctx context.Context, includeInactive bool) ([]domain.ComplaintType, error)
	SetTypeActiveFunc       func(ctx context.Context, id uuid.UUID, active bool) (*domain.ComplaintType, error)
	RegisterComplainantFunc func(ctx context.Context, in admin.RegisterComplainantInput) (*domain.Complainant, error)
	StatsFunc               func(ctx context.Context) (*admin.Stats, error)

	calls struct {
		CreateUser []struct {
			Ctx context.Context
			In  admin.CreateUserInput
		}
		ListUsers []struct {
			Ctx    context.Context
			Filter domain.UserFilter
		}
		SetUserActive []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Active bool
		}
		CreateType []struct {
			Ctx context.Context
			In  admin.CreateTypeInput
		}
		ListTypes []struct {
			Ctx             context.Context
			IncludeInactive bool
		}
		SetTypeActive []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Active bool
		}
		RegisterComplainant []struct {
			Ctx context.Context
			In  admin.RegisterComplainantInput
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockCreateUser          sync.RWMutex
	lockListUsers           sync.RWMutex
	lockSetUserActive       sync.RWMutex
	lockCreateType          sync.RWMutex
	lockListTypes           sync.RWMutex
	lockSetTypeActive       sync.RWMutex
	lockRegisterComplainant sync.RWMutex
	lockStats               sync.RWMutex
}

func (mock *adminServiceMock) CreateUser(ctx context.Context, in admin.CreateUserInput) (*domain.User, error) {
	if mock.CreateUserFunc == nil {
		panic("adminServiceMock.CreateUserFunc: method is nil but adminService.CreateUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  admin.CreateUserInput
	}{Ctx: ctx, In: in}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, in)
}

func (mock *adminServiceMock) CreateUserCalls() []struct {
	Ctx context.Context
	In  admin.CreateUserInput
} {
	mock.lockCreateUser.RLock()
	calls := mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *adminServiceMock) ListUsers(ctx context.Context, filter domain.UserFilter) (*domain.Page[domain.User], error) {
	if mock.ListUsersFunc == nil {
		panic("adminServiceMock.ListUsersFunc: method is nil but adminService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.UserFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx, filter)
}

func (mock *adminServiceMock) ListUsersCalls() []struct {
	Ctx    context.Context
	Filter domain.UserFilter
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *adminServiceMock) SetUserActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	if mock.SetUserActiveFunc == nil {
		panic("adminServiceMock.SetUserActiveFunc: method is nil but adminService.SetUserActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
	}{Ctx: ctx, ID: id, Active: active}
	mock.lockSetUserActive.Lock()
	mock.calls.SetUserActive = append(mock.calls.SetUserActive, callInfo)
	mock.lockSetUserActive.Unlock()
	return mock.SetUserActiveFunc(ctx, id, active)
}

func (mock *adminServiceMock) SetUserActiveCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Active bool
} {
	mock.lockSetUserActive.RLock()
	calls := mock.calls.SetUserActive
	mock.lockSetUserActive.RUnlock()
	return calls
}

func (mock *adminServiceMock) CreateType(ctx context.Context, in admin.CreateTypeInput) (*domain.ComplaintType, error) {
	if mock.CreateTypeFunc == nil {
		panic("adminServiceMock.CreateTypeFunc: method is nil but adminService.CreateType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  admin.CreateTypeInput
	}{Ctx: ctx, In: in}
	mock.lockCreateType.Lock()
	mock.calls.CreateType = append(mock.calls.CreateType, callInfo)
	mock.lockCreateType.Unlock()
	return mock.CreateTypeFunc(ctx, in)
}

func (mock *adminServiceMock) CreateTypeCalls() []struct {
	Ctx context.Context
	In  admin.CreateTypeInput
} {
	mock.lockCreateType.RLock()
	calls := mock.calls.CreateType
	mock.lockCreateType.RUnlock()
	return calls
}

func (mock *adminServiceMock) ListTypes(ctx context.Context, includeInactive bool) ([]domain.ComplaintType, error) {
	if mock.ListTypesFunc == nil {
		panic("adminServiceMock.ListTypesFunc: method is nil but adminService.ListTypes was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		IncludeInactive bool
	}{Ctx: ctx, IncludeInactive: includeInactive}
	mock.lockListTypes.Lock()
	mock.calls.ListTypes = append(mock.calls.ListTypes, callInfo)
	mock.lockListTypes.Unlock()
	return mock.ListTypesFunc(ctx, includeInactive)
}

func (mock *adminServiceMock) ListTypesCalls() []struct {
	Ctx             context.Context
	IncludeInactive bool
} {
	mock.lockListTypes.RLock()
	calls := mock.calls.ListTypes
	mock.lockListTypes.RUnlock()
	return calls
}

func (mock *adminServiceMock) SetTypeActive(ctx context.Context, id uuid.UUID, active bool) (*domain.ComplaintType, error) {
	if mock.SetTypeActiveFunc == nil {
		panic("adminServiceMock.SetTypeActiveFunc: method is nil but adminService.SetTypeActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
	}{Ctx: ctx, ID: id, Active: active}
	mock.lockSetTypeActive.Lock()
	mock.calls.SetTypeActive = append(mock.calls.SetTypeActive, callInfo)
	mock.lockSetTypeActive.Unlock()
	return mock.SetTypeActiveFunc(ctx, id, active)
}

func (mock *adminServiceMock) SetTypeActiveCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Active bool
} {
	mock.lockSetTypeActive.RLock()
	calls := mock.calls.SetTypeActive
	mock.lockSetTypeActive.RUnlock()
	return calls
}

func (mock *adminServiceMock) RegisterComplainant(ctx context.Context, in admin.RegisterComplainantInput) (*domain.Complainant, error) {
	if mock.RegisterComplainantFunc == nil {
		panic("adminServiceMock.RegisterComplainantFunc: method is nil but adminService.RegisterComplainant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  admin.RegisterComplainantInput
	}{Ctx: ctx, In: in}
	mock.lockRegisterComplainant.Lock()
	mock.calls.RegisterComplainant = append(mock.calls.RegisterComplainant, callInfo)
	mock.lockRegisterComplainant.Unlock()
	return mock.RegisterComplainantFunc(ctx, in)
}

func (mock *adminServiceMock) RegisterComplainantCalls() []struct {
	Ctx context.Context
	In  admin.RegisterComplainantInput
} {
	mock.lockRegisterComplainant.RLock()
	calls := mock.calls.RegisterComplainant
	mock.lockRegisterComplainant.RUnlock()
	return calls
}

func (mock *adminServiceMock) Stats(ctx context.Context) (*admin.Stats, error) {
	if mock.StatsFunc == nil {
		panic("adminServiceMock.StatsFunc: method is nil but adminService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *adminServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
