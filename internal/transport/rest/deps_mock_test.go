package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
	"github.com/Memex-200/Abutig-sub000/internal/service/admin"
	"github.com/Memex-200/Abutig-sub000/internal/service/complaint"
)

var (
	_ complaintService = &complaintServiceMock{}
	_ adminService     = &adminServiceMock{}
	_ actorResolver    = &actorResolverMock{}
	_ httpMetrics      = &httpMetricsMock{}
)

type complaintServiceMock struct {
	ListFunc            func(ctx context.Context, filter domain.ComplaintFilter) (*domain.Page[domain.Complaint], error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	CreateFunc          func(ctx context.Context, in complaint.CreateInput) (*domain.Complaint, error)
	UpdateStatusFunc    func(ctx context.Context, in complaint.UpdateStatusInput) (*domain.Complaint, error)
	AssignFunc          func(ctx context.Context, in complaint.AssignInput) (*domain.Complaint, error)
	AddInternalNoteFunc func(ctx context.Context, in complaint.NoteInput) (domain.ComplaintLog, error)
	ListLogsFunc        func(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintLog, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.ComplaintFilter
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			In  complaint.CreateInput
		}
		UpdateStatus []struct {
			Ctx context.Context
			In  complaint.UpdateStatusInput
		}
		Assign []struct {
			Ctx context.Context
			In  complaint.AssignInput
		}
		AddInternalNote []struct {
			Ctx context.Context
			In  complaint.NoteInput
		}
		ListLogs []struct {
			Ctx         context.Context
			ComplaintID uuid.UUID
		}
	}
	lockList            sync.RWMutex
	lockGetByID         sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdateStatus    sync.RWMutex
	lockAssign          sync.RWMutex
	lockAddInternalNote sync.RWMutex
	lockListLogs        sync.RWMutex
}

func (mock *complaintServiceMock) List(ctx context.Context, filter domain.ComplaintFilter) (*domain.Page[domain.Complaint], error) {
	if mock.ListFunc == nil {
		panic("complaintServiceMock.ListFunc: method is nil but complaintService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ComplaintFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *complaintServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ComplaintFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *complaintServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	if mock.GetByIDFunc == nil {
		panic("complaintServiceMock.GetByIDFunc: method is nil but complaintService.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *complaintServiceMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *complaintServiceMock) Create(ctx context.Context, in complaint.CreateInput) (*domain.Complaint, error) {
	if mock.CreateFunc == nil {
		panic("complaintServiceMock.CreateFunc: method is nil but complaintService.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  complaint.CreateInput
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *complaintServiceMock) CreateCalls() []struct {
	Ctx context.Context
	In  complaint.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *complaintServiceMock) UpdateStatus(ctx context.Context, in complaint.UpdateStatusInput) (*domain.Complaint, error) {
	if mock.UpdateStatusFunc == nil {
		panic("complaintServiceMock.UpdateStatusFunc: method is nil but complaintService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  complaint.UpdateStatusInput
	}{Ctx: ctx, In: in}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, in)
}

func (mock *complaintServiceMock) UpdateStatusCalls() []struct {
	Ctx context.Context
	In  complaint.UpdateStatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *complaintServiceMock) Assign(ctx context.Context, in complaint.AssignInput) (*domain.Complaint, error) {
	if mock.AssignFunc == nil {
		panic("complaintServiceMock.AssignFunc: method is nil but complaintService.Assign was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  complaint.AssignInput
	}{Ctx: ctx, In: in}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, callInfo)
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, in)
}

func (mock *complaintServiceMock) AssignCalls() []struct {
	Ctx context.Context
	In  complaint.AssignInput
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

func (mock *complaintServiceMock) AddInternalNote(ctx context.Context, in complaint.NoteInput) (domain.ComplaintLog, error) {
	if mock.AddInternalNoteFunc == nil {
		panic("complaintServiceMock.AddInternalNoteFunc: method is nil but complaintService.AddInternalNote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  complaint.NoteInput
	}{Ctx: ctx, In: in}
	mock.lockAddInternalNote.Lock()
	mock.calls.AddInternalNote = append(mock.calls.AddInternalNote, callInfo)
	mock.lockAddInternalNote.Unlock()
	return mock.AddInternalNoteFunc(ctx, in)
}

func (mock *complaintServiceMock) AddInternalNoteCalls() []struct {
	Ctx context.Context
	In  complaint.NoteInput
} {
	mock.lockAddInternalNote.RLock()
	calls := mock.calls.AddInternalNote
	mock.lockAddInternalNote.RUnlock()
	return calls
}

func (mock *complaintServiceMock) ListLogs(ctx context.Context, complaintID uuid.UUID) ([]domain.ComplaintLog, error) {
	if mock.ListLogsFunc == nil {
		panic("complaintServiceMock.ListLogsFunc: method is nil but complaintService.ListLogs was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ComplaintID uuid.UUID
	}{Ctx: ctx, ComplaintID: complaintID}
	mock.lockListLogs.Lock()
	mock.calls.ListLogs = append(mock.calls.ListLogs, callInfo)
	mock.lockListLogs.Unlock()
	return mock.ListLogsFunc(ctx, complaintID)
}

func (mock *complaintServiceMock) ListLogsCalls() []struct {
	Ctx         context.Context
	ComplaintID uuid.UUID
} {
	mock.lockListLogs.RLock()
	calls := mock.calls.ListLogs
	mock.lockListLogs.RUnlock()
	return calls
}

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

type httpMetricsMock struct {
	ObserveHTTPFunc func(method string, route string, status int, elapsed time.Duration)
	HandlerFunc     func() http.Handler

	calls struct {
		ObserveHTTP []struct {
			Method  string
			Route   string
			Status  int
			Elapsed time.Duration
		}
		Handler []struct{}
	}
	lockObserveHTTP sync.RWMutex
	lockHandler     sync.RWMutex
}

func (mock *httpMetricsMock) ObserveHTTP(method string, route string, status int, elapsed time.Duration) {
	if mock.ObserveHTTPFunc == nil {
		panic("httpMetricsMock.ObserveHTTPFunc: method is nil but httpMetrics.ObserveHTTP was just called")
	}
	callInfo := struct {
		Method  string
		Route   string
		Status  int
		Elapsed time.Duration
	}{Method: method, Route: route, Status: status, Elapsed: elapsed}
	mock.lockObserveHTTP.Lock()
	mock.calls.ObserveHTTP = append(mock.calls.ObserveHTTP, callInfo)
	mock.lockObserveHTTP.Unlock()
	mock.ObserveHTTPFunc(method, route, status, elapsed)
}

func (mock *httpMetricsMock) ObserveHTTPCalls() []struct {
	Method  string
	Route   string
	Status  int
	Elapsed time.Duration
} {
	mock.lockObserveHTTP.RLock()
	calls := mock.calls.ObserveHTTP
	mock.lockObserveHTTP.RUnlock()
	return calls
}

func (mock *httpMetricsMock) Handler() http.Handler {
	if mock.HandlerFunc == nil {
		panic("httpMetricsMock.HandlerFunc: method is nil but httpMetrics.Handler was just called")
	}
	callInfo := struct{}{}
	mock.lockHandler.Lock()
	mock.calls.Handler = append(mock.calls.Handler, callInfo)
	mock.lockHandler.Unlock()
	return mock.HandlerFunc()
}

func (mock *httpMetricsMock) HandlerCalls() []struct{} {
	mock.lockHandler.RLock()
	calls := mock.calls.Handler
	mock.lockHandler.RUnlock()
	return calls
}
