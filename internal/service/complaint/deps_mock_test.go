package complaint

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Memex-200/Abutig-sub000/internal/domain"
)

var (
	_ complaintRepo      = &complaintRepoMock{}
	_ logRepo            = &logRepoMock{}
	_ typeRepo           = &typeRepoMock{}
	_ userRepo           = &userRepoMock{}
	_ notifier           = &notifierMock{}
	_ transitionRecorder = &transitionRecorderMock{}
	_ txManager          = &txManagerMock{}
)

type complaintRepoMock struct {
	CreateFunc         func(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	GetForUpdateFunc   func(ctx context.Context, id uuid.UUID) (*domain.Complaint, error)
	ListFunc           func(ctx context.Context, scope domain.ComplaintScope, filter domain.ComplaintFilter) ([]domain.Complaint, int, error)
	UpdateAssigneeFunc func(ctx context.Context, id uuid.UUID, assigneeID uuid.UUID) (*domain.Complaint, error)
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus, resolvedAt *time.Time) (*domain.Complaint, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Complaint
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Scope  domain.ComplaintScope
			Filter domain.ComplaintFilter
		}
		UpdateAssignee []struct {
			Ctx        context.Context
			ID         uuid.UUID
			AssigneeID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx        context.Context
			ID         uuid.UUID
			Status     domain.ComplaintStatus
			ResolvedAt *time.Time
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockGetForUpdate   sync.RWMutex
	lockList           sync.RWMutex
	lockUpdateAssignee sync.RWMutex
	lockUpdateStatus   sync.RWMutex
}

func (mock *complaintRepoMock) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	if mock.CreateFunc == nil {
		panic("complaintRepoMock.CreateFunc: method is nil but complaintRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Complaint
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *complaintRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Complaint
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *complaintRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	if mock.GetByIDFunc == nil {
		panic("complaintRepoMock.GetByIDFunc: method is nil but complaintRepo.GetByID was just called")
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

func (mock *complaintRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *complaintRepoMock) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Complaint, error) {
	if mock.GetForUpdateFunc == nil {
		panic("complaintRepoMock.GetForUpdateFunc: method is nil but complaintRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *complaintRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *complaintRepoMock) List(ctx context.Context, scope domain.ComplaintScope, filter domain.ComplaintFilter) ([]domain.Complaint, int, error) {
	if mock.ListFunc == nil {
		panic("complaintRepoMock.ListFunc: method is nil but complaintRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Scope  domain.ComplaintScope
		Filter domain.ComplaintFilter
	}{Ctx: ctx, Scope: scope, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, scope, filter)
}

func (mock *complaintRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Scope  domain.ComplaintScope
	Filter domain.ComplaintFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *complaintRepoMock) UpdateAssignee(ctx context.Context, id uuid.UUID, assigneeID uuid.UUID) (*domain.Complaint, error) {
	if mock.UpdateAssigneeFunc == nil {
		panic("complaintRepoMock.UpdateAssigneeFunc: method is nil but complaintRepo.UpdateAssignee was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		AssigneeID uuid.UUID
	}{Ctx: ctx, ID: id, AssigneeID: assigneeID}
	mock.lockUpdateAssignee.Lock()
	mock.calls.UpdateAssignee = append(mock.calls.UpdateAssignee, callInfo)
	mock.lockUpdateAssignee.Unlock()
	return mock.UpdateAssigneeFunc(ctx, id, assigneeID)
}

func (mock *complaintRepoMock) UpdateAssigneeCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	AssigneeID uuid.UUID
} {
	mock.lockUpdateAssignee.RLock()
	calls := mock.calls.UpdateAssignee
	mock.lockUpdateAssignee.RUnlock()
	return calls
}

func (mock *complaintRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ComplaintStatus, resolvedAt *time.Time) (*domain.Complaint, error) {
	if mock.UpdateStatusFunc == nil {
		panic("complaintRepoMock.UpdateStatusFunc: method is nil but complaintRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		Status     domain.ComplaintStatus
		ResolvedAt *time.Time
	}{Ctx: ctx, ID: id, Status: status, ResolvedAt: resolvedAt}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, resolvedAt)
}

func (mock *complaintRepoMock) UpdateStatusCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	Status     domain.ComplaintStatus
	ResolvedAt *time.Time
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

type logRepoMock struct {
	AppendFunc          func(ctx context.Context, entry domain.ComplaintLog) (domain.ComplaintLog, error)
	ListByComplaintFunc func(ctx context.Context, complaintID uuid.UUID, exclude ...domain.LogAction) ([]domain.ComplaintLog, error)

	calls struct {
		Append []struct {
			Ctx   context.Context
			Entry domain.ComplaintLog
		}
		ListByComplaint []struct {
			Ctx         context.Context
			ComplaintID uuid.UUID
			Exclude     []domain.LogAction
		}
	}
	lockAppend          sync.RWMutex
	lockListByComplaint sync.RWMutex
}

func (mock *logRepoMock) Append(ctx context.Context, entry domain.ComplaintLog) (domain.ComplaintLog, error) {
	if mock.AppendFunc == nil {
		panic("logRepoMock.AppendFunc: method is nil but logRepo.Append was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.ComplaintLog
	}{Ctx: ctx, Entry: entry}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, entry)
}

func (mock *logRepoMock) AppendCalls() []struct {
	Ctx   context.Context
	Entry domain.ComplaintLog
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *logRepoMock) ListByComplaint(ctx context.Context, complaintID uuid.UUID, exclude ...domain.LogAction) ([]domain.ComplaintLog, error) {
	if mock.ListByComplaintFunc == nil {
		panic("logRepoMock.ListByComplaintFunc: method is nil but logRepo.ListByComplaint was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ComplaintID uuid.UUID
		Exclude     []domain.LogAction
	}{Ctx: ctx, ComplaintID: complaintID, Exclude: exclude}
	mock.lockListByComplaint.Lock()
	mock.calls.ListByComplaint = append(mock.calls.ListByComplaint, callInfo)
	mock.lockListByComplaint.Unlock()
	return mock.ListByComplaintFunc(ctx, complaintID, exclude...)
}

func (mock *logRepoMock) ListByComplaintCalls() []struct {
	Ctx         context.Context
	ComplaintID uuid.UUID
	Exclude     []domain.LogAction
} {
	mock.lockListByComplaint.RLock()
	calls := mock.calls.ListByComplaint
	mock.lockListByComplaint.RUnlock()
	return calls
}

type typeRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ComplaintType, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *typeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplaintType, error) {
	if mock.GetByIDFunc == nil {
		panic("typeRepoMock.GetByIDFunc: method is nil but typeRepo.GetByID was just called")
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

func (mock *typeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

type notifierMock struct {
	DispatchFunc func(ev domain.StatusChangeEvent) bool

	calls struct {
		Dispatch []struct {
			Ev domain.StatusChangeEvent
		}
	}
	lockDispatch sync.RWMutex
}

func (mock *notifierMock) Dispatch(ev domain.StatusChangeEvent) bool {
	if mock.DispatchFunc == nil {
		panic("notifierMock.DispatchFunc: method is nil but notifier.Dispatch was just called")
	}
	callInfo := struct {
		Ev domain.StatusChangeEvent
	}{Ev: ev}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	return mock.DispatchFunc(ev)
}

func (mock *notifierMock) DispatchCalls() []struct {
	Ev domain.StatusChangeEvent
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}

type transitionRecorderMock struct {
	ObserveTransitionFunc func(from domain.ComplaintStatus, to domain.ComplaintStatus)

	calls struct {
		ObserveTransition []struct {
			From domain.ComplaintStatus
			To   domain.ComplaintStatus
		}
	}
	lockObserveTransition sync.RWMutex
}

func (mock *transitionRecorderMock) ObserveTransition(from domain.ComplaintStatus, to domain.ComplaintStatus) {
	if mock.ObserveTransitionFunc == nil {
		panic("transitionRecorderMock.ObserveTransitionFunc: method is nil but transitionRecorder.ObserveTransition was just called")
	}
	callInfo := struct {
		From domain.ComplaintStatus
		To   domain.ComplaintStatus
	}{From: from, To: to}
	mock.lockObserveTransition.Lock()
	mock.calls.ObserveTransition = append(mock.calls.ObserveTransition, callInfo)
	mock.lockObserveTransition.Unlock()
	mock.ObserveTransitionFunc(from, to)
}

func (mock *transitionRecorderMock) ObserveTransitionCalls() []struct {
	From domain.ComplaintStatus
	To   domain.ComplaintStatus
} {
	mock.lockObserveTransition.RLock()
	calls := mock.calls.ObserveTransition
	mock.lockObserveTransition.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
