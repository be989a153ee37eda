package domain

// Role is the authorization level of an actor.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleCitizen  Role = "CITIZEN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleCitizen:
		return true
	}
	return false
}

// IsStaff reports whether the role belongs to a staff user account.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// ComplaintStatus is the lifecycle state of a complaint. Any status may
// follow any other; there is no enforced transition graph.
type ComplaintStatus string

const (
	StatusNew         ComplaintStatus = "NEW"
	StatusUnderReview ComplaintStatus = "UNDER_REVIEW"
	StatusInProgress  ComplaintStatus = "IN_PROGRESS"
	StatusResolved    ComplaintStatus = "RESOLVED"
	StatusRejected    ComplaintStatus = "REJECTED"
	StatusClosed      ComplaintStatus = "CLOSED"
)

// AllStatuses lists every status in display order.
var AllStatuses = []ComplaintStatus{
	StatusNew, StatusUnderReview, StatusInProgress,
	StatusResolved, StatusRejected, StatusClosed,
}

func (s ComplaintStatus) String() string { return string(s) }

func (s ComplaintStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusUnderReview, StatusInProgress, StatusResolved, StatusRejected, StatusClosed:
		return true
	}
	return false
}

// LogAction is the kind of entry recorded in a complaint's history.
type LogAction string

const (
	LogActionCreated       LogAction = "CREATED"
	LogActionStatusChanged LogAction = "STATUS_CHANGED"
	LogActionAssigned      LogAction = "ASSIGNED"
	LogActionInternalNote  LogAction = "INTERNAL_NOTE"
)

func (a LogAction) String() string { return string(a) }

func (a LogAction) IsValid() bool {
	switch a {
	case LogActionCreated, LogActionStatusChanged, LogActionAssigned, LogActionInternalNote:
		return true
	}
	return false
}

// SortOrder is the direction of the creation-time sort.
type SortOrder string

const (
	SortDesc SortOrder = "DESC"
	SortAsc  SortOrder = "ASC"
)

func (o SortOrder) IsValid() bool {
	return o == SortDesc || o == SortAsc
}
