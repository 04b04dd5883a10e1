package domain

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectActive: true, ProjectCompleted: true, ProjectOnHold: true,
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[TaskStatus]bool{
	TaskTodo: true, TaskInProgress: true, TaskDone: true,
}

// AllTaskStatuses lists the task statuses in board column order.
var AllTaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskDone}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ValidTaskPriorities is the canonical set of accepted priority strings.
var ValidTaskPriorities = map[TaskPriority]bool{
	PriorityLow: true, PriorityMedium: true, PriorityHigh: true,
}

type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// ValidMemberRoles is the canonical set of accepted role strings.
var ValidMemberRoles = map[MemberRole]bool{
	RoleOwner: true, RoleAdmin: true, RoleMember: true,
}

// rank orders roles for permission comparison: owner > admin > member.
func (r MemberRole) rank() int {
	switch r {
	case RoleOwner:
		return 3
	case RoleAdmin:
		return 2
	case RoleMember:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r grants the access tier of other or higher.
func (r MemberRole) AtLeast(other MemberRole) bool {
	return r.rank() >= other.rank()
}

// CanEdit reports whether the role may edit or delete project resources.
func (r MemberRole) CanEdit() bool {
	return r.AtLeast(RoleAdmin)
}
