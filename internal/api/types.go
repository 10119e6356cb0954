package api

import (
	"net/url"
	"time"
)

// User is an account as returned by the API.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// TeamMember is a user in the context of a team.
type TeamMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role,omitempty"`
	JoinedAt  string `json:"joined_at,omitempty"`
}

// Team groups users and tasks under a lead.
type Team struct {
	UUID                 string       `json:"uuid"`
	Name                 string       `json:"name"`
	LeadID               string       `json:"lead_id"`
	Lead                 *User        `json:"lead,omitempty"`
	Members              []TeamMember `json:"members,omitempty"`
	MembersCount         int          `json:"members_count,omitempty"`
	TasksCount           int          `json:"tasks_count,omitempty"`
	PendingTasksCount    int          `json:"pending_tasks_count,omitempty"`
	InProgressTasksCount int          `json:"in_progress_tasks_count,omitempty"`
	CompletedTasksCount  int          `json:"completed_tasks_count,omitempty"`
	CreatedAt            string       `json:"created_at,omitempty"`
	UpdatedAt            string       `json:"updated_at,omitempty"`
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatusLabels maps statuses to display labels.
var TaskStatusLabels = map[TaskStatus]string{
	TaskStatusPending:    "Pending",
	TaskStatusInProgress: "In Progress",
	TaskStatusCompleted:  "Completed",
}

// Valid reports whether the status is one the API accepts.
func (s TaskStatus) Valid() bool {
	_, ok := TaskStatusLabels[s]
	return ok
}

// TaskPriority orders tasks by urgency.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskPriorityLabels maps priorities to display labels.
var TaskPriorityLabels = map[TaskPriority]string{
	TaskPriorityLow:    "Low",
	TaskPriorityMedium: "Medium",
	TaskPriorityHigh:   "High",
}

// Valid reports whether the priority is one the API accepts.
func (p TaskPriority) Valid() bool {
	_, ok := TaskPriorityLabels[p]
	return ok
}

// Task is a unit of work belonging to a team.
type Task struct {
	UUID        string       `json:"uuid"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"due_date,omitempty"`
	TeamID      string       `json:"team_id"`
	Team        *Team        `json:"team,omitempty"`
	CreatedBy   string       `json:"created_by"`
	Creator     *User        `json:"creator,omitempty"`
	Assignees   []User       `json:"assignees"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
}

// Overdue reports whether the task's due date has passed and it is not done.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == "" || t.Status == TaskStatusCompleted {
		return false
	}
	due, err := time.Parse(time.RFC3339, t.DueDate)
	if err != nil {
		if due, err = time.Parse("2006-01-02", t.DueDate); err != nil {
			return false
		}
	}
	return now.After(due)
}

// TaskStatistics is the per-team aggregate from /tasks/team/{id}/statistics.
type TaskStatistics struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

// TaskFilters narrows task list queries. Zero fields are omitted.
type TaskFilters struct {
	Status      TaskStatus
	Priority    TaskPriority
	TeamID      string
	Search      string
	DueDateFrom string
	DueDateTo   string
}

// Values encodes the filters as query parameters.
func (f TaskFilters) Values() url.Values {
	values := url.Values{}
	if f.Status != "" {
		values.Set("status", string(f.Status))
	}
	if f.Priority != "" {
		values.Set("priority", string(f.Priority))
	}
	if f.TeamID != "" {
		values.Set("team_id", f.TeamID)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.DueDateFrom != "" {
		values.Set("due_date_from", f.DueDateFrom)
	}
	if f.DueDateTo != "" {
		values.Set("due_date_to", f.DueDateTo)
	}
	return values
}

// IsZero reports whether no filter is set.
func (f TaskFilters) IsZero() bool {
	return f == TaskFilters{}
}

// InviteStatus is the lifecycle state of an invitation.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusRejected InviteStatus = "rejected"
	InviteStatusExpired  InviteStatus = "expired"
)

// Invite is a pending or settled team invitation.
type Invite struct {
	ID           string       `json:"id"`
	TeamID       string       `json:"team_id"`
	Team         *Team        `json:"team,omitempty"`
	InviterID    string       `json:"inviter_id"`
	Inviter      *User        `json:"inviter,omitempty"`
	InviteeEmail string       `json:"invitee_email"`
	InviteeID    string       `json:"invitee_id,omitempty"`
	Invitee      *User        `json:"invitee,omitempty"`
	Role         string       `json:"role"`
	Status       InviteStatus `json:"status"`
	Token        string       `json:"token"`
	ExpiresAt    string       `json:"expires_at,omitempty"`
	CreatedAt    string       `json:"created_at,omitempty"`
	UpdatedAt    string       `json:"updated_at,omitempty"`
}

// PageMeta is the pagination block paginated list endpoints nest under data.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}
