// Package service pairs cached reads with cache-invalidating writes for each
// resource. Queries go through the query cache; mutations hit the API
// directly, invalidate the key patterns their kind declares in Rules, and
// announce success with a fixed message. Failures come back as normalized
// errors; the pipeline already notified for them, so nothing here toasts
// twice.
package service

import (
	"context"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/notify"
	"github.com/taskzilla/taskzilla-cli/internal/query"
)

// TeamsAPI is the slice of the pipeline the teams service uses.
type TeamsAPI interface {
	ListTeams(ctx context.Context) ([]api.Team, error)
	GetTeam(ctx context.Context, uuid string) (*api.Team, error)
	CreateTeam(ctx context.Context, in api.TeamInput) (*api.Team, error)
	UpdateTeam(ctx context.Context, uuid string, in api.TeamInput) (*api.Team, error)
	DeleteTeam(ctx context.Context, uuid string) error
}

// TasksAPI is the slice of the pipeline the tasks service uses.
type TasksAPI interface {
	ListMyTasks(ctx context.Context, filters api.TaskFilters) ([]api.Task, error)
	ListTeamTasks(ctx context.Context, teamID string, filters api.TaskFilters) ([]api.Task, error)
	TeamTaskStatistics(ctx context.Context, teamID string) (*api.TaskStatistics, error)
	GetTask(ctx context.Context, uuid string) (*api.Task, error)
	CreateTask(ctx context.Context, in api.CreateTaskInput) (*api.Task, error)
	UpdateTask(ctx context.Context, uuid string, in api.UpdateTaskInput) (*api.Task, error)
	UpdateTaskStatus(ctx context.Context, uuid string, status api.TaskStatus) (*api.Task, error)
	DeleteTask(ctx context.Context, uuid string) error
	AssignUsers(ctx context.Context, uuid string, userIDs []string) (*api.Task, error)
	RemoveAssignees(ctx context.Context, uuid string, userIDs []string) (*api.Task, error)
}

// InvitesAPI is the slice of the pipeline the invites service uses.
type InvitesAPI interface {
	SendInvites(ctx context.Context, in api.SendInvitesInput) ([]api.Invite, error)
	AcceptInvite(ctx context.Context, token string) error
	DeclineInvite(ctx context.Context, token string) error
	RevokeInvite(ctx context.Context, inviteID string) error
	ListTeamInvites(ctx context.Context, teamID string) ([]api.Invite, error)
	ListMyPendingInvites(ctx context.Context) ([]api.Invite, error)
}

// Services bundles the per-resource services over one cache and notifier.
type Services struct {
	Teams   *Teams
	Tasks   *Tasks
	Invites *Invites

	cache *query.Cache
}

// New wires the services around a pipeline client.
func New(client *api.Client, cache *query.Cache, notifier notify.Notifier) *Services {
	if notifier == nil {
		notifier = notify.Silent{}
	}
	d := deps{cache: cache, notifier: notifier}
	return &Services{
		Teams:   &Teams{api: client, deps: d},
		Tasks:   &Tasks{api: client, deps: d},
		Invites: &Invites{api: client, deps: d},
		cache:   cache,
	}
}

// Reset drops all cached server state, e.g. after logout.
func (s *Services) Reset() {
	s.cache.Clear()
}

type deps struct {
	cache    *query.Cache
	notifier notify.Notifier
}

// mutated applies a successful mutation's cache effects and announces it.
func (d deps) mutated(kind Kind, params map[string]string, message string) {
	d.cache.Invalidate(expand(Rules[kind], params)...)
	d.notifier.Success(message)
}
