package service

import (
	"context"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/query"
)

// Tasks serves task queries and mutations.
type Tasks struct {
	api TasksAPI
	deps
}

// My returns the user's assigned tasks, cached per filter set.
func (s *Tasks) My(ctx context.Context, filters api.TaskFilters) ([]api.Task, error) {
	key := query.NewKey("tasks", "my", filterPart(filters))
	return query.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]api.Task, error) {
		return s.api.ListMyTasks(ctx, filters)
	})
}

// ForTeam returns a team's tasks, cached per team and filter set.
func (s *Tasks) ForTeam(ctx context.Context, teamID string, filters api.TaskFilters) ([]api.Task, error) {
	key := query.NewKey("tasks", "team", teamID, filterPart(filters))
	return query.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]api.Task, error) {
		return s.api.ListTeamTasks(ctx, teamID, filters)
	})
}

// Statistics returns a team's task counts, cached.
func (s *Tasks) Statistics(ctx context.Context, teamID string) (*api.TaskStatistics, error) {
	key := query.NewKey("tasks", "statistics", teamID)
	return query.Fetch(ctx, s.cache, key, func(ctx context.Context) (*api.TaskStatistics, error) {
		return s.api.TeamTaskStatistics(ctx, teamID)
	})
}

// Get returns one task, cached.
func (s *Tasks) Get(ctx context.Context, uuid string) (*api.Task, error) {
	key := query.NewKey("tasks", "item", uuid)
	return query.Fetch(ctx, s.cache, key, func(ctx context.Context) (*api.Task, error) {
		return s.api.GetTask(ctx, uuid)
	})
}

// Create makes a new task on a team.
func (s *Tasks) Create(ctx context.Context, in api.CreateTaskInput) (*api.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task, err := s.api.CreateTask(ctx, in)
	if err != nil {
		return nil, err
	}
	s.mutated(KindTaskCreate, taskParams(task, in.TeamID), "Task created successfully!")
	return task, nil
}

// Update edits a task's fields.
func (s *Tasks) Update(ctx context.Context, uuid string, in api.UpdateTaskInput) (*api.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task, err := s.api.UpdateTask(ctx, uuid, in)
	if err != nil {
		return nil, err
	}
	s.mutated(KindTaskUpdate, taskParams(task, ""), "Task updated successfully!")
	return task, nil
}

// UpdateStatus moves a task along the board.
func (s *Tasks) UpdateStatus(ctx context.Context, uuid string, status api.TaskStatus) (*api.Task, error) {
	task, err := s.api.UpdateTaskStatus(ctx, uuid, status)
	if err != nil {
		return nil, err
	}
	s.mutated(KindTaskStatus, taskParams(task, ""), "Task status updated!")
	return task, nil
}

// Delete removes a task. teamID may be empty when the caller does not know
// it; invalidation then widens to every team's list.
func (s *Tasks) Delete(ctx context.Context, uuid, teamID string) error {
	if err := s.api.DeleteTask(ctx, uuid); err != nil {
		return err
	}
	s.mutated(KindTaskDelete, map[string]string{"team": teamID, "task": uuid}, "Task deleted successfully!")
	return nil
}

// Assign adds users to a task.
func (s *Tasks) Assign(ctx context.Context, uuid string, userIDs []string) (*api.Task, error) {
	task, err := s.api.AssignUsers(ctx, uuid, userIDs)
	if err != nil {
		return nil, err
	}
	s.mutated(KindTaskAssign, taskParams(task, ""), "Users assigned successfully!")
	return task, nil
}

// Unassign removes users from a task.
func (s *Tasks) Unassign(ctx context.Context, uuid string, userIDs []string) (*api.Task, error) {
	task, err := s.api.RemoveAssignees(ctx, uuid, userIDs)
	if err != nil {
		return nil, err
	}
	s.mutated(KindTaskUnassign, taskParams(task, ""), "Assignees removed successfully!")
	return task, nil
}

// taskParams derives the invalidation parameters from a mutation result,
// preferring the server's team id over the fallback.
func taskParams(task *api.Task, fallbackTeam string) map[string]string {
	params := map[string]string{"team": fallbackTeam}
	if task != nil {
		params["task"] = task.UUID
		if task.TeamID != "" {
			params["team"] = task.TeamID
		}
	}
	return params
}

// filterPart fingerprints a filter set for use as a key part.
func filterPart(filters api.TaskFilters) string {
	if filters.IsZero() {
		return "all"
	}
	return filters.Values().Encode()
}
