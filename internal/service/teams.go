package service

import (
	"context"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/query"
)

// Teams serves team queries and mutations.
type Teams struct {
	api TeamsAPI
	deps
}

// List returns all teams the user belongs to, cached.
func (s *Teams) List(ctx context.Context) ([]api.Team, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("teams"), func(ctx context.Context) ([]api.Team, error) {
		return s.api.ListTeams(ctx)
	})
}

// Get returns one team, cached.
func (s *Teams) Get(ctx context.Context, uuid string) (*api.Team, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("teams", uuid), func(ctx context.Context) (*api.Team, error) {
		return s.api.GetTeam(ctx, uuid)
	})
}

// Create makes a new team.
func (s *Teams) Create(ctx context.Context, in api.TeamInput) (*api.Team, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	team, err := s.api.CreateTeam(ctx, in)
	if err != nil {
		return nil, err
	}
	s.mutated(KindTeamCreate, nil, "Team created successfully!")
	return team, nil
}

// Update renames or re-describes a team.
func (s *Teams) Update(ctx context.Context, uuid string, in api.TeamInput) (*api.Team, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	team, err := s.api.UpdateTeam(ctx, uuid, in)
	if err != nil {
		return nil, err
	}
	s.mutated(KindTeamUpdate, nil, "Team updated successfully!")
	return team, nil
}

// Delete removes a team.
func (s *Teams) Delete(ctx context.Context, uuid string) error {
	if err := s.api.DeleteTeam(ctx, uuid); err != nil {
		return err
	}
	s.mutated(KindTeamDelete, nil, "Team deleted successfully!")
	return nil
}
