package api

import (
	"context"
	"net/http"
)

// TeamInput is the payload for creating or renaming a team.
type TeamInput struct {
	Name string `json:"name"`
}

// ListTeams returns the caller's teams. Paginated endpoint.
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	env, err := c.do(ctx, http.MethodGet, "/teams", nil, nil)
	if err != nil {
		return nil, err
	}
	teams, _, err := decodeList[Team](env, ShapePaginated)
	return teams, err
}

// CreateTeam creates a team led by the caller.
func (c *Client) CreateTeam(ctx context.Context, in TeamInput) (*Team, error) {
	env, err := c.do(ctx, http.MethodPost, "/teams", nil, in)
	if err != nil {
		return nil, err
	}
	team, err := decodeData[Team](env)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetTeam returns one team by uuid.
func (c *Client) GetTeam(ctx context.Context, uuid string) (*Team, error) {
	env, err := c.do(ctx, http.MethodGet, "/teams/"+uuid, nil, nil)
	if err != nil {
		return nil, err
	}
	team, err := decodeData[Team](env)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam renames a team.
func (c *Client) UpdateTeam(ctx context.Context, uuid string, in TeamInput) (*Team, error) {
	env, err := c.do(ctx, http.MethodPut, "/teams/"+uuid, nil, in)
	if err != nil {
		return nil, err
	}
	team, err := decodeData[Team](env)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// DeleteTeam removes a team.
func (c *Client) DeleteTeam(ctx context.Context, uuid string) error {
	_, err := c.do(ctx, http.MethodDelete, "/teams/"+uuid, nil, nil)
	return err
}
