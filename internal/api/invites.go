package api

import (
	"context"
	"net/http"
)

// SendInvitesInput is the payload for POST /invites.
type SendInvitesInput struct {
	TeamID string   `json:"team_id"`
	Emails []string `json:"emails"`
	Role   string   `json:"role,omitempty"`
}

type inviteTokenInput struct {
	Token string `json:"token"`
}

// SendInvites invites one or more emails to a team. Flat endpoint: the
// created invites come back directly under data.
func (c *Client) SendInvites(ctx context.Context, in SendInvitesInput) ([]Invite, error) {
	env, err := c.do(ctx, http.MethodPost, "/invites", nil, in)
	if err != nil {
		return nil, err
	}
	invites, _, err := decodeList[Invite](env, ShapeFlat)
	return invites, err
}

// AcceptInvite accepts an invitation by its token.
func (c *Client) AcceptInvite(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodPost, "/invites/accept", nil, inviteTokenInput{Token: token})
	return err
}

// DeclineInvite declines an invitation by its token.
func (c *Client) DeclineInvite(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodPost, "/invites/decline", nil, inviteTokenInput{Token: token})
	return err
}

// RevokeInvite withdraws a pending invitation.
func (c *Client) RevokeInvite(ctx context.Context, inviteID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/invites/"+inviteID, nil, nil)
	return err
}

// ListTeamInvites returns a team's invitations. Paginated endpoint.
func (c *Client) ListTeamInvites(ctx context.Context, teamID string) ([]Invite, error) {
	env, err := c.do(ctx, http.MethodGet, "/invites/team/"+teamID, nil, nil)
	if err != nil {
		return nil, err
	}
	invites, _, err := decodeList[Invite](env, ShapePaginated)
	return invites, err
}

// ListMyPendingInvites returns invitations addressed to the caller.
// Paginated endpoint.
func (c *Client) ListMyPendingInvites(ctx context.Context) ([]Invite, error) {
	env, err := c.do(ctx, http.MethodGet, "/invites/my-pending", nil, nil)
	if err != nil {
		return nil, err
	}
	invites, _, err := decodeList[Invite](env, ShapePaginated)
	return invites, err
}
