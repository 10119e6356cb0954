package service

import (
	"context"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/query"
)

// Invites serves invitation queries and mutations.
type Invites struct {
	api InvitesAPI
	deps
}

// ForTeam returns a team's invitations, cached.
func (s *Invites) ForTeam(ctx context.Context, teamID string) ([]api.Invite, error) {
	key := query.NewKey("invites", "team", teamID)
	return query.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]api.Invite, error) {
		return s.api.ListTeamInvites(ctx, teamID)
	})
}

// MyPending returns the user's open invitations, cached.
func (s *Invites) MyPending(ctx context.Context) ([]api.Invite, error) {
	key := query.NewKey("invites", "my")
	return query.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]api.Invite, error) {
		return s.api.ListMyPendingInvites(ctx)
	})
}

// Send invites a batch of email addresses to a team.
func (s *Invites) Send(ctx context.Context, in api.SendInvitesInput) ([]api.Invite, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	invites, err := s.api.SendInvites(ctx, in)
	if err != nil {
		return nil, err
	}
	s.mutated(KindInviteSend, nil, "Invitations sent successfully!")
	return invites, nil
}

// Accept joins the team an invitation token belongs to. Membership changed,
// so the team list refreshes along with the invitations.
func (s *Invites) Accept(ctx context.Context, token string) error {
	if err := s.api.AcceptInvite(ctx, token); err != nil {
		return err
	}
	s.mutated(KindInviteAccept, nil, "Invitation accepted! Welcome to the team!")
	return nil
}

// Decline turns an invitation down.
func (s *Invites) Decline(ctx context.Context, token string) error {
	if err := s.api.DeclineInvite(ctx, token); err != nil {
		return err
	}
	s.mutated(KindInviteDecline, nil, "Invitation declined")
	return nil
}

// Revoke withdraws a pending invitation.
func (s *Invites) Revoke(ctx context.Context, inviteID string) error {
	if err := s.api.RevokeInvite(ctx, inviteID); err != nil {
		return err
	}
	s.mutated(KindInviteRevoke, nil, "Invitation revoked!")
	return nil
}
