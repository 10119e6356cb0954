package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/ux"
)

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Manage team invitations",
	Long: `Send, list, accept, decline and revoke team invitations.

Examples:
  taskzilla invites send --team 4f6b... --email sam@example.com --email kim@example.com
  taskzilla invites pending
  taskzilla invites accept <token>
  taskzilla invites revoke <invite-id>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	inviteTeam   string
	inviteEmails []string
	inviteRole   string
)

var invitesSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Invite people to a team by email",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		invites, err := app.Services.Invites.Send(cmd.Context(), api.SendInvitesInput{
			TeamID: inviteTeam,
			Emails: inviteEmails,
			Role:   inviteRole,
		})
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.InviteList{Invites: invites})
	},
}

var invitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a team's invitations",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		invites, err := app.Services.Invites.ForTeam(cmd.Context(), inviteTeam)
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.InviteList{Invites: invites})
	},
}

var invitesPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List invitations waiting on you",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		invites, err := app.Services.Invites.MyPending(cmd.Context())
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.InviteList{Invites: invites})
	},
}

var invitesAcceptCmd = &cobra.Command{
	Use:   "accept <token>",
	Short: "Accept an invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}
		return app.Services.Invites.Accept(cmd.Context(), args[0])
	},
}

var invitesDeclineCmd = &cobra.Command{
	Use:   "decline <token>",
	Short: "Decline an invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}
		return app.Services.Invites.Decline(cmd.Context(), args[0])
	},
}

var invitesRevokeCmd = &cobra.Command{
	Use:   "revoke <invite-id>",
	Short: "Withdraw a pending invitation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}
		return app.Services.Invites.Revoke(cmd.Context(), args[0])
	},
}

func init() {
	invitesSendCmd.Flags().StringVar(&inviteTeam, "team", "", "team uuid")
	invitesSendCmd.Flags().StringSliceVar(&inviteEmails, "email", nil, "email to invite (repeatable)")
	invitesSendCmd.Flags().StringVar(&inviteRole, "role", "member", "role for the invitees")
	_ = invitesSendCmd.MarkFlagRequired("team")
	_ = invitesSendCmd.MarkFlagRequired("email")

	invitesListCmd.Flags().StringVar(&inviteTeam, "team", "", "team uuid")
	_ = invitesListCmd.MarkFlagRequired("team")

	invitesCmd.AddCommand(invitesSendCmd, invitesListCmd, invitesPendingCmd,
		invitesAcceptCmd, invitesDeclineCmd, invitesRevokeCmd)
	rootCmd.AddCommand(invitesCmd)
}
