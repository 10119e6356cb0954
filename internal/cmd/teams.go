package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/tui"
	"github.com/taskzilla/taskzilla-cli/internal/ux"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Manage teams",
	Long: `List, inspect, create, update and delete teams.

Examples:
  taskzilla teams list
  taskzilla teams create --name "Platform"
  taskzilla teams show 4f6b...
  taskzilla teams delete 4f6b...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	teamName        string
	teamDeleteForce bool
)

var teamsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		teams, err := app.Services.Teams.List(cmd.Context())
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TeamList{Teams: teams})
	},
}

var teamsShowCmd = &cobra.Command{
	Use:   "show <uuid>",
	Short: "Show one team with its members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		team, err := app.Services.Teams.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TeamDetail{Team: *team})
	},
}

var teamsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a team",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		name := teamName
		if name == "" {
			name, err = tui.PromptForString(tui.Prompt{Message: "Team name", Required: true})
			if err != nil {
				return err
			}
		}

		team, err := app.Services.Teams.Create(cmd.Context(), api.TeamInput{Name: name})
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TeamDetail{Team: *team})
	},
}

var teamsUpdateCmd = &cobra.Command{
	Use:   "update <uuid>",
	Short: "Rename a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		team, err := app.Services.Teams.Update(cmd.Context(), args[0], api.TeamInput{Name: teamName})
		if err != nil {
			return err
		}
		return app.Formatter.Format(ux.TeamDetail{Team: *team})
	},
}

var teamsDeleteCmd = &cobra.Command{
	Use:   "delete <uuid>",
	Short: "Delete a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		if !teamDeleteForce {
			confirmed, err := tui.PromptForConfirmation("Delete this team and all its tasks?", false)
			if err != nil {
				return err
			}
			if !confirmed {
				return nil
			}
		}
		return app.Services.Teams.Delete(cmd.Context(), args[0])
	},
}

func init() {
	teamsCreateCmd.Flags().StringVar(&teamName, "name", "", "team name")
	teamsUpdateCmd.Flags().StringVar(&teamName, "name", "", "new team name")
	_ = teamsUpdateCmd.MarkFlagRequired("name")
	teamsDeleteCmd.Flags().BoolVarP(&teamDeleteForce, "force", "f", false, "skip confirmation")

	teamsCmd.AddCommand(teamsListCmd, teamsShowCmd, teamsCreateCmd, teamsUpdateCmd, teamsDeleteCmd)
	rootCmd.AddCommand(teamsCmd)
}
