package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/ux"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Overview of your teams, tasks and invitations",
	Long: `Fetch your teams, assigned tasks and pending invitations in one go
and render them as a dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		var (
			teams   []api.Team
			tasks   []api.Task
			invites []api.Invite
		)
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			teams, err = app.Services.Teams.List(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			tasks, err = app.Services.Tasks.My(ctx, api.TaskFilters{})
			return err
		})
		g.Go(func() error {
			var err error
			invites, err = app.Services.Invites.MyPending(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		return app.Formatter.Format(ux.Dashboard{
			Teams:   teams,
			Tasks:   tasks,
			Invites: invites,
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
