package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taskzilla/taskzilla-cli/internal/api"
	"github.com/taskzilla/taskzilla-cli/internal/tui"
	"github.com/taskzilla/taskzilla-cli/internal/ux"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the session",
	Long: `Login, logout, register an account, and inspect the current session.

The session token is stored under the data directory and reused until it
expires or the server rejects it.

Examples:
  taskzilla auth login --email jane@example.com
  taskzilla auth status
  taskzilla auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	authEmail    string
	authPassword string
	authName     string
)

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		email, password := authEmail, authPassword
		if email == "" {
			email, err = tui.PromptForString(tui.Prompt{Message: "Email", Placeholder: "you@example.com", Required: true})
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = tui.PromptForString(tui.Prompt{Message: "Password", Required: true, Secret: true})
			if err != nil {
				return err
			}
		}

		return app.Session.Login(cmd.Context(), api.LoginInput{Email: email, Password: password})
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account. Registration does not log you in; run
"taskzilla auth login" afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		name, email, password := authName, authEmail, authPassword
		if name == "" {
			name, err = tui.PromptForString(tui.Prompt{Message: "Name", Required: true})
			if err != nil {
				return err
			}
		}
		if email == "" {
			email, err = tui.PromptForString(tui.Prompt{Message: "Email", Placeholder: "you@example.com", Required: true})
			if err != nil {
				return err
			}
		}
		confirmation := password
		if password == "" {
			password, err = tui.PromptForString(tui.Prompt{Message: "Password", Required: true, Secret: true})
			if err != nil {
				return err
			}
			confirmation, err = tui.PromptForString(tui.Prompt{Message: "Confirm password", Required: true, Secret: true})
			if err != nil {
				return err
			}
		}

		return app.Session.Register(cmd.Context(), api.RegisterInput{
			Name:                 name,
			Email:                email,
			Password:             password,
			PasswordConfirmation: confirmation,
		})
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		app.Session.Logout(cmd.Context())
		app.Services.Reset()
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		view := ux.SessionView{
			User:    app.Session.User(),
			BaseURL: app.Client.BaseURL(),
		}
		if info, ok := app.Session.InspectToken(); ok {
			view.TokenExpiry = info.ExpiresAt
		}
		return app.Formatter.Format(view)
	},
}

func init() {
	for _, c := range []*cobra.Command{authLoginCmd, authRegisterCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "account email")
		c.Flags().StringVar(&authPassword, "password", "", "account password (prompted when omitted)")
	}
	authRegisterCmd.Flags().StringVar(&authName, "name", "", "display name")

	authCmd.AddCommand(authLoginCmd, authRegisterCmd, authLogoutCmd, authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
