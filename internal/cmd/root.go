// Package cmd defines the taskzilla command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagAPIURL  string
	flagOutput  string
	flagNoColor bool
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "taskzilla",
	Short: "Team and task management from the terminal",
	Long: `taskzilla is the command-line client for the Taskzilla API.
It manages teams, tasks and invitations, keeps your session across runs,
and caches list queries for snappy repeated reads.

Start with:
  taskzilla auth register
  taskzilla auth login
  taskzilla status`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under ctx so an interrupt cancels
// in-flight requests.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is $HOME/.taskzilla/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress success notifications")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}
