package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskzilla/taskzilla-cli/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetInfo()
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), info.Short())
			return nil
		}
		if flagOutput != "" && flagOutput != "text" {
			app, err := newApp()
			if err != nil {
				return err
			}
			return app.Formatter.Format(info)
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}
