// Package cli defines the gitsplit command line.
package cli

import (
	"github.com/spf13/cobra"

	"gitsplit.dev/gitsplit/internal/actions"
	"gitsplit.dev/gitsplit/internal/config"
	"gitsplit.dev/gitsplit/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		configPath string
		dryRun     bool
		logFile    string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:   "gitsplit",
		Short: "Split a repository into many and keep them in sync",
		Long: `gitsplit publishes the history of path prefixes of a repository to
independent target repositories.

It reads ` + config.DefaultFileName + ` from the current directory, updates a local
mirror, splits every matching branch and force-pushes the result to each
target. Branches already up to date on a target are skipped.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog, err := output.NewSplogWithOptions(output.Options{
				Writer:  cmd.OutOrStdout(),
				LogFile: logFile,
				Debug:   debug,
			})
			if err != nil {
				return err
			}
			defer func() { _ = splog.Close() }()

			_, err = actions.RunAction(cmd.Context(), splog, actions.RunOptions{
				ConfigPath: configPath,
				DryRun:     dryRun,
			})
			if err != nil {
				// already reported through splog
				cmd.SilenceErrors = true
				splog.Error("%v", err)
			}
			return err
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultFileName, "Path to the configuration file")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Split and report what would be pushed without pushing")
	rootCmd.Flags().StringVar(&logFile, "log-file", output.GetLogFilePath(), "Also write a timestamped log to this file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Print debug messages")

	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
