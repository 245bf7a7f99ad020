package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// fileFlag holds the --file persistent flag value.
var fileFlag string

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Simple todo CLI",
	Long: `todo is a command-line task tracker backed by a single CSV file.

Tasks are created with add, changed with edit, deleted with remove, and
shown with list. The backing file is resolved from --file, the TODO_FILE
environment variable, or a .todorc config file, in that order.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if fileFlag != "" && fileFlag != TodoFile {
			if Reinit == nil {
				return fmt.Errorf("todo app not initialized")
			}
			Reinit(fileFlag)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("todo %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", "", "Backing file path (overrides TODO_FILE and .todorc)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
