package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage todo configuration",
	Long:  "Commands for inspecting and bootstrapping the .todorc config file.",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}

		fmt.Printf("file:            %s\n", TodoFile)
		fmt.Printf("markers.done:    %s\n", Cfg.Markers.Done)
		fmt.Printf("markers.pending: %s\n", Cfg.Markers.Pending)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .todorc to the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ConfigMgr == nil {
			return fmt.Errorf("configuration manager not initialized")
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		path, err := ConfigMgr.WriteDefaultConfig(cwd)
		if err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
