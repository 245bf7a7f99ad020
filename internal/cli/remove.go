package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a todo task",
	Long: `Remove a task by id.

Removing an unknown id is an error; the backing file is left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if TaskMgr == nil {
			return fmt.Errorf("task manager not initialized")
		}

		if err := TaskMgr.RemoveTask(args[0]); err != nil {
			return err
		}

		fmt.Println("The task was successfully removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
